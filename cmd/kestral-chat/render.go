package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tnguyen21/kestral-chat/internal/chat"
	"github.com/tnguyen21/kestral-chat/internal/config"
	"github.com/tnguyen21/kestral-chat/internal/data"
	"github.com/tnguyen21/kestral-chat/internal/render"
)

var (
	renderMode       string
	renderWidth      int
	renderSelf       string
	renderAccessible bool
	renderFilter     string
)

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Print a transcript as chat bubbles",
	Long:  `Render a YAML or JSON transcript to stdout using the same bubbles as the SSH client.`,
	Example: `  kestral-chat render team.yaml
  kestral-chat render team.yaml --mode textual --width 100
  kestral-chat render team.json --accessible
  kestral-chat render team.yaml --filter 'sender == "ana" || mine'`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderMode, "mode", "", "receipt display mode: symbolic or textual (default from config)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 80, "terminal width to render for")
	renderCmd.Flags().StringVar(&renderSelf, "self", "", "sender name treated as the local user, overriding the transcript (default: transcript self, then config)")
	renderCmd.Flags().BoolVar(&renderAccessible, "accessible", false, "print the plain-text announcement of each message instead of bubbles")
	renderCmd.Flags().StringVarP(&renderFilter, "filter", "Y", "", "only show messages matching this expression (fields: id, sender, text, status, mine, is_reply)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	mode := cfg.Mode()
	if renderMode != "" {
		if mode, err = chat.ParseDisplayMode(renderMode); err != nil {
			return err
		}
	}
	keep, err := data.CompileFilter(renderFilter)
	if err != nil {
		return err
	}

	store := &data.Store{Self: cfg.SelfName}
	return writeTranscript(cmd.OutOrStdout(), store, args[0], renderSelf, keep, render.Options{Width: renderWidth, Mode: mode}, renderAccessible)
}

// writeTranscript loads the transcript at path and writes the messages keep
// accepts to w. A non-empty self replaces the transcript's own self. Run
// positions and reply quotes come from the full transcript.
func writeTranscript(w io.Writer, store *data.Store, path, self string, keep data.MessageFilter, opts render.Options, accessible bool) error {
	c, err := store.LoadConversation(path)
	if err != nil {
		return err
	}
	if self != "" {
		c.Self = self
	}

	var msgs []render.Message
	for i, m := range render.FromConversation(c) {
		if keep == nil || keep(c, c.Messages[i]) {
			msgs = append(msgs, m)
		}
	}

	if accessible {
		for _, m := range msgs {
			line, ok := render.Accessible(m, opts.Mode)
			if !ok {
				continue
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}

	out := render.Transcript(msgs, opts)
	if out == "" {
		return nil
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
