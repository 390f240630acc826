package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/tnguyen21/kestral-chat/internal/config"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "kestral-chat",
	Short: "Chat transcripts over SSH with delivery receipts",
	Long: `kestral-chat serves a terminal chat client over SSH. Conversations are
read from YAML or JSON transcripts in the configured data directory.

Examples:
  kestral-chat serve                          # Listen on the configured port
  kestral-chat serve --port 2300              # Override the port
  kestral-chat render team.yaml --mode text   # Print a transcript to stdout`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath, "path to config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
}

func newLogger(cfg config.Config) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.Level(),
		ReportTimestamp: true,
		Prefix:          "kestral",
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("command failed", "err", err)
		os.Exit(1)
	}
}
