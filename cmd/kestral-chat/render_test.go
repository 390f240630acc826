package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnguyen21/kestral-chat/internal/chat"
	"github.com/tnguyen21/kestral-chat/internal/data"
	"github.com/tnguyen21/kestral-chat/internal/render"
)

var teamPath = filepath.Join("testdata", "team.yaml")

func TestWriteTranscriptBubbles(t *testing.T) {
	var buf bytes.Buffer
	err := writeTranscript(&buf, &data.Store{Self: "me"}, teamPath, "", nil, render.Options{Width: 80, Mode: chat.DisplaySymbolic}, false)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "standup in 5")
	assert.Contains(t, out, "on my way")
	assert.Contains(t, out, "✓✓")
	assert.Contains(t, out, "ana: standup in 5", "reply quote")
	assert.Contains(t, out, "running late")
}

func TestWriteTranscriptTextual(t *testing.T) {
	var buf bytes.Buffer
	err := writeTranscript(&buf, &data.Store{Self: "me"}, teamPath, "", nil, render.Options{Width: 80, Mode: chat.DisplayTextual}, false)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Read")
	assert.NotContains(t, buf.String(), "✓")
}

func TestWriteTranscriptAccessible(t *testing.T) {
	var buf bytes.Buffer
	err := writeTranscript(&buf, &data.Store{Self: "me"}, teamPath, "", nil, render.Options{Width: 80, Mode: chat.DisplaySymbolic}, true)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"ana: standup in 5",
		"Replying to ana: standup in 5. me: on my way (Read)",
		"bo: running late",
	}, lines)
}

func TestWriteTranscriptFiltered(t *testing.T) {
	keep, err := data.CompileFilter(`mine`)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = writeTranscript(&buf, &data.Store{Self: "me"}, teamPath, "", keep, render.Options{Width: 80}, true)
	require.NoError(t, err)
	assert.Equal(t, "Replying to ana: standup in 5. me: on my way (Read)\n", buf.String())
}

func TestWriteTranscriptSelfOverride(t *testing.T) {
	var buf bytes.Buffer
	err := writeTranscript(&buf, &data.Store{Self: "me"}, teamPath, "bo", nil, render.Options{Width: 80, Mode: chat.DisplaySymbolic}, true)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"ana: standup in 5",
		"Replying to ana: standup in 5. me: on my way",
		"bo: running late (Delivered)",
	}, lines)
}

func TestWriteTranscriptMissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := writeTranscript(&buf, &data.Store{}, filepath.Join(t.TempDir(), "nope.yaml"), "", nil, render.Options{Width: 80}, false)
	assert.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestRootCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["render"])
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, renderCmd.Flags().Lookup("width"))
}
