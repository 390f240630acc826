package data

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// transcriptExts are the file extensions read from the data dir. JSON is a
// subset of YAML, so one decoder handles both.
var transcriptExts = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Store reads conversation transcripts from a directory.
type Store struct {
	Dir  string // directory holding transcript files
	Self string // local sender name used when a transcript omits self
}

// ListConversations loads every transcript in Dir, newest activity first.
// Files that fail to load are skipped; their errors are joined and returned
// alongside the conversations that did load.
func (s *Store) ListConversations(ctx context.Context) ([]Conversation, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("reading data dir %s: %w", s.Dir, err)
	}

	var convs []Conversation
	var errs []error
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return convs, err
		}
		if e.IsDir() || !transcriptExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		c, err := s.LoadConversation(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		convs = append(convs, c)
	}

	sort.SliceStable(convs, func(i, j int) bool {
		a, b := lastActivity(convs[i]), lastActivity(convs[j])
		if !a.Equal(b) {
			return a.After(b)
		}
		return convs[i].ID < convs[j].ID
	})
	return convs, errors.Join(errs...)
}

// LoadConversation reads and normalises a single transcript file.
func (s *Store) LoadConversation(path string) (Conversation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Conversation{}, fmt.Errorf("reading transcript %s: %w", path, err)
	}

	var c Conversation
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Conversation{}, fmt.Errorf("parsing transcript %s: %w", path, err)
	}

	c.Path = path
	if c.ID == "" {
		c.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if c.Title == "" {
		c.Title = c.ID
	}
	if c.Self == "" {
		c.Self = s.Self
	}
	for i := range c.Messages {
		if c.Messages[i].ID == "" {
			c.Messages[i].ID = messageID(path, i)
		}
	}
	return c, nil
}

// messageID derives a stable ID for the i-th message of the transcript at
// path, so reloads keep pointing at the same message.
func messageID(path string, i int) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(path+"#"+strconv.Itoa(i))).String()
}

func lastActivity(c Conversation) time.Time {
	if m, ok := c.Last(); ok {
		return m.SentAt
	}
	return time.Time{}
}
