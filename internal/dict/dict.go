package dict

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

func NewDictManager(log zerolog.Logger) *DictManager {
	return &DictManager{log: log}
}

type DictManager struct {
	log zerolog.Logger
}

// LoadWordFile reads a newline-separated word file, lowercases each entry,
// drops anything that is not purely a-z, and deduplicates preserving the
// first occurrence.
func (m *DictManager) LoadWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	seen := make(map[string]struct{})
	words := []string{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || !isAlpha(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word file: %w", err)
	}
	return words, nil
}

// Watch reloads the word file whenever it changes and hands the fresh word
// set to onChange. Editors and atomic writers replace the file, so the watch
// is set on the directory and filtered by name.
func (m *DictManager) Watch(ctx context.Context, path string, onChange func(words []string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	var debounce *time.Timer
	reload := func() {
		words, err := m.LoadWordFile(path)
		if err != nil {
			m.log.Warn().Err(err).Str("path", path).Msg("dict reload failed")
			return
		}
		m.log.Info().Int("words", len(words)).Str("path", path).Msg("dict reloaded")
		onChange(words)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// coalesce bursts of write events into one reload
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(200*time.Millisecond, reload)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			m.log.Warn().Err(err).Msg("dict watcher error")
		}
	}
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
