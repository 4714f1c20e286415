// Package cache persists successful lookups across runs as a single JSON
// map keyed by the lowercase form of the original term. The cache is an
// optimization: load and persist failures degrade, they never abort a run.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heartmarshall/kindleword/internal/domain"
)

// Cache is an eagerly loaded term → result map backed by one file.
// It is not safe for concurrent use; the pipeline owns it exclusively for
// the duration of a run.
type Cache struct {
	path    string
	entries map[string]domain.TranslationResult
	log     *slog.Logger
}

// Open loads the cache file at path. A missing or corrupt file yields an
// empty cache and a warning, never an error.
func Open(path string, logger *slog.Logger) *Cache {
	c := &Cache{
		path:    path,
		entries: make(map[string]domain.TranslationResult),
		log:     logger.With("component", "cache"),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			c.log.Warn("cache unreadable, starting fresh", slog.String("path", path), slog.String("error", err.Error()))
		}
		return c
	}

	if err := json.Unmarshal(raw, &c.entries); err != nil {
		c.log.Warn("cache corrupt, starting fresh", slog.String("path", path), slog.String("error", err.Error()))
		c.entries = make(map[string]domain.TranslationResult)
	}

	return c
}

// Get returns the cached result for term, keyed by its lowercase form.
func (c *Cache) Get(term string) (domain.TranslationResult, bool) {
	r, ok := c.entries[domain.NormalizeTerm(term)]
	return r, ok
}

// Set stores result under the lowercase form of term, overwriting any
// previous entry.
func (c *Cache) Set(term string, result domain.TranslationResult) {
	c.entries[domain.NormalizeTerm(term)] = result
}

// Len returns the number of cached entries.
func (c *Cache) Len() int { return len(c.entries) }

// Persist writes the full map to a sibling temporary file and renames it
// over the target path, so a crash mid-write never leaves a truncated
// cache. The stray temp file is removed on failure.
func (c *Cache) Persist() error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("cache: create dir: %w", err)
	}

	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cache: create temp: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("cache: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cache: close temp: %w", err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("cache: replace: %w", err)
	}

	c.log.Debug("cache persisted", slog.String("path", c.path), slog.Int("entries", len(c.entries)))
	return nil
}
