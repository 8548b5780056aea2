package dedup

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
)

// Store is a file-backed set of fingerprints. The backing file is a flat
// JSON array of hex strings so it stays inspectable and editable by hand.
// Mutations happen in memory; Flush writes the file once per batch.
type Store struct {
	path   string
	seen   map[string]struct{}
	logger *slog.Logger
}

// Open loads the fingerprint set at path. A missing file is an empty set.
// A corrupt file is also treated as empty, with a warning, so one bad
// write never wedges the batch; the next Flush rewrites it whole.
func Open(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{path: path, seen: make(map[string]struct{}), logger: logger}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("could not read dedup store, starting empty", "path", path, "error", err)
		}
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		logger.Warn("dedup store is corrupt, starting empty", "path", path, "error", err)
		return s
	}
	for _, fp := range list {
		s.seen[fp] = struct{}{}
	}
	return s
}

// Contains reports whether fp has been processed before.
func (s *Store) Contains(fp string) bool {
	_, ok := s.seen[fp]
	return ok
}

// Add records fp in memory. It reports false when fp was already present.
func (s *Store) Add(fp string) bool {
	if s.Contains(fp) {
		return false
	}
	s.seen[fp] = struct{}{}
	return true
}

func (s *Store) Len() int { return len(s.seen) }

// Flush writes the full set back to the backing file, sorted for stable
// diffs.
func (s *Store) Flush() error {
	list := make([]string, 0, len(s.seen))
	for fp := range s.seen {
		list = append(list, fp)
	}
	sort.Strings(list)

	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal dedup store: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write dedup store: %w", err)
	}
	return nil
}
