// Package cachefile parses CMakeCache.txt files into immutable snapshots.
package cachefile

import (
	"bufio"
	"context"
	"os"
	"regexp"
	"strings"

	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/cmkit/cmkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// entryPattern matches `KEY:TYPE=VALUE` lines. Keys containing special
// characters are written quoted by CMake.
var entryPattern = regexp.MustCompile(`^("(?:[^"\\]|\\.)*"|[^:"]+):([A-Z]*)=(.*)$`)

const advancedSuffix = "-ADVANCED"

// Store implements ports.CacheStore for on-disk CMakeCache.txt files.
type Store struct{}

var _ ports.CacheStore = (*Store)(nil)

// NewStore creates a new cache store.
func NewStore() *Store {
	return &Store{}
}

// Load reads and parses the cache file at path. A missing file is a load
// failure by contract; callers decide whether absence is tolerable.
func (s *Store) Load(_ context.Context, path string) (*domain.CacheSnapshot, error) {
	f, err := os.Open(path) //nolint:gosec // path is derived from the binary directory
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	entries, advanced, err := parse(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheParseFailed.Error()), "path", path)
	}

	for i := range entries {
		if advanced[entries[i].Key] {
			entries[i].Advanced = true
		}
	}
	return domain.NewCacheSnapshot(entries), nil
}

// parse scans the cache file format: '#' comment lines, '//' documentation
// lines attached to the entry that follows, and KEY:TYPE=VALUE entries.
// *-ADVANCED bookkeeping entries mark their base entry advanced instead of
// appearing as entries themselves.
func parse(f *os.File) ([]domain.CacheEntry, map[string]bool, error) {
	var (
		entries  []domain.CacheEntry
		advanced = make(map[string]bool)
		docLines []string
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.TrimSpace(line) == "":
			docLines = nil
			continue
		case strings.HasPrefix(line, "#"):
			continue
		case strings.HasPrefix(line, "//"):
			docLines = append(docLines, strings.TrimPrefix(line, "//"))
			continue
		}

		m := entryPattern.FindStringSubmatch(line)
		if m == nil {
			// CMake itself skips malformed lines rather than failing.
			docLines = nil
			continue
		}

		key := unquoteKey(m[1])
		typ := domain.ParseCacheEntryType(m[2])
		value := m[3]
		doc := strings.TrimSpace(strings.Join(docLines, "\n"))
		docLines = nil

		if typ == domain.CacheInternal && strings.HasSuffix(key, advancedSuffix) {
			base := strings.TrimSuffix(key, advancedSuffix)
			advanced[base] = domain.IsTruthy(value)
			continue
		}

		entries = append(entries, domain.CacheEntry{
			Key:   key,
			Type:  typ,
			Value: value,
			Doc:   doc,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return entries, advanced, nil
}

func unquoteKey(key string) string {
	if len(key) >= 2 && strings.HasPrefix(key, `"`) && strings.HasSuffix(key, `"`) {
		inner := key[1 : len(key)-1]
		inner = strings.ReplaceAll(inner, `\"`, `"`)
		inner = strings.ReplaceAll(inner, `\\`, `\`)
		return inner
	}
	return key
}
