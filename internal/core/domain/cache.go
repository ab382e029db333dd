// Package domain contains the core types of the configure driver: cache
// snapshots, compilation databases, kits, and the on-disk layout of a CMake
// binary directory.
package domain

import (
	"sort"
	"strings"
)

// Cache entry keys with driver-level meaning.
const (
	// ProjectNameEntry holds the top-level project name after a configure.
	ProjectNameEntry = "CMAKE_PROJECT_NAME"

	// GeneratorEntry holds the generator the binary directory was configured with.
	GeneratorEntry = "CMAKE_GENERATOR"
)

// CacheEntryType tags the declared type of a cache entry.
type CacheEntryType int

const (
	// CacheBool is a boolean entry (ON/OFF and friends).
	CacheBool CacheEntryType = iota
	// CacheString is a free-form string entry.
	CacheString
	// CacheDirPath is a directory path entry.
	CacheDirPath
	// CacheFilePath is a file path entry.
	CacheFilePath
	// CacheInternal is an entry CMake keeps for itself.
	CacheInternal
	// CacheStatic is an entry fixed by the project files.
	CacheStatic
	// CacheUninitialized is an entry set before its type was known.
	CacheUninitialized
)

// String returns the CMakeCache.txt spelling of the type tag.
func (t CacheEntryType) String() string {
	switch t {
	case CacheBool:
		return "BOOL"
	case CacheString:
		return "STRING"
	case CacheDirPath:
		return "PATH"
	case CacheFilePath:
		return "FILEPATH"
	case CacheInternal:
		return "INTERNAL"
	case CacheStatic:
		return "STATIC"
	case CacheUninitialized:
		return "UNINITIALIZED"
	default:
		return "UNKNOWN"
	}
}

// ParseCacheEntryType maps a CMakeCache.txt type tag to a CacheEntryType.
// Unknown tags are treated as STRING, matching CMake's own leniency.
func ParseCacheEntryType(tag string) CacheEntryType {
	switch strings.ToUpper(tag) {
	case "BOOL":
		return CacheBool
	case "PATH":
		return CacheDirPath
	case "FILEPATH":
		return CacheFilePath
	case "INTERNAL":
		return CacheInternal
	case "STATIC":
		return CacheStatic
	case "UNINITIALIZED":
		return CacheUninitialized
	default:
		return CacheString
	}
}

// CacheEntry is one typed key/value pair from a CMake cache file.
type CacheEntry struct {
	Key      string
	Type     CacheEntryType
	Value    string
	Doc      string
	Advanced bool
}

// AsBool interprets the entry value using CMake truthiness: ON, TRUE, YES, Y
// and non-zero numbers are true; OFF, FALSE, NO, N, IGNORE, NOTFOUND, the
// empty string, 0 and any value ending in -NOTFOUND are false.
func (e CacheEntry) AsBool() bool {
	return IsTruthy(e.Value)
}

// AsList splits the entry value on ';', CMake's list separator.
// An empty value yields an empty list.
func (e CacheEntry) AsList() []string {
	if e.Value == "" {
		return nil
	}
	return strings.Split(e.Value, ";")
}

// IsTruthy reports whether a raw cache value is true under CMake's rules.
func IsTruthy(value string) bool {
	switch strings.ToUpper(value) {
	case "", "0", "OFF", "NO", "N", "FALSE", "IGNORE", "NOTFOUND":
		return false
	}
	if strings.HasSuffix(strings.ToUpper(value), "-NOTFOUND") {
		return false
	}
	return true
}

// CacheSnapshot is an immutable view of one CMake cache file. Snapshots are
// produced whole by the cache store and replaced whole by the driver; they
// are never mutated after construction.
type CacheSnapshot struct {
	entries map[string]CacheEntry
}

// NewCacheSnapshot builds a snapshot from parsed entries. The input slice is
// copied; later mutation of it does not affect the snapshot.
func NewCacheSnapshot(entries []CacheEntry) *CacheSnapshot {
	m := make(map[string]CacheEntry, len(entries))
	for _, e := range entries {
		m[e.Key] = e
	}
	return &CacheSnapshot{entries: m}
}

// Get returns the entry for key and whether it exists. A nil snapshot has
// no entries; it presents as an empty mapping, not a panic.
func (s *CacheSnapshot) Get(key string) (CacheEntry, bool) {
	if s == nil {
		return CacheEntry{}, false
	}
	e, ok := s.entries[key]
	return e, ok
}

// String returns the raw value for key, or "" if absent.
func (s *CacheSnapshot) String(key string) string {
	if s == nil {
		return ""
	}
	return s.entries[key].Value
}

// Bool returns the CMake truthiness of the value for key.
func (s *CacheSnapshot) Bool(key string) bool {
	e, ok := s.Get(key)
	return ok && e.AsBool()
}

// Len returns the number of entries in the snapshot, 0 for nil.
func (s *CacheSnapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Keys returns the entry keys in sorted order.
func (s *CacheSnapshot) Keys() []string {
	if s == nil {
		return nil
	}
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entries returns the entries in key order.
func (s *CacheSnapshot) Entries() []CacheEntry {
	if s == nil {
		return nil
	}
	out := make([]CacheEntry, 0, len(s.entries))
	for _, k := range s.Keys() {
		out = append(out, s.entries[k])
	}
	return out
}
