package domain_test

import (
	"testing"

	"github.com/cmkit/cmkit/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCacheEntryType(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want domain.CacheEntryType
	}{
		{name: "bool", tag: "BOOL", want: domain.CacheBool},
		{name: "string", tag: "STRING", want: domain.CacheString},
		{name: "path", tag: "PATH", want: domain.CacheDirPath},
		{name: "filepath", tag: "FILEPATH", want: domain.CacheFilePath},
		{name: "internal", tag: "INTERNAL", want: domain.CacheInternal},
		{name: "static", tag: "STATIC", want: domain.CacheStatic},
		{name: "uninitialized", tag: "UNINITIALIZED", want: domain.CacheUninitialized},
		{name: "lowercase tag", tag: "bool", want: domain.CacheBool},
		{name: "unknown falls back to string", tag: "WAT", want: domain.CacheString},
		{name: "empty falls back to string", tag: "", want: domain.CacheString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ParseCacheEntryType(tt.tag))
		})
	}
}

func TestIsTruthy(t *testing.T) {
	truthy := []string{"ON", "on", "YES", "TRUE", "Y", "1", "42", "anything-else"}
	falsy := []string{"", "OFF", "off", "NO", "FALSE", "N", "0", "IGNORE", "NOTFOUND", "CUDA-NOTFOUND"}

	for _, v := range truthy {
		assert.True(t, domain.IsTruthy(v), "expected %q to be truthy", v)
	}
	for _, v := range falsy {
		assert.False(t, domain.IsTruthy(v), "expected %q to be falsy", v)
	}
}

func TestCacheSnapshot_Lookups(t *testing.T) {
	snapshot := domain.NewCacheSnapshot([]domain.CacheEntry{
		{Key: "CMAKE_PROJECT_NAME", Type: domain.CacheStatic, Value: "demo"},
		{Key: "BUILD_TESTING", Type: domain.CacheBool, Value: "ON"},
		{Key: "CMAKE_CXX_FLAGS", Type: domain.CacheString, Value: ""},
	})

	entry, ok := snapshot.Get("CMAKE_PROJECT_NAME")
	require.True(t, ok)
	assert.Equal(t, "demo", entry.Value)

	_, ok = snapshot.Get("MISSING")
	assert.False(t, ok)

	assert.Equal(t, "demo", snapshot.String("CMAKE_PROJECT_NAME"))
	assert.Equal(t, "", snapshot.String("MISSING"))
	assert.True(t, snapshot.Bool("BUILD_TESTING"))
	assert.False(t, snapshot.Bool("MISSING"))
	assert.Equal(t, 3, snapshot.Len())
	assert.Len(t, snapshot.Keys(), 3)
	assert.Len(t, snapshot.Entries(), 3)
}

func TestCacheSnapshot_NilReceiver(t *testing.T) {
	var snapshot *domain.CacheSnapshot

	_, ok := snapshot.Get("ANY")
	assert.False(t, ok)
	assert.Equal(t, "", snapshot.String("ANY"))
	assert.False(t, snapshot.Bool("ANY"))
	assert.Equal(t, 0, snapshot.Len())
	assert.Empty(t, snapshot.Keys())
	assert.Empty(t, snapshot.Entries())
}

func TestCacheEntry_AsBool(t *testing.T) {
	assert.True(t, domain.CacheEntry{Value: "TRUE"}.AsBool())
	assert.False(t, domain.CacheEntry{Value: "GLIB-NOTFOUND"}.AsBool())
}

func TestCacheEntry_AsList(t *testing.T) {
	entry := domain.CacheEntry{Value: "a;b;c"}
	assert.Equal(t, []string{"a", "b", "c"}, entry.AsList())

	assert.Empty(t, domain.CacheEntry{Value: ""}.AsList())
}
