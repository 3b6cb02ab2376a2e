package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"empty query matches nothing", "", []string{}},
		{"lowercase is uppercased", "tata", []string{"TATAMOTORS"}},
		{"substring anywhere", "BANK", []string{"HDFCBANK", "ICICIBANK", "AXISBANK"}},
		{"catalog order is kept", "ADANI", []string{"ADANIENT", "ADANIPORTS"}},
		{"no match", "AAPL", []string{}},
		{"whitespace is not trimmed", " TCS", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Match(DefaultSymbols, tt.query))
		})
	}
}

func TestDefaultSymbols(t *testing.T) {
	assert.Len(t, DefaultSymbols, 30)
	assert.Equal(t, "RELIANCE", DefaultSymbols[0])
	assert.Equal(t, "VEDL", DefaultSymbols[len(DefaultSymbols)-1])
}

func TestMemoryStore(t *testing.T) {
	symbols := []string{"TCS", "TITAN"}
	store := NewMemoryStore(symbols)
	symbols[0] = "MUTATED"

	result, err := store.Search(context.Background(), "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"TCS", "TITAN"}, result)
	assert.NoError(t, store.Close())
}

func TestOpen(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		store, err := Open(DriverMemory, "", nil)
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("default is memory", func(t *testing.T) {
		store, err := Open("", "", nil)
		require.NoError(t, err)
		assert.IsType(t, &MemoryStore{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		store, err := Open(DriverSQLite, filepath.Join(t.TempDir(), "catalog.db"), nil)
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &SQLStore{}, store)
	})

	t.Run("unknown driver", func(t *testing.T) {
		_, err := Open("postgres", "", nil)
		assert.Error(t, err)
	})
}

func TestSQLStore_RequiresPath(t *testing.T) {
	_, err := OpenSQLStore("", nil)
	assert.Error(t, err)
}

func TestSQLStore_MatchesMemoryStore(t *testing.T) {
	store, err := OpenSQLStore(filepath.Join(t.TempDir(), "catalog.db"), nil)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	for _, query := range []string{"", "a", "BANK", "adani", "POWER", "zzz", "%", "_"} {
		t.Run(query, func(t *testing.T) {
			got, err := store.Search(ctx, query)
			require.NoError(t, err)
			assert.Equal(t, Match(DefaultSymbols, query), got)
		})
	}
}

func TestSQLStore_SeedsOnlyOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	first, err := OpenSQLStore(path, nil)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := OpenSQLStore(path, nil)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Search(context.Background(), "TCS")
	require.NoError(t, err)
	assert.Equal(t, []string{"TCS"}, got)
}

func TestSQLStore_Add(t *testing.T) {
	store, err := OpenSQLStore(filepath.Join(t.TempDir(), "catalog.db"), nil)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Add(ctx, "tatasteel", "TATAPOWER"))

	got, err := store.Search(ctx, "TATA")
	require.NoError(t, err)
	assert.Equal(t, []string{"TATAMOTORS", "TATASTEEL", "TATAPOWER"}, got)

	assert.Error(t, store.Add(ctx, "TCS"), "duplicate names are rejected")
}

func countOpenFiles(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir("/proc/self/fd")
	if err != nil {
		t.Skip("open file count not available on this platform")
	}
	return len(entries)
}

func TestSQLStore_FailedOpenReleasesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	garbage := bytes.Repeat([]byte("this is not a sqlite database\n"), 256)
	require.NoError(t, os.WriteFile(path, garbage, 0644))

	before := countOpenFiles(t)
	for i := 0; i < 5; i++ {
		store, err := OpenSQLStore(path, nil)
		require.Error(t, err)
		assert.Nil(t, store)
	}

	assert.LessOrEqual(t, countOpenFiles(t), before, "failed opens must not leak connections")
}
