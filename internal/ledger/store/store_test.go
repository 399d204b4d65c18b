package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openBackend builds each backend against a fresh temp directory.
func openBackend(t *testing.T, backend string) Store {
	t.Helper()
	s, err := Open(backend, t.TempDir())
	require.NoError(t, err, "open %s backend", backend)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestStoreRoundTrip_AllBackends(t *testing.T) {
	for _, backend := range []string{"memory", "file", "badger", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			ctx := context.Background()
			s := openBackend(t, backend)

			// Absent channel loads as nil, not an error.
			data, err := s.Load(ctx, "english-shorts")
			require.NoError(t, err)
			assert.Nil(t, data)

			snapshot := []byte(`{"expressions":[],"blacklist":[],"lastUpdated":"2026-09-01T00:00:00Z"}`)
			require.NoError(t, s.Save(ctx, "english-shorts", snapshot))

			data, err = s.Load(ctx, "english-shorts")
			require.NoError(t, err)
			assert.Equal(t, snapshot, data)

			// Save replaces wholesale.
			second := []byte(`{"expressions":[{"expression":"got it"}]}`)
			require.NoError(t, s.Save(ctx, "english-shorts", second))
			data, err = s.Load(ctx, "english-shorts")
			require.NoError(t, err)
			assert.Equal(t, second, data)

			// Channels are isolated.
			other, err := s.Load(ctx, "survival-quiz")
			require.NoError(t, err)
			assert.Nil(t, other)
		})
	}
}

func TestStore_RejectsInvalidChannel(t *testing.T) {
	ctx := context.Background()
	s := openBackend(t, "memory")

	for _, channel := range []string{"", "../escape", "UPPER", "white space", "-leading"} {
		_, err := s.Load(ctx, channel)
		assert.ErrorIs(t, err, ErrInvalidChannel, "load %q", channel)
		assert.ErrorIs(t, s.Save(ctx, channel, []byte("{}")), ErrInvalidChannel, "save %q", channel)
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("cassandra", t.TempDir())
	assert.Error(t, err)
}

func TestOpen_DefaultsToFile(t *testing.T) {
	dir := t.TempDir()
	s, err := Open("", dir)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	_, ok := s.(*FileStore)
	assert.True(t, ok, "empty backend should select the file store")
}

func TestFileStore_WritesUnderChannelDir(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "english-shorts", []byte("{}")))

	path := filepath.Join(dir, "channels", "english-shorts", "expressions.json")
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "english-shorts", []byte(`{"v":1}`)))
	require.NoError(t, s.Close())

	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	data, err := reopened.Load(ctx, "english-shorts")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"v":1}`), data)
}
