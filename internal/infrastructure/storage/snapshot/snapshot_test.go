package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"itemkeeper/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestFile(t *testing.T) (*File, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	return New(path, slog.Default()), path
}

func TestFile_Load_AbsentFileIsEmptySet(t *testing.T) {
	f, _ := newTestFile(t)

	items, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFile_Load_MalformedFileIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "truncated json", content: `[{"id":1,"name":"pen"`},
		{name: "wrong shape", content: `{"id":1}`},
		{name: "garbage", content: "not json at all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, path := newTestFile(t)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := f.Load(context.Background())
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestFile_SaveLoadRoundTrip(t *testing.T) {
	f, _ := newTestFile(t)
	items := []item.Item{
		{ID: 1, Name: "pen", Price: 1.5},
		{ID: 2, Name: "pencil", Price: 0.5},
	}

	require.NoError(t, f.Save(context.Background(), items))

	loaded, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, loaded)
}

func TestFile_Save_ReplacesPreviousContent(t *testing.T) {
	f, _ := newTestFile(t)

	require.NoError(t, f.Save(context.Background(), []item.Item{
		{ID: 1, Name: "pen", Price: 1.5},
		{ID: 2, Name: "pencil", Price: 0.5},
	}))
	require.NoError(t, f.Save(context.Background(), []item.Item{
		{ID: 1, Name: "pen", Price: 1.5},
	}))

	loaded, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestFile_Save_EmptySet(t *testing.T) {
	f, _ := newTestFile(t)

	require.NoError(t, f.Save(context.Background(), []item.Item{}))

	loaded, err := f.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestFile_Save_LeavesNoTempFiles(t *testing.T) {
	f, path := newTestFile(t)

	require.NoError(t, f.Save(context.Background(), []item.Item{{ID: 1, Name: "pen", Price: 1.5}}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}

func TestFile_Save_FailsOnMissingDirectory(t *testing.T) {
	f := New(filepath.Join(t.TempDir(), "missing", "items.json"), slog.Default())

	err := f.Save(context.Background(), []item.Item{{ID: 1, Name: "pen", Price: 1.5}})
	assert.Error(t, err)
}
