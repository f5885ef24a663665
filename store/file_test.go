// path: store/file_test.go
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pestreport/models"
)

func newTestStore(t *testing.T) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "submissions.json")
	st, err := NewFileStore(path)
	require.NoError(t, err)
	return st, path
}

func TestFileStore_AppendKeepsOrder(t *testing.T) {
	st, _ := newTestStore(t)

	for i := 0; i < 5; i++ {
		rec := models.Submission{
			Timestamp: fmt.Sprintf("2024-01-0%dT10:00:00Z", i+1),
			YourName:  fmt.Sprintf("reporter-%d", i),
		}
		require.NoError(t, st.Append(rec))
	}

	recs, err := st.ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 5)
	for i, rec := range recs {
		assert.Equal(t, fmt.Sprintf("reporter-%d", i), rec.YourName)
	}
}

func TestFileStore_ReadAllMissingFile(t *testing.T) {
	st, _ := newTestStore(t)

	recs, err := st.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestFileStore_ReadAllCorruptFile(t *testing.T) {
	st, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := st.ReadAll()
	require.ErrorIs(t, err, ErrCorrupt)
}

func TestFileStore_ReplaceAll(t *testing.T) {
	st, path := newTestStore(t)
	require.NoError(t, st.Append(models.Submission{YourName: "old"}))
	require.NoError(t, st.Append(models.Submission{YourName: "older"}))

	require.NoError(t, st.ReplaceAll([]models.Submission{{YourName: "kept"}}))

	recs, err := st.ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "kept", recs[0].YourName)

	// The rewrite stays pretty-printed.
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "\n  "), "expected indented JSON, got %s", b)
}

func TestFileStore_ReplaceAllEmptyWritesArray(t *testing.T) {
	st, path := newTestStore(t)
	require.NoError(t, st.Append(models.Submission{YourName: "gone"}))

	require.NoError(t, st.ReplaceAll(nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(b)))
}
