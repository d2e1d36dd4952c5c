package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadDownloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	path, err := s.Upload(ctx, strings.NewReader("atestado medico"), "absences/u1/doc.pdf", "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "absences/u1/doc.pdf", path)

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "atestado medico", string(content))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	_, err := s.Upload(ctx, strings.NewReader("x"), "../../etc/passwd", "text/plain")
	assert.Error(t, err)

	_, err = s.Download(ctx, "../../etc/passwd")
	assert.Error(t, err)
}

func TestLocalStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	path, err := s.Upload(ctx, strings.NewReader("x"), "tmp/file.txt", "text/plain")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, path))

	exists, err := s.Exists(ctx, path)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting again is a no-op
	assert.NoError(t, s.Delete(ctx, path))
}

func TestLocalStorage_GetURL(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)

	url, err := s.GetURL(ctx, "absences/u1/doc.pdf", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/absences/u1/doc.pdf", url)
}
