package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makyelver-commits/eventor/internal/apperr"
)

// uploadHeader builds a real multipart.FileHeader the way gin receives one.
func uploadHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveImageStoresFileAndReturnsURL(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "http://localhost:8080")

	header := uploadHeader(t, "flyer.png", "image/png", []byte("png-bytes"))

	url, err := store.SaveImage("u1", header)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:8080/uploads/u1/"))
	assert.True(t, strings.HasSuffix(url, "-flyer.png"))

	entries, err := os.ReadDir(filepath.Join(dir, "u1"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "u1", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSaveImageRejectsNonImages(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "http://localhost:8080")

	header := uploadHeader(t, "notes.txt", "text/plain", []byte("hello"))

	_, err := store.SaveImage("u1", header)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))

	// Nothing written.
	_, statErr := os.Stat(filepath.Join(dir, "u1"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestSaveImageRejectsOversizedFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir, "http://localhost:8080")

	header := uploadHeader(t, "big.png", "image/png", bytes.Repeat([]byte("x"), MaxImageSize+1))

	_, err := store.SaveImage("u1", header)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestSanitizeStripsPathSeparators(t *testing.T) {
	assert.Equal(t, "_etc_passwd", sanitize("/etc/passwd"))
	assert.Equal(t, "__secret", sanitize("../secret"))
	assert.Equal(t, "a_b", sanitize(`a\b`))
	assert.Equal(t, "file", sanitize(""))
}
