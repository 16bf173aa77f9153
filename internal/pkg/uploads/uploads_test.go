package uploads

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func TestStorage_Save(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	header := newFileHeader(t, "photo.png", "image/png", []byte("fake png bytes"))

	name, err := storage.Save(header)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.True(t, strings.HasSuffix(name, ".png"))

	written, err := os.ReadFile(filepath.Join(storage.dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), written)
}

func TestStorage_Save_UniqueNames(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	header := newFileHeader(t, "photo.jpg", "image/jpeg", []byte("a"))

	first, err := storage.Save(header)
	require.NoError(t, err)

	second, err := storage.Save(header)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestStorage_Save_RejectsUnsupportedExtension(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	header := newFileHeader(t, "script.svg", "image/svg+xml", []byte("<svg/>"))

	_, err = storage.Save(header)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestStorage_Save_RejectsMismatchedContentType(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	header := newFileHeader(t, "payload.png", "application/octet-stream", []byte("binary"))

	_, err = storage.Save(header)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestStorage_Save_RejectsOversizedFile(t *testing.T) {
	storage, err := NewStorage(t.TempDir())
	require.NoError(t, err)

	header := newFileHeader(t, "big.png", "image/png", []byte("small"))
	header.Size = MaxFileSize + 1

	_, err = storage.Save(header)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
