package storage

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// multipartFile builds a real *multipart.FileHeader by round-tripping a
// form through the standard HTTP parser.
func multipartFile(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	files := req.MultipartForm.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("foto.jpg"))
	assert.True(t, Allowed("foto.JPEG"))
	assert.True(t, Allowed("foto.png"))
	assert.True(t, Allowed("foto.webp"))
	assert.False(t, Allowed("script.exe"))
	assert.False(t, Allowed("notas.pdf"))
	assert.False(t, Allowed("semextensao"))
}

func TestSaveWritesRenamedFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	header := multipartFile(t, "cachorro.png", "conteudo-da-imagem")

	stored, err := store.Save("file", header)
	require.NoError(t, err)

	assert.Equal(t, "cachorro.png", stored.OriginalName)
	assert.Equal(t, "file", stored.FieldName)
	assert.Equal(t, int64(len("conteudo-da-imagem")), stored.Size)
	assert.Regexp(t, `^cachorro-\d+\.png$`, stored.Filename)

	data, err := os.ReadFile(filepath.Join(dir, stored.Filename))
	require.NoError(t, err)
	assert.Equal(t, "conteudo-da-imagem", string(data))
}

func TestSaveRejectsDisallowedExtensionBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	header := multipartFile(t, "virus.exe", "mz")

	_, err = store.Save("file", header)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing may reach disk when the extension is rejected")
}

func TestBuildFilename(t *testing.T) {
	now := time.Unix(0, 1700000000000000000)

	assert.Equal(t,
		fmt.Sprintf("perfil-%d.jpg", now.UnixNano()),
		buildFilename("perfil.JPG", now))
	assert.Equal(t,
		fmt.Sprintf("foto.de.casa-%d.png", now.UnixNano()),
		buildFilename("foto.de.casa.png", now))
}
