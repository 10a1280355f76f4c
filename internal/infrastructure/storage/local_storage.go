package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Only image files are accepted for upload.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type StoredFile struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	MimeType     string `json:"mimetype"`
	OriginalName string `json:"originalname"`
	FieldName    string `json:"fieldname"`
	Size         int64  `json:"size"`
}

// LocalStorage writes accepted uploads to a directory on disk, renaming
// each file with a high-resolution timestamp so concurrent uploads of the
// same name never collide.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

// Allowed reports whether the filename's extension is in the accepted image
// set. Checked before any disk write.
func Allowed(filename string) bool {
	return allowedImageExtensions[strings.ToLower(filepath.Ext(filename))]
}

func (s *LocalStorage) Save(fieldName string, file *multipart.FileHeader) (*StoredFile, error) {
	if !Allowed(file.Filename) {
		return nil, fmt.Errorf("a extensão do arquivo %s não é permitida. Envie apenas imagens", file.Filename)
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := buildFilename(file.Filename, time.Now())
	path := filepath.Join(s.dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return nil, err
	}

	return &StoredFile{
		Filename:     filename,
		Path:         path,
		MimeType:     file.Header.Get("Content-Type"),
		OriginalName: file.Filename,
		FieldName:    fieldName,
		Size:         file.Size,
	}, nil
}

// buildFilename keeps the original base name and extension, inserting a
// nanosecond timestamp between them.
func buildFilename(original string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	return fmt.Sprintf("%s-%d%s", base, now.UnixNano(), ext)
}
