// Package uploads stores user-submitted images on local disk.
package uploads

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// MaxFileSize caps uploads at 5 MiB.
const MaxFileSize = 5 << 20

var (
	ErrFileTooLarge      = errors.New("file exceeds the maximum allowed size")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Storage struct {
	dir string
}

// NewStorage creates the upload directory if it does not exist yet.
func NewStorage(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &Storage{dir: dir}, nil
}

// Save validates and writes an uploaded image, returning the generated
// file name. Names combine a timestamp and random suffix so concurrent
// uploads never collide.
func (s *Storage) Save(header *multipart.FileHeader) (string, error) {
	if header.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedFormat
	}

	if contentType := header.Header.Get("Content-Type"); contentType != "" && !allowedContentTypes[contentType] {
		return "", ErrUnsupportedFormat
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("header.Open -> %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("image-%d-%s%s", time.Now().UnixMilli(), randomSuffix(), ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("os.Create -> %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("io.Copy -> %w", err)
	}

	return name, nil
}

func randomSuffix() string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}

	return hex.EncodeToString(buf)
}
