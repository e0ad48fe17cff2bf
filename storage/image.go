// Package storage handles uploaded achievement images. Two strategies
// exist: files on disk served under /uploads, or base64 data URIs embedded
// in the record itself. A deployment uses one or the other, never both.
package storage

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore accepts one uploaded image and yields a locator the frontend
// can render directly.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
	Remove(locator string) error
}

// FileStore keeps uploads on disk under a dedicated directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the upload under a unique generated filename and returns
// its public /uploads path.
func (s *FileStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + filename, nil
}

// Remove deletes the stored file behind the locator. Locators this store
// did not produce, and files already gone, are not errors.
func (s *FileStore) Remove(locator string) error {
	name := strings.TrimPrefix(locator, "/uploads/")
	if name == "" || name == locator {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// InlineStore embeds the image bytes in the record as a data URI, so the
// upload leaves nothing on disk.
type InlineStore struct{}

func NewInlineStore() *InlineStore {
	return &InlineStore{}
}

func (s *InlineStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// Remove is a no-op: the encoded image lives and dies with its record.
func (s *InlineStore) Remove(string) error {
	return nil
}
