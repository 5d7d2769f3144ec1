package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/adiprasetyo/task-tracker-api/internal/constants"
)

var (
	// ErrAvatarTooLarge is returned when the upload exceeds the size cap.
	ErrAvatarTooLarge = errors.New("the avatar may not be greater than 2048 kilobytes")
	// ErrAvatarBadType is returned when the upload is not an accepted image type.
	ErrAvatarBadType = errors.New("the avatar must be a file of type: jpeg, png, jpg, gif")
)

var acceptedMIMEs = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
}

// AvatarStore persists uploaded avatar images under a storage root and hands
// back the relative path stored on the owning user row.
type AvatarStore struct {
	root string
}

// NewAvatarStore creates an AvatarStore rooted at dir.
func NewAvatarStore(dir string) *AvatarStore {
	return &AvatarStore{root: dir}
}

// Save validates and writes an uploaded avatar. The returned path is relative
// to the storage root, e.g. "avatars/2f9c....png".
func (s *AvatarStore) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > constants.MaxAvatarSizeBytes {
		return "", ErrAvatarTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	// Sniff the real content type; the client-sent header is not trusted.
	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type: %w", err)
	}
	ext, ok := acceptedMIMEs[mtype.String()]
	if !ok {
		return "", ErrAvatarBadType
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	relPath := filepath.Join(constants.AvatarDir, uuid.New().String()+ext)
	dstPath := filepath.Join(s.root, relPath)
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return "", fmt.Errorf("failed to create avatar directory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write avatar file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}
