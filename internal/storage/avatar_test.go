package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adiprasetyo/task-tracker-api/internal/constants"
)

// pngBytes is a minimal valid PNG signature plus header chunk start.
var pngBytes = []byte{
	0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 'I', 'H', 'D', 'R',
}

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("avatar", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["avatar"][0]
}

func TestAvatarSave(t *testing.T) {
	root := t.TempDir()
	store := NewAvatarStore(root)

	path, err := store.Save(uploadHeader(t, "me.png", pngBytes))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(path, "avatars/"))
	require.True(t, strings.HasSuffix(path, ".png"))

	written, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(path)))
	require.NoError(t, err)
	require.Equal(t, pngBytes, written)
}

func TestAvatarSave_SniffsContentNotFilename(t *testing.T) {
	store := NewAvatarStore(t.TempDir())

	// A text file named .png is still rejected.
	_, err := store.Save(uploadHeader(t, "fake.png", []byte("definitely not an image")))
	require.ErrorIs(t, err, ErrAvatarBadType)
}

func TestAvatarSave_GIF(t *testing.T) {
	store := NewAvatarStore(t.TempDir())

	gif := append([]byte("GIF89a"), make([]byte, 32)...)
	path, err := store.Save(uploadHeader(t, "anim.gif", gif))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, ".gif"))
}

func TestAvatarSave_TooLarge(t *testing.T) {
	store := NewAvatarStore(t.TempDir())

	// The size cap is checked before the file is opened.
	header := &multipart.FileHeader{
		Filename: "huge.png",
		Size:     constants.MaxAvatarSizeBytes + 1,
	}
	_, err := store.Save(header)
	require.ErrorIs(t, err, ErrAvatarTooLarge)
}
