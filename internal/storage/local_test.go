package storage

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir(), "http://cdn.local/storage")
	require.NoError(t, err)
	return s
}

func TestObjectKeyConvention(t *testing.T) {
	key := ObjectKey("Residential", "Villa Aurora!", "hero.jpg")
	require.Regexp(t, regexp.MustCompile(`^residential/villa-aurora/\d+-hero\.jpg$`), key)

	key = ObjectKey("", "", "doc.pdf")
	require.True(t, strings.HasPrefix(key, "general/untitled/"))
}

func TestSaveAndRemove(t *testing.T) {
	s := newTestStore(t)

	url, err := s.Save(BucketProjectImages, "residential/villa/1-hero.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	require.Equal(t, "http://cdn.local/storage/project-images/residential/villa/1-hero.jpg", url)

	data, err := os.ReadFile(filepath.Join(s.root, BucketProjectImages, "residential", "villa", "1-hero.jpg"))
	require.NoError(t, err)
	require.Equal(t, "image-bytes", string(data))

	require.NoError(t, s.RemoveURL(url))
	_, err = os.Stat(filepath.Join(s.root, BucketProjectImages, "residential", "villa", "1-hero.jpg"))
	require.True(t, os.IsNotExist(err))

	// Removing a missing object is not an error.
	require.NoError(t, s.Remove(BucketProjectImages, "residential/villa/1-hero.jpg"))
}

func TestSaveRejectsUnknownBucketAndTraversal(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Save("not-a-bucket", "a/b.jpg", strings.NewReader("x"))
	require.Error(t, err)

	_, err = s.Save(BucketProjectImages, "../escape.jpg", strings.NewReader("x"))
	require.Error(t, err)
}

func TestRemoveURLIgnoresForeignURLs(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.RemoveURL("https://elsewhere.example/file.pdf"))
}
