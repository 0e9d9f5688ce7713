// Package storage is a bucket-addressed object store backed by the local
// filesystem. Buckets hold project hero images, gallery files, and
// brochures; objects are served back through a configured public base URL.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	appErr "github.com/slklaos/backoffice/pkg/errors"
	"github.com/slklaos/backoffice/pkg/utils"
)

// Bucket names used by the back-office.
const (
	BucketProjectImages    = "project-images"
	BucketProjectGallery   = "project-gallery"
	BucketProjectBrochures = "project-brochures"
)

var knownBuckets = map[string]bool{
	BucketProjectImages:    true,
	BucketProjectGallery:   true,
	BucketProjectBrochures: true,
}

// Store saves and removes objects in named buckets on local disk.
type Store struct {
	root    string
	baseURL string
}

// New creates the store root if necessary.
func New(root, baseURL string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, appErr.Wrap(err, appErr.CodeInternal, "create storage root failed")
	}
	return &Store{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// ValidBucket reports whether the bucket name is one the service owns.
func ValidBucket(bucket string) bool { return knownBuckets[bucket] }

// ObjectKey builds the upload path convention:
// {category}/{slugified-title}/{timestamp}-{filename}.
func ObjectKey(category, title, filename string) string {
	slug := utils.Slugify(title)
	if slug == "" {
		slug = "untitled"
	}
	cat := utils.Slugify(category)
	if cat == "" {
		cat = "general"
	}
	return fmt.Sprintf("%s/%s/%d-%s", cat, slug, time.Now().Unix(), filepath.Base(filename))
}

// Save writes the object and returns its public URL. The write goes through
// a temp file so a failed upload never leaves a partial object.
func (s *Store) Save(bucket, key string, r io.Reader) (string, error) {
	if !ValidBucket(bucket) {
		return "", appErr.New(appErr.CodeInvalid, fmt.Sprintf("unknown bucket %q", bucket))
	}
	clean, err := cleanKey(key)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(s.root, bucket, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "create object dir failed")
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", appErr.Wrap(err, appErr.CodeInternal, "create temp object failed")
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", appErr.Wrap(err, appErr.CodeInternal, "write object failed")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", appErr.Wrap(err, appErr.CodeInternal, "close object failed")
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return "", appErr.Wrap(err, appErr.CodeInternal, "finalize object failed")
	}

	return s.PublicURL(bucket, clean), nil
}

// PublicURL returns the URL an object is served from.
func (s *Store) PublicURL(bucket, key string) string {
	return s.baseURL + "/" + bucket + "/" + strings.TrimLeft(key, "/")
}

// Remove deletes an object. Missing objects are not an error: removal runs
// best-effort after record deletes.
func (s *Store) Remove(bucket, key string) error {
	if !ValidBucket(bucket) {
		return appErr.New(appErr.CodeInvalid, fmt.Sprintf("unknown bucket %q", bucket))
	}
	clean, err := cleanKey(key)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, bucket, filepath.FromSlash(clean))); err != nil && !os.IsNotExist(err) {
		return appErr.Wrap(err, appErr.CodeInternal, "remove object failed")
	}
	return nil
}

// RemoveURL resolves a public URL back to its bucket and key and removes the
// object. URLs outside this store's base are ignored.
func (s *Store) RemoveURL(rawURL string) error {
	rest, ok := strings.CutPrefix(rawURL, s.baseURL+"/")
	if !ok {
		return nil
	}
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok {
		return nil
	}
	return s.Remove(bucket, key)
}

func cleanKey(key string) (string, error) {
	for _, seg := range strings.Split(key, "/") {
		if seg == ".." {
			return "", appErr.New(appErr.CodeInvalid, "invalid object key")
		}
	}
	clean := strings.TrimPrefix(path.Clean("/"+key), "/")
	if clean == "" {
		return "", appErr.New(appErr.CodeInvalid, "invalid object key")
	}
	return clean, nil
}
