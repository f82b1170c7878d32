// Package blob provides a local-disk implementation of the attachment store.
// Files are written under a single directory and served at a public path;
// an uploaded file may exist without being referenced by any project yet,
// the caller attaches the returned URL in a follow-up create/update.
package blob

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ahmedw/folio/ports"
)

var extPattern = regexp.MustCompile(`^\.[a-zA-Z0-9]+$`)

// Store writes uploads to dir and returns URLs under publicPath.
type Store struct {
	dir        string
	publicPath string
}

// NewStore creates a disk-backed attachment store. The directory is created
// if it does not exist.
func NewStore(dir, publicPath string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{dir: dir, publicPath: strings.TrimSuffix(publicPath, "/")}, nil
}

// Save stores the content under a collision-resistant name: a random token
// plus the original file's extension.
func (s *Store) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	token := make([]byte, 16)
	if _, err := rand.Read(token); err != nil {
		return "", fmt.Errorf("generate filename: %w", err)
	}

	name := hex.EncodeToString(token) + safeExt(originalName)
	dst := filepath.Join(s.dir, name)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(dst)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("close upload: %w", err)
	}

	return s.publicPath + "/" + name, nil
}

// Dir returns the directory files are stored in, for serving.
func (s *Store) Dir() string {
	return s.dir
}

// safeExt extracts the extension from an untrusted filename. Anything that
// is not a plain alphanumeric extension is dropped.
func safeExt(name string) string {
	ext := strings.ToLower(path.Ext(path.Base(name)))
	if !extPattern.MatchString(ext) {
		return ""
	}
	return ext
}

// Ensure interface compliance.
var _ ports.FileStore = (*Store)(nil)
