// Package storage keeps uploaded resumes on the local filesystem.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/netbeans/netbeans-server/internal/core/domain"
)

const defaultMaxBytes = 5 << 20

// allowedTypes are the accepted resume formats: PDF, DOC and DOCX.
var allowedTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// LocalStore implements ports.ResumeStore under a single root directory.
type LocalStore struct {
	root     string
	maxBytes int64
}

// NewLocalStore creates root if needed. A non-positive maxBytes falls back
// to 5 MiB.
func NewLocalStore(root string, maxBytes int64) (*LocalStore, error) {
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("storage: create root: %w", err)
	}
	return &LocalStore{root: abs, maxBytes: maxBytes}, nil
}

// Root returns the absolute storage directory.
func (s *LocalStore) Root() string { return s.root }

// Save writes r under a random name, then sniffs the content. Files over the
// size limit or of an unsupported type are removed again.
func (s *LocalStore) Save(ctx context.Context, originalName string, r io.Reader) (domain.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return domain.StoredFile{}, err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	full := filepath.Join(s.root, name)

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return domain.StoredFile{}, fmt.Errorf("storage: create: %w", err)
	}
	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(full)
		return domain.StoredFile{}, fmt.Errorf("storage: write: %w", err)
	}
	if n > s.maxBytes {
		_ = os.Remove(full)
		return domain.StoredFile{}, domain.ErrResumeTooLarge
	}

	contentType, ok := detect(full)
	if !ok {
		_ = os.Remove(full)
		return domain.StoredFile{}, domain.ErrUnsupportedResumeType
	}

	return domain.StoredFile{
		Path:         name,
		OriginalName: filepath.Base(originalName),
		ContentType:  contentType,
		Size:         n,
	}, nil
}

// detect returns the allowed type the file matches, walking up the
// detected type's parents so generic matches are resolved too.
func detect(path string) (string, bool) {
	m, err := mimetype.DetectFile(path)
	if err != nil {
		return "", false
	}
	for ; m != nil; m = m.Parent() {
		for _, allowed := range allowedTypes {
			if m.Is(allowed) {
				return allowed, true
			}
		}
	}
	return "", false
}

// Resolve maps a stored relative path to an absolute one inside the root.
func (s *LocalStore) Resolve(path string) (string, error) {
	if path == "" {
		return "", errors.New("storage: empty path")
	}
	full := filepath.Join(s.root, filepath.Clean("/"+path))
	rel, err := filepath.Rel(s.root, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("storage: path %q escapes root", path)
	}
	return full, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *LocalStore) Remove(_ context.Context, path string) error {
	full, err := s.Resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}
