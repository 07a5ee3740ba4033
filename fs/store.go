// Package fs provides file-based storage for generated sites.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/uscon"
)

// Ensure SiteStore implements uscon.SiteStore at compile time.
var _ uscon.SiteStore = (*SiteStore)(nil)

// SiteStore implements uscon.SiteStore with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on
// Commit, so a half-finished build never replaces a good site.
type SiteStore struct {
	baseDir string
	name    string
}

// NewSiteStore creates a new SiteStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSiteStore(baseDir, name string) *SiteStore {
	return &SiteStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *SiteStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SiteStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Dir returns the committed site directory.
func (s *SiteStore) Dir() string {
	return s.finalDir()
}

// Save writes one generated file into the pending generation.
func (s *SiteStore) Save(ctx context.Context, file *uscon.SiteFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if file.Path == "" {
		return uscon.Errorf(uscon.EINVALID, "site file path required")
	}
	if filepath.IsAbs(file.Path) || strings.Contains(file.Path, "..") {
		return uscon.Errorf(uscon.EINVALID, "site file path %q must be relative to the site root", file.Path)
	}

	fullPath := filepath.Join(s.tempDir(), file.Path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, file.Content, 0644)
}

// Commit atomically replaces the previous generation with the pending one.
func (s *SiteStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the pending generation.
func (s *SiteStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
