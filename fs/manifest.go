package fs

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/uscon"
	"github.com/google/uuid"
)

// Manifest describes one build generation: which files were written
// and the content hash of each, so deploys can detect what changed.
type Manifest struct {
	BuildID     string         `json:"buildId"`
	Name        string         `json:"name"`
	GeneratedAt time.Time      `json:"generatedAt"`
	EntryCount  int            `json:"entryCount"`
	Files       []ManifestFile `json:"files"`
}

// ManifestFile records one generated file.
type ManifestFile struct {
	Path string `json:"path"`
	Hash string `json:"hash"`
	Size int    `json:"size"`
}

// NewManifest starts a manifest for a build of the named document.
func NewManifest(name string, entryCount int) *Manifest {
	return &Manifest{
		BuildID:     uuid.New().String(),
		Name:        name,
		GeneratedAt: time.Now().UTC(),
		EntryCount:  entryCount,
	}
}

// AddFile records a generated file and its content hash.
func (m *Manifest) AddFile(file *uscon.SiteFile) {
	h := xxhash.Sum64(file.Content)
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	m.Files = append(m.Files, ManifestFile{
		Path: file.Path,
		Hash: hex.EncodeToString(b),
		Size: len(file.Content),
	})
}

// Encode serializes the manifest for writing as manifest.json.
func (m *Manifest) Encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
