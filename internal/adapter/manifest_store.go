package adapter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
	m "incflat.dev/pkg/incflat/internal/model"
)

// ManifestStore serialises include manifests.
type ManifestStore interface {
	WriteManifest(w io.Writer, manifest m.IncludeManifest) error
}

// YAMLManifestStore writes manifests as YAML documents.
type YAMLManifestStore struct{}

// NewManifestStore constructs the YAML manifest store.
func NewManifestStore() *YAMLManifestStore {
	return &YAMLManifestStore{}
}

// WriteManifest encodes manifest to w.
func (s *YAMLManifestStore) WriteManifest(w io.Writer, manifest m.IncludeManifest) error {
	if manifest.Includes == nil {
		manifest.Includes = []m.IncludeEdge{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(manifest); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	return enc.Close()
}
