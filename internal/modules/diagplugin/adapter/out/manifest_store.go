package out

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"partshub/internal/modules/diagplugin/domain"
	diagout "partshub/internal/modules/diagplugin/port/out"
)

// FileManifestStore reads decoder manifests from <base>/plugins/*.yaml,
// one plugin per file. Relative binary paths resolve against the state
// directory, so a plugin dropped next to its manifest keeps working when
// the state dir moves.
type FileManifestStore struct {
	basePath string
	dir      string
}

func NewFileManifestStore(basePath string) diagout.ManifestStore {
	return &FileManifestStore{basePath: basePath, dir: filepath.Join(basePath, "plugins")}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read plugin dir: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ext := filepath.Ext(entry.Name()); ext == ".yaml" || ext == ".yml" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	manifests := make([]domain.Manifest, 0, len(names))
	for _, name := range names {
		raw, err := os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return nil, fmt.Errorf("read manifest %s: %w", name, err)
		}
		var manifest domain.Manifest
		decoder := yaml.NewDecoder(bytes.NewReader(raw))
		decoder.KnownFields(true)
		if err := decoder.Decode(&manifest); err != nil {
			return nil, fmt.Errorf("decode manifest %s: %w", name, err)
		}
		manifest.SHA256 = strings.ToLower(strings.TrimSpace(manifest.SHA256))
		if manifest.Binary != "" && !filepath.IsAbs(manifest.Binary) {
			manifest.Binary = filepath.Clean(filepath.Join(s.basePath, manifest.Binary))
		}
		manifests = append(manifests, manifest)
	}
	return manifests, nil
}
