package storage

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"graphite-theme/config"
	"graphite-theme/model"
)

// Artifact describes a generated file in the output directory.
type Artifact struct {
	Name     string    `json:"name"`
	Format   string    `json:"format"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Store writes generated configuration artifacts into an output directory.
type Store struct {
	baseDir string
	mu      sync.Mutex
}

// New creates a new Store instance with the given base directory.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// EnsureDirs creates the output directory.
func (s *Store) EnsureDirs() error {
	return os.MkdirAll(s.baseDir, 0o755)
}

// ArtifactName returns the file name used for a format.
func ArtifactName(format config.Format) string {
	switch format {
	case config.FormatESM, config.FormatCJS:
		return "tailwind.config" + format.Extension()
	default:
		return "theme" + format.Extension()
	}
}

// Write encodes cfg in each requested format and saves it, returning the written paths.
func (s *Store) Write(cfg model.Config, formats ...config.Format) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(formats) == 0 {
		return nil, fmt.Errorf("no formats requested")
	}
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		data, err := config.Marshal(cfg, format)
		if err != nil {
			return paths, fmt.Errorf("encode %s: %w", format, err)
		}
		path := filepath.Join(s.baseDir, ArtifactName(format))
		if err := config.WriteFileAtomic(path, data); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// List returns the recognized artifacts in the output directory sorted by name.
func (s *Store) List() ([]Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var artifacts []Artifact
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		format, err := config.FormatFromPath(entry.Name())
		if err != nil {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		artifacts = append(artifacts, artifactFrom(info, format))
	}

	sort.Slice(artifacts, func(i, j int) bool {
		return artifacts[i].Name < artifacts[j].Name
	})
	return artifacts, nil
}

func artifactFrom(info fs.FileInfo, format config.Format) Artifact {
	return Artifact{
		Name:     info.Name(),
		Format:   string(format),
		Size:     info.Size(),
		Modified: info.ModTime().UTC(),
	}
}
