package storage

import (
	"scaffix/internal/config"
	"scaffix/internal/domain"
	"scaffix/internal/fsys"
)

// Storage persists and loads the last run report of each tool
type Storage interface {
	Save(report *domain.RunReport) error
	Load(tool string) (*domain.RunReport, error)
}

// JSONStorage stores reports as JSON files under the configured report dir.
type JSONStorage struct {
	cfg *config.Config
	fs  fsys.FS
}

// NewJSONStorage returns a Storage that reads/writes the config's report paths.
func NewJSONStorage(cfg *config.Config, fs fsys.FS) *JSONStorage {
	return &JSONStorage{cfg: cfg, fs: fs}
}
