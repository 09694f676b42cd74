package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"scaffix/internal/domain"
)

// ErrNoReport is returned by Load when the tool has not run yet
var ErrNoReport = errors.New("no stored report")

// Save writes the report to <report dir>/<tool>-report.json.
func (s *JSONStorage) Save(report *domain.RunReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.cfg.GetReportPath(report.Tool)
	if err := s.fs.MkdirAll(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := s.fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last report stored for tool.
func (s *JSONStorage) Load(tool string) (*domain.RunReport, error) {
	path := s.cfg.GetReportPath(tool)
	data, err := s.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w for %s (run `scaffix %s` first)", ErrNoReport, tool, tool)
		}
		return nil, fmt.Errorf("read report file: %w", err)
	}

	var report domain.RunReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}
