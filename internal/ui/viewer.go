package ui

import "scaffix/internal/domain"

// Viewer displays a stored run report interactively
type Viewer interface {
	View(report *domain.RunReport) error
}
