package store

import "github.com/reclip-dev/reclip/internal/models"

// DB is the project storage interface.
type DB interface {
	// SaveProject creates or overwrites a project record.
	SaveProject(p *models.Project) error
	// GetProject returns the project with the given name.
	GetProject(name string) (*models.Project, error)
	// ListProjects returns all saved projects ordered by name.
	ListProjects() ([]*models.Project, error)
	// DeleteProjects deletes one or more saved projects by name.
	DeleteProjects(names []string) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}
