package repository

import (
	"context"
	"errors"

	"enplan/internal/domain/entity"
)

// ErrProjectNotFound is a domain-specific error returned when a project is not found.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines the standard operations for project persistence.
type ProjectRepository interface {
	// FindByID retrieves a single project by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Project, error)

	// ListByOwner retrieves all projects owned by the given account.
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Project, error)

	// Create persists a new project and assigns its ID.
	Create(ctx context.Context, project *entity.Project) error

	// Update replaces the mutable fields of an existing project.
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes the project with the given ID.
	Delete(ctx context.Context, id int64) error

	// DeleteByOwner removes every project owned by the given account. Used
	// when the owning account itself is deleted.
	DeleteByOwner(ctx context.Context, ownerID int64) error
}
