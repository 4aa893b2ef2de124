package repository

import (
	"context"
	"errors"

	"enplan/internal/domain/entity"
)

// ErrComponentNotFound is a domain-specific error returned when a catalog component is not found.
var ErrComponentNotFound = errors.New("component not found")

// ComponentRepository defines the operations for the component template catalog.
type ComponentRepository interface {
	// List retrieves the full catalog ordered by name.
	List(ctx context.Context) ([]*entity.Component, error)

	// FindByName retrieves a single catalog entry by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Component, error)

	// Upsert inserts a template or leaves an existing one untouched, keyed by
	// name. Seeding runs on every startup so it must be idempotent.
	Upsert(ctx context.Context, component *entity.Component) error
}
