package usecase

import (
	"context"

	"enplan/internal/domain/entity"
)

// ComponentUsecase exposes the read-only component catalog. The catalog is
// seeded at startup and shared by all accounts, so no claims are involved.
type ComponentUsecase interface {
	List(ctx context.Context) ([]*entity.Component, error)
	Get(ctx context.Context, name string) (*entity.Component, error)
	// Seed installs the built-in catalog entries. Safe to call repeatedly;
	// existing entries are left untouched.
	Seed(ctx context.Context) error
}
