package usecase

import (
	"context"

	"enplan/internal/domain/entity"
	"enplan/internal/domain/service"
)

// CreateProjectInput defines the data required to create a project.
type CreateProjectInput struct {
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description"`
}

// UpdateProjectInput is the enumerated set of updatable project fields.
type UpdateProjectInput struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ProjectUsecase defines owner-scoped project operations. All operations act
// on behalf of the authenticated account carried in the claims; a project is
// never visible outside its owner.
type ProjectUsecase interface {
	Create(ctx context.Context, claims *service.Claims, input *CreateProjectInput) (*entity.Project, error)
	List(ctx context.Context, claims *service.Claims) ([]*entity.Project, error)
	Get(ctx context.Context, claims *service.Claims, projectID int64) (*entity.Project, error)
	Update(ctx context.Context, claims *service.Claims, projectID int64, input *UpdateProjectInput) (*entity.Project, error)
	Delete(ctx context.Context, claims *service.Claims, projectID int64) error
}
