package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "enplan/internal/delivery/context"
	"enplan/internal/domain/entity"
	domainerrors "enplan/internal/domain/errors"
	"enplan/internal/domain/repository"
	"enplan/internal/domain/service"
	"enplan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// projectService implements the ProjectUsecase interface.
type projectService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	projectRepo repository.ProjectRepository
	logger      *slog.Logger
}

// ProjectServiceParams holds dependencies for projectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	ProjectRepo repository.ProjectRepository
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		projectRepo: params.ProjectRepo,
		logger:      params.Logger,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a new project owned by the authenticated account.
func (srv *projectService) Create(ctx context.Context, claims *service.Claims, input *usecase.CreateProjectInput) (*entity.Project, error) {
	owner, err := srv.resolveOwner(ctx, claims)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project := &entity.Project{
		OwnerID:     owner.ID,
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// Single operation - use direct repository instance.
	if err := srv.projectRepo.Create(ctx, project); err != nil {
		srv.log(ctx).Error("Failed to create project", slog.Int64("ownerID", owner.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create project")
	}

	srv.log(ctx).Debug("Project created", slog.Int64("projectID", project.ID), slog.Int64("ownerID", owner.ID))

	return project, nil
}

// List returns every project owned by the authenticated account.
func (srv *projectService) List(ctx context.Context, claims *service.Claims) ([]*entity.Project, error) {
	owner, err := srv.resolveOwner(ctx, claims)
	if err != nil {
		return nil, err
	}

	projects, err := srv.projectRepo.ListByOwner(ctx, owner.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to list projects", slog.Int64("ownerID", owner.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

// Get returns a single owned project.
func (srv *projectService) Get(ctx context.Context, claims *service.Claims, projectID int64) (*entity.Project, error) {
	owner, err := srv.resolveOwner(ctx, claims)
	if err != nil {
		return nil, err
	}

	return srv.loadOwnedProject(ctx, srv.projectRepo, owner.ID, projectID)
}

// Update applies the enumerated patch fields to an owned project.
func (srv *projectService) Update(ctx context.Context, claims *service.Claims, projectID int64, input *usecase.UpdateProjectInput) (*entity.Project, error) {
	owner, err := srv.resolveOwner(ctx, claims)
	if err != nil {
		return nil, err
	}

	var updated *entity.Project
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		projectRepo := repoFactory.ProjectRepo()

		project, err := srv.loadOwnedProject(ctx, projectRepo, owner.ID, projectID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			project.Name = *input.Name
		}
		if input.Description != nil {
			project.Description = *input.Description
		}
		project.UpdatedAt = time.Now()

		if err := projectRepo.Update(ctx, project); err != nil {
			return errors.Wrap(err, "failed to update project")
		}

		updated = project

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Project update failed", slog.Int64("projectID", projectID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute project update transaction")
	}

	return updated, nil
}

// Delete removes an owned project.
func (srv *projectService) Delete(ctx context.Context, claims *service.Claims, projectID int64) error {
	owner, err := srv.resolveOwner(ctx, claims)
	if err != nil {
		return err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		projectRepo := repoFactory.ProjectRepo()

		if _, err := srv.loadOwnedProject(ctx, projectRepo, owner.ID, projectID); err != nil {
			return err
		}

		if err := projectRepo.Delete(ctx, projectID); err != nil {
			return errors.Wrap(err, "failed to delete project")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Project deletion failed", slog.Int64("projectID", projectID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute project deletion transaction")
	}

	srv.log(ctx).Debug("Project deleted", slog.Int64("projectID", projectID))

	return nil
}

// resolveOwner maps claims to the owning account, reusing the same id-first,
// username-fallback lookup the account operations use.
func (srv *projectService) resolveOwner(ctx context.Context, claims *service.Claims) (*entity.Account, error) {
	var (
		account *entity.Account
		err     error
	)

	if claims.AccountID != 0 {
		account, err = srv.accountRepo.FindByID(ctx, claims.AccountID)
	} else {
		account, err = srv.accountRepo.FindByUsername(ctx, claims.Username)
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to resolve project owner", slog.String("username", claims.Username), slog.Any("error", err))

		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to resolve project owner")
	}

	return account, nil
}

// loadOwnedProject fetches a project and enforces ownership. A project owned
// by someone else reports as not found rather than forbidden to avoid leaking
// its existence.
func (srv *projectService) loadOwnedProject(ctx context.Context, projectRepo repository.ProjectRepository, ownerID, projectID int64) (*entity.Project, error) {
	project, err := projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrProjectNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProjectNotFound, "project not found")
		}

		return nil, errors.Wrap(err, "failed to find project")
	}

	if project.OwnerID != ownerID {
		return nil, errors.Wrap(domainerrors.ErrProjectNotFound, "project not found")
	}

	return project, nil
}
