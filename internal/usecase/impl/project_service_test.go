package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"enplan/internal/domain/entity"
	domainerrors "enplan/internal/domain/errors"
	"enplan/internal/domain/repository"
	"enplan/internal/domain/service"
	mockRepo "enplan/internal/mocks/repository"
	"enplan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectServiceFixtures struct {
	service     usecase.ProjectUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	projectRepo *mockRepo.MockProjectRepository
}

func createTestProjectService(t *testing.T) projectServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	projectRepo := mockRepo.NewMockProjectRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewProjectService(ProjectServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		ProjectRepo: projectRepo,
		Logger:      logger,
	})

	return projectServiceFixtures{
		service:     svc,
		txManager:   txManager,
		accountRepo: accountRepo,
		projectRepo: projectRepo,
	}
}

func TestProjectService_Create_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}
	input := &usecase.CreateProjectInput{Name: "district heat study", Description: "variant A"}

	owner := &entity.Account{ID: 1, Username: "alice"}
	fx.accountRepo.EXPECT().FindByID(ctx, int64(1)).Return(owner, nil)
	fx.projectRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Project")).
		Run(func(ctx context.Context, project *entity.Project) {
			assert.Equal(t, int64(1), project.OwnerID)
			assert.Equal(t, "district heat study", project.Name)
			project.ID = 10
		}).
		Return(nil)

	project, err := fx.service.Create(ctx, claims, input)

	require.NoError(t, err)
	assert.Equal(t, int64(10), project.ID)
	assert.WithinDuration(t, time.Now(), project.CreatedAt, time.Minute)
}

func TestProjectService_List_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}

	owner := &entity.Account{ID: 1, Username: "alice"}
	owned := []*entity.Project{
		{ID: 2, OwnerID: 1, Name: "second"},
		{ID: 1, OwnerID: 1, Name: "first"},
	}
	fx.accountRepo.EXPECT().FindByID(ctx, int64(1)).Return(owner, nil)
	fx.projectRepo.EXPECT().ListByOwner(ctx, int64(1)).Return(owned, nil)

	projects, err := fx.service.List(ctx, claims)

	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestProjectService_Get_NotOwned(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}

	owner := &entity.Account{ID: 1, Username: "alice"}
	foreign := &entity.Project{ID: 7, OwnerID: 99, Name: "not yours"}

	fx.accountRepo.EXPECT().FindByID(ctx, int64(1)).Return(owner, nil)
	fx.projectRepo.EXPECT().FindByID(ctx, int64(7)).Return(foreign, nil)

	// Foreign projects report as not found, not forbidden.
	project, err := fx.service.Get(ctx, claims, 7)

	require.Error(t, err)
	assert.Nil(t, project)
	assert.True(t, errors.Is(err, domainerrors.ErrProjectNotFound))
}

func TestProjectService_Update_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}
	newName := "renamed"
	input := &usecase.UpdateProjectInput{Name: &newName}

	owner := &entity.Account{ID: 1, Username: "alice"}
	stored := &entity.Project{ID: 7, OwnerID: 1, Name: "original"}

	fx.accountRepo.EXPECT().FindByID(ctx, int64(1)).Return(owner, nil)

	txProjectRepo := mockRepo.NewMockProjectRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProjectRepo().Return(txProjectRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txProjectRepo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)
	txProjectRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Project")).
		Run(func(ctx context.Context, project *entity.Project) {
			assert.Equal(t, "renamed", project.Name)
		}).
		Return(nil)

	project, err := fx.service.Update(ctx, claims, 7, input)

	require.NoError(t, err)
	assert.Equal(t, "renamed", project.Name)
}

func TestProjectService_Delete_Success(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}

	owner := &entity.Account{ID: 1, Username: "alice"}
	stored := &entity.Project{ID: 7, OwnerID: 1, Name: "doomed"}

	fx.accountRepo.EXPECT().FindByID(ctx, int64(1)).Return(owner, nil)

	txProjectRepo := mockRepo.NewMockProjectRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProjectRepo().Return(txProjectRepo)
	expectTransaction(t, fx.txManager, ctx, factory)

	txProjectRepo.EXPECT().FindByID(ctx, int64(7)).Return(stored, nil)
	txProjectRepo.EXPECT().Delete(ctx, int64(7)).Return(nil)

	err := fx.service.Delete(ctx, claims, 7)

	require.NoError(t, err)
}

func TestProjectService_OwnerDeleted(t *testing.T) {
	fx := createTestProjectService(t)

	ctx := context.Background()
	claims := &service.Claims{AccountID: 1, Username: "alice"}

	fx.accountRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(nil, repository.ErrAccountNotFound)

	projects, err := fx.service.List(ctx, claims)

	require.Error(t, err)
	assert.Nil(t, projects)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
