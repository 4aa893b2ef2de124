package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"enplan/internal/domain/entity"
	domainerrors "enplan/internal/domain/errors"
	"enplan/internal/domain/repository"
	mockRepo "enplan/internal/mocks/repository"
	"enplan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestComponentService(t *testing.T) (usecase.ComponentUsecase, *mockRepo.MockComponentRepository) {
	componentRepo := mockRepo.NewMockComponentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewComponentService(ComponentServiceParams{
		ComponentRepo: componentRepo,
		Logger:        logger,
	})

	return svc, componentRepo
}

func TestComponentService_List(t *testing.T) {
	svc, componentRepo := createTestComponentService(t)

	ctx := context.Background()
	catalog := []*entity.Component{
		{ID: 1, Name: "bus", OemofType: "Bus", Fields: []string{"label", "balanced"}},
		{ID: 2, Name: "sink", OemofType: "Sink", Fields: []string{"label", "inputs"}},
	}
	componentRepo.EXPECT().List(ctx).Return(catalog, nil)

	components, err := svc.List(ctx)

	require.NoError(t, err)
	assert.Len(t, components, 2)
}

func TestComponentService_Get_NotFound(t *testing.T) {
	svc, componentRepo := createTestComponentService(t)

	ctx := context.Background()
	componentRepo.EXPECT().
		FindByName(ctx, "flux_capacitor").
		Return(nil, repository.ErrComponentNotFound)

	component, err := svc.Get(ctx, "flux_capacitor")

	require.Error(t, err)
	assert.Nil(t, component)
	assert.True(t, errors.Is(err, domainerrors.ErrComponentNotFound))
}

func TestComponentService_Seed_InstallsBuiltins(t *testing.T) {
	svc, componentRepo := createTestComponentService(t)

	ctx := context.Background()
	seeded := map[string]bool{}
	componentRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Component")).
		Run(func(ctx context.Context, component *entity.Component) {
			seeded[component.Name] = true
		}).
		Return(nil).
		Times(len(builtinComponents))

	err := svc.Seed(ctx)

	require.NoError(t, err)
	assert.Len(t, seeded, len(builtinComponents))
	assert.True(t, seeded["bus"])
	assert.True(t, seeded["storage"])
}

func TestComponentService_Seed_StopsOnError(t *testing.T) {
	svc, componentRepo := createTestComponentService(t)

	ctx := context.Background()
	componentRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.Component")).
		Return(errors.New("connection reset")).
		Once()

	err := svc.Seed(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to seed component")
}
