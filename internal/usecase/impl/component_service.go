package impl

import (
	"context"
	"log/slog"

	deliverycontext "enplan/internal/delivery/context"
	"enplan/internal/domain/entity"
	domainerrors "enplan/internal/domain/errors"
	"enplan/internal/domain/repository"
	"enplan/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// builtinComponents is the catalog installed at startup. Entries follow the
// oemof.solph component vocabulary; fields list the attributes an energy
// system template exposes for each type.
var builtinComponents = []*entity.Component{
	{Name: "bus", OemofType: "Bus", Fields: []string{"label", "balanced"}},
	{Name: "source", OemofType: "Source", Fields: []string{"label", "outputs", "nominal_value", "variable_costs"}},
	{Name: "volatile_source", OemofType: "Source", Fields: []string{"label", "outputs", "nominal_value", "fix", "max"}},
	{Name: "sink", OemofType: "Sink", Fields: []string{"label", "inputs", "nominal_value", "variable_costs"}},
	{Name: "demand", OemofType: "Sink", Fields: []string{"label", "inputs", "nominal_value", "fix"}},
	{Name: "converter", OemofType: "Converter", Fields: []string{"label", "inputs", "outputs", "conversion_factors"}},
	{Name: "storage", OemofType: "GenericStorage", Fields: []string{"label", "inputs", "outputs", "nominal_storage_capacity", "loss_rate", "inflow_conversion_factor", "outflow_conversion_factor"}},
}

// componentService implements the ComponentUsecase interface.
type componentService struct {
	componentRepo repository.ComponentRepository
	logger        *slog.Logger
}

// ComponentServiceParams holds dependencies for componentService, injected by Fx.
type ComponentServiceParams struct {
	fx.In

	ComponentRepo repository.ComponentRepository
	Logger        *slog.Logger
}

// NewComponentService is the constructor for componentService.
func NewComponentService(params ComponentServiceParams) usecase.ComponentUsecase {
	return &componentService{
		componentRepo: params.ComponentRepo,
		logger:        params.Logger,
	}
}

func (srv *componentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the full catalog.
func (srv *componentService) List(ctx context.Context) ([]*entity.Component, error) {
	components, err := srv.componentRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list components", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list components")
	}

	return components, nil
}

// Get returns a single catalog entry by name.
func (srv *componentService) Get(ctx context.Context, name string) (*entity.Component, error) {
	component, err := srv.componentRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrComponentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrComponentNotFound, "component not found")
		}
		srv.log(ctx).Error("Failed to find component", slog.String("name", name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find component")
	}

	return component, nil
}

// Seed installs the built-in catalog. Upsert leaves existing rows untouched,
// so repeated startups are safe.
func (srv *componentService) Seed(ctx context.Context) error {
	for _, component := range builtinComponents {
		if err := srv.componentRepo.Upsert(ctx, component); err != nil {
			srv.log(ctx).Error("Failed to seed component", slog.String("name", component.Name), slog.Any("error", err))

			return errors.Wrapf(err, "failed to seed component %q", component.Name)
		}
	}

	srv.log(ctx).Info("Component catalog seeded", slog.Int("count", len(builtinComponents)))

	return nil
}
