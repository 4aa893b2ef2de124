package postgres

import (
	"context"

	"enplan/internal/domain/entity"
	domainerrors "enplan/internal/domain/errors"
	"enplan/internal/domain/repository"
	"enplan/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// componentRepository implements the domain.ComponentRepository interface using GORM.
type componentRepository struct {
	db *gorm.DB
}

// NewComponentRepository is the constructor for componentRepository.
func NewComponentRepository(db *gorm.DB) repository.ComponentRepository {
	return &componentRepository{db: db}
}

// List retrieves the full catalog ordered by name.
func (repo *componentRepository) List(ctx context.Context) ([]*entity.Component, error) {
	var componentMs []model.ComponentModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&componentMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list components")
	}

	components := make([]*entity.Component, 0, len(componentMs))
	for i := range componentMs {
		components = append(components, toComponentDomain(&componentMs[i]))
	}

	return components, nil
}

// FindByName retrieves a single catalog entry by its unique name.
func (repo *componentRepository) FindByName(ctx context.Context, name string) (*entity.Component, error) {
	var componentM model.ComponentModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&componentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrComponentNotFound
		}

		return nil, errors.Wrap(err, "failed to find component by name")
	}

	return toComponentDomain(&componentM), nil
}

// Upsert inserts a template or leaves an existing one untouched, keyed by name.
func (repo *componentRepository) Upsert(ctx context.Context, component *entity.Component) error {
	componentM := fromComponentDomain(component)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(componentM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert component")
	}

	return nil
}

// toComponentDomain converts a GORM ComponentModel to a domain Component entity.
func toComponentDomain(data *model.ComponentModel) *entity.Component {
	if data == nil {
		return nil
	}

	return &entity.Component{
		ID:        data.ID,
		Name:      data.Name,
		OemofType: data.OemofType,
		Fields:    data.Fields,
	}
}

// fromComponentDomain converts a domain Component entity to a GORM ComponentModel for persistence.
func fromComponentDomain(data *entity.Component) *model.ComponentModel {
	if data == nil {
		return nil
	}

	return &model.ComponentModel{
		ID:        data.ID,
		Name:      data.Name,
		OemofType: data.OemofType,
		Fields:    data.Fields,
	}
}
