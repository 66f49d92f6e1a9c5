package voyagerepo

import (
	"context"
	"errors"

	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVoyageRepository implements VoyageRepository using GORM.
type GormVoyageRepository struct {
	db *gorm.DB
}

// NewGormVoyageRepository creates a new GORM voyage repository.
func NewGormVoyageRepository(db *gorm.DB) *GormVoyageRepository {
	return &GormVoyageRepository{db: db}
}

// Add saves a new voyage and its carrier movements to the database.
func (r *GormVoyageRepository) Add(ctx context.Context, aggregate *voyage.Voyage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a voyage by number, movements in schedule order.
func (r *GormVoyageRepository) Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto VoyageDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("movement_order")
		}).
		First(&dto, "number = ?", number.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("voyage", number.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all voyages ordered by number.
func (r *GormVoyageRepository) GetAll(ctx context.Context) ([]*voyage.Voyage, error) {
	var dtos []VoyageDTO
	err := r.db.WithContext(ctx).
		Preload("Movements", func(db *gorm.DB) *gorm.DB {
			return db.Order("movement_order")
		}).
		Order("number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	voyages := make([]*voyage.Voyage, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		voyages = append(voyages, v)
	}

	return voyages, nil
}
