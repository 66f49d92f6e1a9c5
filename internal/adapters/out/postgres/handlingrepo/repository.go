package handlingrepo

import (
	"context"

	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"gorm.io/gorm"
)

// GormHandlingEventRepository implements HandlingEventRepository using GORM.
type GormHandlingEventRepository struct {
	db      *gorm.DB
	voyages *voyagerepo.GormVoyageRepository
}

// NewGormHandlingEventRepository creates a new GORM handling event repository.
func NewGormHandlingEventRepository(db *gorm.DB) *GormHandlingEventRepository {
	return &GormHandlingEventRepository{
		db:      db,
		voyages: voyagerepo.NewGormVoyageRepository(db),
	}
}

// Add appends a handling event to the store. Duplicate reports are kept;
// deduplication is not this layer's concern.
func (r *GormHandlingEventRepository) Add(ctx context.Context, event handling.HandlingEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto := fromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetHistory retrieves all handling events for a tracking id in insertion
// order. An unknown tracking id yields an empty history, not an error.
func (r *GormHandlingEventRepository) GetHistory(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (handling.HandlingHistory, error) {
	if err := trackingID.Validate(); err != nil {
		return handling.HandlingHistory{}, err
	}

	var dtos []HandlingEventDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "tracking_id = ?", trackingID.String()).Error
	if err != nil {
		return handling.HandlingHistory{}, err
	}

	events := make([]handling.HandlingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := r.toDomain(ctx, dto)
		if err != nil {
			return handling.HandlingHistory{}, err
		}
		events = append(events, event)
	}

	return handling.NewHandlingHistory(events)
}

// toDomain reconstructs a handling event, resolving its voyage by number.
func (r *GormHandlingEventRepository) toDomain(
	ctx context.Context,
	dto HandlingEventDTO,
) (handling.HandlingEvent, error) {
	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	unLocode, err := kernel.NewUnLocode(dto.UnLocode)
	if err != nil {
		return handling.HandlingEvent{}, err
	}
	eventLocation, err := location.NewLocation(unLocode, dto.LocationName)
	if err != nil {
		return handling.HandlingEvent{}, err
	}

	var eventVoyage *voyage.Voyage
	if dto.VoyageNumber != nil {
		eventVoyage, err = r.voyages.Get(ctx, voyage.Number(*dto.VoyageNumber))
		if err != nil {
			return handling.HandlingEvent{}, err
		}
	}

	return handling.NewHandlingEvent(
		trackingID,
		handling.Type(dto.EventType),
		eventLocation,
		eventVoyage,
		dto.CompletionTime,
		dto.RegistrationTime,
	)
}
