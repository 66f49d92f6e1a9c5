package cargorepo

import (
	"context"
	"errors"

	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCargoRepository implements CargoRepository using GORM. Voyages
// referenced by the stored aggregate are resolved through the voyage
// repository on the same connection.
type GormCargoRepository struct {
	db      *gorm.DB
	voyages *voyagerepo.GormVoyageRepository
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(trackingID kernel.TrackingID, aggregate any)
}

// NewGormCargoRepository creates a new GORM cargo repository.
func NewGormCargoRepository(db *gorm.DB, tracker aggregateTracker) *GormCargoRepository {
	return &GormCargoRepository{
		db:      db,
		voyages: voyagerepo.NewGormVoyageRepository(db),
		tracker: tracker,
	}
}

// Add saves a new cargo and its itinerary legs to the database.
func (r *GormCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.TrackingID(), aggregate)
	return nil
}

// Update saves an existing cargo. The delivery snapshot columns are
// overwritten in full and the legs rows are replaced, so a cleared value
// (for example eta after a claim) does not survive the update.
func (r *GormCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	tx := r.db.WithContext(ctx)

	result := tx.Model(&CargoDTO{}).
		Where("tracking_id = ?", dto.TrackingID).
		Select("*").
		Omit("tracking_id", "Legs").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := tx.Where("tracking_id = ?", dto.TrackingID).Delete(&LegDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Legs) > 0 {
		if err := tx.Create(&dto.Legs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.TrackingID(), aggregate)
	return nil
}

// Get retrieves a cargo by tracking id, legs in itinerary order.
func (r *GormCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	if err := trackingID.Validate(); err != nil {
		return nil, err
	}

	var dto CargoDTO
	err := r.db.WithContext(ctx).
		Preload("Legs", func(db *gorm.DB) *gorm.DB {
			return db.Order("leg_order")
		}).
		First(&dto, "tracking_id = ?", trackingID.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cargo", trackingID.String())
		}
		return nil, err
	}

	return r.toDomain(ctx, dto)
}

// Exists reports whether a cargo with the tracking id is stored.
func (r *GormCargoRepository) Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	if err := trackingID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&CargoDTO{}).
		Where("tracking_id = ?", trackingID.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// toDomain reconstructs the cargo aggregate from its stored form.
func (r *GormCargoRepository) toDomain(ctx context.Context, dto CargoDTO) (*cargo.Cargo, error) {
	trackingID, err := kernel.TrackingIDFromString(dto.TrackingID)
	if err != nil {
		return nil, err
	}

	origin, err := storedLocation(dto.OriginUnLocode, dto.OriginName)
	if err != nil {
		return nil, err
	}
	destination, err := storedLocation(dto.DestinationUnLocode, dto.DestinationName)
	if err != nil {
		return nil, err
	}
	routeSpec, err := cargo.NewRouteSpecification(origin, destination, dto.ArrivalDeadline)
	if err != nil {
		return nil, err
	}

	itinerary, err := r.legsToItinerary(ctx, dto.Legs)
	if err != nil {
		return nil, err
	}

	delivery, err := r.deliveryFromDTO(ctx, dto)
	if err != nil {
		return nil, err
	}

	return cargo.RestoreCargo(trackingID, routeSpec, itinerary, delivery)
}

func (r *GormCargoRepository) legsToItinerary(ctx context.Context, legDTOs []LegDTO) (*cargo.Itinerary, error) {
	if len(legDTOs) == 0 {
		return nil, nil
	}

	legs := make([]cargo.Leg, 0, len(legDTOs))
	for _, legDTO := range legDTOs {
		legVoyage, err := r.voyages.Get(ctx, voyage.Number(legDTO.VoyageNumber))
		if err != nil {
			return nil, err
		}
		loadLocation, err := storedLocation(legDTO.LoadUnLocode, legDTO.LoadName)
		if err != nil {
			return nil, err
		}
		unloadLocation, err := storedLocation(legDTO.UnloadUnLocode, legDTO.UnloadName)
		if err != nil {
			return nil, err
		}

		leg, err := cargo.NewLeg(legVoyage, loadLocation, unloadLocation, legDTO.LoadTime, legDTO.UnloadTime)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}

	return cargo.NewItinerary(legs)
}

func (r *GormCargoRepository) deliveryFromDTO(ctx context.Context, dto CargoDTO) (cargo.Delivery, error) {
	var lastKnownLocation *location.Location
	if dto.LastKnownUnLocode != nil {
		loc, err := storedLocation(*dto.LastKnownUnLocode, stringOrEmpty(dto.LastKnownName))
		if err != nil {
			return cargo.Delivery{}, err
		}
		lastKnownLocation = &loc
	}

	var currentVoyage *voyage.Voyage
	if dto.CurrentVoyageNumber != nil {
		v, err := r.voyages.Get(ctx, voyage.Number(*dto.CurrentVoyageNumber))
		if err != nil {
			return cargo.Delivery{}, err
		}
		currentVoyage = v
	}

	var nextExpected *cargo.HandlingActivity
	if dto.NextExpectedEventType != nil {
		activityLocation, err := storedLocation(
			stringOrEmpty(dto.NextExpectedUnLocode), stringOrEmpty(dto.NextExpectedName),
		)
		if err != nil {
			return cargo.Delivery{}, err
		}

		var activityVoyage *voyage.Voyage
		if dto.NextExpectedVoyageNumber != nil {
			activityVoyage, err = r.voyages.Get(ctx, voyage.Number(*dto.NextExpectedVoyageNumber))
			if err != nil {
				return cargo.Delivery{}, err
			}
		}

		activity, err := cargo.NewHandlingActivity(
			handling.Type(*dto.NextExpectedEventType), activityLocation, activityVoyage,
		)
		if err != nil {
			return cargo.Delivery{}, err
		}
		nextExpected = &activity
	}

	return cargo.RestoreDelivery(
		cargo.TransportStatus(dto.TransportStatus),
		cargo.RoutingStatus(dto.RoutingStatus),
		lastKnownLocation,
		currentVoyage,
		dto.IsMisdirected,
		dto.Eta,
		nextExpected,
		dto.CalculatedAt,
	)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
