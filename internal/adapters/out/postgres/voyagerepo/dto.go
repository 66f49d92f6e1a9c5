// Package voyagerepo provides data transfer objects and mapping functions
// for voyage persistence. A voyage is stored as a head row plus one child
// row per carrier movement, ordered by movement position.
package voyagerepo

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageDTO represents the database structure for persisting voyages.
type VoyageDTO struct {
	Number    string               `gorm:"primaryKey"`
	Movements []CarrierMovementDTO `gorm:"foreignKey:VoyageNumber;references:Number"`
}

// TableName specifies the database table name for voyage entities.
func (VoyageDTO) TableName() string {
	return "voyages"
}

// CarrierMovementDTO represents one movement of a voyage's schedule.
// Location names are denormalized so a voyage can be reconstructed without
// joining the locations table.
type CarrierMovementDTO struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	VoyageNumber      string `gorm:"index"`
	MovementOrder     int
	DepartureUnLocode string `gorm:"type:varchar(5)"`
	DepartureName     string
	ArrivalUnLocode   string `gorm:"type:varchar(5)"`
	ArrivalName       string
	DepartureTime     time.Time
	ArrivalTime       time.Time
}

// TableName specifies the database table name for carrier movements.
func (CarrierMovementDTO) TableName() string {
	return "carrier_movements"
}

// fromDomain converts a voyage aggregate to its database representation.
func fromDomain(aggregate *voyage.Voyage) VoyageDTO {
	movements := aggregate.Schedule().CarrierMovements()
	dtos := make([]CarrierMovementDTO, 0, len(movements))
	for i, movement := range movements {
		dtos = append(dtos, CarrierMovementDTO{
			VoyageNumber:      aggregate.Number().String(),
			MovementOrder:     i,
			DepartureUnLocode: movement.DepartureLocation().UnLocode().String(),
			DepartureName:     movement.DepartureLocation().Name(),
			ArrivalUnLocode:   movement.ArrivalLocation().UnLocode().String(),
			ArrivalName:       movement.ArrivalLocation().Name(),
			DepartureTime:     movement.DepartureTime(),
			ArrivalTime:       movement.ArrivalTime(),
		})
	}

	return VoyageDTO{
		Number:    aggregate.Number().String(),
		Movements: dtos,
	}
}

// toDomain converts a database DTO back to a voyage aggregate.
func toDomain(dto VoyageDTO) (*voyage.Voyage, error) {
	movements := make([]voyage.CarrierMovement, 0, len(dto.Movements))
	for _, movementDTO := range dto.Movements {
		departure, err := movementLocation(movementDTO.DepartureUnLocode, movementDTO.DepartureName)
		if err != nil {
			return nil, err
		}
		arrival, err := movementLocation(movementDTO.ArrivalUnLocode, movementDTO.ArrivalName)
		if err != nil {
			return nil, err
		}

		movement, err := voyage.NewCarrierMovement(
			departure, arrival, movementDTO.DepartureTime, movementDTO.ArrivalTime,
		)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}

	schedule, err := voyage.NewSchedule(movements)
	if err != nil {
		return nil, err
	}

	return voyage.NewVoyage(voyage.Number(dto.Number), schedule)
}

func movementLocation(code, name string) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		return location.Location{}, err
	}
	return location.NewLocation(unLocode, name)
}
