// Package cargorepo provides data transfer objects and mapping functions for
// cargo persistence. The aggregate is stored as one cargos row carrying the
// route specification and the denormalized delivery snapshot, plus one legs
// row per itinerary leg. Voyages referenced by legs and by the snapshot are
// stored by number and resolved against the voyages table on load.
package cargorepo

import (
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// CargoDTO represents the database structure for persisting cargo aggregates.
// The delivery snapshot columns exist so the tracking read side never has to
// re-derive delivery state.
type CargoDTO struct {
	TrackingID string `gorm:"primaryKey"`

	OriginUnLocode      string `gorm:"type:varchar(5)"`
	OriginName          string
	DestinationUnLocode string `gorm:"type:varchar(5)"`
	DestinationName     string
	ArrivalDeadline     time.Time

	TransportStatus          int `gorm:"index"`
	RoutingStatus            int `gorm:"index"`
	LastKnownUnLocode        *string `gorm:"type:varchar(5)"`
	LastKnownName            *string
	CurrentVoyageNumber      *string
	IsMisdirected            bool
	Eta                      *time.Time
	NextExpectedEventType    *int
	NextExpectedUnLocode     *string `gorm:"type:varchar(5)"`
	NextExpectedName         *string
	NextExpectedVoyageNumber *string
	CalculatedAt             time.Time

	Legs []LegDTO `gorm:"foreignKey:TrackingID;references:TrackingID"`
}

// TableName specifies the database table name for cargo entities.
func (CargoDTO) TableName() string {
	return "cargos"
}

// LegDTO represents one leg of a cargo's itinerary. Location names are
// denormalized; the voyage is stored by number only.
type LegDTO struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	TrackingID     string `gorm:"index"`
	LegOrder       int
	VoyageNumber   string
	LoadUnLocode   string `gorm:"type:varchar(5)"`
	LoadName       string
	UnloadUnLocode string `gorm:"type:varchar(5)"`
	UnloadName     string
	LoadTime       time.Time
	UnloadTime     time.Time
}

// TableName specifies the database table name for itinerary legs.
func (LegDTO) TableName() string {
	return "legs"
}

// fromDomain converts a cargo aggregate to its database representation.
func fromDomain(aggregate *cargo.Cargo) CargoDTO {
	routeSpec := aggregate.RouteSpecification()
	delivery := aggregate.Delivery()

	dto := CargoDTO{
		TrackingID:          aggregate.TrackingID().String(),
		OriginUnLocode:      routeSpec.Origin().UnLocode().String(),
		OriginName:          routeSpec.Origin().Name(),
		DestinationUnLocode: routeSpec.Destination().UnLocode().String(),
		DestinationName:     routeSpec.Destination().Name(),
		ArrivalDeadline:     routeSpec.ArrivalDeadline(),
		TransportStatus:     int(delivery.TransportStatus()),
		RoutingStatus:       int(delivery.RoutingStatus()),
		IsMisdirected:       delivery.IsMisdirected(),
		Eta:                 delivery.Eta(),
		CalculatedAt:        delivery.CalculatedAt(),
	}

	if lastKnown := delivery.LastKnownLocation(); lastKnown != nil {
		code := lastKnown.UnLocode().String()
		name := lastKnown.Name()
		dto.LastKnownUnLocode = &code
		dto.LastKnownName = &name
	}
	if currentVoyage := delivery.CurrentVoyage(); currentVoyage != nil {
		number := currentVoyage.Number().String()
		dto.CurrentVoyageNumber = &number
	}
	if next := delivery.NextExpectedActivity(); next != nil {
		eventType := int(next.EventType())
		code := next.Location().UnLocode().String()
		name := next.Location().Name()
		dto.NextExpectedEventType = &eventType
		dto.NextExpectedUnLocode = &code
		dto.NextExpectedName = &name
		if next.Voyage() != nil {
			number := next.Voyage().Number().String()
			dto.NextExpectedVoyageNumber = &number
		}
	}

	if itinerary := aggregate.Itinerary(); itinerary != nil {
		legs := itinerary.Legs()
		dto.Legs = make([]LegDTO, 0, len(legs))
		for i, leg := range legs {
			dto.Legs = append(dto.Legs, LegDTO{
				TrackingID:     dto.TrackingID,
				LegOrder:       i,
				VoyageNumber:   leg.Voyage().Number().String(),
				LoadUnLocode:   leg.LoadLocation().UnLocode().String(),
				LoadName:       leg.LoadLocation().Name(),
				UnloadUnLocode: leg.UnloadLocation().UnLocode().String(),
				UnloadName:     leg.UnloadLocation().Name(),
				LoadTime:       leg.LoadTime(),
				UnloadTime:     leg.UnloadTime(),
			})
		}
	}

	return dto
}

func storedLocation(code, name string) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		return location.Location{}, err
	}
	return location.NewLocation(unLocode, name)
}
