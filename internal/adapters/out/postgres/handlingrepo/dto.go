// Package handlingrepo provides data transfer objects and mapping functions
// for handling event persistence. Events are append only facts: rows are
// inserted and never updated or deleted, and the surrogate key preserves
// insertion order for same-timestamp events.
package handlingrepo

import (
	"time"

	"cargotracker/internal/core/domain/model/handling"
)

// HandlingEventDTO represents the database structure for persisting
// handling events.
type HandlingEventDTO struct {
	ID               int64  `gorm:"primaryKey;autoIncrement"`
	TrackingID       string `gorm:"index"`
	EventType        int
	UnLocode         string `gorm:"type:varchar(5)"`
	LocationName     string
	VoyageNumber     *string
	CompletionTime   time.Time
	RegistrationTime time.Time
}

// TableName specifies the database table name for handling events.
func (HandlingEventDTO) TableName() string {
	return "handling_events"
}

// fromDomain converts a handling event to its database representation.
func fromDomain(event handling.HandlingEvent) HandlingEventDTO {
	dto := HandlingEventDTO{
		TrackingID:       event.TrackingID().String(),
		EventType:        int(event.EventType()),
		UnLocode:         event.Location().UnLocode().String(),
		LocationName:     event.Location().Name(),
		CompletionTime:   event.CompletionTime(),
		RegistrationTime: event.RegistrationTime(),
	}

	if eventVoyage := event.Voyage(); eventVoyage != nil {
		number := eventVoyage.Number().String()
		dto.VoyageNumber = &number
	}

	return dto
}
