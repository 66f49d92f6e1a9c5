// Package locationrepo provides data transfer objects and mapping functions
// for location persistence. Locations are reference data: written once during
// seeding and read by the booking and handling flows.
package locationrepo

import (
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// LocationDTO represents the database structure for persisting locations.
type LocationDTO struct {
	UnLocode string `gorm:"primaryKey;type:varchar(5)"`
	Name     string
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "locations"
}

// fromDomain converts a location to its database representation.
func fromDomain(loc location.Location) LocationDTO {
	return LocationDTO{
		UnLocode: loc.UnLocode().String(),
		Name:     loc.Name(),
	}
}

// toDomain converts a database DTO back to a location value object.
func toDomain(dto LocationDTO) (location.Location, error) {
	unLocode, err := kernel.NewUnLocode(dto.UnLocode)
	if err != nil {
		return location.Location{}, err
	}

	return location.NewLocation(unLocode, dto.Name)
}
