// Package sampledata provides the well-known locations and voyages used to
// seed a fresh installation and to exercise the domain model in tests.
// The network mirrors the classic Hongkong-Stockholm shipping scenario.
package sampledata

import (
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
)

// Sample locations.
var (
	Hongkong  = mustLocation("CNHKG", "Hongkong")
	Tokyo     = mustLocation("JNTKO", "Tokyo")
	NewYork   = mustLocation("USNYC", "New York")
	Chicago   = mustLocation("USCHI", "Chicago")
	Stockholm = mustLocation("SESTO", "Stockholm")
	Hamburg   = mustLocation("DEHAM", "Hamburg")
	Helsinki  = mustLocation("FIHEL", "Helsinki")
	Dallas    = mustLocation("USDAL", "Dallas")
	Melbourne = mustLocation("AUMEL", "Melbourne")
	Rotterdam = mustLocation("NLRTM", "Rotterdam")
)

// Sample voyages connecting the sample locations.
var (
	// V100 sails Hongkong to New York.
	V100 = mustVoyage("V100",
		movement(Hongkong, NewYork, date(2009, 3, 3), date(2009, 3, 9)),
	)
	// V200 continues New York via Chicago to Stockholm.
	V200 = mustVoyage("V200",
		movement(NewYork, Chicago, date(2009, 3, 10), date(2009, 3, 14)),
		movement(Chicago, Stockholm, date(2009, 3, 7), date(2009, 3, 11)),
	)
	// V300 sails Tokyo to Hamburg, used when rerouting misdirected cargo.
	V300 = mustVoyage("V300",
		movement(Tokyo, Hamburg, date(2009, 3, 8), date(2009, 3, 12)),
	)
	// V400 completes the rerouted path, Hamburg to Stockholm.
	V400 = mustVoyage("V400",
		movement(Hamburg, Stockholm, date(2009, 3, 14), date(2009, 3, 15)),
	)
)

// AllLocations lists every sample location, in seeding order.
func AllLocations() []location.Location {
	return []location.Location{
		Hongkong, Tokyo, NewYork, Chicago, Stockholm,
		Hamburg, Helsinki, Dallas, Melbourne, Rotterdam,
	}
}

// AllVoyages lists every sample voyage, in seeding order.
func AllVoyages() []*voyage.Voyage {
	return []*voyage.Voyage{V100, V200, V300, V400}
}

func mustLocation(code string, name string) location.Location {
	unLocode, err := kernel.NewUnLocode(code)
	if err != nil {
		panic(err)
	}
	loc, err := location.NewLocation(unLocode, name)
	if err != nil {
		panic(err)
	}
	return loc
}

func mustVoyage(number string, movements ...voyage.CarrierMovement) *voyage.Voyage {
	schedule, err := voyage.NewSchedule(movements)
	if err != nil {
		panic(err)
	}
	v, err := voyage.NewVoyage(voyage.Number(number), schedule)
	if err != nil {
		panic(err)
	}
	return v
}

func movement(from location.Location, to location.Location, dep time.Time, arr time.Time) voyage.CarrierMovement {
	cm, err := voyage.NewCarrierMovement(from, to, dep, arr)
	if err != nil {
		panic(err)
	}
	return cm
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
