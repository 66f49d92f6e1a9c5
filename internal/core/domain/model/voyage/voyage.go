// Package voyage models scheduled carrier runs: a Voyage identified by its
// VoyageNumber, carrying a Schedule of CarrierMovements between locations.
//
// Schedules are immutable once constructed. A cargo that is not on board any
// carrier is represented by the absence of a voyage (a nil *Voyage), never by
// a placeholder value.
package voyage

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// Domain errors for voyage construction.
var (
	// ErrCarrierMovementIsNotConstructed is returned when using an improperly
	// initialized CarrierMovement.
	ErrCarrierMovementIsNotConstructed = errs.NewValueIsRequiredError(
		"carrier movement must be created via the NewCarrierMovement constructor")
	// ErrScheduleIsNotConstructed is returned when using an improperly initialized Schedule.
	ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError(
		"schedule must be created via the NewSchedule constructor")
	// ErrVoyageIsNotConstructed is returned when using an improperly initialized Voyage.
	ErrVoyageIsNotConstructed = errors.New("Voyage must be created via the NewVoyage constructor")
)

// Number uniquely identifies a voyage, for example "0100S".
type Number string

// Validate checks that the voyage number is not empty.
func (n Number) Validate() error {
	if strings.TrimSpace(string(n)) == "" {
		return errs.NewValueIsRequiredError("voyageNumber")
	}
	return nil
}

// String returns the voyage number as a string.
func (n Number) String() string {
	return string(n)
}

// CarrierMovement is one scheduled vessel movement: departure from one
// location and arrival at another, with the corresponding times.
// It is an immutable value object compared by content.
type CarrierMovement struct { //nolint:recvcheck //using for validation
	departureLocation location.Location
	arrivalLocation   location.Location
	departureTime     time.Time
	arrivalTime       time.Time
	guard             guard.ConstructorGuard
}

// NewCarrierMovement creates a movement between two locations.
// Both locations and both times are required.
func NewCarrierMovement(
	departureLocation location.Location,
	arrivalLocation location.Location,
	departureTime time.Time,
	arrivalTime time.Time,
) (CarrierMovement, error) {
	cm := CarrierMovement{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cm.setDepartureLocation(departureLocation),
		cm.setArrivalLocation(arrivalLocation),
		cm.setDepartureTime(departureTime),
		cm.setArrivalTime(arrivalTime),
	); err != nil {
		return CarrierMovement{}, err
	}

	return cm, nil
}

// Validate checks that the CarrierMovement was created via its constructor.
func (cm CarrierMovement) Validate() error {
	return cm.guard.Validate(ErrCarrierMovementIsNotConstructed)
}

// DepartureLocation returns the location the carrier departs from.
func (cm CarrierMovement) DepartureLocation() location.Location {
	return cm.departureLocation
}

// ArrivalLocation returns the location the carrier arrives at.
func (cm CarrierMovement) ArrivalLocation() location.Location {
	return cm.arrivalLocation
}

// DepartureTime returns the scheduled departure time.
func (cm CarrierMovement) DepartureTime() time.Time {
	return cm.departureTime
}

// ArrivalTime returns the scheduled arrival time.
func (cm CarrierMovement) ArrivalTime() time.Time {
	return cm.arrivalTime
}

// IsEqual compares two carrier movements by content: locations and times.
func (cm CarrierMovement) IsEqual(other CarrierMovement) bool {
	return cm.departureLocation.IsEqual(other.departureLocation) &&
		cm.arrivalLocation.IsEqual(other.arrivalLocation) &&
		cm.departureTime.Equal(other.departureTime) &&
		cm.arrivalTime.Equal(other.arrivalTime)
}

func (cm *CarrierMovement) setDepartureLocation(loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	cm.departureLocation = loc
	return nil
}

func (cm *CarrierMovement) setArrivalLocation(loc location.Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	cm.arrivalLocation = loc
	return nil
}

func (cm *CarrierMovement) setDepartureTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("departureTime")
	}
	cm.departureTime = t
	return nil
}

func (cm *CarrierMovement) setArrivalTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("arrivalTime")
	}
	cm.arrivalTime = t
	return nil
}

// Schedule is the ordered, non-empty sequence of carrier movements that make
// up a voyage. It is immutable once constructed.
type Schedule struct { //nolint:recvcheck //using for validation
	carrierMovements []CarrierMovement
	guard            guard.ConstructorGuard
}

// NewSchedule creates a schedule from an ordered list of movements.
// The list must be non-empty and each movement must be properly constructed.
func NewSchedule(carrierMovements []CarrierMovement) (Schedule, error) {
	if len(carrierMovements) == 0 {
		return Schedule{}, errs.NewValueIsRequiredError("carrierMovements")
	}

	for i, cm := range carrierMovements {
		if err := cm.Validate(); err != nil {
			return Schedule{}, errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("carrierMovements[%d]", i), err)
		}
	}

	return Schedule{
		carrierMovements: append([]CarrierMovement(nil), carrierMovements...),
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Schedule was created via its constructor.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// CarrierMovements returns the ordered movements. The returned slice is a copy;
// mutating it does not affect the schedule.
func (s Schedule) CarrierMovements() []CarrierMovement {
	return append([]CarrierMovement(nil), s.carrierMovements...)
}

// Voyage is a scheduled carrier run, identified by its voyage number.
type Voyage struct {
	number   Number
	schedule Schedule
	guard    guard.ConstructorGuard
}

// NewVoyage creates a voyage with the given number and schedule.
func NewVoyage(number Number, schedule Schedule) (*Voyage, error) {
	v := &Voyage{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(v.setNumber(number), v.setSchedule(schedule)); err != nil {
		return nil, err
	}

	return v, nil
}

// Validate checks that the Voyage was created via its constructor.
func (v *Voyage) Validate() error {
	if v == nil {
		return ErrVoyageIsNotConstructed
	}
	return v.guard.Validate(ErrVoyageIsNotConstructed)
}

// Number returns the identifying voyage number.
func (v *Voyage) Number() Number {
	return v.number
}

// Schedule returns the voyage schedule.
func (v *Voyage) Schedule() Schedule {
	return v.schedule
}

// IsEqual compares two voyages by voyage number. A nil voyage ("no voyage")
// never equals a constructed one.
func (v *Voyage) IsEqual(other *Voyage) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.number == other.number
}

// String returns the voyage number for logs and messages.
func (v *Voyage) String() string {
	if v == nil {
		return "none"
	}
	return string(v.number)
}

func (v *Voyage) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	v.number = number
	return nil
}

func (v *Voyage) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	v.schedule = schedule
	return nil
}
