// Package location provides the Location value object: a port or city in the
// carrier network, identified by its UN location code.
//
// Locations are immutable and compared by code only; the human-readable name
// is informational. The derivation engine and the routing checks rely on this
// identity rule, so two Location values with the same code are interchangeable
// everywhere in the model.
package location

import (
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via the NewLocation constructor.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via the NewLocation constructor")

// Location is a port or city in the network, for example Stockholm ("SESTO")
// or Hongkong ("CNHKG"). It is an immutable value object; identity is the
// UN location code alone.
type Location struct { //nolint:recvcheck //using for validation
	unLocode kernel.UnLocode
	name     string
	guard    guard.ConstructorGuard
}

// NewLocation creates a Location with the given code and display name.
// Both are required.
func NewLocation(unLocode kernel.UnLocode, name string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setUnLocode(unLocode), loc.setName(name)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was created via its constructor.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// UnLocode returns the UN location code identifying this location.
func (l Location) UnLocode() kernel.UnLocode {
	return l.unLocode
}

// Name returns the human-readable location name, for example "Stockholm".
func (l Location) Name() string {
	return l.name
}

// IsEqual compares two locations by UN location code. Name differences are
// ignored: the code is the identity.
func (l Location) IsEqual(other Location) bool {
	return l.unLocode.IsEqual(other.unLocode)
}

// String returns a representation suitable for logs, for example "Stockholm (SESTO)".
func (l Location) String() string {
	return fmt.Sprintf("%s (%s)", l.name, l.unLocode)
}

func (l *Location) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}
	l.unLocode = unLocode
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}
