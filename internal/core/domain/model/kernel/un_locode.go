package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

// ErrUnLocodeIsNotConstructed is returned when attempting to use an improperly
// initialized UnLocode. Location codes must be created via NewUnLocode.
var ErrUnLocodeIsNotConstructed = errs.NewValueIsRequiredError(
	"UN locode must be created via the NewUnLocode constructor")

// Country code is two letters, followed by a three character place code.
// Digits 0 and 1 are excluded from place codes to avoid confusion with O and I.
var unLocodePattern = regexp.MustCompile(`^[a-zA-Z]{2}[a-zA-Z2-9]{3}$`)

// UnLocode is a United Nations location code identifying a port or city,
// for example "SESTO" for Stockholm or "CNHKG" for Hongkong.
//
// Codes are case-insensitive on input and normalized to uppercase, so two
// UnLocodes constructed from "AbcDe" and "ABCDE" are equal. UnLocode is an
// immutable value object; the zero value is invalid and fails Validate.
type UnLocode struct { //nolint:recvcheck //using for validation
	code  string
	guard guard.ConstructorGuard
}

// NewUnLocode creates an UnLocode from its five character string form.
// Returns an error if the code does not match the UN location code format.
func NewUnLocode(code string) (UnLocode, error) {
	if code == "" {
		return UnLocode{}, errs.NewValueIsRequiredError("unLocode")
	}

	if !unLocodePattern.MatchString(code) {
		return UnLocode{}, errs.NewValueIsInvalidErrorWithCause("unLocode",
			fmt.Errorf("%s is not a valid UN location code", code))
	}

	return UnLocode{
		code:  strings.ToUpper(code),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the UnLocode was created via its constructor.
func (u UnLocode) Validate() error {
	return u.guard.Validate(ErrUnLocodeIsNotConstructed)
}

// String returns the normalized (uppercase) country and location code.
func (u UnLocode) String() string {
	return u.code
}

// IsEqual compares two location codes by normalized value.
func (u UnLocode) IsEqual(other UnLocode) bool {
	return u.code == other.code
}
