package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Truck plate grammars. Legacy: 3 letters + 4 digits, hyphen optional.
// Mercosul: 3 letters, 1 digit, 1 letter, 2 digits.
var (
	legacyPlatePattern   = regexp.MustCompile(`^[A-Z]{3}-?\d{4}$`)
	mercosulPlatePattern = regexp.MustCompile(`^[A-Z]{3}\d[A-Z]\d{2}$`)
)

// NormalizePlate trims and uppercases a plate before storage
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// ValidPlate reports whether the plate matches one of the accepted grammars.
// Matching is case-insensitive: the plate is normalized first.
func ValidPlate(plate string) bool {
	p := NormalizePlate(plate)
	return legacyPlatePattern.MatchString(p) || mercosulPlatePattern.MatchString(p)
}

// PlateFormatError reports the offending field and both accepted formats
type PlateFormatError struct {
	Field string
	Plate string
}

func (e *PlateFormatError) Error() string {
	return fmt.Sprintf(
		"plate in field %q must match one of the accepted formats: "+
			"3 letters followed by 4 digits (e.g. ABC1234 or ABC-1234), "+
			"or 3 letters, 1 digit, 1 letter, 2 digits (Mercosul, e.g. ABC1D23); got %q",
		e.Field, e.Plate)
}

// ValidatePlates checks every non-empty plate field of the booking
// against the accepted grammars.
func ValidatePlates(b *Booking) error {
	for _, field := range []string{"tractor_plate", "trailer_plate_1", "trailer_plate_2", "trailer_plate_3"} {
		plate, ok := b.Plates()[field]
		if !ok {
			continue
		}
		if !ValidPlate(plate) {
			return &PlateFormatError{Field: field, Plate: plate}
		}
	}
	return nil
}
