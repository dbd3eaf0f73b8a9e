package bloodtype

import (
	"errors"
	"fmt"
)

// InvalidBloodTypeError reports a label that is not one of the eight
// canonical blood types. Field names the offending input ("mother",
// "father", "donor", ...) when known.
type InvalidBloodTypeError struct {
	Field string
	Value string
}

func (e *InvalidBloodTypeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid blood type: %q (valid: %s)", e.Value, labelList())
	}
	return fmt.Sprintf("invalid blood type for %s: %q (valid: %s)", e.Field, e.Value, labelList())
}

// IsInvalidBloodType returns true if err is or wraps an InvalidBloodTypeError.
func IsInvalidBloodType(err error) bool {
	var target *InvalidBloodTypeError
	return errors.As(err, &target)
}

// validateField validates bt and tags any error with the field name.
func validateField(field string, bt BloodType) error {
	if err := bt.Validate(); err != nil {
		return &InvalidBloodTypeError{Field: field, Value: string(bt)}
	}
	return nil
}
