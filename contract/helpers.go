package contract

import (
	"fmt"
	"strings"
)

// --- Validation helper functions ---
// Validation runs before the guard and before any storage snapshot, so an
// invalid call never touches state.

func validateRequiredString(input, field string, max int) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("%s cannot be empty", field)
	}
	if len(input) > max {
		return fmt.Errorf("%s exceeds max length %d", field, max)
	}
	return nil
}

func validateOptionalString(input, field string, max int) error {
	if input != "" && len(input) > max {
		return fmt.Errorf("%s exceeds max length %d", field, max)
	}
	return nil
}

func validateStringArray(arr []string, field string, maxItems, maxItemLen int) error {
	if arr == nil { // nil array is valid (empty)
		return nil
	}
	if len(arr) > maxItems {
		return fmt.Errorf("%s has %d items, exceeding maximum of %d", field, len(arr), maxItems)
	}
	for i, v := range arr {
		if err := validateOptionalString(v, fmt.Sprintf("%s[%d]", field, i), maxItemLen); err != nil {
			return err
		}
	}
	return nil
}

func validateCoordinates(latitude, longitude float64, field string) error {
	if latitude < -90 || latitude > 90 {
		return fmt.Errorf("%s.latitude must be between -90 and 90", field)
	}
	if longitude < -180 || longitude > 180 {
		return fmt.Errorf("%s.longitude must be between -180 and 180", field)
	}
	return nil
}
