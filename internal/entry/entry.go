// Package entry defines the core domain types for oxicosto: oxygen-supply
// entries, insurance categories, and the cost computations over them.
//
// Everything in this package is pure computation over immutable inputs.
// Invalid user input never produces an error value; it degrades to zero
// minutes or zero cost so callers can keep rendering.
package entry

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidCategory is returned when a category string is not recognized.
var ErrInvalidCategory = errors.New("category must be 'contributivo' or 'subsidiado'")

// Category represents the insurance regime the patient belongs to.
type Category string

const (
	CategoryContributivo Category = "contributivo"
	CategorySubsidiado   Category = "subsidiado"
)

// Payment factors per insurance category, applied per minute per L/min.
const (
	factorContributivo = 0.45
	factorSubsidiado   = 0.25
)

// Valid returns true if the category is a valid value.
func (c Category) Valid() bool {
	switch c {
	case CategoryContributivo, CategorySubsidiado:
		return true
	default:
		return false
	}
}

// Factor returns the fixed payment factor for the category.
func (c Category) Factor() float64 {
	switch c {
	case CategoryContributivo:
		return factorContributivo
	case CategorySubsidiado:
		return factorSubsidiado
	default:
		return 0
	}
}

// ParseCategory converts a user-supplied string into a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "contributivo":
		return CategoryContributivo, nil
	case "subsidiado":
		return CategorySubsidiado, nil
	default:
		return "", ErrInvalidCategory
	}
}

// Entry represents one oxygen-supply session a caregiver recorded.
// StartTime and EndTime hold whatever the user typed or picked; an empty
// string means "not yet set". FlowRate is a decimal number of liters per
// minute, empty meaning zero.
type Entry struct {
	ID        int64
	StartTime string
	EndTime   string
	FlowRate  string
}

// Flow returns the entry's flow rate as a number. Unparseable input
// degrades to 0; a parsed negative value is returned as-is.
func (e Entry) Flow() float64 {
	s := strings.TrimSpace(e.FlowRate)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
