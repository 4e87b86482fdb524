package mathtool

import (
	"fmt"
	"strings"
)

// Unit categories. Conversion only works within one category.
type unitKind int

const (
	kindLength unitKind = iota
	kindMass
)

type unit struct {
	kind unitKind
	// factor converts a value of this unit into the category base
	// (meters for length, grams for mass).
	factor float64
}

var units = map[string]unit{
	"mm": {kindLength, 0.001},
	"cm": {kindLength, 0.01},
	"dm": {kindLength, 0.1},
	"m":  {kindLength, 1},
	"km": {kindLength, 1000},

	"g":       {kindMass, 1},
	"kg":      {kindMass, 1000},
	"centner": {kindMass, 100000},
	"t":       {kindMass, 1000000},
}

// UnitNames returns the supported unit names, grouped length then mass.
func UnitNames() []string {
	return []string{"mm", "cm", "dm", "m", "km", "g", "kg", "centner", "t"}
}

// Convert converts value from one unit into another. Converting between
// length and mass units is an error, as is an unknown unit name.
func Convert(value float64, from, to string) (float64, error) {
	src, ok := units[strings.ToLower(from)]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", from)
	}
	dst, ok := units[strings.ToLower(to)]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", to)
	}
	if src.kind != dst.kind {
		return 0, fmt.Errorf("cannot convert %s to %s", from, to)
	}
	return value * src.factor / dst.factor, nil
}
