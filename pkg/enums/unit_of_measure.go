package enums

import "fmt"

// UnitOfMeasure describes how product quantities are counted.
type UnitOfMeasure string

const (
	UnitPiece UnitOfMeasure = "pcs"
	UnitMetre UnitOfMeasure = "mtr"
	UnitSet   UnitOfMeasure = "set"
)

var validUnitsOfMeasure = []UnitOfMeasure{
	UnitPiece,
	UnitMetre,
	UnitSet,
}

// String implements fmt.Stringer.
func (u UnitOfMeasure) String() string {
	return string(u)
}

// IsValid reports whether the value is a known UnitOfMeasure.
func (u UnitOfMeasure) IsValid() bool {
	for _, candidate := range validUnitsOfMeasure {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseUnitOfMeasure converts raw input into a UnitOfMeasure.
func ParseUnitOfMeasure(value string) (UnitOfMeasure, error) {
	for _, candidate := range validUnitsOfMeasure {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid unit of measure %q", value)
}
