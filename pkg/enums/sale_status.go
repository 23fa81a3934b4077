package enums

import "fmt"

// SaleStatus tracks the lifecycle of a sale transaction.
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusHeld      SaleStatus = "held"
	SaleStatusCancelled SaleStatus = "cancelled"
)

var validSaleStatuses = []SaleStatus{
	SaleStatusCompleted,
	SaleStatusHeld,
	SaleStatusCancelled,
}

// String implements fmt.Stringer.
func (s SaleStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SaleStatus.
func (s SaleStatus) IsValid() bool {
	for _, candidate := range validSaleStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSaleStatus converts raw input into a SaleStatus.
func ParseSaleStatus(value string) (SaleStatus, error) {
	for _, candidate := range validSaleStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sale status %q", value)
}
