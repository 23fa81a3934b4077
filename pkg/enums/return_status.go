package enums

import "fmt"

// ReturnStatus tracks the lifecycle of a sales return.
type ReturnStatus string

const (
	ReturnStatusCompleted ReturnStatus = "completed"
	ReturnStatusPending   ReturnStatus = "pending"
	ReturnStatusCancelled ReturnStatus = "cancelled"
)

var validReturnStatuses = []ReturnStatus{
	ReturnStatusCompleted,
	ReturnStatusPending,
	ReturnStatusCancelled,
}

// String implements fmt.Stringer.
func (r ReturnStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is a known ReturnStatus.
func (r ReturnStatus) IsValid() bool {
	for _, candidate := range validReturnStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseReturnStatus converts raw input into a ReturnStatus.
func ParseReturnStatus(value string) (ReturnStatus, error) {
	for _, candidate := range validReturnStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid return status %q", value)
}
