package enums

import "fmt"

// EmployeeStatus tracks whether an employee is currently on the payroll.
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

func (s EmployeeStatus) String() string {
	return string(s)
}

func (s EmployeeStatus) IsValid() bool {
	return s == EmployeeStatusActive || s == EmployeeStatusInactive
}

// ParseEmployeeStatus converts raw input into an EmployeeStatus.
func ParseEmployeeStatus(value string) (EmployeeStatus, error) {
	switch EmployeeStatus(value) {
	case EmployeeStatusActive:
		return EmployeeStatusActive, nil
	case EmployeeStatusInactive:
		return EmployeeStatusInactive, nil
	}
	return "", fmt.Errorf("invalid employee status %q", value)
}
