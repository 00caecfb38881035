package enums

import "fmt"

// AccountType is the kind of bank account on file for payroll.
type AccountType string

const (
	AccountTypeSaving  AccountType = "saving"
	AccountTypeCurrent AccountType = "current"
)

func (a AccountType) String() string {
	return string(a)
}

func (a AccountType) IsValid() bool {
	return a == AccountTypeSaving || a == AccountTypeCurrent
}

// ParseAccountType converts raw input into an AccountType.
func ParseAccountType(value string) (AccountType, error) {
	switch AccountType(value) {
	case AccountTypeSaving:
		return AccountTypeSaving, nil
	case AccountTypeCurrent:
		return AccountTypeCurrent, nil
	}
	return "", fmt.Errorf("invalid account type %q", value)
}
