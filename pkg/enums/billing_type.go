package enums

import "fmt"

// BillingType is how a project bills its client.
type BillingType string

const (
	BillingTypeTimeAndMaterial BillingType = "TimeAndMaterial"
	BillingTypeFixedCost       BillingType = "FixedCost"
)

func (b BillingType) String() string {
	return string(b)
}

func (b BillingType) IsValid() bool {
	return b == BillingTypeTimeAndMaterial || b == BillingTypeFixedCost
}

// ParseBillingType converts raw input into a BillingType.
func ParseBillingType(value string) (BillingType, error) {
	switch BillingType(value) {
	case BillingTypeTimeAndMaterial:
		return BillingTypeTimeAndMaterial, nil
	case BillingTypeFixedCost:
		return BillingTypeFixedCost, nil
	}
	return "", fmt.Errorf("invalid billing type %q", value)
}
