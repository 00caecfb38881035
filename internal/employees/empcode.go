package employees

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// departmentPrefixes maps known department names to their two-letter employee
// code prefix. Unrecognized departments fall back to "UN".
var departmentPrefixes = map[string]string{
	"HR":          "HR",
	"Finance":     "FN",
	"Engineering": "EN",
	"Sales":       "SL",
	"Marketing":   "MK",
}

const (
	defaultPrefix = "UN"
	codeWidth     = 4
)

// PrefixFor returns the employee code prefix for a department name.
func PrefixFor(department string) string {
	if prefix, ok := departmentPrefixes[department]; ok {
		return prefix
	}
	return defaultPrefix
}

// nextEmployeeCode scans the existing codes for the department's prefix and
// returns prefix + zero-padded(max+1). Two concurrent calls for the same
// department can compute the same number; the scan is not serialized.
func nextEmployeeCode(ctx context.Context, repo Repository, department string) (string, error) {
	prefix := PrefixFor(department)

	codes, err := repo.ListEmpCodesByPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}

	max := 0
	for _, code := range codes {
		suffix := strings.TrimPrefix(code, prefix)
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s%0*d", prefix, codeWidth, max+1), nil
}
