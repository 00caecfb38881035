package dbtypes

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// StringArray stores a flat list of strings as a Postgres text[] literal.
// Values must not contain quotes or braces; employee codes and activity
// lines written by this service never do.
type StringArray []string

func (a *StringArray) Scan(src any) error {
	if src == nil {
		*a = StringArray{}
		return nil
	}

	switch v := src.(type) {
	case string:
		return a.parseFromString(v)
	case []byte:
		return a.parseFromString(string(v))
	default:
		return fmt.Errorf("StringArray: unsupported Scan type %T", src)
	}
}

func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}
	parts := make([]string, 0, len(a))
	for _, s := range a {
		parts = append(parts, `"`+s+`"`)
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

// Contains reports whether the array already holds the value.
func (a StringArray) Contains(value string) bool {
	for _, existing := range a {
		if existing == value {
			return true
		}
	}
	return false
}

// Union appends the value unless it is already present.
func (a StringArray) Union(value string) StringArray {
	if a.Contains(value) {
		return a
	}
	return append(a, value)
}

func (a *StringArray) parseFromString(s string) error {
	s = strings.TrimSpace(s)
	if s == "{}" || s == "" {
		*a = StringArray{}
		return nil
	}
	s = strings.TrimPrefix(s, "{")
	s = strings.TrimSuffix(s, "}")
	if strings.TrimSpace(s) == "" {
		*a = StringArray{}
		return nil
	}

	raw := splitQuoted(s)
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		out = append(out, strings.Trim(strings.TrimSpace(r), `"`))
	}
	*a = StringArray(out)
	return nil
}

func splitQuoted(s string) []string {
	var parts []string
	var current strings.Builder
	inQuotes := false
	for _, r := range s {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ',' && !inQuotes:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	parts = append(parts, current.String())
	return parts
}
