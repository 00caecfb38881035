package enums

// ProjectStatus tracks whether a project is actively staffed.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "Active"
	ProjectStatusInactive ProjectStatus = "Inactive"
)

func (s ProjectStatus) String() string {
	return string(s)
}

func (s ProjectStatus) IsValid() bool {
	return s == ProjectStatusActive || s == ProjectStatusInactive
}
