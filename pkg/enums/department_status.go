package enums

// DepartmentStatus tracks whether a department accepts new employees.
type DepartmentStatus string

const (
	DepartmentStatusActive   DepartmentStatus = "active"
	DepartmentStatusInactive DepartmentStatus = "inactive"
)

func (s DepartmentStatus) String() string {
	return string(s)
}

func (s DepartmentStatus) IsValid() bool {
	return s == DepartmentStatusActive || s == DepartmentStatusInactive
}
