package enums

// Gender as captured on the general record.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}
