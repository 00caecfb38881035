package enums

// LoanStatus is the lifecycle state of a loan request.
//
// Pending is the only non-terminal state by intent; Approved and Declined
// are terminal, though Cancel is deliberately left callable from any state
// and simply appends to the activity log.
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "pending"
	LoanStatusApproved LoanStatus = "approved"
	LoanStatusDeclined LoanStatus = "declined"
)

func (s LoanStatus) String() string {
	return string(s)
}

func (s LoanStatus) IsValid() bool {
	switch s {
	case LoanStatusPending, LoanStatusApproved, LoanStatusDeclined:
		return true
	}
	return false
}
