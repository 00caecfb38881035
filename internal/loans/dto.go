package loans

import (
	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// CreateLoanInput captures one loan request.
type CreateLoanInput struct {
	EmpName   string
	AmountReq string
	StaffNote string
	Note      string
}

// ApproveLoanInput requires every field; the money fields must parse as
// numbers and the installment must be positive.
type ApproveLoanInput struct {
	AmountApp   string
	Installment string
	Date        string
	StaffNote   string
	ApprovedBy  string
}

// EditLoanInput accepts only the four editable fields; at least one must be
// supplied.
type EditLoanInput struct {
	AmountApp   *string
	StaffNote   *string
	Installment *string
	Date        *string
}

// LoanResult is the public projection of a loan row.
type LoanResult struct {
	ID           uuid.UUID        `json:"id"`
	EmpName      string           `json:"empName"`
	ReqDate      string           `json:"reqDate"`
	Status       enums.LoanStatus `json:"status"`
	AmountReq    string           `json:"amountReq"`
	AmountApp    string           `json:"amountApp"`
	Balance      string           `json:"balance"`
	Installment  string           `json:"installment"`
	PaybackDate  string           `json:"paybackDate"`
	Remaining    string           `json:"remaining"`
	ApprovedBy   string           `json:"approvedBy"`
	StaffNote    string           `json:"staffNote"`
	Note         string           `json:"note"`
	CancelReason string           `json:"cancelReason"`
	Activity     []string         `json:"activity"`
}
