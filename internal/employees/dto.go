package employees

import (
	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
)

// CreateEmployeeInput carries the fields for one aggregate creation. The
// employee code is generated from the department, never supplied.
type CreateEmployeeInput struct {
	Title        string
	FirstName    string
	LastName     string
	Gender       enums.Gender
	PhoneNum     string
	PrimaryEmail string
	Status       enums.EmployeeStatus

	JoiningDate           string
	Department            string
	Designation           string
	Location              string
	ReportingManagerName  string
	ReportingManagerEmail *string
	CTCAnnual             string
	PayslipComponent      string
	HolidayGroup          string
	WorkWeek              string
}

// UpdateGeneralInput is a partial merge; nil fields are left untouched.
type UpdateGeneralInput struct {
	Title        *string
	FirstName    *string
	LastName     *string
	Gender       *enums.Gender
	PhoneNum     *string
	PrimaryEmail *string
}

// UpdateProfessionalInput is a partial merge; nil fields are left untouched.
type UpdateProfessionalInput struct {
	JoiningDate           *string
	Department            *string
	Designation           *string
	Location              *string
	ReportingManagerName  *string
	ReportingManagerEmail *string
	CTCAnnual             *string
	PayslipComponent      *string
	HolidayGroup          *string
	WorkWeek              *string
}

// AddBankDetailsInput requires every field; the operation is idempotent per
// employee.
type AddBankDetailsInput struct {
	BankName    string
	AccountName string
	BranchName  string
	AccountType enums.AccountType
	AccountNum  string
	IFSCCode    string
}

// UpdateBankDetailsInput is a partial merge; nil fields are left untouched.
type UpdateBankDetailsInput struct {
	BankName    *string
	AccountName *string
	BranchName  *string
	AccountType *enums.AccountType
	AccountNum  *string
	IFSCCode    *string
}

// AddPreviousJobInput captures one employment-history entry.
type AddPreviousJobInput struct {
	CompanyName string
	Designation string
	FromDate    string
	ToDate      string
	Location    *string
}

// EditPreviousJobInput is a partial merge; nil fields are left untouched.
type EditPreviousJobInput struct {
	CompanyName *string
	Designation *string
	FromDate    *string
	ToDate      *string
	Location    *string
}

// CreateEmployeeResult returns the aggregate ids plus the generated code.
type CreateEmployeeResult struct {
	EmployeeID     uuid.UUID `json:"employeeId"`
	GeneralID      uuid.UUID `json:"generalId"`
	ProfessionalID uuid.UUID `json:"professionalId"`
	EmpCode        string    `json:"empCode"`
}

// EmployeeListItem is the flattened row returned by the list and status
// endpoints.
type EmployeeListItem struct {
	ID               uuid.UUID            `json:"id"`
	EmpCode          string               `json:"empCode"`
	Name             string               `json:"name"`
	JoiningDate      string               `json:"joiningDate"`
	Designation      string               `json:"designation"`
	Department       string               `json:"department"`
	Location         string               `json:"location"`
	Gender           enums.Gender         `json:"gender"`
	Status           enums.EmployeeStatus `json:"status"`
	PayslipComponent string               `json:"payslipComponent"`
}

// EmployeeRefs exposes the raw child-record ids of the join record.
type EmployeeRefs struct {
	ID             uuid.UUID   `json:"id"`
	GeneralID      uuid.UUID   `json:"generalId"`
	ProfessionalID uuid.UUID   `json:"professionalId"`
	BankDetailID   *uuid.UUID  `json:"bankDetailId"`
	PFID           *uuid.UUID  `json:"pfId"`
	LoanIDs        []uuid.UUID `json:"loanIds"`
	PreviousJobIDs []uuid.UUID `json:"previousJobIds"`
	AllocationIDs  []uuid.UUID `json:"projectIds"`
	IsDeleted      bool        `json:"isDeleted"`
}

// GeneralResult is the personal half of the profile.
type GeneralResult struct {
	ID           uuid.UUID            `json:"id"`
	EmpCode      string               `json:"empCode"`
	Title        string               `json:"title"`
	FirstName    string               `json:"firstName"`
	LastName     string               `json:"lastName"`
	Status       enums.EmployeeStatus `json:"status"`
	Gender       enums.Gender         `json:"gender"`
	PhoneCode    string               `json:"phoneCode"`
	PhoneNum     string               `json:"phoneNum"`
	PrimaryEmail string               `json:"primaryEmail"`
}

// ProfessionalResult is the employment half of the profile.
type ProfessionalResult struct {
	ID                    uuid.UUID `json:"id"`
	JoiningDate           string    `json:"joiningDate"`
	Department            string    `json:"department"`
	Designation           string    `json:"designation"`
	Location              string    `json:"location"`
	ReportingManagerName  string    `json:"reportingManagerName"`
	ReportingManagerEmail *string   `json:"reportingManagerEmail"`
	CTCAnnual             string    `json:"ctcAnnual"`
	PayslipComponent      string    `json:"payslipComponent"`
	HolidayGroup          string    `json:"holidayGroup"`
	WorkWeek              string    `json:"workWeek"`
}

// BankDetailsProfile is the bank section of the complete profile. When the
// employee has no bank record every field is null.
type BankDetailsProfile struct {
	ID          *uuid.UUID         `json:"id"`
	BankName    *string            `json:"bankName"`
	AccountName *string            `json:"accountName"`
	BranchName  *string            `json:"branchName"`
	AccountType *enums.AccountType `json:"accountType"`
	AccountNum  *string            `json:"accountNum"`
	IFSCCode    *string            `json:"ifscCode"`
}

// PFProfile is the provident-fund section of the complete profile. When the
// employee has no PF record the booleans are false and the numbers null.
type PFProfile struct {
	ID               *uuid.UUID `json:"id"`
	EmployeePFEnable bool       `json:"employeePfEnable"`
	PFNum            *string    `json:"pfNum"`
	EmployerPFEnable bool       `json:"employerPfEnable"`
	UANNum           *string    `json:"uanNum"`
	ESIEnable        bool       `json:"esiEnable"`
	ESINum           *string    `json:"esiNum"`
	ProfessionalTax  bool       `json:"professionalTax"`
	LabourWelfare    bool       `json:"labourWelfare"`
}

// LoanResult is one loan row in the complete profile.
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

// PreviousJobResult is one history entry in the complete profile.
type PreviousJobResult struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	Designation string    `json:"designation"`
	FromDate    string    `json:"fromDate"`
	ToDate      string    `json:"toDate"`
	Location    *string   `json:"location"`
}

// AllocationResult is one non-deleted project allocation in the profile.
type AllocationResult struct {
	ID             uuid.UUID `json:"id"`
	EmpCode        string    `json:"empCode"`
	ProjectID      uuid.UUID `json:"projectId"`
	Role           string    `json:"role"`
	AllocationDate string    `json:"allocationDate"`
	Bandwidth      string    `json:"bandwidth"`
	Billing        string    `json:"billing"`
}

// CompleteProfile aggregates every linked record for one employee code.
type CompleteProfile struct {
	Employee     EmployeeRefs        `json:"employee"`
	General      GeneralResult       `json:"general"`
	Professional ProfessionalResult  `json:"professional"`
	BankDetails  BankDetailsProfile  `json:"bankDetails"`
	PF           PFProfile           `json:"pf"`
	Loans        []LoanResult        `json:"loans"`
	PreviousJobs []PreviousJobResult `json:"previousJobs"`
	Allocations  []AllocationResult  `json:"projects"`
}

// AddBankDetailsResult reports the linked id; Existing is true when the call
// was a no-op because details were already attached.
type AddBankDetailsResult struct {
	BankDetailID uuid.UUID `json:"bankDetailId"`
	Existing     bool      `json:"existing"`
	Message      string    `json:"message,omitempty"`
}
