package employees

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	dbtypes "github.com/staffhubhq/staffhub-backend/pkg/db/types"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"gorm.io/gorm"
)

const defaultPhoneCode = "+91"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines employee aggregate operations.
type Service interface {
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*CreateEmployeeResult, error)
	ListEmployees(ctx context.Context) ([]EmployeeListItem, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*EmployeeRefs, error)
	SoftDeleteEmployee(ctx context.Context, id uuid.UUID) error
	UpdateGeneral(ctx context.Context, generalID uuid.UUID, input UpdateGeneralInput) error
	UpdateProfessional(ctx context.Context, professionalID uuid.UUID, input UpdateProfessionalInput) error
	ChangeStatus(ctx context.Context, employeeID uuid.UUID, status enums.EmployeeStatus) (*EmployeeListItem, error)
	AddBankDetails(ctx context.Context, employeeID uuid.UUID, input AddBankDetailsInput) (*AddBankDetailsResult, error)
	UpdateBankDetails(ctx context.Context, bankDetailID uuid.UUID, input UpdateBankDetailsInput) error
	GetCompleteProfile(ctx context.Context, empCode string) (*CompleteProfile, error)
	AddPreviousJob(ctx context.Context, employeeID uuid.UUID, input AddPreviousJobInput) (*PreviousJobResult, error)
	EditPreviousJob(ctx context.Context, jobID uuid.UUID, input EditPreviousJobInput) error
}

type service struct {
	repo Repository
	tx   txRunner
}

// NewService builds an employees service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("employees repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx}, nil
}

// CreateEmployee creates the General, Professional, and join records in one
// transaction; either all three persist or none do.
func (s *service) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*CreateEmployeeResult, error) {
	missing := missingCreateFields(input)
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "required fields missing").
			WithDetails(map[string]any{"fields": missing})
	}
	if !input.Gender.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid gender")
	}

	status := input.Status
	if status == "" {
		status = enums.EmployeeStatusActive
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}

	lastName := strings.TrimSpace(input.LastName)
	if lastName == "" {
		lastName = strings.TrimSpace(input.FirstName)
	}

	empCode, err := nextEmployeeCode(ctx, s.repo, input.Department)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "generate employee code")
	}

	general := &models.General{
		ID:           uuid.New(),
		EmpCode:      empCode,
		Title:        strings.TrimSpace(input.Title),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     lastName,
		Status:       status,
		Gender:       input.Gender,
		PhoneCode:    defaultPhoneCode,
		PhoneNum:     input.PhoneNum,
		PrimaryEmail: input.PrimaryEmail,
	}
	professional := &models.Professional{
		ID:                    uuid.New(),
		JoiningDate:           input.JoiningDate,
		Department:            input.Department,
		Designation:           input.Designation,
		Location:              input.Location,
		ReportingManagerName:  input.ReportingManagerName,
		ReportingManagerEmail: input.ReportingManagerEmail,
		CTCAnnual:             input.CTCAnnual,
		PayslipComponent:      input.PayslipComponent,
		HolidayGroup:          input.HolidayGroup,
		WorkWeek:              input.WorkWeek,
	}
	employee := &models.Employee{
		ID:             uuid.New(),
		GeneralID:      general.ID,
		ProfessionalID: professional.ID,
		LoanIDs:        dbtypes.UUIDArray{},
		PreviousJobIDs: dbtypes.UUIDArray{},
		AllocationIDs:  dbtypes.UUIDArray{},
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreateGeneral(ctx, general); err != nil {
			return err
		}
		if _, err := repo.CreateProfessional(ctx, professional); err != nil {
			return err
		}
		_, err := repo.CreateEmployee(ctx, employee)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create employee aggregate")
	}

	return &CreateEmployeeResult{
		EmployeeID:     employee.ID,
		GeneralID:      general.ID,
		ProfessionalID: professional.ID,
		EmpCode:        empCode,
	}, nil
}

// ListEmployees returns the flattened view for every non-deleted employee
// whose General and Professional rows both resolve. Broken joins are dropped
// silently.
func (s *service) ListEmployees(ctx context.Context) ([]EmployeeListItem, error) {
	rows, err := s.repo.ListActiveEmployees(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list employees")
	}

	items := make([]EmployeeListItem, 0, len(rows))
	for i := range rows {
		general, err := s.repo.FindGeneral(ctx, rows[i].GeneralID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load general")
		}
		professional, err := s.repo.FindProfessional(ctx, rows[i].ProfessionalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load professional")
		}
		items = append(items, flatten(&rows[i], general, professional))
	}
	return items, nil
}

// GetEmployee returns the raw child ids regardless of the soft-delete flag.
func (s *service) GetEmployee(ctx context.Context, id uuid.UUID) (*EmployeeRefs, error) {
	employee, err := s.findEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	refs := toRefs(employee)
	return &refs, nil
}

// SoftDeleteEmployee flags the join record; idempotent, no cascade.
func (s *service) SoftDeleteEmployee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findEmployee(ctx, id); err != nil {
		return err
	}
	if err := s.repo.UpdateEmployee(ctx, id, map[string]any{"is_deleted": true}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "soft delete employee")
	}
	return nil
}

func (s *service) UpdateGeneral(ctx context.Context, generalID uuid.UUID, input UpdateGeneralInput) error {
	if _, err := s.repo.FindGeneral(ctx, generalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "general record not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load general")
	}

	updates := map[string]any{}
	putString(updates, "title", input.Title)
	putString(updates, "first_name", input.FirstName)
	putString(updates, "last_name", input.LastName)
	putString(updates, "phone_num", input.PhoneNum)
	putString(updates, "primary_email", input.PrimaryEmail)
	if input.Gender != nil {
		if !input.Gender.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid gender")
		}
		updates["gender"] = *input.Gender
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.repo.UpdateGeneral(ctx, generalID, updates); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update general")
	}
	return nil
}

func (s *service) UpdateProfessional(ctx context.Context, professionalID uuid.UUID, input UpdateProfessionalInput) error {
	if _, err := s.repo.FindProfessional(ctx, professionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "professional record not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load professional")
	}

	updates := map[string]any{}
	putString(updates, "joining_date", input.JoiningDate)
	putString(updates, "department", input.Department)
	putString(updates, "designation", input.Designation)
	putString(updates, "location", input.Location)
	putString(updates, "reporting_manager_name", input.ReportingManagerName)
	putString(updates, "reporting_manager_email", input.ReportingManagerEmail)
	putString(updates, "ctc_annual", input.CTCAnnual)
	putString(updates, "payslip_component", input.PayslipComponent)
	putString(updates, "holiday_group", input.HolidayGroup)
	putString(updates, "work_week", input.WorkWeek)
	if len(updates) == 0 {
		return nil
	}

	if err := s.repo.UpdateProfessional(ctx, professionalID, updates); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update professional")
	}
	return nil
}

// ChangeStatus updates General.status and returns the re-read flattened row.
func (s *service) ChangeStatus(ctx context.Context, employeeID uuid.UUID, status enums.EmployeeStatus) (*EmployeeListItem, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}

	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if _, err := s.findGeneral(ctx, employee.GeneralID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateGeneral(ctx, employee.GeneralID, map[string]any{"status": status}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update status")
	}

	general, err := s.findGeneral(ctx, employee.GeneralID)
	if err != nil {
		return nil, err
	}
	professional, err := s.repo.FindProfessional(ctx, employee.ProfessionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "professional record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load professional")
	}

	item := flatten(employee, general, professional)
	return &item, nil
}

// AddBankDetails is idempotent: when the employee already has a linked bank
// record the existing id is returned unchanged.
func (s *service) AddBankDetails(ctx context.Context, employeeID uuid.UUID, input AddBankDetailsInput) (*AddBankDetailsResult, error) {
	missing := missingBankFields(input)
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "required fields missing").
			WithDetails(map[string]any{"fields": missing})
	}
	if !input.AccountType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid account type")
	}

	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if employee.BankDetailID != nil {
		return &AddBankDetailsResult{
			BankDetailID: *employee.BankDetailID,
			Existing:     true,
			Message:      "Bank details already exist for this employee",
		}, nil
	}

	details := &models.BankDetails{
		ID:          uuid.New(),
		BankName:    input.BankName,
		AccountName: input.AccountName,
		BranchName:  input.BranchName,
		AccountType: input.AccountType,
		AccountNum:  input.AccountNum,
		IFSCCode:    input.IFSCCode,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreateBankDetails(ctx, details); err != nil {
			return err
		}
		return repo.UpdateEmployee(ctx, employeeID, map[string]any{"bank_detail_id": details.ID})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create bank details")
	}

	return &AddBankDetailsResult{BankDetailID: details.ID}, nil
}

func (s *service) UpdateBankDetails(ctx context.Context, bankDetailID uuid.UUID, input UpdateBankDetailsInput) error {
	if _, err := s.repo.FindBankDetails(ctx, bankDetailID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "bank details not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bank details")
	}

	updates := map[string]any{}
	putString(updates, "bank_name", input.BankName)
	putString(updates, "account_name", input.AccountName)
	putString(updates, "branch_name", input.BranchName)
	putString(updates, "account_num", input.AccountNum)
	putString(updates, "ifsc_code", input.IFSCCode)
	if input.AccountType != nil {
		if !input.AccountType.IsValid() {
			return pkgerrors.New(pkgerrors.CodeValidation, "invalid account type")
		}
		updates["account_type"] = *input.AccountType
	}
	if len(updates) == 0 {
		return nil
	}

	if err := s.repo.UpdateBankDetails(ctx, bankDetailID, updates); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update bank details")
	}
	return nil
}

// GetCompleteProfile resolves code → General → Employee → every linked child
// collection, substituting the documented null placeholders for missing bank
// and PF records.
func (s *service) GetCompleteProfile(ctx context.Context, empCode string) (*CompleteProfile, error) {
	if strings.TrimSpace(empCode) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "employee code is required")
	}

	general, err := s.repo.FindGeneralByEmpCode(ctx, empCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee code not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load general")
	}

	employee, err := s.repo.FindEmployeeByGeneralID(ctx, general.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load employee")
	}

	professional, err := s.repo.FindProfessional(ctx, employee.ProfessionalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "professional record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load professional")
	}

	profile := &CompleteProfile{
		Employee:     toRefs(employee),
		General:      toGeneralResult(general),
		Professional: toProfessionalResult(professional),
		BankDetails:  BankDetailsProfile{},
		PF:           PFProfile{},
		Loans:        []LoanResult{},
		PreviousJobs: []PreviousJobResult{},
		Allocations:  []AllocationResult{},
	}

	if employee.BankDetailID != nil {
		details, err := s.repo.FindBankDetails(ctx, *employee.BankDetailID)
		if err == nil {
			profile.BankDetails = toBankProfile(details)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load bank details")
		}
	}
	if employee.PFID != nil {
		pf, err := s.repo.FindPFDetails(ctx, *employee.PFID)
		if err == nil {
			profile.PF = toPFProfile(pf)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load pf details")
		}
	}

	loans, err := s.repo.FindLoansByIDs(ctx, employee.LoanIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load loans")
	}
	for i := range loans {
		profile.Loans = append(profile.Loans, toLoanResult(&loans[i]))
	}

	jobs, err := s.repo.FindPreviousJobsByIDs(ctx, employee.PreviousJobIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load previous jobs")
	}
	for i := range jobs {
		profile.PreviousJobs = append(profile.PreviousJobs, toPreviousJobResult(&jobs[i]))
	}

	allocations, err := s.repo.FindAllocationsByIDs(ctx, employee.AllocationIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load allocations")
	}
	for i := range allocations {
		if allocations[i].IsDeleted {
			continue
		}
		profile.Allocations = append(profile.Allocations, toAllocationResult(&allocations[i]))
	}

	return profile, nil
}

// AddPreviousJob creates the history entry and links it with set-union
// semantics in one transaction.
func (s *service) AddPreviousJob(ctx context.Context, employeeID uuid.UUID, input AddPreviousJobInput) (*PreviousJobResult, error) {
	if input.CompanyName == "" || input.Designation == "" || input.FromDate == "" || input.ToDate == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "companyName, designation, fromDate and toDate are required")
	}

	employee, err := s.findEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	job := &models.PreviousJob{
		ID:          uuid.New(),
		CompanyName: input.CompanyName,
		Designation: input.Designation,
		FromDate:    input.FromDate,
		ToDate:      input.ToDate,
		Location:    input.Location,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreatePreviousJob(ctx, job); err != nil {
			return err
		}
		return repo.UpdateEmployee(ctx, employeeID, map[string]any{
			"previous_job_ids": employee.PreviousJobIDs.Union(job.ID),
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create previous job")
	}

	result := toPreviousJobResult(job)
	return &result, nil
}

func (s *service) EditPreviousJob(ctx context.Context, jobID uuid.UUID, input EditPreviousJobInput) error {
	if _, err := s.repo.FindPreviousJob(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "previous job not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load previous job")
	}

	updates := map[string]any{}
	putString(updates, "company_name", input.CompanyName)
	putString(updates, "designation", input.Designation)
	putString(updates, "from_date", input.FromDate)
	putString(updates, "to_date", input.ToDate)
	putString(updates, "location", input.Location)
	if len(updates) == 0 {
		return nil
	}

	if err := s.repo.UpdatePreviousJob(ctx, jobID, updates); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update previous job")
	}
	return nil
}

func (s *service) findEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.repo.FindEmployee(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load employee")
	}
	return employee, nil
}

func (s *service) findGeneral(ctx context.Context, id uuid.UUID) (*models.General, error) {
	general, err := s.repo.FindGeneral(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "general record not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load general")
	}
	return general, nil
}

func missingCreateFields(input CreateEmployeeInput) []string {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", input.FirstName},
		{"gender", string(input.Gender)},
		{"phoneNum", input.PhoneNum},
		{"primaryEmail", input.PrimaryEmail},
		{"joiningDate", input.JoiningDate},
		{"department", input.Department},
		{"designation", input.Designation},
		{"location", input.Location},
		{"reportingManagerName", input.ReportingManagerName},
		{"ctcAnnual", input.CTCAnnual},
		{"payslipComponent", input.PayslipComponent},
		{"holidayGroup", input.HolidayGroup},
		{"workWeek", input.WorkWeek},
	}
	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func missingBankFields(input AddBankDetailsInput) []string {
	required := []struct {
		name  string
		value string
	}{
		{"bankName", input.BankName},
		{"accountName", input.AccountName},
		{"branchName", input.BranchName},
		{"accountType", string(input.AccountType)},
		{"accountNum", input.AccountNum},
		{"ifscCode", input.IFSCCode},
	}
	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	return missing
}

func putString(updates map[string]any, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}

func composeName(general *models.General) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{general.Title, general.FirstName, general.LastName} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return strings.Join(parts, " ")
}

func flatten(employee *models.Employee, general *models.General, professional *models.Professional) EmployeeListItem {
	return EmployeeListItem{
		ID:               employee.ID,
		EmpCode:          general.EmpCode,
		Name:             composeName(general),
		JoiningDate:      professional.JoiningDate,
		Designation:      professional.Designation,
		Department:       professional.Department,
		Location:         professional.Location,
		Gender:           general.Gender,
		Status:           general.Status,
		PayslipComponent: professional.PayslipComponent,
	}
}

func toRefs(employee *models.Employee) EmployeeRefs {
	return EmployeeRefs{
		ID:             employee.ID,
		GeneralID:      employee.GeneralID,
		ProfessionalID: employee.ProfessionalID,
		BankDetailID:   employee.BankDetailID,
		PFID:           employee.PFID,
		LoanIDs:        employee.LoanIDs,
		PreviousJobIDs: employee.PreviousJobIDs,
		AllocationIDs:  employee.AllocationIDs,
		IsDeleted:      employee.IsDeleted,
	}
}

func toGeneralResult(general *models.General) GeneralResult {
	return GeneralResult{
		ID:           general.ID,
		EmpCode:      general.EmpCode,
		Title:        general.Title,
		FirstName:    general.FirstName,
		LastName:     general.LastName,
		Status:       general.Status,
		Gender:       general.Gender,
		PhoneCode:    general.PhoneCode,
		PhoneNum:     general.PhoneNum,
		PrimaryEmail: general.PrimaryEmail,
	}
}

func toProfessionalResult(professional *models.Professional) ProfessionalResult {
	return ProfessionalResult{
		ID:                    professional.ID,
		JoiningDate:           professional.JoiningDate,
		Department:            professional.Department,
		Designation:           professional.Designation,
		Location:              professional.Location,
		ReportingManagerName:  professional.ReportingManagerName,
		ReportingManagerEmail: professional.ReportingManagerEmail,
		CTCAnnual:             professional.CTCAnnual,
		PayslipComponent:      professional.PayslipComponent,
		HolidayGroup:          professional.HolidayGroup,
		WorkWeek:              professional.WorkWeek,
	}
}

func toBankProfile(details *models.BankDetails) BankDetailsProfile {
	id := details.ID
	bankName := details.BankName
	accountName := details.AccountName
	branchName := details.BranchName
	accountType := details.AccountType
	accountNum := details.AccountNum
	ifsc := details.IFSCCode
	return BankDetailsProfile{
		ID:          &id,
		BankName:    &bankName,
		AccountName: &accountName,
		BranchName:  &branchName,
		AccountType: &accountType,
		AccountNum:  &accountNum,
		IFSCCode:    &ifsc,
	}
}

func toPFProfile(details *models.PFDetails) PFProfile {
	id := details.ID
	return PFProfile{
		ID:               &id,
		EmployeePFEnable: details.EmployeePFEnable,
		PFNum:            details.PFNum,
		EmployerPFEnable: details.EmployerPFEnable,
		UANNum:           details.UANNum,
		ESIEnable:        details.ESIEnable,
		ESINum:           details.ESINum,
		ProfessionalTax:  details.ProfessionalTax,
		LabourWelfare:    details.LabourWelfare,
	}
}

func toLoanResult(loan *models.Loan) LoanResult {
	activity := loan.Activity
	if activity == nil {
		activity = []string{}
	}
	return LoanResult{
		ID:           loan.ID,
		EmpName:      loan.EmpName,
		ReqDate:      loan.ReqDate,
		Status:       loan.Status,
		AmountReq:    loan.AmountReq,
		AmountApp:    loan.AmountApp,
		Balance:      loan.Balance,
		Installment:  loan.Installment,
		PaybackDate:  loan.PaybackDate,
		Remaining:    loan.Remaining,
		ApprovedBy:   loan.ApprovedBy,
		StaffNote:    loan.StaffNote,
		Note:         loan.Note,
		CancelReason: loan.CancelReason,
		Activity:     activity,
	}
}

func toPreviousJobResult(job *models.PreviousJob) PreviousJobResult {
	return PreviousJobResult{
		ID:          job.ID,
		CompanyName: job.CompanyName,
		Designation: job.Designation,
		FromDate:    job.FromDate,
		ToDate:      job.ToDate,
		Location:    job.Location,
	}
}

func toAllocationResult(allocation *models.ResourceAllocation) AllocationResult {
	return AllocationResult{
		ID:             allocation.ID,
		EmpCode:        allocation.EmpCode,
		ProjectID:      allocation.ProjectID,
		Role:           allocation.Role,
		AllocationDate: allocation.AllocationDate,
		Bandwidth:      allocation.Bandwidth,
		Billing:        allocation.Billing,
	}
}
