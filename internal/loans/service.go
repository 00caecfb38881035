package loans

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/staffhubhq/staffhub-backend/pkg/db/models"
	dbtypes "github.com/staffhubhq/staffhub-backend/pkg/db/types"
	"github.com/staffhubhq/staffhub-backend/pkg/enums"
	pkgerrors "github.com/staffhubhq/staffhub-backend/pkg/errors"
	"gorm.io/gorm"
)

const activityDateLayout = "2006-01-02"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service defines loan subledger operations.
type Service interface {
	CreateLoanRequest(ctx context.Context, employeeID uuid.UUID, input CreateLoanInput) (*LoanResult, error)
	ApproveLoan(ctx context.Context, loanID uuid.UUID, input ApproveLoanInput) (*LoanResult, error)
	CancelLoan(ctx context.Context, loanID uuid.UUID, cancelReason string) (*LoanResult, error)
	EditLoan(ctx context.Context, loanID uuid.UUID, input EditLoanInput) (*LoanResult, error)
}

type service struct {
	repo Repository
	tx   txRunner
	now  func() time.Time
}

// NewService builds a loans service with the required dependencies.
func NewService(repo Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("loans repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, now: time.Now}, nil
}

// CreateLoanRequest creates the pending loan and links it from the employee
// in one transaction.
func (s *service) CreateLoanRequest(ctx context.Context, employeeID uuid.UUID, input CreateLoanInput) (*LoanResult, error) {
	if strings.TrimSpace(input.EmpName) == "" || strings.TrimSpace(input.AmountReq) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "empName and amountReq are required")
	}

	employee, err := s.repo.FindEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "employee not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load employee")
	}

	today := s.now().Format(activityDateLayout)
	loan := &models.Loan{
		ID:        uuid.New(),
		EmpName:   input.EmpName,
		ReqDate:   today,
		Status:    enums.LoanStatusPending,
		AmountReq: input.AmountReq,
		StaffNote: input.StaffNote,
		Note:      input.Note,
		Activity:  dbtypes.StringArray{fmt.Sprintf("Loan requested on %s", today)},
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if _, err := repo.CreateLoan(ctx, loan); err != nil {
			return err
		}
		return repo.UpdateEmployee(ctx, employeeID, map[string]any{
			"loan_ids": employee.LoanIDs.Union(loan.ID),
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create loan request")
	}

	result := toResult(loan)
	return &result, nil
}

// ApproveLoan validates the money fields before touching the row; an invalid
// request leaves the loan unmodified.
func (s *service) ApproveLoan(ctx context.Context, loanID uuid.UUID, input ApproveLoanInput) (*LoanResult, error) {
	if input.AmountApp == "" || input.Installment == "" || input.Date == "" || input.StaffNote == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amountApp, installment, date and staffNote are required")
	}
	if _, err := decimal.NewFromString(input.AmountApp); err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amountApp must be numeric")
	}
	installment, err := decimal.NewFromString(input.Installment)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "installment must be numeric")
	}
	if !installment.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "installment must be greater than zero")
	}

	loan, err := s.findLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(activityDateLayout)
	activity := append(loan.Activity, fmt.Sprintf("Loan approved on %s", today))
	updates := map[string]any{
		"status":       enums.LoanStatusApproved,
		"amount_app":   input.AmountApp,
		"balance":      input.AmountApp,
		"remaining":    input.AmountApp,
		"installment":  input.Installment,
		"payback_date": input.Date,
		"staff_note":   input.StaffNote,
		"approved_by":  input.ApprovedBy,
		"activity":     activity,
	}
	if err := s.repo.UpdateLoan(ctx, loanID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "approve loan")
	}

	return s.reload(ctx, loanID)
}

// CancelLoan declines the loan and records the reason. The transition is not
// guarded: cancelling an approved or already-declined loan simply appends
// another history entry.
func (s *service) CancelLoan(ctx context.Context, loanID uuid.UUID, cancelReason string) (*LoanResult, error) {
	loan, err := s.findLoan(ctx, loanID)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(activityDateLayout)
	activity := append(loan.Activity, fmt.Sprintf("Loan cancelled on %s", today))
	updates := map[string]any{
		"status":        enums.LoanStatusDeclined,
		"cancel_reason": cancelReason,
		"activity":      activity,
	}
	if err := s.repo.UpdateLoan(ctx, loanID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cancel loan")
	}

	return s.reload(ctx, loanID)
}

// EditLoan applies only the supplied subset of the four editable fields.
func (s *service) EditLoan(ctx context.Context, loanID uuid.UUID, input EditLoanInput) (*LoanResult, error) {
	updates := map[string]any{}
	if input.AmountApp != nil {
		updates["amount_app"] = *input.AmountApp
	}
	if input.StaffNote != nil {
		updates["staff_note"] = *input.StaffNote
	}
	if input.Installment != nil {
		updates["installment"] = *input.Installment
	}
	if input.Date != nil {
		updates["payback_date"] = *input.Date
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no valid fields to update")
	}

	if _, err := s.findLoan(ctx, loanID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateLoan(ctx, loanID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "edit loan")
	}

	return s.reload(ctx, loanID)
}

func (s *service) findLoan(ctx context.Context, id uuid.UUID) (*models.Loan, error) {
	loan, err := s.repo.FindLoan(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "loan not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load loan")
	}
	return loan, nil
}

func (s *service) reload(ctx context.Context, id uuid.UUID) (*LoanResult, error) {
	loan, err := s.findLoan(ctx, id)
	if err != nil {
		return nil, err
	}
	result := toResult(loan)
	return &result, nil
}

func toResult(loan *models.Loan) LoanResult {
	activity := loan.Activity
	if activity == nil {
		activity = dbtypes.StringArray{}
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
