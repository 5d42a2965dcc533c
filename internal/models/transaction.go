package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionType describes how a ledger entry moves money.
type TransactionType string

const (
	TypeContribution TransactionType = "CONTRIBUTION"
	TypeExpense      TransactionType = "EXPENSE"
	TypeRefund       TransactionType = "REFUND"
)

// PayerType describes who funded an expense.
type PayerType string

const (
	PayerBox     PayerType = "BOX"
	PayerPartner PayerType = "PARTNER"
)

// ExpenseCategory groups expenses for reporting.
type ExpenseCategory string

const (
	CategoryMaterial  ExpenseCategory = "MATERIAL"
	CategoryLabor     ExpenseCategory = "LABOR"
	CategoryEquipment ExpenseCategory = "EQUIPMENT"
	CategoryAdmin     ExpenseCategory = "ADMIN"
	CategoryOther     ExpenseCategory = "OTHER"
)

// ConstructionStage is the stage of the construction an expense belongs to.
type ConstructionStage string

const (
	StagePlanning   ConstructionStage = "PLANNING"
	StageFoundation ConstructionStage = "FOUNDATION"
	StageStructure  ConstructionStage = "STRUCTURE"
	StageMasonry    ConstructionStage = "MASONRY"
	StageElectrical ConstructionStage = "ELECTRICAL"
	StagePlumbing   ConstructionStage = "PLUMBING"
	StageFinishing  ConstructionStage = "FINISHING"
	StagePainting   ConstructionStage = "PAINTING"
	StageExternal   ConstructionStage = "EXTERNAL"
	StageOther      ConstructionStage = "OTHER"
)

// PaymentMethod is the instrument a transaction was settled with.
type PaymentMethod string

const (
	MethodPix        PaymentMethod = "PIX"
	MethodCreditCard PaymentMethod = "CREDIT_CARD"
	MethodDebitCard  PaymentMethod = "DEBIT_CARD"
	MethodCash       PaymentMethod = "CASH"
	MethodTransfer   PaymentMethod = "TRANSFER"
	MethodBoleto     PaymentMethod = "BOLETO"
)

// Transaction represents a single ledger entry of a project.
//
// The sign of a movement is implied by Type, Amount is always
// non-negative. Category, Stage, Supplier, PaymentMethod and Note are
// descriptive metadata that balance math does not interpret.
type Transaction struct {
	DefaultModel
	ProjectID     uuid.UUID
	Project       Project
	Type          TransactionType
	Date          time.Time // Calendar date of the movement, no time component is used
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description   string
	Category      ExpenseCategory
	Stage         ConstructionStage
	Supplier      string
	PayerType     PayerType
	PayerID       *uuid.UUID // Paying partner, set iff Type is EXPENSE and PayerType is PARTNER
	BeneficiaryID *uuid.UUID // Contributing or refunded partner, set iff Type is CONTRIBUTION or REFUND
	PaymentMethod PaymentMethod
	Note          string
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	// Enforce dates to be in UTC
	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC
//   - validates the type, payer and beneficiary references
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Description = strings.TrimSpace(t.Description)
	t.Supplier = strings.TrimSpace(t.Supplier)
	t.Note = strings.TrimSpace(t.Note)

	// Ensure that unset references are nil and not a pointer to a nil UUID
	if t.PayerID != nil && *t.PayerID == uuid.Nil {
		t.PayerID = nil
	}

	if t.BeneficiaryID != nil && *t.BeneficiaryID == uuid.Nil {
		t.BeneficiaryID = nil
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if !slices.Contains([]TransactionType{TypeContribution, TypeExpense, TypeRefund}, t.Type) {
		return ErrTransactionTypeInvalid
	}

	if t.PayerType == "" {
		t.PayerType = PayerBox
	}

	if !slices.Contains([]PayerType{PayerBox, PayerPartner}, t.PayerType) {
		return ErrPayerTypeInvalid
	}

	if t.Type == TypeExpense && t.PayerType == PayerPartner && t.PayerID == nil {
		return ErrPayerRequired
	}

	if (t.Type == TypeContribution || t.Type == TypeRefund) && t.BeneficiaryID == nil {
		return ErrBeneficiaryRequired
	}

	return nil
}
