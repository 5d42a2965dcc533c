package v1

import (
	"fmt"
	"time"

	"github.com/constructa/backend/internal/models"
	ez_uuid "github.com/constructa/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	ProjectID uuid.UUID              `json:"projectId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the project the ledger entry belongs to
	Type      models.TransactionType `json:"type" example:"EXPENSE"`                                   // CONTRIBUTION, EXPENSE or REFUND
	Date      time.Time              `json:"date" example:"2026-09-01T00:00:00Z"`                      // Calendar date of the movement

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"1400.5" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount, always non-negative

	Description   string                   `json:"description" example:"Cimento e areia" default:""`          // What the entry is about
	Category      models.ExpenseCategory   `json:"category" example:"MATERIAL" default:""`                    // Expense category
	Stage         models.ConstructionStage `json:"stage" example:"FOUNDATION" default:""`                     // Construction stage
	Supplier      string                   `json:"supplier" example:"Construmax Materiais" default:""`        // Supplier name
	PayerType     models.PayerType         `json:"payerType" example:"BOX" default:"BOX"`                     // Who funded an expense, the box or a partner
	PayerID       *uuid.UUID               `json:"payerId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`    // Paying partner for expenses paid from a partner's pocket
	BeneficiaryID *uuid.UUID               `json:"beneficiaryId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // Partner that contributed or was refunded
	PaymentMethod models.PaymentMethod     `json:"paymentMethod" example:"PIX" default:""`                    // Payment instrument
	Note          string                   `json:"note" example:"Paid on delivery" default:""`                // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		ProjectID:     editable.ProjectID,
		Type:          editable.Type,
		Date:          editable.Date,
		Amount:        editable.Amount,
		Description:   editable.Description,
		Category:      editable.Category,
		Stage:         editable.Stage,
		Supplier:      editable.Supplier,
		PayerType:     editable.PayerType,
		PayerID:       editable.PayerID,
		BeneficiaryID: editable.BeneficiaryID,
		PaymentMethod: editable.PaymentMethod,
		Note:          editable.Note,
	}
}

type TransactionLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"` // The transaction itself
	Project string `json:"project" example:"https://example.com/api/v1/projects/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`  // The project the transaction belongs to
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			ProjectID:     model.ProjectID,
			Type:          model.Type,
			Date:          model.Date,
			Amount:        model.Amount,
			Description:   model.Description,
			Category:      model.Category,
			Stage:         model.Stage,
			Supplier:      model.Supplier,
			PayerType:     model.PayerType,
			PayerID:       model.PayerID,
			BeneficiaryID: model.BeneficiaryID,
			PaymentMethod: model.PaymentMethod,
			Note:          model.Note,
		},
		Links: TransactionLinks{
			Self:    fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Project: fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Transaction `json:"data"`                                                          // The resource
}

type TransactionQueryFilter struct {
	ProjectID         ez_uuid.UUID    `json:"projectId" form:"project"`                                   // By project ID
	Type              string          `json:"type" form:"type"`                                           // By transaction type
	PayerType         string          `json:"payerType" form:"payerType"`                                 // By payer type
	PayerID           ez_uuid.UUID    `json:"payerId" form:"payer" filterField:"false"`                   // By paying partner
	BeneficiaryID     ez_uuid.UUID    `json:"beneficiaryId" form:"beneficiary" filterField:"false"`       // By contributing or refunded partner
	Category          string          `json:"category" form:"category"`                                   // By expense category
	Stage             string          `json:"stage" form:"stage"`                                         // By construction stage
	Supplier          string          `json:"supplier" form:"supplier" filterField:"false"`               // By supplier name
	PaymentMethod     string          `json:"paymentMethod" form:"paymentMethod"`                         // By payment method
	Month             string          `json:"month" form:"month" filterField:"false"`                     // By the month the date falls into
	Amount            decimal.Decimal `json:"amount" form:"amount"`                                       // Exact amount
	AmountLessOrEqual decimal.Decimal `json:"amountLessOrEqual" form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal `json:"amountMoreOrEqual" form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Offset            uint            `json:"offset" form:"offset" filterField:"false"`                   // The offset of the first transaction returned. Defaults to 0.
	Limit             int             `json:"limit" form:"limit" filterField:"false"`                     // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	return models.Transaction{
		ProjectID:     f.ProjectID.UUID,
		Type:          models.TransactionType(f.Type),
		PayerType:     models.PayerType(f.PayerType),
		Category:      models.ExpenseCategory(f.Category),
		Stage:         models.ConstructionStage(f.Stage),
		PaymentMethod: models.PaymentMethod(f.PaymentMethod),
		Amount:        f.Amount,
	}
}
