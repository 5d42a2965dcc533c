package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/constructa/backend/internal/controllers/v1"
	"github.com/constructa/backend/internal/models"
	"github.com/constructa/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestTransaction(t *testing.T, tr v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if tr.ProjectID == uuid.Nil {
		tr.ProjectID = createTestProject(t, v1.ProjectEditable{}).Data.ID
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TransactionEditable{tr}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.TransactionResponse{}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:        models.TypeExpense,
		Amount:      decimal.NewFromFloat(1400.50),
		Description: "Cimento e areia",
		Category:    models.CategoryMaterial,
		Stage:       models.StageFoundation,
	})

	assert.Equal(suite.T(), models.TypeExpense, tr.Data.Type)
	assert.Equal(suite.T(), models.PayerBox, tr.Data.PayerType)
	assert.True(suite.T(), tr.Data.Amount.Equal(decimal.NewFromFloat(1400.50)))
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	tests := []struct {
		name string
		body v1.TransactionEditable
	}{
		{
			"Negative amount",
			v1.TransactionEditable{
				ProjectID: project.Data.ID,
				Type:      models.TypeExpense,
				Amount:    decimal.NewFromInt(-5),
			},
		},
		{
			"Invalid type",
			v1.TransactionEditable{
				ProjectID: project.Data.ID,
				Type:      "LOAN",
				Amount:    decimal.NewFromInt(5),
			},
		},
		{
			"Partner expense without payer",
			v1.TransactionEditable{
				ProjectID: project.Data.ID,
				Type:      models.TypeExpense,
				PayerType: models.PayerPartner,
				Amount:    decimal.NewFromInt(5),
			},
		},
		{
			"Contribution without beneficiary",
			v1.TransactionEditable{
				ProjectID: project.Data.ID,
				Type:      models.TypeContribution,
				Amount:    decimal.NewFromInt(5),
			},
		},
		{
			"Refund without beneficiary",
			v1.TransactionEditable{
				ProjectID: project.Data.ID,
				Type:      models.TypeRefund,
				Amount:    decimal.NewFromInt(5),
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestTransaction(t, tt.body, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListFilters() {
	project := createTestProject(suite.T(), v1.ProjectEditable{})
	partner := createTestPartner(suite.T(), v1.PartnerEditable{ProjectID: project.Data.ID, Name: "Roberto"})
	partnerID := partner.Data.ID

	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		ProjectID:     project.Data.ID,
		Type:          models.TypeContribution,
		Date:          january,
		Amount:        decimal.NewFromInt(1000),
		BeneficiaryID: &partnerID,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		ProjectID: project.Data.ID,
		Type:      models.TypeExpense,
		Date:      january,
		Amount:    decimal.NewFromInt(400),
		Category:  models.CategoryMaterial,
		Supplier:  "Construmax",
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		ProjectID: project.Data.ID,
		Type:      models.TypeExpense,
		Date:      february,
		Amount:    decimal.NewFromInt(250),
		PayerType: models.PayerPartner,
		PayerID:   &partnerID,
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"By project", fmt.Sprintf("project=%s", project.Data.ID), 3},
		{"By type", "type=EXPENSE", 2},
		{"By payer type", "payerType=PARTNER", 1},
		{"By payer", fmt.Sprintf("payer=%s", partnerID), 1},
		{"By beneficiary", fmt.Sprintf("beneficiary=%s", partnerID), 1},
		{"By category", "category=MATERIAL", 1},
		{"By supplier", "supplier=Construmax", 1},
		{"By month", "month=2026-01", 2},
		{"Amount upper bound", "amountLessOrEqual=400", 2},
		{"Amount lower bound", "amountMoreOrEqual=1000", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListInvalidMonth() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?month=early-2026", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(100),
	})

	r := test.Request(suite.T(), http.MethodPatch, tr.Data.Links.Self, map[string]any{
		"amount": 150,
		"note":   "Adjusted after invoice",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromInt(150)))
	assert.Equal(suite.T(), "Adjusted after invoice", response.Data.Note)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	tr := createTestTransaction(suite.T(), v1.TransactionEditable{
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(100),
	})

	r := test.Request(suite.T(), http.MethodDelete, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, tr.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
