package models_test

import (
	"testing"
	"time"

	"github.com/constructa/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	transaction := suite.createTestTransaction(models.Transaction{
		Type:   models.TypeExpense,
		Amount: decimal.NewFromInt(100),
	})

	assert.Equal(suite.T(), models.PayerBox, transaction.PayerType)
	assert.False(suite.T(), transaction.Date.IsZero(), "Date must default to the current time")
	assert.Equal(suite.T(), time.UTC, transaction.Date.Location())
}

func (suite *TestSuiteStandard) TestTransactionNilReferenceNormalization() {
	partnerID := uuid.Nil

	transaction := suite.createTestTransaction(models.Transaction{
		Type:    models.TypeExpense,
		Amount:  decimal.NewFromInt(100),
		PayerID: &partnerID,
	})

	assert.Nil(suite.T(), transaction.PayerID, "a pointer to the nil UUID must be normalized to nil")
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	project := suite.createTestProject(models.Project{})
	partner := suite.createTestPartner(models.Partner{ProjectID: project.ID})

	tests := []struct {
		name        string
		transaction models.Transaction
		expectedErr error
	}{
		{
			"Negative amount",
			models.Transaction{ProjectID: project.ID, Type: models.TypeExpense, Amount: decimal.NewFromInt(-1)},
			models.ErrAmountNegative,
		},
		{
			"Invalid type",
			models.Transaction{ProjectID: project.ID, Type: "LOAN", Amount: decimal.NewFromInt(1)},
			models.ErrTransactionTypeInvalid,
		},
		{
			"Invalid payer type",
			models.Transaction{ProjectID: project.ID, Type: models.TypeExpense, PayerType: "BANK", Amount: decimal.NewFromInt(1)},
			models.ErrPayerTypeInvalid,
		},
		{
			"Partner expense needs payer",
			models.Transaction{ProjectID: project.ID, Type: models.TypeExpense, PayerType: models.PayerPartner, Amount: decimal.NewFromInt(1)},
			models.ErrPayerRequired,
		},
		{
			"Contribution needs beneficiary",
			models.Transaction{ProjectID: project.ID, Type: models.TypeContribution, Amount: decimal.NewFromInt(1)},
			models.ErrBeneficiaryRequired,
		},
		{
			"Refund needs beneficiary",
			models.Transaction{ProjectID: project.ID, Type: models.TypeRefund, Amount: decimal.NewFromInt(1)},
			models.ErrBeneficiaryRequired,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.transaction).Error
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}

	// A valid partner expense passes
	_ = suite.createTestTransaction(models.Transaction{
		ProjectID: project.ID,
		Type:      models.TypeExpense,
		PayerType: models.PayerPartner,
		PayerID:   &partner.ID,
		Amount:    decimal.NewFromInt(1),
	})
}
