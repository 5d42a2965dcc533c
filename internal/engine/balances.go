package engine

import (
	"github.com/constructa/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// PartnerBalance is the whole-history reconciliation of one partner.
//
// A positive Balance is credit the project owes to the partner, a
// negative Balance is money the partner still owes.
type PartnerBalance struct {
	PartnerID            uuid.UUID       `json:"partnerId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	PartnerName          string          `json:"partnerName" example:"Roberto"`
	TotalContributed     decimal.Decimal `json:"totalContributed" example:"5000"`     // Cash contributions into the box
	TotalExpensesPaid    decimal.Decimal `json:"totalExpensesPaid" example:"1200"`    // Expenses paid out of the partner's own pocket
	TotalRefundsReceived decimal.Decimal `json:"totalRefundsReceived" example:"300"`  // Refunds the partner received from the box
	FairShare            decimal.Decimal `json:"fairShare" example:"4500"`            // What the partner should have paid under the active policy
	Balance              decimal.Decimal `json:"balance" example:"1400"`              // Actual payments minus fair share
}

// fairShare computes what a partner should have paid towards a total
// under the project's distribution policy.
//
// Missing percentages and fixed values degrade to zero, they are never
// an error. Percentages are deliberately not validated to sum to 100
// across partners; the resulting balances then simply do not net to
// zero in aggregate. That is a data-quality concern for entry-time
// validation, not for this computation.
func fairShare(project models.Project, partner models.Partner, total decimal.Decimal) decimal.Decimal {
	if project.DistributionType == models.DistributionFixed {
		// A flat lifetime target, independent of the expense total.
		return partner.FixedValue
	}

	return total.Mul(partner.Percentage.Div(oneHundred))
}

// ComputeBalances derives the credit or debt balance of every partner.
//
// Transactions referencing a partner id that is not in partners are
// excluded from all per-partner sums. They still count towards the
// type-level totals computed by Aggregate.
func ComputeBalances(project models.Project, partners []models.Partner, transactions []models.Transaction, totalExpenses decimal.Decimal) map[uuid.UUID]PartnerBalance {
	balances := make(map[uuid.UUID]PartnerBalance, len(partners))

	for _, partner := range partners {
		contributions := decimal.Zero
		expensesPaid := decimal.Zero
		refundsReceived := decimal.Zero

		for _, t := range transactions {
			switch {
			case t.Type == models.TypeContribution && refersTo(t.BeneficiaryID, partner.ID):
				contributions = contributions.Add(t.Amount)
			case t.Type == models.TypeExpense && t.PayerType == models.PayerPartner && refersTo(t.PayerID, partner.ID):
				expensesPaid = expensesPaid.Add(t.Amount)
			case t.Type == models.TypeRefund && refersTo(t.BeneficiaryID, partner.ID):
				refundsReceived = refundsReceived.Add(t.Amount)
			}
		}

		actualPaid := contributions.Add(expensesPaid).Sub(refundsReceived)
		share := fairShare(project, partner, totalExpenses)

		balances[partner.ID] = PartnerBalance{
			PartnerID:            partner.ID,
			PartnerName:          partner.Name,
			TotalContributed:     contributions,
			TotalExpensesPaid:    expensesPaid,
			TotalRefundsReceived: refundsReceived,
			FairShare:            share,
			Balance:              actualPaid.Sub(share),
		}
	}

	return balances
}

func refersTo(ref *uuid.UUID, id uuid.UUID) bool {
	return ref != nil && *ref == id
}
