// Package engine implements the financial reconciliation and forecasting
// engine of Constructa.
//
// All computation is a pure function of an immutable Snapshot: the engine
// never reads or writes the database, keeps no state between invocations
// and always re-derives the full result from the whole transaction
// history. Recomputing on an unchanged snapshot yields identical results.
package engine

import (
	"github.com/constructa/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the consistent view of a project's ledger that the engine
// computes from. The surrounding system supplies a fresh snapshot after
// every mutation.
type Snapshot struct {
	Project      models.Project
	Partners     []models.Partner
	Transactions []models.Transaction
}

// FinancialSummary holds the whole-history balances of a project.
//
// It is derived, never persisted, and recomputed on every read.
type FinancialSummary struct {
	TotalExpenses   decimal.Decimal              `json:"totalExpenses" example:"15000"` // Sum of all expenses regardless of payer
	BoxInflow       decimal.Decimal              `json:"boxInflow" example:"12000"`     // Money that entered the box
	BoxOutflow      decimal.Decimal              `json:"boxOutflow" example:"9000"`     // Money that left the box
	BoxBalance      decimal.Decimal              `json:"boxBalance" example:"3000"`     // Current cash in the box
	PartnerBalances map[uuid.UUID]PartnerBalance `json:"partnerBalances"`               // Per-partner credit and debt balances
}

// Summarize reduces a snapshot into its financial summary.
func Summarize(s Snapshot) FinancialSummary {
	totals := Aggregate(s.Transactions)

	return FinancialSummary{
		TotalExpenses:   totals.TotalExpenses,
		BoxInflow:       totals.BoxInflow,
		BoxOutflow:      totals.BoxOutflow,
		BoxBalance:      totals.BoxBalance,
		PartnerBalances: ComputeBalances(s.Project, s.Partners, s.Transactions, totals.TotalExpenses),
	}
}
