package engine

import (
	"github.com/constructa/backend/internal/models"
	"github.com/shopspring/decimal"
)

// LedgerTotals are the project-wide sums over the full transaction history.
type LedgerTotals struct {
	TotalExpenses decimal.Decimal // Sum of all expenses regardless of payer
	BoxInflow     decimal.Decimal // Sum of all contributions
	BoxOutflow    decimal.Decimal // Expenses paid by the box plus all refunds
	BoxBalance    decimal.Decimal // BoxInflow minus BoxOutflow
}

// Aggregate reduces the full transaction set into global totals.
//
// The fold is order-independent and covers the whole history, no date
// range is applied. Refunds always draw from the box.
func Aggregate(transactions []models.Transaction) LedgerTotals {
	totals := LedgerTotals{
		TotalExpenses: decimal.Zero,
		BoxInflow:     decimal.Zero,
		BoxOutflow:    decimal.Zero,
	}

	for _, t := range transactions {
		switch t.Type {
		case models.TypeExpense:
			totals.TotalExpenses = totals.TotalExpenses.Add(t.Amount)
			if t.PayerType == models.PayerBox {
				totals.BoxOutflow = totals.BoxOutflow.Add(t.Amount)
			}
		case models.TypeContribution:
			totals.BoxInflow = totals.BoxInflow.Add(t.Amount)
		case models.TypeRefund:
			totals.BoxOutflow = totals.BoxOutflow.Add(t.Amount)
		}
	}

	totals.BoxBalance = totals.BoxInflow.Sub(totals.BoxOutflow)
	return totals
}
