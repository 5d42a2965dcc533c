package engine

import (
	"github.com/constructa/backend/internal/models"
	"github.com/constructa/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartnerForecast is the expected versus realized payment of one partner
// for the selected month.
type PartnerForecast struct {
	PartnerID   uuid.UUID       `json:"partnerId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	PartnerName string          `json:"partnerName" example:"Roberto"`
	Percentage  decimal.Decimal `json:"percentage" example:"50"` // The partner's share in percent

	ExpectedAmount    decimal.Decimal `json:"expectedAmount" example:"2500"`    // The partner's share of the month's budget goal
	DirectExpenses    decimal.Decimal `json:"directExpenses" example:"800"`     // Expenses paid out of pocket in the month
	CashContributions decimal.Decimal `json:"cashContributions" example:"1000"` // Cash contributed to the box in the month
	RefundsReceived   decimal.Decimal `json:"refundsReceived" example:"0"`      // Refunds received in the month
	RealizedAmount    decimal.Decimal `json:"realizedAmount" example:"1800"`    // DirectExpenses plus CashContributions minus RefundsReceived

	AvailableCredit decimal.Decimal `json:"availableCredit" example:"400"` // Whole-history credit usable for abatement, never negative
	UsedCredit      decimal.Decimal `json:"usedCredit" example:"400"`      // Credit applied against the pending amount
	Pending         decimal.Decimal `json:"pending" example:"300"`         // Cash still expected from the partner, never negative
	Progress        decimal.Decimal `json:"progress" example:"88"`         // Fulfillment in percent, 0 when nothing is expected
}

// LiquidityProjection is the cash view of a month: can the box cover
// the remaining budget goal after the expected inflows?
//
// It deliberately treats pending amounts as certain future cash, which
// makes the projection optimistic by construction. It must not be
// confused with the accounting view carried by the partner lines.
type LiquidityProjection struct {
	CashNeededForBudget    decimal.Decimal `json:"cashNeededForBudget" example:"4200"`    // The part of the goal that must be paid with box cash
	CashAvailable          decimal.Decimal `json:"cashAvailable" example:"3800"`          // Current box balance plus projected inflows
	ProjectedEndingBalance decimal.Decimal `json:"projectedEndingBalance" example:"-400"` // CashAvailable minus CashNeededForBudget
	IsLiquidityShortfall   bool            `json:"isLiquidityShortfall" example:"true"`   // True when the projected ending balance is negative
	LiquidityGap           decimal.Decimal `json:"liquidityGap" example:"400"`            // Absolute value of the projected ending balance
}

// MonthlyForecastReport is the full forecast of a project for one month.
//
// Configured is false when no budget forecast exists for the month. That
// state is distinct from a forecast with a zero goal and carries no
// partner lines.
type MonthlyForecastReport struct {
	Month                types.Month     `json:"month" example:"2026-09"`
	Configured           bool            `json:"configured" example:"true"`          // False when no forecast is set for the month
	TotalAmount          decimal.Decimal `json:"totalAmount" example:"5000"`         // The budget goal for the month
	AllowCreditAbatement bool            `json:"allowCreditAbatement" example:"false"`

	Partners []PartnerForecast `json:"partners"`

	TotalRealized            decimal.Decimal `json:"totalRealized" example:"1800"`            // Sum of realized amounts over all partners
	TotalPending             decimal.Decimal `json:"totalPending" example:"3200"`             // Goal minus total realized, floored at zero
	TotalDirectExpenses      decimal.Decimal `json:"totalDirectExpenses" example:"800"`       // Month's spend already paid out of pocket
	TotalProjectedCashInflow decimal.Decimal `json:"totalProjectedCashInflow" example:"2800"` // Cash still expected to arrive at the box
	TotalCreditsUsed         decimal.Decimal `json:"totalCreditsUsed" example:"400"`          // Sum of credits applied through abatement

	Liquidity LiquidityProjection `json:"liquidity"`
}

// Forecast computes the monthly forecast report for a snapshot.
//
// summary must be the summary of the same snapshot; the partner credit
// used for abatement is the whole-history balance, not a month-scoped
// one. A nil forecast disables the computation and yields a report with
// Configured set to false.
func Forecast(s Snapshot, summary FinancialSummary, month types.Month, forecast *models.BudgetForecast, allowCreditAbatement bool) MonthlyForecastReport {
	report := MonthlyForecastReport{
		Month:                    month,
		AllowCreditAbatement:     allowCreditAbatement,
		TotalRealized:            decimal.Zero,
		TotalPending:             decimal.Zero,
		TotalDirectExpenses:      decimal.Zero,
		TotalProjectedCashInflow: decimal.Zero,
		TotalCreditsUsed:         decimal.Zero,
	}

	if forecast == nil {
		return report
	}

	report.Configured = true
	report.TotalAmount = forecast.TotalAmount
	report.Partners = make([]PartnerForecast, 0, len(s.Partners))

	for _, partner := range s.Partners {
		line := partnerForecast(s, summary, partner, month, forecast.TotalAmount, allowCreditAbatement)
		report.Partners = append(report.Partners, line)

		report.TotalRealized = report.TotalRealized.Add(line.RealizedAmount)
		report.TotalDirectExpenses = report.TotalDirectExpenses.Add(line.DirectExpenses)
		report.TotalProjectedCashInflow = report.TotalProjectedCashInflow.Add(line.Pending)
		report.TotalCreditsUsed = report.TotalCreditsUsed.Add(line.UsedCredit)
	}

	report.TotalPending = decimal.Max(decimal.Zero, report.TotalAmount.Sub(report.TotalRealized))

	// The liquidity view: only the part of the goal that was not already
	// paid out of pocket needs to flow through the box.
	cashNeeded := decimal.Max(decimal.Zero, report.TotalAmount.Sub(report.TotalDirectExpenses))
	cashAvailable := summary.BoxBalance.Add(report.TotalProjectedCashInflow)
	projected := cashAvailable.Sub(cashNeeded)

	report.Liquidity = LiquidityProjection{
		CashNeededForBudget:    cashNeeded,
		CashAvailable:          cashAvailable,
		ProjectedEndingBalance: projected,
		IsLiquidityShortfall:   projected.IsNegative(),
		LiquidityGap:           projected.Abs(),
	}

	return report
}

func partnerForecast(s Snapshot, summary FinancialSummary, partner models.Partner, month types.Month, totalAmount decimal.Decimal, allowCreditAbatement bool) PartnerForecast {
	expected := fairShare(s.Project, partner, totalAmount)

	directExpenses := decimal.Zero
	cashContributions := decimal.Zero
	refundsReceived := decimal.Zero

	for _, t := range s.Transactions {
		if !month.Contains(t.Date) {
			continue
		}

		switch {
		case t.Type == models.TypeContribution && refersTo(t.BeneficiaryID, partner.ID):
			cashContributions = cashContributions.Add(t.Amount)
		case t.Type == models.TypeExpense && t.PayerType == models.PayerPartner && refersTo(t.PayerID, partner.ID):
			directExpenses = directExpenses.Add(t.Amount)
		case t.Type == models.TypeRefund && refersTo(t.BeneficiaryID, partner.ID):
			refundsReceived = refundsReceived.Add(t.Amount)
		}
	}

	realized := directExpenses.Add(cashContributions).Sub(refundsReceived)

	// Credit is the whole-history balance, not a month-scoped one.
	availableCredit := decimal.Zero
	if balance, ok := summary.PartnerBalances[partner.ID]; ok {
		availableCredit = decimal.Max(decimal.Zero, balance.Balance)
	}

	pending := expected.Sub(realized)
	usedCredit := decimal.Zero

	if allowCreditAbatement && pending.IsPositive() {
		usedCredit = decimal.Min(pending, availableCredit)
		pending = pending.Sub(usedCredit)
	}

	// Over-payment means settled, never a negative pending amount.
	pending = decimal.Max(decimal.Zero, pending)

	progress := decimal.Zero
	if expected.IsPositive() {
		progress = realized.Add(usedCredit).Div(expected).Mul(oneHundred)
	}

	return PartnerForecast{
		PartnerID:         partner.ID,
		PartnerName:       partner.Name,
		Percentage:        partner.Percentage,
		ExpectedAmount:    expected,
		DirectExpenses:    directExpenses,
		CashContributions: cashContributions,
		RefundsReceived:   refundsReceived,
		RealizedAmount:    realized,
		AvailableCredit:   availableCredit,
		UsedCredit:        usedCredit,
		Pending:           pending,
		Progress:          progress,
	}
}
