package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/constructa/backend/internal/controllers/v1"
	"github.com/constructa/backend/internal/models"
	"github.com/constructa/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func planningURL(project v1.ProjectResponse, query string) string {
	return fmt.Sprintf("http://example.com/v1/projects/%s/planning?%s", project.Data.ID, query)
}

// monthDate returns a date in the middle of the given month
func monthDate(month string) time.Time {
	date, _ := time.Parse("2006-01", month)
	return date.AddDate(0, 0, 14)
}

func (suite *TestSuiteStandard) TestPlanningMonthRequired() {
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	r := test.Request(suite.T(), http.MethodGet, planningURL(project, ""), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPlanningMonthInvalid() {
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	r := test.Request(suite.T(), http.MethodGet, planningURL(project, "month=September"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestPlanningNotConfigured verifies that a month without a forecast is
// reported as not configured, which is different from a zero goal.
func (suite *TestSuiteStandard) TestPlanningNotConfigured() {
	project := createTestProject(suite.T(), v1.ProjectEditable{})
	_ = createTestPartner(suite.T(), v1.PartnerEditable{ProjectID: project.Data.ID, Percentage: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodGet, planningURL(project, "month=2026-09"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthlyForecastResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.False(suite.T(), response.Data.Configured)
	assert.Empty(suite.T(), response.Data.Partners)
}

func (suite *TestSuiteStandard) TestPlanningZeroGoalIsConfigured() {
	project := createTestProject(suite.T(), v1.ProjectEditable{})
	_ = createTestPartner(suite.T(), v1.PartnerEditable{ProjectID: project.Data.ID, Percentage: decimal.NewFromInt(100)})
	_ = setTestForecast(suite.T(), project.Data.ID, "2026-09", v1.BudgetForecastEditable{})

	r := test.Request(suite.T(), http.MethodGet, planningURL(project, "month=2026-09"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthlyForecastResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), response.Data.Configured)
	assert.Len(suite.T(), response.Data.Partners, 1)
	assert.True(suite.T(), response.Data.TotalAmount.IsZero())
}

// TestPlanningForecast exercises the full monthly report: realized
// amounts, pending cash, credit abatement and the liquidity projection.
func (suite *TestSuiteStandard) TestPlanningForecast() {
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	roberto := createTestPartner(suite.T(), v1.PartnerEditable{
		ProjectID:  project.Data.ID,
		Name:       "Roberto",
		Percentage: decimal.NewFromInt(50),
	})
	ana := createTestPartner(suite.T(), v1.PartnerEditable{
		ProjectID:  project.Data.ID,
		Name:       "Ana",
		Percentage: decimal.NewFromInt(50),
	})

	robertoID := roberto.Data.ID
	anaID := ana.Data.ID

	// History before the planning month: Roberto overpaid by 500.
	// Total expenses 1000, his fair share is 500, he contributed 1000.
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		ProjectID: project.Data.ID, Type: models.TypeContribution,
		Date:   monthDate("2026-08"),
		Amount: decimal.NewFromInt(1000), BeneficiaryID: &robertoID,
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		ProjectID: project.Data.ID, Type: models.TypeExpense,
		Date:   monthDate("2026-08"),
		Amount: decimal.NewFromInt(1000),
	})

	// In the planning month, Ana contributes 600 in cash
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		ProjectID: project.Data.ID, Type: models.TypeContribution,
		Date:   monthDate("2026-09"),
		Amount: decimal.NewFromInt(600), BeneficiaryID: &anaID,
	})

	_ = setTestForecast(suite.T(), project.Data.ID, "2026-09", v1.BudgetForecastEditable{
		TotalAmount: decimal.NewFromInt(2000),
	})

	// Without abatement: Roberto owes his full 1000 share
	r := test.Request(suite.T(), http.MethodGet, planningURL(project, "month=2026-09"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthlyForecastResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.True(suite.T(), response.Data.Configured)
	require.Len(suite.T(), response.Data.Partners, 2)

	for _, line := range response.Data.Partners {
		switch line.PartnerID {
		case robertoID:
			assert.True(suite.T(), line.Pending.Equal(decimal.NewFromInt(1000)), "pending is %s", line.Pending)
			assert.True(suite.T(), line.UsedCredit.IsZero())
		case anaID:
			assert.True(suite.T(), line.RealizedAmount.Equal(decimal.NewFromInt(600)))
			assert.True(suite.T(), line.Pending.Equal(decimal.NewFromInt(400)), "pending is %s", line.Pending)
		}
	}

	// With abatement: Roberto's 500 credit halves his pending amount
	r = test.Request(suite.T(), http.MethodGet, planningURL(project, "month=2026-09&allowCreditAbatement=true"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	require.True(suite.T(), response.Data.AllowCreditAbatement)

	for _, line := range response.Data.Partners {
		switch line.PartnerID {
		case robertoID:
			assert.True(suite.T(), line.UsedCredit.Equal(decimal.NewFromInt(500)), "used credit is %s", line.UsedCredit)
			assert.True(suite.T(), line.Pending.Equal(decimal.NewFromInt(500)), "pending is %s", line.Pending)
		case anaID:
			// Ana's whole-history balance is 600 paid minus a 500 fair
			// share, giving her 100 of credit as well
			assert.True(suite.T(), line.UsedCredit.Equal(decimal.NewFromInt(100)), "used credit is %s", line.UsedCredit)
			assert.True(suite.T(), line.Pending.Equal(decimal.NewFromInt(300)), "pending is %s", line.Pending)
		}
	}

	// Liquidity: the box holds 600 (1600 in, 1000 out), pending cash is
	// 500 + 300 = 800 and the full 2000 goal still needs box cash
	assert.True(suite.T(), response.Data.Liquidity.CashNeededForBudget.Equal(decimal.NewFromInt(2000)))
	assert.True(suite.T(), response.Data.Liquidity.CashAvailable.Equal(decimal.NewFromInt(1400)),
		"cash available is %s", response.Data.Liquidity.CashAvailable)
	assert.True(suite.T(), response.Data.Liquidity.IsLiquidityShortfall)
	assert.True(suite.T(), response.Data.Liquidity.LiquidityGap.Equal(decimal.NewFromInt(600)))
}
