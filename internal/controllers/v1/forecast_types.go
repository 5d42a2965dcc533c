package v1

import (
	"fmt"

	"github.com/constructa/backend/internal/models"
	ez_uuid "github.com/constructa/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetForecastEditable represents all user configurable parameters
//
// The project and month of a forecast are part of its URI and can not
// be changed.
type BudgetForecastEditable struct {
	TotalAmount decimal.Decimal `json:"totalAmount" example:"5000" minimum:"0" default:"0"`    // The budget goal for the month
	Notes       string          `json:"notes" example:"Foundation work peaks here" default:""` // Notes about the month's goal
}

type BudgetForecastLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/projects/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce/forecasts/2026-09"` // The forecast itself
	Project string `json:"project" example:"https://example.com/api/v1/projects/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`                // The project the forecast belongs to
}

type BudgetForecast struct {
	models.DefaultModel
	BudgetForecastEditable
	ProjectID ez_uuid.UUID        `json:"projectId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the project
	Month     string              `json:"month" example:"2026-09"`                                  // The month the goal applies to
	Links     BudgetForecastLinks `json:"links"`
}

// newBudgetForecast returns the API v1 representation of the resource
func newBudgetForecast(c *gin.Context, model models.BudgetForecast) BudgetForecast {
	url := c.GetString(string(models.DBContextURL))

	return BudgetForecast{
		DefaultModel: model.DefaultModel,
		BudgetForecastEditable: BudgetForecastEditable{
			TotalAmount: model.TotalAmount,
			Notes:       model.Notes,
		},
		ProjectID: ez_uuid.UUID{UUID: model.ProjectID},
		Month:     model.Month.String(),
		Links: BudgetForecastLinks{
			Self:    fmt.Sprintf("%s/v1/projects/%s/forecasts/%s", url, model.ProjectID, model.Month),
			Project: fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
		},
	}
}

type BudgetForecastListResponse struct {
	Data       []BudgetForecast `json:"data"`                                                          // List of forecasts
	Error      *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination      `json:"pagination"`                                                    // Pagination information
}

type BudgetForecastResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *BudgetForecast `json:"data"`                                                          // The resource
}

type BudgetForecastQueryFilter struct {
	ProjectID  ez_uuid.UUID `json:"projectId" form:"project"`                         // By project ID
	FromMonth  string       `json:"fromMonth" form:"fromMonth" filterField:"false"`   // From this month
	UntilMonth string       `json:"untilMonth" form:"untilMonth" filterField:"false"` // Until this month
	Offset     uint         `json:"offset" form:"offset" filterField:"false"`         // The offset of the first forecast returned. Defaults to 0.
	Limit      int          `json:"limit" form:"limit" filterField:"false"`           // Maximum number of forecasts to return. Defaults to 50.
}

func (f BudgetForecastQueryFilter) model() models.BudgetForecast {
	return models.BudgetForecast{
		ProjectID: f.ProjectID.UUID,
	}
}
