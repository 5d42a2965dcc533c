package v1

import (
	"errors"
	"net/http"

	"github.com/constructa/backend/internal/engine"
	"github.com/constructa/backend/internal/httputil"
	"github.com/constructa/backend/internal/models"
	"github.com/constructa/backend/internal/types"
	"github.com/gin-gonic/gin"
)

type MonthlyForecastResponse struct {
	Error *string                       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *engine.MonthlyForecastReport `json:"data"`                                                          // The forecast report
}

// PlanningQuery are the query parameters of the planning endpoint
type PlanningQuery struct {
	Month                string `form:"month" example:"2026-09"`                          // The month to plan for, required
	AllowCreditAbatement bool   `form:"allowCreditAbatement" example:"true" default:"false"` // Offset pending amounts with accumulated credit
}

func OptionsPlanning(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyForecastResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Project{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyForecastResponse{
			Error: &s,
		})
		return
	}

	httputil.OptionsGet(c)
}

// GetPlanning returns the monthly forecast report for a project.
//
// When no budget forecast exists for the requested month, the report is
// returned with configured set to false instead of an error. That case
// is different from a forecast with a goal of zero.
func GetPlanning(c *gin.Context) {
	var query PlanningQuery
	_ = c.Bind(&query)

	if query.Month == "" {
		s := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthlyForecastResponse{
			Error: &s,
		})
		return
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		s := errMonthInvalidInQuery.Error()
		c.JSON(http.StatusBadRequest, MonthlyForecastResponse{
			Error: &s,
		})
		return
	}

	snapshot, err := loadSnapshot(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyForecastResponse{
			Error: &s,
		})
		return
	}

	var forecast *models.BudgetForecast
	var stored models.BudgetForecast
	err = models.DB.First(&stored, &models.BudgetForecast{
		ProjectID: snapshot.Project.ID,
		Month:     month,
	}).Error
	if err == nil {
		forecast = &stored
	} else if !errors.Is(err, models.ErrResourceNotFound) {
		s := err.Error()
		c.JSON(status(err), MonthlyForecastResponse{
			Error: &s,
		})
		return
	}

	summary := engine.Summarize(snapshot)
	report := engine.Forecast(snapshot, summary, month, forecast, query.AllowCreditAbatement)

	c.JSON(http.StatusOK, MonthlyForecastResponse{Data: &report})
}
