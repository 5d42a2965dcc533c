package v1

import (
	"errors"
	"net/http"

	"github.com/constructa/backend/internal/httputil"
	"github.com/constructa/backend/internal/models"
	"github.com/constructa/backend/internal/types"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterForecastRoutes registers the routes for the forecast collection
// with the RouterGroup that is passed.
//
// The single-forecast routes live under the project resource since a
// forecast is addressed by project and month, see RegisterProjectRoutes.
func RegisterForecastRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsForecastList)
	r.GET("", GetForecasts)
}

func OptionsForecastList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsForecastDetail returns the allowed HTTP methods for a single forecast.
//
// It answers for every valid project and month combination, the forecast
// itself does not need to exist since PATCH creates it transparently.
func OptionsForecastDetail(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Project{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// GetForecasts returns a list of forecasts filtered by the query parameters
func GetForecasts(c *gin.Context) {
	var filter BudgetForecastQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var forecasts []models.BudgetForecast

	q := models.DB.
		Order("month ASC").
		Where(filter.model(), queryFields...)

	if filter.FromMonth != "" {
		month, err := types.ParseMonth(filter.FromMonth)
		if err != nil {
			s := errMonthInvalidInQuery.Error()
			c.JSON(http.StatusBadRequest, BudgetForecastListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("month >= date(?)", month)
	}

	if filter.UntilMonth != "" {
		month, err := types.ParseMonth(filter.UntilMonth)
		if err != nil {
			s := errMonthInvalidInQuery.Error()
			c.JSON(http.StatusBadRequest, BudgetForecastListResponse{
				Error: &s,
			})
			return
		}

		q = q.Where("month <= date(?)", month)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&forecasts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetForecastListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]BudgetForecast, 0)
	for _, forecast := range forecasts {
		apiResources = append(apiResources, newBudgetForecast(c, forecast))
	}

	c.JSON(http.StatusOK, BudgetForecastListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// GetForecast returns the forecast for a specific project and month
func GetForecast(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	var forecast models.BudgetForecast
	err = models.DB.First(&forecast, &models.BudgetForecast{
		ProjectID: project.ID,
		Month:     types.MonthOf(uri.Month),
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBudgetForecast(c, forecast)
	c.JSON(http.StatusOK, BudgetForecastResponse{Data: &apiResource})
}

// UpdateForecast sets the forecast for a specific project and month.
//
// If there is no forecast for the month yet, it is created transparently,
// clients do not need to check for existence first.
func UpdateForecast(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	var project models.Project
	err = models.DB.First(&project, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetForecastEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	var data BudgetForecastEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	var forecast models.BudgetForecast
	err = models.DB.First(&forecast, &models.BudgetForecast{
		ProjectID: project.ID,
		Month:     types.MonthOf(uri.Month),
	}).Error
	if err != nil {
		if !errors.Is(err, models.ErrResourceNotFound) {
			s := err.Error()
			c.JSON(status(err), BudgetForecastResponse{
				Error: &s,
			})
			return
		}

		forecast = models.BudgetForecast{
			ProjectID:   project.ID,
			Month:       types.MonthOf(uri.Month),
			TotalAmount: data.TotalAmount,
			Notes:       data.Notes,
		}

		err = models.DB.Create(&forecast).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), BudgetForecastResponse{
				Error: &s,
			})
			return
		}

		apiResource := newBudgetForecast(c, forecast)
		c.JSON(http.StatusOK, BudgetForecastResponse{Data: &apiResource})
		return
	}

	err = models.DB.Model(&forecast).Select("", updateFields...).Updates(models.BudgetForecast{
		TotalAmount: data.TotalAmount,
		Notes:       data.Notes,
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBudgetForecast(c, forecast)
	c.JSON(http.StatusOK, BudgetForecastResponse{Data: &apiResource})
}

// DeleteForecast removes the forecast for a specific project and month
func DeleteForecast(c *gin.Context) {
	var uri URIMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	var forecast models.BudgetForecast
	err = models.DB.First(&forecast, &models.BudgetForecast{
		ProjectID: uri.ID.UUID,
		Month:     types.MonthOf(uri.Month),
	}).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Delete(&forecast).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetForecastResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
