package v1

import (
	"net/http"

	"github.com/constructa/backend/internal/engine"
	"github.com/constructa/backend/internal/httputil"
	"github.com/constructa/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type FinancialSummaryResponse struct {
	Error *string                  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *engine.FinancialSummary `json:"data"`                                                          // The summary
}

// loadSnapshot loads the full ledger of a project for the engine.
//
// The snapshot is taken in one request scope, summaries and forecasts
// derived from it are consistent with each other.
func loadSnapshot(c *gin.Context) (engine.Snapshot, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return engine.Snapshot{}, err
	}

	var snapshot engine.Snapshot

	err = models.DB.First(&snapshot.Project, uri.ID).Error
	if err != nil {
		return engine.Snapshot{}, err
	}

	err = models.DB.
		Where(&models.Partner{ProjectID: snapshot.Project.ID}).
		Order("created_at ASC").
		Find(&snapshot.Partners).Error
	if err != nil {
		return engine.Snapshot{}, err
	}

	err = models.DB.
		Where(&models.Transaction{ProjectID: snapshot.Project.ID}).
		Find(&snapshot.Transactions).Error
	if err != nil {
		return engine.Snapshot{}, err
	}

	return snapshot, nil
}

func OptionsSummary(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialSummaryResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.First(&models.Project{}, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialSummaryResponse{
			Error: &s,
		})
		return
	}

	httputil.OptionsGet(c)
}

// GetSummary returns the whole-history financial summary of a project.
//
// The summary is recomputed from the full transaction history on every
// request, nothing about it is persisted.
func GetSummary(c *gin.Context) {
	snapshot, err := loadSnapshot(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FinancialSummaryResponse{
			Error: &s,
		})
		return
	}

	summary := engine.Summarize(snapshot)
	c.JSON(http.StatusOK, FinancialSummaryResponse{Data: &summary})
}
