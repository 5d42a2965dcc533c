package v1

import (
	"fmt"
	"time"

	"github.com/constructa/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ProjectEditable represents all user configurable parameters
type ProjectEditable struct {
	Name             string                  `json:"name" example:"Casa da Praia" default:""`                 // Name of the project
	Address          string                  `json:"address" example:"Rua das Flores 123" default:""`         // Address of the construction site
	StartDate        time.Time               `json:"startDate" example:"2026-01-15T00:00:00Z"`                // Start date of the construction
	Status           models.ProjectStatus    `json:"status" example:"ACTIVE" default:"ACTIVE"`                // Lifecycle status
	DistributionType models.DistributionType `json:"distributionType" example:"PERCENTAGE" default:"PERCENTAGE"` // Policy for fair-share computation
	Note             string                  `json:"note" example:"Two floors, shared with my brother" default:""` // Note about the project
}

func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Name:             editable.Name,
		Address:          editable.Address,
		StartDate:        editable.StartDate,
		Status:           editable.Status,
		DistributionType: editable.DistributionType,
		Note:             editable.Note,
	}
}

type ProjectLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/projects/3b1ea324-d438-4419-882a-2fc91d71772f"`                  // The project itself
	Partners     string `json:"partners" example:"https://example.com/api/v1/partners?project=3b1ea324-d438-4419-882a-2fc91d71772f"`      // Partners of this project
	Suppliers    string `json:"suppliers" example:"https://example.com/api/v1/suppliers?project=3b1ea324-d438-4419-882a-2fc91d71772f"`    // Suppliers of this project
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?project=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions of this project
	Summary      string `json:"summary" example:"https://example.com/api/v1/projects/3b1ea324-d438-4419-882a-2fc91d71772f/summary"`       // Financial summary of this project
	Planning     string `json:"planning" example:"https://example.com/api/v1/projects/3b1ea324-d438-4419-882a-2fc91d71772f/planning"`     // Monthly forecast report of this project
	Forecasts    string `json:"forecasts" example:"https://example.com/api/v1/forecasts?project=3b1ea324-d438-4419-882a-2fc91d71772f"`    // Budget forecasts of this project
}

type Project struct {
	models.DefaultModel
	ProjectEditable
	Links ProjectLinks `json:"links"`
}

// newProject returns the API v1 representation of the resource
func newProject(c *gin.Context, model models.Project) Project {
	url := c.GetString(string(models.DBContextURL))

	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			Name:             model.Name,
			Address:          model.Address,
			StartDate:        model.StartDate,
			Status:           model.Status,
			DistributionType: model.DistributionType,
			Note:             model.Note,
		},
		Links: ProjectLinks{
			Self:         fmt.Sprintf("%s/v1/projects/%s", url, model.ID),
			Partners:     fmt.Sprintf("%s/v1/partners?project=%s", url, model.ID),
			Suppliers:    fmt.Sprintf("%s/v1/suppliers?project=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?project=%s", url, model.ID),
			Summary:      fmt.Sprintf("%s/v1/projects/%s/summary", url, model.ID),
			Planning:     fmt.Sprintf("%s/v1/projects/%s/planning", url, model.ID),
			Forecasts:    fmt.Sprintf("%s/v1/forecasts?project=%s", url, model.ID),
		},
	}
}

type ProjectListResponse struct {
	Data       []Project   `json:"data"`                                                          // List of projects
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProjectCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ProjectResponse `json:"data"`                                                          // List of created resources
}

func (t *ProjectCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ProjectResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProjectResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Project `json:"data"`                                                          // The resource
}

type ProjectQueryFilter struct {
	Name             string `json:"name" form:"name" filterField:"false"`         // By name
	Status           string `json:"status" form:"status"`                         // By lifecycle status
	DistributionType string `json:"distributionType" form:"distributionType"`     // By distribution policy
	Note             string `json:"note" form:"note" filterField:"false"`         // By the note
	Search           string `json:"search" form:"search" filterField:"false"`     // By string in name or note
	Offset           uint   `json:"offset" form:"offset" filterField:"false"`     // The offset of the first project returned. Defaults to 0.
	Limit            int    `json:"limit" form:"limit" filterField:"false"`       // Maximum number of projects to return. Defaults to 50.
}

func (f ProjectQueryFilter) model() models.Project {
	// This does not set the string fields since they are
	// handled in the controller function
	return models.Project{
		Status:           models.ProjectStatus(f.Status),
		DistributionType: models.DistributionType(f.DistributionType),
	}
}
