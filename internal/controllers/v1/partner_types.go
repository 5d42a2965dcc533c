package v1

import (
	"fmt"

	"github.com/constructa/backend/internal/models"
	ez_uuid "github.com/constructa/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartnerEditable represents all user configurable parameters
type PartnerEditable struct {
	ProjectID  uuid.UUID       `json:"projectId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`                       // ID of the project the partner invests in
	Name       string          `json:"name" example:"Roberto" default:""`                                              // Name of the partner
	Email      string          `json:"email" example:"roberto@example.com" default:""`                                 // Contact email
	Phone      string          `json:"phone" example:"+55 11 91234-5678" default:""`                                   // Contact phone number
	Percentage decimal.Decimal `json:"percentage" example:"50" minimum:"0" maximum:"100" default:"0"`                  // Share of expenses under the PERCENTAGE policy
	FixedValue decimal.Decimal `json:"fixedValue" example:"25000" minimum:"0" default:"0"`                             // Contribution target under the FIXED policy
}

func (editable PartnerEditable) model() models.Partner {
	return models.Partner{
		ProjectID:  editable.ProjectID,
		Name:       editable.Name,
		Email:      editable.Email,
		Phone:      editable.Phone,
		Percentage: editable.Percentage,
		FixedValue: editable.FixedValue,
	}
}

type PartnerLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/partners/d430d7c3-d14c-4712-9336-ee56965a6673"`    // The partner itself
	Project string `json:"project" example:"https://example.com/api/v1/projects/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // The project the partner invests in
}

type Partner struct {
	models.DefaultModel
	PartnerEditable
	Links PartnerLinks `json:"links"`
}

// newPartner returns the API v1 representation of the resource
func newPartner(c *gin.Context, model models.Partner) Partner {
	url := c.GetString(string(models.DBContextURL))

	return Partner{
		DefaultModel: model.DefaultModel,
		PartnerEditable: PartnerEditable{
			ProjectID:  model.ProjectID,
			Name:       model.Name,
			Email:      model.Email,
			Phone:      model.Phone,
			Percentage: model.Percentage,
			FixedValue: model.FixedValue,
		},
		Links: PartnerLinks{
			Self:    fmt.Sprintf("%s/v1/partners/%s", url, model.ID),
			Project: fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
		},
	}
}

type PartnerListResponse struct {
	Data       []Partner   `json:"data"`                                                          // List of partners
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PartnerCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PartnerResponse `json:"data"`                                                          // List of created resources
}

func (t *PartnerCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, PartnerResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PartnerResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Partner `json:"data"`                                                          // The resource
}

type PartnerQueryFilter struct {
	ProjectID ez_uuid.UUID `json:"projectId" form:"project"`                 // By project ID
	Name      string       `json:"name" form:"name" filterField:"false"`     // By name
	Email     string       `json:"email" form:"email" filterField:"false"`   // By email
	Search    string       `json:"search" form:"search" filterField:"false"` // By string in name
	Offset    uint         `json:"offset" form:"offset" filterField:"false"` // The offset of the first partner returned. Defaults to 0.
	Limit     int          `json:"limit" form:"limit" filterField:"false"`   // Maximum number of partners to return. Defaults to 50.
}

func (f PartnerQueryFilter) model() models.Partner {
	return models.Partner{
		ProjectID: f.ProjectID.UUID,
	}
}
