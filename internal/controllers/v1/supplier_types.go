package v1

import (
	"fmt"

	"github.com/constructa/backend/internal/models"
	ez_uuid "github.com/constructa/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SupplierEditable represents all user configurable parameters
type SupplierEditable struct {
	ProjectID       uuid.UUID              `json:"projectId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the project the supplier works for
	Name            string                 `json:"name" example:"Construmax Materiais" default:""`           // Name of the supplier
	Document        string                 `json:"document" example:"12.345.678/0001-90" default:""`         // CPF or CNPJ
	Contact         string                 `json:"contact" example:"(11) 4002-8922" default:""`              // Contact information
	DefaultCategory models.ExpenseCategory `json:"defaultCategory" example:"MATERIAL" default:""`            // Default expense category for this supplier
}

func (editable SupplierEditable) model() models.Supplier {
	return models.Supplier{
		ProjectID:       editable.ProjectID,
		Name:            editable.Name,
		Document:        editable.Document,
		Contact:         editable.Contact,
		DefaultCategory: editable.DefaultCategory,
	}
}

type SupplierLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/suppliers/d430d7c3-d14c-4712-9336-ee56965a6673"`   // The supplier itself
	Project string `json:"project" example:"https://example.com/api/v1/projects/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // The project the supplier works for
}

type Supplier struct {
	models.DefaultModel
	SupplierEditable
	Links SupplierLinks `json:"links"`
}

// newSupplier returns the API v1 representation of the resource
func newSupplier(c *gin.Context, model models.Supplier) Supplier {
	url := c.GetString(string(models.DBContextURL))

	return Supplier{
		DefaultModel: model.DefaultModel,
		SupplierEditable: SupplierEditable{
			ProjectID:       model.ProjectID,
			Name:            model.Name,
			Document:        model.Document,
			Contact:         model.Contact,
			DefaultCategory: model.DefaultCategory,
		},
		Links: SupplierLinks{
			Self:    fmt.Sprintf("%s/v1/suppliers/%s", url, model.ID),
			Project: fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
		},
	}
}

type SupplierListResponse struct {
	Data       []Supplier  `json:"data"`                                                          // List of suppliers
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type SupplierCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []SupplierResponse `json:"data"`                                                          // List of created resources
}

func (t *SupplierCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, SupplierResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SupplierResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Supplier `json:"data"`                                                          // The resource
}

type SupplierQueryFilter struct {
	ProjectID       ez_uuid.UUID `json:"projectId" form:"project"`                   // By project ID
	Name            string       `json:"name" form:"name" filterField:"false"`       // By name
	DefaultCategory string       `json:"defaultCategory" form:"defaultCategory"`     // By default expense category
	Search          string       `json:"search" form:"search" filterField:"false"`   // By string in name
	Offset          uint         `json:"offset" form:"offset" filterField:"false"`   // The offset of the first supplier returned. Defaults to 0.
	Limit           int          `json:"limit" form:"limit" filterField:"false"`     // Maximum number of suppliers to return. Defaults to 50.
}

func (f SupplierQueryFilter) model() models.Supplier {
	return models.Supplier{
		ProjectID:       f.ProjectID.UUID,
		DefaultCategory: models.ExpenseCategory(f.DefaultCategory),
	}
}
