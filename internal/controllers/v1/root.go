package v1

import (
	"net/http"

	"github.com/constructa/backend/internal/httputil"
	"github.com/constructa/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type V1Response struct {
	Links V1Links `json:"links"` // Links for the v1 API
}

type V1Links struct {
	Projects     string `json:"projects" example:"https://example.com/api/v1/projects"`         // URL of the project collection endpoint
	Partners     string `json:"partners" example:"https://example.com/api/v1/partners"`         // URL of the partner collection endpoint
	Suppliers    string `json:"suppliers" example:"https://example.com/api/v1/suppliers"`       // URL of the supplier collection endpoint
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of the transaction collection endpoint
	Forecasts    string `json:"forecasts" example:"https://example.com/api/v1/forecasts"`       // URL of the forecast collection endpoint
}

// GetV1 returns the link list for v1
func GetV1(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Projects:     url + "/v1/projects",
			Partners:     url + "/v1/partners",
			Suppliers:    url + "/v1/suppliers",
			Transactions: url + "/v1/transactions",
			Forecasts:    url + "/v1/forecasts",
		},
	})
}

// OptionsV1 returns the allowed HTTP methods
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
