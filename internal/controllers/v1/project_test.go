package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/constructa/backend/internal/controllers/v1"
	"github.com/constructa/backend/internal/models"
	"github.com/constructa/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProject(t *testing.T, p v1.ProjectEditable, expectedStatus ...int) v1.ProjectResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.ProjectEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/projects", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ProjectCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.ProjectResponse{}
}

func (suite *TestSuiteStandard) TestProjectsCreate() {
	p := createTestProject(suite.T(), v1.ProjectEditable{Name: "Casa da Praia"})

	assert.Equal(suite.T(), "Casa da Praia", p.Data.Name)
	assert.Equal(suite.T(), models.ProjectActive, p.Data.Status)
	assert.Equal(suite.T(), models.DistributionPercentage, p.Data.DistributionType)
}

func (suite *TestSuiteStandard) TestProjectsCreateInvalidStatus() {
	body := []v1.ProjectEditable{{Name: "Invalid", Status: "SOMETHING"}}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/projects", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjectsCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/projects", `{ "this is": "not a list" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjectsGetSingle() {
	p := createTestProject(suite.T(), v1.ProjectEditable{Name: "Sobrado"})

	r := test.Request(suite.T(), http.MethodGet, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Sobrado", response.Data.Name)
}

func (suite *TestSuiteStandard) TestProjectsGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/projects/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjectsGetInvalidUUID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projects/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjectsList() {
	_ = createTestProject(suite.T(), v1.ProjectEditable{Name: "Casa 1"})
	_ = createTestProject(suite.T(), v1.ProjectEditable{Name: "Casa 2", Status: models.ProjectPaused})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"All", "", 2},
		{"Active only", "status=ACTIVE", 1},
		{"Paused only", "status=PAUSED", 1},
		{"Search", "search=Casa", 2},
		{"Name", "name=Casa 1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ProjectListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectsUpdate() {
	p := createTestProject(suite.T(), v1.ProjectEditable{Name: "Before"})

	r := test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]any{
		"name":   "After",
		"status": "COMPLETED",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "After", response.Data.Name)
	assert.Equal(suite.T(), models.ProjectCompleted, response.Data.Status)
}

func (suite *TestSuiteStandard) TestProjectsDelete() {
	p := createTestProject(suite.T(), v1.ProjectEditable{})

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjectsDBClosed() {
	require.NotNil(suite.T(), models.DB)
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.ProjectListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}
