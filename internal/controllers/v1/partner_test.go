package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/constructa/backend/internal/controllers/v1"
	"github.com/constructa/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func createTestPartner(t *testing.T, p v1.PartnerEditable, expectedStatus ...int) v1.PartnerResponse {
	if p.ProjectID == uuid.Nil {
		p.ProjectID = createTestProject(t, v1.ProjectEditable{}).Data.ID
	}

	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.PartnerEditable{p}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/partners", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.PartnerCreateResponse
	test.DecodeResponse(t, &r, &response)

	if r.Code == http.StatusCreated {
		return response.Data[0]
	}

	return v1.PartnerResponse{}
}

func (suite *TestSuiteStandard) TestPartnersCreate() {
	p := createTestPartner(suite.T(), v1.PartnerEditable{
		Name:       "Roberto",
		Percentage: decimal.NewFromInt(50),
	})

	assert.Equal(suite.T(), "Roberto", p.Data.Name)
	assert.True(suite.T(), p.Data.Percentage.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestPartnersCreatePercentageOutOfRange() {
	tests := []struct {
		name       string
		percentage decimal.Decimal
	}{
		{"Above 100", decimal.NewFromInt(101)},
		{"Negative", decimal.NewFromInt(-1)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestPartner(t, v1.PartnerEditable{Percentage: tt.percentage}, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestPartnersListByProject() {
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	_ = createTestPartner(suite.T(), v1.PartnerEditable{ProjectID: project.Data.ID, Name: "Ana"})
	_ = createTestPartner(suite.T(), v1.PartnerEditable{ProjectID: project.Data.ID, Name: "Bruno"})
	_ = createTestPartner(suite.T(), v1.PartnerEditable{Name: "Elsewhere"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/partners?project=%s", project.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PartnerListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestPartnersUpdate() {
	p := createTestPartner(suite.T(), v1.PartnerEditable{Name: "Before", Percentage: decimal.NewFromInt(30)})

	r := test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]any{
		"percentage": 60,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PartnerResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Before", response.Data.Name)
	assert.True(suite.T(), response.Data.Percentage.Equal(decimal.NewFromInt(60)))
}

func (suite *TestSuiteStandard) TestPartnersDelete() {
	p := createTestPartner(suite.T(), v1.PartnerEditable{})

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
