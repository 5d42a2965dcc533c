package models_test

import (
	"github.com/constructa/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestProjectDefaults() {
	project := suite.createTestProject(models.Project{Name: "Casa da Praia"})

	assert.Equal(suite.T(), models.ProjectActive, project.Status)
	assert.Equal(suite.T(), models.DistributionPercentage, project.DistributionType)
}

func (suite *TestSuiteStandard) TestProjectTrimWhitespace() {
	project := suite.createTestProject(models.Project{
		Name:    "  Casa da Praia  ",
		Address: " Rua das Flores 123 ",
		Note:    "  a note ",
	})

	assert.Equal(suite.T(), "Casa da Praia", project.Name)
	assert.Equal(suite.T(), "Rua das Flores 123", project.Address)
	assert.Equal(suite.T(), "a note", project.Note)
}

func (suite *TestSuiteStandard) TestProjectInvalidStatus() {
	err := models.DB.Create(&models.Project{Name: "Invalid", Status: "DEMOLISHED"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrProjectStatusInvalid)
}

func (suite *TestSuiteStandard) TestProjectInvalidDistributionType() {
	err := models.DB.Create(&models.Project{Name: "Invalid", DistributionType: "EQUAL"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrDistributionTypeInvalid)
}
