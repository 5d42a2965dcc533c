package models

import (
	"strings"

	"github.com/constructa/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetForecast is the declared budget goal of a project for one month.
//
// At most one forecast exists per project and month, updates use
// upsert semantics.
type BudgetForecast struct {
	DefaultModel
	ProjectID   uuid.UUID `gorm:"uniqueIndex:budget_forecast_project_month"`
	Project     Project
	Month       types.Month     `gorm:"uniqueIndex:budget_forecast_project_month"`
	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Notes       string
}

func (b *BudgetForecast) BeforeSave(_ *gorm.DB) error {
	b.Notes = strings.TrimSpace(b.Notes)

	if b.TotalAmount.IsNegative() {
		return ErrForecastAmountNegative
	}

	return nil
}
