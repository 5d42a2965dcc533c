package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Partner represents a co-investor in a project.
//
// Percentage is consulted under the PERCENTAGE distribution policy,
// FixedValue under the FIXED policy. Both may be set, only the one
// matching the project's active policy is used.
type Partner struct {
	DefaultModel
	ProjectID  uuid.UUID
	Project    Project
	Name       string
	Email      string
	Phone      string
	Percentage decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Share of expenses in percent, 0 to 100
	FixedValue decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Flat contribution target
}

func (p *Partner) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)

	if p.Percentage.IsNegative() || p.Percentage.GreaterThan(decimal.NewFromInt(100)) {
		return ErrPercentageOutOfRange
	}

	return nil
}
