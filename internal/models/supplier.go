package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supplier represents a supplier of materials or services.
//
// Suppliers are descriptive metadata, the financial engine never
// consults them for balance math.
type Supplier struct {
	DefaultModel
	ProjectID       uuid.UUID
	Project         Project
	Name            string
	Document        string // CPF or CNPJ
	Contact         string
	DefaultCategory ExpenseCategory
}

func (s *Supplier) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Document = strings.TrimSpace(s.Document)
	s.Contact = strings.TrimSpace(s.Contact)

	return nil
}
