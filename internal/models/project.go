package models

import (
	"strings"
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ProjectStatus is the lifecycle status of a construction project.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "ACTIVE"
	ProjectPaused    ProjectStatus = "PAUSED"
	ProjectCompleted ProjectStatus = "COMPLETED"
)

// DistributionType is the policy governing fair-share computation.
type DistributionType string

const (
	DistributionPercentage DistributionType = "PERCENTAGE"
	DistributionFixed      DistributionType = "FIXED"
)

// Project represents a construction project
//
// A project is the highest level of organization in Constructa, all other
// resources reference it directly or transitively.
type Project struct {
	DefaultModel
	Name             string
	Address          string
	StartDate        time.Time
	Status           ProjectStatus
	DistributionType DistributionType
	Note             string
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Address = strings.TrimSpace(p.Address)
	p.Note = strings.TrimSpace(p.Note)

	if p.Status == "" {
		p.Status = ProjectActive
	}

	if p.DistributionType == "" {
		p.DistributionType = DistributionPercentage
	}

	if !slices.Contains([]ProjectStatus{ProjectActive, ProjectPaused, ProjectCompleted}, p.Status) {
		return ErrProjectStatusInvalid
	}

	if !slices.Contains([]DistributionType{DistributionPercentage, DistributionFixed}, p.DistributionType) {
		return ErrDistributionTypeInvalid
	}

	return nil
}
