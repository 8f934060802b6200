package models

import "gorm.io/gorm"

const (
	ProjectStatusDraft     = "draft"
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
)

type Project struct {
	gorm.Model

	Title           string `gorm:"not null"`
	Description     string `gorm:"not null"`
	LongDescription string
	Location        string `gorm:"not null"`
	FundingGoal     int    `gorm:"not null;default:0"`
	FundingReceived int    `gorm:"not null;default:0"`
	Status          string `gorm:"not null;default:active"` // "draft", "active", "completed"
	ImpactType      string // Trees, Water, Waste, Energy
	ImpactValue     string // e.g., "5,000 trees", "2 tons waste"
	CarbonOffset    string // e.g., "3.2 tons/year"
	Image           string // Emoji or URL
	NgoID           uint   `gorm:"not null;index"`

	// Relationships
	Ngo           User           `gorm:"foreignKey:NgoID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Milestones    []Milestone    `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Registrations []Registration `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Certificates  []Certificate  `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Photos        []ProjectPhoto `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
