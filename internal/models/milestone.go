package models

import "gorm.io/gorm"

type Milestone struct {
	gorm.Model

	ProjectID  uint   `gorm:"not null;index"`
	Name       string `gorm:"not null"`
	Completed  bool   `gorm:"not null;default:false"`
	OrderIndex int    `gorm:"not null;default:0"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
