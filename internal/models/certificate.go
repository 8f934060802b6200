package models

import "gorm.io/gorm"

// Certificate records completed volunteer work. Unlike registrations there is
// no uniqueness constraint; a volunteer can earn several per project.
type Certificate struct {
	gorm.Model

	UserID    uint `gorm:"not null;index"`
	ProjectID uint `gorm:"not null;index"`
	Hours     int  `gorm:"not null"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
