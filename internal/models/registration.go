package models

import "gorm.io/gorm"

// Registration links a volunteer to a project. The composite unique index
// turns a double-registration race into a rejected duplicate.
type Registration struct {
	gorm.Model

	UserID           uint `gorm:"not null;uniqueIndex:idx_user_project"`
	ProjectID        uint `gorm:"not null;uniqueIndex:idx_user_project"`
	HoursContributed int  `gorm:"not null;default:0"`

	// Relationships
	User    User    `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
