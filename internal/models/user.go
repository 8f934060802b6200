package models

import "gorm.io/gorm"

type Role string

const (
	RoleCorporate Role = "corporate"
	RoleNgo       Role = "ngo"
	RoleVolunteer Role = "volunteer"
	RoleAdmin     Role = "admin"
)

type User struct {
	gorm.Model

	Email            string `gorm:"uniqueIndex;not null"`
	PasswordHash     string `gorm:"not null"`
	Name             string `gorm:"not null"`
	Role             Role   `gorm:"not null"`
	OrganizationName string

	// Relationships
	Projects      []Project      `gorm:"foreignKey:NgoID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Registrations []Registration `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Certificates  []Certificate  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// DisplayName is the label shown next to a project or certificate. NGOs
// usually register under an organization name, individuals under their own.
func (u User) DisplayName() string {
	if u.OrganizationName != "" {
		return u.OrganizationName
	}
	if u.Name != "" {
		return u.Name
	}
	return "Unknown NGO"
}
