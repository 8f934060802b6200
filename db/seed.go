package db

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/shreyash398/Green-World/internal/models"
)

// Seed loads demo accounts and projects so dashboards have something to show.
// It is idempotent: once any user exists the seed is skipped entirely.
func Seed(gdb *gorm.DB) error {
	var userCount int64

	if err := gdb.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}

	if userCount > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	if err != nil {
		return err
	}

	hash := string(passwordHash)

	admin := models.User{
		Email:        "admin@greenworld.org",
		PasswordHash: hash,
		Name:         "System Admin",
		Role:         models.RoleAdmin,
	}

	ngo1 := models.User{
		Email:            "contact@greenearthsociety.org",
		PasswordHash:     hash,
		Name:             "Green Earth Society",
		Role:             models.RoleNgo,
		OrganizationName: "Green Earth Society",
	}

	ngo2 := models.User{
		Email:            "info@oceanians.org",
		PasswordHash:     hash,
		Name:             "Ocean Guardians",
		Role:             models.RoleNgo,
		OrganizationName: "Ocean Guardians",
	}

	volunteer := models.User{
		Email:        "volunteer@example.com",
		PasswordHash: hash,
		Name:         "John Doe",
		Role:         models.RoleVolunteer,
	}

	corporate := models.User{
		Email:            "csr@techcorp.com",
		PasswordHash:     hash,
		Name:             "TechCorp CSR Team",
		Role:             models.RoleCorporate,
		OrganizationName: "TechCorp Inc.",
	}

	for _, user := range []*models.User{&admin, &ngo1, &ngo2, &volunteer, &corporate} {
		if err := gdb.Create(user).Error; err != nil {
			return err
		}
	}

	project1 := models.Project{
		Title:           "Urban Forest Initiative",
		Description:     "A large-scale project aimed at restoring the urban canopy in the heart of the city. We focused on planting native species like Neem, Peepal, and Banyan to improve local air quality.",
		LongDescription: "This initiative successfully transformed a 2-acre abandoned industrial plot into a thriving urban forest. Over 450 volunteers participated in the primary planting phase. The project now serves as a local 'green lung', reducing heat island effects by an average of 4°C in the immediate vicinity.",
		Location:        "Mumbai, India",
		FundingGoal:     50000,
		FundingReceived: 35000,
		Status:          models.ProjectStatusActive,
		ImpactType:      "Trees",
		ImpactValue:     "5,000 trees",
		CarbonOffset:    "3.2 tons/year",
		Image:           "🌳",
		NgoID:           ngo1.ID,
	}

	project2 := models.Project{
		Title:           "Coastal Cleanup Drive",
		Description:     "Remove plastic and waste from coastal areas to protect marine ecosystems and wildlife.",
		LongDescription: "Focused on the Goa coastline, this drive mobilized over 200 youths to clear devastating plastic accumulation. All collected waste was sent to our partner recycling facility.",
		Location:        "Goa, India",
		FundingGoal:     30000,
		FundingReceived: 18000,
		Status:          models.ProjectStatusActive,
		ImpactType:      "Waste",
		ImpactValue:     "5 tons waste",
		CarbonOffset:    "0.8 tons/year",
		Image:           "🌊",
		NgoID:           ngo2.ID,
	}

	project3 := models.Project{
		Title:           "Mangrove Restoration",
		Description:     "Restore and protect 2,000 hectares of mangrove forests crucial for coastal biodiversity.",
		LongDescription: "Working with local fishing communities, we are restoring degraded mangrove ecosystems along the Kerala coast. This project combines conservation with sustainable livelihood generation.",
		Location:        "Kerala, India",
		FundingGoal:     45000,
		FundingReceived: 45000,
		Status:          models.ProjectStatusCompleted,
		ImpactType:      "Trees",
		ImpactValue:     "2,000 hectares",
		CarbonOffset:    "15 tons/year",
		Image:           "🌿",
		NgoID:           ngo1.ID,
	}

	project4 := models.Project{
		Title:           "Water Harvesting System",
		Description:     "Install rainwater harvesting systems in 50 rural villages to provide sustainable water access.",
		Location:        "Rajasthan, India",
		FundingGoal:     60000,
		FundingReceived: 40000,
		Status:          models.ProjectStatusActive,
		ImpactType:      "Water",
		ImpactValue:     "2.1M liters",
		Image:           "💧",
		NgoID:           ngo2.ID,
	}

	for _, project := range []*models.Project{&project1, &project2, &project3, &project4} {
		if err := gdb.Create(project).Error; err != nil {
			return err
		}
	}

	milestones := []models.Milestone{
		{ProjectID: project1.ID, Name: "Site Preparation", Completed: true, OrderIndex: 0},
		{ProjectID: project1.ID, Name: "Community Education", Completed: true, OrderIndex: 1},
		{ProjectID: project1.ID, Name: "Mass Planting", Completed: false, OrderIndex: 2},
		{ProjectID: project1.ID, Name: "Initial Irrigation", Completed: false, OrderIndex: 3},
		{ProjectID: project2.ID, Name: "Area Scouting", Completed: true, OrderIndex: 0},
		{ProjectID: project2.ID, Name: "Equipment Distribution", Completed: true, OrderIndex: 1},
		{ProjectID: project2.ID, Name: "Collection Phase", Completed: false, OrderIndex: 2},
		{ProjectID: project2.ID, Name: "Sorting & Recycling", Completed: false, OrderIndex: 3},
		{ProjectID: project3.ID, Name: "Initial Survey", Completed: true, OrderIndex: 0},
		{ProjectID: project3.ID, Name: "Site Preparation", Completed: true, OrderIndex: 1},
		{ProjectID: project3.ID, Name: "Planting Phase", Completed: true, OrderIndex: 2},
		{ProjectID: project3.ID, Name: "Monitoring", Completed: true, OrderIndex: 3},
	}

	if err := gdb.Create(&milestones).Error; err != nil {
		return err
	}

	registrations := []models.Registration{
		{UserID: volunteer.ID, ProjectID: project1.ID, HoursContributed: 12},
		{UserID: volunteer.ID, ProjectID: project3.ID, HoursContributed: 8},
	}

	if err := gdb.Create(&registrations).Error; err != nil {
		return err
	}

	certificate := models.Certificate{
		UserID:    volunteer.ID,
		ProjectID: project3.ID,
		Hours:     8,
	}

	if err := gdb.Create(&certificate).Error; err != nil {
		return err
	}

	log.Println("Database seeded successfully")
	log.Println("Demo accounts created:")
	log.Println("   Admin: admin@greenworld.org / password123")
	log.Println("   NGO: contact@greenearthsociety.org / password123")
	log.Println("   Volunteer: volunteer@example.com / password123")
	log.Println("   Corporate: csr@techcorp.com / password123")

	return nil
}
