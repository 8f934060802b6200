package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shreyash398/Green-World/internal/models"
	"github.com/shreyash398/Green-World/internal/utils"
)

type LogHoursRequest struct {
	ProjectID uint `json:"projectId" binding:"required"`
	Hours     *int `json:"hours" binding:"required,gte=0"`
}

type VolunteerMilestone struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"` // "Done" or "In Progress"
}

type VolunteerProject struct {
	ID              uint                 `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	LongDescription string               `json:"longDescription"`
	Status          string               `json:"status"` // "Completed" or "In Progress"
	Hours           int                  `json:"hours"`
	Impact          string               `json:"impact"`
	CarbonOffset    string               `json:"carbonOffset"`
	Date            string               `json:"date"`
	Certificate     bool                 `json:"certificate"`
	Image           string               `json:"image"`
	Ngo             string               `json:"ngo"`
	Milestones      []VolunteerMilestone `json:"milestones"`
	Gallery         []string             `json:"gallery"`
}

type VolunteerStatsResponse struct {
	HoursVolunteered   int `json:"hoursVolunteered"`
	ProjectsCompleted  int `json:"projectsCompleted"`
	CertificatesEarned int `json:"certificatesEarned"`
	ImpactScore        int `json:"impactScore"`
}

type CertificateResponse struct {
	ID          uint      `json:"id"`
	ProjectName string    `json:"projectName"`
	Hours       int       `json:"hours"`
	IssuedAt    time.Time `json:"issuedAt"`
	Ngo         string    `json:"ngo"`
}

func (h *Handler) MyProjects(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var registrations []models.Registration

	if err := h.DB.Where("user_id = ?", currentUser.ID).Find(&registrations).Error; err != nil {
		log.Printf("Failed to fetch registrations: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	projects := make([]VolunteerProject, 0, len(registrations))

	for _, registration := range registrations {
		var project models.Project

		if err := h.DB.First(&project, registration.ProjectID).Error; err != nil {
			log.Printf("Failed to fetch project %d: %v", registration.ProjectID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}

		var ngo models.User

		if err := h.DB.First(&ngo, project.NgoID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to fetch NGO: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}

		var certCount int64

		if err := h.DB.Model(&models.Certificate{}).
			Where("user_id = ? AND project_id = ?", currentUser.ID, project.ID).
			Count(&certCount).Error; err != nil {
			log.Printf("Failed to count certificates: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}

		var milestones []models.Milestone

		if err := h.DB.Where("project_id = ?", project.ID).Order("order_index").Find(&milestones).Error; err != nil {
			log.Printf("Failed to fetch milestones: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}

		milestoneList := make([]VolunteerMilestone, 0, len(milestones))
		for _, m := range milestones {
			status := "In Progress"
			if m.Completed {
				status = "Done"
			}
			milestoneList = append(milestoneList, VolunteerMilestone{ID: m.ID, Title: m.Name, Status: status})
		}

		var photos []models.ProjectPhoto

		if err := h.DB.Where("project_id = ?", project.ID).Find(&photos).Error; err != nil {
			log.Printf("Failed to fetch photos: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}

		gallery := make([]string, 0, len(photos))
		for _, photo := range photos {
			gallery = append(gallery, photo.URL)
		}

		status := "In Progress"
		if project.Status == models.ProjectStatusCompleted {
			status = "Completed"
		}

		impact := project.ImpactValue
		if impact == "" {
			impact = "Impact pending"
		}

		carbonOffset := project.CarbonOffset
		if carbonOffset == "" {
			carbonOffset = "Calculating..."
		}

		image := project.Image
		if image == "" {
			image = "🌱"
		}

		projects = append(projects, VolunteerProject{
			ID:              project.ID,
			Name:            project.Title,
			Description:     project.Description,
			LongDescription: project.LongDescription,
			Status:          status,
			Hours:           registration.HoursContributed,
			Impact:          impact,
			CarbonOffset:    carbonOffset,
			Date:            registration.CreatedAt.Format("Jan 2, 2006"),
			Certificate:     certCount > 0,
			Image:           image,
			Ngo:             ngo.DisplayName(),
			Milestones:      milestoneList,
			Gallery:         gallery,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"projects": projects})
}

func (h *Handler) VolunteerStats(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var totalHours int

	if err := h.DB.Model(&models.Registration{}).
		Where("user_id = ?", currentUser.ID).
		Select("COALESCE(SUM(hours_contributed), 0)").
		Scan(&totalHours).Error; err != nil {
		log.Printf("Failed to sum volunteer hours: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var completedProjects int64

	if err := h.DB.Model(&models.Registration{}).
		Joins("JOIN projects ON projects.id = registrations.project_id").
		Where("registrations.user_id = ? AND projects.status = ?", currentUser.ID, models.ProjectStatusCompleted).
		Count(&completedProjects).Error; err != nil {
		log.Printf("Failed to count completed projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	var certificates int64

	if err := h.DB.Model(&models.Certificate{}).
		Where("user_id = ?", currentUser.ID).
		Count(&certificates).Error; err != nil {
		log.Printf("Failed to count certificates: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch statistics"})
		return
	}

	ctx.JSON(http.StatusOK, VolunteerStatsResponse{
		HoursVolunteered:   totalHours,
		ProjectsCompleted:  int(completedProjects),
		CertificatesEarned: int(certificates),
		ImpactScore:        utils.ImpactScore(totalHours),
	})
}

func (h *Handler) VolunteerCertificates(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var certificates []models.Certificate

	if err := h.DB.Where("user_id = ?", currentUser.ID).Find(&certificates).Error; err != nil {
		log.Printf("Failed to fetch certificates: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificates"})
		return
	}

	responses := make([]CertificateResponse, 0, len(certificates))

	for _, cert := range certificates {
		var project models.Project

		if err := h.DB.First(&project, cert.ProjectID).Error; err != nil {
			log.Printf("Failed to fetch project for certificate %d: %v", cert.ID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificates"})
			return
		}

		var ngo models.User

		if err := h.DB.First(&ngo, project.NgoID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to fetch NGO: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch certificates"})
			return
		}

		responses = append(responses, CertificateResponse{
			ID:          cert.ID,
			ProjectName: project.Title,
			Hours:       cert.Hours,
			IssuedAt:    cert.CreatedAt,
			Ngo:         ngo.DisplayName(),
		})
	}

	ctx.JSON(http.StatusOK, gin.H{"certificates": responses})
}

// LogHours sets the absolute hour count on an existing registration; it does
// not accumulate.
func (h *Handler) LogHours(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req LogHoursRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Valid projectId and hours required"})
		return
	}

	var registration models.Registration

	err = h.DB.Where("user_id = ? AND project_id = ?", currentUser.ID, req.ProjectID).First(&registration).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Registration not found"})
		} else {
			log.Printf("Failed to fetch registration: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log hours"})
		}
		return
	}

	if err := h.DB.Model(&registration).Update("hours_contributed", *req.Hours).Error; err != nil {
		log.Printf("Failed to update hours: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log hours"})
		return
	}

	BroadcastStatsRefresh()

	ctx.JSON(http.StatusOK, gin.H{
		"message":      "Hours logged successfully",
		"registration": newRegistrationResponse(&registration),
	})
}
