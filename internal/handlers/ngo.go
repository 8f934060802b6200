package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/shreyash398/Green-World/internal/models"
	"github.com/shreyash398/Green-World/internal/utils"
)

type NgoVolunteer struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	ProjectID    uint      `json:"projectId"`
	ProjectTitle string    `json:"projectTitle"`
	Hours        int       `json:"hours"`
	EnrolledAt   time.Time `json:"enrolledAt"`
}

type ProjectFunding struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	FundingGoal     int    `json:"fundingGoal"`
	FundingReceived int    `json:"fundingReceived"`
	Status          string `json:"status"`
	Percent         int    `json:"percent"`
}

func (h *Handler) NgoVolunteers(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var volunteers []NgoVolunteer

	err = h.DB.Model(&models.Registration{}).
		Select("users.id AS id, users.name AS name, users.email AS email, " +
			"registrations.project_id AS project_id, projects.title AS project_title, " +
			"registrations.hours_contributed AS hours, registrations.created_at AS enrolled_at").
		Joins("JOIN users ON users.id = registrations.user_id").
		Joins("JOIN projects ON projects.id = registrations.project_id").
		Where("projects.ngo_id = ?", currentUser.ID).
		Order("registrations.created_at DESC").
		Scan(&volunteers).Error

	if err != nil {
		log.Printf("Failed to fetch NGO volunteers: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch volunteers"})
		return
	}

	if volunteers == nil {
		volunteers = []NgoVolunteer{}
	}

	ctx.JSON(http.StatusOK, gin.H{"volunteers": volunteers})
}

func (h *Handler) NgoFunding(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.Project

	if err := h.DB.Where("ngo_id = ?", currentUser.ID).Order("created_at DESC").Find(&projects).Error; err != nil {
		log.Printf("Failed to fetch NGO projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch funding data"})
		return
	}

	funding := lo.Map(projects, func(p models.Project, _ int) ProjectFunding {
		return ProjectFunding{
			ID:              p.ID,
			Title:           p.Title,
			FundingGoal:     p.FundingGoal,
			FundingReceived: p.FundingReceived,
			Status:          p.Status,
			Percent:         utils.FundingPercent(p.FundingReceived, p.FundingGoal),
		}
	})

	ctx.JSON(http.StatusOK, gin.H{"funding": funding})
}
