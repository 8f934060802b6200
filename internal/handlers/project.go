package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shreyash398/Green-World/internal/models"
	"github.com/shreyash398/Green-World/internal/utils"
)

type CreateProjectRequest struct {
	Title           string `json:"title" binding:"required,min=3"`
	Description     string `json:"description" binding:"required,min=10"`
	LongDescription string `json:"longDescription"`
	Location        string `json:"location" binding:"required,min=2"`
	FundingGoal     int    `json:"fundingGoal" binding:"min=0"`
	ImpactType      string `json:"impactType"`
	ImpactValue     string `json:"impactValue"`
	CarbonOffset    string `json:"carbonOffset"`
	Image           string `json:"image"`
}

type UpdateProjectRequest struct {
	Title           *string `json:"title" binding:"omitempty,min=3"`
	Description     *string `json:"description" binding:"omitempty,min=10"`
	LongDescription *string `json:"longDescription"`
	Location        *string `json:"location" binding:"omitempty,min=2"`
	FundingGoal     *int    `json:"fundingGoal" binding:"omitempty,min=0"`
	FundingReceived *int    `json:"fundingReceived" binding:"omitempty,min=0"`
	Status          *string `json:"status" binding:"omitempty,oneof=draft active completed"`
	ImpactType      *string `json:"impactType"`
	ImpactValue     *string `json:"impactValue"`
	CarbonOffset    *string `json:"carbonOffset"`
	Image           *string `json:"image"`
}

type ProjectResponse struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Location        string    `json:"location"`
	FundingGoal     int       `json:"fundingGoal"`
	FundingReceived int       `json:"fundingReceived"`
	Status          string    `json:"status"`
	ImpactType      string    `json:"impactType"`
	ImpactValue     string    `json:"impactValue"`
	CarbonOffset    string    `json:"carbonOffset"`
	Image           string    `json:"image"`
	NgoID           uint      `json:"ngoId"`
	CreatedAt       time.Time `json:"createdAt"`
}

func newProjectResponse(project *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:              project.ID,
		Title:           project.Title,
		Description:     project.Description,
		LongDescription: project.LongDescription,
		Location:        project.Location,
		FundingGoal:     project.FundingGoal,
		FundingReceived: project.FundingReceived,
		Status:          project.Status,
		ImpactType:      project.ImpactType,
		ImpactValue:     project.ImpactValue,
		CarbonOffset:    project.CarbonOffset,
		Image:           project.Image,
		NgoID:           project.NgoID,
		CreatedAt:       project.CreatedAt,
	}
}

type RegistrationResponse struct {
	ID               uint      `json:"id"`
	UserID           uint      `json:"userId"`
	ProjectID        uint      `json:"projectId"`
	HoursContributed int       `json:"hoursContributed"`
	RegisteredAt     time.Time `json:"registeredAt"`
}

func newRegistrationResponse(registration *models.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:               registration.ID,
		UserID:           registration.UserID,
		ProjectID:        registration.ProjectID,
		HoursContributed: registration.HoursContributed,
		RegisteredAt:     registration.CreatedAt,
	}
}

type MilestoneSummary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

type ProjectSummary struct {
	ID              uint               `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Location        string             `json:"location"`
	FundingGoal     int                `json:"fundingGoal"`
	FundingReceived int                `json:"fundingReceived"`
	Status          string             `json:"status"`
	ImpactType      string             `json:"impactType"`
	ImpactValue     string             `json:"impactValue"`
	Image           string             `json:"image"`
	NgoID           uint               `json:"ngoId"`
	CreatedAt       time.Time          `json:"createdAt"`
	Volunteers      int64              `json:"volunteers"`
	Ngo             string             `json:"ngo"`
	Milestones      []MilestoneSummary `json:"milestones"`
}

type ProjectDetail struct {
	ProjectSummary
	LongDescription string   `json:"longDescription"`
	CarbonOffset    string   `json:"carbonOffset"`
	Photos          []string `json:"photos"`
	IsRegistered    bool     `json:"isRegistered"`
}

func (h *Handler) projectMilestones(projectID uint) ([]MilestoneSummary, error) {
	var milestones []models.Milestone

	err := h.DB.Where("project_id = ?", projectID).Order("order_index").Find(&milestones).Error

	if err != nil {
		return nil, err
	}

	summaries := make([]MilestoneSummary, 0, len(milestones))
	for _, m := range milestones {
		summaries = append(summaries, MilestoneSummary{ID: m.ID, Name: m.Name, Completed: m.Completed})
	}

	return summaries, nil
}

func (h *Handler) projectSummary(project *models.Project) (ProjectSummary, error) {
	var volunteers int64

	if err := h.DB.Model(&models.Registration{}).Where("project_id = ?", project.ID).Count(&volunteers).Error; err != nil {
		return ProjectSummary{}, err
	}

	var ngo models.User

	if err := h.DB.First(&ngo, project.NgoID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ProjectSummary{}, err
	}

	milestones, err := h.projectMilestones(project.ID)

	if err != nil {
		return ProjectSummary{}, err
	}

	return ProjectSummary{
		ID:              project.ID,
		Title:           project.Title,
		Description:     project.Description,
		Location:        project.Location,
		FundingGoal:     project.FundingGoal,
		FundingReceived: project.FundingReceived,
		Status:          project.Status,
		ImpactType:      project.ImpactType,
		ImpactValue:     project.ImpactValue,
		Image:           project.Image,
		NgoID:           project.NgoID,
		CreatedAt:       project.CreatedAt,
		Volunteers:      volunteers,
		Ngo:             ngo.DisplayName(),
		Milestones:      milestones,
	}, nil
}

func (h *Handler) ListProjects(ctx *gin.Context) {
	currentUser, authErr := utils.GetCurrentUser(ctx)

	query := h.DB.Model(&models.Project{})

	if search := ctx.Query("search"); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	if location := ctx.Query("location"); location != "" && location != "all" {
		query = query.Where("location = ?", location)
	}

	if status := ctx.Query("status"); status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if impactType := ctx.Query("impactType"); impactType != "" && impactType != "all" {
		query = query.Where("impact_type = ?", impactType)
	}

	// Drafts are visible only to the NGO that owns them.
	if authErr == nil && currentUser.Role == models.RoleNgo {
		query = query.Where("(status <> ? OR ngo_id = ?)", models.ProjectStatusDraft, currentUser.ID)
	} else {
		query = query.Where("status <> ?", models.ProjectStatusDraft)
	}

	limit := 50
	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	offset := 0
	if raw := ctx.Query("offset"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	var projects []models.Project

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	summaries := make([]ProjectSummary, 0, len(projects))

	for i := range projects {
		summary, err := h.projectSummary(&projects[i])

		if err != nil {
			log.Printf("Failed to build project summary: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
			return
		}

		summaries = append(summaries, summary)
	}

	ctx.JSON(http.StatusOK, gin.H{"projects": summaries})
}

func (h *Handler) GetProject(ctx *gin.Context) {
	projectID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project

	if err := h.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		}
		return
	}

	summary, err := h.projectSummary(&project)

	if err != nil {
		log.Printf("Failed to build project summary: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	var photos []models.ProjectPhoto

	if err := h.DB.Where("project_id = ?", project.ID).Find(&photos).Error; err != nil {
		log.Printf("Failed to fetch project photos: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
		return
	}

	urls := make([]string, 0, len(photos))
	for _, photo := range photos {
		urls = append(urls, photo.URL)
	}

	isRegistered := false

	if currentUser, err := utils.GetCurrentUser(ctx); err == nil {
		var registration models.Registration

		err := h.DB.Where("project_id = ? AND user_id = ?", project.ID, currentUser.ID).First(&registration).Error

		if err == nil {
			isRegistered = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Failed to check registration: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project"})
			return
		}
	}

	ctx.JSON(http.StatusOK, ProjectDetail{
		ProjectSummary:  summary,
		LongDescription: project.LongDescription,
		CarbonOffset:    project.CarbonOffset,
		Photos:          urls,
		IsRegistered:    isRegistered,
	})
}

func (h *Handler) CreateProject(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	// New projects always start active; the basic creation path never
	// accepts a caller-supplied status.
	project := models.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Location:        req.Location,
		FundingGoal:     req.FundingGoal,
		Status:          models.ProjectStatusActive,
		ImpactType:      req.ImpactType,
		ImpactValue:     req.ImpactValue,
		CarbonOffset:    req.CarbonOffset,
		Image:           req.Image,
		NgoID:           currentUser.ID,
	}

	if err := h.DB.Create(&project).Error; err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	BroadcastStatsRefresh()

	ctx.JSON(http.StatusCreated, gin.H{"project": newProjectResponse(&project)})
}

func (h *Handler) UpdateProject(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	var project models.Project

	if err := h.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		}
		return
	}

	// Admins bypass ownership checks entirely.
	if currentUser.Role != models.RoleAdmin && project.NgoID != currentUser.ID {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this project"})
		return
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.LongDescription != nil {
		updates["long_description"] = *req.LongDescription
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.FundingGoal != nil {
		updates["funding_goal"] = *req.FundingGoal
	}
	if req.FundingReceived != nil {
		// Received may exceed the goal; the platform is deliberately
		// permissive here.
		updates["funding_received"] = *req.FundingReceived
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ImpactType != nil {
		updates["impact_type"] = *req.ImpactType
	}
	if req.ImpactValue != nil {
		updates["impact_value"] = *req.ImpactValue
	}
	if req.CarbonOffset != nil {
		updates["carbon_offset"] = *req.CarbonOffset
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid fields to update"})
		return
	}

	if err := h.DB.Model(&project).Updates(updates).Error; err != nil {
		log.Printf("Failed to update project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	if err := h.DB.First(&project, project.ID).Error; err != nil {
		log.Printf("Failed to refresh project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	BroadcastStatsRefresh()

	ctx.JSON(http.StatusOK, gin.H{"project": newProjectResponse(&project)})
}

// ToggleMilestone flips the completion flag. Repeated calls alternate the
// state; there is no explicit target value.
func (h *Handler) ToggleMilestone(ctx *gin.Context) {
	projectID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	milestoneID, err := utils.ParseIDParam(ctx, "mid")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var milestone models.Milestone

	if err := h.DB.First(&milestone, milestoneID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		} else {
			log.Printf("Failed to fetch milestone: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		}
		return
	}

	if milestone.ProjectID != projectID {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Milestone not found"})
		return
	}

	if err := h.DB.Model(&milestone).Update("completed", !milestone.Completed).Error; err != nil {
		log.Printf("Failed to update milestone: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update milestone"})
		return
	}

	BroadcastStatsRefresh()

	ctx.JSON(http.StatusOK, gin.H{"milestone": MilestoneSummary{
		ID:        milestone.ID,
		Name:      milestone.Name,
		Completed: milestone.Completed,
	}})
}

func (h *Handler) RegisterForProject(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var project models.Project

	if err := h.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register for project"})
		}
		return
	}

	var existing models.Registration

	err = h.DB.Where("project_id = ? AND user_id = ?", projectID, currentUser.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Already registered for this project"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Failed to check registration: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register for project"})
		return
	}

	registration := models.Registration{
		UserID:           currentUser.ID,
		ProjectID:        projectID,
		HoursContributed: 0,
	}

	if err := h.DB.Create(&registration).Error; err != nil {
		log.Printf("Failed to create registration: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register for project"})
		return
	}

	BroadcastStatsRefresh()

	ctx.JSON(http.StatusCreated, gin.H{
		"message":      "Successfully registered for project",
		"registration": newRegistrationResponse(&registration),
	})
}
