package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shreyash398/Green-World/internal/models"
	"github.com/shreyash398/Green-World/internal/types"
	"github.com/shreyash398/Green-World/internal/utils"
)

func (h *Handler) ListUsers(ctx *gin.Context) {
	var users []models.User

	if err := h.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		log.Printf("Failed to fetch users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	responses := make([]types.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, types.NewUserResponse(&users[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"users": responses})
}

func (h *Handler) DeleteUser(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	userID, err := utils.ParseIDParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if userID == currentUser.ID {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cannot delete your own admin account"})
		return
	}

	// Hard delete so the declared foreign key cascades fire and the user's
	// registrations and certificates go with the account.
	if err := h.DB.Unscoped().Delete(&models.User{}, userID).Error; err != nil {
		log.Printf("Failed to delete user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
