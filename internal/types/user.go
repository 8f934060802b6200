package types

import "github.com/shreyash398/Green-World/internal/models"

type UserResponse struct {
	ID               uint        `json:"id"`
	Email            string      `json:"email"`
	Name             string      `json:"name"`
	Role             models.Role `json:"role"`
	OrganizationName string      `json:"organizationName"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Role:             user.Role,
		OrganizationName: user.OrganizationName,
	}
}
