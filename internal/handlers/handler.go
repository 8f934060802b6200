package handlers

import (
	"gorm.io/gorm"

	"github.com/shreyash398/Green-World/internal/auth"
)

// Handler bundles the injected dependencies every endpoint needs.
type Handler struct {
	DB     *gorm.DB
	Tokens *auth.TokenService
}

func New(db *gorm.DB, tokens *auth.TokenService) *Handler {
	return &Handler{DB: db, Tokens: tokens}
}
