package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Ping(ctx *gin.Context) {
	message := os.Getenv("PING_MESSAGE")
	if message == "" {
		message = "ping"
	}

	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
