package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/shreyash398/Green-World/internal/handlers"
	"github.com/shreyash398/Green-World/internal/middleware"
	"github.com/shreyash398/Green-World/internal/models"
	"github.com/shreyash398/Green-World/internal/types"
)

func NewRouter(h *handlers.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	requireAuth := middleware.RequireAuth(h.DB, h.Tokens)
	optionalAuth := middleware.OptionalAuth(h.DB, h.Tokens)

	api := r.Group("/api")
	{
		api.GET("/ping", h.Ping)
		api.GET("/ws/stats", requireAuth, h.StatsFeed)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
			auth.POST("/logout", h.Logout)
			auth.GET("/me", requireAuth, h.Me)
			auth.PUT("/profile", requireAuth, h.UpdateProfile)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", optionalAuth, h.ListProjects)
			projects.GET("/:id", optionalAuth, h.GetProject)
			projects.POST("", requireAuth, middleware.RequireRole(models.RoleNgo, models.RoleAdmin), h.CreateProject)
			projects.PUT("/:id", requireAuth, middleware.RequireRole(models.RoleNgo, models.RoleAdmin), h.UpdateProject)
			projects.PUT("/:id/milestones/:mid", requireAuth, middleware.RequireRole(models.RoleNgo, models.RoleAdmin), h.ToggleMilestone)
			projects.POST("/:id/register", requireAuth, h.RegisterForProject)
		}

		volunteers := api.Group("/volunteers", requireAuth)
		{
			volunteers.GET("/my-projects", h.MyProjects)
			volunteers.GET("/stats", h.VolunteerStats)
			volunteers.GET("/certificates", h.VolunteerCertificates)
			volunteers.PUT("/log-hours", h.LogHours)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/public", h.PublicStats)
			// Platform stats carry no role gate; see DESIGN.md for why this
			// stays open.
			stats.GET("/platform", h.PlatformStats)
			stats.GET("/ngo", requireAuth, middleware.RequireRole(models.RoleNgo), h.NgoStats)
			stats.GET("/corporate", requireAuth, middleware.RequireRole(models.RoleCorporate), h.CorporateStats)
		}

		users := api.Group("/users", requireAuth, middleware.RequireRole(models.RoleAdmin))
		{
			users.GET("", h.ListUsers)
			users.DELETE("/:id", h.DeleteUser)
		}

		ngo := api.Group("/ngo", requireAuth, middleware.RequireRole(models.RoleNgo))
		{
			ngo.GET("/volunteers", h.NgoVolunteers)
			ngo.GET("/funding", h.NgoFunding)
		}
	}

	return r
}
