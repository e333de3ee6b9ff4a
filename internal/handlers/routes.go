package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/migration-tracker/internal/middleware"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/services"
)

// Services bundles what the API routes depend on.
type Services struct {
	Auth      *services.AuthService
	Projects  *services.ProjectService
	Dashboard *services.DashboardService
	Users     *services.UserService
}

// RegisterRoutes mounts the JSON API under /api.
func RegisterRoutes(r gin.IRouter, svc Services) {
	authHandler := NewAuthHandler(svc.Auth)
	projectHandler := NewProjectHandler(svc.Projects)
	dashboardHandler := NewDashboardHandler(svc.Dashboard)
	userHandler := NewUserHandler(svc.Users)

	requireAuth := middleware.RequireAuth(svc.Auth)
	requireEdit := middleware.RequireAccessLevel(models.AccessLevelEdit)
	requireAdmin := middleware.RequireAccessLevel(models.AccessLevelAdmin)
	loadProject := middleware.RequireProject(svc.Projects)

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		api.GET("/difficulty", requireAuth, projectHandler.ClassifyDifficulty)

		// Project routes (protected)
		projects := api.Group("/projects")
		projects.Use(requireAuth)
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", requireEdit, projectHandler.CreateProject)
			projects.GET("/next-id", requireEdit, projectHandler.NextID)
			projects.GET("/:id", loadProject, projectHandler.GetProject)
			projects.GET("/:id/performance", projectHandler.GetPerformance)
			projects.PATCH("/:id", requireEdit, loadProject, projectHandler.UpdateProject)
			projects.DELETE("/:id", requireAdmin, projectHandler.DeleteProject)
		}

		// Dashboard routes (protected)
		dashboard := api.Group("/dashboard")
		dashboard.Use(requireAuth)
		{
			dashboard.GET("/statistics", dashboardHandler.Statistics)
			dashboard.GET("/team-load", dashboardHandler.TeamLoad)
			dashboard.GET("/progress", dashboardHandler.Progress)
			dashboard.GET("/timeline", dashboardHandler.Timeline)
			dashboard.GET("/summary", dashboardHandler.Summary)
		}

		// User routes (admin, except the assignable list)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/assignable", requireEdit, userHandler.ListAssignable)
			users.GET("", requireAdmin, userHandler.ListUsers)
			users.POST("", requireAdmin, userHandler.CreateUser)
			users.PATCH("/:id", requireAdmin, userHandler.UpdateUser)
			users.DELETE("/:id", requireAdmin, userHandler.DeleteUser)
		}
	}
}
