package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/migration-tracker/internal/constants"
	apierrors "github.com/yukikurage/migration-tracker/internal/errors"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/services"
)

// RequireProject loads the project named by the :id parameter, with its
// status refreshed for today, and stores it in the context
func RequireProject(projectService *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := projectService.GetProject(c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrProjectNotFound) {
				apierrors.NotFound(c, "Project not found")
			} else {
				apierrors.InternalError(c, "Failed to load project")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyProject, project)
		c.Next()
	}
}

// GetProject retrieves the project loaded by RequireProject
func GetProject(c *gin.Context) (*models.Project, bool) {
	value, exists := c.Get(constants.ContextKeyProject)
	if !exists {
		return nil, false
	}
	project, ok := value.(*models.Project)
	return project, ok
}
