package repository

import (
	"errors"

	"github.com/yukikurage/migration-tracker/internal/models"
)

var (
	// ErrDuplicateProjectID is returned when a project id is already taken.
	ErrDuplicateProjectID = errors.New("project repository: duplicate project id")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("user repository: duplicate username")
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// List returns every project, most recently created first, with assignees
	List() ([]models.Project, error)

	// FindByID finds a project by ID with its assignees
	FindByID(id string) (*models.Project, error)

	// Create inserts a new project and its assignees
	Create(project *models.Project) error

	// Update saves a project and replaces its assignees
	Update(project *models.Project) error

	// Delete removes a project and its assignees permanently
	Delete(id string) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// List returns users ordered by username
	List() ([]models.User, error)

	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByUsernames returns the users whose username is in the list
	FindByUsernames(usernames []string) ([]models.User, error)

	// Update saves a user
	Update(user *models.User) error

	// Delete removes a user
	Delete(id uint64) error
}
