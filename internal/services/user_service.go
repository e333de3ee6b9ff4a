package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/migration-tracker/internal/constants"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidUsername      = errors.New("invalid username")
	ErrDisplayNameRequired  = errors.New("name is required")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrInvalidAccessLevel   = errors.New("access level must be 1, 2 or 3")
	ErrProtectedUser        = errors.New("the protected administrator cannot be changed this way")
	ErrCannotDeleteSelf     = errors.New("users cannot delete themselves")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// UserService handles user administration.
type UserService struct {
	userRepo       repository.UserRepository
	protectedAdmin string
	logger         *zap.Logger
}

// NewUserService creates a new UserService. protectedAdmin names the
// account that can never be deleted, renamed, demoted or deactivated; it
// may be empty.
func NewUserService(userRepo repository.UserRepository, protectedAdmin string, logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		userRepo:       userRepo,
		protectedAdmin: protectedAdmin,
		logger:         logger,
	}
}

// CreateUserInput represents the information needed to create a user.
type CreateUserInput struct {
	Username    string
	Name        string
	Password    string
	AccessLevel models.AccessLevel
}

// UpdateUserInput represents a partial user update. Username is immutable.
type UpdateUserInput struct {
	Name        *string
	AccessLevel *models.AccessLevel
	Active      *bool
	Password    *string
}

// ListUsers returns every user ordered by username.
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// AssignableUsers returns the active users that may be assigned to projects.
func (s *UserService) AssignableUsers() ([]models.User, error) {
	users, err := s.ListUsers()
	if err != nil {
		return nil, err
	}

	assignable := make([]models.User, 0, len(users))
	for _, user := range users {
		if user.Active && user.CanAssign() {
			assignable = append(assignable, user)
		}
	}
	return assignable, nil
}

// CreateUser creates an active user.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if n := len(username); n < constants.MinUsernameLength || n > constants.MaxUsernameLength || strings.ContainsAny(username, " \t") {
		return nil, ErrInvalidUsername
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = username
	}
	if !input.AccessLevel.Valid() {
		return nil, ErrInvalidAccessLevel
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		AccessLevel:  input.AccessLevel,
		Active:       true,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", zap.String("username", user.Username), zap.Stringer("access_level", user.AccessLevel))
	return user, nil
}

// UpdateUser applies a partial update to a user.
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.findUser(id)
	if err != nil {
		return nil, err
	}

	protected := s.isProtected(user)

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrDisplayNameRequired
		}
		if protected && name != user.Name {
			return nil, ErrProtectedUser
		}
		user.Name = name
	}
	if input.AccessLevel != nil {
		if !input.AccessLevel.Valid() {
			return nil, ErrInvalidAccessLevel
		}
		if protected && *input.AccessLevel != models.AccessLevelAdmin {
			return nil, ErrProtectedUser
		}
		user.AccessLevel = *input.AccessLevel
	}
	if input.Active != nil {
		if protected && !*input.Active {
			return nil, ErrProtectedUser
		}
		user.Active = *input.Active
	}
	if input.Password != nil {
		hash, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("user updated", zap.String("username", user.Username))
	return user, nil
}

// DeleteUser removes a user. actorID is the administrator performing the
// deletion.
func (s *UserService) DeleteUser(id, actorID uint64) error {
	if id == actorID {
		return ErrCannotDeleteSelf
	}

	user, err := s.findUser(id)
	if err != nil {
		return err
	}
	if s.isProtected(user) {
		return ErrProtectedUser
	}

	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", zap.String("username", user.Username))
	return nil
}

func (s *UserService) findUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *UserService) isProtected(user *models.User) bool {
	return s.protectedAdmin != "" && user.Username == s.protectedAdmin
}

func hashPassword(password string) (string, error) {
	if len(password) < constants.MinPasswordLength {
		return "", ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrFailedToHashPassword
	}
	return string(hash), nil
}
