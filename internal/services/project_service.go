package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/migration-tracker/internal/analytics"
	"github.com/yukikurage/migration-tracker/internal/constants"
	"github.com/yukikurage/migration-tracker/internal/datemath"
	"github.com/yukikurage/migration-tracker/internal/metrics"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/repository"
	"github.com/yukikurage/migration-tracker/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrNameRequired         = errors.New("name is required")
	ErrNameTooLong          = errors.New("name is too long")
	ErrInvalidEstimatedDays = errors.New("estimated days out of range")
	ErrInvalidDate          = errors.New("invalid date")
	ErrInvalidAssignee      = errors.New("one or more assignees do not exist or cannot be assigned")
	ErrIDAllocationFailed   = errors.New("could not allocate a free project id")
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	clock       Clock
	logger      *zap.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository, clock Clock, logger *zap.Logger) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		clock:       clock,
		logger:      logger,
	}
}

// ListProjectsInput represents filters for listing projects
type ListProjectsInput struct {
	Filter     analytics.ProjectFilter
	Pagination utils.PaginationParams
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name            string
	StartDate       *string
	DueDate         *string
	EndDate         *string
	EstimatedDays   *int
	MigrationMethod string
	BackupReceived  bool
	Difficulties    string
	Notes           string
	Assignees       []string
}

// UpdateProjectInput represents a partial update. Nil fields are left
// unchanged; the Clear flags remove a date.
type UpdateProjectInput struct {
	Name            *string
	StartDate       *string
	DueDate         *string
	EndDate         *string
	ClearStartDate  bool
	ClearDueDate    bool
	ClearEndDate    bool
	EstimatedDays   *int
	MigrationMethod *string
	BackupReceived  *bool
	Difficulties    *string
	Notes           *string
	Assignees       *[]string
}

// ListProjects returns the filtered, recency-first page of projects and the
// number of projects matching the filter.
func (s *ProjectService) ListProjects(input ListProjectsInput) ([]models.Project, int64, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	today := s.clock.Today()
	filtered := analytics.FilterProjects(projects, input.Filter, today)
	page := utils.PageOf(filtered, input.Pagination)
	for i := range page {
		analytics.RecomputeStatus(&page[i], today)
	}

	return page, int64(len(filtered)), nil
}

// AllProjects returns every project, recency-first.
func (s *ProjectService) AllProjects() ([]models.Project, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project with its status refreshed for today
func (s *ProjectService) GetProject(id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	analytics.RecomputeStatus(project, s.clock.Today())
	return project, nil
}

// NextProjectID previews the id the next created project would receive.
func (s *ProjectService) NextProjectID() (string, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return "", fmt.Errorf("failed to list projects: %w", err)
	}
	return analytics.NextProjectID(projects, s.clock.Today().Year()), nil
}

// CreateProject validates the input, allocates an id and persists the
// project with its computed status. A concurrent insert of the same id is
// retried with a freshly allocated one.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	estimatedDays := constants.DefaultEstimatedDays
	if input.EstimatedDays != nil {
		estimatedDays = *input.EstimatedDays
	}
	if err := validateEstimatedDays(estimatedDays); err != nil {
		return nil, err
	}

	method := strings.TrimSpace(input.MigrationMethod)
	if method == "" {
		method = models.MigrationMethodManual
	}

	project := &models.Project{
		Name:            name,
		EstimatedDays:   estimatedDays,
		MigrationMethod: method,
		BackupReceived:  input.BackupReceived,
		Difficulties:    input.Difficulties,
		Notes:           input.Notes,
	}

	var err error
	if project.StartDate, err = normalizeDate("start_date", input.StartDate); err != nil {
		return nil, err
	}
	if project.DueDate, err = normalizeDate("due_date", input.DueDate); err != nil {
		return nil, err
	}
	if project.EndDate, err = normalizeDate("end_date", input.EndDate); err != nil {
		return nil, err
	}

	if project.Assignees, err = s.resolveAssignees(input.Assignees); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		projects, err := s.projectRepo.List()
		if err != nil {
			return nil, fmt.Errorf("failed to list projects: %w", err)
		}

		today := s.clock.Today()
		project.ID = analytics.NextProjectID(projects, today.Year())
		analytics.RecomputeStatus(project, today)

		err = s.projectRepo.Create(project)
		if err == nil {
			break
		}
		if !errors.Is(err, repository.ErrDuplicateProjectID) {
			return nil, fmt.Errorf("failed to create project: %w", err)
		}
		if attempt >= constants.MaxIDAllocationAttempts {
			s.logger.Error("project id allocation exhausted", zap.String("id", project.ID), zap.Int("attempts", attempt))
			return nil, ErrIDAllocationFailed
		}

		metrics.IncrementIDAllocationRetry()
		s.logger.Warn("project id taken, retrying", zap.String("id", project.ID), zap.Int("attempt", attempt))
	}

	metrics.IncrementProjectWrite("create")
	s.logger.Info("project created", zap.String("id", project.ID), zap.String("status", string(project.Status)))

	return s.GetProject(project.ID)
}

// UpdateProject merges the input into the stored project, recomputes its
// status and persists it.
func (s *ProjectService) UpdateProject(id string, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if err := validateName(name); err != nil {
			return nil, err
		}
		project.Name = name
	}
	if input.EstimatedDays != nil {
		if err := validateEstimatedDays(*input.EstimatedDays); err != nil {
			return nil, err
		}
		project.EstimatedDays = *input.EstimatedDays
	}
	if input.MigrationMethod != nil {
		project.MigrationMethod = strings.TrimSpace(*input.MigrationMethod)
	}
	if input.BackupReceived != nil {
		project.BackupReceived = *input.BackupReceived
	}
	if input.Difficulties != nil {
		project.Difficulties = *input.Difficulties
	}
	if input.Notes != nil {
		project.Notes = *input.Notes
	}

	if err := mergeDate(&project.StartDate, "start_date", input.StartDate, input.ClearStartDate); err != nil {
		return nil, err
	}
	if err := mergeDate(&project.DueDate, "due_date", input.DueDate, input.ClearDueDate); err != nil {
		return nil, err
	}
	if err := mergeDate(&project.EndDate, "end_date", input.EndDate, input.ClearEndDate); err != nil {
		return nil, err
	}

	if input.Assignees != nil {
		assignees, err := s.resolveAssignees(*input.Assignees)
		if err != nil {
			return nil, err
		}
		project.Assignees = assignees
	}

	previous := project.Status
	analytics.RecomputeStatus(project, s.clock.Today())

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	metrics.IncrementProjectWrite("update")
	s.logger.Info("project updated",
		zap.String("id", project.ID),
		zap.String("previous_status", string(previous)),
		zap.String("status", string(project.Status)),
	)

	return s.GetProject(project.ID)
}

// DeleteProject removes a project and its assignments.
func (s *ProjectService) DeleteProject(id string) error {
	if err := s.projectRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}

	metrics.IncrementProjectWrite("delete")
	s.logger.Info("project deleted", zap.String("id", id))
	return nil
}

// ProjectPerformance compares a project's planned and actual durations.
func (s *ProjectService) ProjectPerformance(id string) (*models.Project, analytics.Performance, error) {
	project, err := s.GetProject(id)
	if err != nil {
		return nil, analytics.Performance{}, err
	}
	return project, analytics.ComputePerformance(*project, s.clock.Today()), nil
}

func (s *ProjectService) resolveAssignees(usernames []string) ([]models.ProjectAssignee, error) {
	seen := make(map[string]bool, len(usernames))
	unique := make([]string, 0, len(usernames))
	for _, username := range usernames {
		username = strings.TrimSpace(username)
		if username == "" || seen[username] {
			continue
		}
		seen[username] = true
		unique = append(unique, username)
	}
	if len(unique) == 0 {
		return nil, nil
	}

	users, err := s.userRepo.FindByUsernames(unique)
	if err != nil {
		return nil, fmt.Errorf("failed to find assignees: %w", err)
	}

	assignable := make(map[string]bool, len(users))
	for _, user := range users {
		if user.Active && user.CanAssign() {
			assignable[user.Username] = true
		}
	}

	assignees := make([]models.ProjectAssignee, 0, len(unique))
	for _, username := range unique {
		if !assignable[username] {
			return nil, fmt.Errorf("%w: %s", ErrInvalidAssignee, username)
		}
		assignees = append(assignees, models.ProjectAssignee{Username: username})
	}
	return assignees, nil
}

func validateName(name string) error {
	if name == "" {
		return ErrNameRequired
	}
	if len([]rune(name)) > constants.MaxProjectNameLength {
		return ErrNameTooLong
	}
	return nil
}

func validateEstimatedDays(days int) error {
	if days < constants.MinEstimatedDays || days > constants.MaxEstimatedDays {
		return fmt.Errorf("%w: must be between %d and %d", ErrInvalidEstimatedDays, constants.MinEstimatedDays, constants.MaxEstimatedDays)
	}
	return nil
}

// normalizeDate validates an incoming date. Nil or blank means absent.
func normalizeDate(field string, value *string) (*string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	t, err := datemath.Parse(*value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDate, field, err)
	}
	formatted := datemath.Format(t)
	return &formatted, nil
}

func mergeDate(target **string, field string, value *string, remove bool) error {
	if remove {
		*target = nil
		return nil
	}
	if value == nil {
		return nil
	}
	normalized, err := normalizeDate(field, value)
	if err != nil {
		return err
	}
	*target = normalized
	return nil
}
