package repository

import (
	"errors"
	"fmt"

	"github.com/yukikurage/migration-tracker/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// List returns every project, most recently created first
func (r *GormProjectRepository) List() ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.Preload("Assignees").
		Order("created_at DESC").
		Order("id DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Preload("Assignees").
		Where("id = ?", id).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Create inserts a new project and its assignees in a transaction
func (r *GormProjectRepository) Create(project *models.Project) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Assignees").Create(project).Error; err != nil {
			return err
		}
		return createAssignees(tx, project)
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", ErrDuplicateProjectID, project.ID)
	}
	return err
}

// Update saves all project columns and replaces the assignee set
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Assignees").Save(project).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectAssignee{}).Error; err != nil {
			return err
		}
		return createAssignees(tx, project)
	})
}

// Delete removes a project and its assignees
func (r *GormProjectRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectAssignee{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Project{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func createAssignees(tx *gorm.DB, project *models.Project) error {
	if len(project.Assignees) == 0 {
		return nil
	}
	for i := range project.Assignees {
		project.Assignees[i].ProjectID = project.ID
	}
	return tx.Create(&project.Assignees).Error
}
