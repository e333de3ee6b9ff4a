package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/migration-tracker/internal/analytics"
	"github.com/yukikurage/migration-tracker/internal/metrics"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/repository"
	"go.uber.org/zap"
)

var (
	ErrAIServiceNotConfigured = errors.New("AI service is not configured")
)

// DashboardService computes the dashboard aggregates. Every call reads the
// whole collection and derives its values against a single day.
type DashboardService struct {
	projectRepo repository.ProjectRepository
	aiService   *AIService
	clock       Clock
	logger      *zap.Logger
}

// NewDashboardService creates a new DashboardService. aiService may be nil.
func NewDashboardService(projectRepo repository.ProjectRepository, aiService *AIService, clock Clock, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		projectRepo: projectRepo,
		aiService:   aiService,
		clock:       clock,
		logger:      logger,
	}
}

func (s *DashboardService) snapshot() ([]models.Project, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Statistics returns the portfolio statistics.
func (s *DashboardService) Statistics() (analytics.Statistics, error) {
	projects, err := s.snapshot()
	if err != nil {
		return analytics.Statistics{}, err
	}
	return analytics.ComputeStatistics(projects, s.clock.Today()), nil
}

// TeamLoad returns the team load classification and publishes its weight.
func (s *DashboardService) TeamLoad() (analytics.TeamLoad, error) {
	projects, err := s.snapshot()
	if err != nil {
		return analytics.TeamLoad{}, err
	}

	load := analytics.ComputeTeamLoad(projects, s.clock.Today())
	metrics.SetTeamLoadWeight(load.TotalWeight)
	return load, nil
}

// Progress returns schedule progress for the most recent projects.
func (s *DashboardService) Progress() ([]analytics.ProjectProgress, error) {
	projects, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return analytics.ComputeProgress(projects, s.clock.Today()), nil
}

// Timeline returns the scheduled spans of the most recent projects.
func (s *DashboardService) Timeline() ([]analytics.TimelineEntry, error) {
	projects, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return analytics.BuildTimeline(projects, s.clock.Today()), nil
}

// Summary asks the AI service for a short narrative of the current
// statistics and team load.
func (s *DashboardService) Summary(ctx context.Context) (string, error) {
	if s.aiService == nil {
		return "", ErrAIServiceNotConfigured
	}

	projects, err := s.snapshot()
	if err != nil {
		return "", err
	}

	today := s.clock.Today()
	stats := analytics.ComputeStatistics(projects, today)
	load := analytics.ComputeTeamLoad(projects, today)

	summary, err := s.aiService.SummarizeDashboard(ctx, today, stats, load)
	if err != nil {
		s.logger.Warn("dashboard summary failed", zap.Error(err))
		return "", fmt.Errorf("failed to generate summary: %w", err)
	}
	return summary, nil
}
