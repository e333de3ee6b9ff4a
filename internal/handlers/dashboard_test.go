package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/migration-tracker/internal/analytics"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/services"
)

type DashboardHandlerTestSuite struct {
	apiSuite
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.apiSuite.SetupTest()
	suite.createUser("viewer", models.AccessLevelView)

	suite.createProject(services.CreateProjectInput{Name: "HR", StartDate: strPtr("2024-01-01"), DueDate: strPtr("2024-02-01"), EndDate: strPtr("2024-01-11"), EstimatedDays: intPtr(8), Difficulties: "encoding"})
	suite.createProject(services.CreateProjectInput{Name: "ERP", StartDate: strPtr("2024-06-01"), DueDate: strPtr("2024-07-01"), EstimatedDays: intPtr(25)})
	suite.createProject(services.CreateProjectInput{Name: "CRM", StartDate: strPtr("2024-06-10"), DueDate: strPtr("2024-07-10"), EstimatedDays: intPtr(25)})
}

func (suite *DashboardHandlerTestSuite) TestStatistics() {
	w := suite.request(http.MethodGet, "/api/dashboard/statistics", nil, "viewer")
	suite.Equal(http.StatusOK, w.Code)

	var stats analytics.Statistics
	suite.decode(w, &stats)
	suite.Equal(3, stats.Total)
	suite.Equal(1, stats.Completed)
	suite.Equal(2, stats.InProgress)
	suite.Equal(10.0, stats.AverageDays)
	suite.Equal(80.0, stats.AverageEfficiency)
	suite.Equal(33.3, stats.CompletionRate)
	suite.Equal([]analytics.DifficultyCount{{Text: "encoding", Count: 1}}, stats.TopDifficulties)
}

func (suite *DashboardHandlerTestSuite) TestTeamLoad() {
	w := suite.request(http.MethodGet, "/api/dashboard/team-load", nil, "viewer")
	suite.Equal(http.StatusOK, w.Code)

	var load analytics.TeamLoad
	suite.decode(w, &load)
	suite.Equal(analytics.LoadBusy, load.Status)
	suite.Equal(2, load.ActiveProjects)
	suite.Equal(3.0, load.TotalWeight)
}

func (suite *DashboardHandlerTestSuite) TestProgressAndTimeline() {
	w := suite.request(http.MethodGet, "/api/dashboard/progress", nil, "viewer")
	suite.Equal(http.StatusOK, w.Code)
	var progress struct {
		Projects []analytics.ProjectProgress `json:"projects"`
	}
	suite.decode(w, &progress)
	suite.Require().Len(progress.Projects, 3)
	suite.Equal("CRM", progress.Projects[0].Name)
	suite.Equal(100.0, progress.Projects[2].Progress)

	w = suite.request(http.MethodGet, "/api/dashboard/timeline", nil, "viewer")
	suite.Equal(http.StatusOK, w.Code)
	var timeline struct {
		Projects []analytics.TimelineEntry `json:"projects"`
	}
	suite.decode(w, &timeline)
	suite.Len(timeline.Projects, 3)
}

func (suite *DashboardHandlerTestSuite) TestSummaryUnavailable() {
	w := suite.request(http.MethodGet, "/api/dashboard/summary", nil, "viewer")
	suite.Equal(http.StatusServiceUnavailable, w.Code)
}

func (suite *DashboardHandlerTestSuite) TestRequiresAuth() {
	w := suite.request(http.MethodGet, "/api/dashboard/statistics", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
