package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/migration-tracker/internal/constants"
	"github.com/yukikurage/migration-tracker/internal/database"
	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/repository"
	"github.com/yukikurage/migration-tracker/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "secret"

var testToday = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

// apiSuite runs the full router against in-memory SQLite with cookie
// sessions. Suites embed it and reuse its request helpers.
type apiSuite struct {
	suite.Suite
	db       *gorm.DB
	router   *gin.Engine
	services Services
	cookies  map[string][]*http.Cookie
}

// SetupTest runs before each test
func (suite *apiSuite) SetupTest() {
	var err error

	// Create in-memory SQLite database
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), database.GormConfig(logger.Silent))
	suite.Require().NoError(err)

	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	// Run migrations
	err = suite.db.AutoMigrate(&models.User{}, &models.Project{}, &models.ProjectAssignee{})
	suite.Require().NoError(err)

	// Set the test DB as the default database
	database.SetDB(suite.db)

	userRepo := repository.NewUserRepository(suite.db)
	projectRepo := repository.NewProjectRepository(suite.db)
	clock := services.FixedClock(testToday)

	suite.services = Services{
		Auth:      services.NewAuthService(userRepo),
		Projects:  services.NewProjectService(projectRepo, userRepo, clock, nil),
		Dashboard: services.NewDashboardService(projectRepo, nil, clock, nil),
		Users:     services.NewUserService(userRepo, "admin", nil),
	}

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	suite.router = gin.New()
	suite.router.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	RegisterRoutes(suite.router, suite.services)

	suite.cookies = map[string][]*http.Cookie{}
}

// TearDownTest runs after each test
func (suite *apiSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *apiSuite) createUser(username string, level models.AccessLevel) *models.User {
	user, err := suite.services.Users.CreateUser(services.CreateUserInput{
		Username:    username,
		Name:        username,
		Password:    testPassword,
		AccessLevel: level,
	})
	suite.Require().NoError(err)
	return user
}

func (suite *apiSuite) createProject(input services.CreateProjectInput) *models.Project {
	project, err := suite.services.Projects.CreateProject(input)
	suite.Require().NoError(err)
	return project
}

func (suite *apiSuite) login(username string) []*http.Cookie {
	if cookies, ok := suite.cookies[username]; ok {
		return cookies
	}

	w := suite.request(http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": testPassword,
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	cookies := w.Result().Cookies()
	suite.cookies[username] = cookies
	return cookies
}

// request sends body as JSON. An empty username sends no session cookie.
func (suite *apiSuite) request(method, path string, body any, username string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if username != "" {
		for _, c := range suite.login(username) {
			req.AddCookie(c)
		}
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *apiSuite) decode(w *httptest.ResponseRecorder, target any) {
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), target), w.Body.String())
}

func strPtr(s string) *string { return &s }
