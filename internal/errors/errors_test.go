package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type level string

func (l level) String() string { return string(l) }

func TestHelpers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		respond  func(c *gin.Context)
		wantCode int
		wantBody APIError
	}{
		{"not found default", func(c *gin.Context) { NotFound(c, "") }, http.StatusNotFound, APIError{Code: ErrCodeNotFound, Message: "Resource not found"}},
		{"invalid date", func(c *gin.Context) { InvalidDate(c, "") }, http.StatusBadRequest, APIError{Code: ErrCodeInvalidDate, Message: "Dates must use the YYYY-MM-DD format"}},
		{"conflict", func(c *gin.Context) { Conflict(c, "taken") }, http.StatusConflict, APIError{Code: ErrCodeConflict, Message: "taken"}},
		{"with code", func(c *gin.Context) { WithCode(c, http.StatusForbidden, ErrCodeAccountInactive, "inactive") }, http.StatusForbidden, APIError{Code: ErrCodeAccountInactive, Message: "inactive"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			tt.respond(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestInsufficientAccess(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	InsufficientAccess(c, level("editor"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrCodeInsufficientPermissions, body["code"])
	assert.Equal(t, "Requires editor access", body["message"])
	assert.Equal(t, map[string]any{"required_level": "editor"}, body["details"])
}
