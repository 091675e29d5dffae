package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    dto.ErrorCode
		message string
	}{
		{"not found", apperrors.ErrUnknownCard, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "unknown_card"},
		{"bad request", apperrors.ErrAlreadyClockedIn, http.StatusBadRequest, dto.ErrorCodeBadRequest, "already_clocked_in"},
		{"validation", fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Validation failed"},
		{"conflict", apperrors.ErrCardAlreadyExists, http.StatusConflict, dto.ErrorCodeConflict, "card_already_registered"},
		{"unauthorized", apperrors.NewUnauthorizedError("Invalid credentials"), http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials"},
		{"external", fmt.Errorf("%w: GET /schools", apperrors.ErrExternalService), http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "External service unavailable"},
		{"internal", fmt.Errorf("connection reset"), http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
			assert.Equal(t, tt.message, body.Error.Message)
		})
	}
}

func TestRequestLogging_PropagatesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging(zerolog.Nop()))
	r.GET("/ping", func(c *gin.Context) {
		assert.NotNil(t, RequestLogger(c))
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)
}

func TestParseIDParam(t *testing.T) {
	r := gin.New()
	r.GET("/items/:id", func(c *gin.Context) {
		id, ok := ParseIDParam(c, "id")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":42}`, w.Body.String())

	for _, bad := range []string{"abc", "0", "-3"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+bad, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestBindJSON_ReportsFieldErrors(t *testing.T) {
	type payload struct {
		CardID string `json:"card_id" binding:"required"`
	}
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		var p payload
		if !BindJSON(c, &p) {
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Contains(t, w.Body.String(), "CardID is required")
}
