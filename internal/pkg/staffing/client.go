package staffing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
)

// DefaultBaseURL is the staging host of the staffing system API.
const DefaultBaseURL = "https://staging.system.start-programming.net/api/v1"

// maxErrorBody caps how much of an error response is kept for logging.
const maxErrorBody = 4 << 10

// Client defines the staffing system operations used by the attendance backend.
type Client interface {
	Login(ctx context.Context, email, password string) (*Staff, error)
	GetSchools(ctx context.Context) ([]School, error)
	GetSchool(ctx context.Context, id int64) (*School, error)
	RegisterAttendance(ctx context.Context, req RegisterAttendanceRequest) (*Attendance, error)
	DeleteAttendance(ctx context.Context, id int64) error
}

// Config holds the connection settings for the staffing system.
type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

// APIError is a non-2xx response from the staffing system.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("staffing %s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// Unwrap lets callers match any staffing failure with apperrors.ErrExternalService.
func (e *APIError) Unwrap() error {
	return apperrors.ErrExternalService
}

// HTTPClient implements Client over the staffing REST API.
type HTTPClient struct {
	baseURL  string
	apiToken string
	http     *http.Client
	logger   zerolog.Logger
}

// NewHTTPClient creates a staffing client. Empty config values fall back to defaults.
func NewHTTPClient(cfg Config, logger zerolog.Logger) *HTTPClient {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:  baseURL,
		apiToken: cfg.APIToken,
		http:     &http.Client{Timeout: timeout},
		logger:   logger.With().Str("component", "staffing").Logger(),
	}
}

// Login authenticates a staff member with their staffing system credentials.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*Staff, error) {
	var staff Staff
	err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &staff)
	if err != nil {
		c.logger.Error().Err(err).Str("email", email).Msg("Failed to login")
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil, apperrors.NewUnauthorizedError("Invalid credentials")
		}
		return nil, err
	}
	return &staff, nil
}

// GetSchools lists the classrooms known to the staffing system.
func (c *HTTPClient) GetSchools(ctx context.Context) ([]School, error) {
	var env schoolsEnvelope
	if err := c.do(ctx, http.MethodGet, "/schools", nil, &env); err != nil {
		c.logger.Error().Err(err).Msg("Failed to get schools")
		return nil, err
	}
	if env.Schools == nil {
		return []School{}, nil
	}
	return env.Schools, nil
}

// GetSchool fetches a single classroom. The body may be the school itself or wrapped in {"school": ...}.
func (c *HTTPClient) GetSchool(ctx context.Context, id int64) (*School, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/schools/"+strconv.FormatInt(id, 10), nil, &raw); err != nil {
		c.logger.Error().Err(err).Int64("schoolID", id).Msg("Failed to get school")
		return nil, err
	}

	var env schoolEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.School != nil {
		return env.School, nil
	}
	var school School
	if err := json.Unmarshal(raw, &school); err != nil || school.ID == 0 {
		err = fmt.Errorf("%w: school %d response has no school", apperrors.ErrExternalService, id)
		c.logger.Error().Err(err).Msg("Failed to get school")
		return nil, err
	}
	return &school, nil
}

// RegisterAttendance records a finished work day in the staffing system.
func (c *HTTPClient) RegisterAttendance(ctx context.Context, req RegisterAttendanceRequest) (*Attendance, error) {
	if req.LessonIDs == nil {
		req.LessonIDs = []int64{}
	}
	var env attendanceEnvelope
	if err := c.do(ctx, http.MethodPost, "/attendances", req, &env); err != nil {
		c.logger.Error().Err(err).
			Int64("staffID", req.Attendance.StaffID).
			Str("workDay", req.Attendance.WorkDay).
			Msg("Failed to register attendance")
		return nil, err
	}
	if env.Attendance == nil {
		err := fmt.Errorf("%w: register attendance response has no attendance", apperrors.ErrExternalService)
		c.logger.Error().Err(err).Msg("Failed to register attendance")
		return nil, err
	}
	return env.Attendance, nil
}

// DeleteAttendance removes a previously registered attendance.
func (c *HTTPClient) DeleteAttendance(ctx context.Context, id int64) error {
	path := "/attendances/" + strconv.FormatInt(id, 10)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		c.logger.Error().Err(err).Int64("externalAttendanceID", id).Msg("Failed to delete attendance")
		return err
	}
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", method, path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", apperrors.ErrExternalService, method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("Staffing request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       string(raw),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s response: %v", apperrors.ErrExternalService, method, path, err)
	}
	return nil
}
