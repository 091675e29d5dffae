package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
	"github.com/stapro/nfc-attendance/internal/pkg/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceService struct {
	status   *dto.StatusResponse
	action   *dto.AttendanceActionResponse
	err      error
	lastPage int
	lastSize int
	cancelID int64
}

func (s *stubAttendanceService) CheckStatus(context.Context, dto.CheckStatusRequest) (*dto.StatusResponse, error) {
	return s.status, s.err
}

func (s *stubAttendanceService) ClockIn(context.Context, dto.ClockInRequest) (*dto.AttendanceActionResponse, error) {
	return s.action, s.err
}

func (s *stubAttendanceService) ClockOut(context.Context, dto.ClockOutRequest) (*dto.AttendanceActionResponse, error) {
	return s.action, s.err
}

func (s *stubAttendanceService) Cancel(_ context.Context, id int64) (*dto.AttendanceActionResponse, error) {
	s.cancelID = id
	return s.action, s.err
}

func (s *stubAttendanceService) ListAttendances(_ context.Context, _ int64, page, size int) ([]*models.Attendance, dto.PaginationInfo, error) {
	s.lastPage, s.lastSize = page, size
	return []*models.Attendance{{ID: 1}}, dto.PaginationInfo{CurrentPage: page, PageSize: size, TotalPages: 1, TotalItems: 1}, s.err
}

type stubCardService struct {
	card *models.Card
	err  error
}

func (s *stubCardService) ListCards(context.Context, int64) ([]*models.Card, error) {
	return []*models.Card{s.card}, s.err
}

func (s *stubCardService) CreateCard(_ context.Context, employeeID int64, req dto.CreateCardRequest) (*models.Card, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Card{ID: 10, CardID: req.CardID, EmployeeID: employeeID, IsActive: true}, nil
}

func (s *stubCardService) UpdateCard(context.Context, int64, int64, dto.UpdateCardRequest) (*models.Card, error) {
	return s.card, s.err
}

func (s *stubCardService) DeleteCard(context.Context, int64, int64) error {
	return s.err
}

func (s *stubCardService) RegisterCardWithAuth(context.Context, dto.RegisterCardWithAuthRequest) (*dto.RegisterCardResponse, error) {
	return nil, s.err
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, attendance *stubAttendanceService, cards *stubCardService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.RegisterWithGin())

	ac := NewAttendanceController(attendance)
	cc := NewCardController(cards)

	r := gin.New()
	r.POST("/attendance/status", ac.CheckStatus)
	r.POST("/attendance/clock-in", ac.ClockIn)
	r.POST("/attendance/clock-out", ac.ClockOut)
	r.DELETE("/attendance/:id", ac.Cancel)
	r.GET("/employees/:employeeId/attendances", ac.ListEmployeeAttendances)
	r.POST("/employees/:employeeId/cards", cc.CreateCard)
	r.DELETE("/employees/:employeeId/cards/:cardId", cc.DeleteCard)
	return r
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestCheckStatus(t *testing.T) {
	tap := gin.H{"card_id": "12345678", "terminal_id": "iPad-01", "client_timestamp": "2023-10-27T09:00:00Z"}

	t.Run("returns state", func(t *testing.T) {
		svc := &stubAttendanceService{status: &dto.StatusResponse{
			Employee: &models.Employee{ID: 1, Name: "Yamada Taro"},
			State:    models.StateNotStarted,
		}}
		w := do(newTestRouter(t, svc, &stubCardService{}), http.MethodPost, "/attendance/status", tap)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"state":"not_started"`)
	})

	t.Run("unknown card", func(t *testing.T) {
		svc := &stubAttendanceService{err: apperrors.ErrUnknownCard}
		w := do(newTestRouter(t, svc, &stubCardService{}), http.MethodPost, "/attendance/status", tap)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "unknown_card", decodeError(t, w).Message)
	})

	t.Run("inactive card", func(t *testing.T) {
		svc := &stubAttendanceService{err: apperrors.ErrCardInactive}
		w := do(newTestRouter(t, svc, &stubCardService{}), http.MethodPost, "/attendance/status", tap)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "card_inactive", decodeError(t, w).Message)
	})

	t.Run("missing card id", func(t *testing.T) {
		w := do(newTestRouter(t, &stubAttendanceService{}, &stubCardService{}), http.MethodPost, "/attendance/status",
			gin.H{"terminal_id": "iPad-01", "client_timestamp": "2023-10-27T09:00:00Z"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Code)
	})
}

func TestClockIn(t *testing.T) {
	body := gin.H{"employee_id": 1, "terminal_id": "iPad-01", "school_id": 3, "client_timestamp": "2023-10-27T09:00:00Z"}

	svc := &stubAttendanceService{action: &dto.AttendanceActionResponse{Type: dto.ActionClockIn, Attendance: &models.Attendance{ID: 5}}}
	w := do(newTestRouter(t, svc, &stubCardService{}), http.MethodPost, "/attendance/clock-in", body)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"type":"clock_in"`)

	svc = &stubAttendanceService{err: apperrors.ErrAlreadyClockedIn}
	w = do(newTestRouter(t, svc, &stubCardService{}), http.MethodPost, "/attendance/clock-in", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "already_clocked_in", decodeError(t, w).Message)
}

func TestClockOut_NegativeCommuteCost(t *testing.T) {
	svc := &stubAttendanceService{action: &dto.AttendanceActionResponse{Type: dto.ActionClockOut}}
	r := newTestRouter(t, svc, &stubCardService{})
	body := func(cost int) gin.H {
		return gin.H{
			"attendance_id":    7,
			"commute_info":     gin.H{"name": "Train", "cost": cost},
			"client_timestamp": "2023-10-27T18:00:00Z",
		}
	}

	w := do(r, http.MethodPost, "/attendance/clock-out", body(-500))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Code)

	w = do(r, http.MethodPost, "/attendance/clock-out", body(500))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancel(t *testing.T) {
	svc := &stubAttendanceService{action: &dto.AttendanceActionResponse{Type: "cancel_clock_in"}}
	r := newTestRouter(t, svc, &stubCardService{})

	w := do(r, http.MethodDelete, "/attendance/42", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), svc.cancelID)

	w = do(r, http.MethodDelete, "/attendance/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	svc.err = apperrors.ErrAttendanceNotFound
	w = do(r, http.MethodDelete, "/attendance/43", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEmployeeAttendances(t *testing.T) {
	svc := &stubAttendanceService{}
	w := do(newTestRouter(t, svc, &stubCardService{}), http.MethodGet, "/employees/1/attendances?page=2&size=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, svc.lastPage)
	assert.Equal(t, 5, svc.lastSize)
	assert.Contains(t, w.Body.String(), `"pagination"`)
}

func TestCreateCard(t *testing.T) {
	r := newTestRouter(t, &stubAttendanceService{}, &stubCardService{})

	w := do(r, http.MethodPost, "/employees/2/cards", gin.H{"cardId": "CARD0001"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"employee_id":2`)

	w = do(r, http.MethodPost, "/employees/2/cards", gin.H{"cardId": " CARD0001"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, decodeError(t, w).Code)

	r = newTestRouter(t, &stubAttendanceService{}, &stubCardService{err: apperrors.ErrCardAlreadyExists})
	w = do(r, http.MethodPost, "/employees/2/cards", gin.H{"cardId": "12345678"})
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "card_already_registered", decodeError(t, w).Message)
}

func TestDeleteCard(t *testing.T) {
	r := newTestRouter(t, &stubAttendanceService{}, &stubCardService{})
	w := do(r, http.MethodDelete, "/employees/1/cards/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Card deleted successfully")

	r = newTestRouter(t, &stubAttendanceService{}, &stubCardService{err: apperrors.ErrCardNotFound})
	w = do(r, http.MethodDelete, "/employees/1/cards/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/health", NewHealthController(stubPinger{}).Health)
	w := do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	r = gin.New()
	r.GET("/health", NewHealthController(stubPinger{err: errors.New("refused")}).Health)
	w = do(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, dto.ErrorCodeDatabaseError, decodeError(t, w).Code)
}
