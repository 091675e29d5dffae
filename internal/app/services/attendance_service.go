package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/app/repositories"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
	"github.com/stapro/nfc-attendance/internal/pkg/helpers"
	"github.com/stapro/nfc-attendance/internal/pkg/staffing"
	"golang.org/x/sync/errgroup"
)

// AttendanceService defines the attendance state transitions driven by card taps
type AttendanceService interface {
	CheckStatus(ctx context.Context, req dto.CheckStatusRequest) (*dto.StatusResponse, error)
	ClockIn(ctx context.Context, req dto.ClockInRequest) (*dto.AttendanceActionResponse, error)
	ClockOut(ctx context.Context, req dto.ClockOutRequest) (*dto.AttendanceActionResponse, error)
	Cancel(ctx context.Context, id int64) (*dto.AttendanceActionResponse, error)
	ListAttendances(ctx context.Context, employeeID int64, page, size int) ([]*models.Attendance, dto.PaginationInfo, error)
}

type attendanceServiceImpl struct {
	attendances attendanceStore
	cards       cardStore
	employees   employeeStore
	templates   commuteTemplateStore
	staffing    staffing.Client
	loc         *time.Location
	now         func() time.Time
	logger      zerolog.Logger
}

// NewAttendanceService creates a new attendance service. Work days are computed in loc.
func NewAttendanceService(
	attendances attendanceStore,
	cards cardStore,
	employees employeeStore,
	templates commuteTemplateStore,
	staff staffing.Client,
	loc *time.Location,
	logger zerolog.Logger,
) AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &attendanceServiceImpl{
		attendances: attendances,
		cards:       cards,
		employees:   employees,
		templates:   templates,
		staffing:    staff,
		loc:         loc,
		now:         time.Now,
		logger:      logger.With().Str("component", "attendance").Logger(),
	}
}

// workDay returns midnight of t's calendar day in the business timezone.
func (s *attendanceServiceImpl) workDay(t time.Time) time.Time {
	start, _ := helpers.DayWindow(t, s.loc)
	return start
}

// CheckStatus resolves a tapped card to its employee and today's attendance. The day is
// taken from the client timestamp, as in ClockIn, falling back to the server clock.
func (s *attendanceServiceImpl) CheckStatus(ctx context.Context, req dto.CheckStatusRequest) (*dto.StatusResponse, error) {
	card, err := s.cards.GetByCardID(ctx, req.CardID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUnknownCard
		}
		return nil, fmt.Errorf("error retrieving card: %w", err)
	}
	if !card.IsActive {
		return nil, apperrors.ErrCardInactive
	}

	employee := card.Employee
	if employee == nil {
		if employee, err = getEmployee(ctx, s.employees, card.EmployeeID); err != nil {
			return nil, err
		}
	}

	tapped := req.ClientTimestamp
	if tapped.IsZero() {
		tapped = s.now()
	}
	today := s.workDay(tapped)

	var (
		attendance *models.Attendance
		templates  []*models.CommuteTemplate
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a, err := s.attendances.FindByEmployeeAndDate(gctx, employee.ID, today)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil
			}
			return fmt.Errorf("error retrieving today's attendance: %w", err)
		}
		attendance = a
		return nil
	})
	g.Go(func() error {
		t, err := s.templates.ListByEmployee(gctx, employee.ID)
		if err != nil {
			return fmt.Errorf("error retrieving commute templates: %w", err)
		}
		templates = t
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("cardID", req.CardID).
		Str("terminalID", req.TerminalID).
		Int64("employeeID", employee.ID).
		Str("state", string(models.StateOf(attendance))).
		Msg("Card status checked")

	resp := &dto.StatusResponse{
		Employee:         employee,
		Attendance:       attendance,
		State:            models.StateOf(attendance),
		CommuteTemplates: templates,
	}
	if attendance != nil && attendance.SchoolID != nil {
		resp.School = s.findSchool(ctx, *attendance.SchoolID)
	}
	return resp, nil
}

// findSchool looks a school up in the staffing system. Errors are logged and yield nil.
func (s *attendanceServiceImpl) findSchool(ctx context.Context, id int64) *staffing.School {
	school, err := s.staffing.GetSchool(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int64("schoolID", id).Msg("School lookup failed")
		return nil
	}
	return school
}

// ClockIn opens the employee's attendance for the day of the client timestamp.
func (s *attendanceServiceImpl) ClockIn(ctx context.Context, req dto.ClockInRequest) (*dto.AttendanceActionResponse, error) {
	employee, err := getEmployee(ctx, s.employees, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	day := s.workDay(req.ClientTimestamp)
	existing, err := s.attendances.FindByEmployeeAndDate(ctx, employee.ID, day)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("error checking existing attendance: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyClockedIn
	}

	schoolID := req.SchoolID
	attendance, err := s.attendances.Create(ctx, &models.Attendance{
		EmployeeID:  employee.ID,
		Date:        day,
		ClockInTime: req.ClientTimestamp,
		SchoolID:    &schoolID,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrUnknownEmployee) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error creating attendance: %w", err)
	}

	s.logger.Info().
		Int64("employeeID", employee.ID).
		Int64("attendanceID", attendance.ID).
		Str("terminalID", req.TerminalID).
		Str("workDay", attendance.WorkDay()).
		Msg("Clocked in")

	return &dto.AttendanceActionResponse{Type: dto.ActionClockIn, Attendance: attendance}, nil
}

// ClockOut closes an attendance, syncing it to the staffing system when the employee is linked.
// A failed sync is logged and does not block the local transition.
func (s *attendanceServiceImpl) ClockOut(ctx context.Context, req dto.ClockOutRequest) (*dto.AttendanceActionResponse, error) {
	attendance, err := s.getAttendance(ctx, req.AttendanceID)
	if err != nil {
		return nil, err
	}
	if !attendance.CanClockOut() {
		return nil, apperrors.ErrAlreadyClockedOut
	}

	employee, err := getEmployee(ctx, s.employees, attendance.EmployeeID)
	if err != nil {
		return nil, err
	}

	commute := req.CommuteInfo
	if commute == nil {
		commute = &models.CommuteInfo{}
	}
	if commute.Cost < 0 {
		return nil, fmt.Errorf("%w: commute cost cannot be negative", apperrors.ErrValidationFailed)
	}

	externalID := s.syncClockOut(ctx, employee, attendance, commute, req)

	updated, err := s.attendances.UpdateClockOut(ctx, attendance.ID, repositories.ClockOutUpdate{
		ClockOutTime:         req.ClientTimestamp,
		CommuteInfo:          commute,
		TotalLesson:          req.TotalLesson,
		TotalTrainingLesson:  req.TotalTrainingLesson,
		ExternalAttendanceID: externalID,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error updating attendance: %w", err)
	}

	synced := externalID != nil
	s.logger.Info().
		Int64("employeeID", employee.ID).
		Int64("attendanceID", updated.ID).
		Bool("synced", synced).
		Msg("Clocked out")

	return &dto.AttendanceActionResponse{Type: dto.ActionClockOut, Attendance: updated, Synced: &synced}, nil
}

// syncClockOut registers the finished day with the staffing system and returns its id,
// or nil when the sync was skipped or failed.
func (s *attendanceServiceImpl) syncClockOut(
	ctx context.Context,
	employee *models.Employee,
	attendance *models.Attendance,
	commute *models.CommuteInfo,
	req dto.ClockOutRequest,
) *int64 {
	if !employee.HasExternalLink() {
		return nil
	}
	if attendance.SchoolID == nil {
		s.logger.Warn().
			Int64("attendanceID", attendance.ID).
			Msg("Attendance has no school, skipping staffing sync")
		return nil
	}

	training := intValue(req.TotalTrainingLesson)
	registered, err := s.staffing.RegisterAttendance(ctx, staffing.RegisterAttendanceRequest{
		Attendance: staffing.AttendanceInput{
			StaffID:             *employee.ExternalStaffID,
			WorkDay:             attendance.WorkDay(),
			SchoolID:            *attendance.SchoolID,
			CommutingCosts:      commute.Cost,
			TotalLesson:         intValue(req.TotalLesson),
			TotalTrainingLesson: training,
			Note:                req.Note,
		},
		LessonIDs:           req.LessonIDs,
		TotalTrainingLesson: training,
	})
	if err != nil {
		s.logger.Error().Err(err).
			Int64("attendanceID", attendance.ID).
			Int64("staffID", *employee.ExternalStaffID).
			Msg("Staffing sync failed, clocking out locally")
		return nil
	}
	id := registered.ID
	return &id
}

// Cancel undoes the latest action on an attendance: a clock-out is reverted, a clock-in deleted.
func (s *attendanceServiceImpl) Cancel(ctx context.Context, id int64) (*dto.AttendanceActionResponse, error) {
	attendance, err := s.getAttendance(ctx, id)
	if err != nil {
		return nil, err
	}

	action := attendance.CancelAction()
	switch action {
	case models.CancelClockOut:
		if attendance.ExternalAttendanceID != nil {
			if err := s.staffing.DeleteAttendance(ctx, *attendance.ExternalAttendanceID); err != nil {
				s.logger.Error().Err(err).
					Int64("attendanceID", attendance.ID).
					Int64("externalAttendanceID", *attendance.ExternalAttendanceID).
					Msg("Failed to delete staffing attendance, reverting locally")
			}
		}
		reverted, err := s.attendances.RevertClockOut(ctx, attendance.ID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrAttendanceNotFound
			}
			return nil, fmt.Errorf("error reverting clock-out: %w", err)
		}
		s.logger.Info().Int64("attendanceID", attendance.ID).Msg("Clock-out cancelled")
		return &dto.AttendanceActionResponse{Type: string(action), Attendance: reverted}, nil

	default:
		if _, err := s.attendances.Delete(ctx, attendance.ID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, apperrors.ErrAttendanceNotFound
			}
			return nil, fmt.Errorf("error deleting attendance: %w", err)
		}
		s.logger.Info().Int64("attendanceID", attendance.ID).Msg("Clock-in cancelled")
		return &dto.AttendanceActionResponse{Type: string(action)}, nil
	}
}

// ListAttendances returns a page of an employee's attendances, newest first.
func (s *attendanceServiceImpl) ListAttendances(ctx context.Context, employeeID int64, page, size int) ([]*models.Attendance, dto.PaginationInfo, error) {
	if _, err := getEmployee(ctx, s.employees, employeeID); err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.attendances.CountByEmployee(ctx, employeeID)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error counting attendances: %w", err)
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	attendances, err := s.attendances.ListByEmployee(ctx, employeeID, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error listing attendances: %w", err)
	}
	return attendances, helpers.NewPaginationInfo(total, page, size), nil
}

func (s *attendanceServiceImpl) getAttendance(ctx context.Context, id int64) (*models.Attendance, error) {
	attendance, err := s.attendances.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrAttendanceNotFound
		}
		return nil, fmt.Errorf("error retrieving attendance: %w", err)
	}
	return attendance, nil
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
