// Package services holds the attendance business logic.
//
// Services defined in this package:
// - AttendanceService: status check, clock-in, clock-out, cancel and history
// - CardService: NFC card management and card registration through staffing login
// - EmployeeService: employee lookup
// - CommuteTemplateService: commute preset management
// - SchoolService: school list proxied from the staffing system
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/app/repositories"
	"github.com/stapro/nfc-attendance/internal/pkg/apperrors"
	"github.com/stapro/nfc-attendance/internal/pkg/staffing"
)

type employeeStore interface {
	Create(ctx context.Context, employee *models.Employee) error
	GetByID(ctx context.Context, id int64) (*models.Employee, error)
	GetByExternalStaffID(ctx context.Context, staffID int64) (*models.Employee, error)
	GetAll(ctx context.Context) ([]*models.Employee, error)
}

type cardStore interface {
	Create(ctx context.Context, card *models.Card) error
	GetByCardID(ctx context.Context, cardID string) (*models.Card, error)
	GetForEmployee(ctx context.Context, employeeID, id int64) (*models.Card, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*models.Card, error)
	Update(ctx context.Context, id int64, update repositories.CardUpdate) (*models.Card, error)
	Delete(ctx context.Context, id int64) error
}

type commuteTemplateStore interface {
	Create(ctx context.Context, template *models.CommuteTemplate) error
	GetByID(ctx context.Context, id int64) (*models.CommuteTemplate, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*models.CommuteTemplate, error)
	Update(ctx context.Context, id int64, update repositories.CommuteTemplateUpdate) (*models.CommuteTemplate, error)
	Delete(ctx context.Context, id int64) (*models.CommuteTemplate, error)
}

type attendanceStore interface {
	Create(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error)
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*models.Attendance, error)
	UpdateClockOut(ctx context.Context, id int64, update repositories.ClockOutUpdate) (*models.Attendance, error)
	RevertClockOut(ctx context.Context, id int64) (*models.Attendance, error)
	Delete(ctx context.Context, id int64) (*models.Attendance, error)
	ListByEmployee(ctx context.Context, employeeID int64, offset, limit uint64) ([]*models.Attendance, error)
	CountByEmployee(ctx context.Context, employeeID int64) (int64, error)
}

// Services groups every service used by the controllers.
type Services struct {
	Attendance      AttendanceService
	Card            CardService
	Employee        EmployeeService
	CommuteTemplate CommuteTemplateService
	School          SchoolService
}

// NewServices wires the services over the repositories and the staffing client.
func NewServices(repos *repositories.Repositories, staff staffing.Client, loc *time.Location, logger zerolog.Logger) *Services {
	return &Services{
		Attendance: NewAttendanceService(
			repos.AttendanceRepository,
			repos.CardRepository,
			repos.EmployeeRepository,
			repos.CommuteTemplateRepository,
			staff,
			loc,
			logger,
		),
		Card:            NewCardService(repos.CardRepository, repos.EmployeeRepository, staff, logger),
		Employee:        NewEmployeeService(repos.EmployeeRepository),
		CommuteTemplate: NewCommuteTemplateService(repos.CommuteTemplateRepository, repos.EmployeeRepository),
		School:          NewSchoolService(staff),
	}
}

// getEmployee loads an employee, mapping a missing row to ErrEmployeeNotFound.
func getEmployee(ctx context.Context, employees employeeStore, id int64) (*models.Employee, error) {
	employee, err := employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("error retrieving employee: %w", err)
	}
	return employee, nil
}
