package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/pkg/dberrors"
	"github.com/stapro/nfc-attendance/internal/pkg/logger"
)

const attendanceReturning = "RETURNING id, employee_id, date, clock_in_time, clock_out_time, commute_info, school_id, " +
	"total_lesson, total_training_lesson, external_attendance_id, created_at, updated_at"

// clockOutColumns are written by a clock-out and cleared when it is cancelled.
var clockOutColumns = []string{
	"clock_out_time", "commute_info", "total_lesson", "total_training_lesson", "external_attendance_id",
}

var attendanceColumns = []string{
	"id", "employee_id", "date", "clock_in_time", "clock_out_time", "commute_info", "school_id",
	"total_lesson", "total_training_lesson", "external_attendance_id", "created_at", "updated_at",
}

// ClockOutUpdate holds the fields written when an attendance is closed.
type ClockOutUpdate struct {
	ClockOutTime         time.Time
	CommuteInfo          *models.CommuteInfo
	TotalLesson          *int
	TotalTrainingLesson  *int
	// ExternalAttendanceID is nil when the staffing sync was skipped or failed.
	ExternalAttendanceID *int64
}

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db DBTX
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db DBTX) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func scanAttendance(row pgx.Row) (*models.Attendance, error) {
	a := &models.Attendance{}
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.ClockInTime, &a.ClockOutTime, &a.CommuteInfo, &a.SchoolID,
		&a.TotalLesson, &a.TotalTrainingLesson, &a.ExternalAttendanceID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AttendanceRepository) queryOne(ctx context.Context, op string, builder squirrel.Sqlizer) (*models.Attendance, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Str("op", op).Msg("Error building attendance SQL")
		return nil, fmt.Errorf("failed to build %s attendance query: %w", op, err)
	}

	attendance, err := scanAttendance(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if dberrors.IsForeignKeyError(err) {
			return nil, ErrUnknownEmployee
		}
		logger.Error().Err(err).Str("op", op).Msg("Error executing attendance query")
		return nil, fmt.Errorf("error during %s attendance: %w", op, err)
	}
	return attendance, nil
}

// Create inserts an open attendance. Date must be midnight of the work day in the business timezone.
func (r *AttendanceRepository) Create(ctx context.Context, attendance *models.Attendance) (*models.Attendance, error) {
	return r.queryOne(ctx, "create", r.sb.Insert("attendances").
		Columns("employee_id", "date", "clock_in_time", "school_id").
		Values(attendance.EmployeeID, attendance.Date, attendance.ClockInTime, attendance.SchoolID).
		Suffix(attendanceReturning))
}

// GetByID retrieves an attendance by ID.
func (r *AttendanceRepository) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	return r.queryOne(ctx, "get", r.sb.Select(attendanceColumns...).
		From("attendances").
		Where(squirrel.Eq{"id": id}).
		Limit(1))
}

// FindByEmployeeAndDate returns the employee's attendance for the given work day.
// When several exist the earliest clock-in wins.
func (r *AttendanceRepository) FindByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*models.Attendance, error) {
	return r.queryOne(ctx, "find", r.sb.Select(attendanceColumns...).
		From("attendances").
		Where(squirrel.Eq{"employee_id": employeeID, "date": date}).
		OrderBy("clock_in_time ASC", "id ASC").
		Limit(1))
}

// UpdateClockOut closes an attendance and returns the stored record.
func (r *AttendanceRepository) UpdateClockOut(ctx context.Context, id int64, update ClockOutUpdate) (*models.Attendance, error) {
	return r.queryOne(ctx, "clock out", r.sb.Update("attendances").
		SetMap(map[string]interface{}{
			"clock_out_time":         update.ClockOutTime,
			"commute_info":           update.CommuteInfo,
			"total_lesson":           update.TotalLesson,
			"total_training_lesson":  update.TotalTrainingLesson,
			"external_attendance_id": update.ExternalAttendanceID,
			"updated_at":             squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": id}).
		Suffix(attendanceReturning))
}

// RevertClockOut clears every clock-out field, leaving the attendance open.
func (r *AttendanceRepository) RevertClockOut(ctx context.Context, id int64) (*models.Attendance, error) {
	set := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	for _, column := range clockOutColumns {
		set[column] = nil
	}

	return r.queryOne(ctx, "revert", r.sb.Update("attendances").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		Suffix(attendanceReturning))
}

// Delete removes an attendance and returns the deleted row.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (*models.Attendance, error) {
	return r.queryOne(ctx, "delete", r.sb.Delete("attendances").
		Where(squirrel.Eq{"id": id}).
		Suffix(attendanceReturning))
}

// ListByEmployee returns a page of the employee's attendances, most recent day first.
func (r *AttendanceRepository) ListByEmployee(ctx context.Context, employeeID int64, offset, limit uint64) ([]*models.Attendance, error) {
	sql, args, err := r.sb.Select(attendanceColumns...).
		From("attendances").
		Where(squirrel.Eq{"employee_id": employeeID}).
		OrderBy("date DESC", "clock_in_time DESC").
		Offset(offset).
		Limit(limit).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list attendances SQL")
		return nil, fmt.Errorf("failed to build list attendances query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("employeeID", employeeID).Msg("Error executing list attendances query")
		return nil, fmt.Errorf("error querying attendances: %w", err)
	}
	defer rows.Close()

	attendances := []*models.Attendance{}
	for rows.Next() {
		attendance, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		attendances = append(attendances, attendance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}
	return attendances, nil
}

// CountByEmployee counts the employee's attendances.
func (r *AttendanceRepository) CountByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("attendances").
		Where(squirrel.Eq{"employee_id": employeeID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count attendances query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Int64("employeeID", employeeID).Msg("Error counting attendances")
		return 0, fmt.Errorf("error counting attendances: %w", err)
	}
	return total, nil
}
