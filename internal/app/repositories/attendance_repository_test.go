package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/pkg/helpers"
)

func tokyoLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	return loc
}

func TestAttendanceRepository_FindByEmployeeAndDate(t *testing.T) {
	db := &recordingDB{}
	repo := NewAttendanceRepository(db)
	day, _ := helpers.DayWindow(time.Date(2024, 4, 1, 0, 30, 0, 0, tokyoLocation(t)), tokyoLocation(t))

	_, err := repo.FindByEmployeeAndDate(context.Background(), 7, day)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, db.sql, "FROM attendances WHERE ")
	assert.Contains(t, db.sql, "date = $")
	assert.Contains(t, db.sql, "employee_id = $")
	assert.Contains(t, db.sql, "ORDER BY clock_in_time ASC, id ASC LIMIT 1")
	assert.ElementsMatch(t, []any{day, int64(7)}, db.args)
}

func TestAttendanceDate_EncodesBusinessDay(t *testing.T) {
	tokyo := tokyoLocation(t)
	day, _ := helpers.DayWindow(time.Date(2024, 4, 1, 0, 30, 0, 0, tokyo), tokyo)
	m := pgtype.NewMap()

	encoded, err := m.Encode(pgtype.DateOID, pgtype.TextFormatCode, day, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-01", string(encoded))

	// The same instant in UTC is still March 31, so the location must be kept.
	encoded, err = m.Encode(pgtype.DateOID, pgtype.TextFormatCode, day.UTC(), nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-31", string(encoded))
}

func TestAttendanceRepository_UpdateClockOut(t *testing.T) {
	db := &recordingDB{}
	repo := NewAttendanceRepository(db)
	out := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	commute := &models.CommuteInfo{Name: "Train", Cost: 500}
	lessons := 4
	external := int64(9001)

	_, err := repo.UpdateClockOut(context.Background(), 7, ClockOutUpdate{
		ClockOutTime:         out,
		CommuteInfo:          commute,
		TotalLesson:          &lessons,
		ExternalAttendanceID: &external,
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, db.sql, "UPDATE attendances SET clock_out_time = $1, commute_info = $2, "+
		"external_attendance_id = $3, total_lesson = $4, total_training_lesson = $5, updated_at = NOW() WHERE id = $6")
	assert.Contains(t, db.sql, "RETURNING id, employee_id, date")
	require.Len(t, db.args, 6)
	assert.Equal(t, out, db.args[0])
	assert.Equal(t, commute, db.args[1])
	assert.Equal(t, &external, db.args[2])
	assert.Equal(t, &lessons, db.args[3])
	assert.Nil(t, db.args[4])
	assert.Equal(t, int64(7), db.args[5])
}

func TestAttendanceRepository_RevertClockOut(t *testing.T) {
	db := &recordingDB{}
	repo := NewAttendanceRepository(db)

	_, err := repo.RevertClockOut(context.Background(), 7)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, db.sql, "UPDATE attendances SET clock_out_time = $1, commute_info = $2, "+
		"external_attendance_id = $3, total_lesson = $4, total_training_lesson = $5, updated_at = NOW() WHERE id = $6")
	assert.Equal(t, []any{nil, nil, nil, nil, nil, int64(7)}, db.args)
	for _, column := range clockOutColumns {
		assert.Contains(t, db.sql, column+" = $")
	}
}

func TestAttendanceRepository_Create(t *testing.T) {
	tokyo := tokyoLocation(t)
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, tokyo)
	clockIn := time.Date(2024, 4, 1, 9, 0, 0, 0, tokyo)
	school := int64(3)

	t.Run("inserts the open columns", func(t *testing.T) {
		db := &recordingDB{}
		_, err := NewAttendanceRepository(db).Create(context.Background(), &models.Attendance{
			EmployeeID: 1, Date: day, ClockInTime: clockIn, SchoolID: &school,
		})

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Contains(t, db.sql, "INSERT INTO attendances (employee_id,date,clock_in_time,school_id) VALUES ($1,$2,$3,$4)")
		assert.Equal(t, []any{int64(1), day, clockIn, &school}, db.args)
	})

	t.Run("missing employee", func(t *testing.T) {
		db := &recordingDB{rowErr: foreignKeyViolation()}
		_, err := NewAttendanceRepository(db).Create(context.Background(), &models.Attendance{
			EmployeeID: 99, Date: day, ClockInTime: clockIn,
		})

		assert.ErrorIs(t, err, ErrUnknownEmployee)
	})
}

func TestAttendanceRepository_ListByEmployee(t *testing.T) {
	db := &recordingDB{}

	_, err := NewAttendanceRepository(db).ListByEmployee(context.Background(), 7, 20, 10)

	assert.ErrorIs(t, err, errQueryUnsupported)
	assert.Contains(t, db.sql, "WHERE employee_id = $1 ORDER BY date DESC, clock_in_time DESC LIMIT 10 OFFSET 20")
}
