package models

import "time"

// AttendanceState is the position of an employee's day in the clock-in/clock-out cycle.
type AttendanceState string

const (
	StateNotStarted AttendanceState = "not_started"
	StateClockedIn  AttendanceState = "clocked_in"
	StateClockedOut AttendanceState = "clocked_out"
)

// CancelAction is the transition taken when an attendance action is cancelled.
type CancelAction string

const (
	// CancelClockIn removes the attendance record entirely.
	CancelClockIn CancelAction = "cancel_clock_in"
	// CancelClockOut reverts a clocked-out record to clocked-in.
	CancelClockOut CancelAction = "cancel_clock_out"
)

// DateLayout formats attendance dates and staffing work days.
const DateLayout = "2006-01-02"

// CommuteInfo is the commute snapshot stored on an attendance at clock-out.
type CommuteInfo struct {
	TemplateID       *int64  `json:"template_id,omitempty"`
	Name             string  `json:"name,omitempty"`
	Cost             int     `json:"cost,omitempty" binding:"gte=0"`
	RouteDescription *string `json:"route_description,omitempty"`
}

// Attendance is one day's clock-in/out record for an employee.
type Attendance struct {
	ID                   int64        `json:"id"`
	EmployeeID           int64        `json:"employee_id"`
	Date                 time.Time    `json:"date"`
	ClockInTime          time.Time    `json:"clock_in_time"`
	ClockOutTime         *time.Time   `json:"clock_out_time"`
	CommuteInfo          *CommuteInfo `json:"commute_info"`
	SchoolID             *int64       `json:"school_id"`
	TotalLesson          *int         `json:"total_lesson"`
	TotalTrainingLesson  *int         `json:"total_training_lesson"`
	ExternalAttendanceID *int64       `json:"external_attendance_id"`
	CreatedAt            time.Time    `json:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at"`
}

// StateOf derives the state of a (possibly absent) attendance record.
func StateOf(a *Attendance) AttendanceState {
	switch {
	case a == nil:
		return StateNotStarted
	case a.ClockOutTime == nil:
		return StateClockedIn
	default:
		return StateClockedOut
	}
}

// State returns the record's current state.
func (a *Attendance) State() AttendanceState {
	return StateOf(a)
}

// CanClockOut reports whether the record accepts a clock-out.
func (a *Attendance) CanClockOut() bool {
	return a.State() == StateClockedIn
}

// CancelAction returns the transition a cancel request applies to the record.
func (a *Attendance) CancelAction() CancelAction {
	if a.State() == StateClockedOut {
		return CancelClockOut
	}
	return CancelClockIn
}

// WorkDay formats the attendance date as used by the staffing system.
func (a *Attendance) WorkDay() string {
	return a.Date.Format(DateLayout)
}
