package dto

import (
	"time"

	"github.com/stapro/nfc-attendance/internal/app/models"
	"github.com/stapro/nfc-attendance/internal/pkg/staffing"
)

// CheckStatusRequest is sent by a terminal when a card is tapped.
type CheckStatusRequest struct {
	CardID          string    `json:"card_id" binding:"required" example:"0123456789ABCDEF"`
	TerminalID      string    `json:"terminal_id" binding:"required" example:"iPad-01"`
	ClientTimestamp time.Time `json:"client_timestamp" binding:"required" example:"2023-10-27T09:00:00Z"`
}

// ClockInRequest starts an employee's day.
type ClockInRequest struct {
	EmployeeID      int64     `json:"employee_id" binding:"required,gt=0" example:"1"`
	TerminalID      string    `json:"terminal_id" binding:"required" example:"iPad-01"`
	SchoolID        int64     `json:"school_id" binding:"required,gt=0" example:"1"`
	ClientTimestamp time.Time `json:"client_timestamp" binding:"required" example:"2023-10-27T09:00:00Z"`
}

// ClockOutRequest closes an attendance and carries the data synced to the staffing system.
type ClockOutRequest struct {
	AttendanceID        int64               `json:"attendance_id" binding:"required,gt=0" example:"1"`
	CommuteInfo         *models.CommuteInfo `json:"commute_info"`
	TotalLesson         *int                `json:"total_lesson" binding:"omitempty,gte=0" example:"4"`
	TotalTrainingLesson *int                `json:"total_training_lesson" binding:"omitempty,gte=0" example:"0"`
	LessonIDs           []int64             `json:"lesson_ids"`
	Note                string              `json:"note" example:""`
	ClientTimestamp     time.Time           `json:"client_timestamp" binding:"required" example:"2023-10-27T18:00:00Z"`
}

// StatusResponse describes the tapped card's owner and today's attendance.
type StatusResponse struct {
	Employee         *models.Employee          `json:"employee"`
	Attendance       *models.Attendance        `json:"attendance"`
	State            models.AttendanceState    `json:"state" example:"clocked_in"`
	CommuteTemplates []*models.CommuteTemplate `json:"commute_templates"`
	School           *staffing.School          `json:"school"`
}

// AttendanceActionResponse is returned by clock-in, clock-out and cancel.
type AttendanceActionResponse struct {
	Type       string             `json:"type" example:"clock_in"`
	Attendance *models.Attendance `json:"attendance"`
	Synced     *bool              `json:"synced,omitempty"`
}

// Attendance action types.
const (
	ActionClockIn  = "clock_in"
	ActionClockOut = "clock_out"
)
