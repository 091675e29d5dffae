package models

import "time"

// Employee is a staff member or student who clocks in with an NFC card.
type Employee struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	ExternalStaffID *int64    `json:"external_staff_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HasExternalLink reports whether the employee is linked to a staffing system account.
func (e *Employee) HasExternalLink() bool {
	return e != nil && e.ExternalStaffID != nil && *e.ExternalStaffID > 0
}
