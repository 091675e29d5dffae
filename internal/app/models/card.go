package models

import "time"

// Card is a physical NFC token bound to an employee.
type Card struct {
	ID         int64     `json:"id"`
	CardID     string    `json:"card_id"`
	Name       *string   `json:"name"`
	IsActive   bool      `json:"is_active"`
	EmployeeID int64     `json:"employee_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Employee *Employee `json:"employee,omitempty"`
}
