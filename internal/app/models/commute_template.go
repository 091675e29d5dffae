package models

import "time"

// CommuteTemplate is a reusable commute preset copied onto an attendance at clock-out.
type CommuteTemplate struct {
	ID               int64     `json:"id"`
	EmployeeID       int64     `json:"employee_id"`
	Name             string    `json:"name"`
	Cost             int       `json:"cost"`
	RouteDescription *string   `json:"route_description"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
