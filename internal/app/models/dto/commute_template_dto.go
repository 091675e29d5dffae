package dto

// CreateCommuteTemplateRequest creates a commute preset for an employee.
type CreateCommuteTemplateRequest struct {
	EmployeeID       int64   `json:"employee_id" binding:"required,gt=0" example:"1"`
	Name             string  `json:"name" binding:"required,notblank" example:"Train (Home -> Office)"`
	Cost             int     `json:"cost" binding:"gte=0" example:"500"`
	RouteDescription *string `json:"route_description" example:"Shinjuku -> Tokyo"`
}

// UpdateCommuteTemplateRequest updates a preset. The owning employee cannot change.
type UpdateCommuteTemplateRequest struct {
	Name             *string `json:"name" binding:"omitempty,min=1" example:"Bus"`
	Cost             *int    `json:"cost" binding:"omitempty,gte=0" example:"220"`
	RouteDescription *string `json:"route_description" example:"Station -> Office"`
}
