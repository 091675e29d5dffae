package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/app/services"
	"github.com/stapro/nfc-attendance/internal/middleware"
)

// EmployeeController handles employee lookups
type EmployeeController struct {
	employeeService services.EmployeeService
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(employeeService services.EmployeeService) *EmployeeController {
	return &EmployeeController{employeeService: employeeService}
}

// ListEmployees lists all employees
// @Summary List employees
// @Description Returns every employee ordered by ID
// @Tags employees
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Employee} "Employees"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees [get]
func (c *EmployeeController) ListEmployees(ctx *gin.Context) {
	employees, err := c.employeeService.ListEmployees(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(employees))
}

// GetEmployee retrieves an employee by ID
// @Summary Get employee
// @Tags employees
// @Produce json
// @Param employeeId path int true "Employee ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Employee} "Employee"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employeeId} [get]
func (c *EmployeeController) GetEmployee(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "employeeId")
	if !ok {
		return
	}

	employee, err := c.employeeService.GetEmployee(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(employee))
}
