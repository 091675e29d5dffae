package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/app/services"
	"github.com/stapro/nfc-attendance/internal/middleware"
	"github.com/stapro/nfc-attendance/internal/pkg/helpers"
)

// AttendanceController handles card taps and attendance transitions
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// CheckStatus resolves a tapped card
// @Summary Check card status
// @Description Resolves a tapped NFC card to its employee, today's attendance and commute templates
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.CheckStatusRequest true "Card tap"
// @Success 200 {object} dto.APIResponse{data=dto.StatusResponse} "Card status"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or inactive card"
// @Failure 404 {object} dto.ErrorResponse "Unknown card"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/status [post]
func (c *AttendanceController) CheckStatus(ctx *gin.Context) {
	var req dto.CheckStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.attendanceService.CheckStatus(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// ClockIn starts an employee's work day
// @Summary Clock in
// @Description Creates today's attendance for the employee
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.ClockInRequest true "Clock-in data"
// @Success 201 {object} dto.APIResponse{data=dto.AttendanceActionResponse} "Clocked in"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or already clocked in"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/clock-in [post]
func (c *AttendanceController) ClockIn(ctx *gin.Context) {
	var req dto.ClockInRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.attendanceService.ClockIn(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// ClockOut closes an attendance
// @Summary Clock out
// @Description Closes the attendance and syncs it to the staffing system when the employee is linked. A failed sync is reported through the synced flag.
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body dto.ClockOutRequest true "Clock-out data"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceActionResponse} "Clocked out"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or already clocked out"
// @Failure 404 {object} dto.ErrorResponse "Attendance not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/clock-out [post]
func (c *AttendanceController) ClockOut(ctx *gin.Context) {
	var req dto.ClockOutRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.attendanceService.ClockOut(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Cancel undoes the latest attendance action
// @Summary Cancel attendance action
// @Description Reverts a clock-out, or deletes the attendance when only clocked in
// @Tags attendance
// @Produce json
// @Param id path int true "Attendance ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceActionResponse} "Action cancelled"
// @Failure 400 {object} dto.ErrorResponse "Invalid attendance ID"
// @Failure 404 {object} dto.ErrorResponse "Attendance not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attendance/{id} [delete]
func (c *AttendanceController) Cancel(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	resp, err := c.attendanceService.Cancel(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// ListEmployeeAttendances lists an employee's attendance history
// @Summary List employee attendances
// @Description Returns a page of the employee's attendances, newest first
// @Tags employees
// @Produce json
// @Param employeeId path int true "Employee ID" Format(int64) minimum(1)
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(20)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]models.Attendance}} "Attendances"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /employees/{employeeId}/attendances [get]
func (c *AttendanceController) ListEmployeeAttendances(ctx *gin.Context) {
	employeeID, ok := middleware.ParseIDParam(ctx, "employeeId")
	if !ok {
		return
	}
	page, size := helpers.ParsePaginationParams(ctx)

	items, pagination, err := c.attendanceService.ListAttendances(ctx.Request.Context(), employeeID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      items,
		Pagination: pagination,
	}))
}
