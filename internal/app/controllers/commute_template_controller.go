package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/app/services"
	"github.com/stapro/nfc-attendance/internal/middleware"
)

// CommuteTemplateController handles commute preset management
type CommuteTemplateController struct {
	templateService services.CommuteTemplateService
}

// NewCommuteTemplateController creates a new CommuteTemplateController
func NewCommuteTemplateController(templateService services.CommuteTemplateService) *CommuteTemplateController {
	return &CommuteTemplateController{templateService: templateService}
}

// Create creates a commute template
// @Summary Create a commute template
// @Tags commute-templates
// @Accept json
// @Produce json
// @Param request body dto.CreateCommuteTemplateRequest true "Template data"
// @Success 201 {object} dto.APIResponse{data=models.CommuteTemplate} "Template created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Employee not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /commute-templates [post]
func (c *CommuteTemplateController) Create(ctx *gin.Context) {
	var req dto.CreateCommuteTemplateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	template, err := c.templateService.CreateTemplate(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(template))
}

// ListByEmployee lists an employee's templates
// @Summary List an employee's commute templates
// @Tags commute-templates
// @Produce json
// @Param employeeId path int true "Employee ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.CommuteTemplate} "Templates, oldest first"
// @Failure 400 {object} dto.ErrorResponse "Invalid employee ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /commute-templates/employee/{employeeId} [get]
func (c *CommuteTemplateController) ListByEmployee(ctx *gin.Context) {
	employeeID, ok := middleware.ParseIDParam(ctx, "employeeId")
	if !ok {
		return
	}

	templates, err := c.templateService.ListByEmployee(ctx.Request.Context(), employeeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(templates))
}

// Get retrieves a template
// @Summary Get a commute template
// @Tags commute-templates
// @Produce json
// @Param id path int true "Template ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.CommuteTemplate} "Template"
// @Failure 400 {object} dto.ErrorResponse "Invalid template ID"
// @Failure 404 {object} dto.ErrorResponse "Template not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /commute-templates/{id} [get]
func (c *CommuteTemplateController) Get(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	template, err := c.templateService.GetTemplate(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(template))
}

// Update changes a template
// @Summary Update a commute template
// @Description Updates name, cost or route description. The owning employee cannot change.
// @Tags commute-templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID" Format(int64) minimum(1)
// @Param request body dto.UpdateCommuteTemplateRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.CommuteTemplate} "Template updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Template not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /commute-templates/{id} [put]
func (c *CommuteTemplateController) Update(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateCommuteTemplateRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	template, err := c.templateService.UpdateTemplate(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(template))
}

// Delete removes a template
// @Summary Delete a commute template
// @Tags commute-templates
// @Produce json
// @Param id path int true "Template ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.CommuteTemplate} "Deleted template"
// @Failure 400 {object} dto.ErrorResponse "Invalid template ID"
// @Failure 404 {object} dto.ErrorResponse "Template not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /commute-templates/{id} [delete]
func (c *CommuteTemplateController) Delete(ctx *gin.Context) {
	id, ok := middleware.ParseIDParam(ctx, "id")
	if !ok {
		return
	}

	template, err := c.templateService.DeleteTemplate(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(template))
}
