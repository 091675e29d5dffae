package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stapro/nfc-attendance/internal/app/models/dto"
	"github.com/stapro/nfc-attendance/internal/app/services"
	"github.com/stapro/nfc-attendance/internal/middleware"
)

// SchoolController proxies the staffing system's school list
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{schoolService: schoolService}
}

// ListSchools lists schools
// @Summary List schools
// @Description Returns the schools known to the staffing system
// @Tags schools
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]staffing.School} "Schools"
// @Failure 502 {object} dto.ErrorResponse "Staffing system unavailable"
// @Router /schools [get]
func (c *SchoolController) ListSchools(ctx *gin.Context) {
	schools, err := c.schoolService.ListSchools(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(schools))
}
