package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/stapro/nfc-attendance/internal/app/controllers"
)

// Controllers groups every controller mounted by SetupRouter.
type Controllers struct {
	Attendance      *controllers.AttendanceController
	Employee        *controllers.EmployeeController
	Card            *controllers.CardController
	CommuteTemplate *controllers.CommuteTemplateController
	School          *controllers.SchoolController
	Health          *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.Health)

	attendance := v1.Group("/attendance")
	{
		attendance.POST("/status", c.Attendance.CheckStatus)
		attendance.POST("/clock-in", c.Attendance.ClockIn)
		attendance.POST("/clock-out", c.Attendance.ClockOut)
		attendance.DELETE("/:id", c.Attendance.Cancel)
	}

	employees := v1.Group("/employees")
	{
		employees.GET("", c.Employee.ListEmployees)
		employees.GET("/:employeeId", c.Employee.GetEmployee)
		employees.GET("/:employeeId/attendances", c.Attendance.ListEmployeeAttendances)

		cards := employees.Group("/:employeeId/cards")
		cards.GET("", c.Card.ListCards)
		cards.POST("", c.Card.CreateCard)
		cards.PATCH("/:cardId", c.Card.UpdateCard)
		cards.DELETE("/:cardId", c.Card.DeleteCard)
	}

	v1.POST("/cards/register-auth", c.Card.RegisterCardWithAuth)

	templates := v1.Group("/commute-templates")
	{
		templates.POST("", c.CommuteTemplate.Create)
		templates.GET("/employee/:employeeId", c.CommuteTemplate.ListByEmployee)
		templates.GET("/:id", c.CommuteTemplate.Get)
		templates.PUT("/:id", c.CommuteTemplate.Update)
		templates.DELETE("/:id", c.CommuteTemplate.Delete)
	}

	v1.GET("/schools", c.School.ListSchools)
}
