package handler

import "github.com/gin-gonic/gin"

// Handlers bundles every route handler for registration.
type Handlers struct {
	Courses     *CourseHandler
	Assignments *AssignmentHandler
	Grades      *GradeHandler
	Dashboard   *DashboardHandler
	Calendar    *CalendarHandler
}

// RegisterRoutes mounts the API surface on the provided group.
func RegisterRoutes(api *gin.RouterGroup, h Handlers) {
	api.GET("/dashboard", h.Dashboard.Overview)
	api.GET("/calendar", h.Calendar.Month)

	courses := api.Group("/courses")
	{
		courses.GET("", h.Courses.List)
		courses.POST("", h.Courses.Create)
		courses.GET("/:id", h.Courses.Get)
		courses.PATCH("/:id", h.Courses.Update)
		courses.DELETE("/:id", h.Courses.Delete)
	}

	assignments := api.Group("/assignments")
	{
		assignments.GET("", h.Assignments.List)
		assignments.POST("", h.Assignments.Create)
		assignments.GET("/:id", h.Assignments.Get)
		assignments.PATCH("/:id", h.Assignments.Update)
		assignments.PATCH("/:id/status", h.Assignments.UpdateStatus)
		assignments.DELETE("/:id", h.Assignments.Delete)
	}

	grades := api.Group("/grades")
	{
		grades.GET("", h.Grades.Overview)
		grades.POST("", h.Grades.Create)
		grades.GET("/export", h.Grades.Export)
		grades.GET("/:courseId", h.Grades.GetByCourse)
		grades.PATCH("/:courseId", h.Grades.Update)
		grades.DELETE("/:courseId", h.Grades.Delete)
	}
}
