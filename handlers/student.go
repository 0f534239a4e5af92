package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schooldir/dto"
	"schooldir/middleware"
	"schooldir/service"
)

// ListStudents handles GET /api/students with optional enrolledProgram and
// status filters.
func ListStudents(c *gin.Context) {
	query := middleware.ValidatedQuery(c)

	var filters dto.StudentFilters
	if err := dto.DecodeValidated(query, &filters); err != nil {
		HandleServiceError(c, err)
		return
	}
	page, limit := pageParams(query)

	result, err := service.ListStudents(c.Request.Context(), filters, page, limit)
	if HandleServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetStudent handles GET /api/students/:uuid
func GetStudent(c *gin.Context) {
	id := middleware.ValidatedParams(c)["uuid"].(string)

	student, err := service.GetStudentByUUID(c.Request.Context(), id)
	if HandleServiceError(c, err) {
		return
	}
	if student == nil {
		dto.NotFoundResponse(c, "Student not found")
		return
	}

	c.JSON(http.StatusOK, student)
}

// ListSchoolStudents handles GET /api/schools/:id/students
func ListSchoolStudents(c *gin.Context) {
	id := middleware.ValidatedParams(c)["id"].(int)

	school, err := service.GetSchoolByID(c.Request.Context(), id)
	if HandleServiceError(c, err) {
		return
	}
	if school == nil {
		dto.NotFoundResponse(c, "School not found")
		return
	}

	page, limit := pageParams(middleware.ValidatedQuery(c))
	result, err := service.ListStudentsBySchool(c.Request.Context(), id, page, limit)
	if HandleServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, result)
}
