package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"schooldir/dto"
	"schooldir/middleware"
	"schooldir/service"
	"schooldir/validation"
)

// ListSchools handles GET /api/schools with optional program/location
// filters and offset pagination.
func ListSchools(c *gin.Context) {
	query := middleware.ValidatedQuery(c)

	var filters dto.SchoolFilters
	if err := dto.DecodeValidated(query, &filters); err != nil {
		HandleServiceError(c, err)
		return
	}
	page, limit := pageParams(query)

	result, err := service.ListSchools(c.Request.Context(), filters, page, limit)
	if HandleServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSchool handles GET /api/schools/:id
func GetSchool(c *gin.Context) {
	id := middleware.ValidatedParams(c)["id"].(int)

	school, err := service.GetSchoolByID(c.Request.Context(), id)
	if HandleServiceError(c, err) {
		return
	}
	if school == nil {
		dto.NotFoundResponse(c, "School not found")
		return
	}

	c.JSON(http.StatusOK, validation.CheckResponse(dto.SchoolResponseSchema, school))
}

// CreateSchool handles POST /api/schools
func CreateSchool(c *gin.Context) {
	var in dto.CreateSchoolInput
	if err := dto.DecodeValidated(middleware.ValidatedBody(c), &in); err != nil {
		HandleServiceError(c, err)
		return
	}

	school, err := service.CreateSchool(c.Request.Context(), in)
	if HandleServiceError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, validation.CheckResponse(dto.SchoolResponseSchema, school))
}

// UpdateSchool handles PUT /api/schools/:id with a partial body.
func UpdateSchool(c *gin.Context) {
	id := middleware.ValidatedParams(c)["id"].(int)

	var in dto.UpdateSchoolInput
	if err := dto.DecodeValidated(middleware.ValidatedBody(c), &in); err != nil {
		HandleServiceError(c, err)
		return
	}

	school, err := service.UpdateSchool(c.Request.Context(), id, in)
	if HandleServiceError(c, err) {
		return
	}
	if school == nil {
		dto.NotFoundResponse(c, "School not found")
		return
	}

	c.JSON(http.StatusOK, validation.CheckResponse(dto.SchoolResponseSchema, school))
}

// DeleteSchool handles DELETE /api/schools/:id
func DeleteSchool(c *gin.Context) {
	id := middleware.ValidatedParams(c)["id"].(int)

	deleted, err := service.DeleteSchool(c.Request.Context(), id)
	if HandleServiceError(c, err) {
		return
	}
	if !deleted {
		dto.NotFoundResponse(c, "School not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListPrograms handles GET /api/programs
func ListPrograms(c *gin.Context) {
	programs, err := service.ListPrograms(c.Request.Context())
	if HandleServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, dto.ProgramsResp{
		Count:    len(programs),
		Programs: programs,
	})
}

// GetStats handles GET /api/stats
func GetStats(c *gin.Context) {
	stats, err := service.GetStats(c.Request.Context())
	if HandleServiceError(c, err) {
		return
	}

	c.JSON(http.StatusOK, stats)
}
