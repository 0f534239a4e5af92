package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"schooldir/dto"
	"schooldir/handlers"
	"schooldir/middleware"
)

func New() *gin.Engine {
	router := gin.New()

	// CORS configuration
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", "Cache-Control"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH", "HEAD"}
	config.ExposeHeaders = []string{"Content-Length", "Content-Type"}

	// Middleware setup
	router.Use(
		middleware.Logging(),
		middleware.ErrorHandler(),
		cors.New(config),
	)

	SetupRoutes(router)

	return router
}

func SetupRoutes(router *gin.Engine) {
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login)
			auth.POST("/logout", handlers.Logout)
			auth.POST("/register", handlers.Register)
		}

		schools := api.Group("/schools")
		{
			schools.GET("",
				middleware.ValidateRequest(nil, dto.SchoolQuerySchema, nil),
				handlers.ListSchools)
			schools.GET("/:id",
				middleware.ValidateRequest(nil, nil, dto.IDParamSchema),
				handlers.GetSchool)
			schools.GET("/:id/students",
				middleware.ValidateRequest(nil, dto.PageQuerySchema, dto.IDParamSchema),
				handlers.ListSchoolStudents)

			// Writes require a valid bearer token
			schools.POST("",
				middleware.JWTAuth(),
				middleware.ValidateRequest(dto.CreateSchoolSchema, nil, nil),
				handlers.CreateSchool)
			schools.PUT("/:id",
				middleware.JWTAuth(),
				middleware.ValidateRequest(dto.UpdateSchoolSchema, nil, dto.IDParamSchema),
				handlers.UpdateSchool)
			schools.DELETE("/:id",
				middleware.JWTAuth(),
				middleware.ValidateRequest(nil, nil, dto.IDParamSchema),
				handlers.DeleteSchool)
		}

		api.GET("/programs", handlers.ListPrograms)
		api.GET("/stats", handlers.GetStats)

		api.GET("/students",
			middleware.ValidateRequest(nil, dto.StudentQuerySchema, nil),
			handlers.ListStudents)
		api.GET("/students/:uuid",
			middleware.ValidateRequest(nil, nil, dto.StudentUUIDParamSchema),
			handlers.GetStudent)
	}
}
