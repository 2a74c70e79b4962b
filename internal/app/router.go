package app

import (
	"github.com/SaideLeon/nativespeak-api/docs"
	"github.com/SaideLeon/nativespeak-api/internal/config"
	"github.com/SaideLeon/nativespeak-api/internal/middleware"
	"github.com/SaideLeon/nativespeak-api/internal/model"
	"github.com/SaideLeon/nativespeak-api/pkg/monitoring"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authorized.GET("/me", c.user.Me)
		authorized.PUT("/me", c.user.UpdateMe)
		authorized.GET("/me/profile", c.sync.GetProfile)
		authorized.PUT("/me/profile", c.sync.UpdateProfile)

		authorized.GET("/sync", c.sync.Pull)
		authorized.POST("/sync", c.sync.Push)

		authorized.GET("/goals", c.goal.List)
		authorized.POST("/goals", c.goal.Create)
		authorized.PUT("/goals/:id", c.goal.Update)
		authorized.DELETE("/goals/:id", c.goal.Delete)

		authorized.GET("/units", c.content.ListUnits)
		authorized.GET("/units/:id", c.content.GetUnit)
		authorized.GET("/units/:id/progress", c.progress.GetUnitProgress)
		authorized.POST("/units/:id/progress", c.progress.Recalculate)
		authorized.GET("/themes", c.content.ListThemes)
		authorized.GET("/topics", c.content.ListTopics)
		authorized.GET("/topics/:id", c.content.GetTopic)

		authorized.GET("/exercises", c.content.ListExercises)
		authorized.GET("/exercises/:id", c.content.GetExercise)
		authorized.POST("/exercises/:id/submit", c.exercise.Submit)
		authorized.GET("/submissions", c.exercise.ListSubmissions)
		authorized.GET("/submissions/:id", c.exercise.GetSubmission)

		authorized.GET("/progress", c.progress.List)
		authorized.GET("/dashboard", c.dashboard.Get)
	}

	authoring := router.Group("/api/admin")
	authoring.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Teacher, model.Admin))
	{
		authoring.POST("/units", c.adminContent.CreateUnit)
		authoring.PUT("/units/:id", c.adminContent.UpdateUnit)
		authoring.DELETE("/units/:id", c.adminContent.DeleteUnit)
		authoring.POST("/themes", c.adminContent.CreateTheme)
		authoring.PUT("/themes/:id", c.adminContent.UpdateTheme)
		authoring.DELETE("/themes/:id", c.adminContent.DeleteTheme)
		authoring.POST("/topics", c.adminContent.CreateTopic)
		authoring.PUT("/topics/:id", c.adminContent.UpdateTopic)
		authoring.DELETE("/topics/:id", c.adminContent.DeleteTopic)
		authoring.POST("/exercises", c.adminContent.CreateExercise)
		authoring.PUT("/exercises/:id", c.adminContent.UpdateExercise)
		authoring.DELETE("/exercises/:id", c.adminContent.DeleteExercise)
		authoring.POST("/questions", c.adminContent.CreateQuestion)
		authoring.PUT("/questions/:id", c.adminContent.UpdateQuestion)
		authoring.DELETE("/questions/:id", c.adminContent.DeleteQuestion)
		authoring.PUT("/questions/:id/fill-blank", c.adminContent.UpsertFillBlankKey)
		authoring.POST("/answers", c.adminContent.CreateAnswer)
		authoring.PUT("/answers/:id", c.adminContent.UpdateAnswer)
		authoring.DELETE("/answers/:id", c.adminContent.DeleteAnswer)
		authoring.POST("/uploads/image", c.upload.UploadImage)
		authoring.POST("/uploads/audio", c.upload.UploadAudio)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.PUT("/users/:id", c.user.AdminUpdate)
		admin.DELETE("/users/:id", c.user.AdminDelete)
	}
}
