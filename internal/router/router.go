package router

import (
	"net/http"

	"gymtrack/internal/config"
	"gymtrack/internal/handler"
	"gymtrack/internal/middleware"
	"gymtrack/internal/repository"
	"gymtrack/internal/service"
	"gymtrack/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRouter wires middleware, services and routes.
func SetupRouter(cfg *config.Config, db *gorm.DB, jwtManager *utils.JWTManager, logger *logrus.Logger) *gin.Engine {
	if cfg.Server.ProductionMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.CORS(cfg))

	userRepo := repository.NewUserRepository(db)

	workoutService := service.NewWorkoutService(db, logger)
	userService := service.NewUserService(db, workoutService, logger)
	authService := service.NewAuthService(db, jwtManager)
	exerciseService := service.NewExerciseService(db)
	logService := service.NewLogService(db)
	dashboardService := service.NewDashboardService(db)

	userHandler := handler.NewUserHandler(userService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)
	exerciseHandler := handler.NewExerciseHandler(exerciseService, logger)
	workoutHandler := handler.NewWorkoutHandler(workoutService, logService, logger)
	logHandler := handler.NewLogHandler(logService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public: registration and login.
		api.POST("/users", userHandler.Create)
		api.POST("/users/login", authHandler.Login)

		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(jwtManager, userRepo))
		{
			users := authorized.Group("/users")
			{
				users.GET("", userHandler.List)
				users.GET("/me", userHandler.Me)
				users.PUT("/me", userHandler.UpdateMe)
				users.DELETE("/me", userHandler.DeleteMe)
				users.PUT("/me/password", authHandler.ChangePassword)
				users.GET("/:id", userHandler.Get)
				users.GET("/:id/logs", userHandler.ListLogs)
			}

			exercises := authorized.Group("/exercises")
			{
				exercises.POST("", exerciseHandler.Create)
				exercises.GET("", exerciseHandler.List)
				exercises.GET("/cardio", exerciseHandler.Cardio)
				exercises.GET("/search/:name", exerciseHandler.Search)
				exercises.GET("/muscle/:group", exerciseHandler.ByMuscleGroup)
				exercises.GET("/:id", exerciseHandler.Get)
				exercises.PUT("/:id", exerciseHandler.Update)
				exercises.DELETE("/:id", exerciseHandler.Delete)
			}

			workouts := authorized.Group("/workouts")
			{
				workouts.POST("", workoutHandler.Create)
				workouts.GET("", workoutHandler.List)
				workouts.GET("/:id", workoutHandler.Get)
				workouts.PUT("/:id", workoutHandler.Update)
				workouts.DELETE("/:id", workoutHandler.Delete)
				workouts.GET("/:id/exercises", workoutHandler.ListExercises)
				workouts.POST("/:id/exercises", workoutHandler.AddExercises)
				workouts.GET("/:id/logs", workoutHandler.ListLogs)
				workouts.POST("/:id/logs", workoutHandler.AddLogs)
			}

			logs := authorized.Group("/logs")
			{
				logs.POST("", logHandler.Create)
				logs.GET("/:id", logHandler.Get)
				logs.PUT("/:id", logHandler.Update)
				logs.DELETE("/:id", logHandler.Delete)
			}

			authorized.GET("/dashboard/:user_id", dashboardHandler.Get)
		}
	}

	return r
}
