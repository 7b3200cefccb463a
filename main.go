package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/naludev/cohabitdb/handler"
	"github.com/naludev/cohabitdb/middleware"
	"github.com/naludev/cohabitdb/repository"
	"github.com/naludev/cohabitdb/services"
	"github.com/naludev/cohabitdb/usecase"
	"github.com/naludev/cohabitdb/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"REDIS_URL",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitLogging()
	utils.InitValidator()
	services.InitJWT()
}

func setupRouter(mongoClient *mongo.Client, revoker *services.RedisTokenRevoker) *gin.Engine {
	userRepo := repository.GetUserRepo(mongoClient)
	groupRepo := repository.GetGroupRepo(mongoClient)
	taskRepo := repository.GetTaskRepo(mongoClient)
	calendarRepo := repository.GetCalendarRepo(mongoClient)
	notificationRepo := repository.GetNotificationRepo(mongoClient)
	sessionRepo := repository.GetSessionRepo(mongoClient)

	userService := usecase.NewUserService(userRepo)
	groupService := usecase.NewGroupService(groupRepo, userRepo, calendarRepo)
	taskService := usecase.NewTaskService(taskRepo, groupRepo, calendarRepo)
	calendarService := usecase.NewCalendarService(calendarRepo)
	notificationService := usecase.NewNotificationService(notificationRepo)

	userHandler := handler.NewUserHandler(userService)
	groupHandler := handler.NewGroupHandler(groupService)
	taskHandler := handler.NewTaskHandler(taskService, userService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	notificationHandler := handler.NewNotificationHandler(notificationService)
	sessionHandler := handler.NewSessionHandler(userService, notificationService, sessionRepo)
	healthHandler := handler.NewHealthHandler(mongoClient, revoker)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		public.POST("/users", userHandler.Register)
		public.POST("/login", sessionHandler.Login)
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", sessionHandler.Logout)
		protected.GET("/session/status", sessionHandler.SessionStatus)

		protected.GET("/users/:id", userHandler.GetUserByID)
		protected.GET("/user/:assignedTo", taskHandler.GetAssignedUser)

		groups := protected.Group("/groups")
		{
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("", groupHandler.GetAllGroups)
			groups.GET("/:id", groupHandler.GetGroupByID)
			groups.PUT("/:id", groupHandler.UpdateGroup)
			groups.DELETE("/:id", groupHandler.DeleteGroup)
			groups.POST("/:id/users", groupHandler.AddUserToGroup)
			groups.POST("/:id/users/email", groupHandler.AddUserToGroupByEmail)
			groups.DELETE("/:id/users/:userId", groupHandler.RemoveUserFromGroup)
			groups.GET("/user/:userId", groupHandler.GetGroupsByUserID)
			groups.POST("/users", groupHandler.GetUsersByIDs)
		}

		tasks := protected.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.GetAllTasks)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PUT("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}

		calendars := protected.Group("/calendars")
		{
			calendars.POST("", calendarHandler.CreateCalendar)
			calendars.GET("/:id", calendarHandler.GetCalendarByID)
		}

		notifications := protected.Group("/notifications")
		{
			notifications.GET("/:id", notificationHandler.GetAllNotifications)
			notifications.GET("/:id/:notificationId", notificationHandler.GetNotificationByID)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.PUT("/:id/:notificationId/read", notificationHandler.MarkNotificationAsRead)
		}
	}

	return router
}

func main() {
	mongoClient, err := utils.NewMongoClient(os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := repository.SetupIndexes(mongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	revoker, err := services.NewRedisTokenRevoker(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	services.Revoker = revoker

	router := setupRouter(mongoClient, revoker)

	port := utils.GetEnvAsString("PORT", "3000")
	serverAddr := fmt.Sprintf(":%s", port)
	slog.Info("server starting", "addr", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
