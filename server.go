package main

import (
	"time"

	"task_management_ms/config"
	"task_management_ms/controller"
	"task_management_ms/dtos/request"
	"task_management_ms/middleware"
	"task_management_ms/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Server struct {
	PasskeyController controller.IPasskeyController
	TaskController    controller.ITaskController
	Sessions          services.ISessionService
	LimiterStorage    fiber.Storage
	Logger            *zap.Logger
}

// NOTE: Server Constructor
func NewServer(
	passkeyController controller.IPasskeyController,
	taskController controller.ITaskController,
	sessions services.ISessionService,
	limiterStorage fiber.Storage,
	logger *zap.Logger,
) *Server {
	return &Server{
		PasskeyController: passkeyController,
		TaskController:    taskController,
		Sessions:          sessions,
		LimiterStorage:    limiterStorage,
		Logger:            logger,
	}
}

// NOTE: Start Fiber Server
func (s *Server) Start() *fiber.App {
	app := fiber.New()

	app.Use(middleware.RecoveryMiddleware())
	app.Use(middleware.LoggingMiddleware(s.Logger))

	contextPath := app.Group(config.Conf.Application.Server.ContextPath)
	apiVersion := contextPath.Group(config.Conf.Application.Server.ApiVersion)

	// Ceremony endpoints are the cheapest way to hammer the authenticator
	// database, so they carry a tighter limit than the rest of the API.
	authGroup := apiVersion.Group("/auth", middleware.RouteRateLimiter(10, 30*time.Second, s.LimiterStorage))
	authGroup.Post("/passkey/register/start", middleware.ValidateBody[request.StartRegistrationRequest](), s.PasskeyController.RegisterStart)
	authGroup.Post("/passkey/register/finish", middleware.ValidateBody[request.FinishCeremonyRequest](), s.PasskeyController.RegisterFinish)
	authGroup.Post("/passkey/login/start", middleware.ValidateBody[request.StartLoginRequest](), s.PasskeyController.LoginStart)
	authGroup.Post("/passkey/login/finish", middleware.ValidateBody[request.FinishCeremonyRequest](), s.PasskeyController.LoginFinish)
	authGroup.Post("/logout", s.PasskeyController.Logout)

	taskGroup := apiVersion.Group("/tasks", middleware.RequireAuth(s.Sessions))
	taskGroup.Get("/", s.TaskController.List)
	taskGroup.Post("/", middleware.ValidateBody[request.CreateTaskRequest](), s.TaskController.Create)
	taskGroup.Put("/:id/toggle", s.TaskController.Toggle)
	taskGroup.Delete("/:id", s.TaskController.Delete)

	return app
}
