package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task_management_ms/config"
	"task_management_ms/controller"
	"task_management_ms/middleware"
	"task_management_ms/repository"
	"task_management_ms/services"

	"github.com/IBM/sarama"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type service struct {
	//DB
	dbConnection *gorm.DB

	//Redis Client
	redisClient *redis.Client

	//Kafka producer
	kafkaProducer sarama.SyncProducer

	//WebAuthn Conf
	webAuthn *webauthn.WebAuthn

	//Logger
	logger *zap.Logger

	// Repository
	userRepository    repository.IUserRepository
	passkeyRepository repository.IPasskeyRepository
	sessionRepository repository.ISessionRepository
	taskRepository    repository.ITaskRepository

	// Ceremony stores, one per payload shape
	registrationCeremonies *services.CeremonyStore[services.RegistrationCeremony]
	signinCeremonies       *services.CeremonyStore[services.SigninCeremony]

	// Service
	sessionService services.ISessionService
	securityEvents services.ISecurityEventService
	passkeyService services.IPasskeyService
	taskService    services.ITaskService

	// Controller
	passkeyController controller.IPasskeyController
	taskController    controller.ITaskController
}

// NOTE: Service Start
func (s *service) Start() {
	log.Info("Opening database connection...")
	s.dbConnection = config.OpenDatabaseConnection(config.Conf.Application.Datasource.PrimaryURL)
	config.Migrate(config.Conf.Application.Datasource.PrimaryURL)

	log.Info("Opening redis connection...")
	s.redisClient = config.ConnectToRedis(config.Conf.Application.Redis.Host)

	log.Info("Connecting to kafka...")
	s.kafkaProducer = config.ConnectToKafka(config.Conf.Application.Kafka.Brokers)

	log.Info("WebAuthn config")
	s.webAuthn = config.InitWebAuthn()

	s.logger = config.InitLogger()
	middleware.InitValidator()

	// NOTE: Dependency Injections
	s.DependencyInjection()

	// NOTE: Start Fiber server...
	app := NewServer(
		s.passkeyController,
		s.taskController,
		s.sessionService,
		middleware.NewRedisLimiterStorage(s.redisClient),
		s.logger,
	).Start()

	log.Info("Server starting..")
	// NOTE: Server start with goroutine
	go func() {
		if err := app.Listen(config.Conf.Application.Server.Port); err != nil {
			log.Fatal("Server failed to start")
		}
	}()
	// NOTE: Keep OS signals for graceful shutdown
	s.gracefulShutdown(app)
}

// NOTE: Depency Injection Operation
func (s *service) DependencyInjection() {
	// NOTE: Repositories Injections
	s.userRepository = repository.NewUserRepository()
	s.passkeyRepository = repository.NewPasskeyRepository()
	s.sessionRepository = repository.NewSessionRepository()
	s.taskRepository = repository.NewTaskRepository()

	// NOTE: Ceremony stores
	s.registrationCeremonies = services.NewCeremonyStore[services.RegistrationCeremony](services.CeremonyTTL)
	s.signinCeremonies = services.NewCeremonyStore[services.SigninCeremony](services.CeremonyTTL)

	// NOTE: Services Injections
	sessionTTL := time.Duration(config.Conf.Application.Security.SessionValidityInSeconds) * time.Second
	s.sessionService = services.NewSessionService(s.dbConnection, s.sessionRepository, s.userRepository, sessionTTL)
	s.securityEvents = services.NewSecurityEventService(s.kafkaProducer)
	s.passkeyService = services.NewPasskeyService(
		s.webAuthn,
		s.dbConnection,
		s.userRepository,
		s.passkeyRepository,
		s.sessionService,
		s.securityEvents,
		s.registrationCeremonies,
		s.signinCeremonies,
	)
	s.taskService = services.NewTaskService(s.dbConnection, s.taskRepository)

	// NOTE: Controllers Injections
	s.passkeyController = controller.NewPasskeyController(s.passkeyService, s.sessionService)
	s.taskController = controller.NewTaskController(s.taskService)
}

// NOTE: Graceful shutdown operation
func (s *service) gracefulShutdown(app *fiber.App) {

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// NOTE:Server Shutdown when keep signal
	<-sigChan
	log.Info("Shutting down server...")
	// NOTE: Creating context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// NOTE: Shutdown Fiber server
	if err := app.Shutdown(); err != nil {
		log.Error("error while shutting down app", err)
	}

	if s.kafkaProducer != nil {
		if err := s.kafkaProducer.Close(); err != nil {
			log.Error("error while closing kafka producer", err)
		}
	}

	// NOTE: Shutdown Database connection
	done := make(chan bool)
	go func() {
		config.CloseDatabaseConnection(s.dbConnection)
		done <- true
	}()

	select {
	case <-ctx.Done():
		log.Error("timeout while shutting down database", ctx.Err())
	case <-done:
		log.Info("database is gracefully shutdown")
	}
}
