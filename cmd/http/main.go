package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"preplan-service/internal/app/config"
	"preplan-service/internal/app/delivery/http/middlewares"
	"preplan-service/internal/app/delivery/http/routers"
	"preplan-service/internal/app/drivers/database"
	"preplan-service/internal/app/drivers/logger"
	"preplan-service/internal/app/drivers/messaging"
	"preplan-service/internal/app/drivers/storage"
	"preplan-service/internal/app/services/core/auth"
	"preplan-service/internal/app/services/core/catalog"
	"preplan-service/internal/app/services/core/imports"
	"preplan-service/internal/app/services/core/routines"
	"preplan-service/internal/app/services/core/swaps"
	"preplan-service/internal/app/services/core/users"
	"preplan-service/internal/app/services/shared/redis"
	"preplan-service/internal/app/services/shared/sessions"
	minioStorage "preplan-service/internal/app/services/shared/storage"
	"preplan-service/internal/app/services/shared/swapqueue"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		MongoDB:        mongoClient.Database(driverConfig.MongoDB.DbName),
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Minio:          minioClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("HTTP server listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := sessions.NewSessionService(redisRepository)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	queuePublisher, err := swapqueue.NewQueueService(bootstrap.RabbitMQ, bootstrap.Logger)
	if err != nil {
		log.Fatalf("Error setting up the swap event queue: %v", err)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Auth
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// User
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService)
	userController := users.NewUserController(bootstrap.Logger, userUsecase)

	// Catalog
	feedClient := catalog.NewFeedClient(
		bootstrap.InternalConfig.Catalog.FeedURL,
		time.Duration(bootstrap.InternalConfig.Catalog.FetchTimeoutSecs)*time.Second,
		bootstrap.Logger,
	)
	sectionMongoRepository := catalog.NewSectionMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	catalogUsecase := catalog.NewCatalogUsecase(feedClient, sectionMongoRepository, sessionService, bootstrap.Logger)
	catalogController := catalog.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Routine
	routineMongoRepository := routines.NewRoutineMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	routineUsecase := routines.NewRoutineUsecase(routineMongoRepository, sectionMongoRepository, sessionService)
	routineController := routines.NewRoutineController(bootstrap.Logger, routineUsecase)

	// Swap
	swapMongoRepository := swaps.NewSwapMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	swapUsecase := swaps.NewSwapUsecase(swapMongoRepository, sectionMongoRepository, sessionService, queuePublisher, bootstrap.Logger)
	swapController := swaps.NewSwapController(bootstrap.Logger, swapUsecase)

	// Import
	facultyMongoRepository := imports.NewFacultyMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	importUsecase := imports.NewImportUsecase(
		facultyMongoRepository,
		sessionService,
		objectStorage,
		bootstrap.DriverConfig.Minio.BucketName,
		bootstrap.Logger,
	)
	importController := imports.NewImportController(bootstrap.Logger, importUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		catalogController,
		routineController,
		swapController,
		importController,
	)
}
