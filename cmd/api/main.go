package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"dogwalker/internal/adapter/api"
	"dogwalker/internal/adapter/api/handler"
	apimiddleware "dogwalker/internal/adapter/api/middleware"
	"dogwalker/internal/adapter/api/router"
	"dogwalker/internal/adapter/repository"
	"dogwalker/internal/infrastructure/auth"
	"dogwalker/internal/infrastructure/geocode"
	"dogwalker/internal/infrastructure/mongodb"
	"dogwalker/internal/infrastructure/storage"
	"dogwalker/internal/usecase"
	"dogwalker/pkg/config"
	"dogwalker/pkg/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	db, disconnect, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := disconnect(ctx); err != nil {
			log.Printf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	uploadStore, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	validate := validation.New()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)
	geocodeClient := geocode.NewClient(cfg.MapQuestAPIKey)

	userRepo := repository.NewMongoUserRepository(db)
	studentRepo := repository.NewMongoStudentRepository(db)
	providerRepo := repository.NewMongoProviderRepository(db)
	walkerRepo := repository.NewMongoWalkerRepository(db)
	professionalRepo := repository.NewMongoProfessionalRepository(db)
	uploadRepo := repository.NewMongoUploadRepository(db)

	userUseCase := usecase.NewUserUseCase(userRepo, validate)
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtManager)
	studentUseCase := usecase.NewStudentUseCase(studentRepo, validate)
	providerUseCase := usecase.NewProviderUseCase(providerRepo, validate)
	walkerUseCase := usecase.NewWalkerUseCase(walkerRepo, validate)
	professionalUseCase := usecase.NewProfessionalUseCase(professionalRepo, validate)
	uploadUseCase := usecase.NewUploadUseCase(uploadStore, uploadRepo)

	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit("10M"))

	e.Validator = api.NewValidator(validate)

	authMiddleware := apimiddleware.NewAuthMiddleware(jwtManager)
	loginRateLimit := apimiddleware.NewLoginRateLimit()

	router.Setup(e, uploadStore.Dir())
	router.SetupUserRouter(e, handler.NewUserHandler(userUseCase), handler.NewAuthHandler(authUseCase), authMiddleware, loginRateLimit)
	router.SetupStudentRouter(e, handler.NewStudentHandler(studentUseCase))
	router.SetupProviderRouter(e, handler.NewProviderHandler(providerUseCase))
	router.SetupWalkerRouter(e, handler.NewWalkerHandler(walkerUseCase))
	router.SetupProfessionalRouter(e, handler.NewProfessionalHandler(professionalUseCase))
	router.SetupGeoRouter(e, handler.NewGeoHandler(geocodeClient))
	router.SetupUploadRouter(e, handler.NewUploadHandler(uploadUseCase))

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
