package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayhub/internal/domain/contract"
	handlerHttp "stayhub/internal/handler/http"
	"stayhub/internal/infrastructure/config"
	"stayhub/internal/infrastructure/logger"
	kvrepo "stayhub/internal/infrastructure/repository/kv"
	"stayhub/internal/infrastructure/seed"
	"stayhub/internal/infrastructure/store"
	"stayhub/internal/infrastructure/uuidgen"
	"stayhub/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	appConfig := config.NewConfig()
	appLogger := logger.NewStdLogger()
	ctx := context.Background()

	// Select the blob-store backend
	var kv contract.KVStore
	switch appConfig.StoreBackend {
	case config.BackendRedis:
		if appConfig.RedisURL == "" {
			log.Fatal("REDIS_URL environment variable not set")
		}
		rdb, err := store.NewRedisFromURL(ctx, appConfig.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		kv = store.NewRedisStore(rdb, appLogger)
	case config.BackendMongo:
		if appConfig.MongoURI == "" {
			log.Fatal("MONGODB_URI environment variable not set")
		}
		client, err := store.NewMongoClient(ctx, appConfig.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer client.Disconnect(ctx)
		kv = store.NewMongoStore(client.Database(appConfig.MongoDBName), appLogger)
	case config.BackendSQLite:
		sqliteStore, err := store.NewSQLiteStore(appConfig.SQLitePath, appLogger)
		if err != nil {
			log.Fatalf("Failed to open SQLite store: %v", err)
		}
		defer sqliteStore.Close()
		kv = sqliteStore
	default:
		kv = store.NewMemoryStore(appLogger)
	}

	// Populate default data the first time the store is empty
	if appConfig.SeedOnStart {
		seed.Initialize(ctx, kv, appLogger)
	}

	// Dependency Injection: Repositories
	uuidGenerator := uuidgen.NewGenerator()
	userRepo := kvrepo.NewUserRepository(kv, uuidGenerator)
	homestayRepo := kvrepo.NewHomestayRepository(kv, uuidGenerator)
	bookingRepo := kvrepo.NewBookingRepository(kv, uuidGenerator)
	attractionRepo := kvrepo.NewAttractionRepository(kv, uuidGenerator)
	reviewRepo := kvrepo.NewReviewRepository(kv, uuidGenerator)
	sessionRepo := kvrepo.NewSessionRepository(kv)

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, sessionRepo, appLogger)
	homestayUsecase := usecase.NewHomestayUsecase(homestayRepo, appLogger)
	bookingUsecase := usecase.NewBookingUsecase(bookingRepo, homestayRepo, appLogger)
	attractionUsecase := usecase.NewAttractionUsecase(attractionRepo, appLogger)
	reviewUsecase := usecase.NewReviewUsecase(reviewRepo, appLogger)
	statsUsecase := usecase.NewStatsUsecase(userRepo, homestayRepo, bookingRepo, attractionRepo)

	// Setup API routes
	router := gin.Default()
	appRouter := handlerHttp.NewRouter(
		authUsecase, homestayUsecase, bookingUsecase,
		attractionUsecase, reviewUsecase, statsUsecase,
		userRepo, appConfig.RateLimit,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	log.Printf("Server running on port %s", appConfig.Port)
	if err := router.Run(":" + appConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
