package main

import (
	"context"
	"fmt"
	"log"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/delivery/http/controllers"
	"moodjournal-service/internal/app/delivery/http/middlewares"
	"moodjournal-service/internal/app/delivery/http/routers"
	"moodjournal-service/internal/app/drivers/database"
	"moodjournal-service/internal/app/drivers/logger"
	"moodjournal-service/internal/app/drivers/messaging"
	"moodjournal-service/internal/app/drivers/storage"
	"moodjournal-service/internal/app/services/core/auth"
	"moodjournal-service/internal/app/services/core/entries"
	"moodjournal-service/internal/app/services/core/journals"
	"moodjournal-service/internal/app/services/core/moods"
	"moodjournal-service/internal/app/services/core/oauth"
	"moodjournal-service/internal/app/services/core/prompts"
	"moodjournal-service/internal/app/services/core/session"
	"moodjournal-service/internal/app/services/core/users"
	"moodjournal-service/internal/app/services/shared/jwtmanager"
	"moodjournal-service/internal/app/services/shared/locker"
	"moodjournal-service/internal/app/services/shared/mailer"
	"moodjournal-service/internal/app/services/shared/ratelimiter"
	"moodjournal-service/internal/app/services/shared/redis"
	minioStorage "moodjournal-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	ctx := context.Background()

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		Postgres:       database.NewPostgresPool(ctx, driverConfig),
		Redis:          database.NewRedisClient(ctx, driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	messaging.DeclareQueue(bootstrap.RabbitMQ, internalConfig.Mailer.RabbitMQQueue)
	storage.EnsureBucket(ctx, bootstrap.Minio, internalConfig.Export.BucketName)

	cleanupWorker, err := bootstrapingTheApp(ctx, bootstrap)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to bootstrap the app", zap.Error(err))
	}
	cleanupWorker.Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		bootstrap.Logger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrap.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrap.Logger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootstrap.Logger.Error("Server forced to shutdown", zap.Error(err))
	}
	cleanupWorker.Stop()

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) (*oauth.StateCleanupWorker, error) {
	log := bootstrap.Logger
	cfg := bootstrap.InternalConfig

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	exportStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, cfg.Mailer.RabbitMQQueue, log)
	if err != nil {
		return nil, err
	}
	tokenManager, err := jwtmanager.NewJWTManager(cfg, log)
	if err != nil {
		return nil, err
	}
	sessionService := session.NewSessionService(redisRepository, log)

	// Repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.Postgres, log)
	journalRepository := journals.NewJournalPostgresRepository(bootstrap.Postgres, log)
	entryRepository := entries.NewEntryPostgresRepository(bootstrap.Postgres, log)
	moodRepository := moods.NewMoodPostgresRepository(bootstrap.Postgres, log)
	oauthStateRepository := oauth.NewOAuthStatePostgresRepository(bootstrap.Postgres, log)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, sessionService, tokenManager, mailerService, cfg, log)
	oauthUsecase := oauth.NewOAuthUsecase(oauthStateRepository, oauth.NewGoogleProvider(cfg), userRepository, authUsecase, cfg, log)
	userUsecase := users.NewUserUsecase(userRepository, journalRepository, entryRepository, sessionService, mailerService, exportStorage, cfg, log)
	journalUsecase := journals.NewJournalUsecase(journalRepository, entryRepository, log)
	entryUsecase := entries.NewEntryUsecase(entryRepository, journalRepository, moodRepository, log)
	insightUsecase := entries.NewInsightUsecase(entryRepository, cfg, log)
	moodUsecase := moods.NewMoodUsecase(moodRepository, lockerService, log)

	generator, err := prompts.NewGeminiGenerator(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	promptUsecase := prompts.NewPromptUsecase(generator, resourceLimiter, cfg, log)

	seeded, err := moodUsecase.SeedMoodsIfEmpty(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("Mood catalog ready", zap.Int("seeded", seeded))

	// Delivery
	mw := middlewares.NewMiddlewares(log, authUsecase, cfg)
	loginLimiter := middlewares.NewRateLimiter(
		cfg.App.LoginRateLimitPerMinute,
		time.Minute,
		time.Duration(cfg.App.LoginBlockDurationInMinute)*time.Minute,
		log,
	)

	routers.SetupRoutes(bootstrap.Router, cfg, mw, loginLimiter, &routers.Controllers{
		Auth:    controllers.NewAuthController(log, authUsecase, cfg),
		OAuth:   controllers.NewOAuthController(log, oauthUsecase, cfg),
		User:    controllers.NewUserController(log, userUsecase, cfg),
		Journal: controllers.NewJournalController(log, journalUsecase),
		Entry:   controllers.NewEntryController(log, entryUsecase, cfg),
		Insight: controllers.NewInsightController(log, insightUsecase),
		Mood:    controllers.NewMoodController(log, moodUsecase),
		Prompt:  controllers.NewPromptController(log, promptUsecase),
		Health:  controllers.NewHealthController(log, bootstrap.Postgres, redisRepository),
	})
	return oauth.NewStateCleanupWorker(log, cfg, lockerService, oauthStateRepository), nil
}
