package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"pulpit/internal/config"
	"pulpit/internal/handler"
	"pulpit/internal/middleware"
	"pulpit/internal/questions"
	"pulpit/internal/repository/postgres"
	"pulpit/internal/service"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	tables := postgres.NewTableNames(cfg.TablePrefix)

	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	churchRepo := postgres.NewChurchRepository(repoConfig)
	speakerRepo := postgres.NewSpeakerRepository(repoConfig)
	userRepo := postgres.NewUserRepository(repoConfig)
	sermonRepo := postgres.NewSermonRepository(repoConfig)
	speakerPrefRepo := postgres.NewSpeakerPreferenceRepository(repoConfig)
	speakerFollowerRepo := postgres.NewSpeakerFollowerRepository(repoConfig)
	churchFollowerRepo := postgres.NewChurchFollowerRepository(repoConfig)
	sermonPrefRepo := postgres.NewSermonPreferenceRepository(repoConfig)
	featuredSermonRepo := postgres.NewFeaturedSermonRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	questionRegistry, err := questions.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load question registry: %v", err)
	}
	logger.Info("question registry loaded")

	churchService := service.NewChurchService(churchRepo, logger)
	speakerService := service.NewSpeakerService(speakerRepo, logger)
	userService := service.NewUserService(userRepo, logger)
	sermonService := service.NewSermonService(sermonRepo, logger)
	speakerFollowerService := service.NewSpeakerFollowerService(speakerFollowerRepo, logger)
	churchFollowerService := service.NewChurchFollowerService(churchFollowerRepo, logger)
	sermonPrefService := service.NewSermonPreferenceService(sermonPrefRepo, logger)
	featuredSermonService := service.NewFeaturedSermonService(featuredSermonRepo, sermonRepo, logger)
	onboardingService := service.NewOnboardingService(
		userRepo,
		speakerRepo,
		speakerPrefRepo,
		questionRegistry,
		txManager,
		logger,
	)

	churchHandler := handler.NewChurchHandler(churchService, logger)
	speakerHandler := handler.NewSpeakerHandler(speakerService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	sermonHandler := handler.NewSermonHandler(sermonService, logger)
	speakerFollowerHandler := handler.NewSpeakerFollowerHandler(speakerFollowerService, logger)
	churchFollowerHandler := handler.NewChurchFollowerHandler(churchFollowerService, logger)
	sermonPrefHandler := handler.NewSermonPreferenceHandler(sermonPrefService, logger)
	featuredSermonHandler := handler.NewFeaturedSermonHandler(featuredSermonService, logger)
	onboardingHandler := handler.NewOnboardingHandler(onboardingService, logger)
	healthHandler := handler.NewHealthHandler(pool)

	logger.Info("services initialized")

	// Go 1.22+ enhanced routing patterns
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", healthHandler.Check)

	mux.HandleFunc("GET /api/churches", churchHandler.ListChurches)
	mux.HandleFunc("POST /api/churches", churchHandler.CreateChurch)
	mux.HandleFunc("GET /api/churches/{id}", churchHandler.GetChurch)
	mux.HandleFunc("PUT /api/churches/{id}", churchHandler.UpdateChurch)
	mux.HandleFunc("DELETE /api/churches/{id}", churchHandler.DeleteChurch)
	mux.HandleFunc("GET /api/churches/{id}/featured-sermons", featuredSermonHandler.ListForChurch)
	mux.HandleFunc("POST /api/churches/{id}/featured-sermons", featuredSermonHandler.Create)

	mux.HandleFunc("GET /api/speakers", speakerHandler.ListSpeakers)
	mux.HandleFunc("POST /api/speakers", speakerHandler.CreateSpeaker)
	mux.HandleFunc("GET /api/speakers/{id}", speakerHandler.GetSpeaker)
	mux.HandleFunc("PUT /api/speakers/{id}", speakerHandler.UpdateSpeaker)
	mux.HandleFunc("DELETE /api/speakers/{id}", speakerHandler.DeleteSpeaker)

	mux.HandleFunc("GET /api/users", userHandler.ListUsers)
	mux.HandleFunc("POST /api/users", userHandler.CreateUser)
	mux.HandleFunc("GET /api/users/{id}", userHandler.GetUser)
	mux.HandleFunc("PUT /api/users/{id}", userHandler.UpdateUser)
	mux.HandleFunc("DELETE /api/users/{id}", userHandler.DeleteUser)

	mux.HandleFunc("GET /api/sermons", sermonHandler.ListSermons)
	mux.HandleFunc("POST /api/sermons", sermonHandler.CreateSermon)
	mux.HandleFunc("GET /api/sermons/{id}", sermonHandler.GetSermon)
	mux.HandleFunc("PUT /api/sermons/{id}", sermonHandler.UpdateSermon)
	mux.HandleFunc("DELETE /api/sermons/{id}", sermonHandler.DeleteSermon)

	mux.HandleFunc("GET /api/speaker-followers", speakerFollowerHandler.List)
	mux.HandleFunc("POST /api/speaker-followers", speakerFollowerHandler.Follow)
	mux.HandleFunc("GET /api/speaker-followers/{id}", speakerFollowerHandler.Get)
	mux.HandleFunc("DELETE /api/speaker-followers/{id}", speakerFollowerHandler.Unfollow)

	mux.HandleFunc("GET /api/church-followers", churchFollowerHandler.List)
	mux.HandleFunc("POST /api/church-followers", churchFollowerHandler.Follow)
	mux.HandleFunc("GET /api/church-followers/{id}", churchFollowerHandler.Get)
	mux.HandleFunc("DELETE /api/church-followers/{id}", churchFollowerHandler.Unfollow)

	mux.HandleFunc("GET /api/sermon-preferences", sermonPrefHandler.List)
	mux.HandleFunc("POST /api/sermon-preferences", sermonPrefHandler.Create)
	mux.HandleFunc("GET /api/sermon-preferences/{id}", sermonPrefHandler.Get)
	mux.HandleFunc("PUT /api/sermon-preferences/{id}", sermonPrefHandler.Update)
	mux.HandleFunc("DELETE /api/sermon-preferences/{id}", sermonPrefHandler.Delete)

	mux.HandleFunc("GET /api/featured-sermons", featuredSermonHandler.List)
	mux.HandleFunc("GET /api/featured-sermons/{id}", featuredSermonHandler.Get)
	mux.HandleFunc("PUT /api/featured-sermons/{id}", featuredSermonHandler.Update)
	mux.HandleFunc("DELETE /api/featured-sermons/{id}", featuredSermonHandler.Delete)

	mux.HandleFunc("GET /api/onboarding/questions", onboardingHandler.GetQuestions)
	mux.HandleFunc("POST /api/onboarding/submit", onboardingHandler.Submit)
	mux.HandleFunc("GET /api/onboarding/recommendations/{user_id}", onboardingHandler.GetRecommendations)

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → RequestLogger → Routes
	var httpHandler http.Handler = mux
	httpHandler = middleware.RequestLogger(logger)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
