package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"taskboard/internal/application/auth"
	"taskboard/internal/application/board"
	"taskboard/internal/config"
	infraauth "taskboard/internal/infrastructure/auth"
	httprouter "taskboard/internal/infrastructure/http"
	"taskboard/internal/infrastructure/http/handlers"
	"taskboard/internal/infrastructure/http/middleware"
	"taskboard/internal/infrastructure/persistence/db"
	"taskboard/internal/infrastructure/persistence/postgres"
	"taskboard/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	queries := db.New(pool)
	userRepo := postgres.NewUserRepository(queries)
	projectRepo := postgres.NewProjectRepository(queries)
	taskRepo := postgres.NewTaskRepository(queries, pool)
	tokenStore := postgres.NewTokenStore(queries)

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})

	pemBytes, err := cfg.LoadJWTPrivateKey()
	if err != nil {
		log.Fatal().Err(err).Msg("load JWT private key")
	}
	privateKey, err := infraauth.LoadRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("parse JWT private key")
	}
	issuer := infraauth.NewTokenIssuer(privateKey, cfg.JWT.Issuer, cfg.JWT.Audience)

	registerUC := auth.NewRegisterUser(userRepo, hasher, issuer, cfg.JWT.AccessExpiry)
	loginUC := auth.NewLogin(userRepo, hasher, issuer, tokenStore, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	refreshUC := auth.NewRefresh(userRepo, issuer, tokenStore, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	logoutUC := auth.NewLogout(tokenStore)

	createProjectUC := board.NewCreateProject(projectRepo, taskRepo)
	listProjectsUC := board.NewListProjects(projectRepo, taskRepo)
	getProjectUC := board.NewGetProject(projectRepo, taskRepo)
	updateProjectUC := board.NewUpdateProject(projectRepo, taskRepo)
	removeProjectUC := board.NewRemoveProject(projectRepo)
	createTaskUC := board.NewCreateTask(projectRepo, taskRepo)
	listTasksUC := board.NewListTasks(taskRepo)
	getTaskUC := board.NewGetTask(taskRepo)
	updateTaskUC := board.NewUpdateTask(taskRepo)
	removeTaskUC := board.NewRemoveTask(projectRepo, taskRepo)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))
	corsMiddleware := middleware.CORS(cfg.CORS.AllowedOrigins, nil, nil)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, refreshUC, logoutUC, log)
	projectsHandler := handlers.NewProjectsHandler(
		createProjectUC, listProjectsUC, getProjectUC, updateProjectUC, removeProjectUC,
		createTaskUC, listTasksUC, getTaskUC, updateTaskUC, removeTaskUC,
		log,
	)
	usersHandler := handlers.NewUsersHandler(userRepo)
	requireJWT := middleware.NewAuthValidator(issuer).Handler
	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:     authHandler,
		ProjectsHandler: projectsHandler,
		UsersHandler:    usersHandler,
		HealthHandler:   healthHandler,
		RequireJWT:      requireJWT,
		Log:             log,
		Secure:          secureMiddleware,
		IPRateLimit:     ipLimit,
		CORS:            corsMiddleware,
		Metrics:         true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
