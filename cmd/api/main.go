package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"myflix/internal/catalog"
	"myflix/internal/config"
	"myflix/internal/db"
	"myflix/internal/domain"
	apihttp "myflix/internal/http"
	"myflix/internal/repository"
	"myflix/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}
	if err := db.RunMigrations(ctx, cfg.DatabaseURL); err != nil {
		logger.Fatal("db migrations", zap.Error(err))
	}

	var movies catalog.Store = catalog.NewMemoryStore([]domain.Movie{})
	if cfg.MongoURL != "" {
		mongoCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		client, err := mongo.Connect(mongoCtx, options.Client().ApplyURI(cfg.MongoURL))
		cancel()
		if err != nil {
			logger.Fatal("mongo connect", zap.Error(err))
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
		movies = catalog.NewMongoStore(client, cfg.MongoDB)
	} else {
		logger.Warn("mongo url not configured, serving an empty in-memory catalog")
	}

	loginWindow := time.Duration(cfg.LoginWindowMinutes) * time.Minute
	var loginLimiter service.LoginLimiter = service.NewLoginLimiter(loginWindow, cfg.LoginMaxAttempts)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginLimiter(redisClient, loginWindow, cfg.LoginMaxAttempts)
		}
		cancel()
	}

	userRepo := repository.NewPgUserRepository(pool)
	jwtSvc := service.NewJWTService(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	userSvc := service.NewUserService(logger, userRepo, service.NewPasswordHasher())
	favSvc := service.NewFavoritesService(logger, userRepo, movies)

	userHandler := apihttp.NewUserHandler(logger, userSvc, jwtSvc, loginLimiter)
	favHandler := apihttp.NewFavoritesHandler(logger, favSvc)
	movieHandler := apihttp.NewMovieHandler(logger, movies)
	router := apihttp.NewRouter(logger, jwtSvc, userHandler, favHandler, movieHandler, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
