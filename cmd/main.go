package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/dongmunseodap/internal/config"
	"github.com/shenikar/dongmunseodap/internal/geo"
	"github.com/shenikar/dongmunseodap/internal/geocoder"
	v1 "github.com/shenikar/dongmunseodap/internal/handler/http/v1"
	"github.com/shenikar/dongmunseodap/internal/maprender"
	"github.com/shenikar/dongmunseodap/internal/observability"
	"github.com/shenikar/dongmunseodap/internal/repository"
	"github.com/shenikar/dongmunseodap/internal/seed"
	"github.com/shenikar/dongmunseodap/internal/service"
	"github.com/shenikar/dongmunseodap/internal/storage"
	"github.com/shenikar/dongmunseodap/pkg/logger"
	"github.com/shenikar/dongmunseodap/pkg/postgres"
	redisclient "github.com/shenikar/dongmunseodap/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/dongmunseodap/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Dongmunseodap Traffic Reports API
// @version 1.0
// @description Crowd-sourced traffic reports from drivers and transit passengers, with map state and UI state for the client.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	// Инициализация Redis клиента (слоты или очередь команд карты)
	var redisClient *redis.Client
	if cfg.UsesRedis() {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPoolSize)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Выбор бэкенда хранилища слотов
	var backend storage.Backend
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")
		backend = storage.NewPostgresBackend(dbpool)
	case config.StorageRedis:
		backend = storage.NewRedisBackend(redisClient)
	default:
		log.Warn("Using in-memory storage, reports are lost on restart")
		backend = storage.NewMemoryBackend()
	}
	store := storage.New(backend, cfg.StorageNamespace, log, metrics)

	// Тестовые данные записываются только в пустое хранилище
	gen := seed.NewGenerator(rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), clock.Now)
	if cfg.SeedMockData {
		if _, err := seed.InitializeStorage(ctx, store, gen, cfg.SeedReportCount, log); err != nil {
			log.Fatalf("Failed to seed storage: %v", err)
		}
	}

	// Инициализация репозитория и хранилищ состояния
	reportRepo := repository.NewReportRepository(store, clock, cfg.UserID)
	mapStore := service.NewMapStore(log)
	reportStore := service.NewReportStore(reportRepo, log, metrics, service.ReportStoreOptions{
		Clock:          clock,
		SimulatedDelay: cfg.SimulatedDelay,
		Observer:       mapStore,
	})
	uiStore := service.NewUIStore(clock, cfg.ToastDuration)

	if cfg.SeedMockData && cfg.SeedAlertCount > 0 {
		mapStore.SetAlerts(ctx, gen.Alerts(cfg.SeedAlertCount))
	}

	// Виджет карты получает команды через очередь Redis
	var worker *maprender.Worker
	if cfg.MapWidgetURL != "" {
		mapStore.AttachRenderer(ctx, maprender.NewRedisRenderer(redisClient, clock, metrics))
		mapStore.SetMapLoaded(true)
		worker = maprender.NewWorker(redisClient, log, cfg, clock, metrics)
		worker.Start(ctx)
	}

	// Обратное геокодирование через Mapbox с LRU-кешем
	var reverseGeocoder geo.ReverseGeocoder
	if cfg.MapboxToken != "" {
		mapbox := geocoder.NewMapboxClient(cfg.MapboxToken, cfg.MapboxLanguage, cfg.MapboxTimeout, log, metrics)
		reverseGeocoder = geocoder.NewCachedGeocoder(mapbox, cfg.MapboxCacheSize, metrics)
	} else {
		log.Info("MAPBOX_TOKEN not set, addresses fall back to coordinates")
	}

	if err := reportStore.LoadReports(ctx); err != nil {
		log.WithError(err).Warn("Initial report load failed")
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Reports:  reportStore,
		Map:      mapStore,
		UI:       uiStore,
		Settings: store.Settings(),
		Geocoder: reverseGeocoder,
		Clock:    clock,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Уничтожаем карту и дожидаемся доставки destroy до остановки воркера
	mapStore.DetachRenderer(shutdownCtx)
	if worker != nil {
		drained := worker.Shutdown(shutdownCtx)
		log.WithField("commands", drained).Info("Map render worker drained")
	}
	cancel()

	log.Info("Server gracefully stopped")
}
