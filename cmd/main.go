package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	createActivityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_activity"
	createPeriodHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/create_period"
	deleteActivityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_activity"
	deletePeriodHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/delete_period"
	getActivitiesHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_activities"
	getActivityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_activity"
	getAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_availability"
	getCalendarHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_calendar"
	getPeriodHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_period"
	healthHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/health"
	listPeriodsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/list_periods"
	updateActivityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_activity"
	updatePeriodHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/update_period"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	activityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/activity"
	periodRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/period"
	activitiesService "github.com/m04kA/SMC-AvailabilityService/internal/service/activities"
	periodsService "github.com/m04kA/SMC-AvailabilityService/internal/service/periods"
	getAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
	getCalendarUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/migrator"
	"github.com/m04kA/SMC-AvailabilityService/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-AvailabilityService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции
	if cfg.Database.AutoMigrate {
		version, err := migrator.Up(db, cfg.Database.MigrationsPath)
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database schema is at version %d", version)
	}

	// Обёртка считает длительность запросов; без метрик работает как прокси
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)

	// Инициализируем репозитории
	activityRepository := activityRepo.NewRepository(wrappedDB)
	periodRepository := periodRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	activitySvc := activitiesService.NewService(activityRepository, periodRepository, txMgr, log)
	periodSvc := periodsService.NewService(periodRepository, activityRepository, txMgr, log)

	// Инициализируем use cases
	var availabilityMetrics getAvailabilityUC.MetricsRecorder
	if metricsCollector != nil {
		availabilityMetrics = metricsCollector
	}

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		activityRepository,
		periodRepository,
		availabilityMetrics,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		activityRepository,
		periodRepository,
		availabilityMetrics,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(db, log)

	listActivities := getActivitiesHandler.NewHandler(activitySvc, log)
	createActivity := createActivityHandler.NewHandler(activitySvc, log)
	getActivity := getActivityHandler.NewHandler(activitySvc, log)
	updateActivity := updateActivityHandler.NewHandler(activitySvc, log)
	deleteActivity := deleteActivityHandler.NewHandler(activitySvc, log)

	listPeriods := listPeriodsHandler.NewHandler(periodSvc, log)
	createPeriod := createPeriodHandler.NewHandler(periodSvc, log)
	getPeriod := getPeriodHandler.NewHandler(periodSvc, log)
	updatePeriod := updatePeriodHandler.NewHandler(periodSvc, log)
	deletePeriod := deletePeriodHandler.NewHandler(periodSvc, log)

	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// CONFIGURATION (консоль оператора)
	// ============================================================

	// --- Активности ---
	api.HandleFunc("/activities", listActivities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities", createActivity.Handle).Methods(http.MethodPost)
	api.HandleFunc("/activities/{activityId}", getActivity.Handle).Methods(http.MethodGet)
	api.HandleFunc("/activities/{activityId}", updateActivity.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/activities/{activityId}", deleteActivity.Handle).Methods(http.MethodDelete)

	// --- Периоды ---
	api.HandleFunc("/periods", listPeriods.Handle).Methods(http.MethodGet)
	api.HandleFunc("/periods", createPeriod.Handle).Methods(http.MethodPost)
	api.HandleFunc("/periods/{periodId}", getPeriod.Handle).Methods(http.MethodGet)
	api.HandleFunc("/periods/{periodId}", updatePeriod.Handle).Methods(http.MethodPut)
	api.HandleFunc("/periods/{periodId}", deletePeriod.Handle).Methods(http.MethodDelete)

	// ============================================================
	// AVAILABILITY (публичные, с ограничением частоты)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RPS,
			cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.TTL)*time.Second,
		)
		clientIPs, err := middleware.NewClientIPResolver(cfg.RateLimit.TrustedProxies)
		if err != nil {
			log.Fatal("Failed to configure trusted proxies: %v", err)
		}
		go limiter.Run(stopCh)
		public.Use(middleware.RateLimitMiddleware(limiter, clientIPs, log))
		log.Info("Rate limiting enabled: rps=%.2f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	public.HandleFunc("/activities/{activityId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	public.HandleFunc("/activities/{activityId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи: статистику пула и очистку лимитера
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
