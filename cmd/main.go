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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/create_booking"
	getAdmissionOutcomesHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/get_admission_outcomes"
	getAvailableHoursHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/get_available_hours"
	getDayBookingsHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/get_day_bookings"
	paymentWebhookHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/payment_webhook"
	"github.com/m04kA/SMC-CateringService/internal/api/middleware"
	"github.com/m04kA/SMC-CateringService/internal/config"
	outcomeRepo "github.com/m04kA/SMC-CateringService/internal/infra/storage/outcome"
	affiliateClient "github.com/m04kA/SMC-CateringService/internal/integrations/affiliateservice"
	calendarClient "github.com/m04kA/SMC-CateringService/internal/integrations/calendarservice"
	bookingsService "github.com/m04kA/SMC-CateringService/internal/service/bookings"
	admitBookingUC "github.com/m04kA/SMC-CateringService/internal/usecase/admit_booking"
	getAvailableHoursUC "github.com/m04kA/SMC-CateringService/internal/usecase/get_available_hours"
	"github.com/m04kA/SMC-CateringService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CateringService/pkg/logger"
	"github.com/m04kA/SMC-CateringService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-CateringService...")
	log.Info("Configuration loaded from config.toml")

	// Политика бронирования: зона, рабочие часы, лимиты, длительности пакетов
	policy, err := cfg.Booking.Policy()
	if err != nil {
		log.Fatal("Failed to build booking policy: %v", err)
	}
	log.Info("Booking policy: timezone=%s, hours=[%d, %d), max_per_day=%d, max_per_slot=%d",
		policy.Location, policy.HoursStart, policy.HoursEnd, policy.MaxPerDay, policy.MaxPerSlot)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал решений о допуске)
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

	// Инициализируем интеграционных клиентов
	calendar := calendarClient.NewClient(
		cfg.CalendarService.URL,
		time.Duration(cfg.CalendarService.Timeout)*time.Second,
		log,
	)
	affiliate := affiliateClient.NewClient(
		cfg.AffiliateService.URL,
		time.Duration(cfg.AffiliateService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (CalendarService=%s timeout=%ds, AffiliateService=%s timeout=%ds)",
		cfg.CalendarService.URL, cfg.CalendarService.Timeout, cfg.AffiliateService.URL, cfg.AffiliateService.Timeout)

	// Инициализируем репозиторий журнала (с метриками или без)
	var outcomeRepository *outcomeRepo.Repository

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
		outcomeRepository = outcomeRepo.NewRepository(wrappedDB)
	} else {
		outcomeRepository = outcomeRepo.NewRepository(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		policy,
		calendar,
		outcomeRepository,
		log,
	)

	// Инициализируем use cases
	admitBookingUseCase := admitBookingUC.NewUseCase(
		policy,
		calendar,
		outcomeRepository,
		log,
	)

	getAvailableHoursUseCase := getAvailableHoursUC.NewUseCase(
		policy,
		calendar,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(admitBookingUseCase, affiliate, policy.Location, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(admitBookingUseCase, log)
	getAvailableHours := getAvailableHoursHandler.NewHandler(getAvailableHoursUseCase, log)
	getDayBookings := getDayBookingsHandler.NewHandler(bookingSvc, log)
	getAdmissionOutcomes := getAdmissionOutcomesHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Платёжный вебхук: подлинность события проверяет upstream-шлюз
	api.HandleFunc("/webhooks/payment", paymentWebhook.Handle).Methods(http.MethodPost)

	// Прямое создание бронирования (PIN проверяется в обработчике)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Доступные стартовые часы на дату
	api.HandleFunc("/available-hours", getAvailableHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Server.AdminToken))

	// Бронирования календаря за день
	admin.HandleFunc("/bookings", getDayBookings.Handle).Methods(http.MethodGet)

	// Журнал решений о допуске за день
	admin.HandleFunc("/outcomes", getAdmissionOutcomes.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
