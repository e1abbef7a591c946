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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	authHandler "github.com/petsas/appointment-service/internal/api/handlers/auth"
	cancelBookingHandler "github.com/petsas/appointment-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/petsas/appointment-service/internal/api/handlers/create_booking"
	getAvailableDatesHandler "github.com/petsas/appointment-service/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/petsas/appointment-service/internal/api/handlers/get_available_slots"
	getBookedDatesHandler "github.com/petsas/appointment-service/internal/api/handlers/get_booked_dates"
	getBookingHandler "github.com/petsas/appointment-service/internal/api/handlers/get_booking"
	getCatalogHandler "github.com/petsas/appointment-service/internal/api/handlers/get_catalog"
	getProfessionalHoursHandler "github.com/petsas/appointment-service/internal/api/handlers/get_professional_hours"
	getUserBookingsHandler "github.com/petsas/appointment-service/internal/api/handlers/get_user_bookings"
	profileHandler "github.com/petsas/appointment-service/internal/api/handlers/profile"
	saveAvailabilityHandler "github.com/petsas/appointment-service/internal/api/handlers/save_availability"
	updateProfessionalHoursHandler "github.com/petsas/appointment-service/internal/api/handlers/update_professional_hours"
	wizardHandler "github.com/petsas/appointment-service/internal/api/handlers/wizard"
	"github.com/petsas/appointment-service/internal/api/middleware"
	"github.com/petsas/appointment-service/internal/config"
	"github.com/petsas/appointment-service/internal/domain"
	availabilityRepo "github.com/petsas/appointment-service/internal/infra/storage/availability"
	bookingRepo "github.com/petsas/appointment-service/internal/infra/storage/booking"
	catalogRepo "github.com/petsas/appointment-service/internal/infra/storage/catalog"
	hoursRepo "github.com/petsas/appointment-service/internal/infra/storage/hours"
	profileRepo "github.com/petsas/appointment-service/internal/infra/storage/profile"
	"github.com/petsas/appointment-service/internal/integrations/mailer"
	"github.com/petsas/appointment-service/internal/integrations/notifier"
	"github.com/petsas/appointment-service/internal/jobs"
	accountsService "github.com/petsas/appointment-service/internal/service/accounts"
	availabilityService "github.com/petsas/appointment-service/internal/service/availability"
	bookingsService "github.com/petsas/appointment-service/internal/service/bookings"
	catalogService "github.com/petsas/appointment-service/internal/service/catalog"
	scheduleService "github.com/petsas/appointment-service/internal/service/schedule"
	computeOpenDatesUC "github.com/petsas/appointment-service/internal/usecase/compute_open_dates"
	getAvailableSlotsUC "github.com/petsas/appointment-service/internal/usecase/get_available_slots"
	submitBookingUC "github.com/petsas/appointment-service/internal/usecase/submit_booking"
	"github.com/petsas/appointment-service/internal/wizard"
	"github.com/petsas/appointment-service/pkg/dbmetrics"
	"github.com/petsas/appointment-service/pkg/logger"
	"github.com/petsas/appointment-service/pkg/metrics"
	"github.com/petsas/appointment-service/pkg/simpletxmanager"
	"github.com/petsas/appointment-service/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (секреты)
	_ = godotenv.Load()

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

	log.Info("Starting appointment-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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

	// Инициализируем интеграционных клиентов
	notifierClient := notifier.NewClient(
		cfg.Notifier.WebhookURL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	mailerClient := mailer.NewClient(cfg.Mailer.Key(), cfg.Mailer.FromEmail, cfg.Mailer.FromName, log)
	log.Info("Integration clients initialized (notifier=%s timeout=%ds)",
		cfg.Notifier.WebhookURL, cfg.Notifier.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
		hoursRepository        *hoursRepo.Repository
		catalogRepository      *catalogRepo.Repository
		profileRepository      *profileRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		hoursRepository = hoursRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		profileRepository = profileRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		hoursRepository = hoursRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		profileRepository = profileRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	accountsSvc := accountsService.NewService(
		profileRepository,
		cfg.Auth.Secret(),
		time.Duration(cfg.Auth.TokenTTLHours)*time.Hour,
		log,
	)
	availabilitySvc := availabilityService.NewService(availabilityRepository, txMgr, log)
	scheduleSvc := scheduleService.NewService(hoursRepository, catalogRepository, txMgr, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		profileRepository,
		notifierClient,
		txMgr,
		log,
	)
	computeOpenDatesUseCase := computeOpenDatesUC.NewUseCase(
		availabilityRepository,
		bookingRepository,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		hoursRepository,
		bookingRepository,
		catalogRepository,
		log,
	)

	// Сессии мастера записи
	wizardSessions := wizard.NewManager()

	// Инициализируем handlers
	auth := authHandler.NewHandler(accountsSvc, log)
	profiles := profileHandler.NewHandler(accountsSvc, log)
	createBooking := createBookingHandler.NewHandler(submitBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	getBookedDates := getBookedDatesHandler.NewHandler(bookingsSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(computeOpenDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	saveAvailability := saveAvailabilityHandler.NewHandler(availabilitySvc, log)
	getProfessionalHours := getProfessionalHoursHandler.NewHandler(scheduleSvc, log)
	updateProfessionalHours := updateProfessionalHoursHandler.NewHandler(scheduleSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	wizardFlow := wizardHandler.NewHandler(wizardSessions, computeOpenDatesUseCase, submitBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация и вход
	api.HandleFunc("/auth/signup", auth.HandleSignUp).Methods(http.MethodPost)
	api.HandleFunc("/auth/signin", auth.HandleSignIn).Methods(http.MethodPost)

	// Каталог услуг и специалистов
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)

	// Свободные даты (опционально для конкретного специалиста)
	api.HandleFunc("/availability", getAvailableDates.Handle).Methods(http.MethodGet)

	// Временные слоты специалиста на дату
	api.HandleFunc("/professionals/{id}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание специалиста
	api.HandleFunc("/professionals/{id}/hours", getProfessionalHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(accountsSvc))

	// --- Профиль ---
	protected.HandleFunc("/profile", profiles.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profiles.HandleUpdate).Methods(http.MethodPut)

	// --- Мастер записи ---
	protected.HandleFunc("/wizard", wizardFlow.HandleState).Methods(http.MethodGet)
	protected.HandleFunc("/wizard", wizardFlow.HandleAbandon).Methods(http.MethodDelete)
	protected.HandleFunc("/wizard/location", wizardFlow.HandleSetLocation).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/services", wizardFlow.HandleToggleService).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/professional", wizardFlow.HandleSelectProfessional).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/date", wizardFlow.HandleSelectDate).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/next", wizardFlow.HandleNext).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/back", wizardFlow.HandleBack).Methods(http.MethodPost)
	protected.HandleFunc("/wizard/confirm", wizardFlow.HandleConfirm).Methods(http.MethodPost)

	// --- Записи ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Администрирование (admin / owner) ---
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireRole(domain.RoleAdmin, domain.RoleOwner))

	admin.HandleFunc("/availability", saveAvailability.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/booked-dates", getBookedDates.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/professionals/{id}/hours", updateProfessionalHours.Handle).Methods(http.MethodPut)

	// Cron-задача напоминаний
	var reminderJob *jobs.ReminderJob
	if cfg.Reminders.Enabled {
		reminderJob = jobs.NewReminderJob(bookingRepository, profileRepository, mailerClient, cfg.Reminders.Schedule, log)
		if err := reminderJob.Start(); err != nil {
			log.Fatal("Failed to start reminder job: %v", err)
		}
	}

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

	if reminderJob != nil {
		reminderJob.Stop()
	}

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
