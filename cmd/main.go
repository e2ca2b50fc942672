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

	assignTablesHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/assign_tables"
	cancelBookingHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/cancel_booking"
	extendBookingHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/extend_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/get_available_slots"
	getAvailableTablesHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/get_available_tables"
	getBookingHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/get_booking"
	getScheduleConfigHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/get_schedule_config"
	getTableBookingsHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/get_table_bookings"
	getTableConflictHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/get_table_conflict"
	quickSeatHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/quick_seat"
	releaseTablesHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/release_tables"
	updateDiningStatusHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/update_dining_status"
	updateScheduleConfigHandler "github.com/m04kA/SMC-TableService/internal/api/handlers/update_schedule_config"
	"github.com/m04kA/SMC-TableService/internal/api/middleware"
	"github.com/m04kA/SMC-TableService/internal/config"
	assignmentRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/assignment"
	bookingRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/schedule"
	tableRepo "github.com/m04kA/SMC-TableService/internal/infra/storage/table"
	availabilityService "github.com/m04kA/SMC-TableService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-TableService/internal/service/bookings"
	scheduleService "github.com/m04kA/SMC-TableService/internal/service/schedule"
	assignTablesUC "github.com/m04kA/SMC-TableService/internal/usecase/assign_tables"
	extendBookingUC "github.com/m04kA/SMC-TableService/internal/usecase/extend_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-TableService/internal/usecase/get_available_slots"
	quickSeatUC "github.com/m04kA/SMC-TableService/internal/usecase/quick_seat"
	"github.com/m04kA/SMC-TableService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableService/pkg/logger"
	"github.com/m04kA/SMC-TableService/pkg/metrics"
	"github.com/m04kA/SMC-TableService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-TableService/pkg/txmanager"
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

	log.Info("Starting SMC-TableService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		tableRepository      *tableRepo.Repository
		bookingRepository    *bookingRepo.Repository
		assignmentRepository *assignmentRepo.Repository
		scheduleRepository   *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисах и usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		tableRepository = tableRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		assignmentRepository = assignmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		tableRepository = tableRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		assignmentRepository = assignmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		tableRepository,
		bookingRepository,
		scheduleRepository,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		assignmentRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	assignTablesUseCase := assignTablesUC.NewUseCase(
		bookingRepository,
		tableRepository,
		assignmentRepository,
		scheduleRepository,
		txMgr,
		log,
	)
	extendBookingUseCase := extendBookingUC.NewUseCase(
		bookingRepository,
		assignmentRepository,
		scheduleRepository,
		txMgr,
		log,
	)
	quickSeatUseCase := quickSeatUC.NewUseCase(
		bookingRepository,
		tableRepository,
		assignmentRepository,
		txMgr,
		&quickSeatUC.RealTimeProvider{},
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		&getAvailableSlotsUC.RealTimeProvider{},
		log,
	)

	// Инициализируем handlers
	getAvailableTables := getAvailableTablesHandler.NewHandler(availabilitySvc, log)
	getTableConflict := getTableConflictHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	assignTables := assignTablesHandler.NewHandler(assignTablesUseCase, log)
	releaseTables := releaseTablesHandler.NewHandler(bookingSvc, log)
	extendBooking := extendBookingHandler.NewHandler(extendBookingUseCase, log)
	quickSeat := quickSeatHandler.NewHandler(quickSeatUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getTableBookings := getTableBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateDiningStatus := updateDiningStatusHandler.NewHandler(bookingSvc, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	updateScheduleConfig := updateScheduleConfigHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Свободные и занятые столы на дату
	api.HandleFunc("/tables/availability", getAvailableTables.Handle).Methods(http.MethodGet)

	// Проверка конфликта интервала на столе
	api.HandleFunc("/tables/{tableId}/conflict", getTableConflict.Handle).Methods(http.MethodGet)

	// Слоты бронирования на день
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Конфигурация расписания
	api.HandleFunc("/schedule-config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Назначение столов бронированию
	protected.HandleFunc("/bookings/{bookingId}/tables", assignTables.Handle).Methods(http.MethodPost)

	// Снятие всех назначений бронирования
	protected.HandleFunc("/bookings/{bookingId}/tables", releaseTables.Handle).Methods(http.MethodDelete)

	// Продление бронирования
	protected.HandleFunc("/bookings/{bookingId}/extend", extendBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Прогресс рассадки
	protected.HandleFunc("/bookings/{bookingId}/dining-status", updateDiningStatus.Handle).Methods(http.MethodPatch)

	// --- Столы ---
	// Бронирования стола на дату
	protected.HandleFunc("/tables/{tableId}/bookings", getTableBookings.Handle).Methods(http.MethodGet)

	// Быстрая посадка walk-in гостя
	protected.HandleFunc("/tables/{tableId}/quick-seat", quickSeat.Handle).Methods(http.MethodPost)

	// --- Расписание (для менеджеров) ---
	// Обновление конфигурации расписания
	protected.HandleFunc("/schedule-config", updateScheduleConfig.Handle).Methods(http.MethodPut)

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
