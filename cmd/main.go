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

	cancelAppointmentHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/cancel_appointment"
	checkConflictHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/check_conflict"
	createAppointmentHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/get_available_slots"
	getNutritionistAppointmentsHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/get_nutritionist_appointments"
	getPatientAppointmentsHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/get_patient_appointments"
	getScheduleConfigHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/get_schedule_config"
	updateAppointmentStatusHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/update_appointment_status"
	updateScheduleConfigHandler "github.com/avezht/NutriPlan-SchedulingService/internal/api/handlers/update_schedule_config"
	"github.com/avezht/NutriPlan-SchedulingService/internal/api/middleware"
	"github.com/avezht/NutriPlan-SchedulingService/internal/config"
	appointmentRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/appointment"
	scheduleRepo "github.com/avezht/NutriPlan-SchedulingService/internal/infra/storage/schedule"
	patientServiceClient "github.com/avezht/NutriPlan-SchedulingService/internal/integrations/patientservice"
	appointmentsService "github.com/avezht/NutriPlan-SchedulingService/internal/service/appointments"
	scheduleService "github.com/avezht/NutriPlan-SchedulingService/internal/service/schedule"
	checkConflictUC "github.com/avezht/NutriPlan-SchedulingService/internal/usecase/check_conflict"
	createAppointmentUC "github.com/avezht/NutriPlan-SchedulingService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/avezht/NutriPlan-SchedulingService/internal/usecase/get_available_slots"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/dbmetrics"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/logger"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/metrics"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/simpletxmanager"
	"github.com/avezht/NutriPlan-SchedulingService/pkg/txmanager"
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

	log.Info("Starting NutriPlan-SchedulingService...")
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

	// Инициализируем клиента PatientService
	patientClient := patientServiceClient.NewClient(
		cfg.PatientService.URL,
		time.Duration(cfg.PatientService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PatientService=%s timeout=%ds)",
		cfg.PatientService.URL, cfg.PatientService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		appointmentRepository = appointmentRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		log,
	)

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		patientClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		log,
	)

	checkConflictUseCase := checkConflictUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	getNutritionistAppointments := getNutritionistAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getPatientAppointments := getPatientAppointmentsHandler.NewHandler(appointmentsSvc, log)
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

	// Получение доступных слотов для записи
	api.HandleFunc("/nutritionists/{nutritionistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Получение конфигурации расписания нутрициолога
	api.HandleFunc("/nutritionists/{nutritionistId}/schedule-config",
		getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Консультации ---
	// Создание консультации
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Предварительная проверка конфликта времени
	protected.HandleFunc("/appointments/check-conflict", checkConflict.Handle).Methods(http.MethodPost)

	// Получение консультации по ID
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)

	// Отмена консультации
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Изменение статуса консультации (completed / no_show)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Календарь нутрициолога ---
	// Список консультаций нутрициолога с фильтрацией
	protected.HandleFunc("/nutritionists/{nutritionistId}/appointments",
		getNutritionistAppointments.Handle).Methods(http.MethodGet)

	// История консультаций пациента
	protected.HandleFunc("/patients/{patientId}/appointments",
		getPatientAppointments.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	// Сохранение конфигурации расписания
	protected.HandleFunc("/nutritionists/{nutritionistId}/schedule-config",
		updateScheduleConfig.Handle).Methods(http.MethodPut)

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
