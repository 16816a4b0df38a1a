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

	bookSlotHandler "github.com/m04kA/CMS-ReceptionService/internal/api/handlers/book_slot"
	cancelBookingHandler "github.com/m04kA/CMS-ReceptionService/internal/api/handlers/cancel_booking"
	createScheduleHandler "github.com/m04kA/CMS-ReceptionService/internal/api/handlers/create_schedule"
	deactivateScheduleHandler "github.com/m04kA/CMS-ReceptionService/internal/api/handlers/deactivate_schedule"
	generateSlotsHandler "github.com/m04kA/CMS-ReceptionService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/CMS-ReceptionService/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/m04kA/CMS-ReceptionService/internal/api/handlers/get_booked_slots"
	getSchedulesHandler "github.com/m04kA/CMS-ReceptionService/internal/api/handlers/get_schedules"
	withdrawSlotHandler "github.com/m04kA/CMS-ReceptionService/internal/api/handlers/withdraw_slot"
	"github.com/m04kA/CMS-ReceptionService/internal/api/middleware"
	"github.com/m04kA/CMS-ReceptionService/internal/config"
	"github.com/m04kA/CMS-ReceptionService/internal/infra/lock"
	scheduleRepo "github.com/m04kA/CMS-ReceptionService/internal/infra/storage/schedule"
	slotRepo "github.com/m04kA/CMS-ReceptionService/internal/infra/storage/slot"
	notifyServiceClient "github.com/m04kA/CMS-ReceptionService/internal/integrations/notifyservice"
	staffServiceClient "github.com/m04kA/CMS-ReceptionService/internal/integrations/staffservice"
	schedulesService "github.com/m04kA/CMS-ReceptionService/internal/service/schedules"
	slotsService "github.com/m04kA/CMS-ReceptionService/internal/service/slots"
	bookSlotUC "github.com/m04kA/CMS-ReceptionService/internal/usecase/book_slot"
	createScheduleUC "github.com/m04kA/CMS-ReceptionService/internal/usecase/create_schedule"
	generateSlotsUC "github.com/m04kA/CMS-ReceptionService/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/m04kA/CMS-ReceptionService/internal/usecase/get_available_slots"
	"github.com/m04kA/CMS-ReceptionService/pkg/dbmetrics"
	"github.com/m04kA/CMS-ReceptionService/pkg/logger"
	"github.com/m04kA/CMS-ReceptionService/pkg/metrics"
	"github.com/m04kA/CMS-ReceptionService/pkg/simpletxmanager"
	"github.com/m04kA/CMS-ReceptionService/pkg/txmanager"
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

	log.Info("Starting CMS-ReceptionService...")
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

	// Подключаемся к Redis (блокировка конкурентной генерации слотов)
	redisLock, err := lock.NewRedisLock(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer redisLock.Close()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	// Инициализируем интеграционных клиентов
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (StaffService=%s timeout=%ds, NotifyService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout, cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository     *slotRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		slotRepository = slotRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		slotRepository = slotRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(slotRepository, log)
	scheduleSvc := schedulesService.NewService(scheduleRepository, log)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		scheduleRepository,
		slotRepository,
		redisLock,
		txMgr,
		time.Duration(cfg.Generation.LockTTLSeconds)*time.Second,
		log,
	)

	createScheduleUseCase := createScheduleUC.NewUseCase(
		scheduleRepository,
		generateSlotsUseCase,
		staffClient,
		log,
	)

	bookSlotUseCase := bookSlotUC.NewUseCase(
		slotRepository,
		notifyClient,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		staffClient,
		log,
	)

	// Инициализируем handlers
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(slotSvc, log)
	withdrawSlot := withdrawSlotHandler.NewHandler(slotSvc, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(slotSvc, log)
	createSchedule := createScheduleHandler.NewHandler(createScheduleUseCase, log)
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getSchedules := getSchedulesHandler.NewHandler(scheduleSvc, log)
	deactivateSchedule := deactivateScheduleHandler.NewHandler(scheduleSvc, log)

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

	// Свободные слоты руководителя (витрина для посетителей)
	api.HandleFunc("/managers/{managerId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Запись посетителя на слот
	api.HandleFunc("/slots/{slotId}/book", bookSlot.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты ---
	// Календарь записей руководителя (с контактами посетителей)
	protected.HandleFunc("/managers/{managerId}/slots/booked", getBookedSlots.Handle).Methods(http.MethodGet)

	// Отмена брони администратором
	protected.HandleFunc("/slots/{slotId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Снятие свободного слота с публикации
	protected.HandleFunc("/slots/{slotId}/withdraw", withdrawSlot.Handle).Methods(http.MethodPost)

	// --- Расписания ---
	// Создание шаблона расписания с немедленной генерацией слотов
	protected.HandleFunc("/managers/{managerId}/recurring-schedule", createSchedule.Handle).Methods(http.MethodPost)

	// Шаблоны расписания руководителя
	protected.HandleFunc("/managers/{managerId}/recurring-schedules", getSchedules.Handle).Methods(http.MethodGet)

	// Продление горизонта слотов по шаблону (дергает внешний cron)
	protected.HandleFunc("/recurring-schedules/{templateId}/generate", generateSlots.Handle).Methods(http.MethodPost)

	// Деактивация шаблона
	protected.HandleFunc("/recurring-schedules/{templateId}/deactivate", deactivateSchedule.Handle).Methods(http.MethodPatch)

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
