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

	cancelBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_booking"
	checkInHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/check_in"
	checkOutHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/check_out"
	closeBoxHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/close_registerbox"
	createBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_booking"
	createCameraHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_camera"
	createCostRuleHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_cost_rule"
	createQueueHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_queue"
	deleteBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/delete_booking"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getQueueHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_queue"
	getRegisterBoxHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_registerbox"
	listBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_bookings"
	listCamerasHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_cameras"
	listCostRulesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_cost_rules"
	listPaymentFormsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_payment_forms"
	listRegisterBoxesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_registerboxes"
	moveCashHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/move_cash"
	openBoxHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/open_registerbox"
	provisionQueueHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/provision_queue"
	registerPaymentHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/register_payment"
	releaseSlotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/release_slot"
	reverseLineHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/reverse_line"
	testCameraHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/test_camera"
	updateBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/update_booking"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	attachmentRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/attachment"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	cameraRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/camera"
	costruleRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/costrule"
	paymentformRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/paymentform"
	queueRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/queue"
	registerboxRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/registerbox"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	cameraClient "github.com/m04kA/SMC-ParkingService/internal/integrations/camera"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	configService "github.com/m04kA/SMC-ParkingService/internal/service/config"
	queuesService "github.com/m04kA/SMC-ParkingService/internal/service/queues"
	registerboxService "github.com/m04kA/SMC-ParkingService/internal/service/registerbox"
	adjustCashUC "github.com/m04kA/SMC-ParkingService/internal/usecase/adjust_cash"
	checkInUC "github.com/m04kA/SMC-ParkingService/internal/usecase/check_in"
	checkOutUC "github.com/m04kA/SMC-ParkingService/internal/usecase/check_out"
	closeBoxUC "github.com/m04kA/SMC-ParkingService/internal/usecase/close_registerbox"
	createBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	createCameraUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_camera"
	createCostRuleUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_cost_rule"
	createQueueUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_queue"
	openBoxUC "github.com/m04kA/SMC-ParkingService/internal/usecase/open_registerbox"
	provisionQueueUC "github.com/m04kA/SMC-ParkingService/internal/usecase/provision_queue"
	registerPaymentUC "github.com/m04kA/SMC-ParkingService/internal/usecase/register_payment"
	releaseSlotUC "github.com/m04kA/SMC-ParkingService/internal/usecase/release_slot"
	reverseLineUC "github.com/m04kA/SMC-ParkingService/internal/usecase/reverse_line"
	testCameraUC "github.com/m04kA/SMC-ParkingService/internal/usecase/test_camera"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
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

	log.Info("Starting SMC-ParkingService...")
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

	// Инициализируем клиент камер
	camClient := cameraClient.NewClient(time.Duration(cfg.Camera.Timeout)*time.Second, log)
	log.Info("Camera client initialized (timeout=%ds)", cfg.Camera.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository     *bookingRepo.Repository
		queueRepository       *queueRepo.Repository
		slotRepository        *slotRepo.Repository
		boxRepository         *registerboxRepo.Repository
		costRuleRepository    *costruleRepo.Repository
		cameraRepository      *cameraRepo.Repository
		paymentFormRepository *paymentformRepo.Repository
		attachmentRepository  *attachmentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		queueRepository = queueRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		boxRepository = registerboxRepo.NewRepository(wrappedDB)
		costRuleRepository = costruleRepo.NewRepository(wrappedDB)
		cameraRepository = cameraRepo.NewRepository(wrappedDB)
		paymentFormRepository = paymentformRepo.NewRepository(wrappedDB)
		attachmentRepository = attachmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		queueRepository = queueRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		boxRepository = registerboxRepo.NewRepository(db)
		costRuleRepository = costruleRepo.NewRepository(db)
		cameraRepository = cameraRepo.NewRepository(db)
		paymentFormRepository = paymentformRepo.NewRepository(db)
		attachmentRepository = attachmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		boxRepository,
		costRuleRepository,
		paymentFormRepository,
		log,
	)
	queueSvc := queuesService.NewService(queueRepository, slotRepository, log)
	boxSvc := registerboxService.NewService(boxRepository, paymentFormRepository, log)
	configSvc := configService.NewService(
		paymentFormRepository,
		cameraRepository,
		costRuleRepository,
		log,
	)

	// Инициализируем use cases
	createQueueUseCase := createQueueUC.NewUseCase(queueRepository, log)
	provisionQueueUseCase := provisionQueueUC.NewUseCase(queueRepository, slotRepository, txMgr, log)
	releaseSlotUseCase := releaseSlotUC.NewUseCase(slotRepository, bookingRepository, txMgr, log)

	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, log)
	checkInUseCase := checkInUC.NewUseCase(
		bookingRepository,
		slotRepository,
		cameraRepository,
		attachmentRepository,
		camClient,
		txMgr,
		log,
	)
	checkOutUseCase := checkOutUC.NewUseCase(
		bookingRepository,
		slotRepository,
		costRuleRepository,
		boxRepository,
		cameraRepository,
		attachmentRepository,
		camClient,
		txMgr,
		log,
	)

	openBoxUseCase := openBoxUC.NewUseCase(boxRepository, txMgr, log)
	adjustCashUseCase := adjustCashUC.NewUseCase(boxRepository, paymentFormRepository, txMgr, log)
	reverseLineUseCase := reverseLineUC.NewUseCase(boxRepository, txMgr, log)
	closeBoxUseCase := closeBoxUC.NewUseCase(boxRepository, txMgr, log)
	registerPaymentUseCase := registerPaymentUC.NewUseCase(
		bookingRepository,
		boxRepository,
		costRuleRepository,
		paymentFormRepository,
		txMgr,
		log,
	)

	createCostRuleUseCase := createCostRuleUC.NewUseCase(costRuleRepository, txMgr, log)
	createCameraUseCase := createCameraUC.NewUseCase(cameraRepository, txMgr, log)
	testCameraUseCase := testCameraUC.NewUseCase(cameraRepository, attachmentRepository, camClient, log)

	// Инициализируем handlers
	createQueue := createQueueHandler.NewHandler(createQueueUseCase, log)
	provisionQueue := provisionQueueHandler.NewHandler(provisionQueueUseCase, log)
	getQueue := getQueueHandler.NewHandler(queueSvc, log)
	releaseSlot := releaseSlotHandler.NewHandler(releaseSlotUseCase, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	checkIn := checkInHandler.NewHandler(checkInUseCase, log)
	checkOut := checkOutHandler.NewHandler(checkOutUseCase, log)

	openBox := openBoxHandler.NewHandler(openBoxUseCase, log)
	listBoxes := listRegisterBoxesHandler.NewHandler(boxSvc, log)
	getBox := getRegisterBoxHandler.NewHandler(boxSvc, log)
	moveCash := moveCashHandler.NewHandler(adjustCashUseCase, log)
	reverseLine := reverseLineHandler.NewHandler(reverseLineUseCase, log)
	closeBox := closeBoxHandler.NewHandler(closeBoxUseCase, log)
	registerPayment := registerPaymentHandler.NewHandler(registerPaymentUseCase, log)

	listPaymentForms := listPaymentFormsHandler.NewHandler(configSvc, log)
	createCamera := createCameraHandler.NewHandler(createCameraUseCase, log)
	listCameras := listCamerasHandler.NewHandler(configSvc, log)
	testCamera := testCameraHandler.NewHandler(testCameraUseCase, log)
	createCostRule := createCostRuleHandler.NewHandler(createCostRuleUseCase, log)
	listCostRules := listCostRulesHandler.NewHandler(configSvc, log)

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
	// PROTECTED ROUTES (требуют identity-заголовки)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Очереди и места ---
	protected.HandleFunc("/queues", createQueue.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/queues/{queueId}", getQueue.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/queues/{queueId}/provision", provisionQueue.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}/release", releaseSlot.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/check-in", checkIn.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/check-out", checkOut.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{clientId}/bookings", listBookings.Handle).Methods(http.MethodGet)

	// --- Кассы и оплата ---
	protected.HandleFunc("/registerboxes", openBox.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/registerboxes", listBoxes.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/registerboxes/{boxId}", getBox.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/registerboxes/{boxId}/cash-add", moveCash.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/registerboxes/{boxId}/cash-remove", moveCash.HandleRemove).Methods(http.MethodPost)
	protected.HandleFunc("/registerboxes/{boxId}/reverse", reverseLine.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/registerboxes/{boxId}/close", closeBox.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments", registerPayment.Handle).Methods(http.MethodPost)

	// --- Настройки двора ---
	protected.HandleFunc("/payment-forms", listPaymentForms.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/cameras", createCamera.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cameras", listCameras.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/cameras/{cameraId}/test", testCamera.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cost-rules", createCostRule.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/cost-rules", listCostRules.Handle).Methods(http.MethodGet)

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
