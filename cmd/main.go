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
	"github.com/redis/go-redis/v9"

	addParticipantsHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/add_participants"
	approveJoinRequestHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/approve_join_request"
	checkSlotAvailabilityHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/check_slot_availability"
	createBookingHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/create_booking"
	createJoinRequestHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/create_join_request"
	getAvailableSlotsHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/get_available_slots"
	getEnhancedOrdersHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/get_enhanced_orders"
	getOrderStatisticsHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/get_order_statistics"
	rejectJoinRequestHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/reject_join_request"
	selectionsHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/selections"
	submitSelectionsHandler "github.com/aldnch/GolfTeeService/internal/api/handlers/submit_selections"
	"github.com/aldnch/GolfTeeService/internal/api/middleware"
	"github.com/aldnch/GolfTeeService/internal/config"
	bookingRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/booking"
	joinRequestRepo "github.com/aldnch/GolfTeeService/internal/infra/storage/joinrequest"
	memberServiceClient "github.com/aldnch/GolfTeeService/internal/integrations/memberservice"
	"github.com/aldnch/GolfTeeService/internal/selection"
	addParticipantsUC "github.com/aldnch/GolfTeeService/internal/usecase/add_participants"
	approveJoinRequestUC "github.com/aldnch/GolfTeeService/internal/usecase/approve_join_request"
	checkSlotAvailabilityUC "github.com/aldnch/GolfTeeService/internal/usecase/check_slot_availability"
	createBookingUC "github.com/aldnch/GolfTeeService/internal/usecase/create_booking"
	createJoinRequestUC "github.com/aldnch/GolfTeeService/internal/usecase/create_join_request"
	getAvailableSlotsUC "github.com/aldnch/GolfTeeService/internal/usecase/get_available_slots"
	getEnhancedOrdersUC "github.com/aldnch/GolfTeeService/internal/usecase/get_enhanced_orders"
	getOrderStatisticsUC "github.com/aldnch/GolfTeeService/internal/usecase/get_order_statistics"
	manageSelectionsUC "github.com/aldnch/GolfTeeService/internal/usecase/manage_selections"
	rejectJoinRequestUC "github.com/aldnch/GolfTeeService/internal/usecase/reject_join_request"
	submitSelectionsUC "github.com/aldnch/GolfTeeService/internal/usecase/submit_selections"
	"github.com/aldnch/GolfTeeService/pkg/clock"
	"github.com/aldnch/GolfTeeService/pkg/logger"
	"github.com/aldnch/GolfTeeService/pkg/metrics"
	"github.com/aldnch/GolfTeeService/pkg/txmanager"
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

	log.Info("Starting GolfTeeService...")

	// Часы клуба: вся слотовая логика живет в поясе клуба
	clubClock, err := clock.NewZoned(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}
	schedule := cfg.Booking.Schedule()
	log.Info("Slot schedule: capacity=%d, granularity=%dmin, window=%dd, hours=%s-%s, tz=%s",
		schedule.Capacity, schedule.GranularityMinutes, schedule.WindowDays,
		schedule.OpenTime, schedule.CloseTime, cfg.Booking.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis для хранилища выборок
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	selectionStore := selection.NewRedisStore(
		redisClient,
		time.Duration(cfg.Redis.SelectionTTLMinutes)*time.Minute,
	)

	// Клиент сервиса участников
	memberClient := memberServiceClient.NewClient(cfg.MemberService, log)
	log.Info("Member service client initialized (url=%s, timeout=%ds)",
		cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Репозитории и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(db)
	joinRequestRepository := joinRequestRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository, joinRequestRepository, memberClient, schedule, clubClock, log)
	checkSlotAvailabilityUseCase := checkSlotAvailabilityUC.NewUseCase(
		bookingRepository, joinRequestRepository, schedule, clubClock, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository, txMgr, schedule, clubClock, log)
	addParticipantsUseCase := addParticipantsUC.NewUseCase(
		bookingRepository, txMgr, schedule, log)
	createJoinRequestUseCase := createJoinRequestUC.NewUseCase(
		bookingRepository, joinRequestRepository, txMgr, schedule, log)
	approveJoinRequestUseCase := approveJoinRequestUC.NewUseCase(
		bookingRepository, joinRequestRepository, txMgr, schedule, log)
	rejectJoinRequestUseCase := rejectJoinRequestUC.NewUseCase(
		joinRequestRepository, txMgr, log)
	manageSelectionsUseCase := manageSelectionsUC.NewUseCase(
		checkSlotAvailabilityUseCase, selectionStore, log)
	submitSelectionsUseCase := submitSelectionsUC.NewUseCase(
		createBookingUseCase, addParticipantsUseCase, createJoinRequestUseCase, selectionStore, log)
	getEnhancedOrdersUseCase := getEnhancedOrdersUC.NewUseCase(
		bookingRepository, joinRequestRepository, memberClient, log)
	getOrderStatisticsUseCase := getOrderStatisticsUC.NewUseCase(
		bookingRepository, joinRequestRepository, log)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkSlotAvailability := checkSlotAvailabilityHandler.NewHandler(checkSlotAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	addParticipants := addParticipantsHandler.NewHandler(addParticipantsUseCase, log)
	createJoinRequest := createJoinRequestHandler.NewHandler(createJoinRequestUseCase, log)
	approveJoinRequest := approveJoinRequestHandler.NewHandler(approveJoinRequestUseCase, log)
	rejectJoinRequest := rejectJoinRequestHandler.NewHandler(rejectJoinRequestUseCase, log)
	selections := selectionsHandler.NewHandler(manageSelectionsUseCase, log)
	submitSelections := submitSelectionsHandler.NewHandler(submitSelectionsUseCase, log)
	getEnhancedOrders := getEnhancedOrdersHandler.NewHandler(getEnhancedOrdersUseCase, log)
	getOrderStatistics := getOrderStatisticsHandler.NewHandler(getOrderStatisticsUseCase, log)

	// Роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все маршруты требуют X-Member-ID, аутентификацию выполняет шлюз
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// Слотовая сетка
	api.HandleFunc("/courses/{courseId}/tees/{teeId}/slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/courses/{courseId}/tees/{teeId}/slots/availability",
		checkSlotAvailability.Handle).Methods(http.MethodGet)

	// Бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/participants", addParticipants.Handle).Methods(http.MethodPost)

	// Заявки на присоединение
	api.HandleFunc("/join-requests", createJoinRequest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/join-requests/{requestId}/approve", approveJoinRequest.Handle).Methods(http.MethodPost)
	api.HandleFunc("/join-requests/{requestId}/reject", rejectJoinRequest.Handle).Methods(http.MethodPost)

	// Набор выбранных слотов (сессия)
	api.HandleFunc("/selections", selections.HandleRestore).Methods(http.MethodGet)
	api.HandleFunc("/selections", selections.HandleUpsert).Methods(http.MethodPut)
	api.HandleFunc("/selections", selections.HandleRemove).Methods(http.MethodDelete)
	api.HandleFunc("/selections/all", selections.HandleClear).Methods(http.MethodDelete)
	api.HandleFunc("/selections/submit", submitSelections.Handle).Methods(http.MethodPost)

	// Объединенный список заказов
	api.HandleFunc("/orders/enhanced", getEnhancedOrders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/orders/statistics", getOrderStatistics.Handle).Methods(http.MethodGet)

	// HTTP сервер
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
