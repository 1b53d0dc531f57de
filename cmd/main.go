package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	adminLoginHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/admin_login"
	createBookingHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/delete_booking"
	exportBookingsHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/export_bookings"
	getAppointmentTypesHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/get_appointment_types"
	getAvailableDatesHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/get_booking"
	getBookingStatsHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/get_booking_stats"
	getBookingsHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/get_bookings"
	getBusinessHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/get_business"
	getScheduleHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/get_schedule"
	resetBookingsHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/reset_bookings"
	updateBookingStatusHandler "github.com/m04kA/BikeWerkstatt-BookingService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/api/middleware"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/config"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/adminauth"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/availability"
	bookingsService "github.com/m04kA/BikeWerkstatt-BookingService/internal/service/bookings"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/shopinfo"
	createBookingUC "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_available_slots"
	getScheduleUC "github.com/m04kA/BikeWerkstatt-BookingService/internal/usecase/get_schedule"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/logger"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/metrics"
)

func main() {
	configPath := "config.toml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		configPath = v
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

	log.Info("Starting BikeWerkstatt-BookingService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики пишутся всегда, наружу отдаются только если включены
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsCollector := metrics.New(cfg.Metrics.ServiceName, registry)

	schedule, err := cfg.WeeklySchedule()
	if err != nil {
		log.Fatal("Invalid schedule: %v", err)
	}
	catalog := cfg.Catalog()
	clock := &availability.RealTimeProvider{}

	// Хранилище бронирований
	store, closeStore, err := newBookingStore(cfg, clock, log)
	if err != nil {
		log.Fatal("Failed to init booking storage: %v", err)
	}
	defer closeStore()

	// Доступ к админке
	pinVerifier, err := adminauth.New(cfg.Admin.PIN, cfg.Admin.PINHash)
	if err != nil {
		log.Fatal("Failed to init admin PIN: %v", err)
	}
	if cfg.Admin.PINHash == "" {
		log.Warn("Admin PIN is configured in plain text, consider admin.pin_hash")
	}

	// Движок доступности
	engine := availability.NewEngine(schedule, availability.Rules{
		SlotStepMinutes: cfg.Rules.SlotStepMinutes,
		LeadTime:        cfg.Rules.LeadTime(),
		MaxDaysAhead:    cfg.Rules.MaxDaysAhead,
	}, clock)
	log.Info("Availability engine ready (step=%dmin, lead_time=%dh, max_days_ahead=%d, types=%d)",
		cfg.Rules.SlotStepMinutes, cfg.Rules.LeadTimeHours, cfg.Rules.MaxDaysAhead, len(catalog))

	// Инициализируем сервисы
	shopInfoSvc := shopinfo.NewService(shopinfo.Source{
		Business: shopinfo.Business{
			Name:    cfg.Business.Name,
			Address: cfg.Business.Address,
			City:    cfg.Business.City,
			Phone:   cfg.Business.Phone,
			Email:   cfg.Business.Email,
		},
		Schedule: schedule,
		Catalog:  catalog,
		Rules: shopinfo.Rules{
			SlotStepMinutes: cfg.Rules.SlotStepMinutes,
			LeadTimeHours:   cfg.Rules.LeadTimeHours,
			MaxDaysAhead:    cfg.Rules.MaxDaysAhead,
		},
	})
	bookingSvc := bookingsService.NewService(store, metricsCollector, clock, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		engine,
		catalog,
		cfg.Rules.SubmitDelay(),
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store, engine, catalog, log)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(store, engine, catalog, log)
	getScheduleUseCase := getScheduleUC.NewUseCase(engine)

	// Инициализируем handlers
	getBusiness := getBusinessHandler.NewHandler(shopInfoSvc, log)
	getAppointmentTypes := getAppointmentTypesHandler.NewHandler(shopInfoSvc, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	adminLogin := adminLoginHandler.NewHandler(pinVerifier, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingStats := getBookingStatsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	resetBookings := resetBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (мастер записи)
	// ============================================================

	api.HandleFunc("/business", getBusiness.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointment-types", getAppointmentTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Проверка PIN перед входом в админку
	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-PIN header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(pinVerifier, log))

	admin.HandleFunc("/stats", getBookingStats.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", resetBookings.Handle).Methods(http.MethodDelete)
	// export регистрируется раньше {bookingId}
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// CORS оборачивает весь роутер, иначе mux ответит 405 на preflight
	handler := middleware.CORS(cfg.Server.CORSAllowedOrigins)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (storage=%s)", addr, cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
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
