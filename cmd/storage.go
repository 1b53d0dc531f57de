package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/config"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/infra/kvstore"
	bookingRepo "github.com/m04kA/BikeWerkstatt-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/logger"
	"github.com/m04kA/BikeWerkstatt-BookingService/pkg/txmanager"
)

// bookingStore полный контракт хранилища бронирований
// Его реализуют и KVRepository, и PostgresRepository
type bookingStore interface {
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Append(ctx context.Context, nb domain.NewBooking) (*domain.Booking, error)
	AppendIfFree(ctx context.Context, nb domain.NewBooking, check domain.SlotCheck) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	UpdateStatusIfFree(ctx context.Context, id string, status domain.BookingStatus, check domain.StatusCheck) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

// newBookingStore выбирает хранилище по storage.driver
// Возвращаемая функция закрывает соединения
func newBookingStore(cfg *config.Config, clock bookingRepo.TimeProvider, log *logger.Logger) (bookingStore, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("Using in-memory booking storage, bookings are lost on restart")
		return bookingRepo.NewKVRepository(kvstore.NewMemory(), cfg.Storage.Key, clock), noop, nil

	case config.StorageFile:
		store, err := kvstore.NewFile(cfg.Storage.FileDir)
		if err != nil {
			return nil, noop, fmt.Errorf("init file storage: %w", err)
		}
		log.Info("Using file booking storage (dir=%s)", cfg.Storage.FileDir)
		return bookingRepo.NewKVRepository(store, cfg.Storage.Key, clock), noop, nil

	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			_ = rdb.Close()
			return nil, noop, fmt.Errorf("ping redis %s: %w", cfg.Storage.Redis.Addr, err)
		}
		log.Info("Using redis booking storage (addr=%s, db=%d)", cfg.Storage.Redis.Addr, cfg.Storage.Redis.DB)

		store := kvstore.NewRedis(rdb, "")
		return bookingRepo.NewKVRepository(store, cfg.Storage.Key, clock), func() { _ = rdb.Close() }, nil

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			return nil, noop, fmt.Errorf("open database: %w", err)
		}

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("ping database: %w", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		txMgr := txmanager.NewTransactionManager(db)
		return bookingRepo.NewPostgresRepository(db, txMgr, clock), func() { _ = db.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
