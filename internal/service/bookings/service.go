package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/BikeWerkstatt-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/availability"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/bookings/models"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/export"
)

// Service сервис администрирования бронирований
type Service struct {
	bookingRepo  BookingRepository
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
// metrics может быть nil
func NewService(
	bookingRepo BookingRepository,
	metrics Metrics,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// List возвращает бронирования, отсортированные по дате и времени (сначала новые)
// Опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.BookingListResponse, error) {
	bookings, err := s.list(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID возвращает бронирование по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Stats считает бронирования по статусам
func (s *Service) Stats(ctx context.Context) (*models.StatsResponse, error) {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	stats := &models.StatsResponse{Total: len(bookings)}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusRequested:
			stats.Requested++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusCanceled:
			stats.Canceled++
		}
	}

	return stats, nil
}

// UpdateStatus меняет статус бронирования
// Отсутствующее бронирование - не ошибка: возвращается nil, false
// Восстановление отмененного бронирования проверяется на конфликт с активными
// в той же критической секции хранилища, что и запись статуса
func (s *Service) UpdateStatus(ctx context.Context, id string, status string) (*models.BookingResponse, bool, error) {
	s.logger.Info("UpdateStatus: booking id=%s, status=%s", id, status)

	newStatus, ok := domain.ParseBookingStatus(status)
	if !ok {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", status, id)
		return nil, false, ErrInvalidStatus
	}

	var previous domain.BookingStatus
	updated, err := s.bookingRepo.UpdateStatusIfFree(ctx, id, newStatus,
		func(current *domain.Booking, sameDay []*domain.Booking) error {
			previous = current.Status
			if current.IsCanceled() && newStatus != domain.StatusCanceled {
				return s.checkSlotFree(current, sameDay)
			}
			return nil
		})
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			s.logger.Warn("UpdateStatus: booking id=%s not found", id)
			return nil, false, nil
		case errors.Is(err, ErrSlotNotAvailable):
			return nil, true, ErrSlotNotAvailable
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
		return nil, false, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if s.metrics != nil {
		s.metrics.StatusChanged(string(newStatus))
	}
	s.logger.Info("UpdateStatus: booking id=%s %s -> %s", id, previous, newStatus)

	return models.FromDomainBooking(updated), true, nil
}

// Delete удаляет бронирование; отсутствующее бронирование - не ошибка
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return false, nil
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return false, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	return true, nil
}

// Reset удаляет все бронирования (демо-режим)
func (s *Service) Reset(ctx context.Context) error {
	if err := s.bookingRepo.Clear(ctx); err != nil {
		s.logger.Error("Reset: repository error: %v", err)
		return fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
	}

	s.logger.Warn("Reset: all bookings deleted")
	return nil
}

// Export формирует CSV выгрузку в том же порядке и с тем же фильтром, что и List
func (s *Service) Export(ctx context.Context, req *models.ListRequest) (*models.ExportResponse, error) {
	bookings, err := s.list(ctx, req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Export: exporting %d bookings", len(bookings))
	return &models.ExportResponse{
		FileName:    export.FileName(s.timeProvider.Now()),
		ContentType: export.ContentType,
		Content:     export.GenerateCSV(bookings),
	}, nil
}

func (s *Service) list(ctx context.Context, req *models.ListRequest) ([]*domain.Booking, error) {
	var filter domain.BookingsFilter
	if req != nil && req.Status != nil && *req.Status != "" {
		status, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("List: invalid status filter=%s", *req.Status)
			return nil, ErrInvalidStatus
		}
		filter.Status = &status
	}

	all, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	bookings := make([]*domain.Booking, 0, len(all))
	for _, b := range all {
		if filter.Matches(b) {
			bookings = append(bookings, b)
		}
	}

	sortNewestFirst(bookings)
	return bookings, nil
}

// checkSlotFree проверяет, что восстанавливаемое бронирование не пересекается с активными
func (s *Service) checkSlotFree(b *domain.Booking, sameDay []*domain.Booking) error {
	if blocking := availability.FindConflict(
		sameDay, b.Date, b.Time, b.AppointmentType.DurationMinutes, b.AppointmentType.BufferMinutes, b.ID,
	); blocking != nil {
		s.logger.Warn("UpdateStatus: cannot restore booking id=%s, slot taken by id=%s", b.ID, blocking.ID)
		return ErrSlotNotAvailable
	}

	return nil
}

// sortNewestFirst сортирует по дате, затем по времени, по убыванию
func sortNewestFirst(bookings []*domain.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Time.IsAfter(b.Time)
	})
}
