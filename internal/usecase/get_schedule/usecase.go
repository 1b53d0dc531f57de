package get_schedule

import (
	"context"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/domain"
	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/availability"
)

// UseCase use case для получения часов работы на дату
type UseCase struct {
	engine *availability.Engine
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(engine *availability.Engine) *UseCase {
	return &UseCase{engine: engine}
}

// Execute возвращает часы работы по недельному шаблону
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, ErrInvalidInput
	}

	date := domain.DateOnly(req.Date)
	businessDay := uc.engine.IsBusinessDay(date)

	return &Response{
		Date:          date,
		OpeningHours:  uc.engine.OpeningHours(date),
		IsBusinessDay: businessDay,
		IsBookable:    businessDay && !uc.engine.IsDateInPast(date) && !uc.engine.IsDateTooFarAhead(date),
	}, nil
}
