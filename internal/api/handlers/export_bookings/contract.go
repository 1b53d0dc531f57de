package export_bookings

import (
	"context"

	"github.com/m04kA/BikeWerkstatt-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Export(ctx context.Context, req *models.ListRequest) (*models.ExportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
