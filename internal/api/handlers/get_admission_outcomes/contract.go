package get_admission_outcomes

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/service/bookings/models"
)

type BookingsService interface {
	GetDayOutcomes(ctx context.Context, date time.Time) (*models.OutcomesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
