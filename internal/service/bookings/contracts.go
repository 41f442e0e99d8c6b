package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/integrations/calendarservice"
)

// CalendarClient интерфейс клиента календарного сервиса
type CalendarClient interface {
	ListEvents(ctx context.Context, from, to time.Time, tag string) ([]*calendarservice.Event, error)
}

// OutcomeRepository интерфейс репозитория журнала решений о допуске
type OutcomeRepository interface {
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.AdmissionOutcome, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
