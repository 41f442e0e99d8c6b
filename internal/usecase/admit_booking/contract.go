package admit_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/integrations/calendarservice"
)

// CalendarClient интерфейс клиента внешнего календаря.
// Календарь — единственный источник истины о занятых слотах.
type CalendarClient interface {
	ListEvents(ctx context.Context, from, to time.Time, tag string) ([]*calendarservice.Event, error)
	CreateEvent(ctx context.Context, req *calendarservice.CreateEventRequest) (*calendarservice.Event, error)
}

// OutcomeRepository интерфейс журнала решений о допуске
type OutcomeRepository interface {
	Create(ctx context.Context, record *domain.AdmissionOutcome) (*domain.AdmissionOutcome, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
