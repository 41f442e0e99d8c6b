package get_available_hours

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/integrations/calendarservice"
)

// CalendarClient интерфейс клиента календарного сервиса
type CalendarClient interface {
	// ListEvents возвращает события календаря в диапазоне [from, to)
	ListEvents(ctx context.Context, from, to time.Time, tag string) ([]*calendarservice.Event, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
