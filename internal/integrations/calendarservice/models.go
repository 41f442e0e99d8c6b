package calendarservice

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

// Event statuses
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Ключи структурированных тегов, сохраняемых на созданных событиях.
// По тегу idempotency_token события находятся при повторной доставке триггера.
const (
	TagIdempotencyToken = "idempotency_token"
	TagBookingRef       = "booking_ref"
	TagPackage          = "package"
	TagOffering         = "offering"
)

// Event событие внешнего календаря
type Event struct {
	ID          string            `json:"id"`
	Summary     string            `json:"summary"`
	Location    *string           `json:"location,omitempty"`
	Description string            `json:"description,omitempty"`
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	Timezone    string            `json:"timezone,omitempty"`
	Attendees   []string          `json:"attendees,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
	Status      string            `json:"status"`
}

// IsCancelled возвращает true для отменённых событий
func (e *Event) IsCancelled() bool {
	return e.Status == StatusCancelled
}

// ToDomain конвертирует событие календаря в read-only проекцию бронирования
func (e *Event) ToDomain() *domain.ExistingBooking {
	booking := &domain.ExistingBooking{
		ExternalID: e.ID,
		Start:      e.Start,
		End:        e.End,
		Cancelled:  e.IsCancelled(),
	}

	if tag, ok := e.Tags[TagIdempotencyToken]; ok && tag != "" {
		booking.IdempotencyTag = &tag
	}

	return booking
}

// ToDomainBookings конвертирует список событий в проекции бронирований
func ToDomainBookings(events []*Event) []*domain.ExistingBooking {
	bookings := make([]*domain.ExistingBooking, len(events))
	for i, event := range events {
		bookings[i] = event.ToDomain()
	}
	return bookings
}

// CreateEventRequest запрос на создание события календаря
type CreateEventRequest struct {
	Summary     string            `json:"summary"`
	Location    *string           `json:"location,omitempty"`
	Description string            `json:"description,omitempty"`
	Start       time.Time         `json:"start"`
	End         time.Time         `json:"end"`
	Timezone    string            `json:"timezone,omitempty"`
	Attendees   []string          `json:"attendees,omitempty"`
	Tags        map[string]string `json:"tags,omitempty"`
}

// listEventsResponse ответ календаря на запрос списка событий
type listEventsResponse struct {
	Events []*Event `json:"events"`
}

// ErrorResponse модель ошибки от календарного сервиса
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
