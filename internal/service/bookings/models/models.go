package models

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/integrations/calendarservice"
)

// Response модели операторской стороны

// DayBookingsResponse бронирования календаря за один день
type DayBookingsResponse struct {
	Date     string        `json:"date"`
	Bookings []BookingView `json:"bookings"`
}

// BookingView представление события календаря для оператора
type BookingView struct {
	ID        string            `json:"id"`
	Summary   string            `json:"summary"`
	Start     time.Time         `json:"start"`
	End       time.Time         `json:"end"`
	Status    string            `json:"status"`
	Cancelled bool              `json:"cancelled"`
	Tags      map[string]string `json:"tags,omitempty"`
}

// ToBookingView конвертирует событие календаря в операторское представление
func ToBookingView(event *calendarservice.Event) BookingView {
	return BookingView{
		ID:        event.ID,
		Summary:   event.Summary,
		Start:     event.Start,
		End:       event.End,
		Status:    event.Status,
		Cancelled: event.Status == calendarservice.StatusCancelled,
		Tags:      event.Tags,
	}
}

// OutcomesResponse журнал решений о допуске за период
type OutcomesResponse struct {
	Date     string        `json:"date"`
	Outcomes []OutcomeView `json:"outcomes"`
}

// OutcomeView одна запись журнала
type OutcomeView struct {
	ID                string    `json:"id"`
	EntryPoint        string    `json:"entryPoint"`
	RequesterName     string    `json:"requesterName"`
	Package           string    `json:"package"`
	Offering          string    `json:"offering"`
	RequestedStart    time.Time `json:"requestedStart"`
	Outcome           string    `json:"outcome"`
	Detail            string    `json:"detail,omitempty"`
	IdempotencyToken  *string   `json:"idempotencyToken,omitempty"`
	ExternalBookingID *string   `json:"externalBookingId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// ToOutcomeView конвертирует доменную запись журнала в ответ
func ToOutcomeView(record *domain.AdmissionOutcome) OutcomeView {
	return OutcomeView{
		ID:                record.ID,
		EntryPoint:        record.EntryPoint,
		RequesterName:     record.RequesterName,
		Package:           string(record.Package),
		Offering:          string(record.Offering),
		RequestedStart:    record.RequestedStart,
		Outcome:           string(record.Outcome),
		Detail:            record.Detail,
		IdempotencyToken:  record.IdempotencyToken,
		ExternalBookingID: record.ExternalBookingID,
		CreatedAt:         record.CreatedAt,
	}
}
