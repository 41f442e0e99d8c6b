package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	admitBooking "github.com/m04kA/SMC-CateringService/internal/usecase/admit_booking"
	"github.com/m04kA/SMC-CateringService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PIN string `json:"pin"`

	RequesterName string   `json:"requesterName"`
	Package       string   `json:"package"`   // small | medium | large
	Offering      string   `json:"offering"`  // buffet | bbq | tapas | dinner
	Date          string   `json:"date"`      // "2026-09-12"
	StartTime     string   `json:"startTime"` // "14:00"
	Venue         *string  `json:"venue,omitempty"`
	ContactEmails []string `json:"contactEmails,omitempty"`
	TotalAmount   *float64 `json:"totalAmount,omitempty"`
	DepositAmount *float64 `json:"depositAmount,omitempty"`

	// IdempotencyToken опциональный токен защиты от повторной отправки
	IdempotencyToken *string `json:"idempotencyToken,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID     string `json:"bookingId"`
	BookingRef    string `json:"bookingRef,omitempty"`
	AlreadyExists bool   `json:"alreadyExists,omitempty"`
	WindowStart   string `json:"windowStart"`
	WindowEnd     string `json:"windowEnd"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case:
// дата и время интерпретируются в зоне сервиса
func (r *CreateBookingRequest) ToUseCaseRequest(loc *time.Location) (*admitBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, loc)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	startsAt, err := startTime.OnDate(date, loc)
	if err != nil {
		return nil, err
	}

	return &admitBooking.Request{
		EntryPoint:       domain.EntryPointDirectAPI,
		RequesterName:    r.RequesterName,
		Package:          domain.PackageCode(r.Package),
		Offering:         domain.OfferingCode(r.Offering),
		StartsAt:         startsAt,
		Venue:            r.Venue,
		ContactEmails:    r.ContactEmails,
		TotalAmount:      r.TotalAmount,
		DepositAmount:    r.DepositAmount,
		IdempotencyToken: r.IdempotencyToken,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *admitBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:     resp.BookingID,
		BookingRef:    resp.BookingRef,
		AlreadyExists: resp.AlreadyExists,
		WindowStart:   resp.WindowStart.Format(time.RFC3339),
		WindowEnd:     resp.WindowEnd.Format(time.RFC3339),
	}
}
