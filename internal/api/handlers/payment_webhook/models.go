package payment_webhook

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	admitBooking "github.com/m04kA/SMC-CateringService/internal/usecase/admit_booking"
	"github.com/m04kA/SMC-CateringService/pkg/ptr"
)

// PaymentEventRequest событие "оплата завершена" от платёжного провайдера.
// Доставка at-least-once: SessionID служит токеном идемпотентности.
type PaymentEventRequest struct {
	SessionID string         `json:"sessionId"`
	Booking   BookingPayload `json:"booking"`
}

// BookingPayload данные бронирования внутри платёжного события
type BookingPayload struct {
	RequesterName string   `json:"requesterName"`
	Package       string   `json:"package"`
	Offering      string   `json:"offering"`
	StartsAt      string   `json:"startsAt"` // RFC 3339
	Venue         *string  `json:"venue,omitempty"`
	ContactEmails []string `json:"contactEmails,omitempty"`
	TotalAmount   *float64 `json:"totalAmount,omitempty"`
	DepositAmount *float64 `json:"depositAmount,omitempty"`
}

// WebhookResponse подтверждение приёма события.
// Outcome сообщается всегда, в том числе для бизнес-отказов: провайдер не
// должен повторять доставку из-за них.
type WebhookResponse struct {
	Outcome   string `json:"outcome"`
	BookingID string `json:"bookingId,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// ToUseCaseRequest конвертирует платёжное событие в модель use case
func (r *PaymentEventRequest) ToUseCaseRequest() (*admitBooking.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, r.Booking.StartsAt)
	if err != nil {
		return nil, err
	}

	var token *string
	if r.SessionID != "" {
		token = ptr.Ptr(r.SessionID)
	}

	return &admitBooking.Request{
		EntryPoint:       domain.EntryPointPaymentWebhook,
		RequesterName:    r.Booking.RequesterName,
		Package:          domain.PackageCode(r.Booking.Package),
		Offering:         domain.OfferingCode(r.Booking.Offering),
		StartsAt:         startsAt,
		Venue:            r.Booking.Venue,
		ContactEmails:    r.Booking.ContactEmails,
		TotalAmount:      r.Booking.TotalAmount,
		DepositAmount:    r.Booking.DepositAmount,
		IdempotencyToken: token,
	}, nil
}
