package domain

import "time"

// PackageCode represents the catering package tier.
// The tier determines the live-service duration of a booking.
type PackageCode string

const (
	PackageSmall  PackageCode = "small"
	PackageMedium PackageCode = "medium"
	PackageLarge  PackageCode = "large"
)

// OfferingCode represents the primary menu offering of a booking
type OfferingCode string

const (
	OfferingBuffet OfferingCode = "buffet"
	OfferingBBQ    OfferingCode = "bbq"
	OfferingTapas  OfferingCode = "tapas"
	OfferingDinner OfferingCode = "dinner"
)

// BookingRequest represents an incoming booking request.
// Immutable once constructed; produced by an intake step (payment webhook
// payload or the direct booking API).
type BookingRequest struct {
	RequesterName string
	Package       PackageCode
	Offering      OfferingCode
	StartsAt      time.Time

	Venue         *string
	ContactEmails []string
	TotalAmount   *float64
	DepositAmount *float64

	// IdempotencyToken уникальный идентификатор триггера (например, ID платёжной сессии).
	// Отсутствие токена отключает защиту от дублей.
	IdempotencyToken *string
}

// HasIdempotencyToken returns true if the request carries a deduplication token
func (r *BookingRequest) HasIdempotencyToken() bool {
	return r.IdempotencyToken != nil && *r.IdempotencyToken != ""
}

// ExistingBooking is a read-only projection of a booking already committed
// to the external calendar. The service only ever reads these.
type ExistingBooking struct {
	ExternalID     string
	Start          time.Time
	End            time.Time
	Cancelled      bool
	IdempotencyTag *string
}

// IsActive returns true if the booking still occupies capacity
func (b *ExistingBooking) IsActive() bool {
	return !b.Cancelled
}

// HasTag returns true if the booking carries the given idempotency tag
func (b *ExistingBooking) HasTag(token string) bool {
	return b.IdempotencyTag != nil && *b.IdempotencyTag == token
}
