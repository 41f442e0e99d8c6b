package domain

import "time"

// OutcomeCode is the stable machine-readable result of one admission attempt
type OutcomeCode string

const (
	OutcomeCommitted               OutcomeCode = "committed"
	OutcomeAlreadyExists           OutcomeCode = "already_exists"
	OutcomeMissingFields           OutcomeCode = "missing_fields"
	OutcomeOutsideBusinessHours    OutcomeCode = "outside_business_hours"
	OutcomeDayCapacityExceeded     OutcomeCode = "day_capacity_exceeded"
	OutcomeOverlapCapacityExceeded OutcomeCode = "overlap_capacity_exceeded"
	OutcomeCalendarReadFailed      OutcomeCode = "calendar_read_failed"
	OutcomeCalendarWriteFailed     OutcomeCode = "calendar_write_failed"
)

// Entry points recorded in the admission outcome log
const (
	EntryPointPaymentWebhook = "payment_webhook"
	EntryPointDirectAPI      = "direct_api"
)

// AdmissionOutcome аудит-запись одной попытки допуска бронирования.
// Пишется для каждого запроса — и для успешных, и для отклонённых, —
// чтобы операторы видели причины отказов (платёжный вебхук всегда отвечает 200).
type AdmissionOutcome struct {
	ID             string
	EntryPoint     string
	RequesterName  string
	Package        PackageCode
	Offering       OfferingCode
	RequestedStart time.Time
	Outcome        OutcomeCode
	Detail         string

	IdempotencyToken  *string
	ExternalBookingID *string

	CreatedAt time.Time
}

// IsRejection возвращает true для бизнес-отказов (не для успеха и не для дублей)
func (o *AdmissionOutcome) IsRejection() bool {
	return o.Outcome != OutcomeCommitted && o.Outcome != OutcomeAlreadyExists
}
