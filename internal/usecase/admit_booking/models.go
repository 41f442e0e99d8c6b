package admit_booking

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
)

// Request модель запроса на допуск бронирования.
// Оба входа (платёжный вебхук и прямой API) собирают одну и ту же модель —
// логика окна и ёмкости нигде не дублируется.
type Request struct {
	EntryPoint string // domain.EntryPointPaymentWebhook | domain.EntryPointDirectAPI

	RequesterName string
	Package       domain.PackageCode
	Offering      domain.OfferingCode
	StartsAt      time.Time

	Venue         *string
	ContactEmails []string
	TotalAmount   *float64
	DepositAmount *float64

	// IdempotencyToken уникальный идентификатор триггера (ID платёжной сессии
	// для вебхука). Отсутствие токена отключает защиту от дублей.
	IdempotencyToken *string
}

// toDomain конвертирует запрос в доменную модель
func (r *Request) toDomain() *domain.BookingRequest {
	return &domain.BookingRequest{
		RequesterName:    r.RequesterName,
		Package:          r.Package,
		Offering:         r.Offering,
		StartsAt:         r.StartsAt,
		Venue:            r.Venue,
		ContactEmails:    r.ContactEmails,
		TotalAmount:      r.TotalAmount,
		DepositAmount:    r.DepositAmount,
		IdempotencyToken: r.IdempotencyToken,
	}
}

// Response модель результата допуска
type Response struct {
	BookingID  string // внешний ID события календаря
	BookingRef string // внутренняя ссылка бронирования (пустая для дублей)

	// AlreadyExists true, когда триггер с тем же токеном уже был обработан.
	// Это успех-no-op, а не отказ.
	AlreadyExists bool

	WindowStart time.Time
	WindowEnd   time.Time
}
