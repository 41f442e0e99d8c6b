package admit_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/integrations/calendarservice"
)

// UseCase use case допуска бронирования: единственное место, где живёт
// последовательность "валидация → рабочие часы → идемпотентность → ёмкость →
// коммит". Оба входа сервиса вызывают именно его.
type UseCase struct {
	policy      domain.BookingPolicy
	calendar    CalendarClient
	outcomeRepo OutcomeRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	policy domain.BookingPolicy,
	calendar CalendarClient,
	outcomeRepo OutcomeRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		policy:      policy,
		calendar:    calendar,
		outcomeRepo: outcomeRepo,
		logger:      logger,
	}
}

// Execute выполняет допуск бронирования.
//
// Ёмкость проверяется по принципу best-effort: календарь не даёт транзакций,
// поэтому два одновременных запроса могут оба прочитать "2 из 3" и оба
// закоммититься. Это принятый компромисс; защита от дублей одного и того же
// триггера обеспечивается токеном идемпотентности, а не блокировкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdmitBooking: entry=%s, requester=%q, package=%s, offering=%s, start=%s",
		req.EntryPoint, req.RequesterName, req.Package, req.Offering, req.StartsAt.Format(time.RFC3339))

	// 1. Валидация обязательных полей
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdmitBooking: validation failed: %v", err)
		uc.recordOutcome(ctx, req, domain.OutcomeMissingFields, err.Error(), nil)
		return nil, err
	}

	booking := req.toDomain()

	// 2. Рабочие часы (по локальному гражданскому времени зоны)
	if err := uc.policy.ValidateBusinessHours(booking.StartsAt); err != nil {
		uc.logger.Warn("AdmitBooking: %v", err)
		uc.recordOutcome(ctx, req, domain.OutcomeOutsideBusinessHours, err.Error(), nil)
		return nil, fmt.Errorf("%w: %v", ErrOutsideBusinessHours, err)
	}

	// 3. Границы дня и операционное окно
	day := uc.policy.CalendarDayBounds(booking.StartsAt)
	window := uc.policy.OperationalWindow(booking.StartsAt, booking.Package)

	// 4. Идемпотентность: повторная доставка того же триггера должна
	// разрешиться в уже созданное событие без повторных проверок ёмкости
	if booking.HasIdempotencyToken() {
		existing, err := uc.lookupExisting(ctx, day, *booking.IdempotencyToken)
		if err != nil {
			uc.logger.Error("AdmitBooking: idempotency lookup failed: %v", err)
			uc.recordOutcome(ctx, req, domain.OutcomeCalendarReadFailed, err.Error(), nil)
			return nil, fmt.Errorf("%w: idempotency lookup: %v", ErrCalendarRead, err)
		}
		if existing != nil {
			uc.logger.Info("AdmitBooking: duplicate trigger, token resolves to event id=%s", existing.ExternalID)
			uc.recordOutcome(ctx, req, domain.OutcomeAlreadyExists, "", &existing.ExternalID)
			return &Response{
				BookingID:     existing.ExternalID,
				AlreadyExists: true,
				WindowStart:   window.Start,
				WindowEnd:     window.End,
			}, nil
		}
	}

	// 5. Читаем занятость дня одним запросом
	dayEvents, err := uc.calendar.ListEvents(ctx, day.Start, day.End, "")
	if err != nil {
		uc.logger.Error("AdmitBooking: failed to list day bookings: %v", err)
		uc.recordOutcome(ctx, req, domain.OutcomeCalendarReadFailed, err.Error(), nil)
		return nil, fmt.Errorf("%w: list day bookings: %v", ErrCalendarRead, err)
	}

	dayBookings := calendarservice.ToDomainBookings(dayEvents)
	dayCount := domain.CountActiveOnDay(dayBookings, day)

	// Окно около полуночи может выходить за границы дня — тогда для проверки
	// пересечений нужно отдельное чтение по полному окну
	overlapBookings := dayBookings
	if !day.Contains(window) {
		windowEvents, err := uc.calendar.ListEvents(ctx, window.Start, window.End, "")
		if err != nil {
			uc.logger.Error("AdmitBooking: failed to list window bookings: %v", err)
			uc.recordOutcome(ctx, req, domain.OutcomeCalendarReadFailed, err.Error(), nil)
			return nil, fmt.Errorf("%w: list window bookings: %v", ErrCalendarRead, err)
		}
		overlapBookings = calendarservice.ToDomainBookings(windowEvents)
	}

	overlapCount := domain.CountOverlapping(overlapBookings, window)

	// 6. Решение о допуске: дневной лимит раньше лимита пересечений
	decision := uc.policy.Evaluate(dayCount, overlapCount)
	if !decision.Admitted {
		uc.logger.Warn("AdmitBooking: rejected, reason=%s: %s", decision.Reason, decision.Detail)
		uc.recordOutcome(ctx, req, decision.Reason, decision.Detail, nil)

		if decision.Reason == domain.OutcomeDayCapacityExceeded {
			return nil, fmt.Errorf("%w: %s", ErrDayCapacityExceeded, decision.Detail)
		}
		return nil, fmt.Errorf("%w: %s", ErrOverlapCapacityExceeded, decision.Detail)
	}

	uc.logger.Info("AdmitBooking: admitted, day=%d/%d, overlap=%d/%d",
		dayCount, uc.policy.MaxPerDay, overlapCount, uc.policy.MaxPerSlot)

	// 7. Коммит: создаём событие ровно один раз; внутренних повторов нет
	ref := uuid.NewString()
	event, err := uc.calendar.CreateEvent(ctx, uc.buildEventRequest(booking, window, ref))
	if err != nil {
		uc.logger.Error("AdmitBooking: failed to create calendar event: %v", err)
		uc.recordOutcome(ctx, req, domain.OutcomeCalendarWriteFailed, err.Error(), nil)
		return nil, fmt.Errorf("%w: %v", ErrCalendarWrite, err)
	}

	uc.logger.Info("AdmitBooking: committed booking ref=%s, event id=%s", ref, event.ID)
	uc.recordOutcome(ctx, req, domain.OutcomeCommitted, "", &event.ID)

	return &Response{
		BookingID:   event.ID,
		BookingRef:  ref,
		WindowStart: window.Start,
		WindowEnd:   window.End,
	}, nil
}

// lookupExisting ищет неотменённое событие того же календарного дня с данным
// токеном идемпотентности
func (uc *UseCase) lookupExisting(ctx context.Context, day domain.DayBounds, token string) (*domain.ExistingBooking, error) {
	events, err := uc.calendar.ListEvents(ctx, day.Start, day.End, token)
	if err != nil {
		return nil, err
	}

	for _, event := range events {
		booking := event.ToDomain()
		if booking.IsActive() && booking.HasTag(token) {
			return booking, nil
		}
	}

	return nil, nil
}

// buildEventRequest собирает событие календаря: человекочитаемое описание
// плюс машиночитаемые теги (токен идемпотентности — для последующего поиска)
func (uc *UseCase) buildEventRequest(
	booking *domain.BookingRequest,
	window domain.OperationalWindow,
	ref string,
) *calendarservice.CreateEventRequest {
	summary := fmt.Sprintf("Catering: %s — %s / %s", booking.RequesterName, booking.Package, booking.Offering)

	var description strings.Builder
	fmt.Fprintf(&description, "Requester: %s\n", booking.RequesterName)
	fmt.Fprintf(&description, "Package: %s, offering: %s\n", booking.Package, booking.Offering)
	fmt.Fprintf(&description, "Live service starts: %s\n", booking.StartsAt.In(uc.policy.Location).Format("2006-01-02 15:04"))
	fmt.Fprintf(&description, "Operational window: %s - %s (prep and cleanup included)\n",
		window.Start.In(uc.policy.Location).Format("15:04"),
		window.End.In(uc.policy.Location).Format("15:04"))
	if booking.TotalAmount != nil {
		fmt.Fprintf(&description, "Total: %.2f\n", *booking.TotalAmount)
	}
	if booking.DepositAmount != nil {
		fmt.Fprintf(&description, "Deposit: %.2f\n", *booking.DepositAmount)
	}
	fmt.Fprintf(&description, "Booking ref: %s\n", ref)

	tags := map[string]string{
		calendarservice.TagBookingRef: ref,
		calendarservice.TagPackage:    string(booking.Package),
		calendarservice.TagOffering:   string(booking.Offering),
	}
	if booking.HasIdempotencyToken() {
		tags[calendarservice.TagIdempotencyToken] = *booking.IdempotencyToken
	}

	return &calendarservice.CreateEventRequest{
		Summary:     summary,
		Location:    booking.Venue,
		Description: description.String(),
		Start:       window.Start,
		End:         window.End,
		Timezone:    uc.policy.Location.String(),
		Attendees:   booking.ContactEmails,
		Tags:        tags,
	}
}

// recordOutcome пишет решение в журнал для операторов. Запись best-effort:
// сбой журнала логируется, но не меняет результат допуска.
func (uc *UseCase) recordOutcome(
	ctx context.Context,
	req *Request,
	code domain.OutcomeCode,
	detail string,
	externalID *string,
) {
	record := &domain.AdmissionOutcome{
		ID:                uuid.NewString(),
		EntryPoint:        req.EntryPoint,
		RequesterName:     req.RequesterName,
		Package:           req.Package,
		Offering:          req.Offering,
		RequestedStart:    req.StartsAt,
		Outcome:           code,
		Detail:            detail,
		IdempotencyToken:  req.IdempotencyToken,
		ExternalBookingID: externalID,
	}

	if _, err := uc.outcomeRepo.Create(ctx, record); err != nil {
		uc.logger.Error("AdmitBooking: failed to record outcome %s: %v", code, err)
	}
}
