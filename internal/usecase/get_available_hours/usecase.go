package get_available_hours

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/integrations/calendarservice"
)

// UseCase use case для получения предлагаемых стартовых часов на дату
type UseCase struct {
	policy       domain.BookingPolicy
	calendar     CalendarClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(policy domain.BookingPolicy, calendar CalendarClient, logger Logger) *UseCase {
	return &UseCase{
		policy:       policy,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных часов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableHours: date=%s, package=%s",
		req.Date.Format(domain.DateFormat), req.Package)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableHours: validation failed: %v", err)
		return nil, err
	}

	// Дата интерпретируется как гражданская дата в зоне сервиса
	year, month, day := req.Date.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, uc.policy.Location)

	// 2. Даты в прошлом не обслуживаем
	now := uc.timeProvider.Now().In(uc.policy.Location)
	if isDateInPast(date, now) {
		uc.logger.Warn("GetAvailableHours: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Одно чтение календаря покрывает и границы дня, и окна крайних часов
	from, to := readRange(uc.policy, date, req.Package)
	events, err := uc.calendar.ListEvents(ctx, from, to, "")
	if err != nil {
		uc.logger.Error("GetAvailableHours: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarRead, err)
	}

	bookings := calendarservice.ToDomainBookings(events)

	// 4. Применяем проверки допуска к каждому целому часу
	hours := offerableHours(uc.policy, date, req.Package, now, bookings)

	uc.logger.Info("GetAvailableHours: %d offerable hours for date=%s, package=%s",
		len(hours), date.Format(domain.DateFormat), req.Package)

	return &Response{
		Date:    date,
		Package: req.Package,
		Hours:   hours,
	}, nil
}
