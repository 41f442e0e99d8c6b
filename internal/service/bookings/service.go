package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/internal/service/bookings/models"
)

// Service операторская читающая сторона: бронирования дня из календаря и
// журнал решений о допуске из БД
type Service struct {
	policy      domain.BookingPolicy
	calendar    CalendarClient
	outcomeRepo OutcomeRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	policy domain.BookingPolicy,
	calendar CalendarClient,
	outcomeRepo OutcomeRepository,
	logger Logger,
) *Service {
	return &Service{
		policy:      policy,
		calendar:    calendar,
		outcomeRepo: outcomeRepo,
		logger:      logger,
	}
}

// GetDayBookings возвращает все события календаря за календарный день,
// включая отменённые — оператору видна полная картина
func (s *Service) GetDayBookings(ctx context.Context, date time.Time) (*models.DayBookingsResponse, error) {
	s.logger.Info("GetDayBookings: date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := s.dayBounds(date)

	events, err := s.calendar.ListEvents(ctx, day.Start, day.End, "")
	if err != nil {
		s.logger.Error("GetDayBookings: failed to list events: %v", err)
		return nil, fmt.Errorf("%w: list events: %v", ErrInternal, err)
	}

	views := make([]models.BookingView, 0, len(events))
	for _, event := range events {
		views = append(views, models.ToBookingView(event))
	}

	return &models.DayBookingsResponse{
		Date:     day.Start.Format(domain.DateFormat),
		Bookings: views,
	}, nil
}

// GetDayOutcomes возвращает записи журнала допуска, чьё запрошенное время
// старта приходится на указанный день
func (s *Service) GetDayOutcomes(ctx context.Context, date time.Time) (*models.OutcomesResponse, error) {
	s.logger.Info("GetDayOutcomes: date=%s", date.Format(domain.DateFormat))

	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	day := s.dayBounds(date)

	records, err := s.outcomeRepo.ListByPeriod(ctx, day.Start, day.End)
	if err != nil {
		s.logger.Error("GetDayOutcomes: failed to list outcomes: %v", err)
		return nil, fmt.Errorf("%w: list outcomes: %v", ErrInternal, err)
	}

	views := make([]models.OutcomeView, 0, len(records))
	for _, record := range records {
		views = append(views, models.ToOutcomeView(record))
	}

	return &models.OutcomesResponse{
		Date:     day.Start.Format(domain.DateFormat),
		Outcomes: views,
	}, nil
}

// dayBounds интерпретирует дату как гражданский день в зоне сервиса
func (s *Service) dayBounds(date time.Time) domain.DayBounds {
	year, month, day := date.Date()
	local := time.Date(year, month, day, 12, 0, 0, 0, s.policy.Location)
	return s.policy.CalendarDayBounds(local)
}
