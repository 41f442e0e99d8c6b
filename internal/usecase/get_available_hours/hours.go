package get_available_hours

import (
	"time"

	"github.com/m04kA/SMC-CateringService/internal/domain"
	"github.com/m04kA/SMC-CateringService/pkg/types"
)

// offerableHours вычисляет предлагаемые стартовые часы на дату.
// К каждому целому часу из рабочего диапазона применяются те же проверки, что
// и при допуске: дневной лимит для всего дня, лимит пересечений — для
// операционного окна конкретного часа.
//
// Часы, уже прошедшие относительно now, не предлагаются.
func offerableHours(
	policy domain.BookingPolicy,
	date time.Time,
	pkg domain.PackageCode,
	now time.Time,
	bookings []*domain.ExistingBooking,
) []Hour {
	day := policy.CalendarDayBounds(date)

	// Дневной лимит действует на весь день: исчерпан — предлагать нечего
	if domain.CountActiveOnDay(bookings, day) >= policy.MaxPerDay {
		return []Hour{}
	}

	result := make([]Hour, 0, policy.HoursEnd-policy.HoursStart)

	for hour := policy.HoursStart; hour < policy.HoursEnd; hour++ {
		start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, policy.Location)

		// Прошедшие часы сегодняшнего дня не предлагаем
		if start.Before(now) {
			continue
		}

		// Переход на летнее время может съесть час: такой локальный час на
		// этой дате не существует
		if start.Hour() != hour {
			continue
		}

		window := policy.OperationalWindow(start, pkg)
		overlapping := domain.CountOverlapping(bookings, window)
		if overlapping >= policy.MaxPerSlot {
			continue
		}

		result = append(result, Hour{
			StartTime:      types.NewTimeString(start),
			WindowStart:    types.NewTimeString(window.Start.In(policy.Location)),
			WindowEnd:      types.NewTimeString(window.End.In(policy.Location)),
			AvailableSpots: policy.MaxPerSlot - overlapping,
			TotalSpots:     policy.MaxPerSlot,
		})
	}

	return result
}

// readRange возвращает диапазон чтения календаря, покрывающий и границы дня
// (для дневного лимита), и операционные окна всех кандидатов (окна крайних
// часов могут выходить за полночь)
func readRange(policy domain.BookingPolicy, date time.Time, pkg domain.PackageCode) (time.Time, time.Time) {
	day := policy.CalendarDayBounds(date)

	firstStart := time.Date(date.Year(), date.Month(), date.Day(), policy.HoursStart, 0, 0, 0, policy.Location)
	lastStart := time.Date(date.Year(), date.Month(), date.Day(), policy.HoursEnd-1, 0, 0, 0, policy.Location)

	first := policy.OperationalWindow(firstStart, pkg)
	last := policy.OperationalWindow(lastStart, pkg)

	from := day.Start
	if first.Start.Before(from) {
		from = first.Start
	}

	to := day.End
	if last.End.After(to) {
		to = last.End
	}

	return from, to
}

// isDateInPast проверяет, что дата раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
