package domain

import (
	"fmt"
	"time"
)

// BookingPolicy is the immutable scheduling configuration threaded through
// every calculation. Never ambient global state, so tests can vary limits
// per case.
type BookingPolicy struct {
	Location *time.Location

	// Рабочие часы: полуоткрытый интервал [HoursStart, HoursEnd).
	// Старт ровно в HoursEnd отклоняется.
	HoursStart int
	HoursEnd   int

	MaxPerDay  int
	MaxPerSlot int

	PrepDuration    time.Duration
	CleanupDuration time.Duration

	ServiceDurations     map[PackageCode]time.Duration
	DefaultServicePeriod time.Duration
}

// DefaultPolicy returns the policy with default limits in the given timezone
func DefaultPolicy(loc *time.Location) BookingPolicy {
	return BookingPolicy{
		Location:             loc,
		HoursStart:           DefaultHoursStart,
		HoursEnd:             DefaultHoursEnd,
		MaxPerDay:            DefaultMaxPerDay,
		MaxPerSlot:           DefaultMaxPerSlot,
		PrepDuration:         DefaultPrepDuration,
		CleanupDuration:      DefaultCleanupDuration,
		ServiceDurations:     DefaultServiceDurations(),
		DefaultServicePeriod: DefaultServiceDuration,
	}
}

// ServiceDuration returns the live-service duration for a package code.
// Unknown codes fall back to the default duration instead of erroring.
func (p BookingPolicy) ServiceDuration(code PackageCode) time.Duration {
	if d, ok := p.ServiceDurations[code]; ok {
		return d
	}
	return p.DefaultServicePeriod
}

// OutsideHoursError возвращается, когда запрошенный старт выпадает из рабочих часов
type OutsideHoursError struct {
	ObservedHour int
	HoursStart   int
	HoursEnd     int
}

func (e *OutsideHoursError) Error() string {
	return fmt.Sprintf("domain: start hour %02d:00 is outside business hours [%02d:00, %02d:00)",
		e.ObservedHour, e.HoursStart, e.HoursEnd)
}

// ValidateBusinessHours проверяет, что локальный час старта попадает в рабочие часы.
// Час вычисляется по гражданскому локальному времени зоны (через tz database),
// а не арифметикой UTC-смещений: смещение меняется на переходах летнего времени
// и должно выводиться для каждого календарного дня отдельно.
func (p BookingPolicy) ValidateBusinessHours(start time.Time) error {
	hour := start.In(p.Location).Hour()
	if hour < p.HoursStart || hour >= p.HoursEnd {
		return &OutsideHoursError{
			ObservedHour: hour,
			HoursStart:   p.HoursStart,
			HoursEnd:     p.HoursEnd,
		}
	}
	return nil
}

// OperationalWindow is the full span a booking occupies on the calendar:
// prep + live service + cleanup. Derived on demand, never persisted.
type OperationalWindow struct {
	Start time.Time
	End   time.Time
}

// Duration возвращает полную длительность окна
func (w OperationalWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps проверяет реальное пересечение со спаном [start, end).
// Строгие неравенства: граничащие интервалы не считаются пересекающимися.
func (w OperationalWindow) Overlaps(start, end time.Time) bool {
	return start.Before(w.End) && end.After(w.Start)
}

// OperationalWindow derives the operational window for a requested start:
// [start - prep, start + service + cleanup).
func (p BookingPolicy) OperationalWindow(start time.Time, code PackageCode) OperationalWindow {
	return OperationalWindow{
		Start: start.Add(-p.PrepDuration),
		End:   start.Add(p.ServiceDuration(code) + p.CleanupDuration),
	}
}

// DayBounds is the local midnight-to-midnight span of one calendar day,
// expressed as absolute instants.
type DayBounds struct {
	Start time.Time
	End   time.Time
}

// Contains возвращает true, если окно целиком лежит внутри дня
func (d DayBounds) Contains(w OperationalWindow) bool {
	return !w.Start.Before(d.Start) && !w.End.After(d.End)
}

// CalendarDayBounds returns the local calendar day containing the instant.
// time.Date разрешает полночь через tz database, поэтому дни длиной 23/25
// часов на переходах летнего времени обрабатываются корректно.
func (p BookingPolicy) CalendarDayBounds(at time.Time) DayBounds {
	local := at.In(p.Location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, p.Location)
	return DayBounds{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	}
}
