package domain

import "time"

// Default policy values
const (
	DefaultHoursStart = 9
	DefaultHoursEnd   = 22

	DefaultMaxPerDay  = 3
	DefaultMaxPerSlot = 2

	DefaultPrepDuration    = time.Hour
	DefaultCleanupDuration = time.Hour

	// DefaultServiceDuration используется для неизвестных кодов пакетов.
	// Неизвестный код не является ошибкой: длительность мягко откатывается
	// к двум часам. Это осознанная политика, а не баг.
	DefaultServiceDuration = 2 * time.Hour
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// defaultServiceDurations длительность живого обслуживания по пакетам
var defaultServiceDurations = map[PackageCode]time.Duration{
	PackageSmall:  2 * time.Hour,
	PackageMedium: 2*time.Hour + 30*time.Minute,
	PackageLarge:  3 * time.Hour,
}

// DefaultServiceDurations возвращает копию таблицы длительностей по умолчанию
func DefaultServiceDurations() map[PackageCode]time.Duration {
	durations := make(map[PackageCode]time.Duration, len(defaultServiceDurations))
	for code, d := range defaultServiceDurations {
		durations[code] = d
	}
	return durations
}
