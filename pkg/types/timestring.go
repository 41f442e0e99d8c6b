package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени HH:MM
const timeLayout = "15:04"

var (
	// ErrInvalidFormat возвращается при некорректном формате времени
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrOutOfRange = errors.New("types: time out of range")
)

// TimeString локальное время суток в формате "HH:MM" (например, "14:30").
// Используется в HTTP моделях и человекочитаемых описаниях бронирований.
type TimeString string

// NewTimeString создает TimeString из time.Time (часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что значение соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// minutes возвращает количество минут с начала суток
func (t TimeString) minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на m минут вперед.
// Переход через полночь считается ошибкой.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.minutes()
	if err != nil {
		return "", err
	}

	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrOutOfRange, string(t), m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// OnDate собирает абсолютный момент времени из даты date и времени суток t
// в указанной временной зоне
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	total, err := t.minutes()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(date.Year(), date.Month(), date.Day(), total/60, total%60, 0, 0, loc), nil
}
