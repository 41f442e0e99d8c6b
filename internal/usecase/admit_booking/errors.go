package admit_booking

import "errors"

var (
	// ErrMissingFields возвращается, когда отсутствуют обязательные поля запроса
	ErrMissingFields = errors.New("admit_booking: required fields missing")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admit_booking: invalid input data")

	// ErrOutsideBusinessHours возвращается, когда старт выпадает из рабочих часов
	ErrOutsideBusinessHours = errors.New("admit_booking: start time outside business hours")

	// ErrDayCapacityExceeded возвращается, когда исчерпан дневной лимит бронирований
	ErrDayCapacityExceeded = errors.New("admit_booking: day capacity exceeded")

	// ErrOverlapCapacityExceeded возвращается, когда исчерпан лимит параллельных бронирований
	ErrOverlapCapacityExceeded = errors.New("admit_booking: overlap capacity exceeded")

	// ErrCalendarRead возвращается при сбое чтения из календаря.
	// Может быть временным; повтор — ответственность внешнего триггера.
	ErrCalendarRead = errors.New("admit_booking: failed to read calendar")

	// ErrCalendarWrite возвращается при сбое записи в календарь
	ErrCalendarWrite = errors.New("admit_booking: failed to write calendar")
)
