package get_available_hours

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_hours: invalid input data")

	// ErrInvalidDate возвращается, когда запрошенная дата в прошлом
	ErrInvalidDate = errors.New("get_available_hours: date is in the past")

	// ErrCalendarRead возвращается при сбое чтения из календаря
	ErrCalendarRead = errors.New("get_available_hours: failed to read calendar")
)
