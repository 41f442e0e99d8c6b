package calendarservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("calendarservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("calendarservice client: invalid response")

	// ErrUnavailable возвращается, когда календарь недоступен (транспортная ошибка).
	// Повторная попытка — ответственность внешнего триггера, сервис её не делает.
	ErrUnavailable = errors.New("calendarservice client: service unavailable")
)
