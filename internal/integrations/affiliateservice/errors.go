package affiliateservice

import "errors"

var (
	// ErrPINNotFound возвращается, когда PIN не принадлежит ни одному партнёру
	ErrPINNotFound = errors.New("affiliate not found for pin")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("affiliateservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("affiliateservice client: invalid response")
)
