package get_available_hours

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.Package == "" {
		return fmt.Errorf("%w: package code is required", ErrInvalidInput)
	}

	return nil
}
