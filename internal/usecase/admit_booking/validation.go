package admit_booking

import "fmt"

// validateRequest валидирует обязательные поля и денежные суммы запроса
func validateRequest(req *Request) error {
	if req.RequesterName == "" {
		return fmt.Errorf("%w: requester name is required", ErrMissingFields)
	}

	if req.Package == "" {
		return fmt.Errorf("%w: package code is required", ErrMissingFields)
	}

	if req.Offering == "" {
		return fmt.Errorf("%w: offering code is required", ErrMissingFields)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: start time is required", ErrMissingFields)
	}

	if req.TotalAmount != nil && *req.TotalAmount < 0 {
		return fmt.Errorf("%w: total amount must be non-negative", ErrInvalidInput)
	}

	if req.DepositAmount != nil {
		if *req.DepositAmount < 0 {
			return fmt.Errorf("%w: deposit amount must be non-negative", ErrInvalidInput)
		}
		if req.TotalAmount != nil && *req.DepositAmount > *req.TotalAmount {
			return fmt.Errorf("%w: deposit must not exceed total", ErrInvalidInput)
		}
	}

	return nil
}
