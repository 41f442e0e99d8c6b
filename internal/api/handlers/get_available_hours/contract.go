package get_available_hours

import (
	"context"

	getAvailableHours "github.com/m04kA/SMC-CateringService/internal/usecase/get_available_hours"
)

type GetAvailableHoursUseCase interface {
	Execute(ctx context.Context, req *getAvailableHours.Request) (*getAvailableHours.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
