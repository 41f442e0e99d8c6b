package create_booking

import (
	"context"

	"github.com/m04kA/SMC-CateringService/internal/integrations/affiliateservice"
	admitBooking "github.com/m04kA/SMC-CateringService/internal/usecase/admit_booking"
)

type AdmitBookingUseCase interface {
	Execute(ctx context.Context, req *admitBooking.Request) (*admitBooking.Response, error)
}

type AffiliateServiceClient interface {
	ResolvePIN(ctx context.Context, pin string) (*affiliateservice.Affiliate, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
