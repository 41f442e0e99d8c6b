package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/integrations/affiliateservice"
	admitBooking "github.com/m04kA/SMC-CateringService/internal/usecase/admit_booking"
	"github.com/m04kA/SMC-CateringService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgPINRequired        = "PIN обязателен"
	msgInvalidPIN         = "неверный PIN"
	msgMissingFields      = "не заполнены обязательные поля"
	msgInvalidInput       = "некорректные входные данные"
	msgOutsideHours       = "время начала вне рабочих часов"
	msgDayCapExceeded     = "на выбранную дату больше нет мест"
	msgOverlapCapExceeded = "выбранное время уже занято"
)

type Handler struct {
	useCase         AdmitBookingUseCase
	affiliateClient AffiliateServiceClient
	location        *time.Location
	logger          Logger
}

func NewHandler(
	useCase AdmitBookingUseCase,
	affiliateClient AffiliateServiceClient,
	location *time.Location,
	logger Logger,
) *Handler {
	return &Handler{
		useCase:         useCase,
		affiliateClient: affiliateClient,
		location:        location,
		logger:          logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Проверка учётных данных — только для прямого входа; допуск дальше общий
	if req.PIN == "" {
		h.logger.Warn("POST /bookings - PIN missing")
		handlers.RespondForbidden(w, msgPINRequired)
		return
	}

	affiliate, err := h.affiliateClient.ResolvePIN(r.Context(), req.PIN)
	if err != nil {
		if errors.Is(err, affiliateservice.ErrPINNotFound) {
			h.logger.Warn("POST /bookings - Invalid PIN")
			handlers.RespondForbidden(w, msgInvalidPIN)
			return
		}
		h.logger.Error("POST /bookings - Failed to resolve PIN: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, admitBooking.ErrMissingFields):
			h.logger.Warn("POST /bookings - Missing fields: affiliate=%d", affiliate.ID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, admitBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: affiliate=%d", affiliate.ID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, admitBooking.ErrOutsideBusinessHours):
			h.logger.Warn("POST /bookings - Outside business hours: affiliate=%d", affiliate.ID)
			handlers.RespondError(w, http.StatusConflict, msgOutsideHours)

		case errors.Is(err, admitBooking.ErrDayCapacityExceeded):
			h.logger.Warn("POST /bookings - Day capacity exceeded: affiliate=%d", affiliate.ID)
			handlers.RespondError(w, http.StatusConflict, msgDayCapExceeded)

		case errors.Is(err, admitBooking.ErrOverlapCapacityExceeded):
			h.logger.Warn("POST /bookings - Overlap capacity exceeded: affiliate=%d", affiliate.ID)
			handlers.RespondError(w, http.StatusConflict, msgOverlapCapExceeded)

		default:
			h.logger.Error("POST /bookings - Failed to admit booking: affiliate=%d, error=%v", affiliate.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.AlreadyExists {
		h.logger.Info("POST /bookings - Duplicate token, booking already exists: booking_id=%s", result.BookingID)
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /bookings - Booking committed: booking_id=%s, ref=%s, affiliate=%d",
		result.BookingID, result.BookingRef, affiliate.ID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
