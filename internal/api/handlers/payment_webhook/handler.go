package payment_webhook

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/domain"
	admitBooking "github.com/m04kA/SMC-CateringService/internal/usecase/admit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректное время начала, ожидается RFC 3339"
)

type Handler struct {
	useCase AdmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase AdmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/webhooks/payment
//
// Политика ответов: бизнес-отказы (поля, часы, ёмкость) подтверждаются
// статусом 200 с кодом исхода в теле — иначе провайдер будет доставлять
// событие бесконечно. 500 возвращается только для сбоев внешнего I/O,
// где повторная доставка может помочь.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PaymentEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /webhooks/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /webhooks/payment - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, admitBooking.ErrMissingFields), errors.Is(err, admitBooking.ErrInvalidInput):
			h.acknowledgeRejection(w, req.SessionID, domain.OutcomeMissingFields, err)

		case errors.Is(err, admitBooking.ErrOutsideBusinessHours):
			h.acknowledgeRejection(w, req.SessionID, domain.OutcomeOutsideBusinessHours, err)

		case errors.Is(err, admitBooking.ErrDayCapacityExceeded):
			h.acknowledgeRejection(w, req.SessionID, domain.OutcomeDayCapacityExceeded, err)

		case errors.Is(err, admitBooking.ErrOverlapCapacityExceeded):
			h.acknowledgeRejection(w, req.SessionID, domain.OutcomeOverlapCapacityExceeded, err)

		default:
			// Сбой календаря или иная внутренняя ошибка: отдаём 500, провайдер
			// доставит событие повторно, токен защитит от двойного коммита
			h.logger.Error("POST /webhooks/payment - External failure: session=%s, error=%v", req.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	outcome := domain.OutcomeCommitted
	if result.AlreadyExists {
		outcome = domain.OutcomeAlreadyExists
	}

	h.logger.Info("POST /webhooks/payment - Acknowledged: session=%s, outcome=%s, booking_id=%s",
		req.SessionID, outcome, result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, WebhookResponse{
		Outcome:   string(outcome),
		BookingID: result.BookingID,
	})
}

// acknowledgeRejection подтверждает приём события с бизнес-отказом
func (h *Handler) acknowledgeRejection(w http.ResponseWriter, sessionID string, outcome domain.OutcomeCode, err error) {
	h.logger.Warn("POST /webhooks/payment - Rejected: session=%s, outcome=%s: %v", sessionID, outcome, err)
	handlers.RespondJSON(w, http.StatusOK, WebhookResponse{
		Outcome: string(outcome),
		Detail:  err.Error(),
	})
}
