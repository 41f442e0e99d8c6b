package get_admission_outcomes

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	"github.com/m04kA/SMC-CateringService/internal/domain"
	bookingsService "github.com/m04kA/SMC-CateringService/internal/service/bookings"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/outcomes
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/outcomes - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/outcomes - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDayOutcomes(r.Context(), date)
	if err != nil {
		if errors.Is(err, bookingsService.ErrInvalidInput) {
			h.logger.Warn("GET /admin/outcomes - Invalid input: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		h.logger.Error("GET /admin/outcomes - Failed to get outcomes: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/outcomes - %d records: date=%s", len(result.Outcomes), dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
