package get_available_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CateringService/internal/api/handlers"
	getAvailableHours "github.com/m04kA/SMC-CateringService/internal/usecase/get_available_hours"
)

const (
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingPackage = "код пакета обязателен"
	msgDateInPast     = "дата в прошлом"
	msgInvalidInput   = "некорректные входные данные"
)

type Handler struct {
	useCase GetAvailableHoursUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableHoursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-hours
// Query params: date (required, YYYY-MM-DD), package (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-hours - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	packageStr := r.URL.Query().Get("package")
	if packageStr == "" {
		h.logger.Warn("GET /available-hours - Missing package")
		handlers.RespondBadRequest(w, msgMissingPackage)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, packageStr)
	if err != nil {
		h.logger.Warn("GET /available-hours - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableHours.ErrInvalidDate):
			h.logger.Warn("GET /available-hours - Date in past: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableHours.ErrInvalidInput):
			h.logger.Warn("GET /available-hours - Invalid input: date=%s, package=%s", dateStr, packageStr)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /available-hours - Failed to get hours: date=%s, package=%s, error=%v",
				dateStr, packageStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-hours - %d offerable hours: date=%s, package=%s",
		len(result.Hours), dateStr, packageStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
