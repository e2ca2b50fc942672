package update_schedule_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableService/internal/api/handlers"
	"github.com/m04kA/SMC-TableService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDuration    = "некорректная длительность"
	msgInvalidCapacity    = "некорректные потолки вместимости"
	msgInvalidPolicy      = "неизвестная политика доступности будущих дней"
	msgInvalidHours       = "некорректные рабочие часы"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule-config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateScheduleConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule-config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateConfig(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidSlotDuration),
			errors.Is(err, schedule.ErrInvalidDefaultDuration):
			h.logger.Warn("PUT /schedule-config - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, schedule.ErrInvalidCapacity):
			h.logger.Warn("PUT /schedule-config - Invalid capacity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, schedule.ErrInvalidPolicy):
			h.logger.Warn("PUT /schedule-config - Invalid policy: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPolicy)

		case errors.Is(err, schedule.ErrInvalidHours):
			h.logger.Warn("PUT /schedule-config - Invalid hours: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /schedule-config - Failed to update config: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule-config - Config updated")
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
