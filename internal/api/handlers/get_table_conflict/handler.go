package get_table_conflict

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableService/internal/api/handlers"
	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/internal/service/availability"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

const (
	msgInvalidTableID   = "некорректный ID стола"
	msgMissingDate      = "дата обязательна"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingStartTime = "время начала обязательно"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgInvalidExcludeID = "некорректный ID исключаемого бронирования"
	msgTableNotFound    = "стол не найден"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tables/{tableId}/conflict
// Query params: date (required), startTime (required), endTime, excludeBookingId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/conflict - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tables/{id}/conflict - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/conflict - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startStr := query.Get("startTime")
	if startStr == "" {
		h.logger.Warn("GET /tables/{id}/conflict - Missing startTime")
		handlers.RespondBadRequest(w, msgMissingStartTime)
		return
	}
	startTime, err := types.NewTimeStringFromString(startStr)
	if err != nil {
		h.logger.Warn("GET /tables/{id}/conflict - Invalid startTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	req := &availability.GetConflictRequest{
		TableID:   tableID,
		Date:      date,
		StartTime: startTime,
	}

	if endStr := query.Get("endTime"); endStr != "" {
		endTime, err := types.NewTimeStringFromString(endStr)
		if err != nil {
			h.logger.Warn("GET /tables/{id}/conflict - Invalid endTime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.EndTime = &endTime
	}

	if excludeStr := query.Get("excludeBookingId"); excludeStr != "" {
		excludeID, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /tables/{id}/conflict - Invalid excludeBookingId: %q", excludeStr)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		req.ExcludeBookingID = &excludeID
	}

	conflict, err := h.service.GetConflict(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrTableNotFound):
			h.logger.Warn("GET /tables/{id}/conflict - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /tables/{id}/conflict - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /tables/{id}/conflict - Failed to check conflict: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/{id}/conflict - Conflict checked: table_id=%d, date=%s, available=%t",
		tableID, dateStr, conflict == nil)
	handlers.RespondJSON(w, http.StatusOK, FromConflictInfo(conflict))
}
