package get_available_tables

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TableService/internal/api/handlers"
	"github.com/m04kA/SMC-TableService/internal/domain"
	"github.com/m04kA/SMC-TableService/internal/service/availability"
	"github.com/m04kA/SMC-TableService/pkg/types"
)

const (
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgInvalidMinCapacity = "некорректная минимальная вместимость"
	msgInvalidRequest     = "некорректные параметры запроса"
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

// Handle GET /api/v1/tables/availability
// Query params: date (required, YYYY-MM-DD), startTime, endTime (HH:MM),
// minCapacity, zone
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /tables/availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /tables/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &availability.GetAvailableTablesRequest{Date: date}

	if startStr := query.Get("startTime"); startStr != "" {
		startTime, err := types.NewTimeStringFromString(startStr)
		if err != nil {
			h.logger.Warn("GET /tables/availability - Invalid startTime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.StartTime = startTime
	}

	if endStr := query.Get("endTime"); endStr != "" {
		endTime, err := types.NewTimeStringFromString(endStr)
		if err != nil {
			h.logger.Warn("GET /tables/availability - Invalid endTime: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		req.EndTime = &endTime
	}

	if capacityStr := query.Get("minCapacity"); capacityStr != "" {
		minCapacity, err := strconv.Atoi(capacityStr)
		if err != nil || minCapacity < 0 {
			h.logger.Warn("GET /tables/availability - Invalid minCapacity: %q", capacityStr)
			handlers.RespondBadRequest(w, msgInvalidMinCapacity)
			return
		}
		req.MinCapacity = &minCapacity
	}

	if zoneStr := query.Get("zone"); zoneStr != "" {
		zone := domain.Zone(zoneStr)
		req.Zone = &zone
	}

	result, err := h.service.GetAvailableTables(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("GET /tables/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /tables/availability - Failed to get availability: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tables/availability - Availability computed: date=%s, free=%d, reserved=%d",
		dateStr, len(result.Free), len(result.Reserved))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}
