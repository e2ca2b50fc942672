package assign_tables

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableService/internal/api/handlers"
	assignTables "github.com/m04kA/SMC-TableService/internal/usecase/assign_tables"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgTableNotFound      = "один из столов не найден"
	msgTableInactive      = "один из столов выведен из оборота"
	msgTableConflict      = "стол занят другим бронированием на этот интервал"
)

type Handler struct {
	useCase AssignTablesUseCase
	logger  Logger
}

func NewHandler(useCase AssignTablesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/tables - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AssignTablesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/tables - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *assignTables.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings/{id}/tables - Conflict: booking_id=%d, table_id=%d, other_booking_id=%d",
				bookingID, conflictErr.Conflict.TableID, conflictErr.Conflict.BookingID)
			handlers.RespondConflict(w, msgTableConflict, FromConflictInfo(conflictErr.Conflict))

		case errors.Is(err, assignTables.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/tables - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, assignTables.ErrTableNotFound):
			h.logger.Warn("POST /bookings/{id}/tables - Table not found: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, assignTables.ErrTableInactive):
			h.logger.Warn("POST /bookings/{id}/tables - Table inactive: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgTableInactive)

		case errors.Is(err, assignTables.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings/{id}/tables - Failed to assign tables: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/tables - Tables assigned: booking_id=%d, tables=%v",
		bookingID, result.TableIDs)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
