package extend_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableService/internal/api/handlers"
	extendBooking "github.com/m04kA/SMC-TableService/internal/usecase/extend_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgBookingInactive    = "бронирование не активно"
	msgTableNotAssigned   = "стол не назначен этому бронированию"
	msgTableConflict      = "продление пересекается с другим бронированием"
)

type Handler struct {
	useCase ExtendBookingUseCase
	logger  Logger
}

func NewHandler(useCase ExtendBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/extend - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ExtendBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/extend - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/extend - Invalid newEndTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *extendBooking.ConflictError
		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings/{id}/extend - Conflict: booking_id=%d, table_id=%d, other_booking_id=%d",
				bookingID, conflictErr.Conflict.TableID, conflictErr.Conflict.BookingID)
			handlers.RespondConflict(w, msgTableConflict, FromConflictInfo(conflictErr.Conflict))

		case errors.Is(err, extendBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/extend - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, extendBooking.ErrBookingInactive):
			h.logger.Warn("POST /bookings/{id}/extend - Booking inactive: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgBookingInactive)

		case errors.Is(err, extendBooking.ErrTableNotAssigned):
			h.logger.Warn("POST /bookings/{id}/extend - Table not assigned: booking_id=%d, table_id=%d",
				bookingID, req.TableID)
			handlers.RespondBadRequest(w, msgTableNotAssigned)

		case errors.Is(err, extendBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/extend - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /bookings/{id}/extend - Failed to extend booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/extend - Booking extended: booking_id=%d, new_end=%s",
		bookingID, result.EndTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
