package quick_seat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableService/internal/api/handlers"
	quickSeat "github.com/m04kA/SMC-TableService/internal/usecase/quick_seat"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgTableNotFound      = "стол не найден"
	msgTableInactive      = "стол выведен из оборота"
)

type Handler struct {
	useCase QuickSeatUseCase
	logger  Logger
}

func NewHandler(useCase QuickSeatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/tables/{tableId}/quick-seat
// Тело запроса опционально: без него сажается walk-in компания с дефолтами
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /tables/{id}/quick-seat - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req QuickSeatRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /tables/{id}/quick-seat - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(tableID))
	if err != nil {
		switch {
		case errors.Is(err, quickSeat.ErrTableNotFound):
			h.logger.Warn("POST /tables/{id}/quick-seat - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, quickSeat.ErrTableInactive):
			h.logger.Warn("POST /tables/{id}/quick-seat - Table inactive: table_id=%d", tableID)
			handlers.RespondBadRequest(w, msgTableInactive)

		case errors.Is(err, quickSeat.ErrInvalidInput):
			h.logger.Warn("POST /tables/{id}/quick-seat - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("POST /tables/{id}/quick-seat - Failed to seat guest: table_id=%d, error=%v",
				tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables/{id}/quick-seat - Guest seated: table_id=%d, booking_id=%d, interval=%s-%s",
		tableID, result.BookingID, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
