package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
)

// ErrorResponse единый формат тела ошибки для всех хендлеров
type ErrorResponse struct {
	Error string `json:"error"`
}

// ConflictResponse тело ответа 409 с деталями конфликтующего бронирования
type ConflictResponse struct {
	Error    string      `json:"error"`
	Conflict interface{} `json:"conflict,omitempty"`
}

// DecodeJSON декодирует тело запроса, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("handlers: empty request body")
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// RespondJSON пишет JSON-ответ с указанным статусом
// nil payload дает пустое тело, только статус
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	// Статус уже отправлен, ошибку кодирования остается только проглотить
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondBadRequest пишет 400 с сообщением
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ErrorResponse{Error: message})
}

// RespondNotFound пишет 404 с сообщением
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusNotFound, ErrorResponse{Error: message})
}

// RespondForbidden пишет 403 с сообщением
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusForbidden, ErrorResponse{Error: message})
}

// RespondConflict пишет 409 с сообщением и опциональными деталями конфликта
func RespondConflict(w http.ResponseWriter, message string, conflict interface{}) {
	RespondJSON(w, http.StatusConflict, ConflictResponse{Error: message, Conflict: conflict})
}

// RespondInternalError пишет 500 с обезличенным сообщением
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "внутренняя ошибка сервера"})
}
