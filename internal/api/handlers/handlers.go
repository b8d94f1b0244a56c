package handlers

import (
	"encoding/json"
	"net/http"
)

// Коды ответа в конверте. Успех всегда 1, коды ошибок различают
// класс проблемы, не дублируя HTTP статус.
const (
	CodeFailure    = 0
	CodeSuccess    = 1
	CodeValidation = 2
	CodeConflict   = 3
	CodeNotFound   = 4
	CodeAuth       = 5
)

// Envelope единый конверт ответа API
type Envelope struct {
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// DecodeJSON разбирает тело запроса в модель
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// RespondJSON отправляет успешный ответ в конверте
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeEnvelope(w, status, Envelope{Code: CodeSuccess, Data: data})
}

// RespondFailure отправляет итоговую неудачу, сохраняя данные в конверте
func RespondFailure(w http.ResponseWriter, status int, data interface{}, message string) {
	writeEnvelope(w, status, Envelope{Code: CodeFailure, Data: data, Message: message})
}

// RespondError отправляет ошибку с произвольным статусом и кодом конверта
func RespondError(w http.ResponseWriter, status, code int, message string) {
	writeEnvelope(w, status, Envelope{Code: code, Message: message})
}

// RespondBadRequest отправляет ошибку валидации
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeValidation, message)
}

// RespondConflict отправляет конфликт (вместимость, дубликаты, гонки)
func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, CodeConflict, message)
}

// RespondNotFound отправляет ошибку отсутствия ресурса
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondUnauthorized отправляет ошибку аутентификации
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeAuth, message)
}

// RespondForbidden отправляет ошибку доступа
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeAuth, message)
}

// RespondInternalError отправляет внутреннюю ошибку без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeFailure, "internal server error")
}

func writeEnvelope(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ошибка записи здесь не обрабатывается: клиент уже ушел
	_ = json.NewEncoder(w).Encode(env)
}
