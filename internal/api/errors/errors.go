// Пакет errors — конструкторы стандартных ошибок JSON API.
// Единый формат: {"error": {"code": "...", "message": "..."}}.
// Все HTTP-ответы с ошибками должны использовать WriteError.
package errors

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/bigkaa/goartstore/catalog-console/internal/service"
)

// Коды ошибок, определённые в OpenAPI контракте.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeInternalError   = "INTERNAL_ERROR"
)

// errorBody — структура тела ответа ошибки.
type errorBody struct {
	Error errorDetail `json:"error"`
}

// errorDetail — детали ошибки.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteError записывает ответ ошибки в стандартном формате.
// statusCode — HTTP статус-код, code — машиночитаемый код, message — описание.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, errorBody{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// --- Конструкторы для типичных ошибок ---

// ValidationError — 400 некорректные входные данные.
func ValidationError(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusBadRequest, CodeValidationError, message)
}

// NotFound — 404 ресурс не найден.
func NotFound(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusNotFound, CodeNotFound, message)
}

// Forbidden — 403 недостаточно прав.
func Forbidden(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusForbidden, CodeForbidden, message)
}

// InternalError — 500 внутренняя ошибка.
func InternalError(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusInternalServerError, CodeInternalError, message)
}

// FromService выбирает ответ по ошибке сервисного слоя.
// Неизвестные ошибки отдаются как 500 без подробностей.
func FromService(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		ValidationError(w, r, err.Error())
	case errors.Is(err, service.ErrNotFound):
		NotFound(w, r, err.Error())
	case errors.Is(err, service.ErrForbidden):
		Forbidden(w, r, err.Error())
	default:
		InternalError(w, r, "Внутренняя ошибка сервера")
	}
}
