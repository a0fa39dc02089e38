package httputils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"filmorate/internal/domain/models"
	"filmorate/internal/logger"

	"github.com/gorilla/mux"
)

// MIME: https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/MIME_types/Common_types

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderRequestID       = "X-Request-ID"
	HeaderRetryAfter      = "Retry-After"

	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"

	EncodingGzip = "gzip"
)

// Категории тела ошибки: {"<категория>": "<сообщение>"}
const (
	CategoryValidation = "validation error"
	CategoryNotFound   = "not found"
	CategoryInternal   = "error"
)

const internalErrorMessage = "internal server error"

func WriteJSONError(w http.ResponseWriter, status int, category, message string) {
	WriteJSONResponse(w, status, map[string]string{category: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteEmpty отвечает статусом без тела
func WriteEmpty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// WriteDomainError выбирает код ответа по доменной ошибке.
// Причина внутренних ошибок только логируется, клиент получает общее сообщение.
func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrValidation), errors.Is(err, models.ErrConflict):
		WriteJSONError(w, http.StatusBadRequest, CategoryValidation, err.Error())
	case errors.Is(err, models.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, CategoryNotFound, err.Error())
	default:
		logger.FromContext(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		WriteJSONError(w, http.StatusInternalServerError, CategoryInternal, internalErrorMessage)
	}
}

// WriteInternalError - ответ 500 без подробностей, для паник и ошибок кодирования
func WriteInternalError(w http.ResponseWriter) {
	WriteJSONError(w, http.StatusInternalServerError, CategoryInternal, internalErrorMessage)
}

// DecodeJSON читает тело запроса. Ошибка разбора - ошибка валидации.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: request body is empty", models.ErrValidation)
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body: %v", models.ErrValidation, err)
	}
	return nil
}

// PathInt64 достает целочисленный параметр пути из gorilla/mux
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", models.ErrValidation, name, raw)
	}
	return id, nil
}

func PathInt(r *http.Request, name string) (int, error) {
	id, err := PathInt64(r, name)
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// QueryInt возвращает def, если параметра нет
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", models.ErrValidation, name, raw)
	}
	return v, nil
}
