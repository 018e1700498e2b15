package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/menuzap/menuzap/internal/chef"
	"github.com/menuzap/menuzap/internal/menu"
	"github.com/menuzap/menuzap/internal/order"
	"github.com/menuzap/menuzap/internal/plan"
	"github.com/menuzap/menuzap/pkg/qrcode"
)

// HTTPError carries an HTTP status code and a machine-readable error key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // stable error identifier (e.g. "not_found")
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates an HTTPError with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Key: "plan_inactive"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict            = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrUnprocessableEntity = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
)

// JSONResponse is the response envelope. Successful responses carry Data,
// failures carry Error.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respond(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, JSONResponse{Data: data})
}

// respondError maps err onto the HTTP taxonomy and writes the error
// envelope. Unrecognized errors become a 500 with the detail withheld.
func (h *Handlers) respondError(w http.ResponseWriter, r *http.Request, err error) {
	httpErr := mapError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, httpErr.Code, JSONResponse{Error: &ErrorDetail{
			Code:    httpErr.Key,
			Message: http.StatusText(httpErr.Code),
		}})
		return
	}
	writeJSON(w, httpErr.Code, JSONResponse{Error: &ErrorDetail{
		Code:    httpErr.Key,
		Message: err.Error(),
	}})
}

func mapError(err error) HTTPError {
	var httpErr HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, chef.ErrNotFound),
		errors.Is(err, menu.ErrNotFound),
		errors.Is(err, order.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, chef.ErrInvalidCredentials):
		return ErrUnauthorized
	case errors.Is(err, chef.ErrPlanInactive):
		return ErrForbidden
	case errors.Is(err, chef.ErrEmailTaken):
		return ErrConflict
	// The order is recorded even when the notification link cannot be built.
	case errors.Is(err, order.ErrChefPhoneMissing):
		return NewHTTPError(http.StatusInternalServerError, "chef_phone_missing")
	case errors.Is(err, chef.ErrInvalidInput),
		errors.Is(err, menu.ErrInvalidInput),
		errors.Is(err, order.ErrInvalidInput),
		errors.Is(err, plan.ErrUnknownPlanKind),
		errors.Is(err, qrcode.ErrEmptyContent):
		return ErrUnprocessableEntity
	case errors.Is(err, plan.ErrInvalidReference),
		errors.Is(err, plan.ErrInvalidNotification),
		errors.Is(err, errInvalidJSON),
		errors.Is(err, errUnsupportedMediaType):
		return ErrBadRequest
	default:
		return ErrInternalServerError
	}
}
