package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errors any) {
	h := w.Header()
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(Response{
		Status:  status,
		Message: message,
		Data:    data,
		Errors:  errors,
	})
}

func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusOK, true, message, data, nil)
}

func ResponseCreated(w http.ResponseWriter, message string, data any) {
	ResponseJSON(w, http.StatusCreated, true, message, data, nil)
}

// ResponseBadRequest carries per-field validation messages in errors.
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, false, message, nil, errors)
}

func ResponseUnauthorized(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnauthorized, message)
}

func ResponseForbidden(w http.ResponseWriter, message string) {
	fail(w, http.StatusForbidden, message)
}

func ResponseTooManyRequests(w http.ResponseWriter, message string) {
	fail(w, http.StatusTooManyRequests, message)
}

func ResponseInternalError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, message)
}

// ResponseError writes err with the status it carries (500 when it carries none).
func ResponseError(w http.ResponseWriter, err error) {
	fail(w, StatusCode(err), ErrorMessage(err))
}

func fail(w http.ResponseWriter, code int, message string) {
	if message == "" {
		message = http.StatusText(code)
	}
	ResponseJSON(w, code, false, message, nil, nil)
}
