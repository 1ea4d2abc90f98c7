package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"spendwise-backend/internal/dto"
	"spendwise-backend/internal/log"
)

const maxRequestBody = 1 << 20

// WriteJSONResponse writes a JSON response to the HTTP response writer.
// A value that cannot be encoded is logged and answered with a 500.
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		slog.Error("encode response", slog.Int(log.FieldStatusCode, status), slog.String(log.FieldError, err.Error()))
		status = http.StatusInternalServerError
		body = []byte(`{"error":"Internal Server Error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(append(body, '\n')); err != nil {
		slog.Debug("write response", slog.String(log.FieldError, err.Error()))
	}
}

// WriteErrorResponse writes the standard error envelope
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, message string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: message})
}

// DecodeJSONRequest decodes a size-limited JSON body into dst.
// On failure it writes a 400 response and returns the error.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := dec.Decode(dst); err != nil {
		msg := err.Error()
		if errors.Is(err, io.EOF) {
			msg = "request body is empty"
		}
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", msg)
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}
