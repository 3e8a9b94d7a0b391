package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"intersection-benchmark/internal/intersection"
)

// Error categories reported in ErrorResponse.Error.
const (
	errCategoryBadRequest      = "Bad Request"
	errCategoryValidation      = "Validation Error"
	errCategoryInvalidArgument = "Invalid Argument"
	errCategoryInternal        = "Internal Server Error"
)

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("failed to encode response")
	}
}

// writeError writes an ErrorResponse for the request.
func writeError(w http.ResponseWriter, r *http.Request, status int, category, message string) {
	writeJSON(w, status, ErrorResponse{
		Timestamp: time.Now().UnixMilli(),
		Status:    status,
		Error:     category,
		Message:   message,
		Path:      r.URL.Path,
	})
}

// handleError maps an error returned while serving r to an ErrorResponse and
// returns the metrics outcome of the request.
func handleError(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) string {
	entry := log.WithFields(logrus.Fields{"path": r.URL.Path}).WithError(err)

	var badReq *badRequestError
	if errors.As(err, &badReq) {
		entry.Warn("malformed request body")
		writeError(w, r, http.StatusBadRequest, errCategoryBadRequest, err.Error())
		return outcomeRejected
	}

	if msgs := validationMessages(err); msgs != nil {
		entry.Warn("validation failed while handling request")
		writeError(w, r, http.StatusBadRequest, errCategoryValidation, strings.Join(msgs, "\n"))
		return outcomeRejected
	}

	if errors.Is(err, intersection.ErrInvalidArgument) {
		entry.Warn("invalid argument while handling request")
		writeError(w, r, http.StatusBadRequest, errCategoryInvalidArgument, err.Error())
		return outcomeRejected
	}

	entry.Error("error while handling request")
	writeError(w, r, http.StatusInternalServerError, errCategoryInternal, err.Error())
	return outcomeFailed
}

// paramErrorHandler renders query parameter binding failures of the generated wrapper.
func paramErrorHandler(log logrus.FieldLogger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		log.WithError(err).WithField("path", r.URL.Path).Warn("invalid request parameter")
		writeError(w, r, http.StatusBadRequest, errCategoryBadRequest, err.Error())
	}
}

// decodeBody decodes the JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &badRequestError{err: err}
	}
	return nil
}

// badRequestError marks a request body that could not be decoded.
type badRequestError struct {
	err error
}

func (e *badRequestError) Error() string {
	return "Invalid request body: " + e.err.Error()
}

func (e *badRequestError) Unwrap() error {
	return e.err
}
