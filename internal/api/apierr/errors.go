package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/xaca/triviaboard-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
	CodeTeamNotFound       = "TEAM_NOT_FOUND"
	CodeQuestionNotFound   = "QUESTION_NOT_FOUND"
	CodeMalformedBoard     = "MALFORMED_BOARD"
	CodeInvalidPosition    = "INVALID_POSITION"
	CodeInvalidCategory    = "INVALID_CATEGORY"
	CodeInvalidPointValue  = "INVALID_POINT_VALUE"
	CodeNameSpaceExhausted = "NAME_SPACE_EXHAUSTED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError. Store transport
// failures fall through to the generic internal error: surfaced, not
// retried.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTeamNotFound, "Team not found"}}
	case errors.Is(err, model.ErrQuestionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeQuestionNotFound, "Question not found"}}
	case errors.Is(err, model.ErrMalformedBoard):
		return &httpError{http.StatusInternalServerError, APIError{CodeMalformedBoard, "Stored board is not a 5x5 grid"}}
	case errors.Is(err, model.ErrInvalidPosition):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPosition, "Row and column must be between 0 and 4"}}
	case errors.Is(err, model.ErrInvalidCategory):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidCategory, "Unknown category"}}
	case errors.Is(err, model.ErrInvalidPointValue):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPointValue, "Unknown point value"}}
	case errors.Is(err, model.ErrNameSpaceExhausted):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeNameSpaceExhausted, "Could not generate enough unique team names"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
