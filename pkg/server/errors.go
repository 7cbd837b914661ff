package server

import (
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/handoff/pkg/errors"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// Transport-level codes that never leave this package.
const (
	codeTooLarge         errors.Code = "BODY_TOO_LARGE"
	codeMethodNotAllowed errors.Code = "METHOD_NOT_ALLOWED"
)

// statusFor maps an error code to its HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidSelector,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeMalformedNode, errors.ErrCodeDegenerateGeometry:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case codeTooLarge:
		return http.StatusRequestEntityTooLarge
	case codeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as a JSON error body. Errors without a code are
// reported as internal and their text is not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	detail := errorDetail{
		Code:      errors.GetCode(err),
		Message:   errors.UserMessage(err),
		RequestID: GetRequestID(r.Context()),
	}

	var tooLarge *http.MaxBytesError
	switch {
	case stderrors.As(err, &tooLarge):
		detail.Code = codeTooLarge
		detail.Message = "request body too large"
	case detail.Code == "":
		detail.Code = errors.ErrCodeInternal
		detail.Message = "internal error"
	}
	writeJSON(w, statusFor(detail.Code), errorBody{Error: detail})
}

func errNoRoute(r *http.Request) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s %s", r.Method, r.URL.Path)
}

func errMethod(r *http.Request) error {
	return errors.New(codeMethodNotAllowed, "method %s not allowed on %s", r.Method, r.URL.Path)
}
