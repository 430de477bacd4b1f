package transport

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/muhammadheryan/esports-tournament/constant"
	"github.com/muhammadheryan/esports-tournament/utils/errors"
	"github.com/muhammadheryan/esports-tournament/utils/logger"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// envelope is the top level JSON object of every API response.
type envelope map[string]interface{}

// ErrorResponse documents the error body for swagger.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Code    string   `json:"code"`
	Errors  []string `json:"errors,omitempty"`
}

// readJSON decodes a single JSON value from the request body into dst. A
// malformed body comes back as a validation error naming the problem.
func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var typeError *json.UnmarshalTypeError
		var tooLarge *http.MaxBytesError

		var msg string
		switch {
		case stderrors.As(err, &syntaxError):
			msg = fmt.Sprintf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case stderrors.Is(err, io.ErrUnexpectedEOF):
			msg = "body contains badly-formed JSON"
		case stderrors.As(err, &typeError):
			if typeError.Field != "" {
				msg = fmt.Sprintf("%s has an incorrect JSON type", typeError.Field)
			} else {
				msg = "body contains an incorrect JSON type"
			}
		case stderrors.Is(err, io.EOF):
			msg = "body must not be empty"
		case stderrors.As(err, &tooLarge):
			msg = fmt.Sprintf("body must not be larger than %d bytes", maxBodyBytes)
		default:
			msg = err.Error()
		}
		return errors.NewValidationError([]string{msg})
	}

	if err := dec.Decode(&struct{}{}); !stderrors.Is(err, io.EOF) {
		return errors.NewValidationError([]string{"body must only contain a single JSON value"})
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode response", zap.String("error", err.Error()))
	}
}

// writeSuccess renders body with success=true. A message is included when set.
func writeSuccess(w http.ResponseWriter, status int, message string, body envelope) {
	if body == nil {
		body = envelope{}
	}
	body["success"] = true
	if message != "" {
		body["message"] = message
	}
	writeJSON(w, status, body)
}

// writeError renders a CustomError with its HTTP status. Any other error is
// logged and reported as an internal error.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	writeJSON(w, ce.ErrorHTTPCode(), ErrorResponse{
		Success: false,
		Message: ce.Error(),
		Code:    ce.ErrorCode(),
		Errors:  ce.Errors(),
	})
}

// queryInt reads an integer query parameter; absent or malformed values read as 0.
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.URL.Query().Get(key)))
	if err != nil {
		return 0
	}
	return n
}
