package coresdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned in the "error" field.
const (
	ErrorCodeNotAuthenticated     = "not_authenticated"
	ErrorCodeInvalidCode          = "invalid_code"
	ErrorCodeInvalidCredentials   = "invalid_credentials"
	ErrorCodeUnsupportedOperation = "unsupported_operation"
	ErrorCodeNotFound             = "not_found"
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeOrphanExpenses       = "orphan_expenses"
	ErrorCodeRateLimitExceeded    = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

// APIError is a non-2xx response from the service.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Description)
}

// IsCode reports whether err is an *APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        ErrorCodeServerError,
			Description: http.StatusText(resp.StatusCode),
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        er.Error,
		Description: er.ErrorDescription,
	}
}
