package apiclient

import (
	"Agrilink/internal/api/dto"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// RequestError network or API failure. Status is 0 when no response arrived.
type RequestError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Message)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// NotFound 404 from the API
func (e *RequestError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

// errorMessage prefers the server's error field, then detail, then the raw body.
func errorMessage(status int, body *dto.ErrorBody, raw []byte) string {
	if body != nil {
		switch v := body.Error.(type) {
		case string:
			if v != "" {
				return v
			}
		case nil:
		default:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		}
		if body.Detail != "" {
			return body.Detail
		}
	}
	if len(raw) > 0 && len(raw) <= 200 {
		return string(raw)
	}
	return http.StatusText(status)
}
