package weatherapi

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// ErrExternalAPI matches every *APIError via errors.Is.
var ErrExternalAPI = errors.New("external API error")

// APIError is returned when OpenWeatherMap answers with a non-2xx status.
type APIError struct {
	StatusCode int
	StatusText string
}

func (e *APIError) Error() string {
	return "Weather API Error: " + e.StatusText
}

func (e *APIError) Unwrap() error {
	return ErrExternalAPI
}

// newAPIError extracts the reason phrase from resp.Status ("401 Unauthorized" -> "Unauthorized").
func newAPIError(resp *http.Response) *APIError {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, StatusText: text}
}
