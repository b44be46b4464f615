package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is a server-reported failure: the request reached the catalog
// API and came back with a non-2xx status. Message carries the server's own
// text when the body had one, otherwise a default per status class.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// ConnectivityError is a network-level failure: no response was received.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("cannot reach catalog service: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// apiError drains the response body looking for an error or message field
// and falls back to a human-readable default for the status class.
func apiError(resp *http.Response) error {
	message := ""

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(body) > 0 {
		var payload struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil {
			if payload.Error != "" {
				message = payload.Error
			} else if payload.Message != "" {
				message = payload.Message
			}
		}
	}

	if message == "" {
		switch {
		case resp.StatusCode >= 500:
			message = "the kitchen is having trouble, please try again later"
		case resp.StatusCode >= 400:
			message = "the request was rejected, please check it and try again"
		default:
			message = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
