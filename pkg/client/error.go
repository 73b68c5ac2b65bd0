package client

import (
	"net/http"
	"strconv"
)

// APIError is returned when the server answers with an error status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = http.StatusText(e.StatusCode)
	}

	return "unexpected response code " + strconv.Itoa(e.StatusCode) + ": " + message
}

func IsNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

func IsBadRequest(err error) bool {
	return hasStatusCode(err, http.StatusBadRequest)
}
