package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

type ErrorKind string

const (
	ErrorKindHTML ErrorKind = "html"
	ErrorKindJSON ErrorKind = "json"
	ErrorKindText ErrorKind = "text"
)

// Error is a non-success indexer response, classified by the shape of its body.
type Error struct {
	StatusCode int
	Kind       ErrorKind
	Message    string
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindHTML:
		return fmt.Sprintf("indexer returned an HTML page (status %d), check the indexer base url", e.StatusCode)
	case ErrorKindJSON:
		return fmt.Sprintf("indexer rejected request (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("indexer error (status %d): %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.StatusCode == http.StatusNotFound
}

const maxErrorMessageLength = 512

type errorBody struct {
	StatusCode int             `json:"status_code"`
	Error      string          `json:"error"`
	Message    json.RawMessage `json:"message"`
}

func classifyError(status int, contentType string, body []byte) *Error {
	trimmed := strings.TrimSpace(string(body))

	if strings.Contains(contentType, "text/html") || strings.HasPrefix(trimmed, "<") {
		return &Error{StatusCode: status, Kind: ErrorKindHTML}
	}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Message) > 0 {
		var message string
		if err := json.Unmarshal(parsed.Message, &message); err != nil {
			message = string(parsed.Message)
		}
		return &Error{StatusCode: status, Kind: ErrorKindJSON, Message: message}
	}

	if len(trimmed) > maxErrorMessageLength {
		trimmed = trimmed[:maxErrorMessageLength]
	}
	if trimmed == "" {
		trimmed = http.StatusText(status)
	}
	return &Error{StatusCode: status, Kind: ErrorKindText, Message: trimmed}
}
