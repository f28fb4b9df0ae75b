package apiclient

import (
	"encoding/json"
	"errors"
)

// Messages used when the backend gives nothing better
const (
	MsgUnsuccessful2xx = "An error occurred but server responded 2xx"
	MsgServerError     = "Server error"
	MsgNoResponse      = "No response from server. Check network or server status."
	MsgUnknown         = "An unknown error occurred"
)

// Error is the single error kind surfaced by the client.
// StatusCode is 0 when no response was received.
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return MsgUnknown
	}
	return e.Message
}

// Envelope is the uniform response body of every backend endpoint
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Result returns the raw data of a successful envelope, or the failure it reports
func (e Envelope) Result() (json.RawMessage, *Error) {
	if !e.Success {
		msg := e.Message
		if msg == "" {
			msg = MsgUnsuccessful2xx
		}
		return nil, &Error{Message: msg}
	}
	return e.Data, nil
}

// errorBody is the subset of an error response the client reads:
// the envelope's message or an RFC 7807 problem title.
type errorBody struct {
	Message string `json:"message"`
	Title   string `json:"title"`
}

func serverError(status int, raw []byte) *Error {
	var body errorBody
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		switch {
		case body.Message != "":
			return &Error{Message: body.Message, StatusCode: status}
		case body.Title != "":
			return &Error{Message: body.Title, StatusCode: status}
		}
	}
	return &Error{Message: MsgServerError, StatusCode: status}
}

// Message returns the message carried by err, or fallback when there is none
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if apiErr == nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}

// StatusCode returns the HTTP status behind err, 0 when unknown
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
