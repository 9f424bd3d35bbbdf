package api

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL means the request URL could not be parsed.
	ErrInvalidURL = errors.New("invalid url")

	// ErrNoData means the response carried no usable payload.
	ErrNoData = errors.New("no data received")

	// ErrHandleNotFound means user.info returned an empty result for the handle.
	ErrHandleNotFound = errors.New("handle not found")
)

// NetworkError wraps a transport-layer failure. These are the only errors
// the client retries.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// BadResponseError is a non-2xx HTTP status.
type BadResponseError struct {
	StatusCode int
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("bad server response: status %d", e.StatusCode)
}

// DecodeError wraps a payload that did not match the expected schema.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode error: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError is a response envelope whose status was not "OK". Comment carries
// the platform's explanation when one was provided.
type APIError struct {
	Comment string
}

func (e *APIError) Error() string {
	if e.Comment == "" {
		return "api error"
	}
	return fmt.Sprintf("api error: %s", e.Comment)
}

// UserMessage reduces any fetch-layer error to a single string suitable for
// rendering. Every failure path must resolve to a renderable state, so this
// never returns an empty string for a non-nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *APIError
	var badResp *BadResponseError
	var netErr *NetworkError
	var decErr *DecodeError

	switch {
	case errors.Is(err, ErrInvalidURL):
		return "Invalid URL"
	case errors.Is(err, ErrNoData):
		return "No data received"
	case errors.Is(err, ErrHandleNotFound):
		return "Invalid handle"
	case errors.As(err, &apiErr):
		if apiErr.Comment != "" {
			return apiErr.Comment
		}
		return "API error"
	case errors.As(err, &badResp):
		return "Bad server response"
	case errors.As(err, &netErr):
		return "Network error"
	case errors.As(err, &decErr):
		return "Data parsing error"
	default:
		return err.Error()
	}
}
