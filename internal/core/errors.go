package core

import (
	"errors"
	"fmt"
)

// NetworkErrorText is the fixed operator-facing message for transport
// failures, shown when the core platform never produced a response.
const NetworkErrorText = "Сүлжээний алдаа. Интернэт холболтоо шалгана уу"

var (
	// ErrUnauthorized marks a 401 from the core platform. The caller is
	// expected to destroy the operator session and force a re-login.
	ErrUnauthorized = errors.New("core: unauthorized")

	// ErrNetwork marks a transport failure or timeout, no response received.
	ErrNetwork = errors.New("core: network failure")
)

// APIError is a normalized business failure returned by the core platform,
// either a non-2xx status or a 200 carrying success:false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("core: api error (status %d): %s", e.StatusCode, e.Message)
	}
	return "core: api error: " + e.Message
}

// UserMessage maps an error from the client into the text shown to the
// operator: the fixed network message, the server-provided message, or the
// caller's fallback for anything else.
func UserMessage(err error, fallback string) string {
	if errors.Is(err, ErrNetwork) {
		return NetworkErrorText
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
