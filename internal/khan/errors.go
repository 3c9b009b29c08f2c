package khan

import "errors"

var (
	// ErrUnavailable indicates the content API could not be reached.
	ErrUnavailable = errors.New("content api unavailable")

	// ErrTimeout indicates a request exceeded the configured timeout.
	ErrTimeout = errors.New("content api request timed out")

	// ErrBadStatus indicates a non-200 response.
	ErrBadStatus = errors.New("content api returned unexpected status")

	// ErrDecode indicates a response body that is not the expected JSON.
	ErrDecode = errors.New("content api response could not be decoded")
)
