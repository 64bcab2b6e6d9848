package opensea

import "fmt"

// APIError means the service responded but signaled failure, or responded
// with content that could not be parsed. Code carries the status_code field
// from the error body when one was present, 0 otherwise.
type APIError struct {
	Status  int
	Code    int64
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("APIError: %s", e.Message)
}

// RequestError means the call could not be completed as a well-formed
// request; no response was classified.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("RequestError: %s", e.Message)
}
