package osu

import (
	"errors"
	"fmt"
)

// ErrInvalidMultiplayerMatch indicates that the api response to get_match
// did not decode, i.e. the given match id was invalid or the match private.
var ErrInvalidMultiplayerMatch = errors.New(
	"either the specified multiplayer match id was invalid or the match was private")

// APIError is the upstream error object of the form {"error": "..."}.
type APIError struct {
	Message string `json:"error"`
}

func (e *APIError) Error() string {
	return e.Message
}

// BuildingClientError means the client could not be constructed.
type BuildingClientError struct {
	Err error
}

func (e *BuildingClientError) Error() string {
	return fmt.Sprintf("error while building client: %s", e.Err)
}

func (e *BuildingClientError) Unwrap() error { return e.Err }

// RequestError is a transport-level failure: DNS, TLS, timeout, or a broken
// connection.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("error while requesting data: %s", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ChunkingResponseError means the response body could not be read.
type ChunkingResponseError struct {
	Err error
}

func (e *ChunkingResponseError) Error() string {
	return fmt.Sprintf("failed to chunk the response: %s", e.Err)
}

func (e *ChunkingResponseError) Unwrap() error { return e.Err }

// ServiceUnavailableError is an HTTP 503 from the api.
type ServiceUnavailableError struct {
	Body string
}

func (e *ServiceUnavailableError) Error() string {
	return fmt.Sprintf("api may be temporarily unavailable (received 503): %s", e.Body)
}

// ResponseError is a non-2xx response whose body decoded into the upstream
// error object.
type ResponseError struct {
	Status   int
	Body     string
	APIError *APIError
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("response error, status %d: %s", e.Status, e.APIError.Message)
}

func (e *ResponseError) Unwrap() error { return e.APIError }

// ParsingError means a body could not be deserialized into the expected
// schema. The raw body is preserved for diagnosis.
type ParsingError struct {
	Body string
	Err  error
}

func (e *ParsingError) Error() string {
	return fmt.Sprintf("could not deserialize response: %s", e.Body)
}

func (e *ParsingError) Unwrap() error { return e.Err }
