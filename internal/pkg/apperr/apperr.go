// Package apperr carries typed domain errors from services up to the error
// handler, which maps them onto the response envelope.
package apperr

import "github.com/gofiber/fiber/v2"

// Error is a domain failure with an HTTP status and a machine-readable type.
type Error struct {
	Code    int    // HTTP status code
	Type    string // "invalid_prompt", "service_unavailable", "rate_limit", ...
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code int, errType, message string) *Error {
	return &Error{Code: code, Type: errType, Message: message}
}

func BadRequest(message string) *Error {
	return New(fiber.StatusBadRequest, "bad_request", message)
}

func Unauthorized(message string) *Error {
	return New(fiber.StatusUnauthorized, "unauthorized", message)
}

func Forbidden(message string) *Error {
	return New(fiber.StatusForbidden, "forbidden", message)
}

func NotFound(message string) *Error {
	return New(fiber.StatusNotFound, "not_found", message)
}

func Conflict(message string) *Error {
	return New(fiber.StatusConflict, "conflict", message)
}

func InvalidPrompt(message string) *Error {
	return New(fiber.StatusBadRequest, "invalid_prompt", message)
}

func ServiceUnavailable(message string) *Error {
	return New(fiber.StatusServiceUnavailable, "service_unavailable", message)
}

func RateLimit(message string) *Error {
	return New(fiber.StatusTooManyRequests, "rate_limit", message)
}
