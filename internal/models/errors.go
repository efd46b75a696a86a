package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used to classify application errors.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL_ERROR"
)

// AppError is a classified application error carrying the client-facing
// message. Internal errors keep the cause in Err; it is logged server-side
// and never serialized to the client.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError returns an AppError for a missing resource. The message
// is resource-specific ("Post not found", "Profile not found", ...) because
// the API surfaces those exact strings.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// NewValidationError returns a single-message 400-class error, e.g.
// "Post already liked".
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewUnauthorizedError returns a 401-class error.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NewInternalError wraps an unexpected failure. Clients only ever see
// "Server Error".
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Server Error", Err: err}
}

// FieldError is one itemized validation failure.
type FieldError struct {
	Msg string `json:"msg"`
}

// ValidationErrors is the itemized per-field validation failure list. It
// serializes as {"errors":[{"msg":...},...]}, the shape the client's alert
// layer consumes.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	return e.Errors[0].Msg
}

// Add appends a failure message to the list.
func (e *ValidationErrors) Add(msg string) {
	e.Errors = append(e.Errors, FieldError{Msg: msg})
}

// HasErrors reports whether any failure was recorded.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// RespondWithError writes the JSON error body for err with the given status.
// Itemized validation failures render as {"errors":[...]}; everything else
// renders as {"msg":...}. Internal detail is never leaked.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	var ve *ValidationErrors
	if errors.As(err, &ve) {
		return c.Status(status).JSON(ve)
	}

	var ae *AppError
	if errors.As(err, &ae) {
		if ae.Code == CodeInternal {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Server Error"})
		}
		return c.Status(status).JSON(fiber.Map{"msg": ae.Message})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"msg": "Server Error"})
}
