// Package server contains the HTTP handlers for the application's API endpoints.
package server

import (
	"errors"
	"log/slog"

	"devconnector/internal/middleware"
	"devconnector/internal/models"

	"github.com/gofiber/fiber/v2"
)

// currentUserID returns the authenticated user's id attached by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}

// paramID extracts a route parameter as a positive uint. The second return
// is false for anything that is not a well-formed identifier; callers map
// that to the same not-found error as a missing resource so the API never
// reveals whether an id was malformed or merely absent.
func paramID(c *fiber.Ctx, param string) (uint, bool) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// respondError maps a service error to its HTTP status and writes the JSON
// body. notFoundStatus is per-endpoint: profile lookups use 400, post
// lookups 404.
func (s *Server) respondError(c *fiber.Ctx, err error, notFoundStatus int) error {
	status := fiber.StatusInternalServerError

	var ve *models.ValidationErrors
	var ae *models.AppError
	switch {
	case errors.As(err, &ve):
		status = fiber.StatusBadRequest
	case errors.As(err, &ae):
		switch ae.Code {
		case models.CodeValidation:
			status = fiber.StatusBadRequest
		case models.CodeNotFound:
			status = notFoundStatus
		case models.CodeUnauthorized:
			status = fiber.StatusUnauthorized
		}
	}

	if status == fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request error",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}

	return models.RespondWithError(c, status, err)
}
