package serverutils

import (
	"errors"
	"sort"
	"strings"

	"openai-chatbot-be/internal/pkg/apperrors"
	"openai-chatbot-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates errors escaping the controllers into the
// shared error body. Upstream and store diagnostics stay in the logs; clients
// only see generic messages.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *apperrors.ValidationError
		var upstreamErr *apperrors.UpstreamError
		var serviceErr *apperrors.ServiceError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(NewErrorBody(
				fiber.StatusBadRequest,
				"Validation failed",
				joinFieldErrors(validationErr.Fields),
			))

		case errors.Is(err, apperrors.ErrConversationNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(NewErrorBody(
				fiber.StatusNotFound,
				"Not Found",
				"Conversation not found",
			))

		case errors.As(err, &upstreamErr):
			log.Error("http", "upstream chat failure", map[string]interface{}{
				"path":  ctx.Path(),
				"error": upstreamErr.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(NewErrorBody(
				fiber.StatusInternalServerError,
				"Internal Server Error",
				"Failed to process chat request. Please try again later.",
			))

		case errors.As(err, &serviceErr):
			log.Error("http", "persistence failure", map[string]interface{}{
				"path":  ctx.Path(),
				"error": serviceErr.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(NewErrorBody(
				fiber.StatusInternalServerError,
				"Internal Server Error",
				"Failed to process request. Please try again later.",
			))

		case errors.As(err, &fiberErr):
			return ctx.Status(fiberErr.Code).JSON(NewErrorBody(
				fiberErr.Code,
				fiberErr.Message,
				fiberErr.Message,
			))

		default:
			log.Error("http", "unexpected error", map[string]interface{}{
				"path":  ctx.Path(),
				"error": err.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(NewErrorBody(
				fiber.StatusInternalServerError,
				"Internal Server Error",
				"An unexpected error occurred. Please try again later.",
			))
		}
	}
}

func joinFieldErrors(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for field, msg := range fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}
