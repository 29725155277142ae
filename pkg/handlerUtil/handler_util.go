package handlerUtil

import (
	"errors"

	"ManhwaCatalog/pkg/log"
	"ManhwaCatalog/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle maps a service error to a JSON response. Tagged errors keep their status;
// anything else is an upstream failure reported with its raw text.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	fields := log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		fields["code"] = respErr.Code
		if response.IsUpstream(err) {
			h.logger.WithFields(fields).Error("Operation failed upstream")
		} else {
			h.logger.WithFields(fields).Warn("Operation failed with error response")
		}
		return c.Status(respErr.Code).JSON(ErrorResponse{Error: err.Error()})
	}

	traceID := log.ErrorWithTraceID(fields, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error(), TraceID: traceID})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
		Error: "Validation failed: " + err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// HandleBadRequest answers with a short reason and no error code.
func (h *ErrorHandler) HandleBadRequest(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Bad request")

	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: message})
}

// HandleNotFoundPage renders the 404 view for HTML routes.
func (h *ErrorHandler) HandleNotFoundPage(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Debug("Rendering not found page")

	return c.Status(fiber.StatusNotFound).Render("404", fiber.Map{
		"Title":   "Not Found",
		"Message": message,
	})
}

// HandlePageError renders HTML routes' failures: 404 view for not-found errors, plain text otherwise.
func (h *ErrorHandler) HandlePageError(c *fiber.Ctx, requestID string, err error, operation string) error {
	if response.IsNotFound(err) {
		return h.HandleNotFoundPage(c, requestID, err.Error())
	}

	status := response.StatusOf(err)
	entry := h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       c.Path(),
		"operation":  operation,
		"code":       status,
	})
	if response.IsValidation(err) {
		entry.Warn("Page request rejected")
	} else {
		entry.Error("Page request failed")
	}

	return c.Status(status).SendString(err.Error())
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(ErrorResponse{Error: utils.StatusMessage(fiber.StatusRequestTimeout)})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
