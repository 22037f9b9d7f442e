package errxfiber

import (
	"errors"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts errors returned by handlers to JSON responses
func ErrorHandler(c *fiber.Ctx, err error) error {
	// Fiber errors, e.g. route not found or body too large
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{
			"error": fe.Message,
			"code":  fe.Code,
		})
	}

	if e, ok := errx.As(err); ok {
		if e.HTTPStatus >= fiber.StatusInternalServerError {
			logx.WithFields(logx.Fields{
				"code":   e.Code,
				"method": c.Method(),
				"path":   c.Path(),
			}).Errorf("request failed: %v", e)
		}
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal Server Error",
		"code":  fiber.StatusInternalServerError,
	})
}
