package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SendJSON writes data as the response body with status 200.
func SendJSON(c *fiber.Ctx, data interface{}) error {
	return SendJSONWithStatus(c, fiber.StatusOK, data)
}

// SendJSONWithStatus writes data as the response body using the provided status code.
func SendJSONWithStatus(c *fiber.Ctx, status int, data interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}

	return c.Status(status).JSON(data)
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}
