package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Standard success envelope
=================================*/

// JsonOK: generic success (GET detail, actions)
func JsonOK(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "ok"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonData: success without a message (plain reads)
func JsonData(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// JsonCreated: success create (POST)
func JsonCreated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "created"
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonUpdated: success update (PUT/PATCH)
func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	if strings.TrimSpace(message) == "" {
		message = "updated"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// JsonDeleted: success delete (DELETE)
func JsonDeleted(c *fiber.Ctx, message string) error {
	if strings.TrimSpace(message) == "" {
		message = "deleted"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// JsonCount: unpaginated list with item count
func JsonCount(c *fiber.Ctx, data any, count int) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"count":   count,
		"data":    data,
	})
}

// JsonList: paginated list; summary is optional
func JsonList(c *fiber.Ctx, data any, pagination Pagination, summary any) error {
	body := fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	}
	if summary != nil {
		body["summary"] = summary
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

/* ===============================
   Error envelope
=================================*/

// JsonError: expected failures (validation, not found, conflict)
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonServerError: unexpected persistence/runtime failure (500); carries the
// underlying error message like the rest of the API does
func JsonServerError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"message": "Internal server error",
		"error":   err.Error(),
	})
}
