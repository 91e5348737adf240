package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func parseIntParam(c *fiber.Ctx, name string) (int, error) {
	value := c.Params(name)
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return 0, errors.New("invalid " + name + " parameter")
	}
	return parsed, nil
}
