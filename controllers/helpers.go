// path: controllers/helpers.go
package controllers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pestreport/models"
)

type ErrorResp struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func badReq(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResp{OK: false, Error: msg})
}

func serverErr(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResp{OK: false, Error: err.Error()})
}

// orNA substitutes the placeholder for missing free-text fields.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return models.NA
	}
	return s
}

// clampLimit parses a limit query value into [1, max], falling back to def.
func clampLimit(v string, def, max int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	if n < 1 {
		return 1
	}
	if n > max {
		return max
	}
	return n
}
