// file: internals/helpers/parse.go
package helper

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const DateLayout = "2006-01-02"

// ParseIDParam reads a bigint path param (all rental entities use bigserial PKs).
func ParseIDParam(c *fiber.Ctx, name string) (int64, error) {
	idStr := strings.TrimSpace(c.Params(name))
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// ParseDateQuery reads an optional ?name=YYYY-MM-DD query param.
// Returns the fallback when absent.
func ParseDateQuery(c *fiber.Ctx, name string, fallback time.Time) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, name+" must be YYYY-MM-DD")
	}
	return d, nil
}

// ParseDate parses a required YYYY-MM-DD body field.
func ParseDate(raw string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	return d, nil
}

// FormatDate renders a date column back to YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly truncates a timestamp to its date component (UTC).
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ActorID reads the optional X-Actor-ID header set by the operator console.
// Nil when absent; authentication itself is handled upstream.
func ActorID(c *fiber.Ctx) *int64 {
	raw := strings.TrimSpace(c.Get("X-Actor-ID"))
	if raw == "" {
		return nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil
	}
	return &id
}
