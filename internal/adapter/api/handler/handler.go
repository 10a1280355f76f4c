package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// queryCoordinate parses an optional lat/lng query parameter. Absent or
// unparseable values come back nil so the use case applies the default
// reference point.
func queryCoordinate(c echo.Context, name string) *float64 {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
