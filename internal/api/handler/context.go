package handler

import "github.com/labstack/echo/v4"

// HeaderUserID carries the caller's account id on admin requests. It is
// trusted as sent; no token backs it.
const HeaderUserID = "x-user-id"

// CallerKey is the echo context key the RequireCaller middleware stores the
// caller id under.
const CallerKey = "callerID"

// callerID returns the id set by the RequireCaller middleware, falling back
// to the raw header when the handler is mounted without it.
func callerID(c echo.Context) string {
	if id, ok := c.Get(CallerKey).(string); ok && id != "" {
		return id
	}
	return c.Request().Header.Get(HeaderUserID)
}
