package middleware

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

// CharmLog logs every request at debug level, and failed ones as errors.
func CharmLog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			keyvals := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"duration", time.Since(start),
			}
			if err != nil || res.Status >= 500 {
				log.Error("ipc request failed", append(keyvals, "err", err)...)
			} else {
				log.Debug("ipc request", keyvals...)
			}
			return nil
		}
	}
}
