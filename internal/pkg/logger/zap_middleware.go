package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every request served by Echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path

			err := next(c)
			if err != nil {
				// Let Echo write the response so the logged status is final
				c.Error(err)
			}

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			logger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				requestID,
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
