package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/opengovsg/FormSG-sub009/internal/pkg/logger"
	"github.com/opengovsg/FormSG-sub009/internal/utils"
)

// PanicRecoveryMiddleware recovers from handler panics, logs them with a
// stack trace and answers with a generic 500.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				zapLogger.Error("Panic recovered during request processing",
					logger.String("panic", fmt.Sprintf("%v", r)),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("method", c.Request().Method),
					logger.String("path", c.Request().URL.Path),
					logger.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
					logger.String("stack_trace", string(debug.Stack())),
				)

				if c.Response().Committed {
					return
				}
				err = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
			}()

			return next(c)
		}
	}
}
