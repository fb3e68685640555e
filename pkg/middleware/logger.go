package middleware

import (
	"strconv"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"github.com/pathwise/compass/pkg/appcontext"
	"github.com/pathwise/compass/pkg/tracing"
)

// Logger logs one line per request. Runs after Context so the request
// metadata is read back from the context rather than the echo request.
func Logger(logger ectologger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			req := c.Request()
			res := c.Response()
			start := time.Now()
			if err = next(c); err != nil {
				c.Error(err)
			}

			ctx := c.Request().Context()

			fields := map[string]interface{}{
				"request_id":    appcontext.GetRequestID(ctx),
				"method":        appcontext.GetMethod(ctx),
				"route":         appcontext.GetRoute(ctx),
				"remote_ip":     appcontext.GetRemoteIP(ctx),
				"referer":       appcontext.GetReferer(ctx),
				"uri":           req.RequestURI,
				"status":        res.Status,
				"host":          req.Host,
				"user_agent":    req.UserAgent(),
				"response_time": time.Since(start),
				"response_size": strconv.FormatInt(res.Size, 10),
			}
			if userID := appcontext.GetUserID(ctx); userID != "" {
				fields["user_id"] = userID
			}
			if traceID := tracing.GetTraceID(ctx); traceID != "" {
				fields["trace_id"] = traceID
				fields["span_id"] = tracing.GetSpanID(ctx)
			}

			logger.WithContext(ctx).WithFields(fields).Info("Request")

			return nil
		}
	}
}
