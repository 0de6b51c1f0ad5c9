package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/Matoxx01/mikes-backend/pkg/logger"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader is the header every write request must carry
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware gates write endpoints behind a static API key. A request
// with a wrong key gets 403; if no key is configured at all the gate refuses
// every write with 503 rather than silently letting them through.
func APIKeyMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			log := logger.FromContext(c)

			if secret == "" {
				log.Error("API key is not configured, refusing write request")
				return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "service not configured"})
			}

			key := c.Request().Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
				log.Warn("Rejected request with missing or invalid API key")
				return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid API key"})
			}

			return next(c)
		}
	}
}
