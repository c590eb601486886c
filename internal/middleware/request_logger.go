package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// RequestLogger はメソッド/パス/ステータス/レイテンシを1行で出す。
func RequestLogger(log *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)

			log.WithFields(logrus.Fields{
				"method":  c.Request().Method,
				"path":    c.Request().URL.Path,
				"query":   c.Request().URL.RawQuery,
				"status":  c.Response().Status,
				"latency": latency.String(),
				"remote":  c.RealIP(),
			}).Info("request")

			return nil
		}
	}
}
