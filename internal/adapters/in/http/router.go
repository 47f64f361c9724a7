package http

import (
	"context"
	"log/slog"
	"net/http"

	"storefront/internal/pkg/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// EchoConfig selects the optional parts of the HTTP stack.
type EchoConfig struct {
	StaffSecret []byte
	// ValidateRequests turns on OpenAPI request validation.
	ValidateRequests bool
}

// NewEcho builds the echo instance serving the API, the OpenAPI document at
// /openapi.json, the swagger UI at /swagger/ and /health.
func NewEcho(ctx context.Context, s *Server, cfg EchoConfig) (*echo.Echo, error) {
	doc, err := api.Document(ctx)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = s.errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	}))

	if cfg.ValidateRequests {
		validator, verr := s.RequestValidator(doc)
		if verr != nil {
			return nil, verr
		}
		e.Use(validator)
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	s.Register(e, s.StaffAuth(cfg.StaffSecret))
	return e, nil
}
