package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront/internal/pkg/api"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const staffContextKey = "staff"

var ErrStaffSecretIsRequired = errors.New("staff token secret is required")

// IssueStaffToken signs an HS256 token whose subject names the staff member.
func IssueStaffToken(secret []byte, subject string, ttl time.Duration, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", ErrStaffSecretIsRequired
	}
	if strings.TrimSpace(subject) == "" {
		return "", errors.New("staff token subject is required")
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// StaffAuth verifies the bearer token of kitchen requests and stores the
// token subject as the acting staff member.
func (s *Server) StaffAuth(secret []byte) echo.MiddlewareFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock),
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subject, err := verify(parser, secret, c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				s.logger.Debug("staff token rejected", "path", c.Path(), "error", err)
				return c.JSON(http.StatusUnauthorized, api.Failure(api.ErrorBody{
					Code:    api.CodeUnauthorized,
					Message: "a valid staff token is required",
				}, s.meta(c)))
			}
			c.Set(staffContextKey, subject)
			return next(c)
		}
	}
}

func verify(parser *jwt.Parser, secret []byte, header string) (string, error) {
	if len(secret) == 0 {
		return "", ErrStaffSecretIsRequired
	}
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(raw) == "" {
		return "", errors.New("missing bearer token")
	}

	var claims jwt.RegisteredClaims
	_, err := parser.ParseWithClaims(strings.TrimSpace(raw), &claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

func staffOf(c echo.Context) string {
	subject, _ := c.Get(staffContextKey).(string)
	return subject
}
