package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/pkg/api"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func (s *Server) meta(c echo.Context) api.Metadata {
	return api.Metadata{
		Timestamp: s.clock().UTC(),
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	}
}

func (s *Server) ok(c echo.Context, status int, data any) error {
	env, err := api.Success(data, s.meta(c))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(status, env)
}

func (s *Server) fail(c echo.Context, err error) error {
	status, body := classify(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}
	return c.JSON(status, api.Failure(body, s.meta(c)))
}

func (s *Server) badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, api.Failure(api.ErrorBody{
		Code:             api.CodeValidation,
		Message:          "malformed request",
		ValidationErrors: []string{err.Error()},
	}, s.meta(c)))
}

func (s *Server) missingSession(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, api.Failure(api.ErrorBody{
		Code:    api.CodeMissingSession,
		Message: api.SessionHeader + " header is required",
	}, s.meta(c)))
}

// classify maps an error returned by a use case to a status code and an
// error body.
func classify(err error) (int, api.ErrorBody) {
	var selection *customization.SelectionIsInvalidError
	switch {
	case errors.As(err, &selection):
		messages := make([]string, 0, len(selection.Errors))
		for _, ge := range selection.Errors {
			messages = append(messages, ge.Message)
		}
		return http.StatusBadRequest, api.ErrorBody{
			Code:             api.CodeValidation,
			Message:          "selection is invalid",
			ValidationErrors: messages,
		}
	case errors.Is(err, cart.ErrCartIsEmpty):
		return http.StatusBadRequest, api.ErrorBody{Code: api.CodeCartEmpty, Message: err.Error()}
	case errors.Is(err, catalog.ErrProductIsUnavailable):
		return http.StatusBadRequest, api.ErrorBody{Code: api.CodeUnavailable, Message: err.Error()}
	case errors.Is(err, errs.ErrIllegalTransition):
		return http.StatusUnprocessableEntity, api.ErrorBody{Code: api.CodeIllegalTransition, Message: err.Error()}
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict, api.ErrorBody{Code: api.CodeConflict, Message: "order was changed concurrently"}
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, api.ErrorBody{Code: api.CodeNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrStructureIsInvalid):
		return http.StatusInternalServerError, api.ErrorBody{Code: api.CodeInternal, Message: "product data is malformed"}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, api.ErrorBody{
			Code:             api.CodeValidation,
			Message:          "request is invalid",
			ValidationErrors: leafMessages(err),
		}
	default:
		return http.StatusInternalServerError, api.ErrorBody{Code: api.CodeInternal, Message: "internal error"}
	}
}

// leafMessages flattens errors.Join trees.
func leafMessages(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	var out []string
	for _, e := range joined.Unwrap() {
		out = append(out, leafMessages(e)...)
	}
	return out
}

// errorHandler renders errors raised outside of the handlers, such as
// unknown routes or middleware rejections, in the envelope format.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	code := api.CodeInternal
	message := "internal error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
		switch status {
		case http.StatusNotFound:
			code = api.CodeNotFound
		case http.StatusUnauthorized:
			code = api.CodeUnauthorized
		case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnsupportedMediaType:
			code = api.CodeValidation
		}
	} else {
		s.logger.Error("unhandled error", "path", c.Path(), "error", err)
	}

	if werr := c.JSON(status, api.Failure(api.ErrorBody{Code: code, Message: message}, s.meta(c))); werr != nil {
		s.logger.Error("failed to write error response", "error", werr)
	}
}
