package http

import (
	"errors"
	"net/http"
	"sync"

	"storefront/internal/pkg/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// RequestValidator checks API requests against the OpenAPI document before
// they reach a handler. Requests outside the document, such as /health, pass
// through untouched.
func (s *Server) RequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError: true,
		// Staff tokens are verified by StaffAuth.
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrMethodNotAllowed) || errors.Is(err, routers.ErrPathNotFound) {
					return next(c)
				}
				return s.badRequest(c, err)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return c.JSON(http.StatusBadRequest, api.Failure(api.ErrorBody{
					Code:             api.CodeValidation,
					Message:          "request does not match the API contract",
					ValidationErrors: validationMessages(err),
				}, s.meta(c)))
			}
			return next(c)
		}
	}, nil
}

func validationMessages(err error) []string {
	var multi openapi3.MultiError
	if !errors.As(err, &multi) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(multi))
	for _, e := range multi {
		out = append(out, e.Error())
	}
	return out
}

// swaggerDoc feeds the OpenAPI document to echo-swagger.
type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var registerDocOnce sync.Once

func registerSwaggerDoc(doc *openapi3.T) error {
	data, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, swaggerDoc{json: string(data)})
	})
	return nil
}
