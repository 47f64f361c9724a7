package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/api"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/shopspring/decimal"
)

// Use case ports of the server. The composition root passes the command and
// query handlers; tests pass doubles.
type (
	MenuLister interface {
		Handle(ctx context.Context, query queries.ListMenuQuery) ([]*catalog.Product, error)
	}
	ProductGetter interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (*catalog.Product, error)
	}
	PriceQuoter interface {
		Handle(ctx context.Context, query queries.QuotePriceQuery) (queries.QuotePriceQueryResponse, error)
	}
	CartGetter interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (queries.GetCartQueryResponse, error)
	}
	CartLineAdder interface {
		Handle(ctx context.Context, cmd commands.AddCartLineCommand) error
	}
	CartLineUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateCartLineCommand) error
	}
	CartLineRemover interface {
		Handle(ctx context.Context, cmd commands.RemoveCartLineCommand) error
	}
	OrderPlacer interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error
	}
	OrderGetter interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (order.Snapshot, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]order.Snapshot, error)
	}
	OrderStatusChanger interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error)
	}
	OrderStatsGetter interface {
		Handle(ctx context.Context, query queries.GetOrderStatsQuery) (order.Stats, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	ListMenu          MenuLister
	GetProduct        ProductGetter
	QuotePrice        PriceQuoter
	GetCart           CartGetter
	AddCartLine       CartLineAdder
	UpdateCartLine    CartLineUpdater
	RemoveCartLine    CartLineRemover
	PlaceOrder        OrderPlacer
	GetOrder          OrderGetter
	ListOrders        OrderLister
	ChangeOrderStatus OrderStatusChanger
	OrderStats        OrderStatsGetter
}

// Server translates HTTP requests into commands and queries and wraps every
// answer in the response envelope.
type Server struct {
	h      Handlers
	logger *slog.Logger
	clock  func() time.Time
}

func NewServer(h Handlers, logger *slog.Logger, clock func() time.Time) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
		clock:  clock,
	}
}

// Register mounts the API under api.BasePath. Kitchen routes go through
// staffAuth.
func (s *Server) Register(e *echo.Echo, staffAuth echo.MiddlewareFunc) {
	g := e.Group(api.BasePath)

	g.GET("/menu/items", s.ListMenuItems)
	g.GET("/menu/items/:idOrSlug", s.GetMenuItem)
	g.POST("/menu/items/:idOrSlug/quote", s.QuoteMenuItem)

	g.GET("/cart", s.GetCart)
	g.DELETE("/cart", s.ClearCart)
	g.POST("/cart/items", s.AddCartItem)
	g.PUT("/cart/items/:itemId", s.UpdateCartItem)
	g.DELETE("/cart/items/:itemId", s.RemoveCartItem)

	g.POST("/orders", s.CreateOrder)
	g.GET("/orders/:idOrNumber", s.GetOrder)

	kitchen := g.Group("/kitchen", staffAuth)
	kitchen.GET("/orders", s.ListKitchenOrders)
	kitchen.GET("/orders/:id", s.GetKitchenOrder)
	kitchen.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	kitchen.GET("/stats", s.GetKitchenStats)
}

// ListMenuItems handles GET /menu/items.
func (s *Server) ListMenuItems(c echo.Context) error {
	var includeUnavailable bool
	if err := runtime.BindQueryParameter("form", true, false, "includeUnavailable", c.QueryParams(), &includeUnavailable); err != nil {
		return s.badRequest(c, err)
	}

	products, err := s.h.ListMenu.Handle(c.Request().Context(), queries.NewListMenuQuery(includeUnavailable))
	if err != nil {
		return s.fail(c, err)
	}

	items := make([]api.Product, 0, len(products))
	for _, p := range products {
		items = append(items, presentProduct(p))
	}
	return s.ok(c, http.StatusOK, items)
}

// GetMenuItem handles GET /menu/items/{idOrSlug}.
func (s *Server) GetMenuItem(c echo.Context) error {
	query, err := queries.NewGetProductQuery(c.Param("idOrSlug"))
	if err != nil {
		return s.fail(c, err)
	}

	p, err := s.h.GetProduct.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return s.ok(c, http.StatusOK, presentProduct(p))
}

// QuoteMenuItem handles POST /menu/items/{idOrSlug}/quote. The answer carries
// the price together with the validation of the selection.
func (s *Server) QuoteMenuItem(c echo.Context) error {
	var req api.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	query, err := queries.NewQuotePriceQuery(c.Param("idOrSlug"), customization.NewSelection(req.Customizations...), req.Quantity)
	if err != nil {
		return s.fail(c, err)
	}

	resp, err := s.h.QuotePrice.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return s.ok(c, http.StatusOK, presentQuote(resp))
}

// GetCart handles GET /cart.
func (s *Server) GetCart(c echo.Context) error {
	sessionID, ok := sessionOf(c)
	if !ok {
		return s.missingSession(c)
	}
	return s.respondWithCart(c, http.StatusOK, sessionID)
}

// AddCartItem handles POST /cart/items.
func (s *Server) AddCartItem(c echo.Context) error {
	sessionID, ok := sessionOf(c)
	if !ok {
		return s.missingSession(c)
	}

	var req api.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewAddCartLineCommand(
		kernel.NewUUID(),
		sessionID,
		req.MenuItemID,
		req.Quantity,
		customization.NewSelection(req.Customizations...),
		req.SpecialInstructions,
	)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.h.AddCartLine.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithCart(c, http.StatusCreated, sessionID)
}

// UpdateCartItem handles PUT /cart/items/{itemId}. Fields left out of the
// body keep the line's current values.
func (s *Server) UpdateCartItem(c echo.Context) error {
	sessionID, ok := sessionOf(c)
	if !ok {
		return s.missingSession(c)
	}

	lineID, err := bindUUID(c, "itemId")
	if err != nil {
		return s.badRequest(c, err)
	}

	var req api.UpdateCartItemRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	ctx := c.Request().Context()
	cartQuery, err := queries.NewGetCartQuery(sessionID)
	if err != nil {
		return s.fail(c, err)
	}
	current, err := s.h.GetCart.Handle(ctx, cartQuery)
	if err != nil {
		return s.fail(c, err)
	}

	var line *lineView
	for _, l := range current.Lines {
		if l.ID().IsEqual(lineID) {
			line = &lineView{quantity: l.Quantity(), selection: l.Selection(), note: l.Note()}
			break
		}
	}
	if line == nil {
		return s.fail(c, errs.NewObjectNotFoundError("cart line", lineID))
	}

	if req.Quantity != nil {
		line.quantity = *req.Quantity
	}
	if req.Customizations != nil {
		line.selection = customization.NewSelection(*req.Customizations...)
	}
	if req.SpecialInstructions != nil {
		line.note = *req.SpecialInstructions
	}

	cmd, err := commands.NewUpdateCartLineCommand(sessionID, lineID, line.quantity, line.selection, line.note)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.UpdateCartLine.Handle(ctx, cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithCart(c, http.StatusOK, sessionID)
}

// RemoveCartItem handles DELETE /cart/items/{itemId}.
func (s *Server) RemoveCartItem(c echo.Context) error {
	sessionID, ok := sessionOf(c)
	if !ok {
		return s.missingSession(c)
	}

	lineID, err := bindUUID(c, "itemId")
	if err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewRemoveCartLineCommand(sessionID, lineID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.RemoveCartLine.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithCart(c, http.StatusOK, sessionID)
}

// ClearCart handles DELETE /cart.
func (s *Server) ClearCart(c echo.Context) error {
	sessionID, ok := sessionOf(c)
	if !ok {
		return s.missingSession(c)
	}

	cmd, err := commands.NewClearCartCommand(sessionID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.h.RemoveCartLine.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return s.respondWithCart(c, http.StatusOK, sessionID)
}

// CreateOrder handles POST /orders: checkout of the session's cart.
func (s *Server) CreateOrder(c echo.Context) error {
	sessionID, ok := sessionOf(c)
	if !ok {
		return s.missingSession(c)
	}

	var req api.CreateOrderRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return s.badRequest(c, err)
		}
	}

	orderID := kernel.NewUUID()
	customer := &order.Customer{Name: req.Name, Phone: req.Phone, Email: req.Email}
	cmd, err := commands.NewPlaceOrderCommand(orderID, sessionID, customer, req.SpecialInstructions)
	if err != nil {
		return s.fail(c, err)
	}

	ctx := c.Request().Context()
	if err = s.h.PlaceOrder.Handle(ctx, cmd); err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(orderID.String())
	if err != nil {
		return s.fail(c, err)
	}
	placed, err := s.h.GetOrder.Handle(ctx, query)
	if err != nil {
		return s.fail(c, err)
	}
	return s.ok(c, http.StatusCreated, api.FromOrder(placed))
}

// GetOrder handles GET /orders/{idOrNumber}, the customer's order view.
func (s *Server) GetOrder(c echo.Context) error {
	return s.respondWithOrder(c, c.Param("idOrNumber"))
}

// ListKitchenOrders handles GET /kitchen/orders?status=...
func (s *Server) ListKitchenOrders(c echo.Context) error {
	var raw []string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &raw); err != nil {
		return s.badRequest(c, err)
	}

	statuses := make([]order.Status, 0, len(raw))
	for _, r := range raw {
		status, err := order.ParseStatus(strings.TrimSpace(r))
		if err != nil {
			return s.fail(c, err)
		}
		statuses = append(statuses, status)
	}

	query, err := queries.NewListOrdersQuery(statuses...)
	if err != nil {
		return s.fail(c, err)
	}
	orders, err := s.h.ListOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	out := make([]api.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, api.FromOrder(o))
	}
	return s.ok(c, http.StatusOK, out)
}

// GetKitchenOrder handles GET /kitchen/orders/{id}.
func (s *Server) GetKitchenOrder(c echo.Context) error {
	id, err := bindUUID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}
	return s.respondWithOrder(c, id.String())
}

// ChangeOrderStatus handles PATCH /kitchen/orders/{id}/status. The actor is
// the subject of the verified staff token, never a body field.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := bindUUID(c, "id")
	if err != nil {
		return s.badRequest(c, err)
	}

	var req api.ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return s.badRequest(c, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, req.Status, staffOf(c), req.Notes)
	if err != nil {
		return s.fail(c, err)
	}

	updated, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return s.ok(c, http.StatusOK, api.FromOrder(updated.Snapshot()))
}

// GetKitchenStats handles GET /kitchen/stats.
func (s *Server) GetKitchenStats(c echo.Context) error {
	stats, err := s.h.OrderStats.Handle(c.Request().Context(), queries.NewGetOrderStatsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return s.ok(c, http.StatusOK, stats)
}

type lineView struct {
	quantity  decimal.Decimal
	selection customization.Selection
	note      string
}

func (s *Server) respondWithCart(c echo.Context, status int, sessionID string) error {
	query, err := queries.NewGetCartQuery(sessionID)
	if err != nil {
		return s.fail(c, err)
	}
	resp, err := s.h.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return s.ok(c, status, presentCart(sessionID, resp))
}

func (s *Server) respondWithOrder(c echo.Context, idOrNumber string) error {
	query, err := queries.NewGetOrderQuery(idOrNumber)
	if err != nil {
		return s.fail(c, err)
	}
	o, err := s.h.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return s.ok(c, http.StatusOK, api.FromOrder(o))
}

func sessionOf(c echo.Context) (string, bool) {
	sessionID := strings.TrimSpace(c.Request().Header.Get(api.SessionHeader))
	return sessionID, sessionID != ""
}

func bindUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromBytes(id[:])
}
