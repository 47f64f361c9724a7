package cmd

import (
	"log/slog"
	"time"

	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	products   ports.ProductRepository
	publisher  ports.EventPublisher
	quoter     services.Quoter
	logger     *slog.Logger
	clock      commands.Clock
}

func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	products ports.ProductRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		products:   products,
		publisher:  publisher,
		quoter:     NewQuoter(),
		logger:     logger,
		clock:      time.Now,
	}
}

// NewQuoter builds the price quoter shared by the server and the CLI.
func NewQuoter() services.Quoter {
	return services.NewQuoter(services.NewPriceCalculator(), services.NewTaxCalculator())
}

func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	return commands.NewAddCartLineCommandHandler(c.cartUoWFactory(), c.products, c.quoter, c.cfg.CartTTL, c.clock)
}

func (c *CompositionRoot) CreateUpdateCartLineCommandHandler() commands.UpdateCartLineCommandHandler {
	return commands.NewUpdateCartLineCommandHandler(c.cartUoWFactory(), c.products, c.quoter, c.clock)
}

func (c *CompositionRoot) CreateRemoveCartLineCommandHandler() commands.RemoveCartLineCommandHandler {
	return commands.NewRemoveCartLineCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateExpireCartsCommandHandler() commands.ExpireCartsCommandHandler {
	return commands.NewExpireCartsCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	factory := services.NewOrderFactory(services.NewTaxCalculator())
	return commands.NewPlaceOrderCommandHandler(f, factory, c.publisher, c.logger, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.publisher, c.logger, c.clock)
}

func (c *CompositionRoot) CreateListMenuQueryHandler() queries.ListMenuQueryHandler {
	return queries.NewListMenuQueryHandler(c.products)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.products)
}

func (c *CompositionRoot) CreateQuotePriceQueryHandler() queries.QuotePriceQueryHandler {
	return queries.NewQuotePriceQueryHandler(c.products, c.quoter)
}

// Readers are repositories outside a transaction; they run on the pool.
func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.uowFactory.Create().CartRepository(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case into the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	addCartLine := c.CreateAddCartLineCommandHandler()
	updateCartLine := c.CreateUpdateCartLineCommandHandler()
	removeCartLine := c.CreateRemoveCartLineCommandHandler()
	placeOrder := c.CreatePlaceOrderCommandHandler()
	changeStatus := c.CreateChangeOrderStatusCommandHandler()

	return httpin.Handlers{
		ListMenu:          c.CreateListMenuQueryHandler(),
		GetProduct:        c.CreateGetProductQueryHandler(),
		QuotePrice:        c.CreateQuotePriceQueryHandler(),
		GetCart:           c.CreateGetCartQueryHandler(),
		AddCartLine:       &addCartLine,
		UpdateCartLine:    &updateCartLine,
		RemoveCartLine:    &removeCartLine,
		PlaceOrder:        &placeOrder,
		GetOrder:          c.CreateGetOrderQueryHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		ChangeOrderStatus: &changeStatus,
		OrderStats:        c.CreateGetOrderStatsQueryHandler(),
	}
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
