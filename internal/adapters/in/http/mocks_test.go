package http_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/catalog"
	"storefront/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Get(ctx context.Context, idOrSlug string) (*catalog.Product, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

type MockCartGetter struct{ mock.Mock }

func (m *MockCartGetter) Handle(ctx context.Context, query queries.GetCartQuery) (queries.GetCartQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCartQueryResponse), args.Error(1)
}

type MockCartLineAdder struct{ mock.Mock }

func (m *MockCartLineAdder) Handle(ctx context.Context, cmd commands.AddCartLineCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCartLineUpdater struct{ mock.Mock }

func (m *MockCartLineUpdater) Handle(ctx context.Context, cmd commands.UpdateCartLineCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCartLineRemover struct{ mock.Mock }

func (m *MockCartLineRemover) Handle(ctx context.Context, cmd commands.RemoveCartLineCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderPlacer struct{ mock.Mock }

func (m *MockOrderPlacer) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockOrderGetter struct{ mock.Mock }

func (m *MockOrderGetter) Handle(ctx context.Context, query queries.GetOrderQuery) (order.Snapshot, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(order.Snapshot), args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]order.Snapshot, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]order.Snapshot), args.Error(1)
}

type MockOrderStatusChanger struct{ mock.Mock }

func (m *MockOrderStatusChanger) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderStatsGetter struct{ mock.Mock }

func (m *MockOrderStatsGetter) Handle(ctx context.Context, query queries.GetOrderStatsQuery) (order.Stats, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(order.Stats), args.Error(1)
}
