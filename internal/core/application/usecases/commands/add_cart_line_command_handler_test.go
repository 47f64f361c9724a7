package commands_test

import (
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddHandler(t *testing.T, factory *MockCartUoWFactory, products *MockProductRepository) commands.AddCartLineCommandHandler {
	t.Helper()
	return commands.NewAddCartLineCommandHandler(factory, products, quoter(), cart.DefaultTTL, clock())
}

func TestAddCartLineCommandHandler_Handle_CreatesCart(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartLineCommand(kernel.NewUUID(), "sess", "latte", d("3"),
		customization.NewSelection("large", "oat"), "")
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Get", ctx, "latte").Return(latte(t, true), nil).Once()

	repo := new(MockCartRepository)
	uow := new(MockUoW)
	var saved *cart.Cart
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("GetBySession", ctx, "sess").Return(nil, errs.NewObjectNotFoundError("cart", "sess")).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*cart.Cart")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*cart.Cart) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newAddHandler(t, factory, products)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, saved)
	require.Len(t, saved.Lines(), 1)
	assert.True(t, d("18.00").Equal(saved.Total()), saved.Total().String())
	assert.Equal(t, now.Add(cart.DefaultTTL), saved.ExpiresAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCartLineCommandHandler_Handle_EmptiesExpiredCart(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartLineCommand(kernel.NewUUID(), "sess", "latte", d("1"),
		customization.NewSelection("small"), "")
	require.NoError(t, err)

	stale := cartWithLatte(t, "sess")
	restored, err := cart.RestoreCart(stale.ID(), "sess", stale.Lines(),
		stale.CreatedAt(), stale.UpdatedAt(), now.Add(-time.Second), cart.DefaultTTL)
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Get", ctx, "latte").Return(latte(t, true), nil).Once()

	repo := new(MockCartRepository)
	repo.On("GetBySession", ctx, "sess").Return(restored, nil).Once()
	repo.On("Update", ctx, restored).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newAddHandler(t, factory, products)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Len(t, restored.Lines(), 1)
	assert.False(t, restored.IsExpired(now))
	repo.AssertExpectations(t)
}

func TestAddCartLineCommandHandler_Handle_RejectsBeforeTransaction(t *testing.T) {
	tests := []struct {
		name      string
		available bool
		quantity  string
		selection customization.Selection
		wantErr   error
	}{
		{"unavailable product", false, "1", customization.NewSelection("small"), errs.ErrValueIsInvalid},
		{"quantity above max", true, "11", customization.NewSelection("small"), errs.ErrValueIsOutOfRange},
		{"unknown option", true, "1", customization.NewSelection("small", "ghost"), errs.ErrValueIsInvalid},
		{"missing required size", true, "1", customization.NewSelection("oat"), errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewAddCartLineCommand(kernel.NewUUID(), "sess", "latte", d(tt.quantity), tt.selection, "")
			require.NoError(t, err)

			products := new(MockProductRepository)
			products.On("Get", ctx, "latte").Return(latte(t, tt.available), nil).Once()
			factory := new(MockCartUoWFactory)

			h := newAddHandler(t, factory, products)
			err = h.Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestAddCartLineCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartLineCommand(kernel.NewUUID(), "sess", "nope", d("1"), customization.NewSelection(), "")
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Get", ctx, "nope").Return(nil, errs.NewObjectNotFoundError("product", "nope")).Once()

	h := newAddHandler(t, new(MockCartUoWFactory), products)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddCartLineCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddCartLineCommand(kernel.NewUUID(), "sess", "latte", d("1"), customization.NewSelection("small"), "")
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Get", ctx, "latte").Return(latte(t, true), nil).Once()

	repo := new(MockCartRepository)
	repo.On("GetBySession", ctx, "sess").Return(cartWithLatte(t, "sess"), nil).Once()
	repo.On("Update", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(errors.New("commit error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newAddHandler(t, factory, products)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
