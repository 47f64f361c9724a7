package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/customization"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateCartLineCommandHandler_Handle_RepricesLine(t *testing.T) {
	ctx := t.Context()
	c := cartWithLatte(t, "sess")
	lineID := c.Lines()[0].ID()

	cmd, err := commands.NewUpdateCartLineCommand("sess", lineID, d("1"), customization.NewSelection("small", "oat"), "less foam")
	require.NoError(t, err)

	products := new(MockProductRepository)
	products.On("Get", ctx, "latte").Return(latte(t, true), nil).Once()

	repo := new(MockCartRepository)
	repo.On("GetBySession", ctx, "sess").Return(c, nil).Once()
	repo.On("Update", ctx, c).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCartLineCommandHandler(factory, products, quoter(), clock())
	require.NoError(t, h.Handle(ctx, cmd))

	line, err := c.Line(lineID)
	require.NoError(t, err)
	assert.Equal(t, "less foam", line.Note())
	assert.True(t, d("4.00").Equal(line.Pricing().Total))
	assert.Equal(t, now, c.UpdatedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateCartLineCommandHandler_Handle_UnknownLine(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCartLineCommand("sess", kernel.NewUUID(), d("1"), customization.NewSelection("small"), "")
	require.NoError(t, err)

	repo := new(MockCartRepository)
	repo.On("GetBySession", ctx, "sess").Return(cartWithLatte(t, "sess"), nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCartLineCommandHandler(factory, new(MockProductRepository), quoter(), clock())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateCartLineCommand_Validate_WhenNotConstructed_ShouldReturnError(t *testing.T) {
	var cmd commands.UpdateCartLineCommand

	assert.Equal(t, commands.ErrUpdateCartLineCommandIsNotConstructed, cmd.Validate())
}
