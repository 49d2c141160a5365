package commands_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnsetRushCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	target := rankedOrder(t, base, 1)
	require.NoError(t, target.MarkRush(base.Add(time.Minute)))
	other := rankedOrder(t, base.Add(-2*time.Hour), 2)

	cmd, err := commands.NewUnsetRushCommand(target.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		repo.On("Update", mock.Anything, target).Return(nil).Once(),
		repo.On("GetAllActive", mock.Anything).Return([]*order.Order{target, other}, nil).Once(),
		repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Times(2),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	notifier.On("NotifyRushCleared", mock.Anything, target).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUnsetRushCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.False(t, target.Rush())
	assert.Nil(t, target.RushSetAt())
	require.NotNil(t, target.GlobalQueuePosition())
	assert.Equal(t, 2, *target.GlobalQueuePosition(), "withdrawn order joins the end of the regular bucket")
	require.NotNil(t, other.GlobalQueuePosition())
	assert.Equal(t, 1, *other.GlobalQueuePosition())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUnsetRushCommandHandler_Handle_NotRush(t *testing.T) {
	ctx := t.Context()
	target := activeOrder(t, time.Now().UTC())

	cmd, err := commands.NewUnsetRushCommand(target.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(repo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		repo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	notifier := new(MockNotifier)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUnsetRushCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
