package commands_test

import (
	"testing"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/ports"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPauseWorkCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	locationID := kernel.NewUUID()
	current := inProgressAssignment(t, orderID, locationID)

	cmd, err := commands.NewPauseWorkCommand(orderID, locationID, "badge-7")
	require.NoError(t, err)

	assignmentsRepo := new(MockAssignmentRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)
	uow.On("AssignmentRepository").Return(assignmentsRepo)
	uow.On("AuditLog").Return(auditLog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		assignmentsRepo.On("Get", mock.Anything, orderID, locationID).Return(current, nil).Once(),
		assignmentsRepo.On("Update", mock.Anything, current).Return(nil).Once(),
		auditLog.On("Append", mock.Anything, mock.MatchedBy(func(e ports.AuditEvent) bool {
			return e.Action == ports.AuditActionPause && e.OrderID == orderID &&
				e.LocationID == locationID && e.ActorID == "badge-7"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPauseWorkCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, assignment.Paused, current.Status())
	assert.NotNil(t, current.StartedAt(), "pausing keeps the original start time")

	assignmentsRepo.AssertExpectations(t)
	auditLog.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPauseWorkCommandHandler_Handle_NotInProgress(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	locationID := kernel.NewUUID()
	queued := queuedAssignment(t, orderID, locationID, 1)

	cmd, err := commands.NewPauseWorkCommand(orderID, locationID, "badge-7")
	require.NoError(t, err)

	assignmentsRepo := new(MockAssignmentRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)
	uow.On("AssignmentRepository").Return(assignmentsRepo)
	uow.On("AuditLog").Return(auditLog)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		assignmentsRepo.On("Get", mock.Anything, orderID, locationID).Return(queued, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPauseWorkCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Equal(t, assignment.InQueue, queued.Status())
	assert.Equal(t, 1, *queued.QueuePosition(), "a rejected pause leaves the queue untouched")

	auditLog.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	assignmentsRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
