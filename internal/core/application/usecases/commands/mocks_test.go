package commands_test

import (
	"context"
	"testing"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/location"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared testify mocks for the handler tests. MockUoW implements the widest
// unit of work flavor; the typed factories hand it out as whichever narrow
// flavor a handler expects.

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, l *location.Location) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, id kernel.UUID) (*location.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetAll(ctx context.Context) ([]*location.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*location.Location), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Remove(ctx context.Context, orderID kernel.UUID, locationID kernel.UUID) error {
	args := m.Called(ctx, orderID, locationID)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(
	ctx context.Context,
	orderID kernel.UUID,
	locationID kernel.UUID,
) (*assignment.Assignment, error) {
	args := m.Called(ctx, orderID, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllForOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllInQueueAtLocation(
	ctx context.Context,
	locationID kernel.UUID,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetAllNotStartedAtLocation(
	ctx context.Context,
	locationID kernel.UUID,
) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockAuditLog struct{ mock.Mock }

func (m *MockAuditLog) Append(ctx context.Context, event ports.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) NotifyRushSet(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockNotifier) NotifyRushCleared(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) AuditLog() ports.AuditLog {
	args := m.Called()
	return args.Get(0).(ports.AuditLog)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

type MockQueueUoWFactory struct{ mock.Mock }

func (m *MockQueueUoWFactory) Create() commands.QueueUoW {
	args := m.Called()
	return args.Get(0).(commands.QueueUoW)
}

type MockWorkUoWFactory struct{ mock.Mock }

func (m *MockWorkUoWFactory) Create() commands.WorkUoW {
	args := m.Called()
	return args.Get(0).(commands.WorkUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Fixture helpers shared across the handler tests.

func activeOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(kernel.NewUUID(), 100, createdAt)
	require.NoError(t, err)
	return aggregate
}

func rankedOrder(t *testing.T, createdAt time.Time, position int) *order.Order {
	t.Helper()
	aggregate := activeOrder(t, createdAt)
	require.NoError(t, aggregate.AssignGlobalPosition(position))
	return aggregate
}

func queuedAssignment(
	t *testing.T,
	orderID kernel.UUID,
	locationID kernel.UUID,
	position int,
) *assignment.Assignment {
	t.Helper()
	a, err := assignment.RestoreAssignment(orderID, locationID, assignment.InQueue, &position, 0, nil, nil)
	require.NoError(t, err)
	return a
}

func waitingAssignment(t *testing.T, orderID kernel.UUID, locationID kernel.UUID) *assignment.Assignment {
	t.Helper()
	a, err := assignment.NewAssignment(orderID, locationID)
	require.NoError(t, err)
	return a
}

func inProgressAssignment(t *testing.T, orderID kernel.UUID, locationID kernel.UUID) *assignment.Assignment {
	t.Helper()
	startedAt := time.Now().UTC()
	a, err := assignment.RestoreAssignment(orderID, locationID, assignment.InProgress, nil, 0, &startedAt, nil)
	require.NoError(t, err)
	return a
}

func doneAssignment(t *testing.T, orderID kernel.UUID, locationID kernel.UUID, quantity int) *assignment.Assignment {
	t.Helper()
	startedAt := time.Now().UTC().Add(-time.Hour)
	completedAt := time.Now().UTC()
	a, err := assignment.RestoreAssignment(orderID, locationID, assignment.Done, nil, quantity, &startedAt, &completedAt)
	require.NoError(t, err)
	return a
}

func catalogLocation(t *testing.T, name string, sequence int, isPrimary bool) *location.Location {
	t.Helper()
	loc, err := location.NewLocation(kernel.NewUUID(), name, sequence, isPrimary, false, 1, false)
	require.NoError(t, err)
	return loc
}
