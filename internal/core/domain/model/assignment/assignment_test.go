package assignment_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/assignment"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	orderID := kernel.NewUUID()
	locationID := kernel.NewUUID()

	t.Run("should create valid assignment", func(t *testing.T) {
		a, err := assignment.NewAssignment(orderID, locationID)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.OrderID().IsEqual(orderID))
		assert.True(t, a.LocationID().IsEqual(locationID))
		assert.Equal(t, assignment.NotStarted, a.Status())
		assert.Nil(t, a.QueuePosition())
		assert.Equal(t, 0, a.CompletedQuantity())
		assert.Nil(t, a.StartedAt())
		assert.Nil(t, a.CompletedAt())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := assignment.NewAssignment(invalidID, locationID)

		require.Error(t, err)
		assert.Nil(t, a)
	})

	t.Run("should fail with invalid location ID", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := assignment.NewAssignment(orderID, invalidID)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestRestoreAssignment(t *testing.T) {
	orderID := kernel.NewUUID()
	locationID := kernel.NewUUID()
	startedAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	position := 2

	t.Run("should restore queued assignment", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(orderID, locationID,
			assignment.InQueue, &position, 0, nil, nil)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, assignment.InQueue, a.Status())
		require.NotNil(t, a.QueuePosition())
		assert.Equal(t, 2, *a.QueuePosition())
	})

	t.Run("should restore in-progress assignment with timestamps", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(orderID, locationID,
			assignment.InProgress, nil, 50, &startedAt, nil)

		require.NoError(t, err)
		assert.Equal(t, assignment.InProgress, a.Status())
		require.NotNil(t, a.StartedAt())
		assert.Equal(t, startedAt, *a.StartedAt())
		assert.Equal(t, 50, a.CompletedQuantity())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(orderID, locationID,
			assignment.Unknown, nil, 0, nil, nil)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should fail with queue position below one", func(t *testing.T) {
		zero := 0
		a, err := assignment.RestoreAssignment(orderID, locationID,
			assignment.InQueue, &zero, 0, nil, nil)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "queuePosition is invalid")
	})

	t.Run("should fail with negative completed quantity", func(t *testing.T) {
		a, err := assignment.RestoreAssignment(orderID, locationID,
			assignment.Done, nil, -1, nil, nil)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "completedQuantity is invalid")
	})
}

func TestAssignment_Validate(t *testing.T) {
	t.Run("should fail validation for nil assignment", func(t *testing.T) {
		var a *assignment.Assignment

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, assignment.ErrAssignmentIsNotConstructed, err)
	})

	t.Run("should fail validation for zero value assignment", func(t *testing.T) {
		a := &assignment.Assignment{}

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, assignment.ErrAssignmentIsNotConstructed, err)
	})
}

func TestAssignment_Enqueue(t *testing.T) {
	t.Run("should enqueue not started assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())

		err := a.Enqueue(3)

		require.NoError(t, err)
		assert.Equal(t, assignment.InQueue, a.Status())
		require.NotNil(t, a.QueuePosition())
		assert.Equal(t, 3, *a.QueuePosition())
	})

	t.Run("should reject position below one", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())

		err := a.Enqueue(0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "queuePosition is invalid")
		assert.Equal(t, assignment.NotStarted, a.Status())
	})

	t.Run("should reject enqueue of queued assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Enqueue(1))

		err := a.Enqueue(2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid status to enqueue")
	})
}

func TestAssignment_SetQueuePosition(t *testing.T) {
	t.Run("should move queued assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Enqueue(5))

		err := a.SetQueuePosition(1)

		require.NoError(t, err)
		assert.Equal(t, 1, *a.QueuePosition())
	})

	t.Run("should reject position change outside the queue", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())

		err := a.SetQueuePosition(1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid status to hold a queue position")
	})

	t.Run("should clear queue position", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Enqueue(5))

		a.ClearQueuePosition()

		assert.Nil(t, a.QueuePosition())
	})
}

func TestAssignment_Start(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should start queued assignment and leave the queue", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Enqueue(1))

		err := a.Start(now)

		require.NoError(t, err)
		assert.Equal(t, assignment.InProgress, a.Status())
		assert.Nil(t, a.QueuePosition())
		require.NotNil(t, a.StartedAt())
		assert.Equal(t, now, *a.StartedAt())
	})

	t.Run("should start not started assignment directly", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())

		err := a.Start(now)

		require.NoError(t, err)
		assert.Equal(t, assignment.InProgress, a.Status())
	})

	t.Run("should resume paused assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Start(now))
		require.NoError(t, a.Pause())

		err := a.Start(now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, assignment.InProgress, a.Status())
		assert.Equal(t, now.Add(time.Hour), *a.StartedAt())
	})

	t.Run("should restamp start time on repeated start", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Start(now))

		err := a.Start(now.Add(time.Minute))

		require.NoError(t, err)
		assert.Equal(t, now.Add(time.Minute), *a.StartedAt())
	})

	t.Run("should reject start of done assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Finish(10, now))

		err := a.Start(now.Add(time.Hour))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Done is not a valid status to start")
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())

		err := a.Start(time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAssignment_Finish(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should finish in-progress assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Start(now))

		err := a.Finish(120, now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, assignment.Done, a.Status())
		assert.Equal(t, 120, a.CompletedQuantity())
		require.NotNil(t, a.CompletedAt())
		assert.Equal(t, now.Add(time.Hour), *a.CompletedAt())
		assert.Nil(t, a.QueuePosition())
	})

	t.Run("should finish queued assignment directly", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Enqueue(1))

		err := a.Finish(10, now)

		require.NoError(t, err)
		assert.Equal(t, assignment.Done, a.Status())
		assert.Nil(t, a.QueuePosition())
	})

	t.Run("should reject finishing done assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Finish(10, now))

		err := a.Finish(20, now.Add(time.Hour))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Done is not a valid status to finish")
		// First finish stays untouched
		assert.Equal(t, 10, a.CompletedQuantity())
		assert.Equal(t, now, *a.CompletedAt())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())

		err := a.Finish(-1, now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "completedQuantity is invalid")
		assert.Equal(t, assignment.NotStarted, a.Status())
	})

	t.Run("should reject zero timestamp", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())

		err := a.Finish(10, time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAssignment_Pause(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("should pause in-progress assignment", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Start(now))

		err := a.Pause()

		require.NoError(t, err)
		assert.Equal(t, assignment.Paused, a.Status())
	})

	t.Run("should reject pause without work in progress", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())

		err := a.Pause()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a valid status to pause")
	})
}

func TestAssignment_RecordCompletedQuantity(t *testing.T) {
	t.Run("should record progress without state change", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())
		require.NoError(t, a.Start(time.Now()))

		err := a.RecordCompletedQuantity(40)

		require.NoError(t, err)
		assert.Equal(t, 40, a.CompletedQuantity())
		assert.Equal(t, assignment.InProgress, a.Status())
	})

	t.Run("should reject negative quantity", func(t *testing.T) {
		a, _ := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID())

		err := a.RecordCompletedQuantity(-5)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-5 is less than 0")
	})
}

func TestAssignment_IsEqual(t *testing.T) {
	orderID := kernel.NewUUID()
	locationID := kernel.NewUUID()

	t.Run("should treat same pair as equal", func(t *testing.T) {
		a, _ := assignment.NewAssignment(orderID, locationID)
		b, _ := assignment.NewAssignment(orderID, locationID)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should treat different locations as not equal", func(t *testing.T) {
		a, _ := assignment.NewAssignment(orderID, locationID)
		b, _ := assignment.NewAssignment(orderID, kernel.NewUUID())

		assert.False(t, a.IsEqual(b))
	})

	t.Run("should treat nil as not equal", func(t *testing.T) {
		a, _ := assignment.NewAssignment(orderID, locationID)

		assert.False(t, a.IsEqual(nil))
	})
}
