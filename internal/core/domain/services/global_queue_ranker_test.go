package services_test

import (
	"testing"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/core/domain/model/order"
	"shopfloor/internal/core/domain/services"
	"shopfloor/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rankerBaseTime = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func newOrderAt(t *testing.T, minutes int) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), 100, rankerBaseTime.Add(time.Duration(minutes)*time.Minute))
	require.NoError(t, err)
	return o
}

func positionedOrder(t *testing.T, minutes int, position int) *order.Order {
	t.Helper()
	o := newOrderAt(t, minutes)
	require.NoError(t, o.AssignGlobalPosition(position))
	return o
}

func rushOrderAt(t *testing.T, createdMinutes int, rushMinutes int) *order.Order {
	t.Helper()
	o := newOrderAt(t, createdMinutes)
	require.NoError(t, o.MarkRush(rankerBaseTime.Add(time.Duration(rushMinutes)*time.Minute)))
	return o
}

func assertDensePositions(t *testing.T, ranked []*order.Order) {
	t.Helper()
	for i, o := range ranked {
		require.NotNil(t, o.GlobalQueuePosition(), "order at index %d has no position", i)
		assert.Equal(t, i+1, *o.GlobalQueuePosition(), "order at index %d", i)
	}
}

func TestGlobalQueueRanker_Rank(t *testing.T) {
	ranker := services.NewGlobalQueueRanker()

	t.Run("should rank fresh orders by intake time", func(t *testing.T) {
		first := newOrderAt(t, 0)
		second := newOrderAt(t, 10)
		third := newOrderAt(t, 20)

		ranked, err := ranker.Rank([]*order.Order{third, first, second})

		require.NoError(t, err)
		require.Len(t, ranked, 3)
		assert.True(t, ranked[0].IsEqual(first))
		assert.True(t, ranked[1].IsEqual(second))
		assert.True(t, ranked[2].IsEqual(third))
		assertDensePositions(t, ranked)
	})

	t.Run("should keep previously assigned positions", func(t *testing.T) {
		a := positionedOrder(t, 0, 2)
		b := positionedOrder(t, 10, 1)

		ranked, err := ranker.Rank([]*order.Order{a, b})

		require.NoError(t, err)
		// b held position 1 and keeps the head despite later intake
		assert.True(t, ranked[0].IsEqual(b))
		assert.True(t, ranked[1].IsEqual(a))
		assertDensePositions(t, ranked)
	})

	t.Run("should place unranked orders behind positioned ones", func(t *testing.T) {
		positioned := positionedOrder(t, 30, 1)
		fresh := newOrderAt(t, 0)

		ranked, err := ranker.Rank([]*order.Order{fresh, positioned})

		require.NoError(t, err)
		assert.True(t, ranked[0].IsEqual(positioned))
		assert.True(t, ranked[1].IsEqual(fresh))
	})

	t.Run("should place rush orders before regular ones", func(t *testing.T) {
		regular := positionedOrder(t, 0, 1)
		rush := rushOrderAt(t, 60, 90)

		ranked, err := ranker.Rank([]*order.Order{regular, rush})

		require.NoError(t, err)
		assert.True(t, ranked[0].IsEqual(rush))
		assert.True(t, ranked[1].IsEqual(regular))
		assertDensePositions(t, ranked)
	})

	t.Run("should order rush orders by rush timestamp", func(t *testing.T) {
		// Created earlier but marked rush later
		laterRush := rushOrderAt(t, 0, 120)
		earlierRush := rushOrderAt(t, 60, 90)

		ranked, err := ranker.Rank([]*order.Order{laterRush, earlierRush})

		require.NoError(t, err)
		assert.True(t, ranked[0].IsEqual(earlierRush))
		assert.True(t, ranked[1].IsEqual(laterRush))
	})

	t.Run("should move order marked rush to the rush block and close the gap", func(t *testing.T) {
		a := positionedOrder(t, 0, 1)
		b := positionedOrder(t, 10, 2)
		c := positionedOrder(t, 20, 3)

		require.NoError(t, b.MarkRush(rankerBaseTime.Add(time.Hour)))

		ranked, err := ranker.Rank([]*order.Order{a, b, c})

		require.NoError(t, err)
		assert.True(t, ranked[0].IsEqual(b))
		assert.True(t, ranked[1].IsEqual(a))
		assert.True(t, ranked[2].IsEqual(c))
		assertDensePositions(t, ranked)
	})

	t.Run("should move order leaving the rush class to the end of the regular block", func(t *testing.T) {
		rushA := rushOrderAt(t, 0, 30)
		regularB := positionedOrder(t, 10, 2)
		regularC := positionedOrder(t, 20, 3)
		require.NoError(t, rushA.AssignGlobalPosition(1))

		rushA.ClearRush()

		ranked, err := ranker.Rank([]*order.Order{rushA, regularB, regularC})

		require.NoError(t, err)
		// Losing the rush class costs the held position as well
		assert.True(t, ranked[0].IsEqual(regularB))
		assert.True(t, ranked[1].IsEqual(regularC))
		assert.True(t, ranked[2].IsEqual(rushA))
		assertDensePositions(t, ranked)
	})

	t.Run("should produce the same queue for the same inputs", func(t *testing.T) {
		a := newOrderAt(t, 0)
		b := rushOrderAt(t, 10, 40)
		c := positionedOrder(t, 20, 1)

		first, err := ranker.Rank([]*order.Order{a, b, c})
		require.NoError(t, err)
		second, err := ranker.Rank([]*order.Order{c, a, b})
		require.NoError(t, err)

		for i := range first {
			assert.True(t, first[i].IsEqual(second[i]), "queues diverge at index %d", i)
		}
	})

	t.Run("should accept an empty set", func(t *testing.T) {
		ranked, err := ranker.Rank(nil)

		require.NoError(t, err)
		assert.Empty(t, ranked)
	})

	t.Run("should reject shipped orders", func(t *testing.T) {
		shipped := newOrderAt(t, 0)
		require.NoError(t, shipped.RecordShipment(100))

		ranked, err := ranker.Rank([]*order.Order{shipped})

		require.Error(t, err)
		assert.Nil(t, ranked)
		assert.Contains(t, err.Error(), "shipped")
	})

	t.Run("should reject unconstructed orders", func(t *testing.T) {
		ranked, err := ranker.Rank([]*order.Order{{}})

		require.Error(t, err)
		assert.Nil(t, ranked)
	})
}

func TestGlobalQueueRanker_Place(t *testing.T) {
	ranker := services.NewGlobalQueueRanker()

	t.Run("should move a regular order within the regular block", func(t *testing.T) {
		a := positionedOrder(t, 0, 1)
		b := positionedOrder(t, 10, 2)
		c := positionedOrder(t, 20, 3)

		result, err := ranker.Place([]*order.Order{a, b, c}, c.ID(), 1)

		require.NoError(t, err)
		assert.True(t, result[0].IsEqual(c))
		assert.True(t, result[1].IsEqual(a))
		assert.True(t, result[2].IsEqual(b))
		assertDensePositions(t, result)
	})

	t.Run("should clamp a regular order trying to enter the rush block", func(t *testing.T) {
		rush := rushOrderAt(t, 0, 30)
		regularA := positionedOrder(t, 10, 2)
		regularB := positionedOrder(t, 20, 3)

		result, err := ranker.Place([]*order.Order{rush, regularA, regularB}, regularB.ID(), 1)

		require.NoError(t, err)
		// Position 1 belongs to the rush block; the order lands right behind it
		assert.True(t, result[0].IsEqual(rush))
		assert.True(t, result[1].IsEqual(regularB))
		assert.True(t, result[2].IsEqual(regularA))
		assertDensePositions(t, result)
	})

	t.Run("should clamp a rush order trying to leave the rush block", func(t *testing.T) {
		rushA := rushOrderAt(t, 0, 30)
		rushB := rushOrderAt(t, 10, 40)
		regular := positionedOrder(t, 20, 3)

		result, err := ranker.Place([]*order.Order{rushA, rushB, regular}, rushA.ID(), 3)

		require.NoError(t, err)
		// The rush order stops at the tail of the rush block
		assert.True(t, result[0].IsEqual(rushB))
		assert.True(t, result[1].IsEqual(rushA))
		assert.True(t, result[2].IsEqual(regular))
		assertDensePositions(t, result)
	})

	t.Run("should clamp positions beyond the queue to the tail", func(t *testing.T) {
		a := positionedOrder(t, 0, 1)
		b := positionedOrder(t, 10, 2)

		result, err := ranker.Place([]*order.Order{a, b}, a.ID(), 99)

		require.NoError(t, err)
		assert.True(t, result[0].IsEqual(b))
		assert.True(t, result[1].IsEqual(a))
		assertDensePositions(t, result)
	})

	t.Run("should reject positions below one", func(t *testing.T) {
		a := positionedOrder(t, 0, 1)

		result, err := ranker.Place([]*order.Order{a}, a.ID(), 0)

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail for an order outside the active set", func(t *testing.T) {
		a := positionedOrder(t, 0, 1)

		result, err := ranker.Place([]*order.Order{a}, kernel.NewUUID(), 1)

		require.Error(t, err)
		assert.Nil(t, result)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
