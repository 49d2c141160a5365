package order

import (
	"errors"
	"fmt"
	"time"

	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a production order in the system. It is the aggregate root that
// carries the scheduling attributes the queue managers rank by: the rush flag with
// its timestamp, the position in the global queue, and the shipping state that
// decides whether the order still belongs to the active scheduling set.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Total quantity must be positive (greater than 0)
//   - Shipped quantity stays within [0, total quantity]
//   - The rush timestamp is present exactly when the rush flag is set
//   - The global queue position, when present, is at least 1
//   - isFinished never reverts once set
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// totalQuantity is the ordered piece count (must be positive)
	totalQuantity int

	// shippedQuantity is the piece count already shipped
	shippedQuantity int

	// isFinished reports that every routed location completed its work
	isFinished bool

	// isShipped reports that the order left the building in full
	isShipped bool

	// partiallyShipped reports that some, but not all, pieces shipped
	partiallyShipped bool

	// rush marks the order as belonging to the priority class
	rush bool

	// rushSetAt is the moment the rush flag was set (nil when not rush)
	rushSetAt *time.Time

	// globalQueuePosition is the 1-based rank in the global queue (nil until ranked)
	globalQueuePosition *int

	// createdAt is the order intake timestamp, the final ranking tie-break
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. Fresh orders enter the
// system without a queue position; the next global recompute ranks them behind
// every already positioned order of their class.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - totalQuantity: Ordered piece count (must be positive)
//   - createdAt: Intake timestamp (must not be zero)
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	orderID := kernel.NewUUID()
//	order, err := NewOrder(orderID, 250, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.UUID, totalQuantity int, createdAt time.Time) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTotalQuantity(totalQuantity),
		order.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, which creates fresh orders outside the queue, this constructor
// restores an order to its previously persisted scheduling state.
//
// Parameters:
//   - id: Unique identifier for the order
//   - totalQuantity: Ordered piece count
//   - shippedQuantity: Piece count already shipped
//   - isFinished: Whether all routed locations completed their work
//   - isShipped: Whether the order shipped in full
//   - partiallyShipped: Whether some pieces shipped
//   - rush: Whether the order belongs to the priority class
//   - rushSetAt: Moment the rush flag was set (nil when not rush)
//   - globalQueuePosition: Persisted global rank (nil when unranked)
//   - createdAt: Intake timestamp
//
// Returns:
//   - *Order: Restored order aggregate
//   - error: Validation error if the persisted state is inconsistent
func RestoreOrder(
	id kernel.UUID,
	totalQuantity int,
	shippedQuantity int,
	isFinished bool,
	isShipped bool,
	partiallyShipped bool,
	rush bool,
	rushSetAt *time.Time,
	globalQueuePosition *int,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		isFinished:       isFinished,
		isShipped:        isShipped,
		partiallyShipped: partiallyShipped,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTotalQuantity(totalQuantity),
		order.setCreatedAt(createdAt),
		order.setShippedQuantity(shippedQuantity),
		order.setRushState(rush, rushSetAt),
		order.setGlobalQueuePosition(globalQueuePosition),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TotalQuantity returns the ordered piece count.
func (o *Order) TotalQuantity() int {
	return o.totalQuantity
}

// ShippedQuantity returns the piece count already shipped.
func (o *Order) ShippedQuantity() int {
	return o.shippedQuantity
}

// IsFinished reports whether all routed locations completed their work.
func (o *Order) IsFinished() bool {
	return o.isFinished
}

// IsShipped reports whether the order shipped in full.
func (o *Order) IsShipped() bool {
	return o.isShipped
}

// PartiallyShipped reports whether some, but not all, pieces shipped.
func (o *Order) PartiallyShipped() bool {
	return o.partiallyShipped
}

// Rush reports whether the order belongs to the priority class.
func (o *Order) Rush() bool {
	return o.rush
}

// RushSetAt returns the moment the rush flag was set.
// Returns nil when the order is not rush.
func (o *Order) RushSetAt() *time.Time {
	return o.rushSetAt
}

// GlobalQueuePosition returns the 1-based rank in the global queue.
// Returns nil when the order has not been ranked yet.
func (o *Order) GlobalQueuePosition() *int {
	return o.globalQueuePosition
}

// CreatedAt returns the order intake timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsActive reports whether the order still belongs to the active scheduling set.
// Orders leave the set once they ship in full.
func (o *Order) IsActive() bool {
	return !o.isShipped
}

// MarkRush puts the order into the priority class, recording when that happened.
//
// This method enforces the following business rules:
//   - The timestamp must not be zero
//   - Marking an order that is already rush keeps the original timestamp,
//     so repeated requests cannot push the order ahead of its rush peers
//
// Parameters:
//   - at: The moment the rush request was made
//
// Returns:
//   - nil on success or when the order was already rush
//   - error if the timestamp is missing
func (o *Order) MarkRush(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("rushSetAt")
	}
	if o.rush {
		return nil
	}

	o.rush = true
	o.rushSetAt = &at
	return nil
}

// ClearRush removes the order from the priority class.
//
// Leaving the rush class also discards the order's queue position: the next
// recompute ranks unpositioned orders behind every positioned one, which places
// the order at the end of the regular bucket rather than at its former rank.
// Clearing an order that is not rush is a no-op.
func (o *Order) ClearRush() {
	if !o.rush {
		return
	}

	o.rush = false
	o.rushSetAt = nil
	o.globalQueuePosition = nil
}

// AssignGlobalPosition sets the order's 1-based rank in the global queue.
//
// Returns:
//   - nil on success
//   - error if the position is below 1
func (o *Order) AssignGlobalPosition(position int) error {
	if position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("globalQueuePosition is invalid",
			fmt.Errorf("%d is not greater than 0", position))
	}

	o.globalQueuePosition = &position
	return nil
}

// ClearGlobalPosition removes the order from the ranked set.
// Used when the order ships and leaves the active scheduling set.
func (o *Order) ClearGlobalPosition() {
	o.globalQueuePosition = nil
}

// MarkFinished records that every routed location completed its work.
// The flag is monotonic: marking an already finished order is a no-op and
// nothing in the domain ever reverts it.
func (o *Order) MarkFinished() {
	o.isFinished = true
}

// RecordShipment records the total piece count shipped so far and derives the
// shipping flags from it. A fully shipped order leaves the active scheduling
// set, so its global queue position is discarded as well.
//
// Parameters:
//   - quantity: Total shipped piece count (absolute, not an increment)
//
// Returns:
//   - nil on success
//   - error if the quantity falls outside [0, total quantity]
func (o *Order) RecordShipment(quantity int) error {
	if quantity < 0 || quantity > o.totalQuantity {
		return errs.NewValueIsOutOfRangeError("shippedQuantity", quantity, 0, o.totalQuantity)
	}

	o.shippedQuantity = quantity
	o.isShipped = quantity == o.totalQuantity
	o.partiallyShipped = quantity > 0 && quantity < o.totalQuantity
	if o.isShipped {
		o.globalQueuePosition = nil
	}
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setTotalQuantity validates and sets the ordered piece count.
// Total quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (o *Order) setTotalQuantity(totalQuantity int) error {
	if totalQuantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalQuantity is invalid",
			fmt.Errorf("%d is not greater than 0", totalQuantity))
	}
	o.totalQuantity = totalQuantity
	return nil
}

// setCreatedAt validates and sets the intake timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setShippedQuantity validates and sets the shipped piece count.
// This is a private method used only during restoration.
func (o *Order) setShippedQuantity(shippedQuantity int) error {
	if shippedQuantity < 0 || shippedQuantity > o.totalQuantity {
		return errs.NewValueIsOutOfRangeError("shippedQuantity", shippedQuantity, 0, o.totalQuantity)
	}
	o.shippedQuantity = shippedQuantity
	return nil
}

// setRushState validates and sets the rush flag together with its timestamp.
// The timestamp must be present exactly when the flag is set.
// This is a private method used only during restoration.
func (o *Order) setRushState(rush bool, rushSetAt *time.Time) error {
	if rush && (rushSetAt == nil || rushSetAt.IsZero()) {
		return errs.NewValueIsRequiredError("rushSetAt")
	}
	if !rush && rushSetAt != nil {
		return errs.NewValueIsInvalidErrorWithCause("rushSetAt is invalid",
			errors.New("rushSetAt is set for a non-rush order"))
	}
	o.rush = rush
	o.rushSetAt = rushSetAt
	return nil
}

// setGlobalQueuePosition validates and sets the persisted global rank.
// This is a private method used only during restoration.
func (o *Order) setGlobalQueuePosition(position *int) error {
	if position != nil && *position < 1 {
		return errs.NewValueIsInvalidErrorWithCause("globalQueuePosition is invalid",
			fmt.Errorf("%d is not greater than 0", *position))
	}
	o.globalQueuePosition = position
	return nil
}
