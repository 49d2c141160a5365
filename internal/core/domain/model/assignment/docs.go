// Package assignment provides domain entities and business logic for routing
// production orders through processing locations in the shopfloor system.
// It implements the Assignment aggregate root with work state management.
//
// The package includes:
//   - Assignment: The aggregate root identified by the (order, location) pair,
//     carrying the work state, queue position, and reported piece count
//   - Status: A state machine that enforces valid work state transitions
//
// Key business rules:
//   - Work follows the workflow NotStarted -> InQueue -> InProgress -> Done,
//     with Paused reachable from InProgress and resumed via start
//   - Starting or finishing work removes the assignment from the queue
//   - Done is a final state; repeated finish requests are absorbed by callers
//   - Queue positions are 1-based and only meaningful while InQueue
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package assignment
