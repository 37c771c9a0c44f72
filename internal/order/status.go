package order

import (
	"fmt"
	"strings"
)

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending        Status = "pending"
	StatusAccepted       Status = "accepted"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// transitions is the adjacency map of allowed status changes. A status maps
// to the exact set of statuses it may move to; delivered and cancelled map to
// the empty set and are terminal. Self-transitions are never allowed.
var transitions = map[Status][]Status{
	StatusPending:        {StatusAccepted, StatusCancelled},
	StatusAccepted:       {StatusPreparing, StatusCancelled},
	StatusPreparing:      {StatusReady, StatusCancelled},
	StatusReady:          {StatusOutForDelivery, StatusDelivered, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusCancelled},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether s has no outgoing transitions.
func (s Status) Terminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

// AllowedNext returns the statuses s may transition to, in table order.
func AllowedNext(s Status) []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether from may move to to. It is a pure function of
// the pair and is total: every (from, to) combination yields an answer.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionError is returned when a requested status change is not allowed
// from the order's current status.
type TransitionError struct {
	From      Status
	Requested Status
}

func (e *TransitionError) Error() string {
	allowed := transitions[e.From]
	if len(allowed) == 0 {
		return fmt.Sprintf("invalid status transition: '%s' is a terminal status", e.From)
	}
	opts := make([]string, len(allowed))
	for i, s := range allowed {
		opts[i] = string(s)
	}
	return fmt.Sprintf("invalid status transition: from '%s' valid options are: %s",
		e.From, strings.Join(opts, ", "))
}

// ValidateTransition checks whether from may move to to, returning a
// *TransitionError naming the legal successors when it may not.
func ValidateTransition(from, to Status) error {
	if CanTransition(from, to) {
		return nil
	}
	return &TransitionError{From: from, Requested: to}
}
