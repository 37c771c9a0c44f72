package order

import (
	"strings"
	"testing"
)

var allStatuses = []Status{
	StatusPending, StatusAccepted, StatusPreparing, StatusReady,
	StatusOutForDelivery, StatusDelivered, StatusCancelled,
}

// allowed mirrors the transition table for cross-checking the full pair space.
var allowed = map[Status]map[Status]bool{
	StatusPending:        {StatusAccepted: true, StatusCancelled: true},
	StatusAccepted:       {StatusPreparing: true, StatusCancelled: true},
	StatusPreparing:      {StatusReady: true, StatusCancelled: true},
	StatusReady:          {StatusOutForDelivery: true, StatusDelivered: true, StatusCancelled: true},
	StatusOutForDelivery: {StatusDelivered: true, StatusCancelled: true},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

func TestCanTransition_FullMatrix(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			want := allowed[from][to]
			if got := CanTransition(from, to); got != want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestValidateTransition_SelfAlwaysRejected(t *testing.T) {
	for _, s := range allStatuses {
		if err := ValidateTransition(s, s); err == nil {
			t.Errorf("ValidateTransition(%s, %s) should reject self-transition", s, s)
		}
	}
}

func TestValidateTransition_CancelledReachableFromNonTerminal(t *testing.T) {
	for _, from := range allStatuses {
		err := ValidateTransition(from, StatusCancelled)
		if from.Terminal() {
			if err == nil {
				t.Errorf("terminal status %s must not transition to cancelled", from)
			}
			continue
		}
		if err != nil {
			t.Errorf("ValidateTransition(%s, cancelled) = %v, want nil", from, err)
		}
	}
}

func TestValidateTransition_TerminalRejectsEverything(t *testing.T) {
	for _, from := range []Status{StatusDelivered, StatusCancelled} {
		for _, to := range allStatuses {
			if err := ValidateTransition(from, to); err == nil {
				t.Errorf("ValidateTransition(%s, %s) should reject: %s is terminal", from, to, from)
			}
		}
	}
}

func TestTransitionError_ListsValidOptions(t *testing.T) {
	err := ValidateTransition(StatusPending, StatusPreparing)
	if err == nil {
		t.Fatal("pending -> preparing should be rejected")
	}
	msg := err.Error()
	if !strings.Contains(msg, "pending") {
		t.Errorf("error should name the current status, got %q", msg)
	}
	for _, opt := range []string{"accepted", "cancelled"} {
		if !strings.Contains(msg, opt) {
			t.Errorf("error should list %q as a valid option, got %q", opt, msg)
		}
	}
}

func TestTransitionError_TerminalMessage(t *testing.T) {
	err := ValidateTransition(StatusDelivered, StatusPending)
	if err == nil {
		t.Fatal("delivered -> pending should be rejected")
	}
	if !strings.Contains(err.Error(), "delivered") {
		t.Errorf("error should name the terminal status, got %q", err.Error())
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range allStatuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	for _, s := range []Status{"", "shipped", "PENDING", "done"} {
		if s.Valid() {
			t.Errorf("%q should not be valid", s)
		}
	}
}

func TestAllowedNext_ReturnsCopy(t *testing.T) {
	next := AllowedNext(StatusPending)
	if len(next) != 2 {
		t.Fatalf("AllowedNext(pending) = %v, want 2 entries", next)
	}
	next[0] = StatusDelivered
	if CanTransition(StatusPending, StatusDelivered) {
		t.Error("mutating AllowedNext result must not affect the table")
	}
}
