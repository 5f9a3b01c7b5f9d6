package graph

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsStatementExist(t *testing.T) {
	tests := []struct {
		Err     error
		Matches bool
	}{
		{Err: nil, Matches: false},
		{Err: errors.New("foo"), Matches: false},
		{Err: ErrStatementExists, Matches: true},
		{Err: &DeltaError{Err: errors.New("foo")}, Matches: false},
		{Err: &DeltaError{Err: ErrStatementExists}, Matches: true},
		{Err: fmt.Errorf("batch: %w", &DeltaError{Err: ErrStatementExists}), Matches: true},
	}

	for i, test := range tests {
		if match := IsStatementExist(test.Err); test.Matches != match {
			t.Errorf("%d> unexpected match: %t", i, match)
		}
	}
}

func TestIsStatementNotExist(t *testing.T) {
	tests := []struct {
		Err     error
		Matches bool
	}{
		{Err: nil, Matches: false},
		{Err: errors.New("foo"), Matches: false},
		{Err: ErrStatementNotExist, Matches: true},
		{Err: &DeltaError{Err: errors.New("foo")}, Matches: false},
		{Err: &DeltaError{Err: ErrStatementNotExist}, Matches: true},
	}

	for i, test := range tests {
		if match := IsStatementNotExist(test.Err); test.Matches != match {
			t.Errorf("%d> unexpected match: %t", i, match)
		}
	}
}

func TestIsInvalidAction(t *testing.T) {
	tests := []struct {
		Err     error
		Matches bool
	}{
		{Err: nil, Matches: false},
		{Err: errors.New("foo"), Matches: false},
		{Err: ErrInvalidAction, Matches: true},
		{Err: &DeltaError{Err: errors.New("foo")}, Matches: false},
		{Err: &DeltaError{Err: ErrInvalidAction}, Matches: true},
	}

	for i, test := range tests {
		if match := IsInvalidAction(test.Err); test.Matches != match {
			t.Errorf("%d> unexpected match: %t", i, match)
		}
	}
}

func TestDeltaErrorMessage(t *testing.T) {
	err := &DeltaError{Delta: Delta{Statement: follows("A", "B"), Action: Add}, Err: ErrStatementExists}
	if got, exp := err.Error(), "add <A> -- <follows> -> <B>: statement exists"; got != exp {
		t.Errorf("unexpected message: %q vs %q", got, exp)
	}
	err = &DeltaError{Err: ErrStatementNotExist}
	if got := err.Error(); got != ErrStatementNotExist.Error() {
		t.Errorf("unexpected message: %q", got)
	}
}
