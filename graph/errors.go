// Copyright 2026 The Cayley Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

import (
	"errors"
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/rdfstore/term"
)

var (
	ErrStatementExists   = errors.New("statement exists")
	ErrStatementNotExist = errors.New("statement does not exist")
	ErrInvalidAction     = errors.New("invalid action")
	ErrInvalidStatement  = errors.New("invalid statement")
	ErrClosed            = errors.New("store is closed")
)

// StoreIntegrityError is returned when a term is placed in a position
// it is not allowed in, like a literal subject.
type StoreIntegrityError struct {
	Direction quad.Direction
	Term      term.Term
	Reason    string
}

func (e *StoreIntegrityError) Error() string {
	if e.Term == nil {
		return fmt.Sprintf("invalid %v: %s", e.Direction, e.Reason)
	}
	return fmt.Sprintf("invalid %v %v: %s", e.Direction, e.Term, e.Reason)
}

// DeltaError records an error and the delta that caused it.
type DeltaError struct {
	Delta Delta
	Err   error
}

func (e *DeltaError) Error() string {
	if !e.Delta.Statement.IsValid() {
		return e.Err.Error()
	}
	return e.Delta.Action.String() + " " + e.Delta.Statement.String() + ": " + e.Err.Error()
}

func (e *DeltaError) Unwrap() error { return e.Err }

// IsStatementExist returns whether an error is ErrStatementExists,
// possibly wrapped in a DeltaError.
func IsStatementExist(err error) bool {
	return errors.Is(err, ErrStatementExists)
}

// IsStatementNotExist returns whether an error is ErrStatementNotExist,
// possibly wrapped in a DeltaError.
func IsStatementNotExist(err error) bool {
	return errors.Is(err, ErrStatementNotExist)
}

// IsInvalidAction returns whether an error is ErrInvalidAction,
// possibly wrapped in a DeltaError.
func IsInvalidAction(err error) bool {
	return errors.Is(err, ErrInvalidAction)
}
