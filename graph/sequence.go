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

// Iterator is a forward-only cursor over statements.
type Iterator interface {
	// Next advances the cursor, returning false when there is nothing left.
	Next() bool
	// Statement returns the statement under the cursor.
	Statement() Statement
}

// Sequence is a snapshot of statements taken when it was created.
// Later changes to the store do not affect it.
//
// A nil *Sequence is empty.
type Sequence struct {
	stmts []Statement
	cur   int
}

var _ Iterator = (*Sequence)(nil)

// NewSequence returns a sequence over a copy of stmts.
func NewSequence(stmts []Statement) *Sequence {
	out := make([]Statement, len(stmts))
	copy(out, stmts)
	return &Sequence{stmts: out}
}

func (s *Sequence) Next() bool {
	if s == nil {
		return false
	} else if s.cur >= len(s.stmts) {
		// past the end, so Statement reports nothing
		s.cur = len(s.stmts) + 1
		return false
	}
	s.cur++
	return true
}

func (s *Sequence) Statement() Statement {
	if s == nil || s.cur == 0 || s.cur > len(s.stmts) {
		return Statement{}
	}
	return s.stmts[s.cur-1]
}

// Reset rewinds the cursor to the start.
func (s *Sequence) Reset() {
	if s != nil {
		s.cur = 0
	}
}

// Len returns the number of statements in the snapshot.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return len(s.stmts)
}

// All returns every statement of the snapshot regardless of the cursor.
// It may be called any number of times.
func (s *Sequence) All() []Statement {
	if s == nil {
		return nil
	}
	out := make([]Statement, len(s.stmts))
	copy(out, s.stmts)
	return out
}

// Collect drains the remaining statements of an iterator.
func Collect(it Iterator) []Statement {
	if it == nil {
		return nil
	}
	var out []Statement
	for it.Next() {
		out = append(out, it.Statement())
	}
	return out
}
