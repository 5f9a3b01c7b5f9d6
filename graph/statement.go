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
	"fmt"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/rdfstore/term"
)

// Statement is a single subject-predicate-object triple.
//
// Statements are values: they are never updated in place. Two statements
// are equal when all three components are equal under term.SameValueAs.
type Statement struct {
	Subject   term.Resource
	Predicate term.IRI
	Object    term.Term
}

// NewStatement builds a statement from arbitrary terms, checking that each
// term is allowed in its position.
func NewStatement(s, p, o term.Term) (Statement, error) {
	var st Statement
	switch s := s.(type) {
	case nil:
		return st, &StoreIntegrityError{Direction: quad.Subject, Reason: "missing subject"}
	case term.Resource:
		st.Subject = s
	default:
		return st, &StoreIntegrityError{Direction: quad.Subject, Term: s, Reason: "subject must be an IRI or a blank node"}
	}
	switch p := p.(type) {
	case nil:
		return st, &StoreIntegrityError{Direction: quad.Predicate, Reason: "missing predicate"}
	case term.IRI:
		if p == "" {
			return st, &StoreIntegrityError{Direction: quad.Predicate, Term: p, Reason: "empty predicate"}
		}
		st.Predicate = p
	default:
		return st, &StoreIntegrityError{Direction: quad.Predicate, Term: p, Reason: "predicate must be an IRI"}
	}
	if o == nil {
		return st, &StoreIntegrityError{Direction: quad.Object, Reason: "missing object"}
	}
	st.Object = o
	return st, nil
}

// Triple builds a statement without validating it.
func Triple(s term.Resource, p term.IRI, o term.Term) Statement {
	return Statement{Subject: s, Predicate: p, Object: o}
}

// IsValid reports whether all three components are set.
func (s Statement) IsValid() bool {
	if s.Subject == nil || s.Object == nil || s.Predicate == "" {
		return false
	}
	if b, ok := s.Subject.(term.BlankNode); ok && b.IsZero() {
		return false
	}
	if b, ok := s.Object.(term.BlankNode); ok && b.IsZero() {
		return false
	}
	return true
}

// Get returns the term in the given position. Label is always nil.
func (s Statement) Get(d quad.Direction) term.Term {
	switch d {
	case quad.Subject:
		if s.Subject == nil {
			return nil
		}
		return s.Subject
	case quad.Predicate:
		if s.Predicate == "" {
			return nil
		}
		return s.Predicate
	case quad.Object:
		return s.Object
	}
	return nil
}

// Equal reports whether two statements have equal components.
func (s Statement) Equal(o Statement) bool {
	return term.SameValueAs(s.Subject, o.Subject) &&
		s.Predicate == o.Predicate &&
		term.SameValueAs(s.Object, o.Object)
}

// Key is a stable string consistent with Equal.
func (s Statement) Key() string {
	return term.Key(s.Subject) + " " + term.Key(s.Predicate) + " " + term.Key(s.Object)
}

func (s Statement) String() string {
	return fmt.Sprintf("%v -- %v -> %v", s.Subject, s.Predicate, s.Object)
}

// Quad converts the statement to a quad without a label.
func (s Statement) Quad() quad.Quad {
	q := quad.Quad{Predicate: quad.IRI(s.Predicate)}
	if s.Subject != nil {
		q.Subject = term.ToValue(s.Subject)
	}
	if s.Object != nil {
		q.Object = term.ToValue(s.Object)
	}
	return q
}

// FromQuad converts a quad to a statement, resolving blank nodes in the given scope.
// The quad label is ignored.
func FromQuad(sc *term.Scope, q quad.Quad) (Statement, error) {
	var ts [3]term.Term
	for i, d := range []quad.Direction{quad.Subject, quad.Predicate, quad.Object} {
		v := q.Get(d)
		if v == nil {
			continue
		}
		t, err := term.FromValue(sc, v)
		if err != nil {
			return Statement{}, fmt.Errorf("%v: %w", d, err)
		}
		ts[i] = t
	}
	return NewStatement(ts[0], ts[1], ts[2])
}
