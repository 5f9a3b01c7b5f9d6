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

import "github.com/cayleygraph/rdfstore/term"

// Pattern constrains one position of a statement: either any term or
// exactly one term.
type Pattern struct {
	t term.Term
}

// Any matches every term.
var Any = Pattern{}

// Exactly matches terms equal to t. A nil term gives Any.
func Exactly(t term.Term) Pattern {
	return Pattern{t: t}
}

// IsAny reports whether the pattern is unconstrained.
func (p Pattern) IsAny() bool { return p.t == nil }

// Term returns the bound term, or nil for Any.
func (p Pattern) Term() term.Term { return p.t }

// Matches reports whether t satisfies the pattern, comparing by term.Key.
// Stores that compare literals by value should use MatchesKey.
func (p Pattern) Matches(t term.Term) bool {
	return p.MatchesKey(t, term.Key)
}

// MatchesKey is like Matches, but terms are equal when key gives the same
// string, e.g. term.ValueKey for canonical literals.
func (p Pattern) MatchesKey(t term.Term, key func(term.Term) string) bool {
	return p.t == nil || key(p.t) == key(t)
}

func (p Pattern) String() string {
	if p.t == nil {
		return "*"
	}
	return p.t.String()
}

// MatchesStatement reports whether st satisfies all three patterns.
func MatchesStatement(st Statement, s, p, o Pattern) bool {
	return MatchesStatementKey(st, s, p, o, term.Key)
}

// MatchesStatementKey is MatchesStatement with a custom term key.
func MatchesStatementKey(st Statement, s, p, o Pattern, key func(term.Term) string) bool {
	return s.MatchesKey(st.Subject, key) && p.MatchesKey(st.Predicate, key) && o.MatchesKey(st.Object, key)
}
