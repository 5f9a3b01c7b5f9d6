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

package term

import (
	"strconv"
	"strings"
)

// SameValueAs reports whether two terms denote the same node.
//
// IRIs are equal when the strings are equal and blank nodes when they share
// label and scope. Literals are equal when their lexical forms are equal and
// they carry the same language tag, or no language and the same datatype
// (an absent datatype is xsd:string). Terms of different kinds are never equal.
func SameValueAs(a, b Term) bool {
	switch a := a.(type) {
	case IRI:
		b, ok := b.(IRI)
		return ok && a == b
	case BlankNode:
		b, ok := b.(BlankNode)
		return ok && a == b
	case Literal:
		b, ok := b.(Literal)
		return ok && a.lexical == b.lexical && a.lang == b.lang && a.Datatype() == b.Datatype()
	}
	return false
}

// SameValue is like SameValueAs, but compares literals of known XSD types by
// their canonical lexical form, so "1.0"^^xsd:decimal equals "01.00"^^xsd:decimal.
func SameValue(a, b Term) bool {
	if l, ok := a.(Literal); ok {
		a = Canonical(l)
	}
	if l, ok := b.(Literal); ok {
		b = Canonical(l)
	}
	return SameValueAs(a, b)
}

// Key returns a string that is equal for two terms iff SameValueAs is true.
// It returns an empty string for nil terms.
func Key(t Term) string {
	switch t := t.(type) {
	case IRI:
		return "I" + string(t)
	case BlankNode:
		return "B" + t.scope.String() + ":" + t.label
	case Literal:
		var sb strings.Builder
		lang, dt := t.lang, string(t.Datatype())
		sb.Grow(len(lang) + len(dt) + len(t.lexical) + 8)
		sb.WriteByte('L')
		sb.WriteString(strconv.Itoa(len(lang)))
		sb.WriteByte(':')
		sb.WriteString(lang)
		sb.WriteString(strconv.Itoa(len(dt)))
		sb.WriteByte(':')
		sb.WriteString(dt)
		sb.WriteString(t.lexical)
		return sb.String()
	}
	return ""
}

// ValueKey is like Key, but is consistent with SameValue instead.
func ValueKey(t Term) string {
	if l, ok := t.(Literal); ok {
		return Key(Canonical(l))
	}
	return Key(t)
}
