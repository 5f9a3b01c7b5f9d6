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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewIRI(t *testing.T) {
	iri, err := NewIRI("http://example.com/people/mary")
	require.NoError(t, err)
	require.Equal(t, IRI("http://example.com/people/mary"), iri)
	require.Equal(t, "<http://example.com/people/mary>", iri.String())

	// malformed URIs are opaque strings
	iri, err = NewIRI("unknown:namespace with spaces")
	require.NoError(t, err)
	require.Equal(t, KindIRI, iri.Kind())

	_, err = NewIRI("")
	var terr *InvalidTermError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, KindIRI, terr.Kind)
}

func TestLiteralLanguage(t *testing.T) {
	const value = "Hello world"
	l1 := NewLiteral(value, "en")
	l2 := NewLiteral(value, "")
	l3 := String(value)

	require.Equal(t, "en", l1.Language())
	require.Equal(t, "", l2.Language())
	require.Equal(t, "", l3.Language())
	require.Equal(t, `"Hello world"@en`, l1.String())
	require.Equal(t, `"Hello world"`, l2.String())
	require.Equal(t, RDFLangString, l1.Datatype())
	require.Equal(t, XSDString, l2.Datatype())

	require.Empty(t, cmp.Diff(l2, l3, cmp.AllowUnexported(Literal{})))
}

var sameValueCases = []struct {
	name   string
	a, b   Term
	expect bool
}{
	{"en vs no language", NewLiteral("Hello world", "en"), NewLiteral("Hello world", ""), false},
	{"empty vs absent language", NewLiteral("Hello world", ""), String("Hello world"), true},
	{"fr vs fr-ca", NewLiteral("Bonjour", "fr"), NewLiteral("Bonjour", "fr-ca"), false},
	{"en vs fr", NewLiteral("Hello world", "en"), NewLiteral("Bonjour", "fr"), false},
	{"same language", NewLiteral("Hello world", "en"), NewLiteral("Hello world", "en"), true},
	{"language is case sensitive", NewLiteral("Hello world", "en"), NewLiteral("Hello world", "EN"), false},
	{"en vs xsd:string", NewLiteral("Hello world", "en"), NewTypedLiteral("Hello world", XSDString), false},
	{"plain vs xsd:string", String("Hello world"), NewTypedLiteral("Hello world", XSDString), true},
	{"different datatypes", NewTypedLiteral("1", XSDInteger), NewTypedLiteral("1", XSDDecimal), false},
	{"lexical only", NewTypedLiteral("1", XSDDecimal), NewTypedLiteral("1.0", XSDDecimal), false},
	{"iri", IRI("http://example.com/a"), IRI("http://example.com/a"), true},
	{"iri vs literal", IRI("http://example.com/a"), String("http://example.com/a"), false},
	{"nil", nil, nil, false},
}

func TestSameValueAs(t *testing.T) {
	for _, c := range sameValueCases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expect, SameValueAs(c.a, c.b))
			require.Equal(t, c.expect, SameValueAs(c.b, c.a))
			if c.a != nil && c.b != nil {
				require.Equal(t, c.expect, Key(c.a) == Key(c.b), "key must agree with SameValueAs")
			}
		})
	}
}

func TestMakeLiteral(t *testing.T) {
	l, err := MakeLiteral("chat", "fr", "")
	require.NoError(t, err)
	require.Equal(t, NewLiteral("chat", "fr"), l)

	l, err = MakeLiteral("chat", "fr", RDFLangString)
	require.NoError(t, err)
	require.Equal(t, NewLiteral("chat", "fr"), l)

	l, err = MakeLiteral("5", "", XSDInteger)
	require.NoError(t, err)
	require.Equal(t, XSDInteger, l.Datatype())

	_, err = MakeLiteral("5", "en", XSDInteger)
	var terr *InvalidTermError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, KindLiteral, terr.Kind)

	_, err = MakeLiteral("chat", "", RDFLangString)
	require.Error(t, err)

	// Without a language, rdf:langString is dropped.
	l = NewTypedLiteral("chat", RDFLangString)
	require.True(t, l.IsPlain())
	require.Equal(t, String("chat"), l)
	require.Equal(t, XSDString, l.Datatype())
}

func TestLiteralIsImmutable(t *testing.T) {
	s := "My string"
	l := String(s)
	s = "a new string"
	require.Equal(t, "My string", l.Lexical())

	lex := l.Lexical()
	lex += "!"
	require.Equal(t, "My string", l.Lexical())
	require.NotEqual(t, lex, l.Lexical())
}

func TestBlankNodeScopes(t *testing.T) {
	s1, s2 := NewScope(), NewScope()

	a1 := s1.BlankNode("a")
	require.Equal(t, a1, s1.BlankNode("a"))
	require.True(t, SameValueAs(a1, s1.BlankNode("a")))

	a2 := s2.BlankNode("a")
	require.Equal(t, a1.Label(), a2.Label())
	require.False(t, SameValueAs(a1, a2))
	require.NotEqual(t, Key(a1), Key(a2))
	require.False(t, a1.SameScope(a2))
	require.True(t, s1.Owns(a1))
	require.False(t, s1.Owns(a2))

	// fresh nodes never reuse a label that was handed out
	used := s1.BlankNode("b1")
	seen := map[BlankNode]struct{}{used: {}}
	for i := 0; i < 10; i++ {
		n := s1.NewBlankNode()
		_, dup := seen[n]
		require.False(t, dup, "duplicate blank node %v", n)
		seen[n] = struct{}{}
	}
	require.True(t, BlankNode{}.IsZero())
	require.False(t, used.IsZero())
}
