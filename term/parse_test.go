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
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	sc := NewScope()
	for _, c := range []struct {
		in  string
		exp Term
	}{
		{"", nil},
		{"<http://example.com/a>", IRI("http://example.com/a")},
		{"http://example.com/a", IRI("http://example.com/a")},
		{"rdf:type", RDFType},
		{`"cool"`, String("cool")},
		{`"chat"@fr`, NewLiteral("chat", "fr")},
		{`"01"^^<` + string(XSDInteger) + `>`, NewTypedLiteral("01", XSDInteger)},
		{"_:b1", sc.BlankNode("b1")},
	} {
		got, err := Parse(sc, c.in)
		require.NoError(t, err, c.in)
		require.True(t, got == nil && c.exp == nil || SameValueAs(got, c.exp), "%q: %v", c.in, got)
	}

	_, err := Parse(sc, "_:")
	require.Error(t, err)
	_, err = Parse(sc, `"unterminated`)
	require.Error(t, err)
}

func TestVocabulary(t *testing.T) {
	require.Equal(t, string(quad.IRI(rdf.Type).Full()), string(RDFType))
	require.Equal(t, string(quad.IRI(rdf.LangString).Full()), string(RDFLangString))
	require.Equal(t, string(quad.IRI(rdfs.SubClassOf).Full()), string(RDFSSubClassOf))
	require.Equal(t, string(quad.IRI(rdfs.Label).Full()), string(RDFSLabel))
	require.Equal(t, XSDString, IRI(quad.IRI("xsd:string").Full()))
}
