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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
)

// FromValue converts a decoded quad value into a term. Blank node labels are
// resolved within the given scope, which must not be nil.
//
// Native values produced by the decoders (quad.Int, quad.Float, quad.Bool,
// quad.Time) become XSD typed literals.
func FromValue(s *Scope, v quad.Value) (Term, error) {
	switch v := v.(type) {
	case nil:
		return nil, &InvalidTermError{Reason: "nil value"}
	case quad.IRI:
		return IRI(v), nil
	case quad.BNode:
		return s.BlankNode(strings.TrimPrefix(string(v), "_:")), nil
	case quad.String:
		return String(string(v)), nil
	case quad.LangString:
		return NewLiteral(string(v.Value), v.Lang), nil
	case quad.TypedString:
		return MakeLiteral(string(v.Value), "", IRI(v.Type))
	case quad.Int:
		return NewTypedLiteral(strconv.FormatInt(int64(v), 10), XSDInteger), nil
	case quad.Float:
		return NewTypedLiteral(strconv.FormatFloat(float64(v), 'g', -1, 64), XSDDouble), nil
	case quad.Bool:
		return NewTypedLiteral(strconv.FormatBool(bool(v)), XSDBoolean), nil
	case quad.Time:
		return NewTypedLiteral(time.Time(v).Format(time.RFC3339Nano), XSDDateTime), nil
	}
	return nil, fmt.Errorf("unsupported value type: %T", v)
}

// ToValue converts a term into a quad value for the encoders.
// Blank nodes keep their label only; see graph.NewStatementReader for
// keeping nodes of different scopes apart.
func ToValue(t Term) quad.Value {
	switch t := t.(type) {
	case IRI:
		return quad.IRI(t)
	case BlankNode:
		return quad.BNode(t.label)
	case Literal:
		switch {
		case t.lang != "":
			return quad.LangString{Value: quad.String(t.lexical), Lang: t.lang}
		case t.datatype != "":
			return quad.TypedString{Value: quad.String(t.lexical), Type: quad.IRI(t.datatype)}
		}
		return quad.String(t.lexical)
	}
	return nil
}

// Parse reads a single term written as in N-Quads: <iri>, _:label,
// "lexical", "lexical"@lang or "lexical"^^<datatype>. Any other word is an
// IRI, and registered prefixes like rdf:type are expanded.
// An empty string parses to a nil term.
func Parse(s *Scope, str string) (Term, error) {
	str = strings.TrimSpace(str)
	switch {
	case str == "":
		return nil, nil
	case strings.HasPrefix(str, "_:"):
		if len(str) == 2 {
			return nil, &InvalidTermError{Kind: KindBlankNode, Value: str, Reason: "empty blank node label"}
		}
		return s.BlankNode(str[2:]), nil
	case !strings.HasPrefix(str, "<") && !strings.HasPrefix(str, `"`):
		return NewIRI(string(quad.IRI(str).Full()))
	}
	qr := nquads.NewReader(strings.NewReader("<s> <p> "+str+" .\n"), false)
	defer qr.Close()
	q, err := qr.ReadQuad()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q: %w", str, err)
	}
	return FromValue(s, q.Object)
}
