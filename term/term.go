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

// Package term defines the nodes of an RDF graph: IRIs, blank nodes and
// literals, together with the equality rules used by the stores.
package term

import (
	"strconv"
)

// Kind identifies the kind of a Term.
type Kind uint8

const (
	KindIRI Kind = iota + 1
	KindBlankNode
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindIRI:
		return "iri"
	case KindBlankNode:
		return "bnode"
	case KindLiteral:
		return "literal"
	default:
		return "invalid kind: " + strconv.Itoa(int(k))
	}
}

// Term is a node of an RDF graph. All implementations are immutable values.
type Term interface {
	Kind() Kind
	String() string
}

// Resource is a term that can be used as a statement subject.
// Only IRI and BlankNode implement it.
type Resource interface {
	Term
	resource()
}

var (
	_ Resource = IRI("")
	_ Resource = BlankNode{}
	_ Term     = Literal{}
)

// IRI is an RDF Internationalized Resource Identifier (ex: <name>).
//
// The string is kept as is; no URI syntax validation is done.
type IRI string

// NewIRI creates an IRI from a URI string. Only empty strings are rejected.
func NewIRI(uri string) (IRI, error) {
	if uri == "" {
		return "", &InvalidTermError{Kind: KindIRI, Reason: "empty IRI"}
	}
	return IRI(uri), nil
}

func (s IRI) Kind() Kind     { return KindIRI }
func (s IRI) String() string { return `<` + string(s) + `>` }
func (IRI) resource()        {}

// BlankNode is an anonymous node. Its identity is the label together with
// the Scope that issued it, so equal labels from different scopes never
// compare equal.
type BlankNode struct {
	label string
	scope scopeID
}

// Label returns the blank node label, unique within its scope only.
func (b BlankNode) Label() string { return b.label }

// SameScope reports whether both nodes were issued by the same scope.
func (b BlankNode) SameScope(o BlankNode) bool { return b.scope == o.scope }

func (b BlankNode) Kind() Kind     { return KindBlankNode }
func (b BlankNode) String() string { return `_:` + b.label }
func (BlankNode) resource()        {}

// IsZero reports whether the node was not issued by any scope.
func (b BlankNode) IsZero() bool { return b == BlankNode{} }
