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

import "strconv"

// Literal is an RDF literal: a lexical form with either a language tag or a
// datatype. The zero value is the empty plain string.
//
// Literal has no setters. A different value requires a new Literal.
type Literal struct {
	lexical  string
	lang     string
	datatype IRI
}

// String creates a plain literal without language or datatype.
func String(lexical string) Literal {
	return Literal{lexical: lexical}
}

// NewLiteral creates a literal with an optional language tag.
// An empty lang means no language; other tags are kept verbatim.
func NewLiteral(lexical, lang string) Literal {
	return Literal{lexical: lexical, lang: lang}
}

// NewTypedLiteral creates a literal with a datatype. The xsd:string datatype
// and an empty one both produce a plain literal. So does rdf:langString,
// since there is no language to go with it; MakeLiteral rejects that case
// instead.
func NewTypedLiteral(lexical string, datatype IRI) Literal {
	if datatype == XSDString || datatype == RDFLangString {
		datatype = ""
	}
	return Literal{lexical: lexical, datatype: datatype}
}

// MakeLiteral creates a literal from all three components. A literal has
// either a language tag or a datatype, so a language together with any
// datatype other than rdf:langString is rejected, as is rdf:langString
// without a language.
func MakeLiteral(lexical, lang string, datatype IRI) (Literal, error) {
	switch {
	case lang != "" && datatype != "" && datatype != RDFLangString:
		return Literal{}, &InvalidTermError{
			Kind: KindLiteral, Value: lexical, Lang: lang, Datatype: datatype,
			Reason: "language tag conflicts with datatype",
		}
	case lang == "" && datatype == RDFLangString:
		return Literal{}, &InvalidTermError{
			Kind: KindLiteral, Value: lexical, Datatype: datatype,
			Reason: "language-tagged string without a language",
		}
	case lang != "":
		return NewLiteral(lexical, lang), nil
	}
	return NewTypedLiteral(lexical, datatype), nil
}

func (l Literal) Kind() Kind { return KindLiteral }

// Lexical returns the lexical form.
func (l Literal) Lexical() string { return l.lexical }

// Language returns the language tag or an empty string.
func (l Literal) Language() string { return l.lang }

// Datatype returns the effective datatype: rdf:langString for tagged
// literals, xsd:string for plain ones.
func (l Literal) Datatype() IRI {
	switch {
	case l.lang != "":
		return RDFLangString
	case l.datatype == "":
		return XSDString
	}
	return l.datatype
}

// IsPlain reports whether the literal has neither language nor explicit datatype.
func (l Literal) IsPlain() bool { return l.lang == "" && l.datatype == "" }

func (l Literal) String() string {
	s := strconv.Quote(l.lexical)
	if l.lang != "" {
		return s + `@` + l.lang
	} else if l.datatype != "" {
		return s + `^^` + l.datatype.String()
	}
	return s
}
