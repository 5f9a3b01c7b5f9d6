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
	"github.com/cayleygraph/quad/nquads"
	"github.com/cayleygraph/quad/voc"
	"github.com/cayleygraph/quad/voc/rdf"
	"github.com/cayleygraph/quad/voc/rdfs"
)

func init() {
	voc.RegisterPrefix(XSDPrefix, XSDNamespace)
	// Typed literals keep their lexical form.
	nquads.AutoConvertTypedString = false
}

const (
	XSDNamespace = `http://www.w3.org/2001/XMLSchema#`
	XSDPrefix    = `xsd:`
)

// XML Schema datatypes recognized by the literal rules.
const (
	XSDString             IRI = XSDNamespace + `string`
	XSDBoolean            IRI = XSDNamespace + `boolean`
	XSDDecimal            IRI = XSDNamespace + `decimal`
	XSDInteger            IRI = XSDNamespace + `integer`
	XSDDouble             IRI = XSDNamespace + `double`
	XSDFloat              IRI = XSDNamespace + `float`
	XSDDateTime           IRI = XSDNamespace + `dateTime`
	XSDLong               IRI = XSDNamespace + `long`
	XSDInt                IRI = XSDNamespace + `int`
	XSDShort              IRI = XSDNamespace + `short`
	XSDByte               IRI = XSDNamespace + `byte`
	XSDNonNegativeInteger IRI = XSDNamespace + `nonNegativeInteger`
	XSDPositiveInteger    IRI = XSDNamespace + `positiveInteger`
	XSDNonPositiveInteger IRI = XSDNamespace + `nonPositiveInteger`
	XSDNegativeInteger    IRI = XSDNamespace + `negativeInteger`
	XSDUnsignedLong       IRI = XSDNamespace + `unsignedLong`
	XSDUnsignedInt        IRI = XSDNamespace + `unsignedInt`
	XSDUnsignedShort      IRI = XSDNamespace + `unsignedShort`
	XSDUnsignedByte       IRI = XSDNamespace + `unsignedByte`
)

const (
	// RDFLangString is the datatype of language-tagged strings.
	RDFLangString IRI = rdf.NS + `langString`
	RDFType       IRI = rdf.NS + `type`

	RDFSSubClassOf IRI = rdfs.NS + `subClassOf`
	RDFSLabel      IRI = rdfs.NS + `label`
)
