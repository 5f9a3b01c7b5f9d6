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
	"math"
	"math/big"
	"strconv"
	"strings"
)

var integerTypes = map[IRI]struct{}{
	XSDInteger:            {},
	XSDLong:               {},
	XSDInt:                {},
	XSDShort:              {},
	XSDByte:               {},
	XSDNonNegativeInteger: {},
	XSDPositiveInteger:    {},
	XSDNonPositiveInteger: {},
	XSDNegativeInteger:    {},
	XSDUnsignedLong:       {},
	XSDUnsignedInt:        {},
	XSDUnsignedShort:      {},
	XSDUnsignedByte:       {},
}

// Canonical returns the literal with the canonical lexical form of its
// datatype. Only xsd:boolean, the xsd:integer family, xsd:decimal,
// xsd:double and xsd:float are recognized; other literals, and literals
// whose lexical form is not valid for the datatype, are returned unchanged.
func Canonical(l Literal) Literal {
	if l.lang != "" || l.datatype == "" {
		return l
	}
	var (
		s  string
		ok bool
	)
	switch dt := l.datatype; {
	case dt == XSDBoolean:
		s, ok = canonicalBool(l.lexical)
	case dt == XSDDecimal:
		s, ok = canonicalDecimal(l.lexical)
	case dt == XSDDouble:
		s, ok = canonicalFloat(l.lexical, 64)
	case dt == XSDFloat:
		s, ok = canonicalFloat(l.lexical, 32)
	default:
		if _, isInt := integerTypes[dt]; isInt {
			s, ok = canonicalInteger(l.lexical)
		}
	}
	if !ok {
		return l
	}
	return Literal{lexical: s, datatype: l.datatype}
}

func canonicalBool(s string) (string, bool) {
	switch s {
	case "true", "1":
		return "true", true
	case "false", "0":
		return "false", true
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func canonicalInteger(s string) (string, bool) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "+"), "-")
	if !isDigits(digits) {
		return "", false
	}
	var v big.Int
	if _, ok := v.SetString(s, 10); !ok {
		return "", false
	}
	return v.String(), true
}

func canonicalDecimal(s string) (string, bool) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg, s = true, s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	ip, fp := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		ip, fp = s[:i], s[i+1:]
	}
	if ip == "" && fp == "" {
		return "", false
	}
	if (ip != "" && !isDigits(ip)) || (fp != "" && !isDigits(fp)) {
		return "", false
	}
	ip = strings.TrimLeft(ip, "0")
	fp = strings.TrimRight(fp, "0")
	if ip == "" {
		ip = "0"
	}
	if fp == "" {
		fp = "0"
	}
	if ip == "0" && fp == "0" {
		neg = false
	}
	out := ip + "." + fp
	if neg {
		out = "-" + out
	}
	return out, true
}

func canonicalFloat(s string, bits int) (string, bool) {
	switch s {
	case "INF", "+INF":
		return "INF", true
	case "-INF":
		return "-INF", true
	case "NaN":
		return "NaN", true
	}
	// ParseFloat also accepts "inf", "infinity" and hex forms; XSD does not.
	if strings.ContainsAny(s, "iInNxXpP_") {
		return "", false
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return "", false
	}
	if math.IsInf(f, 0) {
		return "", false
	}
	m := strconv.FormatFloat(f, 'E', -1, bits)
	i := strings.IndexByte(m, 'E')
	mant, exp := m[:i], m[i+1:]
	if !strings.Contains(mant, ".") {
		mant += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return "", false
	}
	return mant + "E" + strconv.Itoa(e), true
}
