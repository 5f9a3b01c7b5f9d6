// Copyright 2017 The Cayley Authors. All rights reserved.
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

package rdfhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/term"
)

var errBlankPattern = errors.New("blank nodes cannot be used as patterns")

func jsonResponse(w http.ResponseWriter, code int, err interface{}) {
	w.Header().Set(hdrContentType, contentTypeJSON)
	w.WriteHeader(code)
	w.Write([]byte(`{"error": `))
	var s string
	switch err := err.(type) {
	case string:
		s = err
	case error:
		s = err.Error()
	default:
		s = fmt.Sprint(err)
	}
	data, _ := json.Marshal(s)
	w.Write(data)
	w.Write([]byte(`}`))
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set(hdrContentType, contentTypeJSON)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func termFromString(sc *term.Scope, s string) (term.Term, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "_:") {
		return nil, errBlankPattern
	}
	return term.Parse(sc, s)
}

func resourceFromString(sc *term.Scope, s string) (term.Resource, error) {
	t, err := termFromString(sc, s)
	if err != nil {
		return nil, err
	}
	r, ok := t.(term.Resource)
	if !ok {
		return nil, fmt.Errorf("%q is not a resource", s)
	}
	return r, nil
}

// patternsFrom reads the sub, pred and obj form values of a request.
// A missing value matches anything.
func patternsFrom(r *http.Request) (s, p, o graph.Pattern, err error) {
	sc := term.NewScope()
	var pats [3]graph.Pattern
	for i, key := range [3]string{"sub", "pred", "obj"} {
		t, err := termFromString(sc, r.FormValue(key))
		if err != nil {
			return s, p, o, fmt.Errorf("%s: %w", key, err)
		}
		pats[i] = graph.Exactly(t)
	}
	return pats[0], pats[1], pats[2], nil
}
