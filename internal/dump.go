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

package internal

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
)

// Dump writes a statement sequence to a file, or to stdout for "-".
// A ".gz" suffix compresses the output. The format is picked like FormatFor does.
func Dump(seq *graph.Sequence, path, typ string) (int, error) {
	if path == "-" {
		return DumpTo(os.Stdout, seq, path, typ)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("could not create file %q: %w", path, err)
	}
	clog.Infof("writing statements to file %q", path)

	var (
		w  io.Writer = f
		gz *gzip.Writer
	)
	if filepath.Ext(path) == ".gz" {
		gz = gzip.NewWriter(f)
		w = gz
	}
	n, err := DumpTo(w, seq, path, typ)
	if gz != nil {
		if cerr := gz.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}
	clog.Infof("%d entries were written", n)
	return n, nil
}

// DumpTo encodes a statement sequence to w. The path is only used to guess
// the format when typ is empty.
func DumpTo(w io.Writer, seq *graph.Sequence, path, typ string) (int, error) {
	if typ == "quad" {
		typ = "nquads"
	}
	format, err := FormatFor(path, typ)
	if err != nil {
		return 0, err
	} else if format.Writer == nil {
		return 0, fmt.Errorf("encoding in %s format is not supported", format.Name)
	}
	qw := graph.NewFormatWriter(format, w)
	n, err := graph.Export(qw, seq)
	if cerr := qw.Close(); err == nil {
		err = cerr
	}
	return n, err
}
