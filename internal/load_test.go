// Copyright 2014 The Cayley Authors. All rights reserved.
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
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/graph/memstore"
	"github.com/cayleygraph/rdfstore/term"
)

const inputFile = "testdata/input.nt"

var testDecompress = []struct {
	message string
	input   io.Reader
	expect  []byte
	err     error
	readErr error
}{
	{
		message: "text input",
		input:   strings.NewReader("cayley data\n"),
		expect:  []byte("cayley data\n"),
	},
	{
		message: "short input",
		input:   strings.NewReader("ab"),
		expect:  []byte("ab"),
	},
	{
		message: "empty input",
		input:   strings.NewReader(""),
		err:     io.EOF,
	},
	{
		message: "gzip input",
		input: bytes.NewReader([]byte{
			0x1f, 0x8b, 0x08, 0x00, 0x5c, 0xbc, 0xcd, 0x53, 0x00, 0x03, 0x4b, 0x4e, 0xac, 0xcc, 0x49, 0xad,
			0x54, 0x48, 0x49, 0x2c, 0x49, 0xe4, 0x02, 0x00, 0x03, 0xe1, 0xfc, 0xc3, 0x0c, 0x00, 0x00, 0x00,
		}),
		expect: []byte("cayley data\n"),
	},
	{
		message: "bzip2 input",
		input: bytes.NewReader([]byte{
			0x42, 0x5a, 0x68, 0x39, 0x31, 0x41, 0x59, 0x26, 0x53, 0x59, 0xb5, 0x4b, 0xe3, 0xc4, 0x00, 0x00,
			0x02, 0xd1, 0x80, 0x00, 0x10, 0x40, 0x00, 0x2e, 0x04, 0x04, 0x20, 0x20, 0x00, 0x31, 0x06, 0x4c,
			0x41, 0x4c, 0x1e, 0xa7, 0xa9, 0x2a, 0x18, 0x26, 0xb1, 0xc2, 0xee, 0x48, 0xa7, 0x0a, 0x12, 0x16,
			0xa9, 0x7c, 0x78, 0x80,
		}),
		expect: []byte("cayley data\n"),
	},
	{
		message: "bad gzip input",
		input:   strings.NewReader("\x1f\x8bcayley data\n"),
		err:     gzip.ErrHeader,
	},
	{
		message: "bad bzip2 input",
		input:   strings.NewReader("\x42\x5a\x68cayley data\n"),
		readErr: bzip2.StructuralError("invalid compression level"),
	},
}

func TestDecompress(t *testing.T) {
	for _, test := range testDecompress {
		r, err := Decompress(test.input)
		if err != test.err {
			t.Fatalf("Unexpected error for %s, got:%v expect:%v", test.message, err, test.err)
		}
		if err != nil {
			continue
		}
		p := make([]byte, len(test.expect)*2+1)
		n, err := r.Read(p)
		if err != test.readErr && err != io.EOF {
			t.Fatalf("Unexpected error for reading %s, got:%v expect:%v", test.message, err, test.readErr)
		}
		if !bytes.Equal(p[:n], test.expect) {
			t.Errorf("Unexpected read result for %s, got:%q expect:%q", test.message, p[:n], test.expect)
		}
	}
}

func TestFormatFor(t *testing.T) {
	var tests = []struct {
		path, typ, expect string
	}{
		{path: "data.nq", expect: "nquads"},
		{path: "data.nt.gz", expect: "nquads"},
		{path: "data.jsonld", expect: "jsonld"},
		{path: "data.jsonld", typ: "nquads", expect: "nquads"},
		{path: "data.unknown", expect: "nquads"},
		{path: "-", expect: "nquads"},
	}
	for _, c := range tests {
		f, err := FormatFor(c.path, c.typ)
		require.NoError(t, err, "%q %q", c.path, c.typ)
		require.Equal(t, c.expect, f.Name, "%q %q", c.path, c.typ)
	}
	_, err := FormatFor("data.nq", "nope")
	require.Error(t, err)
}

func TestLoadDedup(t *testing.T) {
	st := memstore.New()
	read, added, err := Load(st, 4, inputFile, "")
	require.NoError(t, err)
	require.Equal(t, 13, read)
	require.Equal(t, 11, added)
	require.Equal(t, 11, st.Size())

	// Nothing to do for an empty path.
	read, added, err = Load(st, 0, "", "")
	require.NoError(t, err)
	require.Zero(t, read+added)
}

func TestLoadCompressedAndRemote(t *testing.T) {
	data, err := os.ReadFile(inputFile)
	require.NoError(t, err)

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err = gz.Write(data)
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	path := filepath.Join(t.TempDir(), "input.nt.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))

	st := memstore.New()
	_, added, err := Load(st, 0, path, "")
	require.NoError(t, err)
	require.Equal(t, 11, added)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/input.nt" {
			http.NotFound(w, r)
			return
		}
		w.Write(data)
	}))
	defer srv.Close()

	remote := memstore.New()
	_, added, err = Load(remote, 0, srv.URL+"/input.nt", "nquads")
	require.NoError(t, err)
	require.Equal(t, 11, added)

	_, _, err = Load(remote, 0, srv.URL+"/missing.nt", "nquads")
	require.Error(t, err)

	_, _, err = Load(remote, 0, filepath.Join(t.TempDir(), "missing.nt"), "")
	require.Error(t, err)
}

func TestDumpAndReload(t *testing.T) {
	st := memstore.New()
	_, _, err := Load(st, 0, inputFile, "")
	require.NoError(t, err)

	for _, name := range []string{"out.nq", "out.nq.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			n, err := Dump(st.Match(graph.Any, graph.Any, graph.Any), path, "")
			require.NoError(t, err)
			require.Equal(t, 11, n)

			back := memstore.New()
			read, added, err := Load(back, 0, path, "")
			require.NoError(t, err)
			require.Equal(t, 11, read)
			require.Equal(t, 11, added)

			john := term.IRI("http://example.org/john")
			require.Equal(t,
				st.Match(graph.Exactly(john), graph.Any, graph.Any).All(),
				back.Match(graph.Exactly(john), graph.Any, graph.Any).All(),
			)
		})
	}
}

func TestDumpJSONLD(t *testing.T) {
	st := memstore.New()
	_, _, err := Load(st, 0, inputFile, "")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.jsonld")
	n, err := Dump(st.Match(graph.Any, graph.Any, graph.Any), path, "")
	require.NoError(t, err)
	require.Equal(t, 11, n)

	back := memstore.New()
	_, _, err = Load(back, 0, path, "")
	require.NoError(t, err)
	require.Equal(t, 11, back.Size())

	// Blank nodes keep linking the same statements.
	addr := back.Match(
		graph.Exactly(term.IRI("http://example.org/mary")),
		graph.Exactly(term.IRI("http://example.org/address")),
		graph.Any,
	).All()
	require.Len(t, addr, 1)
	b, ok := addr[0].Object.(term.BlankNode)
	require.True(t, ok, "%v", addr[0].Object)
	require.Equal(t, 1, back.Match(graph.Exactly(b), graph.Any, graph.Exactly(term.NewLiteral("Paris", "fr"))).Len())
}

func TestDumpCloseError(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full")
	}
	path := filepath.Join(t.TempDir(), "out.nq.gz")
	require.NoError(t, os.Symlink("/dev/full", path))

	st := memstore.New()
	st.Add(graph.Triple(term.IRI("http://example.org/a"), "http://example.org/p", term.String("x")))
	_, err := Dump(st.Match(graph.Any, graph.Any, graph.Any), path, "")
	require.Error(t, err)
}

func TestDumpTo(t *testing.T) {
	st := memstore.New()
	st.Add(graph.Triple(term.IRI("http://example.org/a"), "http://example.org/p", term.NewLiteral("x", "en")))

	var buf bytes.Buffer
	n, err := DumpTo(&buf, st.Match(graph.Any, graph.Any, graph.Any), "-", "quad")
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "<http://example.org/a> <http://example.org/p> \"x\"@en .\n", buf.String())

	_, err = DumpTo(&buf, nil, "-", "nope")
	require.Error(t, err)
}
