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

package command

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/graph/memstore"
	"github.com/cayleygraph/rdfstore/internal/config"
	"github.com/cayleygraph/rdfstore/version"
)

var inputFile = filepath.Join("..", "..", "..", "internal", "testdata", "input.nt")

func run(t testing.TB, args ...string) (stdout, stderr string, err error) {
	viper.Reset()
	cmd := NewRootCmd()
	var out, errb bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errb)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errb.String(), err
}

func readAll(t testing.TB, data string) []quad.Quad {
	quads, err := quad.ReadAll(nquads.NewReader(strings.NewReader(data), false))
	require.NoError(t, err)
	return quads
}

func TestLoad(t *testing.T) {
	_, stderr, err := run(t, "load", inputFile)
	require.NoError(t, err)
	require.Contains(t, stderr, "read 13 quads, stored 11 statements")

	_, _, err = run(t, "load")
	require.ErrorIs(t, err, errNoInput)
}

func TestLoadAndDumpFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.nq.gz")
	_, stderr, err := run(t, "load", "-i", inputFile, "-o", out)
	require.NoError(t, err)
	require.Contains(t, stderr, "11 statements were written")

	_, stderr, err = run(t, "load", out)
	require.NoError(t, err)
	require.Contains(t, stderr, "read 11 quads, stored 11 statements")
}

func TestDump(t *testing.T) {
	stdout, _, err := run(t, "dump", "-i", inputFile)
	require.NoError(t, err)
	quads := readAll(t, stdout)
	require.Len(t, quads, 11)
	require.Equal(t, quad.IRI("http://example.org/mary"), quads[0].Subject)
	require.Equal(t, quad.String("Mary"), quads[0].Object)
}

func TestRename(t *testing.T) {
	stdout, stderr, err := run(t, "rename", "-i", inputFile,
		"--from", "<http://example.org/mary>", "--to", "http://example.org/wilson")
	require.NoError(t, err)
	require.Contains(t, stderr, "in 6 statements")
	require.NotContains(t, stdout, "<http://example.org/mary>")
	require.Len(t, readAll(t, stdout), 11)
	require.Equal(t, 6, strings.Count(stdout, "<http://example.org/wilson>"))

	_, _, err = run(t, "rename", "-i", inputFile, "--from", `"Mary"`, "--to", "http://example.org/x")
	require.Error(t, err)
}

func TestPrune(t *testing.T) {
	stdout, stderr, err := run(t, "prune", "-i", inputFile, "--pred", "http://xmlns.com/foaf/0.1/name")
	require.NoError(t, err)
	require.Contains(t, stderr, "removed 4 statements")
	require.Len(t, readAll(t, stdout), 7)

	_, stderr, err = run(t, "prune", "-i", inputFile, "--obj", `"Mary"@en`, "-o", "")
	require.NoError(t, err)
	require.Contains(t, stderr, "removed 1 statements")

	_, _, err = run(t, "prune", "-i", inputFile)
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, version.String()+"\n", stdout)
}

func TestUnknownLogger(t *testing.T) {
	_, _, err := run(t, "version", "--log", "syslog")
	require.Error(t, err)
}

func TestHandler(t *testing.T) {
	st := memstore.New()
	defer st.Close()
	srv := httptest.NewServer(NewHandler(st, &config.Config{LoadBatch: quad.DefaultBatch}))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v2/write", "application/n-quads",
		strings.NewReader("<http://example.org/a> <http://example.org/b> <http://example.org/c> .\n"))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, st.Size())

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var buf bytes.Buffer
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "rdfstore_memstore_statements_added")
}
