package main

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/stretchr/testify/require"

	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/graph/memstore"
	rdfhttp "github.com/cayleygraph/rdfstore/server/http"
)

var testData = []quad.Quad{
	{
		Subject:   quad.IRI("http://example.com/alice"),
		Predicate: quad.IRI("http://example.com/likes"),
		Object:    quad.IRI("http://example.com/bob"),
		Label:     nil,
	},
	{
		Subject:   quad.IRI("http://example.com/bob"),
		Predicate: quad.IRI("http://example.com/name"),
		Object:    quad.LangString{Value: "Bob", Lang: "en"},
		Label:     nil,
	},
}

func serializeTestData() string {
	buf := bytes.NewBuffer(nil)
	w := nquads.NewWriter(buf)
	w.WriteQuads(testData)
	w.Close()
	return buf.String()
}

func TestExport(t *testing.T) {
	st := memstore.New()
	defer st.Close()
	_, _, err := graph.Ingest(st, quad.NewReader(testData))
	require.NoError(t, err)
	srv := httptest.NewServer(rdfhttp.NewAPIv2(st))
	defer srv.Close()

	cmd := NewCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{
		"--uri", srv.URL,
	})
	err = cmd.Execute()
	require.NoError(t, err)
	data := serializeTestData()
	require.NotEmpty(t, data)
	require.Equal(t, data, b.String())
}
