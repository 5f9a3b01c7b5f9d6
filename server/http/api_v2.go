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

// Package rdfhttp serves a statement store over HTTP.
package rdfhttp

import (
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/pquads"
	"github.com/julienschmidt/httprouter"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/term"
)

const prefix = "/api/v2"

var errReadOnly = errors.New("database is read-only")

// NewAPIv2 creates a new instance of APIv2 with default options.
func NewAPIv2(st graph.Store, wrappers ...HandlerWrapper) *APIv2 {
	r := httprouter.New()
	api := &APIv2{st: st, batch: quad.DefaultBatch}
	api.registerOn(r)
	var handler http.Handler = r
	for _, wrapper := range wrappers {
		handler = wrapper(handler)
	}
	api.handler = handler
	return api
}

// NewBoundAPIv2 creates a new instance of APIv2 bound to a given httprouter.Router.
func NewBoundAPIv2(st graph.Store, r *httprouter.Router) *APIv2 {
	api := &APIv2{st: st, batch: quad.DefaultBatch, handler: r}
	api.registerOn(r)
	return api
}

type APIv2 struct {
	st      graph.Store
	ro      bool
	batch   int
	timeout time.Duration
	handler http.Handler
}

func (api *APIv2) SetReadOnly(ro bool) {
	api.ro = ro
}
func (api *APIv2) SetBatchSize(n int) {
	api.batch = n
}
func (api *APIv2) SetTimeout(dt time.Duration) {
	api.timeout = dt
}

func (api *APIv2) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.handler.ServeHTTP(w, r)
}

type HandlerWrapper func(http.Handler) http.Handler

func toHandle(handler http.HandlerFunc) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		handler(w, r)
	}
}

func (api *APIv2) registerOn(r *httprouter.Router) {
	r.POST(prefix+"/write", toHandle(api.ServeWrite))
	r.POST(prefix+"/delete", toHandle(api.ServeDelete))
	r.POST(prefix+"/rename", toHandle(api.ServeRename))
	r.POST(prefix+"/prune", toHandle(api.ServePrune))
	r.POST(prefix+"/read", toHandle(api.ServeRead))
	r.GET(prefix+"/read", toHandle(api.ServeRead))
	r.GET(prefix+"/size", toHandle(api.ServeSize))
	r.GET(prefix+"/formats", toHandle(api.ServeFormats))
	r.GET("/health", toHandle(HandleHealth))
}

const (
	defaultFormat      = "nquads"
	hdrContentType     = "Content-Type"
	hdrContentEncoding = "Content-Encoding"
	hdrAccept          = "Accept"
	hdrAcceptEncoding  = "Accept-Encoding"
	contentTypeJSON    = "application/json"
)

func getFormat(r *http.Request, formKey string, acceptName string) *quad.Format {
	var format *quad.Format
	if formKey != "" {
		if name := r.FormValue(formKey); name != "" {
			format = quad.FormatByName(name)
		}
	}
	if acceptName != "" && format == nil {
		for _, s := range ParseAccept(r.Header, acceptName) {
			if format = quad.FormatByMime(s.Value); format != nil {
				break
			}
		}
	}
	if format == nil {
		format = quad.FormatByName(defaultFormat)
	}
	return format
}

func readerFrom(r *http.Request, acceptName string) (io.ReadCloser, error) {
	if specs := ParseAccept(r.Header, acceptName); len(specs) != 0 {
		if s := specs[0]; s.Value == "gzip" {
			zr, err := gzip.NewReader(r.Body)
			if err != nil {
				return nil, err
			}
			return zr, nil
		}
	}
	return r.Body, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func writerFrom(w http.ResponseWriter, r *http.Request, acceptName string) io.WriteCloser {
	for _, s := range ParseAccept(r.Header, acceptName) {
		if s.Value == "gzip" && s.Q > 0 {
			w.Header().Set(hdrContentEncoding, s.Value)
			return gzip.NewWriter(w)
		}
	}
	return nopWriteCloser{Writer: w}
}

// writeResponse represents the response received for a successful write
type writeResponse struct {
	Result string `json:"result"`
	Count  int    `json:"count"`
	Added  int    `json:"added"`
}

type removeResponse struct {
	Result string `json:"result"`
	Count  int    `json:"count"`
}

type renameResponse struct {
	Result string `json:"result"`
	IRI    string `json:"iri"`
}

type sizeResponse struct {
	Size int `json:"size"`
}

func (api *APIv2) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	if api.timeout > 0 {
		return context.WithTimeout(r.Context(), api.timeout)
	}
	return context.WithCancel(r.Context())
}

// quadsFrom opens the body of a request as a quad stream.
func quadsFrom(r *http.Request) (quad.ReadCloser, io.Closer, error) {
	format := getFormat(r, "", hdrContentType)
	if format == nil || format.Reader == nil {
		return nil, nil, errors.New("format is not supported for reading data")
	}
	rd, err := readerFrom(r, hdrContentEncoding)
	if err != nil {
		return nil, nil, err
	}
	return format.Reader(rd), rd, nil
}

func (api *APIv2) ServeWrite(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	if api.ro {
		jsonResponse(w, http.StatusForbidden, errReadOnly)
		return
	}
	ctx, cancel := api.requestContext(r)
	defer cancel()
	qr, rd, err := quadsFrom(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	defer rd.Close()
	defer qr.Close()

	qw := graph.NewWriter(api.st)
	n, err := quad.CopyBatch(qw, &ctxReader{ctx: ctx, r: qr}, api.batch)
	if cerr := qw.Close(); err == nil {
		err = cerr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		jsonResponse(w, http.StatusServiceUnavailable, err)
		return
	} else if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	if clog.V(1) {
		clog.Infof("write: %d quads, %d new statements", n, qw.Added())
	}
	writeJSON(w, writeResponse{
		Result: fmt.Sprintf("Successfully wrote %d quads.", n),
		Count:  n,
		Added:  qw.Added(),
	})
}

func (api *APIv2) ServeDelete(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	if api.ro {
		jsonResponse(w, http.StatusForbidden, errReadOnly)
		return
	}
	ctx, cancel := api.requestContext(r)
	defer cancel()
	qr, rd, err := quadsFrom(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	defer rd.Close()
	defer qr.Close()

	qw := graph.NewRemover(api.st)
	defer qw.Close()
	if _, err = quad.CopyBatch(qw, &ctxReader{ctx: ctx, r: qr}, api.batch); err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	n := qw.Removed()
	writeJSON(w, removeResponse{
		Result: fmt.Sprintf("Successfully deleted %d quads.", n),
		Count:  n,
	})
}

func (api *APIv2) ServeRename(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	if api.ro {
		jsonResponse(w, http.StatusForbidden, errReadOnly)
		return
	}
	from, to := r.FormValue("from"), r.FormValue("to")
	if from == "" || to == "" {
		jsonResponse(w, http.StatusBadRequest, "both from and to must be set")
		return
	}
	sc := term.NewScope()
	old, err := resourceFromString(sc, from)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	nt, err := resourceFromString(sc, to)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	iri, ok := nt.(term.IRI)
	if !ok {
		jsonResponse(w, http.StatusBadRequest, fmt.Errorf("%q is not an IRI", to))
		return
	}
	res, err := api.st.RenameResource(old, string(iri))
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, renameResponse{
		Result: fmt.Sprintf("Successfully renamed %v to %v.", old, res),
		IRI:    string(res),
	})
}

func (api *APIv2) ServePrune(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	if api.ro {
		jsonResponse(w, http.StatusForbidden, errReadOnly)
		return
	}
	s, p, o, err := patternsFrom(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	if s.IsAny() && p.IsAny() && o.IsAny() && r.FormValue("all") != "true" {
		jsonResponse(w, http.StatusBadRequest, "no pattern given; set all=true to remove every statement")
		return
	}
	n := api.st.RemoveAll(s, p, o)
	clog.Infof("prune %v %v %v: removed %d statements", s, p, o, n)
	writeJSON(w, removeResponse{
		Result: fmt.Sprintf("Successfully deleted %d quads.", n),
		Count:  n,
	})
}

func (api *APIv2) ServeSize(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, sizeResponse{Size: api.st.Size()})
}

type checkWriter struct {
	w       io.Writer
	written bool
}

func (w *checkWriter) Write(p []byte) (int, error) {
	w.written = true
	return w.w.Write(p)
}

// ctxReader stops a quad stream once the context is done.
type ctxReader struct {
	ctx context.Context
	r   quad.Reader
}

func (r *ctxReader) ReadQuad() (quad.Quad, error) {
	if err := r.ctx.Err(); err != nil {
		return quad.Quad{}, err
	}
	return r.r.ReadQuad()
}

func (api *APIv2) ServeRead(w http.ResponseWriter, r *http.Request) {
	format := getFormat(r, "format", hdrAccept)
	if format == nil || format.Writer == nil {
		jsonResponse(w, http.StatusBadRequest, fmt.Errorf("format is not supported for writing data"))
		return
	}
	s, p, o, err := patternsFrom(r)
	if err != nil {
		jsonResponse(w, http.StatusBadRequest, err)
		return
	}
	ctx, cancel := api.requestContext(r)
	defer cancel()

	qr := graph.NewStatementReader(api.st.Match(s, p, o))
	defer qr.Close()

	wr := writerFrom(w, r, hdrAcceptEncoding)
	defer wr.Close()

	cw := &checkWriter{w: wr}
	qwc := graph.NewFormatWriter(format, cw)
	defer qwc.Close()
	var qw quad.Writer = qwc
	if len(format.Mime) != 0 {
		w.Header().Set(hdrContentType, format.Mime[0])
	}
	if irif := r.FormValue("iri"); irif != "" {
		opts := quad.IRIOptions{
			Format: quad.IRIDefault,
		}
		switch irif {
		case "short":
			opts.Format = quad.IRIShort
		case "full":
			opts.Format = quad.IRIFull
		}
		qw = quad.IRIWriter(qw, opts)
	}
	_, err = quad.Copy(qw, &ctxReader{ctx: ctx, r: qr})
	if err != nil && !cw.written {
		jsonResponse(w, http.StatusInternalServerError, err)
		return
	} else if err != nil {
		// headers are already sent
		clog.Errorf("read quads error: %v", err)
	}
}

func (api *APIv2) ServeFormats(w http.ResponseWriter, r *http.Request) {
	type Format struct {
		ID     string   `json:"id"`
		Read   bool     `json:"read,omitempty"`
		Write  bool     `json:"write,omitempty"`
		Nodes  bool     `json:"nodes,omitempty"`
		Ext    []string `json:"ext,omitempty"`
		Mime   []string `json:"mime,omitempty"`
		Binary bool     `json:"binary,omitempty"`
	}
	formats := quad.Formats()
	out := make([]Format, 0, len(formats))
	for _, f := range formats {
		out = append(out, Format{
			ID:  f.Name,
			Ext: f.Ext, Mime: f.Mime,
			Read: f.Reader != nil, Write: f.Writer != nil,
			Nodes:  f.UnmarshalValue != nil,
			Binary: f.Binary,
		})
	}
	writeJSON(w, out)
}
