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
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	_ "github.com/cayleygraph/quad/dot"
	_ "github.com/cayleygraph/quad/gml"
	_ "github.com/cayleygraph/quad/graphml"
	_ "github.com/cayleygraph/quad/json"
	"github.com/cayleygraph/quad/jsonld"
	_ "github.com/cayleygraph/quad/nquads"
	_ "github.com/cayleygraph/quad/pquads"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
)

func init() {
	// Typed literals keep their lexical form.
	jsonld.AutoConvertTypedString = false
}

const (
	gzipMagic  = "\x1f\x8b"
	bzip2Magic = "BZh"
)

// Decompress detects whether r is gzip or bzip2 compressed and unwraps it.
// Anything else is returned as is.
func Decompress(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	buf, err := br.Peek(3)
	if err != nil && !(errors.Is(err, io.EOF) && len(buf) > 0) {
		return nil, err
	}
	switch {
	case bytes.HasPrefix(buf, []byte(gzipMagic)):
		return gzip.NewReader(br)
	case bytes.HasPrefix(buf, []byte(bzip2Magic)):
		return bzip2.NewReader(br), nil
	default:
		return br, nil
	}
}

// FormatFor picks a quad format by name, or by the extension of path when
// the name is empty. Compression suffixes are skipped. N-Quads is the fallback.
func FormatFor(path, typ string) (*quad.Format, error) {
	if typ != "" {
		f := quad.FormatByName(typ)
		if f == nil {
			return nil, fmt.Errorf("unknown quad format %q", typ)
		}
		return f, nil
	}
	ext := filepath.Ext(path)
	if ext == ".gz" || ext == ".bz2" {
		ext = filepath.Ext(strings.TrimSuffix(path, ext))
	}
	if f := quad.FormatByExt(ext); f != nil {
		return f, nil
	}
	return quad.FormatByName("nquads"), nil
}

// open returns the contents of a local file, stdin for "-", or a remote
// resource for http(s) URLs.
func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	u, err := url.Parse(path)
	if err != nil || u.Scheme == "file" || u.Scheme == "" {
		// Don't alter relative URL path or non-URL path parameter.
		if u != nil && u.Scheme != "" && err == nil {
			// Recovery heuristic for mistyping "file://path/to/file".
			path = filepath.Join(u.Host, u.Path)
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open file %q: %w", path, err)
		}
		return f, nil
	}
	res, err := http.Get(path)
	if err != nil {
		return nil, fmt.Errorf("could not get resource <%s>: %w", u, err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("could not get resource <%s>: %s", u, res.Status)
	}
	return res.Body, nil
}

// Load reads a graph from the given path into st. See DecompressAndLoad.
func Load(st graph.Store, batch int, path, typ string) (read, added int, err error) {
	return DecompressAndLoad(st, batch, path, typ)
}

// DecompressAndLoad will load or fetch a graph from the given path,
// decompress it, decode it with the given format and add the statements to
// st. It returns the number of quads read and of statements that were new.
func DecompressAndLoad(st graph.Store, batch int, path, typ string) (read, added int, err error) {
	if path == "" {
		return 0, 0, nil
	}
	format, err := FormatFor(path, typ)
	if err != nil {
		return 0, 0, err
	} else if format.Reader == nil {
		return 0, 0, fmt.Errorf("decoding of %q is not supported", format.Name)
	}
	rc, err := open(path)
	if err != nil {
		return 0, 0, err
	}
	defer rc.Close()

	r, err := Decompress(rc)
	if errors.Is(err, io.EOF) {
		return 0, 0, nil
	} else if err != nil {
		return 0, 0, err
	}
	qr := format.Reader(r)
	defer qr.Close()

	dest := graph.NewWriter(st)
	read, err = quad.CopyBatch(&batchLogger{BatchWriter: dest}, qr, batch)
	if cerr := dest.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return read, dest.Added(), fmt.Errorf("failed to load data: %w", err)
	}
	clog.Infof("read %d quads from %q, %d new statements", read, path, dest.Added())
	return read, dest.Added(), nil
}

type batchLogger struct {
	cnt int
	quad.BatchWriter
}

func (w *batchLogger) WriteQuads(quads []quad.Quad) (int, error) {
	n, err := w.BatchWriter.WriteQuads(quads)
	if clog.V(2) {
		w.cnt += n
		clog.Infof("Wrote %d quads.", w.cnt)
	}
	return n, err
}
