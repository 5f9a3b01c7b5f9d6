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

package graph

// Adapters between a Store and the quad readers and writers of the codec
// library. Quads become statements on the way in: blank node labels are
// resolved in a scope owned by the writer and quad labels are dropped.

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/rdfstore/term"
)

type Procedure int8

func (p Procedure) String() string {
	switch p {
	case +1:
		return "add"
	case -1:
		return "delete"
	default:
		return "invalid"
	}
}

// The different types of actions a transaction can do.
const (
	Add    Procedure = +1
	Delete Procedure = -1
)

type Delta struct {
	Statement Statement
	Action    Procedure
}

func (d Delta) key() string {
	return strconv.Itoa(int(d.Action)) + d.Statement.Key()
}

type IgnoreOpts struct {
	IgnoreDup, IgnoreMissing bool
}

type BatchWriter interface {
	quad.WriteCloser
	Flush() error
}

// NewWriter creates a quad writer for a given Store.
//
// Every writer resolves blank nodes in its own fresh scope, so "_:a" written
// twice to the same writer is one node, but never the "_:a" of another writer.
//
// Caller must call Flush or Close to flush an internal buffer.
func NewWriter(st Store) *Writer {
	return &Writer{st: st, scope: term.NewScope()}
}

var _ BatchWriter = (*Writer)(nil)

// Writer adds quads to a store as statements.
type Writer struct {
	st    Store
	scope *term.Scope
	buf   []Statement
	added int
}

// Added returns the number of statements that were not present in the store.
func (w *Writer) Added() int { return w.added }

func (w *Writer) flushBuffer(force bool) error {
	if !force && len(w.buf) < quad.DefaultBatch {
		return nil
	}
	w.added += w.st.AddAll(&Sequence{stmts: w.buf})
	w.buf = w.buf[:0]
	return nil
}

func (w *Writer) WriteQuad(q quad.Quad) error {
	if err := w.flushBuffer(false); err != nil {
		return err
	}
	s, err := FromQuad(w.scope, q)
	if err != nil {
		return fmt.Errorf("cannot convert %v: %w", q, err)
	}
	w.buf = append(w.buf, s)
	return nil
}

func (w *Writer) WriteQuads(quads []quad.Quad) (int, error) {
	for i, q := range quads {
		if err := w.WriteQuad(q); err != nil {
			return i, err
		}
	}
	return len(quads), nil
}

func (w *Writer) Flush() error {
	return w.flushBuffer(true)
}

func (w *Writer) Close() error {
	return w.Flush()
}

// Ingest copies all quads from r into the store. It returns the number of
// quads read and the number of statements that were new.
func Ingest(st Store, r quad.Reader) (read, added int, err error) {
	w := NewWriter(st)
	read, err = quad.CopyBatch(w, r, quad.DefaultBatch)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return read, w.Added(), err
}

// NewTxWriter creates a writer that applies a given procedures for all quads in stream.
// If procedure is zero, Add operation will be used.
func NewTxWriter(tx *Transaction, p Procedure) quad.Writer {
	if p == 0 {
		p = Add
	}
	return &txWriter{tx: tx, p: p, scope: term.NewScope()}
}

type txWriter struct {
	tx    *Transaction
	p     Procedure
	scope *term.Scope
}

func (w *txWriter) WriteQuad(q quad.Quad) error {
	s, err := FromQuad(w.scope, q)
	if err != nil {
		return err
	}
	switch w.p {
	case Add:
		w.tx.AddStatement(s)
	case Delete:
		w.tx.RemoveStatement(s)
	default:
		return ErrInvalidAction
	}
	return nil
}

func (w *txWriter) WriteQuads(buf []quad.Quad) (int, error) {
	for i, q := range buf {
		if err := w.WriteQuad(q); err != nil {
			return i, err
		}
	}
	return len(buf), nil
}

// NewRemover creates a quad writer for a given Store which removes statements instead of adding them.
//
// Blank nodes are resolved in a fresh scope, so statements with blank nodes
// never match the ones already stored.
func NewRemover(st Store) *Remover {
	return &Remover{st: st, scope: term.NewScope()}
}

var _ BatchWriter = (*Remover)(nil)

type Remover struct {
	st      Store
	scope   *term.Scope
	removed int
}

// Removed returns the number of statements actually deleted.
func (w *Remover) Removed() int { return w.removed }

func (w *Remover) WriteQuad(q quad.Quad) error {
	s, err := FromQuad(w.scope, q)
	if err != nil {
		return fmt.Errorf("cannot convert %v: %w", q, err)
	}
	if w.st.Remove(s) {
		w.removed++
	}
	return nil
}

func (w *Remover) WriteQuads(quads []quad.Quad) (int, error) {
	for i, q := range quads {
		if err := w.WriteQuad(q); err != nil {
			return i, err
		}
	}
	return len(quads), nil
}

func (w *Remover) Flush() error { return nil }
func (w *Remover) Close() error { return nil }

// NewStatementReader creates a quad reader over a statement sequence.
//
// Blank nodes of different scopes that share a label are given distinct
// labels, so the output never merges them.
func NewStatementReader(seq *Sequence) quad.ReadSkipCloser {
	return &statementReader{
		seq:    seq,
		labels: make(map[string]string),
		used:   make(map[string]struct{}),
	}
}

type statementReader struct {
	seq    *Sequence
	labels map[string]string
	used   map[string]struct{}
}

func (r *statementReader) value(t term.Term) quad.Value {
	b, ok := t.(term.BlankNode)
	if !ok {
		return term.ToValue(t)
	}
	k := term.Key(b)
	if l, ok := r.labels[k]; ok {
		return quad.BNode(l)
	}
	l := b.Label()
	for n := 1; ; n++ {
		if _, ok := r.used[l]; !ok {
			break
		}
		l = b.Label() + "_" + strconv.Itoa(n)
	}
	r.used[l] = struct{}{}
	r.labels[k] = l
	return quad.BNode(l)
}

func (r *statementReader) ReadQuad() (quad.Quad, error) {
	if !r.seq.Next() {
		return quad.Quad{}, io.EOF
	}
	s := r.seq.Statement()
	return quad.Quad{
		Subject:   r.value(s.Subject),
		Predicate: quad.IRI(s.Predicate),
		Object:    r.value(s.Object),
	}, nil
}

func (r *statementReader) SkipQuad() error {
	if r.seq.Next() {
		return nil
	}
	return io.EOF
}

func (r *statementReader) Close() error { return nil }

// NewFormatWriter opens an encoder of format f on w. The JSON-LD encoder
// wants blank node labels with their "_:" prefix, so they are added for it.
func NewFormatWriter(f *quad.Format, w io.Writer) quad.WriteCloser {
	qw := f.Writer(w)
	if f.Name != "jsonld" {
		return qw
	}
	return &blankPrefixWriter{WriteCloser: qw}
}

type blankPrefixWriter struct {
	quad.WriteCloser
}

func prefixBlank(v quad.Value) quad.Value {
	if b, ok := v.(quad.BNode); ok && !strings.HasPrefix(string(b), "_:") {
		return quad.BNode("_:" + string(b))
	}
	return v
}

func (w *blankPrefixWriter) WriteQuad(q quad.Quad) error {
	q.Subject, q.Object = prefixBlank(q.Subject), prefixBlank(q.Object)
	return w.WriteCloser.WriteQuad(q)
}

func (w *blankPrefixWriter) WriteQuads(buf []quad.Quad) (int, error) {
	out := make([]quad.Quad, len(buf))
	for i, q := range buf {
		q.Subject, q.Object = prefixBlank(q.Subject), prefixBlank(q.Object)
		out[i] = q
	}
	return w.WriteCloser.WriteQuads(out)
}

// Export writes the statements of a sequence to w and returns how many were written.
func Export(w quad.Writer, seq *Sequence) (int, error) {
	return quad.Copy(w, NewStatementReader(seq))
}
