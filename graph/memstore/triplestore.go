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

// Package memstore is an in-memory implementation of graph.Store.
package memstore

import (
	"sync"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/cayleygraph/rdfstore/graph"
	"github.com/cayleygraph/rdfstore/term"
)

const StoreType = "memstore"

func init() {
	graph.RegisterStore(StoreType, graph.StoreRegistration{
		NewFunc: func(opts graph.Options) (graph.Store, error) {
			canon, err := opts.BoolKey("canonical", false)
			if err != nil {
				return nil, err
			}
			var o []Option
			if canon {
				o = append(o, WithCanonicalLiterals())
			}
			if l, ok := opts["logger"].(clog.Logger); ok {
				o = append(o, WithLogger(l))
			}
			return New(o...), nil
		},
	})
}

// Option configures a TripleStore.
type Option func(*TripleStore)

// WithLogger sets the logger for rejected statements and store events.
func WithLogger(l clog.Logger) Option {
	return func(ts *TripleStore) {
		if l == nil {
			l = clog.Discard
		}
		ts.log = l
	}
}

// WithCanonicalLiterals makes the store compare literals by their
// canonical lexical form, so "1" and "01" typed as xsd:integer are the
// same value. The first form added is the one kept.
func WithCanonicalLiterals() Option {
	return func(ts *TripleStore) {
		ts.key = term.ValueKey
	}
}

// WithScope sets the scope used by NewBlankNode.
func WithScope(s *term.Scope) Option {
	return func(ts *TripleStore) {
		if s != nil {
			ts.scope = s
		}
	}
}

// compactMin is the number of tombstones tolerated before the log is
// considered for compaction.
const compactMin = 1024

type node struct {
	t    term.Term
	refs int
}

type logEntry struct {
	Statement graph.Statement
	IDs       [3]int64
	Deleted   bool
}

var _ graph.Store = (*TripleStore)(nil)

// TripleStore keeps statements in an append-only log with a sentinel at
// index 0. Nodes are interned into int64 ids and removals leave tombstones
// until the log is compacted.
type TripleStore struct {
	mu sync.RWMutex

	log   clog.Logger
	key   func(term.Term) string
	scope *term.Scope

	nextID   int64
	idMap    map[string]int64
	revIDMap map[int64]*node

	entries []logEntry
	exact   map[[3]int64]int64
	index   DirectionIndex
	size    int
	deleted int
	closed  bool
}

// New creates an empty store.
func New(opts ...Option) *TripleStore {
	ts := &TripleStore{
		log:   clog.Discard,
		key:   term.Key,
		scope: term.NewScope(),
	}
	for _, opt := range opts {
		opt(ts)
	}
	ts.reset()
	return ts
}

func (ts *TripleStore) reset() {
	ts.nextID = 1
	ts.idMap = make(map[string]int64)
	ts.revIDMap = make(map[int64]*node)
	// Sentinel null entry so indices start at 1
	ts.entries = make([]logEntry, 1, 200)
	ts.exact = make(map[[3]int64]int64)
	ts.index = NewDirectionIndex()
	ts.size = 0
	ts.deleted = 0
}

// ids resolves the node ids of a statement without creating them.
func (ts *TripleStore) ids(s graph.Statement) ([3]int64, bool) {
	var ids [3]int64
	for i, d := range dirs {
		id, ok := ts.idMap[ts.key(s.Get(d))]
		if !ok {
			return ids, false
		}
		ids[i] = id
	}
	return ids, true
}

func (ts *TripleStore) indexOf(s graph.Statement) (int64, bool) {
	ids, ok := ts.ids(s)
	if !ok {
		return 0, false
	}
	lid, ok := ts.exact[ids]
	return lid, ok
}

func (ts *TripleStore) intern(t term.Term) int64 {
	k := ts.key(t)
	id, ok := ts.idMap[k]
	if !ok {
		id = ts.nextID
		ts.nextID++
		ts.idMap[k] = id
		ts.revIDMap[id] = &node{t: t}
		mNodesNew.Inc()
	}
	ts.revIDMap[id].refs++
	return id
}

func (ts *TripleStore) release(id int64) {
	n := ts.revIDMap[id]
	if n == nil {
		return
	}
	n.refs--
	if n.refs > 0 {
		return
	}
	delete(ts.idMap, ts.key(n.t))
	delete(ts.revIDMap, id)
	mNodesDel.Inc()
}

func (ts *TripleStore) add(s graph.Statement) bool {
	if _, exists := ts.indexOf(s); exists {
		mStatementsDup.Inc()
		return false
	}
	var ids [3]int64
	for i, d := range dirs {
		ids[i] = ts.intern(s.Get(d))
	}
	lid := int64(len(ts.entries))
	ts.entries = append(ts.entries, logEntry{Statement: s, IDs: ids})
	ts.exact[ids] = lid
	for i, d := range dirs {
		ts.index.Set(d, ids[i], lid)
	}
	ts.size++
	mStatementsAdded.Inc()
	return true
}

func (ts *TripleStore) remove(s graph.Statement) bool {
	lid, exists := ts.indexOf(s)
	if !exists {
		return false
	}
	e := &ts.entries[lid]
	e.Deleted = true
	delete(ts.exact, e.IDs)
	for i, d := range dirs {
		ts.index.Delete(d, e.IDs[i], lid)
		ts.release(e.IDs[i])
	}
	ts.size--
	ts.deleted++
	mStatementsRemoved.Inc()
	ts.maybeCompact()
	return true
}

// maybeCompact drops tombstones from the log once they outnumber live
// statements. Log ids change, so the indexes are rebuilt.
func (ts *TripleStore) maybeCompact() {
	if ts.deleted < compactMin || ts.deleted < ts.size {
		return
	}
	entries := make([]logEntry, 1, ts.size+1)
	index := NewDirectionIndex()
	for _, e := range ts.entries[1:] {
		if e.Deleted {
			continue
		}
		lid := int64(len(entries))
		entries = append(entries, e)
		ts.exact[e.IDs] = lid
		for i, d := range dirs {
			index.Set(d, e.IDs[i], lid)
		}
	}
	if clog.V(2) {
		ts.log.Infof("memstore: compacted log from %d to %d entries", len(ts.entries)-1, len(entries)-1)
	}
	ts.entries = entries
	ts.index = index
	ts.deleted = 0
	mCompactions.Inc()
}

func (ts *TripleStore) valid(s graph.Statement) bool {
	if s.IsValid() {
		return true
	}
	mStatementsInvalid.Inc()
	ts.log.Warningf("memstore: rejecting invalid statement: %v", s)
	return false
}

func (ts *TripleStore) Add(s graph.Statement) bool {
	if !ts.valid(s) {
		return false
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.closed {
		ts.log.Warningf("memstore: add on a closed store")
		return false
	}
	return ts.add(s)
}

func (ts *TripleStore) AddAll(it graph.Iterator) int {
	if it == nil {
		return 0
	}
	var stmts []graph.Statement
	for it.Next() {
		s := it.Statement()
		if ts.valid(s) {
			stmts = append(stmts, s)
		}
	}
	if len(stmts) == 0 {
		return 0
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.closed {
		ts.log.Warningf("memstore: add on a closed store")
		return 0
	}
	n := 0
	for _, s := range stmts {
		if ts.add(s) {
			n++
		}
	}
	return n
}

func (ts *TripleStore) Remove(s graph.Statement) bool {
	if !s.IsValid() {
		return false
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.remove(s)
}

func (ts *TripleStore) RemoveAll(s, p, o graph.Pattern) int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	lids := ts.match(s, p, o)
	stmts := make([]graph.Statement, 0, len(lids))
	for _, lid := range lids {
		stmts = append(stmts, ts.entries[lid].Statement)
	}
	n := 0
	for _, st := range stmts {
		if ts.remove(st) {
			n++
		}
	}
	if n > 0 && clog.V(1) {
		ts.log.Infof("memstore: removed %d statements matching (%v, %v, %v)", n, s, p, o)
	}
	return n
}

// match returns the log ids of live statements matching the patterns,
// in log order.
func (ts *TripleStore) match(s, p, o graph.Pattern) []int64 {
	var (
		bound [3]int64
		best  idSet
		isSet [3]bool
		nb    int
	)
	for i, pt := range [3]graph.Pattern{s, p, o} {
		if pt.IsAny() {
			continue
		}
		id, ok := ts.idMap[ts.key(pt.Term())]
		if !ok {
			// If we've never heard about a node, it must not exist
			mMatchCount.WithLabelValues("miss").Inc()
			return nil
		}
		set, ok := ts.index.Get(dirs[i], id)
		if !ok {
			mMatchCount.WithLabelValues("miss").Inc()
			return nil
		}
		bound[i], isSet[i] = id, true
		nb++
		if best == nil || len(set) < len(best) {
			best = set
		}
	}
	switch nb {
	case 0:
		mMatchCount.WithLabelValues("all").Inc()
		out := make([]int64, 0, ts.size)
		for lid := 1; lid < len(ts.entries); lid++ {
			if !ts.entries[lid].Deleted {
				out = append(out, int64(lid))
			}
		}
		return out
	case 3:
		mMatchCount.WithLabelValues("exact").Inc()
		if lid, ok := ts.exact[bound]; ok {
			return []int64{lid}
		}
		return nil
	}
	mMatchCount.WithLabelValues("direction").Inc()
	var out []int64
	for _, lid := range best.sorted() {
		e := ts.entries[lid]
		ok := true
		for i := range dirs {
			if isSet[i] && e.IDs[i] != bound[i] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, lid)
		}
	}
	return out
}

func (ts *TripleStore) Match(s, p, o graph.Pattern) *graph.Sequence {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	lids := ts.match(s, p, o)
	out := make([]graph.Statement, 0, len(lids))
	for _, lid := range lids {
		out = append(out, ts.entries[lid].Statement)
	}
	mMatchResults.Observe(float64(len(out)))
	return graph.NewSequence(out)
}

func (ts *TripleStore) Contains(s graph.Statement) bool {
	if !s.IsValid() {
		return false
	}
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	_, ok := ts.indexOf(s)
	return ok
}

func (ts *TripleStore) Size() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.size
}

func (ts *TripleStore) NewBlankNode() term.BlankNode {
	return ts.scope.NewBlankNode()
}

// Scope returns the scope of blank nodes created by NewBlankNode.
func (ts *TripleStore) Scope() *term.Scope { return ts.scope }

func (ts *TripleStore) RenameResource(old term.Resource, newURI string) (term.IRI, error) {
	iri, err := term.NewIRI(newURI)
	if err != nil {
		return "", err
	}
	mRenames.Inc()
	if old == nil {
		return iri, nil
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	oldKey := ts.key(old)
	if oldKey == ts.key(iri) {
		return iri, nil
	}
	id, found := ts.idMap[oldKey]
	if !found {
		return iri, nil
	}
	lids := make(idSet)
	for _, d := range []quad.Direction{quad.Subject, quad.Object} {
		if set, found := ts.index.Get(d, id); found {
			for lid := range set {
				lids[lid] = struct{}{}
			}
		}
	}
	var stmts []graph.Statement
	for _, lid := range lids.sorted() {
		stmts = append(stmts, ts.entries[lid].Statement)
	}
	for _, s := range stmts {
		ts.remove(s)
		if ts.key(s.Subject) == oldKey {
			s.Subject = iri
		}
		if ts.key(s.Object) == oldKey {
			s.Object = iri
		}
		ts.add(s)
	}
	if clog.V(1) {
		ts.log.Infof("memstore: renamed %v to %v in %d statements", old, iri, len(stmts))
	}
	return iri, nil
}

func (ts *TripleStore) ApplyDeltas(deltas []graph.Delta, ignoreOpts graph.IgnoreOpts) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.closed {
		return graph.ErrClosed
	}
	// Precheck the whole batch, including validity and actions.
	pending := make(map[string]graph.Procedure)
	for _, d := range deltas {
		if d.Action != graph.Add && d.Action != graph.Delete {
			return &graph.DeltaError{Delta: d, Err: graph.ErrInvalidAction}
		}
		if !d.Statement.IsValid() {
			return &graph.DeltaError{Delta: d, Err: graph.ErrInvalidStatement}
		}
		if ignoreOpts.IgnoreDup && ignoreOpts.IgnoreMissing {
			continue
		}
		k := ts.key(d.Statement.Subject) + " " + ts.key(d.Statement.Predicate) + " " + ts.key(d.Statement.Object)
		act, seen := pending[k]
		exists := act == graph.Add
		if !seen {
			_, exists = ts.indexOf(d.Statement)
		}
		switch d.Action {
		case graph.Add:
			if exists && !ignoreOpts.IgnoreDup {
				return &graph.DeltaError{Delta: d, Err: graph.ErrStatementExists}
			}
			pending[k] = graph.Add
		case graph.Delete:
			if !exists && !ignoreOpts.IgnoreMissing {
				return &graph.DeltaError{Delta: d, Err: graph.ErrStatementNotExist}
			}
			pending[k] = graph.Delete
		}
	}

	for _, d := range deltas {
		switch d.Action {
		case graph.Add:
			ts.add(d.Statement)
		case graph.Delete:
			ts.remove(d.Statement)
		}
	}
	return nil
}

func (ts *TripleStore) ApplyTransaction(tx *graph.Transaction) error {
	if tx == nil {
		return nil
	}
	return ts.ApplyDeltas(tx.Deltas, graph.IgnoreOpts{IgnoreDup: true, IgnoreMissing: true})
}

// Close drops every statement and node. The store stays usable for reads,
// which see nothing, and rejects further writes.
func (ts *TripleStore) Close() error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.reset()
	ts.closed = true
	return nil
}
