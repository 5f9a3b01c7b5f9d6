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

package graph

// Defines the Store interface. A store is a set of statements: adding an
// equal statement twice keeps one copy, and removing a statement that is
// not there does nothing.

import (
	"fmt"
	"reflect"

	"github.com/cayleygraph/rdfstore/term"
)

type Store interface {
	// Add inserts a statement unless an equal one is present.
	// It reports whether the store changed.
	Add(Statement) bool

	// AddAll adds every statement of the iterator in order and returns
	// the number of statements that were not already present.
	AddAll(Iterator) int

	// Remove deletes a statement equal to the given one, if any.
	Remove(Statement) bool

	// RemoveAll deletes every statement matching the patterns and returns
	// how many were removed.
	RemoveAll(s, p, o Pattern) int

	// Match returns a snapshot of the statements matching the patterns,
	// in insertion order.
	Match(s, p, o Pattern) *Sequence

	// Contains reports whether an equal statement is present.
	Contains(Statement) bool

	// Size returns the number of statements.
	Size() int

	// RenameResource replaces every subject or object occurrence of old
	// with the IRI newURI. Predicates are left untouched.
	RenameResource(old term.Resource, newURI string) (term.IRI, error)

	// NewBlankNode returns a blank node that is unique to this store.
	NewBlankNode() term.BlankNode

	// ApplyDeltas applies a batch of changes. Unless ignored by opts,
	// a duplicate add or a missing delete fails the whole batch.
	ApplyDeltas(in []Delta, opts IgnoreOpts) error

	// ApplyTransaction applies a folded set of assertions and retractions.
	ApplyTransaction(*Transaction) error

	// Close drops the contents of the store.
	Close() error
}

type Options map[string]interface{}

var (
	typeInt = reflect.TypeOf(int(0))
)

func (d Options) IntKey(key string, def int) (int, error) {
	if val, ok := d[key]; ok {
		if reflect.TypeOf(val).ConvertibleTo(typeInt) {
			i := reflect.ValueOf(val).Convert(typeInt).Int()
			return int(i), nil
		}

		return def, fmt.Errorf("invalid %s parameter type from config: %T", key, val)
	}
	return def, nil
}

func (d Options) StringKey(key string, def string) (string, error) {
	if val, ok := d[key]; ok {
		if v, ok := val.(string); ok {
			return v, nil
		}

		return def, fmt.Errorf("invalid %s parameter type from config: %T", key, val)
	}

	return def, nil
}

func (d Options) BoolKey(key string, def bool) (bool, error) {
	if val, ok := d[key]; ok {
		if v, ok := val.(bool); ok {
			return v, nil
		}

		return def, fmt.Errorf("invalid %s parameter type from config: %T", key, val)
	}

	return def, nil
}
