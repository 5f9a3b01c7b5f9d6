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

package memstore

import (
	"sort"

	"github.com/cayleygraph/quad"
)

var dirs = [3]quad.Direction{quad.Subject, quad.Predicate, quad.Object}

type idSet map[int64]struct{}

// sorted returns the ids in ascending order, which is the log order.
func (s idSet) sorted() []int64 {
	out := make([]int64, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DirectionIndex maps a node id to the log ids of live statements that
// have the node in a given position.
type DirectionIndex struct {
	index [3]map[int64]idSet
}

func NewDirectionIndex() DirectionIndex {
	return DirectionIndex{[...]map[int64]idSet{
		quad.Subject - 1:   make(map[int64]idSet),
		quad.Predicate - 1: make(map[int64]idSet),
		quad.Object - 1:    make(map[int64]idSet),
	}}
}

func (di DirectionIndex) Get(d quad.Direction, id int64) (idSet, bool) {
	if d < quad.Subject || d > quad.Object {
		panic("illegal direction")
	}
	set, ok := di.index[d-1][id]
	return set, ok
}

func (di DirectionIndex) Set(d quad.Direction, id, lid int64) {
	if d < quad.Subject || d > quad.Object {
		panic("illegal direction")
	}
	set, ok := di.index[d-1][id]
	if !ok {
		set = make(idSet)
		di.index[d-1][id] = set
	}
	set[lid] = struct{}{}
}

func (di DirectionIndex) Delete(d quad.Direction, id, lid int64) {
	if d < quad.Subject || d > quad.Object {
		panic("illegal direction")
	}
	set, ok := di.index[d-1][id]
	if !ok {
		return
	}
	delete(set, lid)
	if len(set) == 0 {
		delete(di.index[d-1], id)
	}
}
