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

package term

import (
	"strconv"
	"sync"

	"github.com/google/uuid"
)

type scopeID = uuid.UUID

// Scope issues blank nodes. Each store and each decoded document gets its own
// scope, which keeps their blank nodes apart.
type Scope struct {
	id scopeID

	mu   sync.Mutex
	next uint64
	used map[string]struct{}
}

// NewScope creates a new blank node scope with a random identity.
func NewScope() *Scope {
	return &Scope{id: uuid.New(), used: make(map[string]struct{})}
}

// ID returns the identity of the scope.
func (s *Scope) ID() string { return s.id.String() }

// NewBlankNode returns a blank node with a label that was never issued by
// this scope before.
func (s *Scope) NewBlankNode() BlankNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		s.next++
		label := "b" + strconv.FormatUint(s.next, 10)
		if _, ok := s.used[label]; ok {
			continue
		}
		s.used[label] = struct{}{}
		return BlankNode{label: label, scope: s.id}
	}
}

// BlankNode returns the node for a given label within the scope.
// Calling it twice with the same label returns equal nodes.
func (s *Scope) BlankNode(label string) BlankNode {
	s.mu.Lock()
	s.used[label] = struct{}{}
	s.mu.Unlock()
	return BlankNode{label: label, scope: s.id}
}

// Owns reports whether b was issued by this scope.
func (s *Scope) Owns(b BlankNode) bool { return b.scope == s.id }
