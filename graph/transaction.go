// Copyright 2015 The Cayley Authors. All rights reserved.
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

// Transaction stores a bunch of Deltas to apply together on a store.
//
// Assertions and retractions of the same statement cancel each other out.
type Transaction struct {
	// Deltas stores the deltas in the right order
	Deltas []Delta
	// deltas indexes the deltas by action and statement key to avoid duplications
	deltas map[string]struct{}
}

// NewTransaction initialize a new transaction.
func NewTransaction() *Transaction {
	return &Transaction{Deltas: make([]Delta, 0, 10), deltas: make(map[string]struct{}, 10)}
}

// AddStatement adds a new statement to the transaction if it is not already present in it.
// If there is a 'remove' delta for that statement, it will remove that delta from
// the transaction instead of actually adding the statement.
func (t *Transaction) AddStatement(s Statement) {
	ad, rd := createDeltas(s)

	if _, adExists := t.deltas[ad.key()]; !adExists {
		if _, rdExists := t.deltas[rd.key()]; rdExists {
			t.deleteDelta(rd)
		} else {
			t.addDelta(ad)
		}
	}
}

// RemoveStatement adds a statement to remove to the transaction.
// The statement will be removed from the store if it is not present in the
// transaction, otherwise it simply remove it from the transaction.
func (t *Transaction) RemoveStatement(s Statement) {
	ad, rd := createDeltas(s)

	if _, adExists := t.deltas[ad.key()]; adExists {
		t.deleteDelta(ad)
	} else {
		if _, rdExists := t.deltas[rd.key()]; !rdExists {
			t.addDelta(rd)
		}
	}
}

// Len returns the number of pending deltas.
func (t *Transaction) Len() int { return len(t.Deltas) }

func createDeltas(s Statement) (ad, rd Delta) {
	ad = Delta{
		Statement: s,
		Action:    Add,
	}
	rd = Delta{
		Statement: s,
		Action:    Delete,
	}
	return
}

func (t *Transaction) addDelta(d Delta) {
	t.Deltas = append(t.Deltas, d)
	t.deltas[d.key()] = struct{}{}
}

func (t *Transaction) deleteDelta(d Delta) {
	k := d.key()
	delete(t.deltas, k)

	for i, id := range t.Deltas {
		if id.key() == k {
			t.Deltas = append(t.Deltas[:i], t.Deltas[i+1:]...)
			break
		}
	}
}
