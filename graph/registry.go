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

import (
	"errors"
	"fmt"
	"sort"
)

var ErrStoreNotRegistered = errors.New("store is not registered")

var storeRegistry = make(map[string]StoreRegistration)

type NewStoreFunc func(Options) (Store, error)

type StoreRegistration struct {
	NewFunc NewStoreFunc
}

func RegisterStore(name string, register StoreRegistration) {
	if register.NewFunc == nil {
		panic("NewFunc must not be nil")
	}
	if _, found := storeRegistry[name]; found {
		panic(fmt.Sprintf("already registered store %q", name))
	}
	storeRegistry[name] = register
}

// NewStore creates a store with a registered backend.
func NewStore(name string, opts Options) (Store, error) {
	r, registered := storeRegistry[name]
	if !registered {
		return nil, fmt.Errorf("%w: %q", ErrStoreNotRegistered, name)
	}
	return r.NewFunc(opts)
}

func IsRegistered(name string) bool {
	_, ok := storeRegistry[name]
	return ok
}

func Stores() []string {
	t := make([]string, 0, len(storeRegistry))
	for n := range storeRegistry {
		t = append(t, n)
	}
	sort.Strings(t)
	return t
}
