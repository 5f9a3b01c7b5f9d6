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

package clog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	lines []string
}

func (r *recorder) Infof(format string, args ...interface{}) {
	r.lines = append(r.lines, "I "+fmt.Sprintf(format, args...))
}
func (r *recorder) Warningf(format string, args ...interface{}) {
	r.lines = append(r.lines, "W "+fmt.Sprintf(format, args...))
}
func (r *recorder) Errorf(format string, args ...interface{}) {
	r.lines = append(r.lines, "E "+fmt.Sprintf(format, args...))
}
func (r *recorder) Fatalf(format string, args ...interface{}) {
	r.lines = append(r.lines, "F "+fmt.Sprintf(format, args...))
}

type verbose struct {
	recorder
	level int
}

func (v *verbose) V(level int) bool { return level <= v.level }

func TestSetLogger(t *testing.T) {
	prev := Default()
	defer SetLogger(prev)

	r := &recorder{}
	SetLogger(r)
	Infof("loaded %d", 3)
	Warningf("slow")
	Errorf("failed: %v", "x")
	require.Equal(t, []string{"I loaded 3", "W slow", "E failed: x"}, r.lines)

	SetLogger(nil)
	require.Equal(t, Discard, Default())
	Infof("dropped")
}

func TestVerbosity(t *testing.T) {
	prev := Default()
	defer SetLogger(prev)
	defer SetV(0)

	SetLogger(&recorder{})
	require.False(t, V(1))
	SetV(2)
	require.True(t, V(1))
	require.False(t, V(3))

	SetLogger(&verbose{level: 5})
	require.True(t, V(4))
}
