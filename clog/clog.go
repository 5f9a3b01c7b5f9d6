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

// Package clog provides the logging interface used across rdfstore packages.
//
// Libraries accept a Logger explicitly; the package-level functions log to a
// process-wide logger and are meant for commands and servers.
package clog

import (
	"log"
	"sync"
	"sync/atomic"
)

// Logger is the clog logging interface.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// Verbosity is implemented by loggers that manage their own verbosity level.
type Verbosity interface {
	V(level int) bool
}

var (
	mu        sync.RWMutex
	logger    Logger = stdlog{}
	verbosity int32
)

// SetLogger sets the process-wide logger. A nil logger discards everything.
func SetLogger(l Logger) {
	if l == nil {
		l = Discard
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Default returns the process-wide logger.
func Default() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// V returns whether the current clog verbosity is above the specified level.
func V(level int) bool {
	if v, ok := Default().(Verbosity); ok {
		return v.V(level)
	}
	return int(atomic.LoadInt32(&verbosity)) >= level
}

// SetV sets the clog verbosity level.
func SetV(level int) { atomic.StoreInt32(&verbosity, int32(level)) }

// Infof logs information level messages.
func Infof(format string, args ...interface{}) { Default().Infof(format, args...) }

// Warningf logs warning level messages.
func Warningf(format string, args ...interface{}) { Default().Warningf(format, args...) }

// Errorf logs error level messages.
func Errorf(format string, args ...interface{}) { Default().Errorf(format, args...) }

// Fatalf logs fatal messages and terminates the program.
func Fatalf(format string, args ...interface{}) { Default().Fatalf(format, args...) }

// Discard drops all messages except fatal ones, which still exit.
var Discard Logger = discard{}

type discard struct{}

func (discard) Infof(string, ...interface{})    {}
func (discard) Warningf(string, ...interface{}) {}
func (discard) Errorf(string, ...interface{})   {}
func (discard) Fatalf(format string, args ...interface{}) {
	log.Fatalf("FATAL: "+format, args...)
}

// stdlog wraps the standard library logger.
type stdlog struct{}

func (stdlog) Infof(format string, args ...interface{})    { log.Printf(format, args...) }
func (stdlog) Warningf(format string, args ...interface{}) { log.Printf("WARN: "+format, args...) }
func (stdlog) Errorf(format string, args ...interface{})   { log.Printf("ERROR: "+format, args...) }
func (stdlog) Fatalf(format string, args ...interface{})   { log.Fatalf("FATAL: "+format, args...) }
