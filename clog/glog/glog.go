// Package glog routes clog messages to github.com/golang/glog.
package glog

import (
	"fmt"

	"github.com/cayleygraph/rdfstore/clog"
	"github.com/golang/glog"
)

// Install makes glog the process-wide clog logger.
func Install() { clog.SetLogger(Logger{}) }

var (
	_ clog.Logger    = Logger{}
	_ clog.Verbosity = Logger{}
)

type Logger struct{}

func (Logger) Infof(format string, args ...interface{}) {
	glog.InfoDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Warningf(format string, args ...interface{}) {
	glog.WarningDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Errorf(format string, args ...interface{}) {
	glog.ErrorDepth(3, fmt.Sprintf(format, args...))
}
func (Logger) Fatalf(format string, args ...interface{}) {
	glog.FatalDepth(3, fmt.Sprintf(format, args...))
}

// V defers to glog's own -v flag.
func (Logger) V(level int) bool {
	return bool(glog.V(glog.Level(level)))
}
