package boardgraph

import (
	"github.com/plan-systems/klog"
)

// Verbosity levels used for pipeline traces.
const (
	vPhase  = 2 // one line per phase
	vDetail = 4 // per-phase counts
)

// Logger receives pipeline traces at klog-style verbosity levels and
// reports invariant failures.
type Logger interface {
	Tracef(level int, format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// klogLogger is the default Logger. Nothing is printed unless the process
// raised klog verbosity (-v).
type klogLogger struct{}

func (klogLogger) Tracef(level int, format string, args ...interface{}) {
	klog.V(klog.Level(level)).Infof(format, args...)
}

func (klogLogger) Errorf(format string, args ...interface{}) {
	klog.Errorf(format, args...)
}
