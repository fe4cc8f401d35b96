package object

import "go.uber.org/zap"

// logger is the runtime's single debug-log hook (spec.md §6: "a debug-log
// hook for cycle-detection notices. No other I/O."). It defaults to a no-op
// logger so importing this package never produces unsolicited output;
// SetLogger lets a host process or a test observe cycle/re-entry notices. A
// Runtime's own logger (runtime.go) does not receive them.
var logger = zap.NewNop()

// SetLogger installs the package-wide debug logger. Passing nil restores the
// no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
