package model

import "go.uber.org/zap"

// logger reports recoverable ambiguities (for example multiple TextEquiv
// children without an explicit index). It never affects results.
var logger = zap.NewNop()

// SetLogger installs a logger for the package. Passing nil restores the
// default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
