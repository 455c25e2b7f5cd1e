package kutil

import "go.uber.org/zap"

// NopLogger returns a *zap.SugaredLogger that discards everything, used as
// the default when a core constructor is not given one. The assessment
// session (StartSessionWithLogger) accepts its logger this way, the only
// core code that logs, instead of reaching for a package-level global
// (spec §5: "No global mutable state").
func NopLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
