package core

// Logger is the logging interface the renderer depends on. Host applications
// (or pkg/rlog's zap-backed implementation) satisfy this to receive render
// progress and diagnostic output.
type Logger interface {
	Printf(format string, args ...any)
	Warnf(format string, args ...any)
}
