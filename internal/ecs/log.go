package ecs

// Logger is the narrow interface the World and its schedule graphs use
// to report schedule activity at Debug level and fatal configuration
// errors at Error level immediately before panicking (SPEC_FULL.md,
// "AMBIENT STACK"/Logging). Satisfied by *logrus.Logger and by this
// module's internal/engine/log.Logger, which embeds one — ecs never
// imports logrus directly, so a World with no logger wired still works
// against the zero-value noopLogger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Errorf(string, ...interface{}) {}
