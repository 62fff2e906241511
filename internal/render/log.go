package render

// Logger is the narrow interface Scene and Frame use to report dirty-
// flag realization at Debug level and scene sync failures at Error
// level (SPEC_FULL.md, "AMBIENT STACK"/Logging). Mirrors ecs.Logger;
// kept as its own type so render never imports the ecs package for
// something this small. Satisfied by *logrus.Logger and by
// internal/engine/log.Logger.
type Logger interface {
	Debugf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Debugf(string, ...interface{}) {}
func (noopLogger) Errorf(string, ...interface{}) {}
