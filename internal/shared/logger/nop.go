package logger

// nopLogger discards everything. Tests use it where log output is noise.
type nopLogger struct{}

// NewNop returns a logger that drops all records.
func NewNop() Interface {
	return nopLogger{}
}

func (nopLogger) Debug(msg string, args ...any)                     {}
func (nopLogger) Info(msg string, args ...any)                      {}
func (nopLogger) Warn(msg string, args ...any)                      {}
func (nopLogger) Error(msg string, args ...any)                     {}
func (nopLogger) Fatal(msg string, args ...any)                     {}
func (nopLogger) With(args ...any) Interface                        { return nopLogger{} }
func (nopLogger) Named(name string) Interface                       { return nopLogger{} }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{})   {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})    {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})    {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{})   {}
func (nopLogger) Fatalw(msg string, keysAndValues ...interface{})   {}
