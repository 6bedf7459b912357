package logger

type nopLogger struct{}

var _ Logger = nopLogger{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) With(...any) Logger   { return nopLogger{} }
func (nopLogger) Level() Level         { return ErrorLevel + 1 }
func (nopLogger) SetLevel(Level)       {}
