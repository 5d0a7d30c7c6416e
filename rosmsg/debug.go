package rosmsg

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(defaultLogger())
}

// defaultLogger builds the package-level logger.
// Set ROSMSG_LOG=DEBUG|INFO|WARN|ERROR to control verbosity at runtime.
// Default is WARN so library users see nothing unless something breaks.
func defaultLogger() *zap.Logger {
	level := zapcore.WarnLevel
	if v := os.Getenv("ROSMSG_LOG"); v != "" {
		_ = level.UnmarshalText([]byte(v))
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	core := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level)
	return zap.New(core).Named("rosmsg")
}

// SetLogger replaces the package-level logger. A nil logger silences the package.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l.Named("rosmsg"))
}

func log() *zap.Logger {
	return logger.Load()
}

// safeCall runs fn and recovers any panic, returning it as a TypeMismatch error.
// Reflection-driven struct binding goes through here so a malformed Go type
// surfaces as an error instead of crashing the caller.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log().Error("panic in struct binding",
				zap.String("recover", fmt.Sprintf("%v", r)),
				zap.ByteString("stack", debug.Stack()))
			err = errorf(ErrorCodeTypeMismatch, "panic in struct binding: %v", r)
		}
	}()
	return fn()
}
