package rcsync

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// abort terminates the process. Only tests replace it.
var abort = abortProcess

var diag atomic.Pointer[zap.Logger]

func init() {
	SetLogger(nil)
}

// SetLogger sets the logger that receives the diagnostic written just before
// the process is aborted by a lock failure. A nil logger restores the
// default, JSON to stderr.
//
// The logger's fatal hook is replaced: whatever l is configured with, a
// failure still aborts.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.New(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.Lock(os.Stderr),
				zap.ErrorLevel,
			),
			zap.AddStacktrace(zap.ErrorLevel),
		)
	}
	diag.Store(l.WithOptions(zap.WithFatalHook(abortHook{})))
}

type abortHook struct{}

func (abortHook) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {
	abort()
}

// fail escalates a lock failure: it logs op, backend, the error and the
// location of the failing call, then aborts. It does not return.
func fail(op, backend string, err error) {
	location := "unknown"
	if _, file, line, ok := runtime.Caller(1); ok {
		location = filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	diag.Load().Fatal("rcsync: unrecoverable lock failure",
		zap.String("op", op),
		zap.String("backend", backend),
		zap.String("location", location),
		zap.Error(&lockError{Op: op, Backend: backend, Err: err}),
	)
}
