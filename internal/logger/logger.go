// Package logger provides the async, level-gated, object-tagged logging
// facility every component in this module logs through instead of calling
// logrus directly. It replaces the trace-macro style of the original C
// decoder (compile-time TRACE_INFO/TRACE_ERROR) with a single shared,
// package-level sink so the demuxer, filter and dispatcher all log the
// same shape.
package logger

import (
	"bytes"
	"fmt"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"
)

type stringer interface {
	String() string
}

type logPair struct {
	logFn func(...any)
	obj   string
	msg   string
}

const (
	logChanSize  = 1000
	objTagWidth  = 20
	msgFieldSize = 100
)

var (
	logCh     = make(chan logPair, logChanSize)
	drainDone = make(chan struct{})
	initOnce  sync.Once
)

func objToString(obj any) (objStr string) {
	switch {
	case obj == nil:
		objStr = "NIL"
	default:
		if s, ok := obj.(stringer); ok {
			objStr = s.String()
		} else if s, ok := obj.(string); ok {
			objStr = s
		} else {
			objStr = reflect.TypeOf(obj).Name()
		}
	}
	return
}

// Init starts the background drain goroutine and configures logrus's
// formatter. Call once, from main, before any component logs. Unlike a
// long-running server, this module's CLI exits the moment Extract
// returns — callers must pair Init with a deferred Flush, or buffered
// log lines racing the process exit are silently lost.
func Init(lvl logrus.Level) {
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	initOnce.Do(func() {
		go func() {
			defer close(drainDone)
			sb := new(bytes.Buffer)
			for lp := range logCh {
				if len(lp.obj) > objTagWidth {
					lp.obj = lp.obj[:objTagWidth]
				}
				sb.WriteString(fmt.Sprintf("|%20s|%-100s", lp.obj, lp.msg))
				lp.logFn(sb.String())
				sb.Reset()
			}
		}()
	})
}

// Flush closes the log channel and blocks until every buffered line has
// drained through logrus. Call once, after the last log call a run will
// ever make, before the process exits.
func Flush() {
	close(logCh)
	<-drainDone
}

func Trace(object any, message string) {
	if logrus.GetLevel() < logrus.TraceLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Trace, obj: objToString(object), msg: message}
}

func Tracef(object any, message string, args ...any) {
	if logrus.GetLevel() < logrus.TraceLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Trace, obj: objToString(object), msg: fmt.Sprintf(message, args...)}
}

func Debug(object any, message string) {
	if logrus.GetLevel() < logrus.DebugLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Debug, obj: objToString(object), msg: message}
}

func Debugf(object any, message string, args ...any) {
	if logrus.GetLevel() < logrus.DebugLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Debug, obj: objToString(object), msg: fmt.Sprintf(message, args...)}
}

func Info(object any, message string) {
	if logrus.GetLevel() < logrus.InfoLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Info, obj: objToString(object), msg: message}
}

func Infof(object any, message string, args ...any) {
	if logrus.GetLevel() < logrus.InfoLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Info, obj: objToString(object), msg: fmt.Sprintf(message, args...)}
}

func Warning(object any, message string) {
	if logrus.GetLevel() < logrus.WarnLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Warning, obj: objToString(object), msg: message}
}

func Warningf(object any, message string, args ...any) {
	if logrus.GetLevel() < logrus.WarnLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Warning, obj: objToString(object), msg: fmt.Sprintf(message, args...)}
}

func Error(object any, message string) {
	if logrus.GetLevel() < logrus.ErrorLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Error, obj: objToString(object), msg: message}
}

func Errorf(object any, message string, args ...any) {
	if logrus.GetLevel() < logrus.ErrorLevel {
		return
	}
	logCh <- logPair{logFn: logrus.Error, obj: objToString(object), msg: fmt.Sprintf(message, args...)}
}

func Fatal(object any, message string) {
	objStr := objToString(object)
	if len(objStr) > objTagWidth {
		objStr = objStr[:objTagWidth]
	}
	logrus.Fatalf("|%20s|%-100s", objStr, message)
}

func Fatalf(object any, message string, args ...any) {
	objStr := objToString(object)
	if len(objStr) > objTagWidth {
		objStr = objStr[:objTagWidth]
	}
	logrus.Fatalf("|%20s|%-100s", objStr, fmt.Sprintf(message, args...))
}
