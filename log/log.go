// Package log implements a leveled logger with pluggable
// writers.
//
// The package level functions log to Std, which writes to
// os.Stderr. Converters accept any Interface, so callers can
// route conversion traces elsewhere.
package log

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

const (
	// Llevel prefixes messages with the full level name.
	Llevel = 1 << iota
	// Lshortlevel prefixes messages with the level initial.
	Lshortlevel
	// Ldate adds the local date to each message.
	Ldate
	// Ltime adds the local time to each message.
	Ltime
	// Lcolored colors the level prefix on terminals.
	Lcolored
	LstdFlags = Lshortlevel | Ldate | Ltime | Lcolored
)

// Logger dispatches messages to its writers. A message is
// emitted only when its level is at least the Logger's level
// and the writer's level.
type Logger struct {
	mutex   sync.RWMutex
	level   LLevel
	flags   int
	writers []Writer
}

var (
	// Std is the default logger, used by the package level
	// functions.
	Std = New(NewIOWriter(os.Stderr, LDebug), LDefault)
)

// New returns a Logger with the given writer and level,
// using LstdFlags. w might be nil.
func New(w Writer, level LLevel) *Logger {
	l := &Logger{level: level, flags: LstdFlags}
	if w != nil {
		l.writers = append(l.writers, w)
	}
	return l
}

func (l *Logger) Level() LLevel {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.level
}

func (l *Logger) SetLevel(level LLevel) {
	l.mutex.Lock()
	l.level = level
	l.mutex.Unlock()
}

func (l *Logger) Flags() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.flags
}

func (l *Logger) SetFlags(flags int) {
	l.mutex.Lock()
	l.flags = flags
	l.mutex.Unlock()
}

func (l *Logger) AddWriter(w Writer) {
	l.mutex.Lock()
	l.writers = append(l.writers, w)
	l.mutex.Unlock()
}

// Writers returns a copy of the logger writers.
func (l *Logger) Writers() []Writer {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return append([]Writer(nil), l.writers...)
}

func (l *Logger) header(buf *bytes.Buffer, level LLevel, flags int) {
	switch {
	case flags&Llevel != 0:
		fmt.Fprintf(buf, "[%s] ", level.String())
	case flags&Lshortlevel != 0:
		fmt.Fprintf(buf, "[%s] ", level.Initial())
	}
	if flags&(Ldate|Ltime) != 0 {
		now := time.Now()
		if flags&Ldate != 0 {
			buf.WriteString(now.Format("2006/01/02 "))
		}
		if flags&Ltime != 0 {
			buf.WriteString(now.Format("15:04:05 "))
		}
	}
}

func (l *Logger) output(level LLevel, s string) {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	if level < l.level || len(l.writers) == 0 {
		return
	}
	var buf bytes.Buffer
	l.header(&buf, level, l.flags)
	buf.WriteString(s)
	b := buf.Bytes()
	for _, w := range l.writers {
		if level >= w.Level() {
			w.Write(level, l.flags, b)
		}
	}
}

func (l *Logger) Debug(args ...interface{}) {
	l.output(LDebug, fmt.Sprint(args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.output(LDebug, fmt.Sprintf(format, args...))
}

func (l *Logger) Info(args ...interface{}) {
	l.output(LInfo, fmt.Sprint(args...))
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.output(LInfo, fmt.Sprintf(format, args...))
}

func (l *Logger) Warning(args ...interface{}) {
	l.output(LWarning, fmt.Sprint(args...))
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	l.output(LWarning, fmt.Sprintf(format, args...))
}

func (l *Logger) Error(args ...interface{}) {
	l.output(LError, fmt.Sprint(args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.output(LError, fmt.Sprintf(format, args...))
}

// SetLevel sets the level of Std.
func SetLevel(level LLevel) {
	Std.SetLevel(level)
}

func Debug(args ...interface{}) {
	Std.Debug(args...)
}

func Debugf(format string, args ...interface{}) {
	Std.Debugf(format, args...)
}

func Info(args ...interface{}) {
	Std.Info(args...)
}

func Infof(format string, args ...interface{}) {
	Std.Infof(format, args...)
}

func Warning(args ...interface{}) {
	Std.Warning(args...)
}

func Warningf(format string, args ...interface{}) {
	Std.Warningf(format, args...)
}

func Error(args ...interface{}) {
	Std.Error(args...)
}

func Errorf(format string, args ...interface{}) {
	Std.Errorf(format, args...)
}
