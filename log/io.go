package log

import (
	"bytes"
	"io"
	"sync"
)

var (
	colorEnd = []byte("\x1b\x5b00m")
	newLine  = []byte{'\n'}
)

// IOWriter writes log messages to an io.Writer. When the
// underlying writer is a terminal and the logger has the
// Lcolored flag, the level prefix is colored.
type IOWriter struct {
	mutex  sync.Mutex
	out    io.Writer
	level  LLevel
	isatty bool
}

func (w *IOWriter) writeLocked(b []byte) (int, error) {
	n, err := w.out.Write(b)
	if l := len(b); l > 0 && b[l-1] != '\n' && err == nil {
		var n1 int
		n1, err = w.out.Write(newLine)
		n += n1
	}
	return n, err
}

func (w *IOWriter) writeColored(ll LLevel, colored []byte, uncolored []byte) (int, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	var n int
	for _, b := range [][]byte{ll.colorBegin(), colored, colorEnd} {
		nn, err := w.out.Write(b)
		n += nn
		if err != nil {
			return n, err
		}
	}
	nn, err := w.writeLocked(uncolored)
	return n + nn, err
}

func (w *IOWriter) Write(level LLevel, flags int, b []byte) (int, error) {
	if w.isatty && flags&(Lshortlevel|Llevel) != 0 && flags&Lcolored != 0 {
		if idx := bytes.IndexByte(b, ']'); idx > 0 {
			return w.writeColored(level, b[:idx+1], b[idx+1:])
		}
	}
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.writeLocked(b)
}

func (w *IOWriter) Level() LLevel {
	return w.level
}

// NewIOWriter returns a Writer which sends messages with at
// least the given level to out.
func NewIOWriter(out io.Writer, level LLevel) *IOWriter {
	return &IOWriter{out: out, level: level, isatty: isatty(out)}
}
