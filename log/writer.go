package log

// Writer is the interface implemented by log destinations.
// The flags are the ones set on the Logger emitting the
// message.
type Writer interface {
	Write(LLevel, int, []byte) (int, error)
	Level() LLevel
}
