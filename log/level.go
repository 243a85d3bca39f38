package log

import (
	"fmt"
	"strings"
)

// LLevel is the severity of a log message. Writers drop
// messages below their own level.
type LLevel int

const (
	LDebug LLevel = iota
	LInfo
	LWarning
	LError
	LNone
	LDefault = LInfo
)

var levelNames = [...]string{"Debug", "Info", "Warning", "Error", "None"}

func (l LLevel) String() string {
	if l >= LDebug && l <= LNone {
		return levelNames[l]
	}
	return "Unknown"
}

// Initial returns the first letter of the level name, used
// by the short level prefix.
func (l LLevel) Initial() string {
	return l.String()[:1]
}

func (l LLevel) colorcode() string {
	switch l {
	case LDebug:
		return "0;32" // Green
	case LInfo:
		return "1;34" // Light Blue
	case LWarning:
		return "1;33" // Yellow
	case LError:
		return "1;31" // Light Red
	}
	return "1;37" // White
}

func (l LLevel) colorBegin() []byte {
	return []byte("\x1b\x5b" + l.colorcode() + "m")
}

// ParseLevel returns the level with the given name, ignoring
// case. Both full names and initials are accepted.
func ParseLevel(s string) (LLevel, error) {
	for ii, v := range levelNames {
		if strings.EqualFold(s, v) || strings.EqualFold(s, v[:1]) {
			return LLevel(ii), nil
		}
	}
	return LDefault, fmt.Errorf("invalid log level %q", s)
}
