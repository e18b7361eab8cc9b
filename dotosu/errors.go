package dotosu

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFormat  = errors.New("unknown beatmap format")
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownEvent   = errors.New("unknown event type")
	ErrInvalidColour  = errors.New("colour must be specified as R,G,B with 8-bit components")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrMalformedLine  = errors.New("malformed line")
	ErrNoRuleset      = errors.New("hit objects found before a ruleset was selected")
	ErrVariableLoop   = errors.New("variable expansion did not terminate")
)

// DecodeError carries the offending line back to the caller. It unwraps to
// one of the sentinel errors above.
type DecodeError struct {
	Line    int // 1-based, 0 when unknown
	Section Section
	Key     string
	Value   string
	Err     error
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("line %d [%s]", e.Line, e.Section)
	if e.Key != "" {
		msg += fmt.Sprintf(" %s", e.Key)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	return msg + ": " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// fieldError is raised by handlers, which don't know the line number; the
// router fills that in.
func fieldError(key, value string, err error) error {
	return &DecodeError{Key: key, Value: value, Err: err}
}
