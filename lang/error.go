package lang

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Predefined errors (sentinel values).
var (
	ErrParse               = NewError("syntax error")
	ErrDuplicateDefinition = NewError("duplicate definition")
	ErrReadInput           = NewError("failed to read input")
	ErrInvalidStrategy     = NewError("invalid reduction strategy")
)

// Error represents an error with optional structured logging attributes
// and an optional source position. It implements both error and
// slog.LogValuer.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
	pos   Position
	atPos bool
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	msg := e.msg
	if e.atPos {
		msg += " at line " + strconv.Itoa(e.pos.Line) +
			", column " + strconv.Itoa(e.pos.Column)
	}

	if msg != "" {
		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is a sentinel this error was derived from.
// Derived errors (via With, Wrap, WithPosition) share the sentinel's
// message, so comparison is by message rather than pointer identity.
func (e *Error) Is(target error) bool {
	te := &Error{}
	if !errors.As(target, &te) {
		return false
	}

	return e.msg == te.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+4)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	if e.atPos {
		attrs = append(attrs,
			slog.Int("line", e.pos.Line),
			slog.Int("column", e.pos.Column),
		)
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
		pos:   e.pos,
		atPos: e.atPos,
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
		pos:   e.pos,
		atPos: e.atPos,
	}
}

// WithPosition attaches a source position to the error.
func (e *Error) WithPosition(pos Position) *Error {
	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: e.attrs,
		pos:   pos,
		atPos: true,
	}
}

// Position returns the attached source position and whether one is set.
func (e *Error) Position() (Position, bool) { return e.pos, e.atPos }

// SourceError decorates a parse error with the source text it came from,
// so its message can include the offending line and a caret marker.
type SourceError struct {
	Err    error
	Source string
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	msg := e.Err.Error()

	le := &Error{}
	if !errors.As(e.Err, &le) {
		return msg
	}

	pos, ok := le.Position()
	if !ok || e.Source == "" {
		return msg
	}

	return msg + "\n" + snippet(e.Source, pos)
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *SourceError) Unwrap() error { return e.Err }

// snippet renders the offending source line with a caret marker under
// the error column.
func snippet(source string, pos Position) string {
	lines := strings.Split(source, "\n")
	if pos.Line < 1 || pos.Line > len(lines) {
		return ""
	}

	line := lines[pos.Line-1]
	lineNum := strconv.Itoa(pos.Line)

	var buf strings.Builder

	buf.WriteString("  ")
	buf.WriteString(lineNum)
	buf.WriteString(" | ")
	buf.WriteString(line)
	buf.WriteByte('\n')

	// +5 accounts for: 2 leading spaces + " | " (3 chars)
	padding := len(lineNum) + 5
	if pos.Column > 0 {
		padding += pos.Column - 1
	}

	buf.WriteString(strings.Repeat(" ", padding))
	buf.WriteByte('^')

	return buf.String()
}
