package sellang

import (
	"errors"
	"fmt"
	"strings"
)

// TokenizeError is a lexical failure anchored at a byte offset.
type TokenizeError struct {
	Message string
	Pos     int
}

func (e *TokenizeError) Error() string {
	return e.Message
}

func (e *TokenizeError) Offset() int {
	return e.Pos
}

// ParseError is a grammatical failure. Pos is copied from the anchoring token
// at the moment of failure, so the error outlives the token sequence.
type ParseError struct {
	Message string
	Pos     int
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Offset() int {
	return e.Pos
}

// OffsetError is any error that can be anchored to a byte offset in the
// source, for diagnostic rendering.
type OffsetError interface {
	error
	Offset() int
}

// FormatError renders a caret diagnostic for a tokenize or parse error:
//
//	Error at <line>:<column>: <message>
//	 <line> | <full source line text>
//	 <line> | <column-1 spaces>~
//
// The second return value is false for errors that carry no offset.
func FormatError(source *Source, err error) (string, bool) {
	var oe OffsetError
	if !errors.As(err, &oe) {
		return "", false
	}

	pos := source.Resolve(oe.Offset())

	var b strings.Builder
	fmt.Fprintf(&b, "Error at %d:%d: %s\n", pos.Line, pos.Column, oe.Error())
	fmt.Fprintf(&b, " %d | %s\n", pos.Line, pos.LineText)
	fmt.Fprintf(&b, " %d | %s~\n", pos.Line, strings.Repeat(" ", pos.Column-1))
	return b.String(), true
}

// IsIncomplete reports whether err indicates input that stopped in the middle
// of a token or form, so that an interactive reader can keep prompting for
// more lines instead of failing.
func IsIncomplete(err error) bool {
	var te *TokenizeError
	if errors.As(err, &te) {
		return te.Message == "Unterminated string"
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return strings.HasPrefix(pe.Message, "Unexpected end of")
	}
	return false
}
