package gwt

import (
	"fmt"
)

var ErrMalformedHeader = fmt.Errorf("malformed call header")
var ErrIndexOutOfRange = fmt.Errorf("string table index out of range")
var ErrUnresolvedShape = fmt.Errorf("unresolved type shape")
var ErrOracle = fmt.Errorf("invalid oracle answer")
var ErrTruncated = fmt.Errorf("call string ended early")
var ErrBadValue = fmt.Errorf("bad scalar value")
var ErrUnexpectedToken = fmt.Errorf("unexpected token")

//	DecodeError locates a fatal decoding failure. Pos is the index of the
//	offending token in the pipe-split call string, or -1 when the failure
//	is not tied to a single token.
type DecodeError struct {
	Pos int
	Tag string
	Err error
}

func (e *DecodeError) Error() string {
	msg := e.Err.Error()
	if e.Tag != "" {
		msg += fmt.Sprintf(" (type %s)", e.Tag)
	}
	if e.Pos >= 0 {
		msg += fmt.Sprintf(" at token %d", e.Pos)
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func decodeErr(pos int, tag string, err error) *DecodeError {
	return &DecodeError{Pos: pos, Tag: tag, Err: err}
}
