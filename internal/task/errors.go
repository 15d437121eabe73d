package task

import (
	"errors"
	"fmt"
)

type Kind int

const (
	IO Kind = iota + 1
	Transport
	ParseURL
	InvalidURL
	Config
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "I/O"
	case Transport:
		return "transport"
	case ParseURL:
		return "URL parse"
	case InvalidURL:
		return "invalid URL"
	case Config:
		return "config"
	default:
		return "unknown"
	}
}

// ErrNoContentLength is returned by Probe when the server response carries no
// usable Content-Length header.
var ErrNoContentLength = errors.New("server did not provide a valid Content-Length header")

// Error tags a failure with its kind. Err is the underlying cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether any error in err's chain is a task error of kind k.
func IsKind(err error, k Kind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == k
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
