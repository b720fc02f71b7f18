package backlight

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a backlight error.
type Kind int

const (
	// KindIO means a sysfs file or directory was missing, unreadable or
	// unwritable.
	KindIO Kind = iota + 1
	// KindParse means a number was malformed where one was required.
	KindParse
	// KindStructural means a device path has no usable name.
	KindStructural
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindParse:
		return "parse"
	case KindStructural:
		return "structural"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	// ErrNoName is wrapped by KindStructural errors for paths like "/" or ".".
	ErrNoName = errors.New("no device name")
	// ErrZeroMax is wrapped by the KindParse error for a device reporting a
	// max_brightness of 0.
	ErrZeroMax = errors.New("max_brightness is 0")
)

// Error is the error type returned by this package. Path is the file or
// directory involved (it may be empty for change tokens).
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether any error in err's chain is an *Error of kind k.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func ioError(path string, err error, msg string) error {
	return &Error{Kind: KindIO, Path: path, Err: errors.Wrap(err, msg)}
}

func parseError(path string, err error, msg string) error {
	return &Error{Kind: KindParse, Path: path, Err: errors.Wrap(err, msg)}
}
