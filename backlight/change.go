package backlight

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ChangeKind says how a Change's percentage is interpreted.
type ChangeKind int

const (
	// Absolute sets the brightness to Percent.
	Absolute ChangeKind = iota
	// Relative moves the brightness by Percent (which may be negative).
	Relative
)

// A Change is a brightness adjustment given on the command line.
type Change struct {
	Kind    ChangeKind
	Percent float64
}

func (c Change) String() string {
	if c.Kind == Relative {
		return fmt.Sprintf("%+g%%", c.Percent)
	}
	return fmt.Sprintf("%g%%", c.Percent)
}

// ParseChange parses a change token. A leading '+' or '-' makes it
// relative; anything else is an absolute percentage. There is no way to write
// a negative absolute value: "-5" always means "5 percent darker".
func ParseChange(s string) (Change, error) {
	switch {
	case strings.HasPrefix(s, "+"):
		p, err := parsePercent(s, s[1:])
		return Change{Kind: Relative, Percent: p}, err
	case strings.HasPrefix(s, "-"):
		p, err := parsePercent(s, s[1:])
		return Change{Kind: Relative, Percent: -p}, err
	default:
		p, err := parsePercent(s, s)
		return Change{Kind: Absolute, Percent: p}, err
	}
}

func parsePercent(token, num string) (float64, error) {
	p, err := strconv.ParseFloat(num, 64)
	// Out-of-range values come back as ±Inf, which clamps like any huge change.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &Error{Kind: KindParse, Err: errors.Wrapf(err, "bad change %q", token)}
	}
	if math.IsNaN(p) {
		return 0, &Error{Kind: KindParse, Err: errors.Errorf("bad change %q: not a number", token)}
	}
	return p, nil
}

// LooksLikeChange reports whether s should be read as a change rather than
// as a device name.
func LooksLikeChange(s string) bool {
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}
