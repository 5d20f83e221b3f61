// Package console writes timestamped diagnostic lines to a serial port or any other io.Writer.
package console

import (
	"io"
	"strconv"
	"strings"
)

// Timestamper reports the time since device start, in milliseconds. *clock.Clock implements it.
type Timestamper interface {
	Milliseconds() float64
}

type stringer interface {
	String() string
}

// Console prefixes every line with the time since device start, like "[1234.567ms] ...". Lines end
// with CRLF for serial terminals. Write errors are ignored.
type Console struct {
	w  io.Writer
	ts Timestamper
}

// New creates a Console writing to w. ts may be nil, in which case lines are prefixed with "[-]".
func New(w io.Writer, ts Timestamper) *Console {
	return &Console{w: w, ts: ts}
}

// Println writes the operands separated by spaces
func (c *Console) Println(args ...any) {
	_, _ = io.WriteString(c.w, c.prefix()+" "+join(args)+"\r\n")
}

// Raw writes the operands without a timestamp, for output like help text
func (c *Console) Raw(args ...any) {
	_, _ = io.WriteString(c.w, join(args)+"\r\n")
}

func (c *Console) prefix() string {
	if c.ts == nil {
		return "[-]"
	}
	return "[" + strconv.FormatFloat(c.ts.Milliseconds(), 'f', 3, 64) + "ms]"
}

func join(args []any) string {
	var b strings.Builder
	for i, a := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(format(a))
	}
	return b.String()
}

// format handles the operand types println does, plus Stringer and error
func format(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case stringer:
		return v.String()
	case error:
		return v.Error()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case byte:
		return strconv.FormatUint(uint64(v), 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return "<nil>"
	default:
		return "?"
	}
}
