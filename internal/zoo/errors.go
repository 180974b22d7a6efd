package zoo

import "fmt"

// ParseError reports malformed input while decoding a grid file: a header
// that is not two non-negative integers, a body byte that encodes neither
// cell state, or a premature end of input.
type ParseError struct {
	Format string // "text" or "binary"
	Line   int    // 1-based line for the text format, 0 for binary
	Reason string
}

func (e ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("zoo: malformed %s input at line %d: %s", e.Format, e.Line, e.Reason)
	}
	return fmt.Sprintf("zoo: malformed %s input: %s", e.Format, e.Reason)
}
