// Package column decodes columns of numeric text fields, such as the value
// buffers of Arrow-style binary columns or the fields of a split log line,
// with the decswar parsers.
package column

import (
	"bytes"
	"fmt"
)

// Column is a run of fields stored back to back. Field i is
// Data[Offsets[i]:Offsets[i+1]], so a Column of n fields has n+1 offsets.
type Column struct {
	Data    []byte
	Offsets []int
}

// FromFields copies fields into a new Column.
func FromFields(fields [][]byte) Column {
	size := 0
	for _, f := range fields {
		size += len(f)
	}
	c := Column{
		Data:    make([]byte, 0, size),
		Offsets: make([]int, 1, len(fields)+1),
	}
	for _, f := range fields {
		c.Data = append(c.Data, f...)
		c.Offsets = append(c.Offsets, len(c.Data))
	}
	return c
}

// SplitLines builds a Column with one field per line of data. A trailing
// '\r' is dropped from each line, and a final newline does not start an extra
// empty field.
func SplitLines(data []byte) Column {
	c := Column{
		Data:    make([]byte, 0, len(data)),
		Offsets: []int{0},
	}
	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		c.Data = append(c.Data, line...)
		c.Offsets = append(c.Offsets, len(c.Data))
	}
	return c
}

// Len returns the number of fields.
func (c Column) Len() int {
	if len(c.Offsets) == 0 {
		return 0
	}
	return len(c.Offsets) - 1
}

// Field returns field i without copying.
func (c Column) Field(i int) []byte {
	return c.Data[c.Offsets[i]:c.Offsets[i+1]]
}

// Validate checks that the offsets are non-decreasing and inside Data.
func (c Column) Validate() error {
	if len(c.Offsets) == 0 {
		return nil
	}
	if c.Offsets[0] < 0 {
		return fmt.Errorf("column: offset 0 is negative")
	}
	for i := 1; i < len(c.Offsets); i++ {
		if c.Offsets[i] < c.Offsets[i-1] {
			return fmt.Errorf("column: offset %d (%d) is before offset %d (%d)", i, c.Offsets[i], i-1, c.Offsets[i-1])
		}
	}
	if last := c.Offsets[len(c.Offsets)-1]; last > len(c.Data) {
		return fmt.Errorf("column: offset %d is past the end of %d bytes of data", last, len(c.Data))
	}
	return nil
}

// RowError reports the field that failed to decode.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("column: row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
