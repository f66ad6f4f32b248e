package domain

import (
	"bufio"
	"io"
)

// Accumulator is the single output sink shared by every level of one
// flatten. Lines appear in the order they are appended.
type Accumulator struct {
	w     *bufio.Writer
	lines int
}

// NewAccumulator wraps w. Call Flush when the flatten ends, whatever the
// outcome.
func NewAccumulator(w io.Writer) *Accumulator {
	return &Accumulator{w: bufio.NewWriter(w)}
}

// AppendLine writes line followed by a single '\n'.
func (a *Accumulator) AppendLine(line string) error {
	if _, err := a.w.WriteString(line); err != nil {
		return err
	}

	if err := a.w.WriteByte('\n'); err != nil {
		return err
	}

	a.lines++

	return nil
}

// Lines returns how many lines have been appended.
func (a *Accumulator) Lines() int {
	return a.lines
}

// Flush pushes buffered lines to the underlying writer.
func (a *Accumulator) Flush() error {
	return a.w.Flush()
}
