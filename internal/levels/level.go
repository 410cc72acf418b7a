// Package levels provides block layouts for the board: the built-in set
// embedded in the binary and YAML files loaded from a directory.
// Levels only describe layout; the breakout package turns runes into cells.
package levels

import (
	"fmt"
	"unicode/utf8"
)

// Order tells which grid row the first layout line describes.
type Order string

const (
	// TopDown puts the first line against the top wall.
	TopDown Order = "top-down"
	// BottomUp puts the first line just above the paddle row.
	BottomUp Order = "bottom-up"
)

// Level is one block layout. Rows are stored as written in the source.
type Level struct {
	ID       string
	Name     string
	Order    Order
	Rows     []string
	FilePath string // Empty for built-in levels
}

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validation error codes.
const (
	CodeMissingID = "MISSING_ID"
	CodeBadOrder  = "BAD_ORDER"
	CodeRowCount  = "ROW_COUNT"
	CodeRowWidth  = "ROW_WIDTH"
)

// CheckShape verifies the layout fits a board exactly: blockRows lines of
// columns runes each. Short or long data is rejected rather than truncated.
func (l Level) CheckShape(blockRows, columns int) error {
	if len(l.Rows) != blockRows {
		return ValidationError{
			Code:    CodeRowCount,
			Message: fmt.Sprintf("level %q has %d rows, board needs %d", l.ID, len(l.Rows), blockRows),
		}
	}
	for i, row := range l.Rows {
		if n := utf8.RuneCountInString(row); n != columns {
			return ValidationError{
				Code:    CodeRowWidth,
				Message: fmt.Sprintf("level %q row %d has %d columns, board needs %d", l.ID, i+1, n, columns),
			}
		}
	}
	return nil
}

// TopDownRows returns the layout lines ordered from the top wall downward.
func (l Level) TopDownRows() []string {
	out := make([]string, len(l.Rows))
	if l.Order == BottomUp {
		for i, row := range l.Rows {
			out[len(out)-1-i] = row
		}
		return out
	}
	copy(out, l.Rows)
	return out
}

// BlockCount returns the number of non-empty runes in the layout.
func (l Level) BlockCount() int {
	n := 0
	for _, row := range l.Rows {
		for _, r := range row {
			if r != '.' && r != ' ' {
				n++
			}
		}
	}
	return n
}
