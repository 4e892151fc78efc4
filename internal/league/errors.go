package league

import (
	"errors"
	"fmt"
)

var (
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrInvalidSeasonCode = errors.New("invalid season code")
)

// ParseError points at the sheet row whose cell could not be read.
type ParseError struct {
	Sheet  string
	Row    int // 1-based, as shown in the sheet
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("sheet %q row %d column %s: %v", e.Sheet, e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
