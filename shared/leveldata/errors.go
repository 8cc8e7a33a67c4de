package leveldata

import (
	"errors"
	"fmt"
)

// ErrEmptyMap is returned for maps with no rows or zero-width rows.
var ErrEmptyMap = errors.New("empty map")

// MapShapeError reports a row whose width differs from the first row.
type MapShapeError struct {
	Row  int
	Want int
	Got  int
}

func (e *MapShapeError) Error() string {
	return fmt.Sprintf("invalid map shape: row %d has %d tiles, want %d", e.Row, e.Got, e.Want)
}

// MapSymbolError reports a character outside the symbol table.
type MapSymbolError struct {
	Symbol rune
	X, Y   int
}

func (e *MapSymbolError) Error() string {
	return fmt.Sprintf("invalid map symbol %q at (%d, %d)", e.Symbol, e.X, e.Y)
}

// LandmarkError reports a landmark symbol present the wrong number of times.
type LandmarkError struct {
	Symbol rune
	Count  int
}

func (e *LandmarkError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("map has no %q landmark", e.Symbol)
	}
	return fmt.Sprintf("map has %d %q landmarks, want at most one", e.Count, e.Symbol)
}
