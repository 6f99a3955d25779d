package wordsearch

import "errors"

// Sentinel errors for wordsearch operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("wordsearch: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("wordsearch: all rows must have the same length")
	// ErrEmptyWord indicates an empty search word.
	ErrEmptyWord = errors.New("wordsearch: word must be non-empty")
	// ErrWordNotFound indicates no adjacent-cell trace spells the word.
	ErrWordNotFound = errors.New("wordsearch: word not found in grid")
)

// Cell is one grid coordinate on a traced path.
type Cell struct {
	Row, Col int
}
