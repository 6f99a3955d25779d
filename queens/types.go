package queens

import "errors"

// ErrBadSize indicates a board dimension below one.
var ErrBadSize = errors.New("queens: board size must be at least 1")
