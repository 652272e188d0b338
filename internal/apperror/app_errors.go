package apperror

import "errors"

var (
	ErrUnknownPlayer   = errors.New("unknown player")
	ErrInvalidTemplate = errors.New("invalid template character")
	ErrRaggedTemplate  = errors.New("template rows have different widths")
	ErrInvalidMove     = errors.New("invalid move")
	ErrEmptyScript     = errors.New("script has no board and no moves")
	ErrAreaTooLarge    = errors.New("area too large to lay out cell by cell")
)
