package errors

import "errors"

var (
	ErrVoteNotFound    = errors.New("vote not found")
	ErrArtworkNotFound = errors.New("artwork not found")
	ErrVoteConflict    = errors.New("vote conflict")
)
