package errors

import (
	"errors"
	"fmt"
)

var (
	ErrArtworkNotFound      = errors.New("artwork not found")
	ErrDuplicateArtworkCode = errors.New("artwork code already exists")
	ErrPartialOrderSwap     = errors.New("order swap partially applied")
)

// PartialSwapError reports a swap whose first write landed and whose second
// write failed. The caller decides whether to retry the failed half.
type PartialSwapError struct {
	AppliedArtworkID string
	AppliedOrder     int
	FailedArtworkID  string
	FailedOrder      int
	Err              error
}

func (e *PartialSwapError) Error() string {
	return fmt.Sprintf(
		"order swap partially applied: artwork %s moved to %d, artwork %s not moved to %d: %v",
		e.AppliedArtworkID, e.AppliedOrder, e.FailedArtworkID, e.FailedOrder, e.Err,
	)
}

func (e *PartialSwapError) Is(target error) bool {
	return target == ErrPartialOrderSwap
}

func (e *PartialSwapError) Unwrap() error {
	return e.Err
}
