package query

import "errors"

// Sentinel errors for the builder's two failure classes. Every failure is
// detected before any statement state is derived, so a caller that receives
// one of these still holds its previous snapshot unchanged.
var (
	// ErrInvalidArgument reports a structural precondition violation, such as
	// an empty column list for a token relation or a bulk selector list that
	// mixes the star selector with named ones.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState reports an operation that is meaningless in the
	// statement's current state, such as aliasing before any selector exists.
	ErrIllegalState = errors.New("illegal state")
)
