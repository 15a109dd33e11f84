package engine

import "fmt"

// NotFoundError indicates a directory lookup found no matching
// profile, party or habit. It is user-visible and mutates nothing.
type NotFoundError struct {
	Kind string
	Code string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("no %s found for %q", e.Kind, e.Code)
}

// DuplicateError indicates the target is already present (a friend or
// party added twice, or the user adding themselves). It is raised
// before any directory call is made.
type DuplicateError struct {
	Kind string
	Code string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("%s %q is already in your garden", e.Kind, e.Code)
}

// ErrNotOnboarded is returned by service operations that need a user.
var ErrNotOnboarded = fmt.Errorf("no user yet; run onboarding first")
