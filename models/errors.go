package models

import "errors"

// Error kinds reported by the session. The text of each error is the message
// shown to the user.
var (
	ErrUsernameTaken = errors.New("Username already taken.")
	ErrUnknownUser   = errors.New("No such user.")
	ErrUserNotFound  = errors.New("User not found.")
	ErrNotLoggedIn   = errors.New("Login first.")
	ErrPostNotFound  = errors.New("Post not found.")
	ErrCannotFollow  = errors.New("Cannot follow yourself or already following.")
	ErrNotFollowing  = errors.New("You are not following this user.")

	// ErrMalformedArgument is only matched against; the user sees the
	// UsageError that wraps the specific usage line.
	ErrMalformedArgument = errors.New("malformed argument")
)

// UsageError is a malformed command argument along with the usage line to
// show for it. It matches ErrMalformedArgument under errors.Is.
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "Usage: " + e.Usage
}

func (e *UsageError) Is(target error) bool {
	return target == ErrMalformedArgument
}
