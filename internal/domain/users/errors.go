package users

import "errors"

// Error texts are part of the API contract; they surface verbatim as
// GraphQL error messages.
var (
	ErrNotFound      = errors.New("User not found")
	ErrAlreadyExists = errors.New("User already exists")
	ErrWrongPassword = errors.New("Incorrect Password")
	ErrDoesNotExist  = errors.New("User doesn't exist")
)
