package service

import "errors"

var (
	// ErrDuplicateUser is returned by Signup when the username is taken.
	ErrDuplicateUser = errors.New("user already exists")
	// ErrInvalidCredentials is returned by Login for an unknown username or a
	// wrong password. The two cases are deliberately indistinguishable to the
	// caller so usernames cannot be enumerated.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthenticated is returned when a bearer token fails validation for
	// any reason.
	ErrUnauthenticated = errors.New("invalid credentials")
	// ErrUnknownUser is returned when a valid token names a user that no
	// longer exists.
	ErrUnknownUser = errors.New("user not found")
)
