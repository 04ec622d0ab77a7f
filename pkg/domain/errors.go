package domain

import "errors"

var (
	// ErrEmptyHistory is returned when a user has no recorded interactions
	ErrEmptyHistory = errors.New("empty interaction history")
	// ErrNoVocabulary is returned when descriptions reduce to empty feature vectors
	ErrNoVocabulary = errors.New("empty vocabulary, descriptions contain only stop words")
	// ErrInvalidUserReference is returned when a user id is required but missing
	ErrInvalidUserReference = errors.New("user id is required")

	// ErrUserExists is returned on signup with a taken username or email
	ErrUserExists = errors.New("username or email already exists")
	// ErrInvalidCredentials is returned when username or password doesn't match
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrNotFound is returned when a record doesn't exist
	ErrNotFound = errors.New("not found")
)
