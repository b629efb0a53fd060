package services

import "errors"

// Failure categories returned by the stores. Callers match them with errors.Is.
var (
	ErrInvalidRequest         = errors.New("invalid request")
	ErrDuplicateName          = errors.New("name already exists")
	ErrNotRecognized          = errors.New("dish name not recognized by nutrition lookup")
	ErrUpstreamUnavailable    = errors.New("nutrition lookup unavailable")
	ErrNotFound               = errors.New("not found")
	ErrDishReferenceInvalid   = errors.New("one or more dish references do not exist")
	ErrDietNotFound           = errors.New("diet not found")
	ErrDietServiceUnavailable = errors.New("diet service unavailable")
)
