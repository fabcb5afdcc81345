package poll

import "errors"

var (
	ErrEmptyQuestion     = errors.New("poll question is empty")
	ErrEmptyAnswer       = errors.New("poll answer is empty")
	ErrTooFewOptions     = errors.New("poll has too few options")
	ErrTooManyOptions    = errors.New("poll has too many options")
	ErrDuplicateOptionID = errors.New("duplicate poll option id")
	ErrUnknownStatus     = errors.New("unknown delivery status")
	ErrUnknownDisclosure = errors.New("unknown disclosure mode")
)
