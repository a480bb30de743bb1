package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrEditConflict      = errors.New("edit conflict")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrNoPosterKey       = errors.New("movie has no poster key")
)
