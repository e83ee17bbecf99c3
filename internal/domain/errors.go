package domain

import "errors"

var (
	ErrMemberExists    = errors.New("member already exists")
	ErrMemberNotFound  = errors.New("member not found")
	ErrNoActiveSession = errors.New("no member logged in")
	ErrBookUnavailable = errors.New("book not available")
	ErrBookNotHeld     = errors.New("book not held by member")
)
