package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotApproved        = errors.New("user not approved")
	ErrNotParent          = errors.New("user is not a parent")
	ErrNoOrganization     = errors.New("user has no organization")
)
