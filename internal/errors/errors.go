package errors

import "errors"

var ErrNotFound = errors.New("record not found")
var ErrNoAvailability = errors.New("no rooms available")
var ErrDenylisted = errors.New("email belongs to a deleted student")
var ErrUnauthorized = errors.New("user is not authorized")
var ErrForbidden = errors.New("operation is forbidden for user")
