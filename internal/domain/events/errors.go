package events

import "errors"

var ErrNotFound = errors.New("Event not found")
