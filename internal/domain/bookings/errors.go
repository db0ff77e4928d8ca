package bookings

import "errors"

var ErrNotFound = errors.New("Booking not found")
