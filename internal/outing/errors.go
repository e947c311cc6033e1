package outing

import "errors"

// ErrParse is returned when a departure or return time is not a valid HH:MM value.
var ErrParse = errors.New("malformed time")

// ErrDeserialize is returned when the stored value is present but is not a
// valid encoding of a record list.
var ErrDeserialize = errors.New("corrupt stored outings")

// ErrSinkUnavailable indicates the export target could not accept the report.
var ErrSinkUnavailable = errors.New("export sink unavailable")
