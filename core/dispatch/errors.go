package dispatch

import "errors"

var ErrUnknownOutcome = errors.New("unknown dispatch outcome")
