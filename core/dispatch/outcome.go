package dispatch

import (
	"fmt"
)

// Outcome is the result of presenting one message to a handler.
type Outcome uint8

const (
	// Success means the message was handled; the caller removes it and does
	// not present it to any other handler.
	Success Outcome = iota
	// Skipped means no handler in the candidate set took the message. The
	// caller tries the next candidate or keeps the message for a later attempt.
	Skipped
	// Dropped means the message must be discarded without retry.
	Dropped
)

var outcomeNames = [...]string{
	Success: "im_success",
	Skipped: "im_skipped",
	Dropped: "im_dropped",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// ParseOutcome is the inverse of [Outcome.String].
func ParseOutcome(s string) (Outcome, error) {
	for i, name := range outcomeNames {
		if name == s {
			return Outcome(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOutcome, s)
}

func (o Outcome) MarshalText() ([]byte, error) {
	if int(o) >= len(outcomeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOutcome, uint8(o))
	}
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	v, err := ParseOutcome(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
