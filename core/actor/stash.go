package actor

import "github.com/codewandler/clstr-msg/core/tuple"

// stash holds skipped messages in arrival order. Owned by the actor loop.
type stash struct {
	msgs []tuple.Message
}

func (s *stash) len() int { return len(s.msgs) }

// push appends msg; if that exceeds max the oldest message is evicted and
// returned.
func (s *stash) push(msg tuple.Message, max int) (tuple.Message, bool) {
	s.msgs = append(s.msgs, msg)
	if len(s.msgs) <= max {
		return tuple.Message{}, false
	}
	oldest := s.msgs[0]
	s.msgs[0] = tuple.Message{}
	s.msgs = s.msgs[1:]
	return oldest, true
}

// take empties the stash and returns its messages.
func (s *stash) take() []tuple.Message {
	out := s.msgs
	s.msgs = nil
	return out
}

func (s *stash) clear() {
	for _, m := range s.take() {
		m.Release()
	}
}
