package tuple

import (
	"encoding/json"
	"fmt"
	"reflect"
	"runtime"
	"strings"

	"github.com/codewandler/clstr-msg/core/reflector"
)

// Message is the type-erased form of a tuple used for queuing, routing and
// transport. It is read-only; recover a typed tuple with As1..As8 to modify it.
// The zero Message has no slots.
type Message struct {
	_ [0]func()
	h *msgHandle
}

func init() {
	reflector.Register[Message]()
}

type msgHandle struct {
	s       storage
	cleanup runtime.Cleanup
}

func releaseStorage(s storage) { s.release() }

func newMessage(s storage) Message {
	s.acquire()
	h := &msgHandle{s: s}
	h.cleanup = runtime.AddCleanup(h, releaseStorage, s)
	return Message{h: h}
}

// NewMessage builds a message from values whose static types are not known,
// e.g. after decoding. Every value must be a legal element type.
func NewMessage(values ...any) (Message, error) {
	if len(values) == 0 {
		return Message{}, ErrEmpty
	}
	data := make(dynSlots, len(values))
	for i, v := range values {
		if err := reflector.DescriptorOf(v).Legal(); err != nil {
			return Message{}, fmt.Errorf("%w: slot %d: %w", ErrIllegalElement, i, err)
		}
		data[i] = shareSlot(v)
	}
	return newMessage(newCell(data)), nil
}

func (m Message) store() storage {
	if m.h == nil {
		return nil
	}
	return m.h.s
}

// IsZero reports whether m carries no storage.
func (m Message) IsZero() bool { return m.store() == nil }

func (m Message) Size() int {
	if s := m.store(); s != nil {
		return s.size()
	}
	return 0
}

// At returns slot i; it panics if i is out of range.
func (m Message) At(i int) any {
	s := m.store()
	if s == nil {
		panic(slotOutOfRange(i, 0))
	}
	return shareSlot(s.at(i))
}

// DescriptorAt returns the runtime type of slot i without static knowledge of
// the message shape.
func (m Message) DescriptorAt(i int) reflector.Descriptor {
	s := m.store()
	if s == nil {
		panic(slotOutOfRange(i, 0))
	}
	return s.descriptorAt(i)
}

// Values returns the slot values in order.
func (m Message) Values() []any {
	out := make([]any, m.Size())
	for i := range out {
		out[i] = m.At(i)
	}
	return out
}

// TypeName describes the message shape, e.g. "(int,string)".
func (m Message) TypeName() string {
	names := make([]string, m.Size())
	for i := range names {
		names[i] = m.DescriptorAt(i).Name
	}
	return "(" + strings.Join(names, ",") + ")"
}

// Share returns another holder of the same storage.
func (m Message) Share() Message {
	s := m.store()
	if s == nil {
		return Message{}
	}
	return newMessage(s)
}

// Release gives up this holder's reference; m reads as the zero Message afterwards.
func (m Message) Release() {
	if m.h == nil || m.h.s == nil {
		return
	}
	m.h.cleanup.Stop()
	m.h.s.release()
	m.h.s = nil
}

// Equal compares two messages slot by slot using the runtime descriptors.
// Slots whose types are not comparable make the messages unequal.
func (m Message) Equal(o Message) bool {
	a, b := m.store(), o.store()
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equalStorage(a, b)
}

func (m Message) EqualAny(o any) bool {
	s := m.store()
	if s == nil {
		return false
	}
	return equalAny(s, o)
}

func (m Message) String() string {
	s := m.store()
	if s == nil {
		return "()"
	}
	return format(s)
}

func (m Message) shareAny() any { return m.Share() }

// messageFrame is the JSON form of a Message. Unlike a typed tuple, a message
// has no static shape, so the slot type names travel with the values.
type messageFrame struct {
	Types  []string          `json:"types"`
	Values []json.RawMessage `json:"values"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	f := messageFrame{
		Types:  make([]string, m.Size()),
		Values: make([]json.RawMessage, m.Size()),
	}
	for i := range m.Size() {
		b, err := json.Marshal(m.At(i))
		if err != nil {
			return nil, fmt.Errorf("encode slot %d: %w", i, err)
		}
		f.Types[i] = m.DescriptorAt(i).Name
		f.Values[i] = b
	}
	return json.Marshal(f)
}

// UnmarshalJSON rebuilds a message written by MarshalJSON. Every slot type
// must be registered with the reflector.
func (m *Message) UnmarshalJSON(b []byte) error {
	var f messageFrame
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	if len(f.Types) != len(f.Values) {
		return fmt.Errorf("%w: %d types for %d values", ErrArity, len(f.Types), len(f.Values))
	}
	m.Release()
	if len(f.Types) == 0 {
		*m = Message{}
		return nil
	}

	values := make([]any, len(f.Types))
	for i, name := range f.Types {
		d, ok := reflector.Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %q in slot %d", ErrUnknownType, name, i)
		}
		ptr := reflect.New(d.Type)
		if err := json.Unmarshal(f.Values[i], ptr.Interface()); err != nil {
			return slotError(i, err)
		}
		values[i] = ptr.Elem().Interface()
	}

	msg, err := NewMessage(values...)
	if err != nil {
		return err
	}
	*m = msg
	return nil
}

func slotAs[T any](m Message, i int) (T, bool) {
	v, ok := m.At(i).(T)
	return v, ok
}
