// Package codec turns messages into bytes and back. The wire form is a JSON
// envelope naming every slot type, so a receiver can rebuild the message as
// long as it registered those types with the reflector:
//
//	{"id":"V1StGXR8_Z5jdHi6B-myT","types":["int","string"],"values":[42,"hi"]}
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/clstr-msg/core/reflector"
	"github.com/codewandler/clstr-msg/core/tuple"
)

var (
	// ErrUnknownType is shared with package tuple so that an unregistered
	// type inside a nested message matches too.
	ErrUnknownType = tuple.ErrUnknownType
	ErrMalformed   = errors.New("malformed envelope")
)

type Codec interface {
	Encode(msg tuple.Message) ([]byte, error)
	Decode(b []byte) (Envelope, error)
}

// Envelope is a decoded message together with the id it travelled under.
type Envelope struct {
	ID  string
	Msg tuple.Message
}

type frame struct {
	ID     string            `json:"id"`
	Types  []string          `json:"types"`
	Values []json.RawMessage `json:"values"`
}

type JSONCodec struct{}

var _ Codec = JSONCodec{}

func (c JSONCodec) Encode(msg tuple.Message) ([]byte, error) {
	return c.EncodeID(gonanoid.Must(), msg)
}

// EncodeID encodes msg under a caller-chosen id.
func (JSONCodec) EncodeID(id string, msg tuple.Message) ([]byte, error) {
	if msg.Size() == 0 {
		return nil, fmt.Errorf("encode: %w", tuple.ErrEmpty)
	}
	f := frame{
		ID:     id,
		Types:  make([]string, msg.Size()),
		Values: make([]json.RawMessage, msg.Size()),
	}
	for i := range msg.Size() {
		b, err := json.Marshal(msg.At(i))
		if err != nil {
			return nil, fmt.Errorf("encode slot %d: %w", i, err)
		}
		f.Types[i] = msg.DescriptorAt(i).Name
		f.Values[i] = b
	}
	return json.Marshal(f)
}

func (JSONCodec) Decode(b []byte) (Envelope, error) {
	var f frame
	if err := json.Unmarshal(b, &f); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(f.Types) != len(f.Values) {
		return Envelope{}, fmt.Errorf("%w: %d types for %d values", ErrMalformed, len(f.Types), len(f.Values))
	}

	values := make([]any, len(f.Types))
	for i, name := range f.Types {
		d, ok := reflector.Lookup(name)
		if !ok {
			return Envelope{}, fmt.Errorf("%w: %q in slot %d", ErrUnknownType, name, i)
		}
		ptr := reflect.New(d.Type)
		if err := json.Unmarshal(f.Values[i], ptr.Interface()); err != nil {
			return Envelope{}, fmt.Errorf("decode slot %d: %w", i, err)
		}
		values[i] = ptr.Elem().Interface()
	}

	msg, err := tuple.NewMessage(values...)
	if err != nil {
		return Envelope{}, fmt.Errorf("decode: %w", err)
	}
	return Envelope{ID: f.ID, Msg: msg}, nil
}
