package codec

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codewandler/clstr-msg/core/reflector"
	"github.com/codewandler/clstr-msg/core/tuple"
)

type account struct {
	ID      string
	Balance int64
}

type unregistered struct{ X int }

func init() {
	reflector.Register[account]()
	reflector.Register[tuple.Tuple2[int, string]]()
}

func TestJSONCodec_roundtrip(t *testing.T) {
	c := JSONCodec{}
	msg := tuple.New3("deposit", account{ID: "a1", Balance: 10}, 2.5).Message()

	b, err := c.Encode(msg)
	require.NoError(t, err)

	env, err := c.Decode(b)
	require.NoError(t, err)
	require.NotEmpty(t, env.ID)
	require.True(t, env.Msg.Equal(msg))

	got, ok := tuple.As3[string, account, float64](env.Msg)
	require.True(t, ok)
	require.Equal(t, int64(10), got.Get1().Balance)
}

func TestJSONCodec_wire_form(t *testing.T) {
	b, err := JSONCodec{}.EncodeID("id-1", tuple.New2(42, "hi").Message())
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"id-1","types":["int","string"],"values":[42,"hi"]}`, string(b))
}

func TestJSONCodec_nested(t *testing.T) {
	c := JSONCodec{}
	msg := tuple.New2(tuple.New2(1, "a"), true).Message()

	b, err := c.Encode(msg)
	require.NoError(t, err)
	env, err := c.Decode(b)
	require.NoError(t, err)

	got, ok := tuple.As2[tuple.Tuple2[int, string], bool](env.Msg)
	require.True(t, ok)
	require.Equal(t, "a", got.Get0().Get1())
}

func TestJSONCodec_nested_message(t *testing.T) {
	c := JSONCodec{}
	inner := tuple.New2(7, "x").Message()
	msg := tuple.New2("wrap", inner).Message()

	b, err := c.EncodeID("id-2", msg)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"id-2","types":["string","github.com/codewandler/clstr-msg/core/tuple.Message"],`+
		`"values":["wrap",{"types":["int","string"],"values":[7,"x"]}]}`, string(b))

	env, err := c.Decode(b)
	require.NoError(t, err)
	require.True(t, env.Msg.Equal(msg))

	got, ok := tuple.As2[string, tuple.Message](env.Msg)
	require.True(t, ok)
	back, ok := tuple.As2[int, string](got.Get1())
	require.True(t, ok)
	require.Equal(t, 7, back.Get0())
	require.Equal(t, "x", back.Get1())
}

func TestJSONCodec_nested_message_unknown_type(t *testing.T) {
	c := JSONCodec{}
	b, err := c.Encode(tuple.New1(tuple.New1(unregistered{X: 1}).Message()).Message())
	require.NoError(t, err)

	_, err = c.Decode(b)
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestJSONCodec_unknown_type(t *testing.T) {
	c := JSONCodec{}
	b, err := c.Encode(tuple.New1(unregistered{X: 1}).Message())
	require.NoError(t, err)

	_, err = c.Decode(b)
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestJSONCodec_malformed(t *testing.T) {
	c := JSONCodec{}

	_, err := c.Decode([]byte("{"))
	require.ErrorIs(t, err, ErrMalformed)

	b, _ := json.Marshal(frame{ID: "x", Types: []string{"int"}})
	_, err = c.Decode(b)
	require.ErrorIs(t, err, ErrMalformed)

	_, err = c.Decode([]byte(`{"id":"x","types":[],"values":[]}`))
	require.ErrorIs(t, err, tuple.ErrEmpty)

	_, err = c.Decode([]byte(`{"id":"x","types":["int"],"values":["nope"]}`))
	require.ErrorContains(t, err, "decode slot 0")

	_, err = c.Encode(tuple.Message{})
	require.ErrorIs(t, err, tuple.ErrEmpty)
}
