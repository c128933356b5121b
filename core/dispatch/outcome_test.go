package dispatch

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcome_String(t *testing.T) {
	require.Equal(t, "im_success", Success.String())
	require.Equal(t, "im_skipped", Skipped.String())
	require.Equal(t, "im_dropped", Dropped.String())
	require.Equal(t, "Outcome(9)", Outcome(9).String())
}

func TestOutcome_Parse(t *testing.T) {
	for _, o := range []Outcome{Success, Skipped, Dropped} {
		got, err := ParseOutcome(o.String())
		require.NoError(t, err)
		require.Equal(t, o, got)
	}
	_, err := ParseOutcome("im_lost")
	require.ErrorIs(t, err, ErrUnknownOutcome)
}

func TestOutcome_JSON(t *testing.T) {
	b, err := json.Marshal(map[string]Outcome{"o": Dropped})
	require.NoError(t, err)
	require.JSONEq(t, `{"o":"im_dropped"}`, string(b))

	var out map[string]Outcome
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, Dropped, out["o"])

	_, err = json.Marshal(Outcome(7))
	require.ErrorIs(t, err, ErrUnknownOutcome)
}
