package tuple

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

func format(s storage) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range s.size() {
		if i > 0 {
			sb.WriteString(", ")
		}
		v := s.at(i)
		if str, ok := v.(fmt.Stringer); ok {
			sb.WriteString(str.String())
			continue
		}
		if s.descriptorAt(i).IsString() {
			sb.WriteString(strconv.Quote(fmt.Sprint(v)))
			continue
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(')')
	return sb.String()
}

func marshalSlots(s storage) ([]byte, error) {
	values := make([]any, s.size())
	for i := range values {
		values[i] = s.at(i)
	}
	return json.Marshal(values)
}

func unmarshalSlots(b []byte, n int) ([]json.RawMessage, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	if len(raw) != n {
		return nil, fmt.Errorf("%w: want %d slots, got %d", ErrArity, n, len(raw))
	}
	return raw, nil
}

func slotError(i int, err error) error {
	return fmt.Errorf("decode slot %d: %w", i, err)
}
