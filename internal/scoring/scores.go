package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Score is one named sub-score in [0, 100].
type Score struct {
	Key   string
	Value int
}

// Scores is an ordered set of sub-scores. It marshals to a JSON object
// whose keys keep the configured order.
type Scores []Score

// Get returns the value for key and whether it exists.
func (s Scores) Get(key string) (int, bool) {
	for _, sc := range s {
		if sc.Key == key {
			return sc.Value, true
		}
	}
	return 0, false
}

// Value returns the value for key, or 0 if absent.
func (s Scores) Value(key string) int {
	v, _ := s.Get(key)
	return v
}

// Map returns the scores as a plain map.
func (s Scores) Map() map[string]int {
	m := make(map[string]int, len(s))
	for _, sc := range s {
		m[sc.Key] = sc.Value
	}
	return m
}

// MarshalJSON encodes the scores as an object in order.
func (s Scores) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, sc := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(sc.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(sc.Value))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, keeping the key order of the input.
func (s *Scores) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("scores: expected object, got %v", tok)
	}
	var out Scores
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("scores: expected key, got %v", tok)
		}
		var v int
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("scores: %s: %w", key, err)
		}
		out = append(out, Score{Key: key, Value: v})
	}
	*s = out
	return nil
}
