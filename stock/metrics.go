package stock

import (
	"bytes"
	"encoding/json"
	"iter"
)

// Metrics is an insertion-ordered label -> value mapping. Setting a label that
// already exists replaces its value but keeps its original position.
type Metrics struct {
	labels []string
	values map[string]string
}

func NewMetrics() *Metrics {
	return &Metrics{values: make(map[string]string)}
}

// Set stores value under label, last write wins
func (m *Metrics) Set(label, value string) {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	if _, ok := m.values[label]; !ok {
		m.labels = append(m.labels, label)
	}
	m.values[label] = value
}

func (m *Metrics) Get(label string) (string, bool) {
	v, ok := m.values[label]
	return v, ok
}

func (m *Metrics) Len() int {
	return len(m.labels)
}

// Labels returns the labels in insertion order
func (m *Metrics) Labels() []string {
	out := make([]string, len(m.labels))
	copy(out, m.labels)
	return out
}

// All iterates label/value pairs in insertion order
func (m *Metrics) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, label := range m.labels {
			if !yield(label, m.values[label]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the metrics as a JSON object, keys in insertion order
func (m *Metrics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range m.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[label])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
