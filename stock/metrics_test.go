package stock

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsSetKeepsFirstPosition(t *testing.T) {
	m := NewMetrics()
	m.Set("Market Cap", "1")
	m.Set("ROE", "12")
	m.Set("Market Cap", "2")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []string{"Market Cap", "ROE"}, m.Labels())

	v, ok := m.Get("Market Cap")
	require.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = m.Get("Missing")
	assert.False(t, ok)
}

func TestMetricsZeroValue(t *testing.T) {
	var m Metrics
	m.Set("ROCE", "9.69")

	v, ok := m.Get("ROCE")
	require.True(t, ok)
	assert.Equal(t, "9.69", v)
}

func TestMetricsAllStopsEarly(t *testing.T) {
	m := NewMetrics()
	m.Set("a", "1")
	m.Set("b", "2")
	m.Set("c", "3")

	var seen []string
	for label := range m.All() {
		seen = append(seen, label)
		if label == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestMetricsLabelsIsCopy(t *testing.T) {
	m := NewMetrics()
	m.Set("a", "1")

	labels := m.Labels()
	labels[0] = "changed"
	assert.Equal(t, []string{"a"}, m.Labels())
}

func TestMetricsMarshalJSON(t *testing.T) {
	m := NewMetrics()
	m.Set("Stock P/E", "24.1")
	m.Set("Market Cap", "19,42,108")
	m.Set(`Quote "x"`, "1")

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"Stock P/E":"24.1","Market Cap":"19,42,108","Quote \"x\"":"1"}`, string(data))

	data, err = json.Marshal(NewMetrics())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}
