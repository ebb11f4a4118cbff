package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownISINs(t *testing.T) {
	reg := DefaultRegistry()
	require.Equal(t, len(DefaultCompanies), reg.Len())

	for _, want := range DefaultCompanies {
		got, ok := reg.Lookup(want.ISIN)
		require.True(t, ok, "ISIN %s should be found", want.ISIN)
		assert.Equal(t, want, got)
	}

	c, ok := reg.Lookup("INE002A01018")
	require.True(t, ok)
	assert.Equal(t, "Reliance Industries", c.Name)
	assert.Equal(t, "RELIANCE", c.Code)
}

func TestLookupNotFound(t *testing.T) {
	reg := DefaultRegistry()

	for _, isin := range []string{"", "INE000000000", "ine002a01018", " INE002A01018", "INE002A0101"} {
		_, ok := reg.Lookup(isin)
		assert.False(t, ok, "lookup of %q should miss", isin)
	}
}

func TestNormalizeISIN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ine002a01018", "INE002A01018"},
		{"  INE123a01016\n", "INE123A01016"},
		{"\tine062A01020 ", "INE062A01020"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeISIN(tt.in), "NormalizeISIN(%q)", tt.in)
	}

	_, ok := DefaultRegistry().Lookup(NormalizeISIN(" ine274a01024 "))
	assert.True(t, ok)
}

func TestRegistryLaterEntriesWin(t *testing.T) {
	reg := NewRegistry(
		[]Company{{"X1", "First", "ONE"}},
		[]Company{{"X1", "Second", "TWO"}, {"X2", "Other", "OTH"}},
	)

	c, ok := reg.Lookup("X1")
	require.True(t, ok)
	assert.Equal(t, "Second", c.Name)
	assert.Equal(t, 2, reg.Len())
}

func TestRegistryCompaniesSorted(t *testing.T) {
	list := DefaultRegistry().Companies()
	require.Len(t, list, len(DefaultCompanies))
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ISIN, list[i].ISIN)
	}
}
