package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "1250.50", Normalize("١٢٥٠٫٥٠"))
	assert.Equal(t, "1250.50", Normalize("1,250.50"))
	// Both ٫ and ٬ translate to "." by the shared digit map.
	assert.Equal(t, "1.250.50", Normalize("١٬٢٥٠٫٥٠"))
	assert.Equal(t, "42", Normalize(" ٤٢ "))
	assert.Equal(t, "", Normalize(""))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"western", "1,250.50", 1250.50, true},
		{"arabic", "١٢٥٠٫٥٠", 1250.50, true},
		{"arabic with thousands sep", "١٬٢٥٠", 1.250, true},
		{"currency suffix", "30.00 دينار", 30.00, true},
		{"integer", "٣", 3, true},
		{"no digits", "abc", 0, false},
		{"empty", "", 0, false},
		{"multiple decimal points", "1.2.3", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.input)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestParseArabicWesternEquivalence(t *testing.T) {
	a, aok := Parse("٢٥٠٫٧٥")
	w, wok := Parse("250.75")
	require.True(t, aok)
	require.True(t, wok)
	assert.Equal(t, w, a)
}

func TestFromAny(t *testing.T) {
	assert.Nil(t, FromAny(nil))
	assert.Nil(t, FromAny("abc"))
	assert.Nil(t, FromAny([]string{"1"}))

	f := FromAny(12.5)
	require.NotNil(t, f)
	assert.Equal(t, 12.5, *f)

	f = FromAny("١٢٫٥")
	require.NotNil(t, f)
	assert.Equal(t, 12.5, *f)

	f = FromAny(3)
	require.NotNil(t, f)
	assert.Equal(t, 3.0, *f)
}
