package colorname

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeHex(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"AABBCC", "#AABBCC"},
		{"#AABBCC", "#AABBCC"},
		{"aabbcc", "#AABBCC"},
		{"abc", "#AABBCC"},
	}
	for _, c := range cases {
		got, err := NormalizeHex(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got)
	}
}

func TestNormalizeHexInvalid(t *testing.T) {
	for _, in := range []string{"AABBCX", "AA#BCC", "AABBCCE", ""} {
		_, err := NormalizeHex(in)
		assert.Error(t, err, in)
	}
}

func TestTableHex(t *testing.T) {
	tab, err := New(nil)
	require.NoError(t, err)

	got, err := tab.Hex("black")
	require.NoError(t, err)
	assert.Equal(t, "#000000", got)

	got, err = tab.Hex("navy")
	require.NoError(t, err)
	assert.Equal(t, "#000080", got)

	got, err = tab.Hex("pink")
	require.NoError(t, err)
	assert.Equal(t, "#FFC0CB", got)

	// hex pass-through
	got, err = tab.Hex("12ab34")
	require.NoError(t, err)
	assert.Equal(t, "#12AB34", got)

	// empty means "no color set"
	got, err = tab.Hex("")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestTableCustomColors(t *testing.T) {
	tab, err := New(map[string]string{"housestyle": "271D6C", "Red": "#FF0001"})
	require.NoError(t, err)

	got, err := tab.Hex("housestyle")
	require.NoError(t, err)
	assert.Equal(t, "#271D6C", got)

	// custom entries win on collision
	got, err = tab.Hex("red")
	require.NoError(t, err)
	assert.Equal(t, "#FF0001", got)
}

func TestTableCustomInvalid(t *testing.T) {
	_, err := New(map[string]string{"bad": "notacolor"})
	assert.Error(t, err)
}

func TestTableUnknown(t *testing.T) {
	tab, err := New(nil)
	require.NoError(t, err)
	_, err = tab.Hex("definitelynotacolor")
	assert.Error(t, err)
}
