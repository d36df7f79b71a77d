package colorutils

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex2rgbRoundTrip(t *testing.T) {
	// Walk every byte value on each channel with the other two shifted.
	for i := 0; i < 256; i++ {
		code := fmt.Sprintf("%02x%02x%02x", i, (i*7)%256, 255-i)
		r, g, b, err := Hex2rgb(code)
		require.NoError(t, err, code)

		for _, c := range []float64{r, g, b} {
			assert.GreaterOrEqual(t, c, 0.0, code)
			assert.LessOrEqual(t, c, 1.0, code)
		}
		assert.Equal(t, code, Rgb2hex(r, g, b))
	}
}

func TestHex2rgb(t *testing.T) {
	r, g, b, err := Hex2rgb("#FF8000")
	require.NoError(t, err)
	assert.Equal(t, 1.0, r)
	assert.InDelta(t, 128.0/255, g, 1e-12)
	assert.Equal(t, 0.0, b)

	// Only the first six characters count.
	r, g, b, err = Hex2rgb("00ff00zz")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0}, []float64{r, g, b})
}

func TestHex2rgbRejects(t *testing.T) {
	_, _, _, err := Hex2rgb("12")
	assert.ErrorIs(t, err, ErrShortHex)

	_, _, _, err = Hex2rgb("#abc")
	assert.ErrorIs(t, err, ErrShortHex)

	_, _, _, err = Hex2rgb("zz0000")
	assert.Error(t, err)

	_, _, _, err = Hex2rgb("-12345")
	assert.Error(t, err)
}

func TestRgb2hsv(t *testing.T) {
	cases := []struct {
		name    string
		r, g, b float64
		h, s, v float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"red", 1, 0, 0, 360, 1, 1},
		{"green", 0, 1, 0, 120, 1, 1},
		{"blue", 0, 0, 1, 240, 1, 1},
		{"magenta", 1, 0, 1, 300, 1, 1},
		{"yellow", 1, 1, 0, 60, 1, 1},
		{"white", 1, 1, 1, 360, 0, 1},
		{"dark magenta", 0.5, 0, 0.5, 300, 1, 0.5},
		{"rose", 1, 0, 0.5, 330, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, s, v := Rgb2hsv(tc.r, tc.g, tc.b)
			assert.InDelta(t, tc.h, h, 1e-9)
			assert.InDelta(t, tc.s, s, 1e-9)
			assert.InDelta(t, tc.v, v, 1e-9)
		})
	}
}

func TestRgb2hsvRange(t *testing.T) {
	for i := 1; i < 256; i += 3 {
		r, g, b, err := Hex2rgb(fmt.Sprintf("%02x%02x%02x", (i*13)%256, i, (i*101)%256))
		require.NoError(t, err)
		h, s, v := Rgb2hsv(r, g, b)
		assert.Greater(t, h, 0.0)
		assert.LessOrEqual(t, h, 360.0)
		assert.True(t, s >= 0 && s <= 1)
		assert.True(t, v >= 0 && v <= 1)
	}
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-0.5))
	assert.Equal(t, 1.0, Clamp01(1.5))
	assert.Equal(t, 0.25, Clamp01(0.25))
}
