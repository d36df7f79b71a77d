package swatchgen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridLayout(t *testing.T) {
	l := newGridLayout(20, 16, 64, 4)
	assert.Equal(t, 16, l.Columns)
	assert.Equal(t, 2, l.Rows)

	w, h := l.Size()
	assert.Equal(t, 4+16*68, w)
	assert.Equal(t, 4+2*68, h)

	x, y := l.Origin(0)
	assert.Equal(t, []int{4, 4}, []int{x, y})
	x, y = l.Origin(17)
	assert.Equal(t, []int{4 + 68, 4 + 68}, []int{x, y})

	// The last tile stays inside the canvas.
	x, y = l.Origin(19)
	assert.LessOrEqual(t, x+64, w)
	assert.LessOrEqual(t, y+64, h)
}

func TestGridLayoutNarrow(t *testing.T) {
	l := newGridLayout(3, 16, 10, 2)
	assert.Equal(t, 3, l.Columns)
	assert.Equal(t, 1, l.Rows)

	l = newGridLayout(0, 0, 10, 2)
	assert.Equal(t, 1, l.Columns)
	assert.Equal(t, 0, l.Rows)
}

func TestPreviewNoColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, Preview(nil, path, Config{}, nil))
	assert.NoFileExists(t, path)
}
