package variants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func trimmedLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func TestSectionSkipsEmptyBlocks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"hero", "", "plans", "", "faq"}, trimmedLines(section("hero", "", "plans", "", "faq")))
	assert.Equal(t, "solo", section("", "solo"))
	assert.Empty(t, section("", ""))
}

func TestGridRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		blocks []string
		cols   int
		want   []string
	}{
		{"single column", []string{"a", "b"}, 1, []string{"a", "b"}},
		{"wraps into rows", []string{"a", "b", "c"}, 2, []string{"a  b", "c"}},
		{"bottom edges line up", []string{"x", "y1\ny2"}, 2, []string{"   y1", "x  y2"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, trimmedLines(grid(tt.blocks, tt.cols)))
		})
	}
}

func TestColumnsAndCardWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, columns(120, 3, minCardWidth))
	assert.Equal(t, 1, columns(40, 3, minCardWidth))
	assert.Equal(t, 1, columns(120, 1, minCardWidth))
	assert.Equal(t, maxCardWidth, cardWidth(200, 3))
	assert.Equal(t, 20, cardWidth(20, 1))
}
