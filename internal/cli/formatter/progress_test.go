package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgressClampsRange(t *testing.T) {
	assert.Contains(t, RenderProgress(-10, 10), "  0%")
	assert.Contains(t, RenderProgress(250, 10), "100%")
}

func TestRenderProgressFill(t *testing.T) {
	out := RenderProgress(50, 10)
	assert.Equal(t, 5, strings.Count(out, filledBlock))
	assert.Equal(t, 5, strings.Count(out, emptyBlock))
	assert.Contains(t, out, " 50%")
}

func TestRenderProgressFullAndEmpty(t *testing.T) {
	assert.Equal(t, 10, strings.Count(RenderProgress(100, 10), filledBlock))
	assert.Equal(t, 10, strings.Count(RenderProgress(0, 10), emptyBlock))
}
