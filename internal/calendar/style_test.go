package calendar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var tenColors = []string{
	"#3B82F6", "#10B981", "#EF4444", "#8B5CF6", "#F97316",
	"#EC4899", "#14B8A6", "#F59E0B", "#6366F1", "#84CC16",
}

func TestGradientCapsAtFiveColors(t *testing.T) {
	g := Gradient(tenColors)

	used := 0
	for _, c := range tenColors {
		if strings.Contains(g, c) {
			used++
		}
	}
	assert.LessOrEqual(t, used, 5)
	assert.Contains(t, g, "linear-gradient(")
}

func TestShadowCapsAtFourColors(t *testing.T) {
	s := Shadow(tenColors)

	used := 0
	for _, c := range tenColors {
		if strings.Contains(s, c) {
			used++
		}
	}
	assert.LessOrEqual(t, used, 4)
	assert.Contains(t, s, "inset")
}

func TestGlowCapsAtThreeColors(t *testing.T) {
	g := Glow(tenColors)

	used := 0
	for _, c := range tenColors {
		if strings.Contains(g, c) {
			used++
		}
	}
	assert.LessOrEqual(t, used, 3)
	assert.Equal(t, 3, strings.Count(g, "radial-gradient("))
}

func TestStyleForColorsSingleColor(t *testing.T) {
	style := StyleForColors([]string{"#3B82F6"})

	assert.Contains(t, style.Background, "linear-gradient(135deg")
	assert.Contains(t, style.Background, "#3B82F6")
	assert.Contains(t, style.Shadow, "#3B82F6")
	assert.Contains(t, style.Glow, "circle at 50% 50%")
}

func TestStyleForColorsEmpty(t *testing.T) {
	style := StyleForColors(nil)

	assert.Empty(t, style.Background)
	assert.Empty(t, style.Shadow)
	assert.Empty(t, style.Glow)
}

func TestStyleForColorsNonEmptyWhenEventsPresent(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
	}{
		{name: "One color", colors: tenColors[:1]},
		{name: "Two colors", colors: tenColors[:2]},
		{name: "Five colors", colors: tenColors[:5]},
		{name: "Ten colors", colors: tenColors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StyleForColors(tt.colors)
			assert.NotEmpty(t, style.Background)
			assert.NotEmpty(t, style.Shadow)
			assert.NotEmpty(t, style.Glow)
		})
	}
}

func TestGradientAngleSteepensWithColorCount(t *testing.T) {
	two := Gradient(tenColors[:2])
	five := Gradient(tenColors[:5])

	assert.Contains(t, two, "linear-gradient(165deg")
	assert.Contains(t, five, "linear-gradient(210deg")
}
