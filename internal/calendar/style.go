package calendar

import (
	"fmt"
	"strings"
)

// Per-effect caps: extra colors beyond the cap are ignored, not an error.
const (
	maxGradientColors = 5
	maxShadowColors   = 4
	maxGlowColors     = 3
)

// DayStyle carries the CSS fragments for one grid cell. Cosmetic by
// design; the functional contract is only the caps and that a day with
// events always gets non-empty styling.
type DayStyle struct {
	Background string `json:"background,omitempty"`
	Shadow     string `json:"shadow,omitempty"`
	Glow       string `json:"glow,omitempty"`
}

// StyleForColors derives the composite visuals for the set of event
// colors occupying one day.
func StyleForColors(colors []string) DayStyle {
	return DayStyle{
		Background: Gradient(colors),
		Shadow:     Shadow(colors),
		Glow:       Glow(colors),
	}
}

// Gradient blends up to 5 colors into a linear gradient, each stop
// successively more transparent, the angle steepening with color count.
func Gradient(colors []string) string {
	if len(colors) == 0 {
		return ""
	}
	if len(colors) == 1 {
		c := colors[0]
		return fmt.Sprintf("linear-gradient(135deg, %s, %sdd, %s99)", c, c, c)
	}

	n := len(colors)
	if n > maxGradientColors {
		n = maxGradientColors
	}

	stops := make([]string, 0, 2*n)
	for i := 0; i < n; i++ {
		opacity := 1.0 - float64(i)*0.12
		stops = append(stops, colors[i]+alphaHex(opacity))
		if i < n-1 {
			stops = append(stops, colors[i]+alphaHex(opacity*0.8))
		}
	}

	angle := 135 + n*15
	return fmt.Sprintf("linear-gradient(%ddeg, %s)", angle, strings.Join(stops, ", "))
}

// Shadow layers one drop shadow per color (cap 4), offset increasingly
// down-right with decreasing blur and intensity, plus one shared inset
// shadow tying the group together.
func Shadow(colors []string) string {
	if len(colors) == 0 {
		return ""
	}
	if len(colors) == 1 {
		c := colors[0]
		return fmt.Sprintf("0 10px 25px -5px %s40, 0 10px 10px -5px %s20, inset 0 0 20px %s20", c, c, c)
	}

	n := len(colors)
	if n > maxShadowColors {
		n = maxShadowColors
	}

	layers := make([]string, 0, n+1)
	for i := 0; i < n; i++ {
		intensity := 40 - i*12
		if intensity < 15 {
			intensity = 15
		}
		layers = append(layers, fmt.Sprintf("%dpx %dpx %dpx %dpx %s%x",
			i*2, 10+i*3, 25-i*4, -5+i*2, colors[i], intensity))
	}
	layers = append(layers, fmt.Sprintf("inset 0 0 %dpx %s20", 15+n*3, colors[0]))

	return strings.Join(layers, ", ")
}

// glow focal points rotate so stacked highlights spread out.
var glowPositions = []string{"50% 50%", "30% 30%", "70% 70%", "30% 70%", "70% 30%"}

// Glow paints one radial highlight per color, capped at 3.
func Glow(colors []string) string {
	if len(colors) == 0 {
		return ""
	}
	if len(colors) == 1 {
		return fmt.Sprintf("radial-gradient(circle at 50%% 50%%, %s40, transparent 70%%)", colors[0])
	}

	n := len(colors)
	if n > maxGlowColors {
		n = maxGlowColors
	}

	glows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		intensity := 40 - i*10
		if intensity < 20 {
			intensity = 20
		}
		glows = append(glows, fmt.Sprintf("radial-gradient(circle at %s, %s%x, transparent 60%%)",
			glowPositions[i%len(glowPositions)], colors[i], intensity))
	}

	return strings.Join(glows, ", ")
}

// alphaHex converts an opacity in [0,1] to a two-digit hex suffix.
func alphaHex(opacity float64) string {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return fmt.Sprintf("%02x", int(opacity*255+0.5))
}
