// Package render turns grids into colours and text.
package render

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// DebugPink marks undefined or unexpected cells.
var DebugPink = color.RGBA{224, 176, 255, 255}

// Scheme maps cell values to colours and ASCII glyphs. Values are clamped
// to [0, 255] only here, never in the generators.
type Scheme struct {
	Name  string
	color func(v float64) color.RGBA
	glyph func(v float64) byte
}

type band struct {
	below float64
	c     color.RGBA
	glyph byte
}

var terrainBands = []band{
	{90, color.RGBA{0, 0, 75, 255}, '~'},
	{120, color.RGBA{0, 0, 150, 255}, '~'},
	{160, color.RGBA{0, 0, 255, 255}, '-'},
	{170, color.RGBA{0, 255, 0, 255}, '.'},
	{180, color.RGBA{0, 155, 0, 255}, ','},
	{190, color.RGBA{0, 255, 0, 255}, '.'},
	{200, color.RGBA{95, 45, 0, 255}, 'n'},
	{210, color.RGBA{115, 65, 20, 255}, 'm'},
}

var (
	white     = color.RGBA{255, 255, 255, 255}
	black     = color.RGBA{0, 0, 0, 255}
	lightGray = color.RGBA{120, 120, 120, 255}
	darkGray  = color.RGBA{50, 50, 50, 255}
)

const grayRamp = " .:-=+*#%@"

var schemes = map[string]Scheme{
	"terrain": {
		Name: "terrain",
		color: func(v float64) color.RGBA {
			for _, b := range terrainBands {
				if v < b.below {
					return b.c
				}
			}
			return white
		},
		glyph: func(v float64) byte {
			for _, b := range terrainBands {
				if v < b.below {
					return b.glyph
				}
			}
			return '^'
		},
	},
	"grayscale": {
		Name: "grayscale",
		color: func(v float64) color.RGBA {
			c := uint8(clamp(v))
			return color.RGBA{c, c, c, 255}
		},
		glyph: func(v float64) byte {
			return grayRamp[int(clamp(v))*len(grayRamp)/256]
		},
	},
	"dungeon": {
		Name: "dungeon",
		color: func(v float64) color.RGBA {
			switch v {
			case 0:
				return black
			case 1:
				return lightGray
			}
			return DebugPink
		},
		glyph: func(v float64) byte {
			switch v {
			case 0:
				return '#'
			case 1:
				return '.'
			}
			return '!'
		},
	},
	"starfield": {
		Name: "starfield",
		color: func(v float64) color.RGBA {
			switch v {
			case 1:
				return white
			case 2:
				return lightGray
			case 3:
				return darkGray
			}
			return black
		},
		glyph: func(v float64) byte {
			switch v {
			case 1:
				return '*'
			case 2:
				return '+'
			case 3:
				return '.'
			}
			return ' '
		},
	},
}

// SchemeByName returns a registered scheme.
func SchemeByName(name string) (Scheme, error) {
	s, ok := schemes[name]
	if !ok {
		return Scheme{}, fmt.Errorf("unknown colour scheme %q", name)
	}
	return s, nil
}

// SchemeNames lists the registered schemes in sorted order.
func SchemeNames() []string {
	names := make([]string, 0, len(schemes))
	for n := range schemes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Color returns the colour for v. Undefined cells are DebugPink.
func Color(s Scheme, v float64) color.RGBA {
	if grid.IsUndefined(v) {
		return DebugPink
	}
	return s.color(v)
}

// Glyph returns the ASCII glyph for v. Undefined cells are '?'.
func Glyph(s Scheme, v float64) byte {
	if grid.IsUndefined(v) {
		return '?'
	}
	return s.glyph(v)
}

func clamp(v float64) float64 {
	return min(max(v, 0), 255)
}
