package playroom

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Opaque returns c with alpha forced to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// NRGBA converts c to a straight-alpha color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// ColorFromHex builds an opaque Color from a 0xRRGGBB value.
func ColorFromHex(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// Kid-friendly palette shared by the bubble field and the drawing brushes.
var (
	ColorCoral    = ColorFromHex(0xff6b6b)
	ColorSkyBlue  = ColorFromHex(0x4dabf7)
	ColorGreen    = ColorFromHex(0x51cf66)
	ColorSunny    = ColorFromHex(0xffd43b)
	ColorLavender = ColorFromHex(0xb197fc)
	ColorOrange   = ColorFromHex(0xff922b)
	ColorBlack    = Color{0, 0, 0, 1}
	ColorWhite    = Color{1, 1, 1, 1}
)

// DefaultPalette is the set of colors bubbles are drawn from.
var DefaultPalette = []Color{
	ColorCoral, ColorSkyBlue, ColorGreen, ColorSunny, ColorLavender, ColorOrange,
}

// Vec2 is a 2D vector used for positions and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max] drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// BrushMode selects how a stroke affects the raster.
type BrushMode uint8

const (
	BrushPaint BrushMode = iota // source-over with the brush color
	BrushErase                  // destination-out (punch transparent holes)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BrushMode.
func (m BrushMode) EbitenBlend() ebiten.Blend {
	if m == BrushErase {
		return ebiten.BlendDestinationOut
	}
	return ebiten.BlendSourceOver
}

func (m BrushMode) String() string {
	if m == BrushErase {
		return "erase"
	}
	return "paint"
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
