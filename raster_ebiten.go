package playroom

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenRaster is a persistent GPU canvas backing a StrokeSurface. Unlike the
// screen it is owned by the caller and keeps its pixels between frames.
type EbitenRaster struct {
	image *ebiten.Image
	w, h  int
	path  vector.Path
}

// NewEbitenRaster creates a transparent canvas of the given size.
func NewEbitenRaster(w, h int) *EbitenRaster {
	w, h = max(w, 1), max(h, 1)
	return &EbitenRaster{image: ebiten.NewImage(w, h), w: w, h: h}
}

// Image returns the underlying *ebiten.Image for drawing to the screen.
func (r *EbitenRaster) Image() *ebiten.Image {
	return r.image
}

// Size returns the canvas size in pixels.
func (r *EbitenRaster) Size() (int, int) {
	return r.w, r.h
}

// Clear fills the canvas with transparent black.
func (r *EbitenRaster) Clear() {
	r.image.Clear()
}

// StrokeSegment fills the capsule around a→b. Erasing uses the
// destination-out blend so the canvas keeps its transparency.
func (r *EbitenRaster) StrokeSegment(a, b Vec2, width float64, c Color, mode BrushMode) {
	r.path.Reset()
	ebitenCapsule(&r.path, a, b, max(width/2, 0.5))

	op := &vector.DrawPathOptions{AntiAlias: true, Blend: mode.EbitenBlend()}
	if mode == BrushPaint {
		op.ColorScale.ScaleWithColor(c.NRGBA())
	}
	vector.FillPath(r.image, &r.path, nil, op)
}

// Snapshot reads the canvas back and converts it to straight alpha.
func (r *EbitenRaster) Snapshot() *image.NRGBA {
	pix := make([]byte, 4*r.w*r.h)
	r.image.ReadPixels(pix)
	return unpremultiply(pix, r.w, r.h)
}

// Resize replaces the canvas with a blank one of the new size.
func (r *EbitenRaster) Resize(w, h int) {
	if r.image != nil {
		r.image.Deallocate()
	}
	r.w, r.h = max(w, 1), max(h, 1)
	r.image = ebiten.NewImage(r.w, r.h)
}

// Dispose deallocates the canvas. The raster must not be used afterwards.
func (r *EbitenRaster) Dispose() {
	if r.image != nil {
		r.image.Deallocate()
		r.image = nil
	}
}

// ebitenCapsule appends a round-capped segment outline to p.
func ebitenCapsule(p *vector.Path, a, b Vec2, radius float64) {
	theta := float32(math.Atan2(b.Y-a.Y, b.X-a.X))
	const halfPi = math.Pi / 2
	rad := float32(radius)
	p.Arc(float32(b.X), float32(b.Y), rad, theta-halfPi, theta+halfPi, vector.Clockwise)
	p.Arc(float32(a.X), float32(a.Y), rad, theta+halfPi, theta+3*halfPi, vector.Clockwise)
	p.Close()
}
