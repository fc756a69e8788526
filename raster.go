package playroom

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Raster is the 2D drawing capability behind a StrokeSurface: a persistent
// pixel buffer addressed in backing-resolution coordinates.
type Raster interface {
	// Size returns the backing resolution in pixels.
	Size() (w, h int)
	// StrokeSegment paints (or, in BrushErase mode, clears) a round-capped
	// segment of the given width from a to b.
	StrokeSegment(a, b Vec2, width float64, c Color, mode BrushMode)
	// Clear erases the whole raster to transparent.
	Clear()
	// Snapshot copies the current content as straight-alpha pixels.
	Snapshot() *image.NRGBA
}

// capsuleArcSegments is the number of line segments per half-circle cap.
const capsuleArcSegments = 16

// SoftRaster is a CPU Raster on an in-memory premultiplied RGBA image. It needs
// no graphics device, which makes it the raster of choice for headless runs.
type SoftRaster struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewSoftRaster creates a transparent w×h raster.
func NewSoftRaster(w, h int) *SoftRaster {
	w, h = max(w, 1), max(h, 1)
	return &SoftRaster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

// Size returns the raster dimensions.
func (r *SoftRaster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear erases every pixel.
func (r *SoftRaster) Clear() {
	clear(r.img.Pix)
}

// StrokeSegment rasterizes the capsule around a→b into a coverage mask and
// composites it onto the image.
func (r *SoftRaster) StrokeSegment(a, b Vec2, width float64, c Color, mode BrushMode) {
	radius := max(width/2, 0.5)
	area := image.Rect(
		int(math.Floor(min(a.X, b.X)-radius))-1,
		int(math.Floor(min(a.Y, b.Y)-radius))-1,
		int(math.Ceil(max(a.X, b.X)+radius))+1,
		int(math.Ceil(max(a.Y, b.Y)+radius))+1,
	).Intersect(r.img.Bounds())
	if area.Empty() {
		return
	}

	off := Vec2{float64(area.Min.X), float64(area.Min.Y)}
	r.z.Reset(area.Dx(), area.Dy())
	r.z.DrawOp = draw.Src
	capsulePath(r.z, Vec2{a.X - off.X, a.Y - off.Y}, Vec2{b.X - off.X, b.Y - off.Y}, radius)
	mask := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))
	r.z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	if mode == BrushErase {
		eraseMasked(r.img, area, mask)
		return
	}
	draw.DrawMask(r.img, area, image.NewUniform(c.NRGBA()), image.Point{}, mask, image.Point{}, draw.Over)
}

// Snapshot converts the premultiplied buffer to straight alpha.
func (r *SoftRaster) Snapshot() *image.NRGBA {
	w, h := r.Size()
	return unpremultiply(r.img.Pix, w, h)
}

// capsulePath adds a closed convex outline of a round-capped segment: a half
// circle around b, then one around a. Equal endpoints yield a full circle.
func capsulePath(z *vector.Rasterizer, a, b Vec2, radius float64) {
	theta := math.Atan2(b.Y-a.Y, b.X-a.X)
	first := true
	arc := func(center Vec2, start float64) {
		for i := 0; i <= capsuleArcSegments; i++ {
			ang := start + math.Pi*float64(i)/capsuleArcSegments
			x := float32(center.X + radius*math.Cos(ang))
			y := float32(center.Y + radius*math.Sin(ang))
			if first {
				z.MoveTo(x, y)
				first = false
				continue
			}
			z.LineTo(x, y)
		}
	}
	arc(b, theta-math.Pi/2)
	arc(a, theta+math.Pi/2)
	z.ClosePath()
}

// eraseMasked scales every pixel in area by the inverse mask coverage
// (destination-out).
func eraseMasked(img *image.RGBA, area image.Rectangle, mask *image.Alpha) {
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			m := uint32(mask.AlphaAt(x-area.Min.X, y-area.Min.Y).A)
			if m == 0 {
				continue
			}
			keep := 255 - m
			i := img.PixOffset(x, y)
			for c := 0; c < 4; c++ {
				img.Pix[i+c] = uint8(uint32(img.Pix[i+c]) * keep / 255)
			}
		}
	}
}

// unpremultiply converts premultiplied RGBA bytes to a straight-alpha image.
func unpremultiply(pix []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pix) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pix[i], pix[i+1], pix[i+2], pix[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}
