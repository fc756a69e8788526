package playroom

import (
	"image/color"
	"testing"
)

func alphaAt(r *SoftRaster, x, y int) uint8 {
	return r.Snapshot().NRGBAAt(x, y).A
}

func TestSoftRasterStrokeSegment(t *testing.T) {
	r := NewSoftRaster(100, 100)
	r.StrokeSegment(Vec2{10, 50}, Vec2{90, 50}, 10, Color{1, 0, 0, 1}, BrushPaint)

	if got := r.Snapshot().NRGBAAt(50, 50); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("centre pixel = %v, want opaque red", got)
	}
	if a := alphaAt(r, 50, 70); a != 0 {
		t.Errorf("pixel outside the stroke has alpha %d", a)
	}
	// Round cap extends past the end point.
	if a := alphaAt(r, 92, 50); a == 0 {
		t.Error("round cap missing past the end point")
	}
	if a := alphaAt(r, 97, 50); a != 0 {
		t.Errorf("cap too long: alpha %d at x=97", a)
	}
}

func TestSoftRasterDot(t *testing.T) {
	r := NewSoftRaster(40, 40)
	r.StrokeSegment(Vec2{20, 20}, Vec2{20, 20}, 10, ColorBlack, BrushPaint)
	if a := alphaAt(r, 20, 20); a != 255 {
		t.Errorf("dot centre alpha = %d, want 255", a)
	}
	if a := alphaAt(r, 20, 30); a != 0 {
		t.Errorf("dot too large: alpha %d", a)
	}
}

func TestSoftRasterErase(t *testing.T) {
	r := NewSoftRaster(100, 100)
	r.StrokeSegment(Vec2{0, 50}, Vec2{100, 50}, 20, ColorGreen, BrushPaint)
	r.StrokeSegment(Vec2{40, 50}, Vec2{60, 50}, 6, ColorWhite, BrushErase)

	if a := alphaAt(r, 50, 50); a != 0 {
		t.Errorf("erased pixel alpha = %d, want 0", a)
	}
	if a := alphaAt(r, 20, 50); a != 255 {
		t.Errorf("pixel outside eraser alpha = %d, want 255", a)
	}
	if a := alphaAt(r, 50, 58); a != 255 {
		t.Errorf("pixel beside eraser alpha = %d, want 255", a)
	}
}

func TestSoftRasterClipsOutside(t *testing.T) {
	r := NewSoftRaster(10, 10)
	r.StrokeSegment(Vec2{-50, -50}, Vec2{-20, -20}, 4, ColorBlack, BrushPaint)
	r.StrokeSegment(Vec2{-5, 5}, Vec2{15, 5}, 2, ColorBlack, BrushPaint)
	if a := alphaAt(r, 5, 5); a == 0 {
		t.Error("segment crossing the raster should paint inside it")
	}
	if a := alphaAt(r, 5, 0); a != 0 {
		t.Errorf("unexpected paint at (5,0): %d", a)
	}
}

func TestSoftRasterClear(t *testing.T) {
	r := NewSoftRaster(20, 20)
	r.StrokeSegment(Vec2{0, 0}, Vec2{20, 20}, 8, ColorBlack, BrushPaint)
	r.Clear()
	for _, p := range r.Snapshot().Pix {
		if p != 0 {
			t.Fatal("raster not blank after Clear")
		}
	}
}

func TestSoftRasterSize(t *testing.T) {
	w, h := NewSoftRaster(600, 400).Size()
	if w != 600 || h != 400 {
		t.Errorf("Size = %dx%d", w, h)
	}
	w, h = NewSoftRaster(0, -3).Size()
	if w != 1 || h != 1 {
		t.Errorf("degenerate Size = %dx%d, want 1x1", w, h)
	}
}

func TestUnpremultiply(t *testing.T) {
	img := unpremultiply([]byte{64, 32, 0, 128, 0, 0, 0, 0, 10, 20, 30, 255}, 3, 1)
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{127, 63, 0, 128}) {
		t.Errorf("half alpha = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{}) {
		t.Errorf("transparent = %v", got)
	}
	if got := img.NRGBAAt(2, 0); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("opaque = %v", got)
	}
}

func TestEbitenRasterDimensions(t *testing.T) {
	r := NewEbitenRaster(128, 64)
	defer r.Dispose()

	w, h := r.Size()
	if w != 128 || h != 64 {
		t.Errorf("Size = %dx%d, want 128x64", w, h)
	}
	if r.Image() == nil {
		t.Fatal("Image() should not be nil")
	}
	r.Resize(32, 16)
	if w, h := r.Size(); w != 32 || h != 16 {
		t.Errorf("Size after Resize = %dx%d", w, h)
	}
	var _ Raster = r
}

func TestEbitenRasterStrokeReusesPath(t *testing.T) {
	r := NewEbitenRaster(64, 64)
	defer r.Dispose()

	r.StrokeSegment(Vec2{8, 8}, Vec2{56, 8}, 6, ColorCoral, BrushPaint)
	r.StrokeSegment(Vec2{8, 8}, Vec2{8, 56}, 6, ColorCoral, BrushPaint)
	r.StrokeSegment(Vec2{8, 8}, Vec2{20, 8}, 6, ColorBlack, BrushErase)

	got := r.path.Bounds()
	if got.Empty() {
		t.Fatal("last capsule path should have area")
	}
	if got.Max.Y > 12 || got.Max.X > 24 {
		t.Errorf("path bounds = %v, want only the last erase capsule", got)
	}
}
