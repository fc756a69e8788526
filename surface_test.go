package playroom

import (
	"testing"
)

// recordingFeedback records every sequence it is asked to play.
type recordingFeedback struct {
	played []ToneSequence
}

func (f *recordingFeedback) Play(t Tone) { f.played = append(f.played, Sequence(At(0, t))) }

func (f *recordingFeedback) PlaySequence(q ToneSequence) { f.played = append(f.played, q) }

func blank(r *SoftRaster) bool {
	for _, p := range r.Snapshot().Pix {
		if p != 0 {
			return false
		}
	}
	return true
}

func TestSurfaceCoordinateScaling(t *testing.T) {
	s := NewStrokeSurface(NewSoftRaster(600, 400), nil, SurfaceConfig{DisplayWidth: 300, DisplayHeight: 200})
	if got := s.CanvasPoint(150, 100); got != (Vec2{300, 200}) {
		t.Errorf("CanvasPoint(150,100) = %v, want {300 200}", got)
	}

	s.SetDisplaySize(0, 0)
	if got := s.CanvasPoint(150, 100); got != (Vec2{150, 100}) {
		t.Errorf("unscaled CanvasPoint = %v", got)
	}
}

func TestSurfaceStrokeLifecycle(t *testing.T) {
	r := NewSoftRaster(100, 100)
	s := NewStrokeSurface(r, nil, SurfaceConfig{})
	var got []Stroke
	s.OnStroke = func(st Stroke) { got = append(got, st) }

	s.Begin(10, 10)
	if !s.IsDrawing() {
		t.Fatal("Begin should open a stroke")
	}
	s.Extend(50, 10)
	s.Extend(50, 50)
	s.End()

	if s.IsDrawing() {
		t.Error("End should close the stroke")
	}
	if s.Strokes() != 1 || len(got) != 1 {
		t.Fatalf("committed %d strokes (%d reported), want 1", s.Strokes(), len(got))
	}
	st := got[0]
	if len(st.Points) != 3 || st.Mode != BrushPaint || st.Width != DefaultBrushWidth {
		t.Errorf("stroke = %+v", st)
	}
	if alphaAt(r, 30, 10) == 0 || alphaAt(r, 50, 30) == 0 {
		t.Error("segments were not painted")
	}
}

func TestSurfaceExtendWhileIdle(t *testing.T) {
	r := NewSoftRaster(50, 50)
	s := NewStrokeSurface(r, nil, SurfaceConfig{})

	s.Extend(10, 10)
	s.Extend(40, 40)
	if !blank(r) {
		t.Fatal("Extend before Begin painted")
	}

	s.Begin(5, 5)
	s.Extend(10, 5)
	s.End()
	r.Clear()
	s.Extend(40, 40)
	s.End()
	if !blank(r) {
		t.Error("Extend after End painted")
	}
	if s.Strokes() != 1 {
		t.Errorf("Strokes = %d, want 1", s.Strokes())
	}
}

func TestSurfaceEmptyStrokeNotCommitted(t *testing.T) {
	s := NewStrokeSurface(NewSoftRaster(50, 50), nil, SurfaceConfig{})
	s.Begin(5, 5)
	s.End()
	s.End()
	if s.Strokes() != 0 {
		t.Errorf("Strokes = %d, want 0", s.Strokes())
	}
}

func TestSurfaceBeginWhileDrawingEndsPrevious(t *testing.T) {
	s := NewStrokeSurface(NewSoftRaster(50, 50), nil, SurfaceConfig{})
	s.Begin(5, 5)
	s.Extend(20, 5)
	s.Begin(5, 30)
	if s.Strokes() != 1 {
		t.Errorf("Strokes = %d, want 1 after re-Begin", s.Strokes())
	}
	s.Extend(20, 30)
	s.Release()
	if s.Strokes() != 2 || s.IsDrawing() {
		t.Errorf("Strokes = %d drawing=%v after Release", s.Strokes(), s.IsDrawing())
	}
}

func TestSurfaceBrushReadAtPaintTime(t *testing.T) {
	r := NewSoftRaster(100, 100)
	brush := &Brush{Color: Color{0, 0, 1, 0.2}, Width: 4}
	s := NewStrokeSurface(r, nil, SurfaceConfig{Brush: brush})

	s.Begin(10, 20)
	s.Extend(40, 20)
	brush.Color = Color{1, 0, 0, 1}
	s.Extend(70, 20)
	s.End()

	if got := r.Snapshot().NRGBAAt(25, 20); got.B != 255 || got.A != 255 {
		t.Errorf("first segment = %v, want opaque blue", got)
	}
	if got := r.Snapshot().NRGBAAt(60, 20); got.R != 255 || got.B != 0 {
		t.Errorf("second segment = %v, want red", got)
	}
}

func TestSurfaceEraseDoublesWidth(t *testing.T) {
	r := NewSoftRaster(100, 100)
	s := NewStrokeSurface(r, nil, SurfaceConfig{Brush: &Brush{Color: ColorBlack, Width: 20}})
	s.Begin(0, 50)
	s.Extend(100, 50)
	s.End()

	s.Brush().Erase = true
	s.Brush().Width = 5
	s.Begin(30, 50)
	s.Extend(70, 50)
	s.End()

	// Erase band is 10px wide: rows 45..55 clear, row 58 still painted.
	if a := alphaAt(r, 50, 53); a != 0 {
		t.Errorf("alpha at 3px from centre = %d, want 0", a)
	}
	if a := alphaAt(r, 50, 58); a != 255 {
		t.Errorf("alpha at 8px from centre = %d, want 255", a)
	}
}

func TestSurfaceClear(t *testing.T) {
	r := NewSoftRaster(50, 50)
	fb := &recordingFeedback{}
	var events []Event
	s := NewStrokeSurface(r, fb, SurfaceConfig{Sink: EventFunc(func(e Event) { events = append(events, e) })})

	s.Begin(5, 5)
	s.Extend(45, 45)
	s.End()
	s.Clear()

	if !blank(r) {
		t.Error("Clear left pixels behind")
	}
	if len(fb.played) != 1 || len(fb.played[0]) != len(ClearEffect) {
		t.Errorf("Clear played %v, want the clear effect", fb.played)
	}
	if len(events) != 2 || events[0].Type != EventStrokeCommitted || events[1].Type != EventSurfaceCleared {
		t.Errorf("events = %+v", events)
	}
}

func TestSurfaceWithoutRaster(t *testing.T) {
	s := NewStrokeSurface(nil, nil, SurfaceConfig{})
	s.Begin(1, 1)
	s.Extend(2, 2)
	s.End()
	s.Clear()
	if s.IsDrawing() || s.Strokes() != 0 {
		t.Error("surface without raster should ignore drawing")
	}
	if s.Snapshot() != nil {
		t.Error("Snapshot without raster should be nil")
	}
}

func TestSurfacePointerTarget(t *testing.T) {
	s := NewStrokeSurface(NewSoftRaster(50, 50), nil, SurfaceConfig{})
	var target PointerTarget = s
	target.PointerDown(1, 1)
	target.PointerMove(10, 10)
	target.PointerLeave()
	target.PointerMove(20, 20)
	target.PointerUp(20, 20)
	if s.Strokes() != 1 {
		t.Errorf("Strokes = %d, want 1", s.Strokes())
	}
}

func TestSurfaceStrokeRecordsPaintedBrush(t *testing.T) {
	brush := &Brush{Color: ColorSkyBlue, Width: 0}
	s := NewStrokeSurface(NewSoftRaster(100, 100), nil, SurfaceConfig{Brush: brush})
	var got []Stroke
	s.OnStroke = func(st Stroke) { got = append(got, st) }

	s.Begin(10, 10)
	s.Extend(30, 10)
	s.End()

	s.Begin(10, 50)
	s.Extend(30, 50)
	brush.Width = 6
	brush.Erase = true
	s.Extend(50, 50)
	s.End()

	if len(got) != 2 {
		t.Fatalf("committed %d strokes, want 2", len(got))
	}
	if got[0].Width != DefaultBrushWidth || got[0].Mode != BrushPaint {
		t.Errorf("zero-width brush stroke = width %v mode %v", got[0].Width, got[0].Mode)
	}
	if got[1].Width != 12 || got[1].Mode != BrushErase {
		t.Errorf("changed brush stroke = width %v mode %v, want 12 erase", got[1].Width, got[1].Mode)
	}
}
