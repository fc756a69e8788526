package playroom

// DefaultBrushWidth is the stroke width used when a brush has none.
const DefaultBrushWidth = 8.0

// Brush is the caller-owned drawing configuration. The surface reads it each
// time it paints, so toolbar changes apply to the very next segment.
type Brush struct {
	Color Color
	Width float64
	Erase bool
}

// DefaultBrush returns a black brush of DefaultBrushWidth.
func DefaultBrush() *Brush {
	return &Brush{Color: ColorBlack, Width: DefaultBrushWidth}
}

// Mode returns the brush mode.
func (b *Brush) Mode() BrushMode {
	if b.Erase {
		return BrushErase
	}
	return BrushPaint
}

// Stroke describes one committed pointer stroke in canvas space. Only its
// pixels persist on the raster; the surface hands strokes to OnStroke and
// forgets them. Color, Width and Mode are the ones the last segment was
// painted with.
type Stroke struct {
	Points []Vec2
	Color  Color
	Width  float64 // painted width, doubled when erasing
	Mode   BrushMode
}

// paint resolves the brush into what a segment is actually drawn with.
func (b *Brush) paint() (width float64, c Color, mode BrushMode) {
	width = b.Width
	if width <= 0 {
		width = DefaultBrushWidth
	}
	mode = b.Mode()
	if mode == BrushErase {
		width *= 2
	}
	return width, b.Color.Opaque(), mode
}

// PointerTarget receives element-relative pointer events from a PointerRouter.
type PointerTarget interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64)
	PointerLeave()
}

// SurfaceConfig configures a StrokeSurface. The zero value is usable.
type SurfaceConfig struct {
	// DisplayWidth and DisplayHeight are the on-screen size of the surface.
	// Zero means the surface is shown at its backing resolution.
	DisplayWidth, DisplayHeight float64
	// Brush is shared with the caller. Nil selects DefaultBrush.
	Brush *Brush
	// Sink receives stroke and clear events. Optional.
	Sink EventSink
}

// StrokeSurface turns pointer motion into persistent strokes on a Raster.
// It is idle until Begin and drawing until End; Extend paints only while
// drawing. A surface without a raster accepts every call and draws nothing.
type StrokeSurface struct {
	raster   Raster
	feedback Feedback
	brush    *Brush
	display  Vec2
	sink     EventSink

	drawing  bool
	current  Stroke
	segments int
	strokes  int

	// OnStroke is called with every committed stroke.
	OnStroke func(Stroke)
}

// NewStrokeSurface creates an idle surface painting into raster. Feedback may
// be nil for a silent surface.
func NewStrokeSurface(raster Raster, feedback Feedback, cfg SurfaceConfig) *StrokeSurface {
	s := &StrokeSurface{
		raster:   raster,
		feedback: feedback,
		brush:    cfg.Brush,
		display:  Vec2{cfg.DisplayWidth, cfg.DisplayHeight},
		sink:     cfg.Sink,
	}
	if s.brush == nil {
		s.brush = DefaultBrush()
	}
	if raster == nil {
		logger().Debug("stroke surface has no raster, drawing disabled")
	}
	return s
}

// Raster returns the backing raster, possibly nil.
func (s *StrokeSurface) Raster() Raster {
	return s.raster
}

// Brush returns the brush the surface paints with.
func (s *StrokeSurface) Brush() *Brush {
	return s.brush
}

// SetBrush replaces the brush. A nil brush restores DefaultBrush.
func (s *StrokeSurface) SetBrush(b *Brush) {
	if b == nil {
		b = DefaultBrush()
	}
	s.brush = b
}

// SetDisplaySize records the on-screen size used to map pointer coordinates
// onto the raster.
func (s *StrokeSurface) SetDisplaySize(w, h float64) {
	s.display = Vec2{w, h}
}

// SetEventSink sets the optional event bridge.
func (s *StrokeSurface) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetFeedback replaces the tone target, e.g. with the scope of the game the
// surface now belongs to.
func (s *StrokeSurface) SetFeedback(f Feedback) {
	s.feedback = f
}

// IsDrawing reports whether a stroke is open.
func (s *StrokeSurface) IsDrawing() bool {
	return s.drawing
}

// Strokes returns the number of committed strokes since creation.
func (s *StrokeSurface) Strokes() int {
	return s.strokes
}

// CanvasPoint maps element-relative pointer coordinates to raster pixels by
// scaling each axis by backing/displayed size.
func (s *StrokeSurface) CanvasPoint(x, y float64) Vec2 {
	if s.raster == nil {
		return Vec2{x, y}
	}
	w, h := s.raster.Size()
	if s.display.X > 0 {
		x *= float64(w) / s.display.X
	}
	if s.display.Y > 0 {
		y *= float64(h) / s.display.Y
	}
	return Vec2{x, y}
}

// Begin opens a stroke at the pointer position. An open stroke is ended first.
func (s *StrokeSurface) Begin(x, y float64) {
	if s.raster == nil {
		return
	}
	if s.drawing {
		s.End()
	}
	width, c, mode := s.brush.paint()
	s.drawing = true
	s.segments = 0
	s.current = Stroke{
		Points: []Vec2{s.CanvasPoint(x, y)},
		Color:  c,
		Width:  width,
		Mode:   mode,
	}
}

// Extend paints the segment from the last point to the pointer position with
// the current brush. Erasing clears a band twice the brush width. Ignored while
// idle.
func (s *StrokeSurface) Extend(x, y float64) {
	if !s.drawing {
		return
	}
	p := s.CanvasPoint(x, y)
	prev := s.current.Points[len(s.current.Points)-1]

	width, c, mode := s.brush.paint()
	s.raster.StrokeSegment(prev, p, width, c, mode)

	s.current.Points = append(s.current.Points, p)
	s.current.Color, s.current.Width, s.current.Mode = c, width, mode
	s.segments++
}

// End closes the open stroke. A stroke with at least one painted segment is
// committed. No-op while idle.
func (s *StrokeSurface) End() {
	if !s.drawing {
		return
	}
	s.drawing = false
	st := s.current
	s.current = Stroke{}
	if s.segments == 0 {
		return
	}
	s.strokes++
	if s.OnStroke != nil {
		s.OnStroke(st)
	}
	last := st.Points[len(st.Points)-1]
	emit(s.sink, Event{Type: EventStrokeCommitted, X: last.X, Y: last.Y, Stroke: len(st.Points)})
}

// Release ends any open stroke. Called when the pointer capture is lost, for
// example when the player leaves the drawing game mid-stroke.
func (s *StrokeSurface) Release() {
	s.End()
}

// Clear irreversibly erases the whole surface and plays a short tone. An open
// stroke stays open and continues from its last point.
func (s *StrokeSurface) Clear() {
	if s.raster != nil {
		s.raster.Clear()
	}
	if s.feedback != nil {
		s.feedback.PlaySequence(ClearEffect)
	}
	logger().Debug("surface cleared", "strokes", s.strokes)
	emit(s.sink, Event{Type: EventSurfaceCleared})
}

// PointerDown implements PointerTarget.
func (s *StrokeSurface) PointerDown(x, y float64) { s.Begin(x, y) }

// PointerMove implements PointerTarget.
func (s *StrokeSurface) PointerMove(x, y float64) { s.Extend(x, y) }

// PointerUp implements PointerTarget.
func (s *StrokeSurface) PointerUp(x, y float64) { s.End() }

// PointerLeave implements PointerTarget.
func (s *StrokeSurface) PointerLeave() { s.End() }
