package playroom

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// DrawingFileName is the default name of a saved drawing.
const DrawingFileName = "my-drawing.png"

// ErrNoRaster is returned when exporting a surface that has no raster.
var ErrNoRaster = errors.New("playroom: surface has no raster")

// Snapshot returns the current surface content, or nil without a raster.
func (s *StrokeSurface) Snapshot() *image.NRGBA {
	if s.raster == nil {
		return nil
	}
	return s.raster.Snapshot()
}

// Export writes the surface content to w as a PNG.
func (s *StrokeSurface) Export(w io.Writer) error {
	img := s.Snapshot()
	if img == nil {
		return ErrNoRaster
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	return nil
}

// ExportFile saves the surface as DrawingFileName inside dir, creating dir if
// needed, and returns the written path.
func (s *StrokeSurface) ExportFile(dir string) (string, error) {
	img := s.Snapshot()
	if img == nil {
		return "", ErrNoRaster
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: mkdir %s: %w", dir, err)
	}
	path := filepath.Join(dir, DrawingFileName)
	if err := writePNG(path, img); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	logger().Info("drawing saved", "path", path)
	return path, nil
}

// ExportPDF writes the surface as a single A4 page with the drawing scaled to
// the printable width and an optional title above it.
func (s *StrokeSurface) ExportPDF(w io.Writer, title string) error {
	img := s.Snapshot()
	if img == nil {
		return ErrNoRaster
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("export pdf: encode png: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	const margin, pageWidth = 15.0, 210.0
	top := margin
	if title = strings.TrimSpace(title); title != "" {
		pdf.SetFont("Helvetica", "B", 20)
		pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
		top += 16
	}

	name := sanitizeLabel(title)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, margin, top, pageWidth-2*margin, 0, false, opts, 0, "")
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	return nil
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in names with
// underscores and falls back to "drawing" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "drawing"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
