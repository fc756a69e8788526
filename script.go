package playroom

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmptyScript is returned by LoadScript for a script without steps.
var ErrEmptyScript = errors.New("playroom: script has no steps")

// scriptStep is a single action in a session script.
type scriptStep struct {
	Action string  `json:"action"`
	Game   string  `json:"game,omitempty"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Color  string  `json:"color,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Erase  *bool   `json:"erase,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a recorded session one step per frame: navigation,
// synthetic pointer input, waits, brush changes, clears and exports. Attach
// it to a Shell with SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool

	// ExportDir is where "export" steps save the drawing.
	ExportDir string
	// Exported lists the files written by export steps.
	Exported []string
}

// LoadScript parses a JSON session script.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range sc.Steps {
		if st.Action == "enter" {
			if _, ok := ParseGame(st.Game); !ok {
				return nil, fmt.Errorf("parse script: step %d: unknown game %q", i, st.Game)
			}
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step is taken at the start of every
// Update, before pointer input is processed.
func (s *Shell) SetScriptRunner(r *ScriptRunner) {
	s.script = r
}

// Done reports whether every step has run.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(s *Shell) {
	if r.done {
		return
	}
	// Let pending injections drain first.
	if s.pointer.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.finish(s)
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "enter":
		g, _ := ParseGame(st.Game)
		s.Navigate(g)
	case "tap":
		s.pointer.InjectClick(st.X, st.Y)
	case "drag":
		s.pointer.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "clear":
		s.surface.Clear()
	case "brush":
		applyBrushStep(s.surface.Brush(), st)
	case "export":
		path, err := s.surface.ExportFile(r.ExportDir)
		if err != nil {
			logger().Warn("script export failed", "label", st.Label, "err", err)
			break
		}
		r.Exported = append(r.Exported, path)
	default:
		logger().Warn("unknown script action", "action", st.Action)
	}

	r.finish(s)
}

// finish marks the runner done once the last step has fully played out.
func (r *ScriptRunner) finish(s *Shell) {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && s.pointer.Pending() == 0 {
		r.done = true
	}
}

func applyBrushStep(b *Brush, st scriptStep) {
	if c, ok := parseHexColor(st.Color); ok {
		b.Color = c
	}
	if st.Width > 0 {
		b.Width = st.Width
	}
	if st.Erase != nil {
		b.Erase = *st.Erase
	}
}

// parseHexColor parses "#rrggbb" or "rrggbb".
func parseHexColor(s string) (Color, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return ColorFromHex(uint32(v)), true
}
