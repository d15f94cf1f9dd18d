package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/shandysiswandi/govis/internal/visual/entity"
)

var (
	ErrUnknownEngine     = errors.New("unknown render engine")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

const (
	EngineGonum   = "gonum"
	EngineGoChart = "gochart"
)

// Engine draws built charts with the plotting library picked by New.
type Engine struct {
	name string
	draw func(w io.Writer, c entity.Chart, f entity.OutputFormat) error
}

// New returns the engine named by engine sized in pixels. An empty engine
// selects gonum.
func New(engine string, width, height int) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", width, height)
	}

	switch engine {
	case "", EngineGonum:
		g := &Gonum{width: width, height: height}
		return &Engine{name: EngineGonum, draw: g.Render}, nil
	case EngineGoChart:
		g := &GoChart{width: width, height: height}
		return &Engine{name: EngineGoChart, draw: g.Render}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

func (e *Engine) Name() string { return e.name }

// Render writes c to w as f.
func (e *Engine) Render(w io.Writer, c entity.Chart, f entity.OutputFormat) error {
	return e.draw(w, c, f)
}

func checkFormat(f entity.OutputFormat) error {
	if f != entity.OutputPNG && f != entity.OutputSVG {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return nil
}
