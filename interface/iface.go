package iface

import "fmt"

// MaskSpec is the tagged input contract for the outline engine: grid
// dimensions plus a flat row-major array of per-pixel values. Values are
// expected to be binary (0/1) or normalized probabilities in [0,1]; any
// channel extraction from encoded images happens in the source package
// before a MaskSpec is built.
type MaskSpec struct {
	Width  int       `json:"width"`
	Height int       `json:"height"`
	Data   []float64 `json:"data"`
}

type CurveType string

const (
	CurveStraight  CurveType = "straight"
	CurveQuadratic CurveType = "quadratic"
)

// Options configures one engine instance. Zero-valued fields are filled
// from DefaultOptions when the engine is configured.
type Options struct {
	Threshold         float64   `json:"threshold"`
	CurveType         CurveType `json:"curveType"`
	SimplifyTolerance float64   `json:"simplifyTolerance"`
	OverlapThreshold  float64   `json:"overlapThreshold"`
	KeepUnpaired      bool      `json:"keepUnpaired"`
}

func DefaultOptions() Options {
	return Options{
		Threshold:         0.5,
		CurveType:         CurveQuadratic,
		SimplifyTolerance: 2,
		OverlapThreshold:  0.7,
	}
}

type RetData struct {
	Success bool
	Data    any
}

// PathOp is a path drawing operation type.
type PathOp int

const (
	PathMoveTo PathOp = iota // start subpath at (x, y)
	PathLineTo               // line to (x, y)
	PathQuadTo               // quadratic curve to (x2, y2) via control (x1, y1)
	PathClose                // close subpath back to its start
)

func (o PathOp) String() string {
	switch o {
	case PathMoveTo:
		return "move_to"
	case PathLineTo:
		return "line_to"
	case PathQuadTo:
		return "quad_to"
	case PathClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathCommand is a single path operation with its coordinate arguments.
// MoveTo/LineTo carry [x, y], QuadTo carries [x1, y1, x2, y2], Close none.
type PathCommand struct {
	Op   PathOp    `json:"op"`
	Args []float64 `json:"args,omitempty"`
}

// PathResult is the sole output artifact of the pipeline: the structured
// command stream plus its SVG path-data rendering. It owns no reference
// back to the mask it was derived from.
type PathResult struct {
	Path     string        `json:"path"`
	Commands []PathCommand `json:"commands"`
	Contours int           `json:"contours"`
}

type EngineConfig struct {
	Threshold         float64
	CurveType         CurveType
	SimplifyTolerance float64
	OverlapThreshold  float64
	KeepUnpaired      bool
}

// Backend is the engine lifecycle every outline worker implements.
type Backend interface {
	Configure(opts Options) error
	Process(spec MaskSpec) RetData
	CheckConfig() EngineConfig
	Destroy()
}

// Source is the segmentation-source collaborator: whatever acquires
// frames and runs the person-segmentation model must deliver masks in
// the normalizer's accepted shape through this interface.
type Source interface {
	NextMask() (MaskSpec, error)
}
