package outline

import (
	"fmt"

	iface "MaskOutlineServer/interface"
)

// Outline runs the whole pipeline on one mask: normalize, pad, trace,
// simplify, deduplicate, synthesize. It holds no state between calls
// and is safe to invoke concurrently on independent masks. An
// all-background mask short-circuits to an empty result, not an error.
func Outline(spec iface.MaskSpec, opts iface.Options) (iface.PathResult, error) {
	mask, err := Normalize(spec, opts.Threshold)
	if err != nil {
		return iface.PathResult{}, err
	}
	if mask.Empty() {
		return Synthesize(nil, opts.CurveType), nil
	}
	raw := TraceBoundaries(mask.PadEdges())
	simplified := make([]Contour, len(raw))
	for i, c := range raw {
		simplified[i] = Simplify(c, opts.SimplifyTolerance)
	}
	survivors := Deduplicate(simplified, opts.OverlapThreshold, opts.KeepUnpaired)
	return Synthesize(survivors, opts.CurveType), nil
}

// Engine wraps the pipeline behind the worker lifecycle the servers
// drive: New, Configure, Process, CheckConfig, Destroy.
type Engine struct {
	opts         iface.Options
	State        int
	ErrorMessage string
}

func (e *Engine) New() bool {
	e.State = REGISTERED
	return true
}

// Configure validates the options and fills zero-valued fields from the
// defaults, then moves the engine to IDLE.
func (e *Engine) Configure(opts iface.Options) error {
	def := iface.DefaultOptions()
	if opts.Threshold == 0 {
		opts.Threshold = def.Threshold
	}
	if opts.CurveType == "" {
		opts.CurveType = def.CurveType
	}
	if opts.SimplifyTolerance == 0 {
		opts.SimplifyTolerance = def.SimplifyTolerance
	}
	if opts.OverlapThreshold == 0 {
		opts.OverlapThreshold = def.OverlapThreshold
	}
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return fmt.Errorf("threshold must be between 0.0 and 1.0, got %f", opts.Threshold)
	}
	if opts.OverlapThreshold < 0 || opts.OverlapThreshold > 1 {
		return fmt.Errorf("overlap threshold must be between 0.0 and 1.0, got %f", opts.OverlapThreshold)
	}
	if opts.SimplifyTolerance < 0 {
		return fmt.Errorf("simplify tolerance must not be negative, got %f", opts.SimplifyTolerance)
	}
	if opts.CurveType != iface.CurveStraight && opts.CurveType != iface.CurveQuadratic {
		return fmt.Errorf("unsupported curve type: %s", opts.CurveType)
	}
	e.opts = opts
	e.State = IDLE
	return nil
}

func (e *Engine) CheckConfig() iface.EngineConfig {
	return iface.EngineConfig{
		Threshold:         e.opts.Threshold,
		CurveType:         e.opts.CurveType,
		SimplifyTolerance: e.opts.SimplifyTolerance,
		OverlapThreshold:  e.opts.OverlapThreshold,
		KeepUnpaired:      e.opts.KeepUnpaired,
	}
}

func (e *Engine) Destroy() {
	e.opts = iface.Options{}
	e.ErrorMessage = ""
	e.State = UNREGISTERED
}

// Process turns one mask into a path result. Shape errors come back as
// RetData{Success: false}; a frame with no foreground is a normal empty
// result, never a failure.
func (e *Engine) Process(spec iface.MaskSpec) iface.RetData {
	switch e.State {
	case UNREGISTERED:
		return iface.RetData{Success: false, Data: "Engine not registered"}
	case REGISTERED:
		return iface.RetData{Success: false, Data: "Engine not configured"}
	case BUSY:
		return iface.RetData{Success: false, Data: "Engine is busy"}
	}
	e.State = BUSY
	result, err := Outline(spec, e.opts)
	if err != nil {
		e.ErrorMessage = err.Error()
		e.State = IDLE
		return iface.RetData{Success: false, Data: err.Error()}
	}
	e.State = IDLE
	return iface.RetData{Success: true, Data: result}
}
