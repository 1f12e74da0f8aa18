package outline

import (
	"strconv"
	"strings"

	iface "MaskOutlineServer/interface"
)

// Synthesize renders the surviving contours into a single concatenated
// path command stream. Empty input yields an empty stream. Quadratic
// smoothing needs at least three points; shorter contours fall back to
// straight segments.
func Synthesize(cs []Contour, curve iface.CurveType) iface.PathResult {
	var cmds []iface.PathCommand
	for _, c := range cs {
		if len(c) == 0 {
			continue
		}
		if curve == iface.CurveQuadratic && len(c) >= 3 {
			cmds = appendQuadratic(cmds, c)
		} else {
			cmds = appendStraight(cmds, c)
		}
	}
	return iface.PathResult{
		Path:     EncodeSVG(cmds),
		Commands: cmds,
		Contours: len(cs),
	}
}

func appendStraight(cmds []iface.PathCommand, c Contour) []iface.PathCommand {
	cmds = append(cmds, iface.PathCommand{
		Op:   iface.PathMoveTo,
		Args: []float64{float64(c[0].X), float64(c[0].Y)},
	})
	for _, p := range c[1:] {
		cmds = append(cmds, iface.PathCommand{
			Op:   iface.PathLineTo,
			Args: []float64{float64(p.X), float64(p.Y)},
		})
	}
	return append(cmds, iface.PathCommand{Op: iface.PathClose})
}

// appendQuadratic smooths the closed contour: for each point, the next
// point acts as control and the midpoint between it and the point after
// carries the curve forward, wrapping modulo the contour length.
func appendQuadratic(cmds []iface.PathCommand, c Contour) []iface.PathCommand {
	n := len(c)
	cmds = append(cmds, iface.PathCommand{
		Op:   iface.PathMoveTo,
		Args: []float64{float64(c[0].X), float64(c[0].Y)},
	})
	for i := 0; i < n; i++ {
		ctrl := c[(i+1)%n]
		next := c[(i+2)%n]
		mx := (float64(ctrl.X) + float64(next.X)) / 2
		my := (float64(ctrl.Y) + float64(next.Y)) / 2
		cmds = append(cmds, iface.PathCommand{
			Op:   iface.PathQuadTo,
			Args: []float64{float64(ctrl.X), float64(ctrl.Y), mx, my},
		})
	}
	return append(cmds, iface.PathCommand{Op: iface.PathClose})
}

// EncodeSVG serializes a command stream as SVG path data (M/L/Q/Z
// tokens), the renderer-agnostic encoding the presentation layer
// consumes.
func EncodeSVG(cmds []iface.PathCommand) string {
	var b strings.Builder
	for i, cmd := range cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch cmd.Op {
		case iface.PathMoveTo:
			b.WriteByte('M')
		case iface.PathLineTo:
			b.WriteByte('L')
		case iface.PathQuadTo:
			b.WriteByte('Q')
		case iface.PathClose:
			b.WriteByte('Z')
		}
		for _, a := range cmd.Args {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(a, 'f', -1, 64))
		}
	}
	return b.String()
}
