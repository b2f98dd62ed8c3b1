package svgeom

import (
	"strconv"
	"strings"
)

// Segment is one SVG path command with its literal parameters. Cmd is the upper case command
// letter (M, L, H, V, C, S, Q, T, A or Z) and Rel is set for the lower case relative form.
// Which fields are used depends on the command:
//
//	M, L, T: X, Y
//	H: X
//	V: Y
//	C: X1, Y1, X2, Y2, X, Y
//	S: X2, Y2, X, Y
//	Q: X1, Y1, X, Y
//	A: RX, RY, Rot, LargeArc, Sweep, X, Y
type Segment struct {
	Cmd             byte
	Rel             bool
	X, Y            float64
	X1, Y1          float64
	X2, Y2          float64
	RX, RY, Rot     float64
	LargeArc, Sweep bool
}

// Path is a list of path segments as parsed from an SVG d attribute. It is not modified after parsing.
type Path []Segment

// ResolvedCmd is the command of a resolved segment.
type ResolvedCmd int

// Resolved segment commands.
const (
	MoveToCmd ResolvedCmd = iota
	LineToCmd
	QuadToCmd
	CubeToCmd
	ArcToCmd
	CloseCmd
)

func (cmd ResolvedCmd) String() string {
	switch cmd {
	case MoveToCmd:
		return "MoveTo"
	case LineToCmd:
		return "LineTo"
	case QuadToCmd:
		return "QuadTo"
	case CubeToCmd:
		return "CubeTo"
	case ArcToCmd:
		return "ArcTo"
	case CloseCmd:
		return "Close"
	}
	return "Unknown"
}

// ResolvedSegment is a segment in absolute coordinates. C1 is the control point of quadratic
// Béziers and the first control point of cubic Béziers, C2 is the second control point of cubic
// Béziers. Rot is in degrees.
type ResolvedSegment struct {
	Cmd             ResolvedCmd
	Start, End      Point
	C1, C2          Point
	RX, RY, Rot     float64
	LargeArc, Sweep bool
}

// Resolve converts the segments to absolute coordinates in a single pass. H and V carry the other
// coordinate, smooth curves reflect the last control point of a preceding curve of the same kind
// (or use the current point otherwise), and Close ends at the start of the subpath.
func (p Path) Resolve() []ResolvedSegment {
	segs := make([]ResolvedSegment, 0, len(p))

	var cur, start, ctrl Point
	var family byte // C or Q when the previous segment was a curve of that kind
	for _, seg := range p {
		abs := func(x, y float64) Point {
			if seg.Rel {
				return Point{cur.X + x, cur.Y + y}
			}
			return Point{x, y}
		}

		r := ResolvedSegment{Start: cur}
		nextFamily := byte(0)
		switch seg.Cmd {
		case 'M':
			r.Cmd = MoveToCmd
			r.End = abs(seg.X, seg.Y)
			start = r.End
		case 'L':
			r.Cmd = LineToCmd
			r.End = abs(seg.X, seg.Y)
		case 'H':
			r.Cmd = LineToCmd
			r.End = Point{seg.X, cur.Y}
			if seg.Rel {
				r.End.X += cur.X
			}
		case 'V':
			r.Cmd = LineToCmd
			r.End = Point{cur.X, seg.Y}
			if seg.Rel {
				r.End.Y += cur.Y
			}
		case 'C', 'S':
			r.Cmd = CubeToCmd
			if seg.Cmd == 'C' {
				r.C1 = abs(seg.X1, seg.Y1)
			} else if family == 'C' {
				r.C1 = cur.Mul(2.0).Sub(ctrl)
			} else {
				r.C1 = cur
			}
			r.C2 = abs(seg.X2, seg.Y2)
			r.End = abs(seg.X, seg.Y)
			ctrl = r.C2
			nextFamily = 'C'
		case 'Q', 'T':
			r.Cmd = QuadToCmd
			if seg.Cmd == 'Q' {
				r.C1 = abs(seg.X1, seg.Y1)
			} else if family == 'Q' {
				r.C1 = cur.Mul(2.0).Sub(ctrl)
			} else {
				r.C1 = cur
			}
			r.End = abs(seg.X, seg.Y)
			ctrl = r.C1
			nextFamily = 'Q'
		case 'A':
			r.Cmd = ArcToCmd
			r.RX, r.RY, r.Rot = seg.RX, seg.RY, seg.Rot
			r.LargeArc, r.Sweep = seg.LargeArc, seg.Sweep
			r.End = abs(seg.X, seg.Y)
		case 'Z':
			r.Cmd = CloseCmd
			r.End = start
		default:
			continue
		}
		segs = append(segs, r)
		cur = r.End
		family = nextFamily
	}
	return segs
}

// String returns the path as an SVG d attribute.
func (p Path) String() string {
	sb := strings.Builder{}
	for i, seg := range p {
		if i != 0 {
			sb.WriteByte(' ')
		}
		cmd := seg.Cmd
		if seg.Rel {
			cmd += 'a' - 'A'
		}
		sb.WriteByte(cmd)

		var args []float64
		switch seg.Cmd {
		case 'M', 'L', 'T':
			args = []float64{seg.X, seg.Y}
		case 'H':
			args = []float64{seg.X}
		case 'V':
			args = []float64{seg.Y}
		case 'C':
			args = []float64{seg.X1, seg.Y1, seg.X2, seg.Y2, seg.X, seg.Y}
		case 'S':
			args = []float64{seg.X2, seg.Y2, seg.X, seg.Y}
		case 'Q':
			args = []float64{seg.X1, seg.Y1, seg.X, seg.Y}
		case 'A':
			args = []float64{seg.RX, seg.RY, seg.Rot, flag(seg.LargeArc), flag(seg.Sweep), seg.X, seg.Y}
		}
		for j, arg := range args {
			if j != 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(ftos(arg))
		}
	}
	return sb.String()
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func flag(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
