package svgeom

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

// Matrix is used for affine transformations. Be aware that concatenating transformation function will be evaluated right-to-left! So in Identity.Rotate(30).Translate(20,0) will first translate 20 points horizontally and then rotate 30 degrees counter clockwise.
type Matrix [2][3]float64

// Identity is the identity affine transformation.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// Mul multiplies the matrices, ie. q is applied before m.
func (m Matrix) Mul(q Matrix) Matrix {
	return Matrix{{
		m[0][0]*q[0][0] + m[0][1]*q[1][0],
		m[0][0]*q[0][1] + m[0][1]*q[1][1],
		m[0][0]*q[0][2] + m[0][1]*q[1][2] + m[0][2],
	}, {
		m[1][0]*q[0][0] + m[1][1]*q[1][0],
		m[1][0]*q[0][1] + m[1][1]*q[1][1],
		m[1][0]*q[0][2] + m[1][1]*q[1][2] + m[1][2],
	}}
}

// Dot transforms the point.
func (m Matrix) Dot(p Point) Point {
	return Point{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2],
	}
}

func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Rotate rotates by rot degrees CCW.
func (m Matrix) Rotate(rot float64) Matrix {
	sintheta, costheta := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		{costheta, -sintheta, 0.0},
		{sintheta, costheta, 0.0},
	})
}

// RotateAt rotates by rot degrees CCW around (x,y).
func (m Matrix) RotateAt(rot, x, y float64) Matrix {
	return m.Translate(x, y).Rotate(rot).Translate(-x, -y)
}

func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

// Shear shears by the given tangents in x and y.
func (m Matrix) Shear(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, x, 0.0},
		{y, 1.0, 0.0},
	})
}

func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inv returns the inverse. It returns false for singular matrices.
func (m Matrix) Inv() (Matrix, bool) {
	det := m.Det()
	if equal(det, 0.0) {
		return Identity, false
	}
	return Matrix{{
		m[1][1] / det,
		-m[0][1] / det,
		-(m[1][1]*m[0][2] - m[0][1]*m[1][2]) / det,
	}, {
		-m[1][0] / det,
		m[0][0] / det,
		-(-m[1][0]*m[0][2] + m[0][0]*m[1][2]) / det,
	}}, true
}

// IsIdentity returns true if m is the identity within tolerance Epsilon.
func (m Matrix) IsIdentity() bool {
	return equal(m[0][0], 1.0) && equal(m[0][1], 0.0) && equal(m[0][2], 0.0) &&
		equal(m[1][0], 0.0) && equal(m[1][1], 1.0) && equal(m[1][2], 0.0)
}

// Flip reports whether the transformation mirrors, which reverses the winding of polygons.
func (m Matrix) Flip() bool {
	return m.Det() < 0.0
}

// TransformPoints transforms points in-place.
func (m Matrix) TransformPoints(points []Point) {
	for i, p := range points {
		points[i] = m.Dot(p)
	}
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g, %g, %g; %g, %g, %g; 0, 0, 1]", m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])
}

////////////////////////////////////////////////////////////////

// TransformStack composes the transforms of nested groups.
type TransformStack struct {
	ms []Matrix
}

// Push composes m with the current transform.
func (s *TransformStack) Push(m Matrix) {
	s.ms = append(s.ms, s.Top().Mul(m))
}

// Pop restores the transform before the last Push.
func (s *TransformStack) Pop() {
	if 0 < len(s.ms) {
		s.ms = s.ms[:len(s.ms)-1]
	}
}

// Top returns the composed transform, Identity for an empty stack.
func (s *TransformStack) Top() Matrix {
	if len(s.ms) == 0 {
		return Identity
	}
	return s.ms[len(s.ms)-1]
}

////////////////////////////////////////////////////////////////

// ParseTransform parses an SVG transform list such as "translate(10,5) rotate(45)". Transforms are
// applied right-to-left, as they are for nested elements.
func ParseTransform(s string) (Matrix, error) {
	b := []byte(s)
	m := Identity
	i := skipCommaWhitespace(b)
	for i < len(b) {
		start := i
		for i < len(b) && ('a' <= b[i] && b[i] <= 'z' || 'A' <= b[i] && b[i] <= 'Z') {
			i++
		}
		name := string(b[start:i])
		i += skipWhitespace(b[i:])
		if i == len(b) || b[i] != '(' {
			return Identity, fmt.Errorf("%w: expected '(' after %q at position %d", ErrInvalidTransform, name, i)
		}
		i++

		var args []float64
		for {
			i += skipCommaWhitespace(b[i:])
			if i == len(b) {
				return Identity, fmt.Errorf("%w: unterminated %s", ErrInvalidTransform, name)
			} else if b[i] == ')' {
				i++
				break
			}
			f, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				return Identity, fmt.Errorf("%w: bad number in %s at position %d", ErrInvalidTransform, name, i)
			}
			args = append(args, f)
			i += n
		}

		switch {
		case name == "matrix" && len(args) == 6:
			m = m.Mul(Matrix{{args[0], args[2], args[4]}, {args[1], args[3], args[5]}})
		case name == "translate" && len(args) == 1:
			m = m.Translate(args[0], 0.0)
		case name == "translate" && len(args) == 2:
			m = m.Translate(args[0], args[1])
		case name == "scale" && len(args) == 1:
			m = m.Scale(args[0], args[0])
		case name == "scale" && len(args) == 2:
			m = m.Scale(args[0], args[1])
		case name == "rotate" && len(args) == 1:
			m = m.Rotate(args[0])
		case name == "rotate" && len(args) == 3:
			m = m.RotateAt(args[0], args[1], args[2])
		case name == "skewX" && len(args) == 1:
			m = m.Shear(math.Tan(args[0]*math.Pi/180.0), 0.0)
		case name == "skewY" && len(args) == 1:
			m = m.Shear(0.0, math.Tan(args[0]*math.Pi/180.0))
		default:
			return Identity, fmt.Errorf("%w: %s with %d arguments", ErrInvalidTransform, name, len(args))
		}
		i += skipCommaWhitespace(b[i:])
	}
	return m, nil
}
