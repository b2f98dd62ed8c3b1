package svgeom

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func parseNum(b []byte) (float64, int) {
	i := skipCommaWhitespace(b)
	f, n := strconv.ParseFloat(b[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// parseFlag parses an arc flag, which may be written without separator before the next number.
func parseFlag(b []byte) (bool, int, bool) {
	i := skipCommaWhitespace(b)
	if i < len(b) && (b[i] == '0' || b[i] == '1') {
		return b[i] == '1', i + 1, true
	}
	return false, 0, false
}

// argCount is the number of parameters of each command.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1, 'C': 6, 'S': 4, 'Q': 4, 'T': 2, 'A': 7, 'Z': 0,
}

func upperCmd(cmd byte) (byte, bool) {
	if 'a' <= cmd && cmd <= 'z' {
		return cmd - 'a' + 'A', true
	}
	return cmd, false
}

func newSegment(cmd byte, rel bool, args []float64) Segment {
	seg := Segment{Cmd: cmd, Rel: rel}
	switch cmd {
	case 'M', 'L', 'T':
		seg.X, seg.Y = args[0], args[1]
	case 'H':
		seg.X = args[0]
	case 'V':
		seg.Y = args[0]
	case 'C':
		seg.X1, seg.Y1, seg.X2, seg.Y2, seg.X, seg.Y = args[0], args[1], args[2], args[3], args[4], args[5]
	case 'S':
		seg.X2, seg.Y2, seg.X, seg.Y = args[0], args[1], args[2], args[3]
	case 'Q':
		seg.X1, seg.Y1, seg.X, seg.Y = args[0], args[1], args[2], args[3]
	case 'A':
		seg.RX, seg.RY, seg.Rot = args[0], args[1], args[2]
		seg.LargeArc, seg.Sweep = args[3] == 1.0, args[4] == 1.0
		seg.X, seg.Y = args[5], args[6]
	}
	return seg
}

// ParseSVGPath parses an SVG path data string. Parameters following a command repeat that command,
// except for MoveTo whose extra coordinate pairs are LineTos.
func ParseSVGPath(d string) (Path, error) {
	path := []byte(d)
	p := Path{}

	var prevCmd byte
	args := make([]float64, 7)
	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := prevCmd
		if c := path[i]; 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' {
			cmd = c
			i++
		} else if prevCmd == 0 {
			return nil, fmt.Errorf("%w: expected command at position %d", ErrInvalidPath, i)
		}

		upper, rel := upperCmd(cmd)
		n, ok := argCount[upper]
		if !ok {
			return nil, fmt.Errorf("%w: unknown command '%c' at position %d", ErrInvalidPath, cmd, i-1)
		}
		for j := 0; j < n; j++ {
			if upper == 'A' && (j == 3 || j == 4) {
				f, m, ok := parseFlag(path[i:])
				if !ok {
					return nil, fmt.Errorf("%w: invalid arc flag at position %d", ErrInvalidPath, i)
				}
				args[j] = flag(f)
				i += m
				continue
			}
			f, m := parseNum(path[i:])
			if m == 0 {
				return nil, fmt.Errorf("%w: missing argument for '%c' at position %d", ErrInvalidPath, cmd, i)
			}
			args[j] = f
			i += m
		}
		p = append(p, newSegment(upper, rel, args))

		prevCmd = cmd
		if upper == 'M' {
			prevCmd = cmd + 'L' - 'M'
		} else if upper == 'Z' {
			prevCmd = 0
		}
		i += skipCommaWhitespace(path[i:])
	}
	return p, nil
}

// MustParseSVGPath is like ParseSVGPath but panics on error.
func MustParseSVGPath(d string) Path {
	p, err := ParseSVGPath(d)
	if err != nil {
		panic(err)
	}
	return p
}

// Command is a pre-tokenized path command, ie. its command letter and a group of parameters that
// may hold several repetitions of the command.
type Command struct {
	Cmd    byte
	Params []float64
}

// NewPathFromCommands builds a path from pre-tokenized commands, following the same repetition
// rules as ParseSVGPath.
func NewPathFromCommands(cmds []Command) (Path, error) {
	p := Path{}
	for k, c := range cmds {
		upper, rel := upperCmd(c.Cmd)
		n, ok := argCount[upper]
		if !ok {
			return nil, fmt.Errorf("%w: unknown command '%c' in command %d", ErrInvalidPath, c.Cmd, k)
		}
		if n == 0 {
			if len(c.Params) != 0 {
				return nil, fmt.Errorf("%w: close path takes no arguments in command %d", ErrInvalidPath, k)
			}
			p = append(p, newSegment(upper, rel, nil))
			continue
		}
		if len(c.Params) == 0 || len(c.Params)%n != 0 {
			return nil, fmt.Errorf("%w: expected a multiple of %d arguments for '%c' in command %d, got %d", ErrInvalidPath, n, c.Cmd, k, len(c.Params))
		}
		for j := 0; j < len(c.Params); j += n {
			args := c.Params[j : j+n]
			if upper == 'A' && (!isFlag(args[3]) || !isFlag(args[4])) {
				return nil, fmt.Errorf("%w: invalid arc flag in command %d", ErrInvalidPath, k)
			}
			cmd := upper
			if upper == 'M' && j != 0 {
				cmd = 'L'
			}
			p = append(p, newSegment(cmd, rel, args))
		}
	}
	return p, nil
}

func isFlag(f float64) bool {
	return f == 0.0 || f == 1.0
}
