package assets

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/vellobench/internal/raster"
)

// parsePath parses the absolute-command subset of SVG path syntax the asset
// files use: M, L, Q, C and Z, with coordinates separated by spaces or
// commas.
func parsePath(d string) (*raster.Path, error) {
	p := &raster.Path{}
	i := 0

	skip := func() {
		for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\t' || d[i] == '\n') {
			i++
		}
	}

	number := func() (float64, error) {
		skip()
		start := i
		if i < len(d) && (d[i] == '-' || d[i] == '+') {
			i++
		}
		for i < len(d) && (d[i] >= '0' && d[i] <= '9' || d[i] == '.') {
			i++
		}
		if i == start {
			return 0, fmt.Errorf("expected number at offset %d", start)
		}
		return strconv.ParseFloat(d[start:i], 64)
	}

	numbers := func(n int, out []float64) error {
		for j := 0; j < n; j++ {
			v, err := number()
			if err != nil {
				return err
			}
			out[j] = v
		}
		return nil
	}

	var buf [6]float64
	for {
		skip()
		if i >= len(d) {
			return p, nil
		}
		cmd := d[i]
		i++
		switch cmd {
		case 'M':
			if err := numbers(2, buf[:]); err != nil {
				return nil, err
			}
			p.MoveTo(buf[0], buf[1])
		case 'L':
			if err := numbers(2, buf[:]); err != nil {
				return nil, err
			}
			p.LineTo(buf[0], buf[1])
		case 'Q':
			if err := numbers(4, buf[:]); err != nil {
				return nil, err
			}
			p.QuadTo(buf[0], buf[1], buf[2], buf[3])
		case 'C':
			if err := numbers(6, buf[:]); err != nil {
				return nil, err
			}
			p.CubicTo(buf[0], buf[1], buf[2], buf[3], buf[4], buf[5])
		case 'Z', 'z':
			p.Close()
		default:
			return nil, fmt.Errorf("unsupported path command %q at offset %d", cmd, i-1)
		}
	}
}
