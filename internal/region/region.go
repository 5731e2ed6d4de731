package region

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a pixel coordinate.
type Point struct {
	X uint32
	Y uint32
}

// ParsePoint parses "<x>,<y>". Whitespace around either component is ignored.
func ParsePoint(s string) (Point, error) {
	first, second, ok := strings.Cut(s, ",")
	if !ok {
		return Point{}, &ParseError{Kind: MissingSeparator, Input: s, Token: s}
	}

	xs := strings.TrimSpace(first)
	x, err := strconv.ParseUint(xs, 10, 32)
	if err != nil {
		return Point{}, &ParseError{Kind: InvalidX, Input: s, Token: xs, Err: err}
	}

	ys := strings.TrimSpace(second)
	y, err := strconv.ParseUint(ys, 10, 32)
	if err != nil {
		return Point{}, &ParseError{Kind: InvalidY, Input: s, Token: ys, Err: err}
	}

	return Point{X: uint32(x), Y: uint32(y)}, nil
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Region is an axis-aligned rectangle with inclusive corners and an optional
// label. HasLabel distinguishes an empty label ("=0,0-1,1") from none.
//
// Regions are plain values and safe to share between goroutines.
type Region struct {
	Label    string
	HasLabel bool
	Start    Point
	End      Point
}

// Parse parses "[label=]<x1>,<y1>-<x2>,<y2>".
//
// The label is everything before the first "=". The corners are split on the
// first "-" after that and kept in textual order; an inverted rectangle parses
// successfully and is rejected later by Validate.
func Parse(s string) (Region, error) {
	var r Region
	rng := s
	if label, rest, ok := strings.Cut(s, "="); ok {
		r.Label = label
		r.HasLabel = true
		rng = rest
	}

	first, second, ok := strings.Cut(rng, "-")
	if !ok {
		return Region{}, &ParseError{Kind: MissingRangeSeparator, Input: s, Token: rng}
	}

	start, err := ParsePoint(first)
	if err != nil {
		return Region{}, fmt.Errorf("invalid region %q: %w", s, err)
	}
	end, err := ParsePoint(second)
	if err != nil {
		return Region{}, fmt.Errorf("invalid region %q: %w", s, err)
	}

	r.Start = start
	r.End = end
	return r, nil
}

// ParseAll parses every spec in order and stops at the first failure.
func ParseAll(specs []string) ([]Region, error) {
	regions := make([]Region, 0, len(specs))
	for i, spec := range specs {
		r, err := Parse(spec)
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", i+1, err)
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// String renders the region in the form accepted by Parse.
func (r Region) String() string {
	rng := r.Start.String() + "-" + r.End.String()
	if !r.HasLabel {
		return rng
	}
	return r.Label + "=" + rng
}

// Validate reports a *GeometryError of kind Inverted if End precedes Start on
// either axis.
func (r Region) Validate() error {
	if r.End.X < r.Start.X || r.End.Y < r.Start.Y {
		return &GeometryError{Kind: Inverted, Region: r}
	}
	return nil
}

// Within reports a *GeometryError of kind OutOfBounds if any pixel of the
// region falls outside a width x height image. The region must be valid.
func (r Region) Within(width, height int) error {
	for _, p := range []Point{r.Start, r.End} {
		if int64(p.X) >= int64(width) || int64(p.Y) >= int64(height) {
			return &GeometryError{
				Kind:   OutOfBounds,
				Region: r,
				X:      int(p.X),
				Y:      int(p.Y),
				Width:  width,
				Height: height,
			}
		}
	}
	return nil
}

// Width is the number of columns covered. The region must be valid.
func (r Region) Width() int { return int(r.End.X) - int(r.Start.X) + 1 }

// Height is the number of rows covered. The region must be valid.
func (r Region) Height() int { return int(r.End.Y) - int(r.Start.Y) + 1 }

// Area is the number of pixels covered. The region must be valid.
func (r Region) Area() int { return r.Width() * r.Height() }
