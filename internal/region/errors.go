package region

import "fmt"

// ParseErrorKind identifies which part of the grammar was violated.
type ParseErrorKind int

const (
	// MissingSeparator means a point had no "," between x and y.
	MissingSeparator ParseErrorKind = iota + 1
	// InvalidX means the x component was not an unsigned integer.
	InvalidX
	// InvalidY means the y component was not an unsigned integer.
	InvalidY
	// MissingRangeSeparator means a region had no "-" between its corners.
	MissingRangeSeparator
)

func (k ParseErrorKind) String() string {
	switch k {
	case MissingSeparator:
		return "missing separator"
	case InvalidX:
		return "invalid x"
	case InvalidY:
		return "invalid y"
	case MissingRangeSeparator:
		return "missing range separator"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError reports a region or point string that does not match the grammar.
type ParseError struct {
	Kind  ParseErrorKind // Which rule failed
	Input string         // The full string being parsed
	Token string         // The offending substring
	Err   error          // Underlying strconv error, if any
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case MissingSeparator:
		return fmt.Sprintf("invalid point %q: expected \"<x>,<y>\"", e.Input)
	case InvalidX:
		return fmt.Sprintf("invalid point %q: x component %q is not an unsigned integer", e.Input, e.Token)
	case InvalidY:
		return fmt.Sprintf("invalid point %q: y component %q is not an unsigned integer", e.Input, e.Token)
	case MissingRangeSeparator:
		return fmt.Sprintf("invalid region %q: expected \"[label=]<x1>,<y1>-<x2>,<y2>\"", e.Input)
	default:
		return fmt.Sprintf("invalid region %q: %s", e.Input, e.Kind)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }

// GeometryErrorKind identifies why a region cannot be applied to an image.
type GeometryErrorKind int

const (
	// Inverted means the end corner precedes the start corner on some axis.
	Inverted GeometryErrorKind = iota + 1
	// OutOfBounds means a corner lies outside the image.
	OutOfBounds
)

func (k GeometryErrorKind) String() string {
	switch k {
	case Inverted:
		return "inverted"
	case OutOfBounds:
		return "out of bounds"
	default:
		return fmt.Sprintf("GeometryErrorKind(%d)", int(k))
	}
}

// GeometryError reports a region that is inverted or does not fit an image.
//
// For OutOfBounds, X and Y hold the first offending coordinate and Width and
// Height the image dimensions. For Inverted they are zero.
type GeometryError struct {
	Kind   GeometryErrorKind
	Region Region
	X, Y   int
	Width  int
	Height int
}

func (e *GeometryError) Error() string {
	switch e.Kind {
	case Inverted:
		return fmt.Sprintf("region %s: end corner precedes start corner", e.Region)
	case OutOfBounds:
		return fmt.Sprintf("region %s: pixel (%d,%d) outside image bounds %dx%d",
			e.Region, e.X, e.Y, e.Width, e.Height)
	default:
		return fmt.Sprintf("region %s: %s", e.Region, e.Kind)
	}
}
