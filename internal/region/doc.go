// Package region parses and validates rectangular pixel regions.
//
// A region is written as
//
//	[label=]x1,y1-x2,y2
//
// where both corners are inclusive. The label is optional and may be empty;
// "=0,0-1,1" carries an empty label, while "0,0-1,1" carries none. Each
// coordinate is an unsigned base-10 integer and may be surrounded by
// whitespace.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left pixel. X grows
// rightward and Y grows downward, matching the imaging package.
//
// # Errors
//
// Grammar violations are reported as *ParseError and geometric problems as
// *GeometryError. Both carry a Kind so callers can branch without matching
// message text:
//
//	var perr *region.ParseError
//	if errors.As(err, &perr) && perr.Kind == region.MissingRangeSeparator {
//	    // ...
//	}
package region
