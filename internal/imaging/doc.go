// Package imaging decodes images and computes perceptual region averages.
//
// Images are decoded with github.com/disintegration/imaging and averaged in
// the OkLab color space provided by github.com/lucasb-eyer/go-colorful.
// All operations work with standard Go image.Image types and use a coordinate
// system where (0,0) is the top-left pixel of img.Bounds(), X increases
// rightward, and Y increases downward.
//
// # Coordinate System
//
// Region corners are inclusive on both ends:
//   - Width = End.X - Start.X + 1
//   - Height = End.Y - Start.Y + 1
//   - A region with Start == End covers exactly one pixel
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Average and AverageAll are
// stateless and may be called concurrently on the same image, since they only
// read from it.
//
// # Color Representation
//
// Averaged colors are returned as RGBColor, 8 bits per channel. Hex renders
// them as lowercase "#rrggbb".
//
// # Error Handling
//
//   - File open and decode failures are returned as *DecodeError
//   - Inverted regions and regions reaching outside the image are returned as
//     *region.GeometryError
package imaging
