package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/region-color/internal/region"
)

// Average computes the perceptual average color of a region.
//
// Every pixel in the inclusive rectangle is converted to OkLab, the three
// components are summed, each sum is divided by the pixel count, and the mean
// is converted back to 8-bit sRGB.
//
// Parameters:
//   - img: The decoded image. Region coordinates are relative to
//     img.Bounds().Min.
//   - r: The region to average. Labels are ignored.
//
// Returns:
//   - RGBColor: The averaged color.
//   - error: A *region.GeometryError if the region is inverted or any of its
//     pixels lie outside the image. No clipping is performed.
//
// # Alpha Handling
//
// Pixels are read as straight (non-premultiplied) RGBA and the alpha channel
// is discarded, so a half-transparent red pixel counts as red.
func Average(img image.Image, r region.Region) (RGBColor, error) {
	if err := r.Validate(); err != nil {
		return RGBColor{}, err
	}

	bounds := img.Bounds()
	if err := r.Within(bounds.Dx(), bounds.Dy()); err != nil {
		return RGBColor{}, err
	}

	rect := image.Rect(
		bounds.Min.X+int(r.Start.X),
		bounds.Min.Y+int(r.Start.Y),
		bounds.Min.X+int(r.End.X)+1,
		bounds.Min.Y+int(r.End.Y)+1,
	)
	// Crop hands back a straight-alpha NRGBA copy at the origin whatever
	// the source color model is.
	px := imaging.Crop(img, rect)

	var sumL, sumA, sumB float64
	w := px.Rect.Dx()
	for y := 0; y < px.Rect.Dy(); y++ {
		row := px.Pix[y*px.Stride : y*px.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			l, a, b := RGBColor{R: row[i], G: row[i+1], B: row[i+2]}.OkLab()
			sumL += l
			sumA += a
			sumB += b
		}
	}

	n := float64(r.Area())
	return FromOkLab(sumL/n, sumA/n, sumB/n), nil
}

// AverageAll averages each region in order. The result is positionally
// aligned with regions. On error, no partial results are returned.
func AverageAll(img image.Image, regions []region.Region) ([]RGBColor, error) {
	colors := make([]RGBColor, 0, len(regions))
	for i, r := range regions {
		c, err := Average(img, r)
		if err != nil {
			return nil, fmt.Errorf("region %d: %w", i+1, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}
