// Package report renders averaged region colors as swatches or CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/ironsheep/region-color/internal/batch"
	"github.com/ironsheep/region-color/internal/imaging"
	"github.com/ironsheep/region-color/internal/region"
)

// Format selects the output layout.
type Format int

const (
	// Swatch prints one hex color per line with a blank line between files.
	Swatch Format = iota
	// CSV prints a header of region labels and one row per file.
	CSV
)

func (f Format) String() string {
	switch f {
	case Swatch:
		return "swatch"
	case CSV:
		return "csv"
	default:
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
}

// lightBackground is the OkLab lightness above which swatch text is black.
const lightBackground = 0.6

// SwatchStyler paints a hex string on a background of its own color.
type SwatchStyler struct {
	renderer *lipgloss.Renderer
}

// NewSwatchStyler creates a styler bound to renderer. The renderer's color
// profile decides whether any escape sequences are emitted.
func NewSwatchStyler(renderer *lipgloss.Renderer) *SwatchStyler {
	return &SwatchStyler{renderer: renderer}
}

// Render returns c as "#rrggbb", styled for the terminal.
func (s *SwatchStyler) Render(c imaging.RGBColor) string {
	hex := c.Hex()
	fg := "#ffffff"
	if l, _, _ := c.OkLab(); l >= lightBackground {
		fg = "#000000"
	}
	return s.renderer.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(fg)).
		Render(hex)
}

// Write renders results in the requested format.
func Write(w io.Writer, format Format, styler *SwatchStyler, regions []region.Region, results []batch.FileResult) error {
	switch format {
	case Swatch:
		return WriteSwatches(w, styler, results)
	case CSV:
		return WriteCSV(w, regions, results)
	default:
		return fmt.Errorf("unknown output format %s", format)
	}
}

// WriteSwatches prints each file's colors one per line, separating files with
// a blank line.
func WriteSwatches(w io.Writer, styler *SwatchStyler, results []batch.FileResult) error {
	for i, res := range results {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		for _, c := range res.Colors {
			if _, err := fmt.Fprintln(w, styler.Render(c)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Headers returns the CSV column names for regions. Unlabelled regions are
// numbered "Unlabelled 1", "Unlabelled 2", ... in order, skipping labelled
// ones. An explicitly empty label stays empty.
func Headers(regions []region.Region) []string {
	headers := make([]string, 0, len(regions))
	unlabelled := 0
	for _, r := range regions {
		if r.HasLabel {
			headers = append(headers, r.Label)
			continue
		}
		unlabelled++
		headers = append(headers, "Unlabelled "+strconv.Itoa(unlabelled))
	}
	return headers
}

// WriteCSV prints a header row followed by one row of hex colors per file.
//
// A header made of a single empty label is written as `""` so that readers
// see one empty field rather than a blank line.
func WriteCSV(w io.Writer, regions []region.Region, results []batch.FileResult) error {
	cw := csv.NewWriter(w)
	headers := Headers(regions)
	if len(headers) == 1 && headers[0] == "" {
		if _, err := io.WriteString(w, "\"\"\n"); err != nil {
			return err
		}
	} else if err := cw.Write(headers); err != nil {
		return err
	}

	row := make([]string, len(regions))
	for _, res := range results {
		if len(res.Colors) != len(regions) {
			return fmt.Errorf("%s: %d colors for %d regions", res.Filename, len(res.Colors), len(regions))
		}
		for i, c := range res.Colors {
			row[i] = c.Hex()
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
