package region

import (
	"errors"
	"strconv"
	"testing"
)

func TestParsePoint(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Point
	}{
		{"plain", "3,4", Point{3, 4}},
		{"surrounding whitespace", " 3, 4 ", Point{3, 4}},
		{"space before comma", "3 ,4", Point{3, 4}},
		{"tabs", "\t3,\t4\t", Point{3, 4}},
		{"zero", "0,0", Point{0, 0}},
		{"max uint32", "4294967295,1", Point{4294967295, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePoint(tt.input)
			if err != nil {
				t.Fatalf("ParsePoint(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePoint(%q): got %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePoint_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ParseErrorKind
		token string
	}{
		{"no comma", "34", MissingSeparator, "34"},
		{"empty", "", MissingSeparator, ""},
		{"non-numeric x", "a,4", InvalidX, "a"},
		{"negative x", "-3,4", InvalidX, "-3"},
		{"empty x", ",4", InvalidX, ""},
		{"non-numeric y", "3,b", InvalidY, "b"},
		{"overflow y", "3,4294967296", InvalidY, "4294967296"},
		{"second comma", "3,4,5", InvalidY, "4,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePoint(tt.input)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("ParsePoint(%q): expected *ParseError, got %v", tt.input, err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("Kind: got %s, want %s", perr.Kind, tt.kind)
			}
			if perr.Token != tt.token {
				t.Errorf("Token: got %q, want %q", perr.Token, tt.token)
			}
		})
	}
}

func TestParsePoint_OverflowWrapsStrconv(t *testing.T) {
	_, err := ParsePoint("99999999999,0")
	if !errors.Is(err, strconv.ErrRange) {
		t.Errorf("expected strconv.ErrRange in chain, got %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Region
	}{
		{"unlabelled", "0,0-1,1", Region{Start: Point{0, 0}, End: Point{1, 1}}},
		{"labelled", "red=10,20-30,40", Region{Label: "red", HasLabel: true, Start: Point{10, 20}, End: Point{30, 40}}},
		{"empty label", "=1,2-3,4", Region{Label: "", HasLabel: true, Start: Point{1, 2}, End: Point{3, 4}}},
		{"label with dash", "top-left=0,0-5,5", Region{Label: "top-left", HasLabel: true, Start: Point{0, 0}, End: Point{5, 5}}},
		{"label with spaces", "sky blue=0,0-5,5", Region{Label: "sky blue", HasLabel: true, Start: Point{0, 0}, End: Point{5, 5}}},
		{"whitespace in points", " 1 , 2 - 3 , 4 ", Region{Start: Point{1, 2}, End: Point{3, 4}}},
		{"inverted kept in order", "5,5-1,1", Region{Start: Point{5, 5}, End: Point{1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q): got %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ParseErrorKind
	}{
		{"no dash", "abc", MissingRangeSeparator},
		{"labelled no dash", "red=0,0", MissingRangeSeparator},
		{"start missing comma", "00-1,1", MissingSeparator},
		{"end missing comma", "0,0-11", MissingSeparator},
		{"bad start x", "x,0-1,1", InvalidX},
		{"bad end y", "0,0-1,y", InvalidY},
		{"label only", "red=", MissingRangeSeparator},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q): expected *ParseError, got %v", tt.input, err)
			}
			if perr.Kind != tt.kind {
				t.Errorf("Kind: got %s, want %s", perr.Kind, tt.kind)
			}
		})
	}
}

func TestRegion_RoundTrip(t *testing.T) {
	inputs := []string{
		"0,0-1,1",
		"red=0,0-1,1",
		"=0,0-1,1",
		"a-b=10,20-30,40",
		"9,9-0,0",
		" 1 , 2 - 3 , 4 ",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			r, err := Parse(in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", in, err)
			}
			again, err := Parse(r.String())
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", r.String(), err)
			}
			if again != r {
				t.Errorf("round-trip mismatch: %+v -> %q -> %+v", r, r.String(), again)
			}
		})
	}
}

func TestRegion_String(t *testing.T) {
	r := Region{Label: "blue", HasLabel: true, Start: Point{1, 2}, End: Point{3, 4}}
	if got := r.String(); got != "blue=1,2-3,4" {
		t.Errorf("String: got %q, want %q", got, "blue=1,2-3,4")
	}

	r.HasLabel = false
	if got := r.String(); got != "1,2-3,4" {
		t.Errorf("String: got %q, want %q", got, "1,2-3,4")
	}
}

func TestParseAll(t *testing.T) {
	regions, err := ParseAll([]string{"red=0,0-1,1", "0,0-1,1"})
	if err != nil {
		t.Fatalf("ParseAll failed: %v", err)
	}
	if len(regions) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(regions))
	}
	if regions[0].Label != "red" || regions[1].HasLabel {
		t.Errorf("unexpected regions: %+v", regions)
	}

	_, err = ParseAll([]string{"0,0-1,1", "abc"})
	if err == nil {
		t.Fatal("ParseAll should fail on malformed spec")
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != MissingRangeSeparator {
		t.Errorf("expected MissingRangeSeparator, got %v", err)
	}
}

func TestRegion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"single pixel", "3,3-3,3", false},
		{"normal", "0,0-9,9", false},
		{"inverted x", "5,0-4,9", true},
		{"inverted y", "0,5-9,4", true},
		{"inverted both", "5,5-0,0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			err = r.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Validate: unexpected error %v", err)
				}
				return
			}
			var gerr *GeometryError
			if !errors.As(err, &gerr) || gerr.Kind != Inverted {
				t.Errorf("expected Inverted GeometryError, got %v", err)
			}
		})
	}
}

func TestRegion_Within(t *testing.T) {
	tests := []struct {
		name         string
		spec         string
		wantErr      bool
		wantX, wantY int
	}{
		{"inside", "0,0-9,9", false, 0, 0},
		{"edge", "9,9-9,9", false, 0, 0},
		{"end x outside", "0,0-10,9", true, 10, 9},
		{"end y outside", "0,0-9,10", true, 9, 10},
		{"start outside", "20,20-30,30", true, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			err = r.Within(10, 10)
			if !tt.wantErr {
				if err != nil {
					t.Errorf("Within: unexpected error %v", err)
				}
				return
			}
			var gerr *GeometryError
			if !errors.As(err, &gerr) {
				t.Fatalf("expected *GeometryError, got %v", err)
			}
			if gerr.Kind != OutOfBounds {
				t.Errorf("Kind: got %s, want %s", gerr.Kind, OutOfBounds)
			}
			if gerr.X != tt.wantX || gerr.Y != tt.wantY || gerr.Width != 10 || gerr.Height != 10 {
				t.Errorf("got (%d,%d) in %dx%d, want (%d,%d) in 10x10",
					gerr.X, gerr.Y, gerr.Width, gerr.Height, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRegion_Dimensions(t *testing.T) {
	r := Region{Start: Point{2, 3}, End: Point{5, 3}}
	if r.Width() != 4 || r.Height() != 1 || r.Area() != 4 {
		t.Errorf("got %dx%d (%d), want 4x1 (4)", r.Width(), r.Height(), r.Area())
	}
}
