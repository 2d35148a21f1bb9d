package colour

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPalette(t *testing.T) {
	colours := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	palette, err := NewPalette(colours)
	if err != nil {
		t.Fatalf("NewPalette returned error: %v", err)
	}

	if palette.Len() != 3 {
		t.Errorf("Expected palette length 3, got %d", palette.Len())
	}

	// The palette must not alias the caller's slice.
	colours[0] = Black
	if palette.Colours[0] != (RGB{R: 255}) {
		t.Errorf("palette aliases input slice: %v", palette.Colours[0])
	}
}

func TestNewPaletteEmpty(t *testing.T) {
	_, err := NewPalette(nil)
	if !errors.Is(err, ErrInvalidPaletteArity) {
		t.Fatalf("NewPalette(nil) error = %v, want ErrInvalidPaletteArity", err)
	}
}

func TestParsePalette(t *testing.T) {
	tests := []struct {
		name    string
		hexes   []string
		want    []string
		wantErr error
	}{
		{
			name:  "five colours",
			hexes: []string{"#FF0000", "#00ff00", "0000FF", "#FFFF00", " #FF00FF "},
			want:  []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff"},
		},
		{
			name:    "malformed entry",
			hexes:   []string{"#FF0000", "#GG0000"},
			wantErr: ErrInvalidColorFormat,
		},
		{
			name:    "empty",
			hexes:   []string{},
			wantErr: ErrInvalidPaletteArity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePalette(tt.hexes)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParsePalette() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePalette() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, p.ToHex()); diff != "" {
				t.Errorf("ToHex() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePaletteReportsIndex(t *testing.T) {
	_, err := ParsePalette([]string{"#000000", "#000000", "nope"})
	if err == nil || !strings.Contains(err.Error(), "colour 3") {
		t.Fatalf("error %v should name the third colour", err)
	}
}

func TestPalettePairs(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"single", 1, 0},
		{"two", 2, 1},
		{"five", 5, 10},
		{"eight", 8, 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPalette(make([]RGB, tt.n))
			if err != nil {
				t.Fatal(err)
			}
			if got := p.PairCount(); got != tt.want {
				t.Errorf("PairCount() = %d, want %d", got, tt.want)
			}
			count := 0
			for i, j := range p.Pairs() {
				if i >= j {
					t.Errorf("pair (%d, %d) is not ordered", i, j)
				}
				count++
			}
			if count != tt.want {
				t.Errorf("Pairs() yielded %d pairs, want %d", count, tt.want)
			}
		})
	}
}

func TestPaletteToJSON(t *testing.T) {
	p, err := ParsePalette([]string{"#ff0000"})
	if err != nil {
		t.Fatal(err)
	}
	data, err := p.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}
	for _, want := range []string{`"count": 1`, `"hex": "#ff0000"`, `"s": 100`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("ToJSON() output missing %s:\n%s", want, data)
		}
	}
}

func TestPaletteString(t *testing.T) {
	p := &Palette{}
	if got := p.String(); got != "Empty palette" {
		t.Errorf("String() = %q, want %q", got, "Empty palette")
	}
}
