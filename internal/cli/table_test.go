package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/swatch/internal/colour"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow("Alice", "30")
	table.AddRow("Bob")
	table.AddRow("Charlie", "25", "Extra")

	want := [][]string{{"Alice", "30"}, {"Bob", ""}, {"Charlie", "25"}}
	if diff := cmp.Diff(want, table.rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Metric", "Score"})
	table.SetAlign(1, AlignRight)
	table.AddRow("Contrast", "66")
	table.AddRow("Harmony", "100")

	want := "" +
		"Metric    Score\n" +
		"--------  -----\n" +
		"Contrast     66\n" +
		"Harmony     100\n"
	if diff := cmp.Diff(want, table.Render()); diff != "" {
		t.Errorf("Render() mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("Render() = %q, want empty", got)
	}

	got := NewTable([]string{"Column1", "Column2"}).Render()
	if want := "Column1  Column2\n-------  -------\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestTableWideAndStyledCells(t *testing.T) {
	table := NewTable([]string{"Name", "Colour"})
	table.AddRow("赤", colour.ColourPreview(colour.RGB{R: 255}, 4)+" #ff0000")
	table.AddRow("Blue", "#0000ff")

	lines := strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	// "赤" is two cells wide, so it pads to the width of "Blue" with two spaces.
	if !strings.HasPrefix(lines[2], "赤    ") {
		t.Errorf("wide cell not padded by display width: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "Blue  #0000ff") {
		t.Errorf("unexpected row: %q", lines[3])
	}
}

func TestPadding(t *testing.T) {
	tests := []struct {
		input string
		width int
		right string
		left  string
	}{
		{"test", 10, "test      ", "      test"},
		{"hello", 5, "hello", "hello"},
		{"world", 3, "world", "world"},
		{"", 3, "   ", "   "},
		{"日本", 6, "日本  ", "  日本"},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.right {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.right)
		}
		if got := padLeft(tt.input, tt.width); got != tt.left {
			t.Errorf("padLeft(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.left)
		}
	}
}
