// Package naming finds the closest human-readable name for a colour.
package naming

import (
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/language"

	"github.com/jmylchreest/swatch/internal/colour"
	"github.com/jmylchreest/swatch/internal/i18n"
)

// Entry is a reference colour and its names per language.
type Entry struct {
	Hex      string
	English  string
	Japanese string

	lab colorful.Color
}

// Match is the result of a name lookup. Distance is CIEDE2000 ΔE on the
// usual 0-100 lightness scale.
type Match struct {
	Hex       string  `json:"hex"`
	Name      string  `json:"name"`
	Reference string  `json:"reference"`
	Distance  float64 `json:"distance"`
}

var entries = mustEntries([]Entry{
	{Hex: "#000000", English: "Black", Japanese: "黒"},
	{Hex: "#ffffff", English: "White", Japanese: "白"},
	{Hex: "#808080", English: "Gray", Japanese: "灰色"},
	{Hex: "#c0c0c0", English: "Silver", Japanese: "銀色"},
	{Hex: "#36454f", English: "Charcoal", Japanese: "チャコール"},
	{Hex: "#ff0000", English: "Red", Japanese: "赤"},
	{Hex: "#800000", English: "Maroon", Japanese: "栗色"},
	{Hex: "#dc143c", English: "Crimson", Japanese: "深紅"},
	{Hex: "#ff7f50", English: "Coral", Japanese: "珊瑚色"},
	{Hex: "#fa8072", English: "Salmon", Japanese: "サーモンピンク"},
	{Hex: "#ffa500", English: "Orange", Japanese: "橙色"},
	{Hex: "#ffd700", English: "Gold", Japanese: "金色"},
	{Hex: "#ffff00", English: "Yellow", Japanese: "黄色"},
	{Hex: "#f5f5dc", English: "Beige", Japanese: "ベージュ"},
	{Hex: "#a52a2a", English: "Brown", Japanese: "茶色"},
	{Hex: "#d2b48c", English: "Tan", Japanese: "タン"},
	{Hex: "#808000", English: "Olive", Japanese: "オリーブ"},
	{Hex: "#7fff00", English: "Chartreuse", Japanese: "シャルトルーズ"},
	{Hex: "#00ff00", English: "Lime", Japanese: "ライム"},
	{Hex: "#008000", English: "Green", Japanese: "緑"},
	{Hex: "#2e8b57", English: "Sea Green", Japanese: "シーグリーン"},
	{Hex: "#98ff98", English: "Mint", Japanese: "ミント"},
	{Hex: "#008080", English: "Teal", Japanese: "鴨の羽色"},
	{Hex: "#00ffff", English: "Cyan", Japanese: "シアン"},
	{Hex: "#40e0d0", English: "Turquoise", Japanese: "ターコイズ"},
	{Hex: "#87ceeb", English: "Sky Blue", Japanese: "空色"},
	{Hex: "#4169e1", English: "Royal Blue", Japanese: "ロイヤルブルー"},
	{Hex: "#0000ff", English: "Blue", Japanese: "青"},
	{Hex: "#000080", English: "Navy", Japanese: "紺色"},
	{Hex: "#4b0082", English: "Indigo", Japanese: "藍色"},
	{Hex: "#8a2be2", English: "Violet", Japanese: "菫色"},
	{Hex: "#800080", English: "Purple", Japanese: "紫"},
	{Hex: "#e6e6fa", English: "Lavender", Japanese: "ラベンダー"},
	{Hex: "#ff00ff", English: "Magenta", Japanese: "マゼンタ"},
	{Hex: "#ffc0cb", English: "Pink", Japanese: "桃色"},
	{Hex: "#ff69b4", English: "Hot Pink", Japanese: "ホットピンク"},
})

func mustEntries(es []Entry) []Entry {
	for i := range es {
		c, err := colorful.Hex(es[i].Hex)
		if err != nil {
			panic("naming: bad reference colour " + es[i].Hex)
		}
		es[i].lab = c
	}
	return es
}

// Entries returns a copy of the reference table.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Nearest returns the reference colour closest to c under CIEDE2000, named
// in the best supported match for lang.
func Nearest(c colour.RGB, lang language.Tag) Match {
	target := toColorful(c)

	best, bestDist := 0, target.DistanceCIEDE2000(entries[0].lab)
	for i := 1; i < len(entries); i++ {
		if d := target.DistanceCIEDE2000(entries[i].lab); d < bestDist {
			best, bestDist = i, d
		}
	}

	e := entries[best]
	return Match{
		Hex:       c.Hex(),
		Name:      e.name(lang),
		Reference: e.Hex,
		Distance:  bestDist * 100,
	}
}

// Palette names every colour in p.
func Palette(p *colour.Palette, lang language.Tag) []Match {
	out := make([]Match, 0, p.Len())
	for _, c := range p.Colours {
		out = append(out, Nearest(c, lang))
	}
	return out
}

func (e Entry) name(lang language.Tag) string {
	if i18n.Match(lang) == language.Japanese {
		return e.Japanese
	}
	return e.English
}

func toColorful(c colour.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
