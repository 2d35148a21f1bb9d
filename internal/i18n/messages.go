package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// Key identifies a translatable message.
type Key string

// Suggestion messages.
const (
	SuggestContrast      Key = "suggest.contrast"
	SuggestHarmony       Key = "suggest.harmony"
	SuggestBalance       Key = "suggest.balance"
	SuggestDiversity     Key = "suggest.diversity"
	SuggestAccessibility Key = "suggest.accessibility"
	SuggestColourBlind   Key = "suggest.colourblind"
	SuggestGood          Key = "suggest.good"

	InspectRedGreen    Key = "inspect.redgreen"
	InspectBlueYellow  Key = "inspect.blueyellow"
	InspectLightness   Key = "inspect.lightness"
	InspectProblematic Key = "inspect.problematic"
	InspectGood        Key = "inspect.good"
)

// Comparison messages. Arguments are the palette label and, where noted, a delta.
const (
	CompareTotal         Key = "compare.total" // label, delta
	CompareContrast      Key = "compare.contrast"
	CompareHarmony       Key = "compare.harmony"
	CompareAccessibility Key = "compare.accessibility"
	CompareDiversity     Key = "compare.diversity"
	CompareWarmer        Key = "compare.warmer"
	CompareSaturation    Key = "compare.saturation"
	CompareLightness     Key = "compare.lightness"
	CompareSimilar       Key = "compare.similar"

	RecommendEither  Key = "compare.recommend.either"
	RecommendPrefer  Key = "compare.recommend.prefer" // label
	RecommendImprove Key = "compare.recommend.improve"
)

var translations = map[Key]map[language.Tag]string{
	SuggestContrast: {
		language.English:  "Increase the contrast between colours by mixing darker and lighter shades.",
		language.Japanese: "明るい色と暗い色を組み合わせて、色同士のコントラストを高めましょう。",
	},
	SuggestHarmony: {
		language.English:  "The hues do not sit at harmonious angles. Try the complementary or analogous generation mode.",
		language.Japanese: "色相の関係が調和していません。補色または類似色モードで生成してみましょう。",
	},
	SuggestBalance: {
		language.English:  "Balance the palette with moderate saturation and a wider spread of lightness.",
		language.Japanese: "彩度を中程度に抑え、明度に幅を持たせてバランスを整えましょう。",
	},
	SuggestDiversity: {
		language.English:  "Add variety by spreading hue, saturation and lightness further apart.",
		language.Japanese: "色相・彩度・明度の幅を広げて、変化をつけましょう。",
	},
	SuggestAccessibility: {
		language.English:  "Improve text legibility with colours that contrast more strongly against white or black.",
		language.Japanese: "白または黒の背景に対してコントラストの高い色を使い、文字の読みやすさを改善しましょう。",
	},
	SuggestColourBlind: {
		language.English:  "Some colours look alike to colour-blind viewers. Vary lightness as well as hue.",
		language.Japanese: "色覚特性によって見分けにくい色があります。色相だけでなく明度にも差をつけましょう。",
	},
	SuggestGood: {
		language.English:  "Great palette! Contrast, harmony and accessibility are all in good shape.",
		language.Japanese: "素晴らしいパレットです！コントラスト・調和・アクセシビリティのすべてが良好です。",
	},
	InspectRedGreen: {
		language.English:  "Avoid relying on red and green together; blue and yellow stay distinguishable.",
		language.Japanese: "赤と緑の組み合わせは避け、青と黄色で区別しましょう。",
	},
	InspectBlueYellow: {
		language.English:  "Avoid relying on blue and yellow together; red and cyan stay distinguishable.",
		language.Japanese: "青と黄色の組み合わせは避け、赤とシアンで区別しましょう。",
	},
	InspectLightness: {
		language.English:  "Only lightness is perceived. Make sure every colour differs clearly in brightness.",
		language.Japanese: "明度のみで知覚されます。すべての色で明るさに明確な差をつけましょう。",
	},
	InspectGood: {
		language.English:  "All colours remain distinguishable for this type of vision.",
		language.Japanese: "この色覚タイプでもすべての色を見分けられます。",
	},
	CompareTotal: {
		language.English:  "Palette %s scores %d points higher overall.",
		language.Japanese: "パレット%sの総合スコアが%dポイント高いです。",
	},
	CompareContrast: {
		language.English:  "Palette %s has noticeably stronger contrast.",
		language.Japanese: "パレット%sの方がコントラストがはっきりしています。",
	},
	CompareHarmony: {
		language.English:  "Palette %s is more harmonious.",
		language.Japanese: "パレット%sの方が調和しています。",
	},
	CompareAccessibility: {
		language.English:  "Palette %s is more accessible.",
		language.Japanese: "パレット%sの方がアクセシビリティに優れています。",
	},
	CompareDiversity: {
		language.English:  "Palette %s offers more variety.",
		language.Japanese: "パレット%sの方が変化に富んでいます。",
	},
	CompareWarmer: {
		language.English:  "Palette %s feels warmer.",
		language.Japanese: "パレット%sの方が暖かい印象です。",
	},
	CompareSaturation: {
		language.English:  "Palette %s is more vivid.",
		language.Japanese: "パレット%sの方が鮮やかです。",
	},
	CompareLightness: {
		language.English:  "Palette %s is lighter overall.",
		language.Japanese: "パレット%sの方が全体的に明るいです。",
	},
	CompareSimilar: {
		language.English:  "The two palettes are very similar.",
		language.Japanese: "2つのパレットはとても似ています。",
	},
	RecommendEither: {
		language.English:  "Both palettes score highly; either is a good choice.",
		language.Japanese: "どちらのパレットも高評価です。どちらを選んでも問題ありません。",
	},
	RecommendPrefer: {
		language.English:  "Palette %s is the stronger choice.",
		language.Japanese: "パレット%sの使用をおすすめします。",
	},
	RecommendImprove: {
		language.English:  "Both palettes need improvement before use.",
		language.Japanese: "どちらのパレットも改善が必要です。",
	},
}

var plurals = map[Key]map[language.Tag]catalog.Message{
	InspectProblematic: {
		language.English: plural.Selectf(1, "%d",
			"=1", "%[1]d pair of colours is hard to tell apart. Adjust its lightness or hue.",
			"other", "%[1]d pairs of colours are hard to tell apart. Adjust their lightness or hue."),
		language.Japanese: catalog.String("見分けにくい色の組み合わせが%[1]d組あります。明度または色相を調整しましょう。"),
	},
}
