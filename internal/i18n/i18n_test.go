package i18n

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   language.Tag
		want language.Tag
	}{
		{language.English, language.English},
		{language.BritishEnglish, language.English},
		{language.Japanese, language.Japanese},
		{language.MustParse("ja-JP"), language.Japanese},
		{language.German, language.English},
		{language.Und, language.English},
	}
	for _, tt := range tests {
		if got := Match(tt.in); got != tt.want {
			t.Errorf("Match(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	if tag, err := Parse("ja"); err != nil || tag != language.Japanese {
		t.Errorf("Parse(ja) = %s, %v", tag, err)
	}
	if _, err := Parse("not a tag!"); err == nil {
		t.Error("Parse accepted an invalid tag")
	}
}

func TestEveryKeyTranslated(t *testing.T) {
	for key, texts := range translations {
		for _, tag := range Supported {
			if _, ok := texts[tag]; !ok {
				t.Errorf("%s has no %s translation", key, tag)
			}
		}
	}
	for key, texts := range plurals {
		for _, tag := range Supported {
			if _, ok := texts[tag]; !ok {
				t.Errorf("%s has no %s translation", key, tag)
			}
		}
	}
}

func TestSprintf(t *testing.T) {
	got := Sprintf(language.English, CompareTotal, "A", 12)
	if got != "Palette A scores 12 points higher overall." {
		t.Errorf("Sprintf(en) = %q", got)
	}

	got = Sprintf(language.Japanese, CompareTotal, "B", 3)
	if !strings.Contains(got, "B") || !strings.Contains(got, "3") {
		t.Errorf("Sprintf(ja) = %q", got)
	}

	// Unsupported languages fall back to English.
	if got := Sprintf(language.French, SuggestGood); got != Sprintf(language.English, SuggestGood) {
		t.Errorf("Sprintf(fr) = %q, want English fallback", got)
	}
}

func TestPlural(t *testing.T) {
	one := Sprintf(language.English, InspectProblematic, 1)
	if !strings.HasPrefix(one, "1 pair of colours is") {
		t.Errorf("singular = %q", one)
	}
	many := Sprintf(language.English, InspectProblematic, 4)
	if !strings.HasPrefix(many, "4 pairs of colours are") {
		t.Errorf("plural = %q", many)
	}
}
