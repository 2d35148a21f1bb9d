// Package i18n holds the localised message catalog shared by the
// suggestion, comparison and naming packages.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the languages with translations, in preference order.
var Supported = []language.Tag{
	language.English,
	language.Japanese,
}

var matcher = language.NewMatcher(Supported)

// Match returns the supported language closest to tag.
func Match(tag language.Tag) language.Tag {
	_, idx, _ := matcher.Match(tag)
	return Supported[idx]
}

// Parse parses a BCP 47 tag such as "ja" or "en-GB" and matches it against
// the supported languages.
func Parse(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid language %q: %w", s, err)
	}
	return Match(tag), nil
}

// Printer returns a message printer for the closest supported language.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(Match(tag), message.Catalog(messages))
}

// Sprintf formats the message registered under key in the given language.
func Sprintf(tag language.Tag, key Key, args ...any) string {
	return Printer(tag).Sprintf(string(key), args...)
}

var messages = mustBuild()

func mustBuild() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, texts := range translations {
		for tag, text := range texts {
			if err := b.SetString(tag, string(key), text); err != nil {
				panic(fmt.Sprintf("i18n: %s/%s: %v", tag, key, err))
			}
		}
	}
	for key, texts := range plurals {
		for tag, msg := range texts {
			if err := b.Set(tag, string(key), msg); err != nil {
				panic(fmt.Sprintf("i18n: %s/%s: %v", tag, key, err))
			}
		}
	}
	return b
}
