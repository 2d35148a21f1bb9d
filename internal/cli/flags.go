package cli

import (
	"github.com/spf13/pflag"
	"golang.org/x/text/language"

	"github.com/jmylchreest/swatch/internal/i18n"
)

var (
	_ pflag.Value = (*choiceValue[string])(nil)
	_ pflag.Value = (*langValue)(nil)
)

// choiceValue is a pflag.Value restricted to the values parse accepts.
type choiceValue[T ~string] struct {
	target *T
	typ    string
	parse  func(string) (T, error)
}

func newChoice[T ~string](target *T, def T, typ string, parse func(string) (T, error)) *choiceValue[T] {
	*target = def
	return &choiceValue[T]{target: target, typ: typ, parse: parse}
}

func (c *choiceValue[T]) String() string {
	return string(*c.target)
}

func (c *choiceValue[T]) Set(s string) error {
	v, err := c.parse(s)
	if err != nil {
		return err
	}
	*c.target = v
	return nil
}

func (c *choiceValue[T]) Type() string {
	return c.typ
}

// langValue parses a BCP 47 tag and matches it to a supported language.
type langValue struct {
	tag language.Tag
}

func (l *langValue) String() string {
	if l.tag == language.Und {
		return language.English.String()
	}
	return l.tag.String()
}

func (l *langValue) Set(s string) error {
	tag, err := i18n.Parse(s)
	if err != nil {
		return err
	}
	l.tag = tag
	return nil
}

func (l *langValue) Type() string {
	return "lang"
}
