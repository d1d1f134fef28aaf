// Package transliterate turns Chinese text into Bopomofo readings.
package transliterate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-pinyin"

	"github.com/chenchunyii/Chewing-Editor/internal/dictionary"
)

//go:generate mockgen -source=transliterator.go -destination=../mocks/transliterate/mock_transliterator.go -package=mock_transliterate Transliterator

// Transliterator returns one reading token per character of text, in order.
type Transliterator interface {
	Transliterate(text string) []string
}

// PinyinTransliterator looks each character up with go-pinyin and rewrites
// the numbered pinyin as Bopomofo.
type PinyinTransliterator struct {
	args pinyin.Args
}

func NewPinyinTransliterator() *PinyinTransliterator {
	args := pinyin.NewArgs()
	args.Style = pinyin.Tone3
	// Characters without a reading stay in place as their own token.
	args.Fallback = func(r rune, a pinyin.Args) []string {
		return []string{string(r)}
	}
	return &PinyinTransliterator{
		args: args,
	}
}

// Transliterate only sends runs of Han characters to go-pinyin so that Latin
// letters and punctuation are never mistaken for pinyin.
func (t *PinyinTransliterator) Transliterate(text string) []string {
	tokens := make([]string, 0, utf8.RuneCountInString(text))
	var han []rune
	flush := func() {
		if len(han) == 0 {
			return
		}
		for _, candidates := range pinyin.Pinyin(string(han), t.args) {
			if len(candidates) == 0 {
				continue
			}
			tokens = append(tokens, ToBopomofo(candidates[0]))
		}
		han = han[:0]
	}

	for _, r := range text {
		if unicode.Is(unicode.Han, r) {
			han = append(han, r)
			continue
		}
		flush()
		tokens = append(tokens, string(r))
	}
	flush()
	return tokens
}

// NewEntry builds the dictionary entry for text. The phrase is text verbatim.
func NewEntry(t Transliterator, text string) dictionary.Entry {
	return dictionary.Entry{
		Bopomofo: strings.Join(t.Transliterate(text), " "),
		Phrase:   text,
	}
}
