package transliterate

import "strings"

// Longest spellings first so that "zh" wins over "z".
var initials = []struct {
	pinyin   string
	bopomofo string
}{
	{"zh", "ㄓ"}, {"ch", "ㄔ"}, {"sh", "ㄕ"},
	{"b", "ㄅ"}, {"p", "ㄆ"}, {"m", "ㄇ"}, {"f", "ㄈ"},
	{"d", "ㄉ"}, {"t", "ㄊ"}, {"n", "ㄋ"}, {"l", "ㄌ"},
	{"g", "ㄍ"}, {"k", "ㄎ"}, {"h", "ㄏ"},
	{"j", "ㄐ"}, {"q", "ㄑ"}, {"x", "ㄒ"},
	{"r", "ㄖ"}, {"z", "ㄗ"}, {"c", "ㄘ"}, {"s", "ㄙ"},
}

var finals = map[string]string{
	"a": "ㄚ", "o": "ㄛ", "e": "ㄜ", "ê": "ㄝ",
	"ai": "ㄞ", "ei": "ㄟ", "ao": "ㄠ", "ou": "ㄡ",
	"an": "ㄢ", "en": "ㄣ", "ang": "ㄤ", "eng": "ㄥ",
	"ong": "ㄨㄥ", "er": "ㄦ",
	"i": "ㄧ", "ia": "ㄧㄚ", "io": "ㄧㄛ", "ie": "ㄧㄝ", "iao": "ㄧㄠ", "iu": "ㄧㄡ",
	"ian": "ㄧㄢ", "in": "ㄧㄣ", "iang": "ㄧㄤ", "ing": "ㄧㄥ", "iong": "ㄩㄥ",
	"u": "ㄨ", "ua": "ㄨㄚ", "uo": "ㄨㄛ", "uai": "ㄨㄞ", "ui": "ㄨㄟ",
	"uan": "ㄨㄢ", "un": "ㄨㄣ", "uang": "ㄨㄤ", "ueng": "ㄨㄥ",
	"v": "ㄩ", "ve": "ㄩㄝ", "van": "ㄩㄢ", "vn": "ㄩㄣ",
	// syllabic nasals
	"n": "ㄣ", "ng": "ㄫ", "m": "ㄇ",
}

// Zero-initial syllables spelled with y or w.
var semivowels = map[string]string{
	"yi": "i", "ya": "ia", "yo": "io", "ye": "ie", "yao": "iao", "you": "iu",
	"yan": "ian", "yin": "in", "yang": "iang", "ying": "ing", "yong": "iong",
	"yu": "v", "yue": "ve", "yuan": "van", "yun": "vn",
	"wu": "u", "wa": "ua", "wo": "uo", "wai": "uai", "wei": "ui",
	"wan": "uan", "wen": "un", "wang": "uang", "weng": "ueng",
}

var toneMarks = map[byte]string{
	'1': "",
	'2': "ˊ",
	'3': "ˇ",
	'4': "ˋ",
}

// ToBopomofo converts a numbered pinyin syllable such as "hao3" or "ma" to
// Bopomofo ("ㄏㄠˇ", "˙ㄇㄚ"). A syllable that is not pinyin is returned
// unchanged.
func ToBopomofo(syllable string) string {
	s := strings.ToLower(syllable)
	s = strings.ReplaceAll(s, "ü", "v")
	s = strings.ReplaceAll(s, "u:", "v")

	tone, neutral := "", true
	if n := len(s); n > 0 {
		if mark, ok := toneMarks[s[n-1]]; ok {
			tone, neutral = mark, false
			s = s[:n-1]
		} else if s[n-1] == '5' || s[n-1] == '0' {
			s = s[:n-1]
		}
	}
	if s == "" {
		return syllable
	}

	body, ok := syllableBody(s)
	if !ok {
		return syllable
	}
	if neutral {
		return "˙" + body
	}
	return body + tone
}

func syllableBody(s string) (string, bool) {
	if final, ok := semivowels[s]; ok {
		return lookupFinal(final)
	}

	for _, initial := range initials {
		if !strings.HasPrefix(s, initial.pinyin) {
			continue
		}
		final := s[len(initial.pinyin):]
		if final == "" {
			break
		}
		switch initial.pinyin {
		case "j", "q", "x":
			// ju, que, xuan and jun are written with u but read as ü.
			if strings.HasPrefix(final, "u") {
				final = "v" + final[1:]
			}
		case "zh", "ch", "sh", "r", "z", "c", "s":
			if final == "i" {
				return initial.bopomofo, true
			}
		}
		body, ok := lookupFinal(final)
		if !ok {
			break
		}
		return initial.bopomofo + body, true
	}

	// m, n and ng stand alone as syllables.

	return lookupFinal(s)
}

func lookupFinal(final string) (string, bool) {
	body, ok := finals[final]
	return body, ok
}
