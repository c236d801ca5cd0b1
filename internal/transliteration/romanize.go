package transliteration

import "strings"

// Revised Romanization of Korean
var (
	choseongRoman = []string{
		"g", "kk", "n", "d", "tt", "r", "m", "b", "pp",
		"s", "ss", "", "j", "jj", "ch", "k", "t", "p", "h",
	}
	jungseongRoman = []string{
		"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o",
		"wa", "wae", "oe", "yo", "u", "wo", "we", "wi", "yu",
		"eu", "ui", "i",
	}
	jongseongRoman = []string{
		"", "g", "kk", "gs", "n", "nj", "nh", "d", "l", "lg",
		"lm", "lb", "ls", "lt", "lp", "lh", "m", "b", "bs",
		"s", "ss", "ng", "j", "ch", "k", "t", "p", "h",
	}
)

// Romanize reads Hangul back in Revised Romanization. It is not an inverse
// of Transliterate; it shows how generated names would be pronounced.
func Romanize(text string) string {
	var b strings.Builder
	for _, r := range text {
		s, ok := Decompose(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(choseongRoman[s.Initial])
		b.WriteString(jungseongRoman[s.Vowel])
		b.WriteString(jongseongRoman[s.Final])
	}
	return b.String()
}
