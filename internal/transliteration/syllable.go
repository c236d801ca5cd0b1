package transliteration

import "strings"

const (
	hangulBase   = 0xAC00
	hangulEnd    = 0xD7A3
	initialCount = 19
	vowelCount   = 21
	finalCount   = 28
)

var (
	choseongJamo  = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	jungseongJamo = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	jongseongJamo = []rune{0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

// Syllable is one composed block. Final is jongNone when the block is open.
type Syllable struct {
	Initial Index
	Vowel   Index
	Final   Index
}

// Compose returns the precomposed codepoint for the triple. Indices are
// trusted: initial in [0,18], vowel in [0,20], final in [0,27].
func Compose(initial, vowel, final Index) rune {
	return rune(hangulBase + int(initial)*vowelCount*finalCount + int(vowel)*finalCount + int(final))
}

// Rune encodes s.
func (s Syllable) Rune() rune {
	return Compose(s.Initial, s.Vowel, s.Final)
}

// Open reports whether s can still take a final consonant.
func (s Syllable) Open() bool {
	return s.Final == jongNone
}

// Valid reports whether every index is inside its table.
func (s Syllable) Valid() bool {
	return s.Initial >= 0 && s.Initial < initialCount &&
		s.Vowel >= 0 && s.Vowel < vowelCount &&
		s.Final >= 0 && s.Final < finalCount
}

// Decompose splits a precomposed Hangul syllable back into its indices.
func Decompose(r rune) (Syllable, bool) {
	if r < hangulBase || r > hangulEnd {
		return Syllable{}, false
	}
	code := int(r) - hangulBase
	return Syllable{
		Initial: Index(code / (finalCount * vowelCount)),
		Vowel:   Index((code / finalCount) % vowelCount),
		Final:   Index(code % finalCount),
	}, true
}

// Jamo renders the components of s as compatibility jamo, e.g. "ㅌ ㅏ ㅇ".
func (s Syllable) Jamo() string {
	var b strings.Builder
	b.WriteRune(choseongJamo[s.Initial])
	b.WriteByte(' ')
	b.WriteRune(jungseongJamo[s.Vowel])
	if s.Final != jongNone {
		b.WriteByte(' ')
		b.WriteRune(jongseongJamo[s.Final])
	}
	return b.String()
}
