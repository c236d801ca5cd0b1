package transliteration

// Index selects a row in one of the three jamo tables. Its meaning depends
// on the slot it is used for.
type Index int

// Initial consonant (choseong) indices.
const (
	choG     Index = 0  // ㄱ
	choN     Index = 2  // ㄴ
	choD     Index = 3  // ㄷ
	choR     Index = 5  // ㄹ
	choM     Index = 6  // ㅁ
	choB     Index = 7  // ㅂ
	choS     Index = 9  // ㅅ
	choIeung Index = 11 // ㅇ, silent opener for vowel-initial syllables
	choJ     Index = 12 // ㅈ
	choK     Index = 15 // ㅋ
	choT     Index = 16 // ㅌ
	choP     Index = 17 // ㅍ
	choH     Index = 18 // ㅎ
)

// Vowel (jungseong) indices.
const (
	jungA  Index = 0  // ㅏ
	jungE  Index = 5  // ㅔ
	jungO  Index = 8  // ㅗ
	jungU  Index = 13 // ㅜ
	jungEu Index = 18 // ㅡ, inserted after consonants that have no vowel
	jungI  Index = 20 // ㅣ
)

// Final consonant (jongseong) indices. 0 means no final.
const (
	jongNone Index = 0
	jongG    Index = 1  // ㄱ
	jongN    Index = 4  // ㄴ
	jongD    Index = 7  // ㄷ
	jongL    Index = 8  // ㄹ
	jongM    Index = 16 // ㅁ
	jongB    Index = 17 // ㅂ
	jongS    Index = 19 // ㅅ
	jongNG   Index = 21 // ㅇ
	jongJ    Index = 22 // ㅈ
	jongK    Index = 24 // ㅋ
	jongT    Index = 25 // ㅌ
	jongP    Index = 26 // ㅍ
	jongH    Index = 27 // ㅎ
)

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

// InitialOf maps a letter to the consonant that opens a syllable. Vowels and
// the context-dependent letters l, r and x have no generic initial.
func InitialOf(ch byte) (Index, bool) {
	switch lower(ch) {
	case 'b', 'v':
		return choB, true
	case 'c', 'k', 'q':
		return choK, true
	case 'd':
		return choD, true
	case 'f', 'p':
		return choP, true
	case 'g':
		return choG, true
	case 'h':
		return choH, true
	case 'j', 'z':
		return choJ, true
	case 'm':
		return choM, true
	case 'n':
		return choN, true
	case 's':
		return choS, true
	case 't':
		return choT, true
	}
	return 0, false
}

// VowelOf maps a, e, i, o, u and the semivowels y and w.
func VowelOf(ch byte) (Index, bool) {
	switch lower(ch) {
	case 'a':
		return jungA, true
	case 'e':
		return jungE, true
	case 'i', 'y':
		return jungI, true
	case 'o':
		return jungO, true
	case 'u', 'w':
		return jungU, true
	}
	return 0, false
}

// FinalOf maps a consonant to its closing form, or jongNone.
func FinalOf(ch byte) Index {
	switch lower(ch) {
	case 'b', 'v':
		return jongB
	case 'c', 'k', 'q':
		return jongK
	case 'd':
		return jongD
	case 'f', 'p':
		return jongP
	case 'g':
		return jongG
	case 'h':
		return jongH
	case 'j', 'z':
		return jongJ
	case 'l', 'r':
		return jongL
	case 'm':
		return jongM
	case 'n':
		return jongN
	case 's', 'x':
		return jongS
	case 't':
		return jongT
	}
	return jongNone
}

func isVowel(ch byte) bool {
	_, ok := VowelOf(ch)
	return ok
}

// finalToInitial carries a closing consonant over as the next syllable's
// opener. Finals without a single-consonant counterpart fall back to ㅇ.
func finalToInitial(f Index) Index {
	switch f {
	case jongG:
		return choG
	case jongN:
		return choN
	case jongD:
		return choD
	case jongL:
		return choR
	case jongM:
		return choM
	case jongB:
		return choB
	case jongS:
		return choS
	case jongNG:
		return choIeung
	case jongJ:
		return choJ
	case jongK:
		return choK
	case jongT:
		return choT
	case jongP:
		return choP
	case jongH:
		return choH
	}
	return choIeung
}
