package transliteration

import "strings"

// token is one unit of output: either a syllable, which may still be
// patched with a final consonant, or a literal byte copied from the input.
type token struct {
	syllable Syllable
	literal  byte
	isLit    bool
}

// scanner holds the state of a single left-to-right pass.
type scanner struct {
	in  string
	pos int
	out []token

	pending    Index
	hasPending bool

	// last indexes the most recent syllable in out, or -1 after a literal.
	last int
}

func newScanner(in string) *scanner {
	return &scanner{
		in:   in,
		out:  make([]token, 0, len(in)),
		last: -1,
	}
}

// at returns the lowercased byte at pos+off, or 0 past the end.
func (s *scanner) at(off int) byte {
	i := s.pos + off
	if i >= len(s.in) {
		return 0
	}
	return lower(s.in[i])
}

func (s *scanner) vowelAt(off int) bool {
	return isVowel(s.at(off))
}

// ngAt reports whether "ng" starts at pos+off.
func (s *scanner) ngAt(off int) bool {
	return s.at(off) == 'n' && s.at(off+1) == 'g'
}

func (s *scanner) emit(syl Syllable) {
	s.out = append(s.out, token{syllable: syl})
	s.last = len(s.out) - 1
}

func (s *scanner) emitLiteral(b byte) {
	s.out = append(s.out, token{literal: b, isLit: true})
	s.last = -1
}

func (s *scanner) setPending(initial Index) {
	s.pending = initial
	s.hasPending = true
}

// takePending returns the waiting consonant and clears it.
func (s *scanner) takePending() (Index, bool) {
	p, ok := s.pending, s.hasPending
	s.pending, s.hasPending = 0, false
	return p, ok
}

// flush emits a waiting consonant with the default vowel and no final.
func (s *scanner) flush() {
	if p, ok := s.takePending(); ok {
		s.emit(Syllable{Initial: p, Vowel: jungEu})
	}
}

// lastSyllable returns the syllable that may be backpatched, if any. The
// pointer is only valid until the next emit.
func (s *scanner) lastSyllable() *Syllable {
	if s.last < 0 {
		return nil
	}
	return &s.out[s.last].syllable
}

// openSyllable is lastSyllable restricted to syllables without a final.
func (s *scanner) openSyllable() *Syllable {
	if syl := s.lastSyllable(); syl != nil && syl.Open() {
		return syl
	}
	return nil
}

// finalLookahead decides the closing consonant of a vowel at pos. It
// returns the final and how many input bytes after the vowel it consumes.
func (s *scanner) finalLookahead() (Index, int) {
	next := s.at(1)
	switch {
	case next == 0, next == ' ', next == 'x', next == 's', isVowel(next):
		// x and s get their own syllables; vowels start a new block.
		return jongNone, 0
	case s.ngAt(2) && !s.vowelAt(4):
		// consonant + "ng": the consonant's own rule closes this syllable.
		return jongNone, 0
	case s.ngAt(1) && !s.vowelAt(3):
		return jongNG, 2
	case s.vowelAt(2):
		// the consonant opens the next syllable.
		return jongNone, 0
	}
	if f := FinalOf(next); f != jongNone {
		return f, 1
	}
	return jongNone, 0
}

func (s *scanner) run() string {
	for s.pos < len(s.in) {
		for _, r := range rules {
			if r.match(s) {
				r.apply(s)
				break
			}
		}
	}
	s.flush()
	return s.String()
}

// String serializes the output buffer. Every syllable is re-encoded from its
// final triple, so backpatches never shift later output.
func (s *scanner) String() string {
	var b strings.Builder
	b.Grow(len(s.out) * 3)
	for _, t := range s.out {
		if t.isLit {
			b.WriteByte(t.literal)
			continue
		}
		b.WriteRune(t.syllable.Rune())
	}
	return b.String()
}

// syllables returns the emitted syllables in order, skipping literals.
func (s *scanner) syllables() []Syllable {
	out := make([]Syllable, 0, len(s.out))
	for _, t := range s.out {
		if !t.isLit {
			out = append(out, t.syllable)
		}
	}
	return out
}
