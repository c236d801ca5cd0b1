package transliteration

// rule is one entry of the dispatch table. The first rule whose match
// accepts the current position runs; apply must advance pos.
type rule struct {
	name  string
	match func(s *scanner) bool
	apply func(s *scanner)
}

// rules is ordered by priority. The final entry accepts everything.
var rules = []rule{
	{"space", matchByte(' '), applySpace},
	{"digraph", matchDigraph, applyDigraph},
	{"x", matchByte('x'), applyX},
	{"l", matchByte('l'), applyL},
	{"r", matchByte('r'), applyR},
	{"ng", func(s *scanner) bool { return s.ngAt(0) }, applyNG},
	{"vowel", func(s *scanner) bool { return s.vowelAt(0) }, applyVowel},
	{"consonant", matchConsonant, applyConsonant},
	{"literal", func(*scanner) bool { return true }, applyLiteral},
}

// digraphs map two-letter sequences to a single initial consonant.
var digraphs = map[[2]byte]Index{
	{'p', 'h'}: choP,
	{'t', 'h'}: choS,
}

func matchByte(b byte) func(*scanner) bool {
	return func(s *scanner) bool { return s.at(0) == b }
}

func applySpace(s *scanner) {
	s.flush()
	s.emitLiteral(' ')
	s.pos++
}

func matchDigraph(s *scanner) bool {
	_, ok := digraphs[[2]byte{s.at(0), s.at(1)}]
	return ok
}

func applyDigraph(s *scanner) {
	s.flush()
	s.setPending(digraphs[[2]byte{s.at(0), s.at(1)}])
	s.pos += 2
}

// applyX reads x as "ks": the k closes the previous syllable when it can,
// and the s either opens the next syllable or stands alone as 스.
func applyX(s *scanner) {
	s.flush()
	if syl := s.openSyllable(); syl != nil {
		if s.ngAt(1) {
			syl.Final = jongK
			s.setPending(choS)
			s.pos++
			return
		}
		syl.Final = jongG
	} else {
		s.emit(Syllable{Initial: choK, Vowel: jungEu})
	}

	if s.vowelAt(1) {
		s.setPending(choS)
	} else {
		s.emit(Syllable{Initial: choS, Vowel: jungEu})
	}
	s.pos++
}

func applyL(s *scanner) {
	s.flush()
	if syl := s.openSyllable(); syl != nil {
		syl.Final = jongL
		if s.ngAt(1) {
			s.pos++
			return
		}
		if s.vowelAt(1) {
			s.setPending(choR)
		}
		s.pos++
		return
	}

	if s.vowelAt(1) {
		s.setPending(choR)
	} else {
		s.emit(Syllable{Initial: choIeung, Vowel: jungEu, Final: jongL})
	}
	s.pos++
}

func applyR(s *scanner) {
	s.flush()
	if s.vowelAt(1) {
		s.setPending(choR)
	} else {
		s.emit(Syllable{Initial: choR, Vowel: jungEu})
	}
	s.pos++
}

func applyNG(s *scanner) {
	if s.vowelAt(2) {
		// n opens the next syllable; g is read again as a consonant.
		s.flush()
		s.setPending(choN)
		s.pos++
		return
	}

	if p, ok := s.takePending(); ok {
		s.emit(Syllable{Initial: p, Vowel: jungEu, Final: jongNG})
		s.pos += 2
		return
	}

	switch syl := s.lastSyllable(); {
	case syl == nil:
		s.emit(Syllable{Initial: choIeung, Vowel: jungEu, Final: jongNG})
	case syl.Open():
		syl.Final = jongNG
	default:
		// the earlier final stays; it is echoed as the next opener.
		s.emit(Syllable{Initial: finalToInitial(syl.Final), Vowel: jungEu, Final: jongNG})
	}
	s.pos += 2
}

func applyVowel(s *scanner) {
	vowel, _ := VowelOf(s.at(0))
	final, consumed := s.finalLookahead()
	initial, ok := s.takePending()
	if !ok {
		initial = choIeung
	}
	s.emit(Syllable{Initial: initial, Vowel: vowel, Final: final})
	s.pos += 1 + consumed
}

func matchConsonant(s *scanner) bool {
	_, ok := InitialOf(s.at(0))
	return ok
}

func applyConsonant(s *scanner) {
	initial, _ := InitialOf(s.at(0))
	s.flush()
	s.setPending(initial)
	s.pos++
}

func applyLiteral(s *scanner) {
	s.flush()
	s.emitLiteral(s.in[s.pos])
	s.pos++
}
