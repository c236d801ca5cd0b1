package names

import (
	"math/rand/v2"
	"strings"
)

// Counts of each randomly named item class.
const (
	MaxPotions = 14
	MaxScrolls = 18
	MaxRings   = 14
	MaxSticks  = 14
)

// maxTitle caps the length of a scroll title before transliteration.
const maxTitle = 40

// Stick is a wand or staff and the material it appears to be made of.
type Stick struct {
	Kind     string // "wand" or "staff"
	Material string
}

// Scheme is the per-game disguise of unidentified items.
type Scheme struct {
	PotionColors []string
	ScrollTitles []string
	RingStones   []Stone
	Sticks       []Stick
}

// ScrollTitle builds one title of 2 to 4 words, each of 1 to 3 syllables,
// and returns it in the resolver's script.
func (r *Resolver) ScrollTitle(rng *rand.Rand) string {
	return r.tr.Transliterate(rawTitle(rng))
}

// ScrollTitles returns n titles.
func (r *Resolver) ScrollTitles(rng *rand.Rand, n int) []string {
	titles := make([]string, n)
	for i := range titles {
		titles[i] = r.ScrollTitle(rng)
	}
	return titles
}

func rawTitle(rng *rand.Rand) string {
	var b strings.Builder
	for nwords := rng.IntN(3) + 2; nwords > 0; nwords-- {
		for nsyl := rng.IntN(3) + 1; nsyl > 0; nsyl-- {
			sp := syllables[rng.IntN(len(syllables))]
			if b.Len()+len(sp) > maxTitle {
				break
			}
			b.WriteString(sp)
		}
		b.WriteByte(' ')
	}
	return strings.TrimRight(b.String(), " ")
}

// NewScheme draws a fresh disguise: distinct potion colours, distinct ring
// stones, and sticks of distinct woods and metals.
func (r *Resolver) NewScheme(rng *rand.Rand) Scheme {
	s := Scheme{
		ScrollTitles: r.ScrollTitles(rng, MaxScrolls),
	}

	for _, i := range rng.Perm(len(colors))[:MaxPotions] {
		s.PotionColors = append(s.PotionColors, r.Color(colors[i]))
	}

	for _, i := range rng.Perm(len(stones))[:MaxRings] {
		s.RingStones = append(s.RingStones, Stone{Name: r.Stone(stones[i].Name), Value: stones[i].Value})
	}

	usedWood := make([]bool, len(woods))
	usedMetal := make([]bool, len(metals))
	for len(s.Sticks) < MaxSticks {
		if rng.IntN(2) == 0 {
			j := rng.IntN(len(metals))
			if !usedMetal[j] {
				usedMetal[j] = true
				s.Sticks = append(s.Sticks, Stick{Kind: "wand", Material: r.Metal(metals[j])})
			}
		} else {
			j := rng.IntN(len(woods))
			if !usedWood[j] {
				usedWood[j] = true
				s.Sticks = append(s.Sticks, Stick{Kind: "staff", Material: r.Wood(woods[j])})
			}
		}
	}
	return s
}
