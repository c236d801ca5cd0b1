package names

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terzeron/rogue-kr/internal/catalog"
	"github.com/terzeron/rogue-kr/internal/locale"
	"github.com/terzeron/rogue-kr/internal/transliteration"
)

func newResolver(t *testing.T, lang string) *Resolver {
	t.Helper()
	gate := locale.New(lang)
	cat, err := catalog.Builtin(gate.Lang())
	require.NoError(t, err)
	return New(gate, cat)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "MSG_STONE_TIGER_EYE", Key(KindStone, "tiger eye"))
	assert.Equal(t, "MSG_WEAPON_TWO_HANDED_SWORD", Key(KindWeapon, "two handed sword"))
	assert.Equal(t, "MSG_COLOR_RED", Key(KindColor, "red"))
	assert.Len(t, Key(KindMaterial, strings.Repeat("x", 100)), catalog.MaxKeyLen)
}

func TestIndexedNames(t *testing.T) {
	ko := newResolver(t, "ko_KR.UTF-8")
	assert.Equal(t, "철퇴", ko.Weapon(0))
	assert.Equal(t, "장검", ko.Weapon(1))
	assert.Equal(t, "단검", ko.Weapon(4))
	assert.Equal(t, "가죽 갑옷", ko.Armor(0))
	assert.Equal(t, "아쿼터", ko.Monster(0))
	assert.Equal(t, "뱀", ko.MonsterByLetter('S'))
	assert.Equal(t, "용", ko.MonsterByLetter('D'))

	for _, i := range []int{-1, 9, 100} {
		assert.Empty(t, ko.Weapon(i))
	}
	assert.Empty(t, ko.Armor(8))
	assert.Empty(t, ko.Monster(26))
	assert.Empty(t, ko.MonsterByLetter('a'))

	en := newResolver(t, "en_US.UTF-8")
	assert.Equal(t, "mace", en.Weapon(0))
	assert.Equal(t, "plate mail", en.Armor(7))
	assert.Equal(t, "zombie", en.MonsterByLetter('Z'))
}

func TestIndexedFallsBackToTransliteration(t *testing.T) {
	r := New(locale.New("ko"), catalog.Empty())
	assert.Equal(t, transliteration.Hangul("mace"), r.Weapon(0))

	r = New(locale.New("en"), catalog.Empty())
	assert.Equal(t, "mace", r.Weapon(0))
}

func TestColor(t *testing.T) {
	ko := newResolver(t, "ko_KR.UTF-8")
	assert.Equal(t, "호박색", ko.Color("amber"))
	assert.Equal(t, "하늘색", ko.Color("cyan"))
	assert.Equal(t, "빨간색", ko.Color("red"))
	assert.Equal(t, "파란색", ko.Color("blue"))
	assert.Equal(t, "mauve", ko.Color("mauve"))

	en := newResolver(t, "en_US.UTF-8")
	assert.Equal(t, "amber", en.Color("amber"))
}

func TestStoneWoodMetalMaterial(t *testing.T) {
	ko := newResolver(t, "ko_KR.UTF-8")
	assert.Equal(t, "다이아몬드", ko.Stone("diamond"))
	assert.Equal(t, "루비", ko.Stone("ruby"))
	assert.Equal(t, "에메랄드", ko.Stone("emerald"))
	assert.Equal(t, "호안석", ko.Stone("tiger eye"))
	assert.Equal(t, "대나무", ko.Wood("bamboo"))
	assert.Equal(t, "철", ko.Metal("iron"))
	assert.Equal(t, "참나무", ko.Material("oak"))
	assert.Equal(t, "대나무", ko.Material("bamboo"))
	assert.Equal(t, "소나무", ko.Material("pine"))

	// not in the catalog
	assert.Equal(t, "스티보탄탈리테", ko.Stone("stibotantalite"))
	assert.Equal(t, "겔마니움", ko.Stone("germanium"))
	assert.Equal(t, "쿠쿠이 우오옫", ko.Wood("kukui wood"))
	assert.Equal(t, "베릴리움", ko.Metal("beryllium"))

	en := newResolver(t, "C")
	for _, name := range []string{"diamond", "stibotantalite", "bamboo", "iron", "oak"} {
		assert.Equal(t, name, en.Stone(name))
		assert.Equal(t, name, en.Material(name))
	}
}

func TestMissing(t *testing.T) {
	ko := newResolver(t, "ko")
	missing := ko.Missing()
	assert.Contains(t, missing, "MSG_STONE_STIBOTANTALITE")
	assert.Contains(t, missing, "MSG_WOOD_KUKUI_WOOD")
	assert.NotContains(t, missing, "MSG_WEAPON_MACE")
	assert.True(t, lo.EveryBy(missing, func(k string) bool { return strings.HasPrefix(k, "MSG_") }))

	empty := New(locale.New("ko"), catalog.Empty())
	assert.Len(t, empty.Missing(), len(weapons)+len(armors)+len(monsters)+len(colors)+len(stones)+len(woods)+len(metals))
}

func TestScrollTitleShape(t *testing.T) {
	en := newResolver(t, "en")
	rng := rand.New(rand.NewPCG(7, 11))
	for range 500 {
		title := en.ScrollTitle(rng)
		assert.LessOrEqual(t, len(title), maxTitle, "title %q", title)
		words := strings.Fields(title)
		assert.GreaterOrEqual(t, len(words), 2, "title %q", title)
		assert.LessOrEqual(t, len(words), 4, "title %q", title)
		assert.Equal(t, title, strings.TrimSpace(title))
		for _, c := range title {
			assert.True(t, c == ' ' || (c >= 'a' && c <= 'z'), "title %q", title)
		}
	}
}

func TestScrollTitlesKorean(t *testing.T) {
	ko := newResolver(t, "ko")
	en := newResolver(t, "en")

	raw := en.ScrollTitles(rand.New(rand.NewPCG(3, 4)), MaxScrolls)
	got := ko.ScrollTitles(rand.New(rand.NewPCG(3, 4)), MaxScrolls)
	require.Len(t, got, MaxScrolls)

	for i := range got {
		assert.Equal(t, transliteration.Hangul(raw[i]), got[i])
		for _, r := range got[i] {
			if r == ' ' {
				continue
			}
			_, ok := transliteration.Decompose(r)
			assert.True(t, ok, "title %q", got[i])
		}
	}
}

func TestNewScheme(t *testing.T) {
	ko := newResolver(t, "ko")
	s := ko.NewScheme(rand.New(rand.NewPCG(42, 42)))

	require.Len(t, s.PotionColors, MaxPotions)
	assert.Len(t, lo.Uniq(s.PotionColors), MaxPotions)

	require.Len(t, s.RingStones, MaxRings)
	assert.Len(t, lo.UniqBy(s.RingStones, func(st Stone) string { return st.Name }), MaxRings)
	for _, st := range s.RingStones {
		assert.Positive(t, st.Value)
	}

	require.Len(t, s.ScrollTitles, MaxScrolls)

	require.Len(t, s.Sticks, MaxSticks)
	assert.Len(t, lo.UniqBy(s.Sticks, func(st Stick) string { return st.Kind + st.Material }), MaxSticks)
	for _, st := range s.Sticks {
		assert.Contains(t, []string{"wand", "staff"}, st.Kind)
	}
}

func TestNewSchemeDeterministic(t *testing.T) {
	en := newResolver(t, "en")
	a := en.NewScheme(rand.New(rand.NewPCG(1, 1)))
	b := en.NewScheme(rand.New(rand.NewPCG(1, 1)))
	assert.Equal(t, a, b)
}

func TestTablesAreCopies(t *testing.T) {
	c := Colors()
	c[0] = "changed"
	assert.Equal(t, "amber", Colors()[0])
	assert.Len(t, Stones(), 26)
	assert.Len(t, Woods(), 33)
	assert.Len(t, Metals(), 22)
}
