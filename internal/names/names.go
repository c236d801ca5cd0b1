// Package names produces localised item and monster names. Names come from
// the message catalog; names the catalog lacks are transliterated into Hangul
// when the locale asks for it.
package names

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/terzeron/rogue-kr/internal/catalog"
	"github.com/terzeron/rogue-kr/internal/locale"
	"github.com/terzeron/rogue-kr/internal/transliteration"
)

// Kinds of catalog keys.
const (
	KindWeapon   = "WEAPON"
	KindArmor    = "ARMOR"
	KindMonster  = "MONSTER"
	KindColor    = "COLOR"
	KindStone    = "STONE"
	KindWood     = "WOOD"
	KindMetal    = "METAL"
	KindMaterial = "MATERIAL"
)

// Key derives the catalog key for a name, e.g. Key("STONE", "tiger eye") is
// "MSG_STONE_TIGER_EYE". Keys are cut to catalog.MaxKeyLen.
func Key(kind, name string) string {
	k := "MSG_" + kind + "_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
	if len(k) > catalog.MaxKeyLen {
		k = k[:catalog.MaxKeyLen]
	}
	return k
}

// Resolver looks names up in a catalog for one locale.
type Resolver struct {
	gate    locale.Gate
	catalog *catalog.Catalog
	tr      *transliteration.Transliterator
}

func New(gate locale.Gate, cat *catalog.Catalog) *Resolver {
	return &Resolver{
		gate:    gate,
		catalog: cat,
		tr:      transliteration.New(gate),
	}
}

// Weapon returns the name of weapon type i, or "" when i is out of range.
// Weapon, Armor and Monster consult the catalog whatever the locale, so an
// English catalog yields English names.
func (r *Resolver) Weapon(i int) string {
	return r.indexed(KindWeapon, weapons, i)
}

// Armor returns the name of armor type i, or "" when i is out of range.
func (r *Resolver) Armor(i int) string {
	return r.indexed(KindArmor, armors, i)
}

// Monster returns the name of monster i (0 is 'A'), or "" when i is out of
// range.
func (r *Resolver) Monster(i int) string {
	return r.indexed(KindMonster, monsters, i)
}

// MonsterByLetter is Monster for a letter 'A' through 'Z'.
func (r *Resolver) MonsterByLetter(c byte) string {
	return r.Monster(int(c) - 'A')
}

func (r *Resolver) indexed(kind string, table []string, i int) string {
	if i < 0 || i >= len(table) {
		return ""
	}
	if v, ok := r.catalog.Lookup(Key(kind, table[i])); ok {
		return v
	}
	return r.tr.Transliterate(table[i])
}

// Color translates a potion colour. Names that are not potion colours are
// returned unchanged.
func (r *Resolver) Color(name string) string {
	if !slices.Contains(colors, name) {
		return name
	}
	return r.translate(KindColor, name)
}

func (r *Resolver) Stone(name string) string    { return r.translate(KindStone, name) }
func (r *Resolver) Wood(name string) string     { return r.translate(KindWood, name) }
func (r *Resolver) Metal(name string) string    { return r.translate(KindMetal, name) }
func (r *Resolver) Material(name string) string { return r.translate(KindMaterial, name) }

// translate returns name unchanged when the gate is off, otherwise the catalog
// entry for it, otherwise its transliteration.
func (r *Resolver) translate(kind, name string) string {
	if !r.gate.Requires() {
		return name
	}
	if v, ok := r.catalog.Lookup(Key(kind, name)); ok {
		return v
	}
	return r.tr.Transliterate(name)
}

// Missing lists the catalog keys the tables need but the catalog lacks, in
// sorted order. Those names are served by transliteration.
func (r *Resolver) Missing() []string {
	var keys []string
	keys = append(keys, lo.Map(weapons, keyOf(KindWeapon))...)
	keys = append(keys, lo.Map(armors, keyOf(KindArmor))...)
	keys = append(keys, lo.Map(monsters, keyOf(KindMonster))...)
	keys = append(keys, lo.Map(colors, keyOf(KindColor))...)
	keys = append(keys, lo.Map(stones, func(s Stone, _ int) string { return Key(KindStone, s.Name) })...)
	keys = append(keys, lo.Map(woods, keyOf(KindWood))...)
	keys = append(keys, lo.Map(metals, keyOf(KindMetal))...)

	missing := lo.Reject(keys, func(k string, _ int) bool {
		_, ok := r.catalog.Lookup(k)
		return ok
	})
	slices.Sort(missing)
	return missing
}

func keyOf(kind string) func(string, int) string {
	return func(name string, _ int) string { return Key(kind, name) }
}
