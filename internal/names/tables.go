package names

// Stone is a ring setting and the gold it adds to the ring's worth.
type Stone struct {
	Name  string
	Value int
}

var weapons = []string{
	"mace",
	"long sword",
	"short bow",
	"arrow",
	"dagger",
	"two handed sword",
	"dart",
	"shuriken",
	"spear",
}

var armors = []string{
	"leather armor",
	"ring mail",
	"studded leather armor",
	"scale mail",
	"chain mail",
	"splint mail",
	"banded mail",
	"plate mail",
}

// monsters is indexed by letter, A through Z.
var monsters = []string{
	"aquator", "bat", "centaur", "dragon", "emu", "venus flytrap",
	"griffin", "hobgoblin", "ice monster", "jabberwock", "kestrel",
	"leprechaun", "medusa", "nymph", "orc", "phantom", "quagga",
	"rattlesnake", "snake", "troll", "black unicorn", "vampire",
	"wraith", "xeroc", "yeti", "zombie",
}

var colors = []string{
	"amber", "aquamarine", "black", "blue", "brown", "clear", "crimson",
	"cyan", "ecru", "gold", "green", "grey", "magenta", "orange", "pink",
	"plaid", "purple", "red", "silver", "tan", "tangerine", "topaz",
	"turquoise", "vermilion", "violet", "white", "yellow",
}

var stones = []Stone{
	{"agate", 25},
	{"alexandrite", 40},
	{"amethyst", 50},
	{"carnelian", 40},
	{"diamond", 300},
	{"emerald", 300},
	{"germanium", 225},
	{"granite", 5},
	{"garnet", 50},
	{"jade", 150},
	{"kryptonite", 300},
	{"lapis lazuli", 50},
	{"moonstone", 50},
	{"obsidian", 15},
	{"onyx", 60},
	{"opal", 200},
	{"pearl", 220},
	{"peridot", 63},
	{"ruby", 350},
	{"sapphire", 285},
	{"stibotantalite", 200},
	{"tiger eye", 50},
	{"topaz", 60},
	{"turquoise", 70},
	{"taaffeite", 300},
	{"zircon", 80},
}

var woods = []string{
	"avocado wood", "balsa", "bamboo", "banyan", "birch", "cedar",
	"cherry", "cinnibar", "cypress", "dogwood", "driftwood", "ebony",
	"elm", "eucalyptus", "fall", "hemlock", "holly", "ironwood",
	"kukui wood", "mahogany", "manzanita", "maple", "oaken",
	"persimmon wood", "pecan", "pine", "poplar", "redwood", "rosewood",
	"spruce", "teak", "walnut", "zebrawood",
}

var metals = []string{
	"aluminum", "beryllium", "bone", "brass", "bronze", "copper",
	"electrum", "gold", "iron", "lead", "magnesium", "mercury", "nickel",
	"pewter", "platinum", "steel", "silver", "silicon", "tin", "titanium",
	"tungsten", "zinc",
}

// syllables are the fragments scroll titles are built from.
var syllables = []string{
	"a", "ab", "ag", "aks", "ala", "an", "app", "arg", "arze", "ash",
	"bek", "bie", "bit", "bjor", "blu", "bot", "bu", "byt", "comp",
	"con", "cos", "cre", "dalf", "dan", "den", "do", "e", "eep", "el",
	"eng", "er", "ere", "erk", "esh", "evs", "fa", "fid", "fri", "fu",
	"gan", "gar", "glen", "gop", "gre", "ha", "hyd", "i", "ing", "ip",
	"ish", "it", "ite", "iv", "jo", "kho", "kli", "klis", "la", "lech",
	"mar", "me", "mi", "mic", "mik", "mon", "mung", "mur", "nej",
	"nelg", "nep", "ner", "nes", "nes", "nih", "nin", "o", "od", "ood",
	"org", "orn", "ox", "oxy", "pay", "ple", "plu", "po", "pot",
	"prok", "re", "rea", "rhov", "ri", "ro", "rog", "rok", "rol", "sa",
	"san", "sat", "sef", "seh", "shu", "ski", "sna", "sne", "snik",
	"sno", "so", "sol", "sri", "sta", "sun", "ta", "tab", "tem",
	"ther", "ti", "tox", "trol", "tue", "turs", "u", "ulk", "um", "un",
	"uni", "ur", "val", "viv", "vly", "vom", "wah", "wed", "werg",
	"wex", "whon", "wun", "xo", "y", "yot", "yu", "zant", "zeb", "zim",
	"zok", "zon", "zum",
}

// Colors returns the potion colour names in English.
func Colors() []string { return clone(colors) }

// Stones returns the ring stones with their values.
func Stones() []Stone { return clone(stones) }

// Woods returns the staff woods in English.
func Woods() []string { return clone(woods) }

// Metals returns the wand metals in English.
func Metals() []string { return clone(metals) }

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}
