package wiki

// awakeningNames maps the game's English awakening type names to the
// wiki template's short identifiers.
var awakeningNames = map[string]string{
	"Attack":    "atk",
	"Defense":   "def",
	"Special":   "spec",
	"C.A.":      "ca",
	"Healing":   "heal",
	"Skill DMG": "skill",
}

// draconicProvenanceNames are the Draconic Weapons Provenance, whose
// English names do not contain "Draconic".
var draconicProvenanceNames = map[string]struct{}{
	"Refrain of Blazing Vigor":        {},
	"Judgment of Torrential Tides":    {},
	"Bounty of Gracious Earth":        {},
	"Prayer of Grand Gales":           {},
	"Radiance of Insightful Rebirth":  {},
	"Festering of Mournful Obsequies": {},
}

// keyName is one wiki key identifier and the skill ID ranges it covers.
// The list is ordered and the first match wins; some ranges overlap
// between entries.
type keyName struct {
	Name   string
	Skills []string
}

var keyNames = []keyName{
	// Opus and Ultima s2
	{"auto", []string{"1240", "758", "2204", "2208"}},
	{"skill", []string{"1241", "759", "2205", "2209"}},
	{"ougi", []string{"1242", "760", "2206", "2210"}},
	{"cb", []string{"1243", "761", "2207", "2211"}},

	// Opus s3 and some Ultima s1
	{"stamina", []string{"502-507", "1213-1218", "727-736"}},
	{"enmity", []string{"130-135", "71-76", "737-746"}},
	{"tirium", []string{"1260-1265", "1266-1271"}},
	{"progression", []string{"1199-1204", "1205-1210"}},

	// Belial chains
	{"celere", []string{"322-327", "1310-1315"}},
	{"majesty", []string{"764-769", "1731-1735", "948"}},
	{"glory", []string{"1171-1176", "1736-1741"}},
	{"freyr", []string{"1723"}},
	{"apple", []string{"1724"}},
	{"depravity", []string{"1725"}},
	{"echo", []string{"1726"}},

	// Hexachromatic keys
	{"extremity", []string{"2212-2223"}},
	{"sagacity", []string{"2224-2235"}},
	{"supremacy", []string{"2236-2247"}},

	// Ultima s1
	{"atk", []string{"697-706"}},
	{"ma", []string{"707-716"}},
	{"hp", []string{"717-726"}},
	{"crit", []string{"747-756"}},

	// Ultima s3
	{"cap", []string{"1807"}},
	{"healing", []string{"1808"}},
	{"seraphic", []string{"1809"}},
	{"cbgain", []string{"1810"}},

	// Draconic s2
	{"def", []string{"1446"}},
	{"fire", []string{"1447"}},
	{"water", []string{"1448"}},
	{"earth", []string{"1449"}},
	{"wind", []string{"1450"}},
	{"light", []string{"1451"}},
	{"dark", []string{"1452"}},
	{"fortitude", []string{"2043-2048"}},
	{"magnitude", []string{"2049-2055"}},

	// Draconic s3
	{"primal", []string{"1228-1233"}},
	{"magna", []string{"1234-1239"}},
}

// elementNames is indexed by element ordinal minus one.
var elementNames = [6]string{"Fire", "Water", "Earth", "Wind", "Light", "Dark"}

// summonUncapNames is indexed by uncap tier.
var summonUncapNames = [7]string{"0mlb", "1mlb", "2mlb", "mlb", "flb", "ulb", "trans"}

// summonArtChanges lists summons whose art changes at a given uncap tier;
// the wiki wants the post-change art marked.
var summonArtChanges = map[string]int{
	"Colossus Omega":  4,
	"Leviathan Omega": 4,
	"Yggdrasil Omega": 4,
	"Tiamat Omega":    4,
	"Luminiera Omega": 4,
	"Celeste Omega":   4,
	"Agni":            5,
	"Varuna":          5,
	"Titan":           5,
	"Zephyrus":        5,
	"Zeus":            5,
	"Hades":           5,
}
