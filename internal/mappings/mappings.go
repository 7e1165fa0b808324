// Package mappings holds the static translation tables between the game's
// internal schema and the team-planning service's schema, plus the level
// threshold tables used to derive uncap tiers.
//
// The tables are authored against live game data; unmapped lookups report
// a miss instead of guessing.
package mappings

import (
	"github.com/granblue-tools/hensei-transfer/internal/pkg/ranges"
)

// elementToService maps the game element ordinal (1-6, index shifted by one)
// to the service's element ID. The two schemas enumerate elements in a
// different order.
var elementToService = [6]int{2, 3, 4, 1, 6, 5}

// ElementToService translates a game element ordinal (1-6) to the service
// element ID. Returns false for out-of-range ordinals.
func ElementToService(attr int) (int, bool) {
	if attr < 1 || attr > 6 {
		return 0, false
	}
	return elementToService[attr-1], true
}

// axToModifier maps a game AX skill ID to the service's AX modifier ID.
var axToModifier = map[int]int{
	1588: 7,
	1589: 0,
	1590: 1,
	1591: 3,
	1592: 4,
	1593: 9,
	1594: 13,
	1595: 10,
	1596: 5,
	1597: 6,
	1599: 8,
	1600: 12,
	1601: 11,
	1719: 15,
	1720: 16,
	1721: 17,
	1722: 14,
}

// AXToModifier translates a game AX skill ID to the service modifier ID.
// Unmapped IDs report a miss; they must never be forwarded as-is.
func AXToModifier(axSkillID int) (int, bool) {
	mod, ok := axToModifier[axSkillID]
	return mod, ok
}

// KeyCategory binds a service weapon-key ID to the game skill ID ranges it
// covers.
type KeyCategory struct {
	// KeyID is the service-side granblue_id of the key item.
	KeyID int
	// Skills are the game skill ID ranges the key produces.
	Skills []string
}

// keyCategories is ordered as authored; classification takes the first
// matching category. The ranges are assumed disjoint across categories but
// this is not enforced.
var keyCategories = []KeyCategory{
	// emblems (data missing)
	{KeyID: 1},
	{KeyID: 2},
	{KeyID: 3, Skills: []string{"1050"}},
	// pendulum
	{KeyID: 13001, Skills: []string{"1240", "2204", "2208"}},
	{KeyID: 13002, Skills: []string{"1241", "2205", "2209"}},
	{KeyID: 13003, Skills: []string{"1242", "2206", "2210"}},
	{KeyID: 13004, Skills: []string{"1243", "2207", "2211"}},
	{KeyID: 14001, Skills: []string{"502-507", "1213-1218"}},
	{KeyID: 14002, Skills: []string{"130-135", "71-76"}},
	{KeyID: 14003, Skills: []string{"1260-1265", "1266-1271"}},
	{KeyID: 14004, Skills: []string{"1199-1204", "1205-1210"}},
	// chain
	{KeyID: 14011, Skills: []string{"322-327", "1310-1315"}},
	{KeyID: 14012, Skills: []string{"764-769", "1731-1735", "948"}},
	{KeyID: 14013, Skills: []string{"1171-1176", "1736-1741"}},
	{KeyID: 14014, Skills: []string{"1723"}},
	{KeyID: 14015, Skills: []string{"1724"}},
	{KeyID: 14016, Skills: []string{"1725"}},
	{KeyID: 14017, Skills: []string{"1726"}},
	// gauph
	{KeyID: 10001, Skills: []string{"697-706"}},
	{KeyID: 10002, Skills: []string{"707-716"}},
	{KeyID: 10003, Skills: []string{"717-726"}},
	{KeyID: 10004, Skills: []string{"727-736"}},
	{KeyID: 10005, Skills: []string{"737-746"}},
	{KeyID: 10006, Skills: []string{"747-756"}},
	{KeyID: 11001, Skills: []string{"758"}},
	{KeyID: 11002, Skills: []string{"759"}},
	{KeyID: 11003, Skills: []string{"760"}},
	{KeyID: 11004, Skills: []string{"761"}},
	{KeyID: 17001, Skills: []string{"1807"}},
	{KeyID: 17002, Skills: []string{"1808"}},
	{KeyID: 17003, Skills: []string{"1809"}},
	{KeyID: 17004, Skills: []string{"1810"}},
	// teluma
	{KeyID: 15001, Skills: []string{"1446"}},
	{KeyID: 15002, Skills: []string{"1447"}},
	{KeyID: 15003, Skills: []string{"1448"}},
	{KeyID: 15004, Skills: []string{"1449"}},
	{KeyID: 15005, Skills: []string{"1450"}},
	{KeyID: 15006, Skills: []string{"1451"}},
	{KeyID: 15007, Skills: []string{"1452"}},
	{KeyID: 16001, Skills: []string{"1228-1233"}},
	{KeyID: 16002, Skills: []string{"1234-1239"}},
	{KeyID: 15008, Skills: []string{"2043-2048"}},
	{KeyID: 15009, Skills: []string{"2049-2055"}},
	// providence
	{KeyID: 14005, Skills: []string{"2212-2223"}},
	{KeyID: 14006, Skills: []string{"2224-2235"}},
	{KeyID: 14007, Skills: []string{"2236-2247"}},
}

// KeyMatchesSkill reports whether the service key with the given
// granblue_id covers the game skill ID.
func KeyMatchesSkill(keyID, skillID int) bool {
	for _, cat := range keyCategories {
		if cat.KeyID == keyID {
			return ranges.Matches(cat.Skills, skillID)
		}
	}
	return false
}

// KeyCategoryForSkill classifies a game skill ID into a service key ID.
// The first matching category in authored order wins.
func KeyCategoryForSkill(skillID int) (int, bool) {
	for _, cat := range keyCategories {
		if ranges.Matches(cat.Skills, skillID) {
			return cat.KeyID, true
		}
	}
	return 0, false
}

// seriesAliases corrects known game-data inconsistencies: the service
// files all emblem keys under series 24, while some CCW report game
// series 19.
var seriesAliases = map[int]int{
	19: 24,
}

// FixSeriesID resolves a game series ID through the alias table before it
// is used as a service lookup key.
func FixSeriesID(series int) int {
	if fixed, ok := seriesAliases[series]; ok {
		return fixed
	}
	return series
}
