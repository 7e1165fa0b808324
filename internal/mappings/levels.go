package mappings

// The game state carries no uncap tier for weapons, only the raw level.
// The tier is recovered by walking fixed level thresholds: a threshold
// counts once the level strictly exceeds it.
var (
	weaponUncapLevels   = []int{40, 60, 80, 100, 150, 200}
	transcendenceLevels = []int{210, 220, 230, 240}
)

// WeaponUncapFromLevel derives a weapon's uncap tier (0-6) from its level.
func WeaponUncapFromLevel(level int) int {
	uncap := 0
	for _, threshold := range weaponUncapLevels {
		if level > threshold {
			uncap++
		}
	}
	return uncap
}

// TranscendenceFromLevel derives the transcendence tier (1-5) from a level
// past the last uncap threshold. Only meaningful at uncap tier 6.
func TranscendenceFromLevel(level int) int {
	tier := 1
	for _, threshold := range transcendenceLevels {
		if level > threshold {
			tier++
		}
	}
	return tier
}

// keyableSeries lists, per key slot, the weapon series whose entities can
// carry a key in that slot.
var keyableSeries = [3][]int{
	{13},
	{3, 13, 19, 27, 40},
	{3, 13, 27, 40},
}

// KeyableSlot reports whether weapons of the given series accept a key in
// the given slot (0-2).
func KeyableSlot(series, slot int) bool {
	if slot < 0 || slot >= len(keyableSeries) {
		return false
	}
	for _, s := range keyableSeries[slot] {
		if s == series {
			return true
		}
	}
	return false
}

// multielementSeries lists the weapon series whose element is chosen by the
// player on crafting. Their weapon IDs embed the chosen element as an
// offset of (element-1)*100 over the base ID.
var multielementSeries = []int{13, 17, 19}

// Multielement reports whether the series encodes a player-chosen element
// into the weapon ID.
func Multielement(series int) bool {
	for _, s := range multielementSeries {
		if s == series {
			return true
		}
	}
	return false
}

// NormalizeWeaponID strips the element offset from a multi-element weapon
// ID, returning the base ID. IDs of other series pass through unchanged.
func NormalizeWeaponID(id, series, attr int) int {
	if Multielement(series) && attr >= 1 && attr <= 6 {
		return id - (attr-1)*100
	}
	return id
}
