// Package gbf models the game client's in-memory deck state.
//
// The shape mirrors what the live client exposes; it is asserted, not
// validated. Numeric fields the game serializes as strings stay strings
// here and are parsed at the point of use.
package gbf

import (
	"encoding/json"
	"strconv"
)

// Snapshot is one capture of the game client's deck state.
type Snapshot struct {
	// Lang is the game UI locale, "en" or "ja". Every display name in the
	// snapshot is localized to it.
	Lang string `json:"lang"`
	View View   `json:"view"`
}

// View wraps the deck model the game keeps on its view object.
type View struct {
	DeckModel DeckModel `json:"deck_model"`
}

// DeckModel mirrors the Backbone-style attribute wrapper.
type DeckModel struct {
	Attributes DeckAttributes `json:"attributes"`
}

// DeckAttributes holds the deck itself.
type DeckAttributes struct {
	Deck Deck `json:"deck"`
}

// Deck is the team being edited: the player, allies, and grids.
type Deck struct {
	// Name is the user-set team name, or the localized default.
	Name string          `json:"name"`
	PC   PlayerCharacter `json:"pc"`
	// NPC is the ally roster, keyed by slot number "1" through "5".
	NPC map[string]NPC `json:"npc"`
}

// PlayerCharacter is the player's own unit plus the grids hanging off it.
type PlayerCharacter struct {
	Job Job `json:"job"`
	// FamiliarID is the Manatura ID (Manadiver only).
	FamiliarID *int `json:"familiar_id"`
	// ShieldID is the shield ID (Paladin only).
	ShieldID *int `json:"shield_id"`
	// SetAction lists the equipped subskills; unset entries decode to the
	// zero Subskill because the game emits them as empty arrays.
	SetAction   []Subskill `json:"set_action"`
	IsExtraDeck bool       `json:"isExtraDeck"`
	DamageInfo  DamageInfo `json:"damage_info"`
	// Weapons is the weapon grid, keyed by slot "1" through "10", plus
	// "11" through "13" when the extra deck is open.
	Weapons map[string]Weapon `json:"weapons"`
	// Summons is keyed by slot "1" through "5", SubSummons "1" and "2".
	Summons           map[string]Summon `json:"summons"`
	SubSummons        map[string]Summon `json:"sub_summons"`
	QuickUserSummonID *int              `json:"quick_user_summon_id"`
}

// Job is the player's current class.
type Job struct {
	Master JobMaster `json:"master"`
}

// JobMaster carries the class master data. The name is localized.
type JobMaster struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// DamageInfo is the damage simulator config; its summon name is the
// selected friend summon, localized.
type DamageInfo struct {
	SummonName string `json:"summon_name"`
}

// Subskill is one equipped class subskill, by localized name.
type Subskill struct {
	Name        string `json:"name"`
	SetActionID string `json:"set_action_id"`
}

// UnmarshalJSON tolerates the game's empty-array encoding for unset
// subskill slots.
func (s *Subskill) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '[' {
		*s = Subskill{}
		return nil
	}

	type plain Subskill
	return json.Unmarshal(data, (*plain)(s))
}

// Set reports whether the subskill slot is filled.
func (s Subskill) Set() bool {
	return s.Name != ""
}

// NPC is one ally slot. Master and Param are nil for unfilled slots.
type NPC struct {
	Master *NPCMaster `json:"master"`
	Param  *NPCParam  `json:"param"`
}

// Filled reports whether the slot holds a unit.
func (n NPC) Filled() bool {
	return n.Master != nil && n.Param != nil
}

// NPCMaster is the ally's master data. The name is localized and matches
// the active skin where one is equipped.
type NPCMaster struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// NPCParam is the ally's per-instance progression state.
type NPCParam struct {
	Level     string `json:"level"`
	Evolution string `json:"evolution"`
	// HasPerpetualMastery is the permanent mastery ring flag; the game
	// exposes no data on the other masteries.
	HasPerpetualMastery bool `json:"has_npcaugment_constant"`
	// Phase is the transcendence step, "0" when none.
	Phase string `json:"phase"`
}

// Weapon is one weapon grid slot. Master and Param are nil for unfilled
// slots.
type Weapon struct {
	Master *WeaponMaster `json:"master"`
	Param  *WeaponParam  `json:"param"`
	Skill1 *WeaponSkill  `json:"skill1"`
	Skill2 *WeaponSkill  `json:"skill2"`
	Skill3 *WeaponSkill  `json:"skill3"`
}

// Filled reports whether the slot holds a weapon.
func (w Weapon) Filled() bool {
	return w.Master != nil && w.Param != nil
}

// SkillAt returns the weapon skill in the given slot (0-2), or nil.
func (w Weapon) SkillAt(slot int) *WeaponSkill {
	switch slot {
	case 0:
		return w.Skill1
	case 1:
		return w.Skill2
	case 2:
		return w.Skill3
	default:
		return nil
	}
}

// WeaponMaster is the weapon's master data.
type WeaponMaster struct {
	Name     string `json:"name"`
	ID       string `json:"id"`
	SeriesID string `json:"series_id"`
	// Attribute is the element ordinal "1" through "6".
	Attribute string `json:"attribute"`
}

// WeaponParam is the weapon's per-instance state.
type WeaponParam struct {
	Level   string  `json:"level"`
	Arousal Arousal `json:"arousal"`
	// AugmentSkillInfo is the AX skill list, nested one array deep; it is
	// empty when the weapon has no AX skills.
	AugmentSkillInfo [][]AugmentSkill `json:"augment_skill_info"`
	// ID is the inventory ID, not the master ID.
	ID int `json:"id"`
}

// Arousal is the weapon awakening state.
type Arousal struct {
	IsArousalWeapon bool `json:"is_arousal_weapon"`
	// FormName is the localized awakening type name; nil when not awakened.
	FormName *string `json:"form_name"`
	Level    int     `json:"level"`
}

// AugmentSkill is one AX skill on a weapon.
type AugmentSkill struct {
	SkillID int `json:"skill_id"`
	// ShowValue is the displayed magnitude, e.g. "+50%".
	ShowValue string `json:"show_value"`
}

// WeaponSkill is one of the weapon's up to three skills.
type WeaponSkill struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Summon is one summon grid slot.
type Summon struct {
	Master *SummonMaster `json:"master"`
	Param  *SummonParam  `json:"param"`
}

// Filled reports whether the slot holds a summon.
func (s Summon) Filled() bool {
	return s.Master != nil && s.Param != nil
}

// SummonMaster is the summon's master data.
type SummonMaster struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// SummonParam is the summon's per-instance state.
type SummonParam struct {
	Evolution string `json:"evolution"`
	Level     string `json:"level"`
	// ID is the inventory ID; quick summon selection refers to it.
	ID string `json:"id"`
}

// slotOrder walks a numerically keyed table in slot order. The game keys
// its grids "1".."N" and slot position is game-semantic, so iteration
// order must not depend on map order.
func slotOrder[T any](table map[string]T, maxSlots int) []T {
	out := make([]T, 0, len(table))
	for i := 1; i <= maxSlots; i++ {
		if v, ok := table[strconv.Itoa(i)]; ok {
			out = append(out, v)
		}
	}
	return out
}

// OrderedNPCs returns the ally slots in grid order.
func (d Deck) OrderedNPCs() []NPC {
	return slotOrder(d.NPC, 5)
}

// OrderedWeapons returns the weapon slots in grid order, slot 1 first.
// Slots 11-13 appear only when the extra deck is open.
func (pc PlayerCharacter) OrderedWeapons() []Weapon {
	maxSlots := 10
	if pc.IsExtraDeck {
		maxSlots = 13
	}
	return slotOrder(pc.Weapons, maxSlots)
}

// OrderedSummons returns the summon slots in grid order.
func (pc PlayerCharacter) OrderedSummons() []Summon {
	return slotOrder(pc.Summons, 5)
}

// OrderedSubSummons returns the sub-summon slots in grid order.
func (pc PlayerCharacter) OrderedSubSummons() []Summon {
	return slotOrder(pc.SubSummons, 2)
}

// AccessoryID returns the job accessory ID (Manatura or shield), or 0
// when the class has none equipped.
func (pc PlayerCharacter) AccessoryID() int {
	if pc.FamiliarID != nil && *pc.FamiliarID != 0 {
		return *pc.FamiliarID
	}
	if pc.ShieldID != nil && *pc.ShieldID != 0 {
		return *pc.ShieldID
	}
	return 0
}
