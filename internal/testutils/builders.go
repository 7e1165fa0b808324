// Package testutils provides fixture builders shared across test suites.
package testutils

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/granblue-tools/hensei-transfer/internal/entities/gbf"
)

// ServiceUUID mints a random service-style UUID for fixtures. The real
// service mints every ID; fixtures only need them to be distinct.
func ServiceUUID() string {
	return uuid.NewString()
}

// SnapshotBuilder assembles game-state snapshots for tests.
type SnapshotBuilder struct {
	snap *gbf.Snapshot
}

// NewSnapshotBuilder returns a builder with a minimal valid deck: English
// locale, a named job, and empty grids.
func NewSnapshotBuilder() *SnapshotBuilder {
	b := &SnapshotBuilder{snap: &gbf.Snapshot{Lang: "en"}}
	deck := &b.deck().Deck
	deck.Name = "Test team"
	deck.PC.Job.Master = gbf.JobMaster{Name: "Viking", ID: "130301"}
	deck.NPC = make(map[string]gbf.NPC)
	deck.PC.Weapons = make(map[string]gbf.Weapon)
	deck.PC.Summons = make(map[string]gbf.Summon)
	deck.PC.SubSummons = make(map[string]gbf.Summon)
	return b
}

func (b *SnapshotBuilder) deck() *gbf.DeckAttributes {
	return &b.snap.View.DeckModel.Attributes
}

// WithLang sets the snapshot locale.
func (b *SnapshotBuilder) WithLang(lang string) *SnapshotBuilder {
	b.snap.Lang = lang
	return b
}

// WithClass sets the job display name.
func (b *SnapshotBuilder) WithClass(name string) *SnapshotBuilder {
	b.deck().Deck.PC.Job.Master.Name = name
	return b
}

// WithFriendSummon sets the selected support summon name.
func (b *SnapshotBuilder) WithFriendSummon(name string) *SnapshotBuilder {
	b.deck().Deck.PC.DamageInfo.SummonName = name
	return b
}

// WithExtraDeck opens the extra weapon slots.
func (b *SnapshotBuilder) WithExtraDeck() *SnapshotBuilder {
	b.deck().Deck.PC.IsExtraDeck = true
	return b
}

// WithSubskills fills the set_action list; empty strings are unset slots.
func (b *SnapshotBuilder) WithSubskills(names ...string) *SnapshotBuilder {
	actions := make([]gbf.Subskill, len(names))
	for i, name := range names {
		if name != "" {
			actions[i] = gbf.Subskill{Name: name, SetActionID: strconv.Itoa(100 + i)}
		}
	}
	b.deck().Deck.PC.SetAction = actions
	return b
}

// WithFamiliar equips a Manatura accessory.
func (b *SnapshotBuilder) WithFamiliar(id int) *SnapshotBuilder {
	b.deck().Deck.PC.FamiliarID = &id
	return b
}

// WithShield equips a shield accessory.
func (b *SnapshotBuilder) WithShield(id int) *SnapshotBuilder {
	b.deck().Deck.PC.ShieldID = &id
	return b
}

// WithQuickSummon selects the quick summon by inventory ID.
func (b *SnapshotBuilder) WithQuickSummon(inventoryID int) *SnapshotBuilder {
	b.deck().Deck.PC.QuickUserSummonID = &inventoryID
	return b
}

// WithNPC places an ally in the given roster slot (1-5).
func (b *SnapshotBuilder) WithNPC(slot int, npc gbf.NPC) *SnapshotBuilder {
	b.deck().Deck.NPC[strconv.Itoa(slot)] = npc
	return b
}

// WithWeapon places a weapon in the given grid slot (1-13).
func (b *SnapshotBuilder) WithWeapon(slot int, weapon gbf.Weapon) *SnapshotBuilder {
	b.deck().Deck.PC.Weapons[strconv.Itoa(slot)] = weapon
	return b
}

// WithSummon places a summon in the given grid slot (1-5).
func (b *SnapshotBuilder) WithSummon(slot int, summon gbf.Summon) *SnapshotBuilder {
	b.deck().Deck.PC.Summons[strconv.Itoa(slot)] = summon
	return b
}

// WithSubSummon places a summon in the given sub slot (1-2).
func (b *SnapshotBuilder) WithSubSummon(slot int, summon gbf.Summon) *SnapshotBuilder {
	b.deck().Deck.PC.SubSummons[strconv.Itoa(slot)] = summon
	return b
}

// Build returns the assembled snapshot.
func (b *SnapshotBuilder) Build() *gbf.Snapshot {
	return b.snap
}

// NPC builds a filled ally slot.
func NPC(name, id string, evolution int) gbf.NPC {
	return gbf.NPC{
		Master: &gbf.NPCMaster{Name: name, ID: id},
		Param:  &gbf.NPCParam{Level: "100", Evolution: strconv.Itoa(evolution), Phase: "0"},
	}
}

// Weapon builds a filled weapon slot.
func Weapon(name, id, seriesID, attribute string, level int) gbf.Weapon {
	return gbf.Weapon{
		Master: &gbf.WeaponMaster{Name: name, ID: id, SeriesID: seriesID, Attribute: attribute},
		Param:  &gbf.WeaponParam{Level: strconv.Itoa(level), ID: 9000000},
	}
}

// Summon builds a filled summon slot.
func Summon(name, id string, evolution, level int, inventoryID string) gbf.Summon {
	return gbf.Summon{
		Master: &gbf.SummonMaster{Name: name, ID: id},
		Param:  &gbf.SummonParam{Evolution: strconv.Itoa(evolution), Level: strconv.Itoa(level), ID: inventoryID},
	}
}
