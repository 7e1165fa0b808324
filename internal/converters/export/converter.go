// Package export converts a game-state snapshot into a portable team
// document.
//
// The conversion is a direct-representation transform over already-live
// state: there are no recoverable error conditions, only assertion
// failures when the snapshot violates the game client's documented shape.
package export

import (
	"strconv"

	"github.com/granblue-tools/hensei-transfer/internal/entities/gbf"
	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
	"github.com/granblue-tools/hensei-transfer/internal/errors"
	"github.com/granblue-tools/hensei-transfer/internal/mappings"
)

// Convert builds the portable document for a snapshot. Running it twice
// on the same snapshot yields identical documents.
func Convert(snap *gbf.Snapshot) (*party.Document, error) {
	deck := snap.View.DeckModel.Attributes.Deck
	pc := deck.PC

	characters, err := convertNPCs(deck.OrderedNPCs())
	if err != nil {
		return nil, err
	}
	weapons, err := convertWeapons(pc.OrderedWeapons())
	if err != nil {
		return nil, err
	}
	summons, err := convertSummons(pc.OrderedSummons(), pc.QuickUserSummonID)
	if err != nil {
		return nil, err
	}
	subSummons, err := convertSummons(pc.OrderedSubSummons(), nil)
	if err != nil {
		return nil, err
	}

	doc := &party.Document{
		Lang:         party.Locale(snap.Lang),
		Name:         deck.Name,
		Class:        pc.Job.Master.Name,
		Extra:        pc.IsExtraDeck,
		FriendSummon: pc.DamageInfo.SummonName,
		Subskills:    convertSubskills(pc.SetAction),
		Characters:   characters,
		Weapons:      weapons,
		Summons:      summons,
		SubSummons:   subSummons,
	}

	if accessory := pc.AccessoryID(); accessory != 0 {
		doc.Accessory = &accessory
	}

	return doc, nil
}

func convertSubskills(setAction []gbf.Subskill) []string {
	out := make([]string, len(setAction))
	for i, action := range setAction {
		out[i] = action.Name
	}
	return out
}

// convertNPCs drops unfilled slots; the output is dense, the relative
// order of filled slots is preserved.
func convertNPCs(npcs []gbf.NPC) ([]party.Character, error) {
	out := make([]party.Character, 0, len(npcs))
	for _, npc := range npcs {
		if !npc.Filled() {
			continue
		}

		uncap, err := atoi("npc evolution", npc.Param.Evolution)
		if err != nil {
			return nil, err
		}
		transcend, err := atoi("npc phase", npc.Param.Phase)
		if err != nil {
			return nil, err
		}

		ch := party.Character{
			Name:   npc.Master.Name,
			ID:     npc.Master.ID,
			Uncap:  uncap,
			Ringed: npc.Param.HasPerpetualMastery,
		}
		if transcend > 0 {
			ch.Transcend = transcend
		}
		out = append(out, ch)
	}
	return out, nil
}

func convertWeapons(weapons []gbf.Weapon) ([]party.Weapon, error) {
	out := make([]party.Weapon, 0, len(weapons))
	for _, wp := range weapons {
		if !wp.Filled() {
			continue
		}

		id, err := atoi("weapon id", wp.Master.ID)
		if err != nil {
			return nil, err
		}
		series, err := atoi("weapon series", wp.Master.SeriesID)
		if err != nil {
			return nil, err
		}
		attr, err := atoi("weapon attribute", wp.Master.Attribute)
		if err != nil {
			return nil, err
		}
		level, err := atoi("weapon level", wp.Param.Level)
		if err != nil {
			return nil, err
		}

		entry := party.Weapon{
			Name:  wp.Master.Name,
			ID:    wp.Master.ID,
			Uncap: mappings.WeaponUncapFromLevel(level),
		}

		// Multi-element series bake the chosen element into the ID; the
		// document carries the base ID and the element separately.
		if mappings.Multielement(series) {
			entry.Attr = attr
			entry.ID = strconv.Itoa(mappings.NormalizeWeaponID(id, series, attr))
		}

		if entry.Uncap > 5 {
			entry.Transcend = mappings.TranscendenceFromLevel(level)
		}

		if arousal := wp.Param.Arousal; arousal.IsArousalWeapon && arousal.FormName != nil {
			entry.Awakening = &party.Awakening{
				Type:  *arousal.FormName,
				Level: arousal.Level,
			}
		}

		if augments := wp.Param.AugmentSkillInfo; len(augments) > 0 {
			for _, ax := range augments[0] {
				entry.AX = append(entry.AX, party.AXSkill{
					ID:    strconv.Itoa(ax.SkillID),
					Value: ax.ShowValue,
				})
			}
		}

		// Key slots are gated by series membership per slot position;
		// only assigned skills are emitted, in slot order.
		for slot := 0; slot < 3; slot++ {
			if !mappings.KeyableSlot(series, slot) {
				continue
			}
			if skill := wp.SkillAt(slot); skill != nil {
				entry.Keys = append(entry.Keys, skill.ID)
			}
		}

		out = append(out, entry)
	}
	return out, nil
}

func convertSummons(summons []gbf.Summon, quickSummonID *int) ([]party.Summon, error) {
	out := make([]party.Summon, 0, len(summons))
	for _, sm := range summons {
		if !sm.Filled() {
			continue
		}

		uncap, err := atoi("summon evolution", sm.Param.Evolution)
		if err != nil {
			return nil, err
		}

		entry := party.Summon{
			Name:  sm.Master.Name,
			ID:    sm.Master.ID,
			Uncap: uncap,
		}

		if uncap > 5 {
			level, err := atoi("summon level", sm.Param.Level)
			if err != nil {
				return nil, err
			}
			entry.Transcend = mappings.TranscendenceFromLevel(level)
		}

		// Quick summon selection refers to the inventory ID, not the
		// master ID.
		if quickSummonID != nil && sm.Param.ID == strconv.Itoa(*quickSummonID) {
			entry.QuickSummon = true
		}

		out = append(out, entry)
	}
	return out, nil
}

func atoi(field, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Internalf("game snapshot %s %q is not numeric", field, value)
	}
	return n, nil
}
