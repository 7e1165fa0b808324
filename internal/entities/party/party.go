// Package party defines the portable team document, the interchange
// contract between the export, import, and wiki render transforms.
//
// The document is encoded as JSON. Identifiers are decimal strings even
// though they are numeric, so they survive round-trips through JSON
// untouched. Sequences are positional: the index encodes the grid slot.
// A document is immutable once produced; consumers read it and discard it.
package party

import (
	"encoding/json"

	"github.com/granblue-tools/hensei-transfer/internal/errors"
)

// Locale is a game UI locale the document's display names are written in.
type Locale string

// Supported locales.
const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
)

// Valid reports whether the locale is one of the supported locales.
func (l Locale) Valid() bool {
	return l == LocaleEN || l == LocaleJA
}

// Document is one exported team.
type Document struct {
	Lang Locale `json:"lang"`
	// Name is the user-set team name or the localized default.
	Name string `json:"name"`
	// Class is the localized class display name.
	Class string `json:"class"`
	// Extra marks the alternate party slot set.
	Extra bool `json:"extra"`
	// FriendSummon is the localized support summon name, empty when none
	// is selected.
	FriendSummon string `json:"friend_summon"`
	// Accessory is the job accessory ID; nil when the class carries none.
	Accessory *int `json:"accessory"`
	// Subskills lists the equipped class subskills by localized name, in
	// slot order. An empty string marks an unset slot.
	Subskills []string `json:"subskills"`

	Characters []Character `json:"characters"`
	// Weapons slot 0 is the main-hand weapon.
	Weapons []Weapon `json:"weapons"`
	// Summons slot 0 is the main summon.
	Summons    []Summon `json:"summons"`
	SubSummons []Summon `json:"sub_summons"`
}

// Character is one ally in the roster.
type Character struct {
	Name string `json:"name"`
	// ID is the game's character master ID, as a decimal string.
	ID    string `json:"id"`
	Uncap int    `json:"uncap"`
	// Ringed marks the permanent mastery ring.
	Ringed bool `json:"ringed,omitempty"`
	// Transcend is only meaningful at uncap 6.
	Transcend int `json:"transcend,omitempty"`
}

// Weapon is one weapon grid entry.
type Weapon struct {
	Name string `json:"name"`
	// Attr is the chosen element (1-6), present only for weapon series
	// whose element is player-selectable.
	Attr int `json:"attr,omitempty"`
	// ID is the game's weapon master ID with any element offset already
	// stripped.
	ID        string `json:"id"`
	Uncap     int    `json:"uncap"`
	Transcend int    `json:"transcend,omitempty"`

	Awakening *Awakening `json:"awakening,omitempty"`
	AX        []AXSkill  `json:"ax,omitempty"`
	// Keys holds the equipped weapon keys' skill IDs (not key IDs), in
	// key-slot order with trailing slots omitted.
	Keys []string `json:"keys,omitempty"`
}

// Awakening is a weapon's awakening selection.
type Awakening struct {
	// Type is the localized awakening type name.
	Type  string `json:"type"`
	Level int    `json:"lvl"`
}

// AXSkill is one AX modifier on a weapon.
type AXSkill struct {
	// ID is the game's AX skill ID as a decimal string.
	ID string `json:"id"`
	// Value is the displayed magnitude, e.g. "+50%".
	Value string `json:"val"`
}

// Summon is one summon grid entry.
type Summon struct {
	Name      string `json:"name"`
	ID        string `json:"id"`
	Uncap     int    `json:"uncap"`
	Transcend int    `json:"transcend,omitempty"`
	// QuickSummon marks the summon set for quick summoning.
	QuickSummon bool `json:"qs,omitempty"`
}

// Parse decodes and validates a portable document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "document is not valid JSON")
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Encode renders the document as JSON. Output is deterministic for a
// given document.
func (d *Document) Encode() ([]byte, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode document")
	}
	return data, nil
}

// Validate checks the document's invariants.
func (d *Document) Validate() error {
	vb := errors.NewValidationBuilder()

	if !d.Lang.Valid() {
		vb.Fieldf("lang", "unsupported locale %q", d.Lang)
	}

	for i, ch := range d.Characters {
		validateTiers(vb, "characters", i, ch.Uncap, ch.Transcend, 6)
	}
	for i, wp := range d.Weapons {
		validateTiers(vb, "weapons", i, wp.Uncap, wp.Transcend, 6)
		if wp.Attr < 0 || wp.Attr > 6 {
			vb.Fieldf("weapons", "entry %d: element %d out of range", i, wp.Attr)
		}
	}
	for i, sm := range d.Summons {
		validateTiers(vb, "summons", i, sm.Uncap, sm.Transcend, 6)
	}
	for i, sm := range d.SubSummons {
		validateTiers(vb, "sub_summons", i, sm.Uncap, sm.Transcend, 6)
	}

	return vb.Build()
}

func validateTiers(vb *errors.ValidationBuilder, field string, i, uncap, transcend, maxUncap int) {
	if uncap < 0 || uncap > maxUncap {
		vb.Fieldf(field, "entry %d: uncap %d out of range", i, uncap)
	}
	if transcend != 0 {
		if transcend < 1 || transcend > 5 {
			vb.Fieldf(field, "entry %d: transcendence %d out of range", i, transcend)
		}
		if uncap != maxUncap {
			vb.Fieldf(field, "entry %d: transcendence requires uncap %d", i, maxUncap)
		}
	}
}
