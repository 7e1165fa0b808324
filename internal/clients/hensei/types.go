package hensei

import (
	"encoding/json"
	"strconv"

	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
)

// LocalizedName is a display name in both supported locales.
type LocalizedName struct {
	EN string `json:"en"`
	JA string `json:"ja"`
}

// In returns the name in the given locale.
func (n LocalizedName) In(locale party.Locale) string {
	if locale == party.LocaleJA {
		return n.JA
	}
	return n.EN
}

// Party is a created team container.
type Party struct {
	// ID is the service UUID for the team.
	ID string `json:"id"`
	// Shortcode forms the team's canonical path, /p/<shortcode>.
	Shortcode string `json:"shortcode"`
}

// SearchHit is one full-text search result. All searchable entity kinds
// carry the fields needed for disambiguation.
type SearchHit struct {
	ID   string        `json:"id"`
	Name LocalizedName `json:"name"`
	// GranblueID is the game's master ID for the entity, used as the
	// disambiguating predicate because search is full-text, not exact.
	GranblueID string `json:"granblue_id"`
}

// SearchKind names a searchable entity kind.
type SearchKind string

// Searchable entity kinds.
const (
	SearchJobSkills  SearchKind = "job_skills"
	SearchCharacters SearchKind = "characters"
	SearchWeapons    SearchKind = "weapons"
	SearchSummons    SearchKind = "summons"
)

// SearchQuery is a full-text search request.
type SearchQuery struct {
	Query  string
	Locale party.Locale
	// JobID scopes job-skill searches to one job.
	JobID string
}

// Accessory is a job accessory entry.
type Accessory struct {
	ID         string `json:"id"`
	GranblueID string `json:"granblue_id"`
}

// WeaponKey is a weapon key entity.
type WeaponKey struct {
	ID         string        `json:"id"`
	Name       LocalizedName `json:"name"`
	GranblueID int           `json:"granblue_id"`
	Slot       int           `json:"slot"`
	Series     []int         `json:"series"`
}

// GridCharacter is a character placed in a team slot.
type GridCharacter struct {
	ID string `json:"id"`
}

// GridWeapon is a weapon placed in a grid slot, with the master object
// the dependent updates need.
type GridWeapon struct {
	ID     string           `json:"id"`
	Object GridWeaponObject `json:"object"`
}

// GridWeaponObject is the placed weapon's master data.
type GridWeaponObject struct {
	Awakenings []AwakeningOption `json:"awakenings"`
	Series     flexibleInt       `json:"series"`
}

// SeriesID returns the weapon's series as an int.
func (o GridWeaponObject) SeriesID() int {
	return int(o.Series)
}

// AwakeningOption is one awakening type a weapon supports.
type AwakeningOption struct {
	ID   string        `json:"id"`
	Name LocalizedName `json:"name"`
}

// GridSummon is a summon placed in a grid slot.
type GridSummon struct {
	ID     string           `json:"id"`
	Object GridSummonObject `json:"object"`
}

// GridSummonObject is the placed summon's master data.
type GridSummonObject struct {
	Uncap UncapSupport `json:"uncap"`
}

// UncapSupport flags which progression stages a summon supports.
type UncapSupport struct {
	FLB bool `json:"flb"`
	ULB bool `json:"ulb"`
	XLB bool `json:"xlb"`
}

// MaxLevels returns the highest uncap and transcendence tiers the summon
// supports.
func (u UncapSupport) MaxLevels() (uncap, transcend int) {
	switch {
	case u.XLB:
		return 6, 5
	case u.ULB:
		return 5, 0
	case u.FLB:
		return 4, 0
	default:
		return 3, 0
	}
}

// AddCharacterInput places a character into a roster position.
type AddCharacterInput struct {
	PartyID     string
	CharacterID string
	Position    int
	UncapLevel  int
}

// AddWeaponInput places a weapon into a grid position. Position -1 with
// Mainhand set is the main-hand slot.
type AddWeaponInput struct {
	PartyID    string
	WeaponID   string
	Position   int
	Mainhand   bool
	UncapLevel int
}

// AddSummonInput places a summon into a grid position. Position -1 with
// Main set is the main summon; position 6 with Friend set is the support
// summon.
type AddSummonInput struct {
	PartyID    string
	SummonID   string
	Position   int
	Main       bool
	Friend     bool
	UncapLevel int
}

// GridCharacterUpdate is a partial update to a placed character. Nil
// fields are left untouched.
type GridCharacterUpdate struct {
	Perpetuity        *bool `json:"perpetuity,omitempty"`
	UncapLevel        *int  `json:"uncap_level,omitempty"`
	TranscendenceStep *int  `json:"transcendence_step,omitempty"`
}

// GridWeaponUpdate is a partial update to a placed weapon. Nil fields are
// left untouched.
type GridWeaponUpdate struct {
	Element           *int    `json:"element,omitempty"`
	UncapLevel        *int    `json:"uncap_level,omitempty"`
	TranscendenceStep *int    `json:"transcendence_step,omitempty"`
	WeaponKey1ID      *string `json:"weapon_key1_id,omitempty"`
	WeaponKey2ID      *string `json:"weapon_key2_id,omitempty"`
	WeaponKey3ID      *string `json:"weapon_key3_id,omitempty"`
	AXModifier1       *int    `json:"ax_modifier1,omitempty"`
	AXStrength1       *int    `json:"ax_strength1,omitempty"`
	AXModifier2       *int    `json:"ax_modifier2,omitempty"`
	AXStrength2       *int    `json:"ax_strength2,omitempty"`
}

// WeaponKeyField returns a pointer to the key ID field for the given key
// slot (0-2).
func (u *GridWeaponUpdate) WeaponKeyField(slot int) **string {
	switch slot {
	case 0:
		return &u.WeaponKey1ID
	case 1:
		return &u.WeaponKey2ID
	case 2:
		return &u.WeaponKey3ID
	default:
		return nil
	}
}

// flexibleInt decodes JSON numbers that the service sometimes encodes as
// strings.
type flexibleInt int

func (f *flexibleInt) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n = json.Number(s)
	}
	v, err := strconv.Atoi(n.String())
	if err != nil {
		return err
	}
	*f = flexibleInt(v)
	return nil
}
