package export_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granblue-tools/hensei-transfer/internal/converters/export"
	"github.com/granblue-tools/hensei-transfer/internal/entities/gbf"
	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
	"github.com/granblue-tools/hensei-transfer/internal/testutils"
)

func TestConvert_PartyBasics(t *testing.T) {
	snap := testutils.NewSnapshotBuilder().
		WithClass("Kengo").
		WithFriendSummon("Huanglong").
		WithSubskills("Sword of Lumiel", "", "Dual Arts").
		WithFamiliar(4).
		Build()

	doc, err := export.Convert(snap)
	require.NoError(t, err)

	assert.Equal(t, party.LocaleEN, doc.Lang)
	assert.Equal(t, "Test team", doc.Name)
	assert.Equal(t, "Kengo", doc.Class)
	assert.Equal(t, "Huanglong", doc.FriendSummon)
	assert.Equal(t, []string{"Sword of Lumiel", "", "Dual Arts"}, doc.Subskills)
	require.NotNil(t, doc.Accessory)
	assert.Equal(t, 4, *doc.Accessory)
	assert.Empty(t, doc.Characters)
	assert.Empty(t, doc.Weapons)
}

func TestConvert_NoAccessory(t *testing.T) {
	doc, err := export.Convert(testutils.NewSnapshotBuilder().Build())
	require.NoError(t, err)
	assert.Nil(t, doc.Accessory)
}

func TestConvert_NullSlotFiltering(t *testing.T) {
	// slots 2 and 4 are structurally present but unfilled
	snap := testutils.NewSnapshotBuilder().
		WithNPC(1, testutils.NPC("Anila", "3040098000", 5)).
		WithNPC(2, gbf.NPC{}).
		WithNPC(3, testutils.NPC("Mahira", "3040113000", 4)).
		WithNPC(4, gbf.NPC{}).
		WithNPC(5, testutils.NPC("Vajra", "3040143000", 6)).
		Build()

	doc, err := export.Convert(snap)
	require.NoError(t, err)

	require.Len(t, doc.Characters, 3, "output is dense, not sparse")
	assert.Equal(t, "Anila", doc.Characters[0].Name)
	assert.Equal(t, "Mahira", doc.Characters[1].Name)
	assert.Equal(t, "Vajra", doc.Characters[2].Name)
}

func TestConvert_CharacterProgression(t *testing.T) {
	npc := testutils.NPC("Anila", "3040098000", 6)
	npc.Param.Phase = "3"
	npc.Param.HasPerpetualMastery = true

	doc, err := export.Convert(testutils.NewSnapshotBuilder().WithNPC(1, npc).Build())
	require.NoError(t, err)

	require.Len(t, doc.Characters, 1)
	ch := doc.Characters[0]
	assert.Equal(t, 6, ch.Uncap)
	assert.Equal(t, 3, ch.Transcend)
	assert.True(t, ch.Ringed)
}

func TestConvert_WeaponUncapDerivation(t *testing.T) {
	tests := []struct {
		level         int
		wantUncap     int
		wantTranscend int
	}{
		{39, 0, 0},
		{41, 1, 0},
		{100, 3, 0},
		{201, 6, 1},
		{245, 6, 5},
	}

	for _, tt := range tests {
		snap := testutils.NewSnapshotBuilder().
			WithWeapon(1, testutils.Weapon("Blade", "1040000000", "2", "1", tt.level)).
			Build()

		doc, err := export.Convert(snap)
		require.NoError(t, err)
		require.Len(t, doc.Weapons, 1)
		assert.Equal(t, tt.wantUncap, doc.Weapons[0].Uncap, "level %d", tt.level)
		assert.Equal(t, tt.wantTranscend, doc.Weapons[0].Transcend, "level %d", tt.level)
	}
}

func TestConvert_MultielementNormalization(t *testing.T) {
	// series 13 with element 3: internal ID carries a +200 offset
	snap := testutils.NewSnapshotBuilder().
		WithWeapon(1, testutils.Weapon("Ultima Sword", "1200", "13", "3", 150)).
		Build()

	doc, err := export.Convert(snap)
	require.NoError(t, err)

	require.Len(t, doc.Weapons, 1)
	wp := doc.Weapons[0]
	assert.Equal(t, "1000", wp.ID, "element offset stripped")
	assert.Equal(t, 3, wp.Attr, "element emitted explicitly")
}

func TestConvert_FixedElementWeaponKeepsID(t *testing.T) {
	snap := testutils.NewSnapshotBuilder().
		WithWeapon(1, testutils.Weapon("Scythe", "1040310700", "3", "4", 150)).
		Build()

	doc, err := export.Convert(snap)
	require.NoError(t, err)

	wp := doc.Weapons[0]
	assert.Equal(t, "1040310700", wp.ID)
	assert.Zero(t, wp.Attr, "fixed-element weapons carry no element tag")
}

func TestConvert_WeaponKeysBySeriesAndSlot(t *testing.T) {
	opus := testutils.Weapon("Sword of Renunciation", "1040018000", "3", "1", 200)
	// series 3 keys live in slots 2 and 3 only
	opus.Skill1 = &gbf.WeaponSkill{ID: "500", Name: "base skill"}
	opus.Skill2 = &gbf.WeaponSkill{ID: "1240", Name: "pendulum"}
	opus.Skill3 = &gbf.WeaponSkill{ID: "505", Name: "teluma"}

	snap := testutils.NewSnapshotBuilder().WithWeapon(1, opus).Build()

	doc, err := export.Convert(snap)
	require.NoError(t, err)

	assert.Equal(t, []string{"1240", "505"}, doc.Weapons[0].Keys,
		"slot 1 is not keyable for series 3; keys keep slot order")
}

func TestConvert_WeaponKeyTrailingOmission(t *testing.T) {
	ultima := testutils.Weapon("Ultima Blade", "1040011900", "13", "1", 200)
	ultima.Skill1 = &gbf.WeaponSkill{ID: "703", Name: "gauph key"}
	// slots 2 and 3 unassigned

	doc, err := export.Convert(testutils.NewSnapshotBuilder().WithWeapon(1, ultima).Build())
	require.NoError(t, err)

	assert.Equal(t, []string{"703"}, doc.Weapons[0].Keys)
}

func TestConvert_WeaponAXAndAwakening(t *testing.T) {
	form := "Attack"
	wp := testutils.Weapon("Fediel Spine", "1040315500", "32", "6", 150)
	wp.Param.Arousal = gbf.Arousal{IsArousalWeapon: true, FormName: &form, Level: 3}
	wp.Param.AugmentSkillInfo = [][]gbf.AugmentSkill{{
		{SkillID: 1588, ShowValue: "+20%"},
		{SkillID: 1591, ShowValue: "+15"},
	}}

	doc, err := export.Convert(testutils.NewSnapshotBuilder().WithWeapon(1, wp).Build())
	require.NoError(t, err)

	got := doc.Weapons[0]
	require.NotNil(t, got.Awakening)
	assert.Equal(t, "Attack", got.Awakening.Type)
	assert.Equal(t, 3, got.Awakening.Level)
	assert.Equal(t, []party.AXSkill{
		{ID: "1588", Value: "+20%"},
		{ID: "1591", Value: "+15"},
	}, got.AX)
}

func TestConvert_NotAwakenedWeapon(t *testing.T) {
	wp := testutils.Weapon("Plain Blade", "1040000100", "2", "1", 100)
	wp.Param.Arousal = gbf.Arousal{IsArousalWeapon: false}

	doc, err := export.Convert(testutils.NewSnapshotBuilder().WithWeapon(1, wp).Build())
	require.NoError(t, err)
	assert.Nil(t, doc.Weapons[0].Awakening)
}

func TestConvert_SummonsAndQuickSummon(t *testing.T) {
	snap := testutils.NewSnapshotBuilder().
		WithSummon(1, testutils.Summon("Bahamut", "2040003000", 5, 150, "7001")).
		WithSummon(2, testutils.Summon("Lucifer", "2040056000", 6, 245, "7002")).
		WithSubSummon(1, testutils.Summon("Huanglong", "2040157000", 4, 100, "7003")).
		WithQuickSummon(7002).
		Build()

	doc, err := export.Convert(snap)
	require.NoError(t, err)

	require.Len(t, doc.Summons, 2)
	assert.False(t, doc.Summons[0].QuickSummon)
	assert.Zero(t, doc.Summons[0].Transcend)

	lucifer := doc.Summons[1]
	assert.True(t, lucifer.QuickSummon, "quick summon matched by inventory ID")
	assert.Equal(t, 6, lucifer.Uncap)
	assert.Equal(t, 5, lucifer.Transcend)

	require.Len(t, doc.SubSummons, 1)
	assert.Equal(t, "Huanglong", doc.SubSummons[0].Name)
}

func TestConvert_ExtraDeckSlots(t *testing.T) {
	base := testutils.NewSnapshotBuilder().
		WithWeapon(1, testutils.Weapon("Mainhand", "1040000000", "2", "1", 100)).
		WithWeapon(11, testutils.Weapon("Extra", "1040000100", "2", "1", 100))

	// extra flag not set: slot 11 is ignored
	doc, err := export.Convert(base.Build())
	require.NoError(t, err)
	assert.Len(t, doc.Weapons, 1)

	doc, err = export.Convert(base.WithExtraDeck().Build())
	require.NoError(t, err)
	assert.Len(t, doc.Weapons, 2)
	assert.True(t, doc.Extra)
}

func TestConvert_Deterministic(t *testing.T) {
	snap := testutils.NewSnapshotBuilder().
		WithNPC(1, testutils.NPC("Anila", "3040098000", 6)).
		WithWeapon(1, testutils.Weapon("Blade", "1200", "13", "2", 245)).
		WithSummon(1, testutils.Summon("Shiva", "2040414000", 5, 200, "7001")).
		Build()

	first, err := export.Convert(snap)
	require.NoError(t, err)
	firstJSON, err := first.Encode()
	require.NoError(t, err)

	second, err := export.Convert(snap)
	require.NoError(t, err)
	secondJSON, err := second.Encode()
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON, "repeat exports are byte-identical")
}

func TestConvert_BadNumericField(t *testing.T) {
	wp := testutils.Weapon("Broken", "1040000000", "2", "1", 100)
	wp.Param.Level = "not-a-number"

	_, err := export.Convert(testutils.NewSnapshotBuilder().WithWeapon(1, wp).Build())
	assert.Error(t, err, "shape violations are fatal")
}
