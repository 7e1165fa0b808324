package wiki_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granblue-tools/hensei-transfer/internal/converters/wiki"
	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
	"github.com/granblue-tools/hensei-transfer/internal/errors"
)

func TestRender_RejectsNonEnglish(t *testing.T) {
	_, err := wiki.Render(&party.Document{Lang: party.LocaleJA})
	require.Error(t, err)
	assert.Equal(t, errors.CodeFailedPrecondition, errors.GetCode(err))
}

func TestRender_FullSpread(t *testing.T) {
	doc := &party.Document{
		Lang:         party.LocaleEN,
		Class:        "Kengo",
		FriendSummon: "Huanglong",
		Subskills:    []string{"Sword of Lumiel", "", "Dual Arts"},
		Characters: []party.Character{
			{Name: "Anila", Uncap: 6, Transcend: 3},
			{Name: "Mahira", Uncap: 4},
		},
		Weapons: []party.Weapon{
			{Name: "Sword of Renunciation", Uncap: 6, Transcend: 2, Keys: []string{"1240", "505"}},
			{
				Name: "Ultima Blade", Uncap: 5,
				Awakening: &party.Awakening{Type: "Attack", Level: 3},
				Keys:      []string{"703"},
			},
		},
		Summons: []party.Summon{
			{Name: "Lucifer", Uncap: 6, Transcend: 5, QuickSummon: true},
		},
		SubSummons: []party.Summon{
			{Name: "Huanglong", Uncap: 4},
		},
	}

	got, err := wiki.Render(doc)
	require.NoError(t, err)

	want := `{{TeamSpread
|team={{Team
|class=kengo
|char1=Anila|trans1=3|art1=D
|char2=Mahira|art2=B
|skill1=Sword of Lumiel
|skill3=Dual Arts
|main=Lucifer
|support=Huanglong
}}
|weapons={{WeaponGridSkills
|mh=Sword of Renunciation|umh=t2
|wp1=Ultima Blade|u1=5|awk1=atk
|opus=auto,stamina
|ultima=atk
}}
|summons={{SummonGrid
|main=Lucifer|umain=trans5|artmain=D
|sub1=Huanglong|usub1=flb
|quick=main
}}
}}`
	assert.Equal(t, want, got)
}

func TestRender_EmptyDocument(t *testing.T) {
	got, err := wiki.Render(&party.Document{Lang: party.LocaleEN, Class: "Viking"})
	require.NoError(t, err)

	assert.Contains(t, got, "|class=viking")
	assert.Contains(t, got, "|main=\n|support=\n}}")
	assert.Contains(t, got, "{{WeaponGridSkills\n}}")
	assert.Contains(t, got, "{{SummonGrid\n}}")
	assert.NotContains(t, got, "|quick=")
}

func TestRender_MultielementWeaponName(t *testing.T) {
	doc := &party.Document{
		Lang:    party.LocaleEN,
		Weapons: []party.Weapon{{Name: "Ultima Sword", Attr: 3, Uncap: 4}},
	}

	got, err := wiki.Render(doc)
	require.NoError(t, err)
	assert.Contains(t, got, "|mh=Ultima Sword (Earth)|umh=4")
}

func TestRender_DraconicProvenanceKeys(t *testing.T) {
	doc := &party.Document{
		Lang: party.LocaleEN,
		Weapons: []party.Weapon{
			// provenance weapons carry no "Draconic" in their names
			{Name: "Bounty of Gracious Earth", Uncap: 5, Keys: []string{"1449", "1234"}},
		},
	}

	got, err := wiki.Render(doc)
	require.NoError(t, err)
	assert.Contains(t, got, "|draconic=earth,magna")
}

func TestRender_UnknownKeyID(t *testing.T) {
	doc := &party.Document{
		Lang: party.LocaleEN,
		Weapons: []party.Weapon{
			{Name: "Scales of Dominion", Uncap: 4, Keys: []string{"1723", "99999"}},
			// key slots on unrecognized weapons are not rendered at all
		},
	}

	got, err := wiki.Render(doc)
	require.NoError(t, err)
	assert.NotContains(t, got, "|opus=")
	assert.NotContains(t, got, "UNKNOWN")
}

func TestRender_SummonArtAndQuick(t *testing.T) {
	doc := &party.Document{
		Lang: party.LocaleEN,
		Summons: []party.Summon{
			{Name: "Bahamut", Uncap: 5},
			{Name: "Agni", Uncap: 5, QuickSummon: true},
			{Name: "Lucifer", Uncap: 6, Transcend: 2},
			{Name: "Colossus Omega", Uncap: 3},
		},
	}

	got, err := wiki.Render(doc)
	require.NoError(t, err)

	assert.Contains(t, got, "|main=Bahamut|umain=ulb\n")
	assert.Contains(t, got, "|s1=Agni|u1=ulb|art1=B")
	assert.Contains(t, got, "|s2=Lucifer|u2=trans2|art2=C")
	assert.Contains(t, got, "|s3=Colossus Omega|u3=mlb\n")
	assert.Contains(t, got, "\n|quick=1")
}
