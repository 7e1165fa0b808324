// Package wiki renders a portable team document as gbf.wiki template
// markup.
//
// The tables in this package key off English display names, so only
// English-locale documents can be rendered.
package wiki

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
	"github.com/granblue-tools/hensei-transfer/internal/errors"
	"github.com/granblue-tools/hensei-transfer/internal/pkg/ranges"
)

// Render produces the TeamSpread wikitext for a document. It fails with
// a precondition error for non-English documents.
func Render(doc *party.Document) (string, error) {
	if doc.Lang != party.LocaleEN {
		return "", errors.FailedPreconditionf(
			"wiki markup uses English display names; document locale is %q", doc.Lang)
	}

	return fmt.Sprintf("{{TeamSpread\n|team=%s\n|weapons=%s\n|summons=%s\n}}",
		renderTeam(doc), renderWeaponGrid(doc), renderSummonGrid(doc)), nil
}

func renderTeam(doc *party.Document) string {
	var b strings.Builder
	b.WriteString("{{Team\n|class=")
	b.WriteString(strings.ToLower(doc.Class))

	for i, ch := range doc.Characters {
		n := i + 1
		fmt.Fprintf(&b, "\n|char%d=%s", n, ch.Name)
		if ch.Transcend > 0 {
			fmt.Fprintf(&b, "|trans%d=%d", n, ch.Transcend)
		}
		if art := characterArt(ch.Uncap); art != "" {
			fmt.Fprintf(&b, "|art%d=%s", n, art)
		}
	}

	for i, ss := range doc.Subskills {
		if ss == "" {
			continue
		}
		fmt.Fprintf(&b, "\n|skill%d=%s", i+1, ss)
	}

	mainSummon := ""
	if len(doc.Summons) > 0 {
		mainSummon = doc.Summons[0].Name
	}
	fmt.Fprintf(&b, "\n|main=%s\n|support=%s\n}}", mainSummon, doc.FriendSummon)
	return b.String()
}

// characterArt picks the art variant for an uncap tier. Tiers 3 and 4
// share the B art; this over-marks the few R and SR characters whose
// third star is not an art change.
func characterArt(uncap int) string {
	switch {
	case uncap == 6:
		return "D"
	case uncap == 5:
		return "C"
	case uncap > 2:
		return "B"
	default:
		return ""
	}
}

func renderWeaponGrid(doc *party.Document) string {
	var b strings.Builder
	b.WriteString("{{WeaponGridSkills")

	var opus, draconic, ultima *party.Weapon

	for i, wp := range doc.Weapons {
		weaponKey, uncapKey, awakeningKey := "mh", "umh", "awkmh"
		if i > 0 {
			weaponKey = fmt.Sprintf("wp%d", i)
			uncapKey = fmt.Sprintf("u%d", i)
			awakeningKey = fmt.Sprintf("awk%d", i)
		}

		fmt.Fprintf(&b, "\n|%s=%s", weaponKey, wp.Name)
		if wp.Attr > 0 {
			fmt.Fprintf(&b, " (%s)", elementNames[wp.Attr-1])
		}

		if wp.Transcend > 0 {
			fmt.Fprintf(&b, "|%s=t%d", uncapKey, wp.Transcend)
		} else {
			fmt.Fprintf(&b, "|%s=%d", uncapKey, wp.Uncap)
		}

		if wp.Awakening != nil {
			fmt.Fprintf(&b, "|%s=%s", awakeningKey, awakeningNames[wp.Awakening.Type])
		}

		if len(wp.Keys) > 0 {
			switch {
			case strings.Contains(wp.Name, "Ultima"):
				ultima = &doc.Weapons[i]
			case strings.Contains(wp.Name, "iation"):
				opus = &doc.Weapons[i]
			case strings.Contains(wp.Name, "Draconic"):
				draconic = &doc.Weapons[i]
			default:
				if _, ok := draconicProvenanceNames[wp.Name]; ok {
					draconic = &doc.Weapons[i]
				}
			}
		}
	}

	renderKeys(&b, opus, "opus")
	renderKeys(&b, draconic, "draconic")
	renderKeys(&b, ultima, "ultima")

	b.WriteString("\n}}")
	return b.String()
}

func renderKeys(b *strings.Builder, wp *party.Weapon, kind string) {
	if wp == nil || len(wp.Keys) == 0 {
		return
	}

	names := make([]string, 0, len(wp.Keys))
	for _, key := range wp.Keys {
		names = append(names, keyDisplayName(key))
	}
	fmt.Fprintf(b, "\n|%s=%s", kind, strings.Join(names, ","))
}

// keyDisplayName maps a weapon key's skill ID to its wiki identifier.
// First matching table entry wins.
func keyDisplayName(skillID string) string {
	id, err := strconv.Atoi(skillID)
	if err != nil {
		return "UNKNOWN"
	}
	for _, kn := range keyNames {
		if ranges.Matches(kn.Skills, id) {
			return kn.Name
		}
	}
	return "UNKNOWN"
}

func renderSummonGrid(doc *party.Document) string {
	var b strings.Builder
	b.WriteString("{{SummonGrid")

	quick := -1
	for i, sm := range doc.Summons {
		summonKey, uncapKey, artKey := "main", "umain", "main"
		if i > 0 {
			summonKey = fmt.Sprintf("s%d", i)
			uncapKey = fmt.Sprintf("u%d", i)
			artKey = strconv.Itoa(i)
		}

		fmt.Fprintf(&b, "\n|%s=%s|%s=%s", summonKey, sm.Name, uncapKey, summonUncap(sm))
		if art := summonArt(sm); art != "" {
			fmt.Fprintf(&b, "|art%s=%s", artKey, art)
		}

		if sm.QuickSummon {
			quick = i
		}
	}

	for i, sm := range doc.SubSummons {
		n := i + 1
		fmt.Fprintf(&b, "\n|sub%d=%s|usub%d=%s", n, sm.Name, n, summonUncap(sm))
		if art := summonArt(sm); art != "" {
			fmt.Fprintf(&b, "|art%d=%s", n, art)
		}
	}

	if quick > -1 {
		if quick == 0 {
			b.WriteString("\n|quick=main")
		} else {
			fmt.Fprintf(&b, "\n|quick=%d", quick)
		}
	}

	b.WriteString("\n}}")
	return b.String()
}

func summonUncap(sm party.Summon) string {
	str := summonUncapNames[sm.Uncap]
	if sm.Transcend > 0 {
		str += strconv.Itoa(sm.Transcend)
	}
	return str
}

func summonArt(sm party.Summon) string {
	if sm.Transcend > 0 {
		if sm.Transcend == 5 {
			return "D"
		}
		return "C"
	}

	if tier, ok := summonArtChanges[sm.Name]; ok && sm.Uncap >= tier {
		return "B"
	}
	return ""
}
