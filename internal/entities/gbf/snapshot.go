package gbf

import (
	"encoding/json"
	"io"

	"github.com/granblue-tools/hensei-transfer/internal/errors"
)

// LoadSnapshot decodes a captured game-state snapshot and asserts the
// minimal shape the export transform relies on. The snapshot comes from
// the live client, so a shape mismatch means the capture is unusable;
// there is no recovery.
func LoadSnapshot(r io.Reader) (*Snapshot, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to decode game snapshot")
	}

	if snap.Lang != "en" && snap.Lang != "ja" {
		return nil, errors.Internalf("game snapshot has unknown lang %q", snap.Lang)
	}

	deck := snap.View.DeckModel.Attributes.Deck
	if deck.PC.Job.Master.Name == "" {
		return nil, errors.Internal("game snapshot is missing deck state")
	}

	return &snap, nil
}
