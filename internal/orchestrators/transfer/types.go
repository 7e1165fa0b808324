package transfer

import (
	"github.com/granblue-tools/hensei-transfer/internal/clients/hensei"
	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
)

// ImportInput defines the request for importing a document.
type ImportInput struct {
	Document *party.Document
	// StaticData carries the job list the service does not expose over
	// search. Import refuses to start without it.
	StaticData *StaticData
}

// ImportOutput defines the response for importing a document.
type ImportOutput struct {
	// PartyID is the service UUID of the created team.
	PartyID string
	// Path is the team's canonical path, "/p/<shortcode>".
	Path string
}

// StaticData is the service master data import resolves jobs against.
type StaticData struct {
	Jobs []Job `json:"jobs"`
}

// Job is one class the service knows.
type Job struct {
	ID   string               `json:"id"`
	Name hensei.LocalizedName `json:"name"`
}
