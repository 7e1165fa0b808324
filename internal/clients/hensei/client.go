// Package hensei is the client for the team-planning service's JSON API.
//
// The service enforces one occupant per grid position. Create calls can
// come back with a conflict object naming the current occupant; the
// client resolves those transparently so callers only ever see the final
// grid entry or a real error.
package hensei

//go:generate mockgen -destination=mock/mock_client.go -package=henseimock github.com/granblue-tools/hensei-transfer/internal/clients/hensei Client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/granblue-tools/hensei-transfer/internal/errors"
)

// Client defines the interface for team-planning service interactions.
type Client interface {
	// Authenticated reports whether a bearer token is available. Mutating
	// calls require one; search does not.
	Authenticated() bool

	// CreateParty creates an empty team container and returns its UUID
	// and canonical shortcode.
	CreateParty(ctx context.Context) (*Party, error)

	// UpdatePartyDetails sets the team name and extra-slot flag.
	UpdatePartyDetails(ctx context.Context, partyID, name string, extra bool) error

	// SetPartyJob assigns the job to the party.
	SetPartyJob(ctx context.Context, partyID, jobID string) error

	// SetJobSkill places a job skill into a subskill slot (1-3). The
	// service rejects skills colliding with auto-assigned slots; such
	// rejections come back as AlreadyExists.
	SetJobSkill(ctx context.Context, partyID string, slot int, skillID string) error

	// SetPartyAccessory assigns a job accessory to the party.
	SetPartyAccessory(ctx context.Context, partyID, accessoryID string) error

	// ListJobAccessories lists the accessories available to a job.
	ListJobAccessories(ctx context.Context, jobID string) ([]Accessory, error)

	// AddCharacter places a character into a roster position, resolving
	// any slot conflict.
	AddCharacter(ctx context.Context, input *AddCharacterInput) (*GridCharacter, error)

	// AddWeapon places a weapon into a grid position, resolving any slot
	// conflict.
	AddWeapon(ctx context.Context, input *AddWeaponInput) (*GridWeapon, error)

	// AddSummon places a summon into a grid position, resolving any slot
	// conflict.
	AddSummon(ctx context.Context, input *AddSummonInput) (*GridSummon, error)

	// UpdateGridCharacter partially updates a placed character.
	UpdateGridCharacter(ctx context.Context, gridCharacterID string, update *GridCharacterUpdate) error

	// UpdateGridWeapon partially updates a placed weapon.
	UpdateGridWeapon(ctx context.Context, gridWeaponID string, update *GridWeaponUpdate) error

	// SetWeaponAwakening selects an awakening type and level on a placed
	// weapon.
	SetWeaponAwakening(ctx context.Context, gridWeaponID, awakeningID string, level int) error

	// UpdateSummonUncap sets a placed summon's uncap and transcendence.
	UpdateSummonUncap(ctx context.Context, gridSummonID string, uncapLevel, transcendenceStep int) error

	// SetQuickSummon marks a placed summon for quick summoning.
	SetQuickSummon(ctx context.Context, gridSummonID string) error

	// ListWeaponKeys lists the key entities for a weapon series and key
	// slot (0-2). Pass a negative slot to list all slots.
	ListWeaponKeys(ctx context.Context, series, slot int) ([]WeaponKey, error)

	// Search runs a locale-aware full-text search and returns up to
	// three pages of results.
	Search(ctx context.Context, kind SearchKind, query *SearchQuery) ([]SearchHit, error)
}

type client struct {
	httpClient *http.Client
	baseURL    string
	creds      CredentialProvider
}

// Config holds the dependencies for the HTTP client.
type Config struct {
	// BaseURL is the API root including the version prefix, no trailing
	// slash.
	BaseURL     string
	Credentials CredentialProvider
	// HTTPClient is optional; a default with a 30s timeout is used when
	// nil.
	HTTPClient *http.Client
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.BaseURL == "" {
		vb.RequiredField("BaseURL")
	}
	if c.Credentials == nil {
		vb.RequiredField("Credentials")
	}

	return vb.Build()
}

// New creates a new HTTP client for the team-planning service.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	return &client{
		httpClient: httpClient,
		baseURL:    cfg.BaseURL,
		creds:      cfg.Credentials,
	}, nil
}

func (c *client) Authenticated() bool {
	return c.creds.Token() != ""
}

func (c *client) CreateParty(ctx context.Context) (*Party, error) {
	var out struct {
		Party Party `json:"party"`
	}
	if err := c.do(ctx, http.MethodPost, "parties", struct{}{}, &out); err != nil {
		return nil, errors.Wrap(err, "failed to create party")
	}
	if out.Party.ID == "" {
		return nil, errors.Internal("party creation returned no ID")
	}
	return &out.Party, nil
}

func (c *client) UpdatePartyDetails(ctx context.Context, partyID, name string, extra bool) error {
	payload := map[string]any{
		"party": map[string]any{"name": name, "extra": extra},
	}
	return c.do(ctx, http.MethodPut, "parties/"+partyID, payload, nil)
}

func (c *client) SetPartyJob(ctx context.Context, partyID, jobID string) error {
	payload := map[string]any{
		"party": map[string]any{"job_id": jobID},
	}
	return c.do(ctx, http.MethodPut, "parties/"+partyID+"/jobs", payload, nil)
}

func (c *client) SetJobSkill(ctx context.Context, partyID string, slot int, skillID string) error {
	payload := map[string]any{
		"party": map[string]any{fmt.Sprintf("skill%d_id", slot): skillID},
	}

	// The service reports skill-slot collisions in the body of an
	// otherwise successful response.
	var out struct {
		Code json.RawMessage `json:"code"`
	}
	if err := c.do(ctx, http.MethodPut, "parties/"+partyID+"/job_skills", payload, &out); err != nil {
		return err
	}
	if len(out.Code) > 0 {
		return errors.AlreadyExists("job skill slot rejected").WithMeta("slot", slot)
	}
	return nil
}

func (c *client) SetPartyAccessory(ctx context.Context, partyID, accessoryID string) error {
	payload := map[string]any{
		"party": map[string]any{"accessory_id": accessoryID},
	}
	return c.do(ctx, http.MethodPut, "parties/"+partyID, payload, nil)
}

func (c *client) ListJobAccessories(ctx context.Context, jobID string) ([]Accessory, error) {
	var out []Accessory
	if err := c.do(ctx, http.MethodGet, "jobs/"+jobID+"/accessories", nil, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to list accessories for job %s", jobID)
	}
	return out, nil
}

func (c *client) AddCharacter(ctx context.Context, input *AddCharacterInput) (*GridCharacter, error) {
	payload := map[string]any{
		"character": map[string]any{
			"character_id": input.CharacterID,
			"party_id":     input.PartyID,
			"position":     input.Position,
			"uncap_level":  input.UncapLevel,
		},
	}

	var out GridCharacter
	if err := c.addResolvingConflicts(ctx, "characters", input.Position, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) AddWeapon(ctx context.Context, input *AddWeaponInput) (*GridWeapon, error) {
	payload := map[string]any{
		"weapon": map[string]any{
			"weapon_id":   input.WeaponID,
			"party_id":    input.PartyID,
			"position":    input.Position,
			"mainhand":    input.Mainhand,
			"uncap_level": input.UncapLevel,
		},
	}

	var out struct {
		GridWeapon GridWeapon `json:"grid_weapon"`
	}
	if err := c.addResolvingConflicts(ctx, "weapons", input.Position, payload, &out); err != nil {
		return nil, err
	}
	return &out.GridWeapon, nil
}

func (c *client) AddSummon(ctx context.Context, input *AddSummonInput) (*GridSummon, error) {
	payload := map[string]any{
		"summon": map[string]any{
			"summon_id":   input.SummonID,
			"party_id":    input.PartyID,
			"position":    input.Position,
			"main":        input.Main,
			"friend":      input.Friend,
			"uncap_level": input.UncapLevel,
		},
	}

	var out struct {
		GridSummon GridSummon `json:"grid_summon"`
	}
	if err := c.addResolvingConflicts(ctx, "summons", input.Position, payload, &out); err != nil {
		return nil, err
	}
	return &out.GridSummon, nil
}

func (c *client) UpdateGridCharacter(ctx context.Context, gridCharacterID string, update *GridCharacterUpdate) error {
	payload := map[string]any{"character": update}
	return c.do(ctx, http.MethodPut, "grid_characters/"+gridCharacterID, payload, nil)
}

func (c *client) UpdateGridWeapon(ctx context.Context, gridWeaponID string, update *GridWeaponUpdate) error {
	payload := map[string]any{"weapon": update}
	return c.do(ctx, http.MethodPut, "grid_weapons/"+gridWeaponID, payload, nil)
}

func (c *client) SetWeaponAwakening(ctx context.Context, gridWeaponID, awakeningID string, level int) error {
	payload := map[string]any{
		"weapon": map[string]any{
			"id":              gridWeaponID,
			"awakening_id":    awakeningID,
			"awakening_level": level,
		},
	}
	return c.do(ctx, http.MethodPost, "weapons/update_uncap", payload, nil)
}

func (c *client) UpdateSummonUncap(ctx context.Context, gridSummonID string, uncapLevel, transcendenceStep int) error {
	payload := map[string]any{
		"summon": map[string]any{
			"id":                 gridSummonID,
			"uncap_level":        uncapLevel,
			"transcendence_step": transcendenceStep,
		},
	}
	return c.do(ctx, http.MethodPost, "summons/update_uncap", payload, nil)
}

func (c *client) SetQuickSummon(ctx context.Context, gridSummonID string) error {
	payload := map[string]any{
		"summon": map[string]any{
			"id":           gridSummonID,
			"quick_summon": true,
		},
	}
	return c.do(ctx, http.MethodPost, "summons/update_quick_summon", payload, nil)
}

func (c *client) ListWeaponKeys(ctx context.Context, series, slot int) ([]WeaponKey, error) {
	path := "weapon_keys?series=" + strconv.Itoa(series)
	if slot >= 0 {
		path += "&slot=" + strconv.Itoa(slot)
	}

	var out []WeaponKey
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to list weapon keys for series %d", series)
	}
	return out, nil
}

// conflictResponse is the error shape the service returns when a create
// call targets an occupied position.
type conflictResponse struct {
	Conflicts []struct {
		ID string `json:"id"`
	} `json:"conflicts"`
	Incoming struct {
		ID string `json:"id"`
	} `json:"incoming"`
}

// addResolvingConflicts issues a create-in-slot call. When the service
// reports the conflict shape, it issues exactly one resolve call naming
// the occupant to replace, and that call's result becomes the outcome.
func (c *client) addResolvingConflicts(ctx context.Context, namespace string, position int, payload, out any) error {
	status, body, err := c.doRaw(ctx, http.MethodPost, namespace, payload)
	if err != nil {
		return err
	}

	var conflict conflictResponse
	if json.Unmarshal(body, &conflict) == nil && len(conflict.Conflicts) > 0 && conflict.Incoming.ID != "" {
		resolve := map[string]any{
			"resolve": map[string]any{
				"conflicting": []string{conflict.Conflicts[0].ID},
				"incoming":    conflict.Incoming.ID,
				"position":    position,
			},
		}
		return c.do(ctx, http.MethodPost, namespace+"/resolve", resolve, out)
	}

	if code := errors.FromHTTPStatus(status); code != errors.CodeOK {
		return errors.Newf(code, "POST %s returned status %d", namespace, status)
	}
	return decodeInto(body, out)
}

// do issues a request and decodes a successful JSON response into out.
func (c *client) do(ctx context.Context, method, path string, payload, out any) error {
	status, body, err := c.doRaw(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if code := errors.FromHTTPStatus(status); code != errors.CodeOK {
		return errors.Newf(code, "%s %s returned status %d", method, path, status)
	}
	return decodeInto(body, out)
}

func (c *client) doRaw(ctx context.Context, method, path string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, errors.Wrap(err, "failed to encode request payload")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+path, reqBody)
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, errors.WrapWithCode(err, errors.CodeUnavailable, fmt.Sprintf("%s %s failed", method, path))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read response body")
	}
	return resp.StatusCode, body, nil
}

func decodeInto(body []byte, out any) error {
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to decode response body")
	}
	return nil
}
