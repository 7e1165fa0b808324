// Package transfer implements the import orchestrator: it drives the
// remote team-planning service until it mirrors a portable document.
//
// The service is the source of truth for entity identity, so every
// document entry is resolved to a service UUID first, by cached
// resolution where available and by locale-aware search otherwise.
// Entries the service does not know are skipped, not fatal; a team with
// a missing weapon is more useful than no team at all.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/granblue-tools/hensei-transfer/internal/clients/hensei"
	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
	"github.com/granblue-tools/hensei-transfer/internal/errors"
	"github.com/granblue-tools/hensei-transfer/internal/mappings"
	"github.com/granblue-tools/hensei-transfer/internal/notify"
	"github.com/granblue-tools/hensei-transfer/internal/repositories/resolution"
)

// Offset of the first sub summon position in the service's grid.
const subSummonOffset = 5

// Service defines the interface for document transfer operations.
type Service interface {
	// Import reconstructs a document as a new team on the remote
	// service. There is no rollback: on error the partially built team
	// stays behind.
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
}

// Config holds the dependencies for the transfer orchestrator.
type Config struct {
	Client hensei.Client
	// Resolutions is the optional resolution cache; nil disables caching.
	Resolutions resolution.Repository
	// Notifier receives user-facing progress messages; nil discards them.
	Notifier notify.Notifier
}

// Validate ensures all required dependencies are provided.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type orchestrator struct {
	client      hensei.Client
	resolutions resolution.Repository
	notifier    notify.Notifier
}

// NewOrchestrator creates a new transfer orchestrator with the provided
// dependencies.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
	}

	return &orchestrator{
		client:      cfg.Client,
		resolutions: cfg.Resolutions,
		notifier:    notifier,
	}, nil
}

func (o *orchestrator) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil || input.Document == nil {
		return nil, errors.InvalidArgument("document cannot be nil")
	}
	if err := input.Document.Validate(); err != nil {
		return nil, err
	}
	if input.StaticData == nil || len(input.StaticData.Jobs) == 0 {
		return nil, errors.FailedPrecondition("job master data is not loaded")
	}
	if !o.client.Authenticated() {
		return nil, errors.Unauthenticated("import requires an API token")
	}

	o.notifier.Infof("creating team %q", input.Document.Name)

	created, err := o.client.CreateParty(ctx)
	if err != nil {
		return nil, err
	}

	run := &importRun{
		orchestrator: o,
		doc:          input.Document,
		jobs:         input.StaticData.Jobs,
		partyID:      created.ID,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return o.client.UpdatePartyDetails(gctx, run.partyID, run.doc.Name, run.doc.Extra)
	})
	g.Go(func() error { return run.importJob(gctx) })
	g.Go(func() error { return run.importCharacters(gctx) })
	g.Go(func() error { return run.importWeapons(gctx) })
	g.Go(func() error { return run.importSummons(gctx, run.doc.Summons, 0, run.doc.FriendSummon) })
	g.Go(func() error { return run.importSummons(gctx, run.doc.SubSummons, subSummonOffset, "") })

	if err := g.Wait(); err != nil {
		o.notifier.Warnf("import failed, the partial team remains at /p/%s", created.Shortcode)
		return nil, err
	}

	slog.Info("import complete", "party_id", created.ID, "shortcode", created.Shortcode)

	return &ImportOutput{
		PartyID: created.ID,
		Path:    "/p/" + created.Shortcode,
	}, nil
}

// importRun is the per-import state shared by the facets.
type importRun struct {
	*orchestrator
	doc     *party.Document
	jobs    []Job
	partyID string
}

func (r *importRun) importJob(ctx context.Context) error {
	jobID, _ := seekID(r.jobs,
		func(j Job) string { return j.ID },
		func(j Job) bool { return j.Name.In(r.doc.Lang) == r.doc.Class })
	if jobID == "" {
		r.notifier.Warnf("could not resolve class %q", r.doc.Class)
		return nil
	}

	if err := r.client.SetPartyJob(ctx, r.partyID, jobID); err != nil {
		return err
	}

	if err := r.importJobSkills(ctx, jobID); err != nil {
		return err
	}

	if r.doc.Accessory != nil {
		if err := r.importAccessory(ctx, jobID, *r.doc.Accessory); err != nil {
			return err
		}
	}
	return nil
}

// importJobSkills places the document's subskills into slots 1-3. The
// service auto-assigns some slots when the job is set and rejects
// collisions; rejected placements get one retry after the rest have
// landed, when the auto-assigned slot may have been displaced.
func (r *importRun) importJobSkills(ctx context.Context, jobID string) error {
	type placement struct {
		slot    int
		skillID string
	}

	var placements []placement
	for _, name := range r.doc.Subskills {
		if name == "" {
			continue
		}

		skillID, err := r.searchByName(ctx, hensei.SearchJobSkills, name, jobID)
		if err != nil {
			return err
		}
		if skillID == "" {
			r.notifier.Warnf("could not resolve subskill %q", name)
			continue
		}
		placements = append(placements, placement{slot: len(placements) + 1, skillID: skillID})
	}

	var rejected []placement
	for _, p := range placements {
		err := r.client.SetJobSkill(ctx, r.partyID, p.slot, p.skillID)
		if errors.IsConflict(err) {
			rejected = append(rejected, p)
			continue
		}
		if err != nil {
			return err
		}
	}

	for _, p := range rejected {
		err := r.client.SetJobSkill(ctx, r.partyID, p.slot, p.skillID)
		if err != nil && !errors.IsConflict(err) {
			return err
		}
	}
	return nil
}

func (r *importRun) importAccessory(ctx context.Context, jobID string, granblueID int) error {
	options, err := r.client.ListJobAccessories(ctx, jobID)
	if err != nil {
		return err
	}

	want := strconv.Itoa(granblueID)
	accessoryID, _ := seekID(options,
		func(a hensei.Accessory) string { return a.ID },
		func(a hensei.Accessory) bool { return a.GranblueID == want })
	if accessoryID == "" {
		r.notifier.Warnf("could not resolve job accessory %d", granblueID)
		return nil
	}

	return r.client.SetPartyAccessory(ctx, r.partyID, accessoryID)
}

func (r *importRun) importCharacters(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for i, ch := range r.doc.Characters {
		characterID, err := r.resolveEntity(ctx, hensei.SearchCharacters, ch.Name, ch.ID)
		if err != nil {
			return err
		}
		if characterID == "" {
			continue
		}

		placed, err := r.client.AddCharacter(ctx, &hensei.AddCharacterInput{
			PartyID:     r.partyID,
			CharacterID: characterID,
			Position:    i,
			UncapLevel:  ch.Uncap,
		})
		if err != nil {
			return err
		}

		if ch.Ringed {
			gridID := placed.ID
			g.Go(func() error {
				perpetuity := true
				return r.client.UpdateGridCharacter(gctx, gridID, &hensei.GridCharacterUpdate{
					Perpetuity: &perpetuity,
				})
			})
		}
		if ch.Transcend > 0 {
			gridID, step := placed.ID, ch.Transcend
			g.Go(func() error {
				uncap := 6
				return r.client.UpdateGridCharacter(gctx, gridID, &hensei.GridCharacterUpdate{
					UncapLevel:        &uncap,
					TranscendenceStep: &step,
				})
			})
		}
	}

	return g.Wait()
}

func (r *importRun) importWeapons(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	// A placement failure still joins the facet updates already in flight
	// before the error is reported.
	var placeErr error
	for i, wp := range r.doc.Weapons {
		if placeErr = r.placeWeapon(ctx, gctx, g, i, wp); placeErr != nil {
			break
		}
	}

	waitErr := g.Wait()
	if placeErr != nil {
		return placeErr
	}
	return waitErr
}

func (r *importRun) placeWeapon(ctx, gctx context.Context, g *errgroup.Group, i int, wp party.Weapon) error {
	weaponID, err := r.resolveEntity(ctx, hensei.SearchWeapons, wp.Name, wp.ID)
	if err != nil {
		return err
	}
	if weaponID == "" {
		return nil
	}

	// The service numbers grid positions from the first non-mainhand
	// slot; the mainhand itself sits at -1.
	placed, err := r.client.AddWeapon(ctx, &hensei.AddWeaponInput{
		PartyID:    r.partyID,
		WeaponID:   weaponID,
		Position:   i - 1,
		Mainhand:   i == 0,
		UncapLevel: wp.Uncap,
	})
	if err != nil {
		return err
	}

	gridID := placed.ID

	if element, ok := mappings.ElementToService(wp.Attr); ok {
		g.Go(func() error {
			el := element
			return r.client.UpdateGridWeapon(gctx, gridID, &hensei.GridWeaponUpdate{
				Element: &el,
			})
		})
	}

	if wp.Transcend > 0 {
		step := wp.Transcend
		g.Go(func() error {
			uncap := 6
			return r.client.UpdateGridWeapon(gctx, gridID, &hensei.GridWeaponUpdate{
				UncapLevel:        &uncap,
				TranscendenceStep: &step,
			})
		})
	}

	if wp.Awakening != nil {
		awakening := *wp.Awakening
		options := placed.Object.Awakenings
		g.Go(func() error {
			return r.importAwakening(gctx, gridID, awakening, options)
		})
	}

	if len(wp.Keys) > 0 {
		series := mappings.FixSeriesID(placed.Object.SeriesID())
		for slot, skillID := range wp.Keys {
			if skillID == "" {
				continue
			}

			keyID, err := r.resolveWeaponKey(ctx, series, slot, skillID)
			if err != nil {
				return err
			}
			if keyID == "" {
				r.notifier.Warnf("could not resolve weapon key %s on %q", skillID, wp.Name)
				continue
			}

			update := &hensei.GridWeaponUpdate{}
			field := update.WeaponKeyField(slot)
			if field == nil {
				continue
			}
			id := keyID
			*field = &id
			g.Go(func() error {
				return r.client.UpdateGridWeapon(gctx, gridID, update)
			})
		}
	}

	if len(wp.AX) > 0 {
		update := axUpdate(wp.AX)
		g.Go(func() error {
			return r.client.UpdateGridWeapon(gctx, gridID, update)
		})
	}
	return nil
}

func (r *importRun) importAwakening(ctx context.Context, gridID string, awakening party.Awakening, options []hensei.AwakeningOption) error {
	for _, opt := range options {
		if opt.Name.In(r.doc.Lang) == awakening.Type {
			return r.client.SetWeaponAwakening(ctx, gridID, opt.ID, awakening.Level)
		}
	}
	r.notifier.Warnf("weapon does not support awakening type %q", awakening.Type)
	return nil
}

// axUpdate translates up to two AX skills into one partial update.
func axUpdate(skills []party.AXSkill) *hensei.GridWeaponUpdate {
	update := &hensei.GridWeaponUpdate{}

	for i, ax := range skills {
		if i >= 2 {
			break
		}

		modifier, strength := &update.AXModifier1, &update.AXStrength1
		if i == 1 {
			modifier, strength = &update.AXModifier2, &update.AXStrength2
		}

		if id, err := strconv.Atoi(ax.ID); err == nil {
			if mod, ok := mappings.AXToModifier(id); ok {
				m := mod
				*modifier = &m
			}
		}
		if value, err := strconv.Atoi(strings.NewReplacer("+", "", "%", "").Replace(ax.Value)); err == nil {
			v := value
			*strength = &v
		}
	}

	return update
}

func (r *importRun) importSummons(ctx context.Context, summons []party.Summon, offset int, friend string) error {
	for i, sm := range summons {
		summonID, err := r.resolveEntity(ctx, hensei.SearchSummons, sm.Name, sm.ID)
		if err != nil {
			return err
		}
		if summonID == "" {
			continue
		}

		main := offset == 0 && i == 0
		placed, err := r.client.AddSummon(ctx, &hensei.AddSummonInput{
			PartyID:    r.partyID,
			SummonID:   summonID,
			Position:   i - 1 + offset,
			Main:       main,
			UncapLevel: sm.Uncap,
		})
		if err != nil {
			return err
		}

		if sm.Transcend > 0 {
			if err := r.client.UpdateSummonUncap(ctx, placed.ID, 6, sm.Transcend); err != nil {
				return err
			}
		}
		if sm.QuickSummon {
			if err := r.client.SetQuickSummon(ctx, placed.ID); err != nil {
				return err
			}
		}
	}

	if friend != "" {
		return r.importFriendSummon(ctx, friend)
	}
	return nil
}

// importFriendSummon places the support summon at its fixed position.
// The document has no progression data for another player's summon, so
// the highest tiers the summon supports are assumed.
func (r *importRun) importFriendSummon(ctx context.Context, name string) error {
	summonID, err := r.searchByName(ctx, hensei.SearchSummons, name, "")
	if err != nil {
		return err
	}
	if summonID == "" {
		r.notifier.Warnf("could not resolve support summon %q", name)
		return nil
	}

	placed, err := r.client.AddSummon(ctx, &hensei.AddSummonInput{
		PartyID:  r.partyID,
		SummonID: summonID,
		Position: 6,
		Friend:   true,
	})
	if err != nil {
		return err
	}

	uncap, transcend := placed.Object.Uncap.MaxLevels()
	return r.client.UpdateSummonUncap(ctx, placed.ID, uncap, transcend)
}

// resolveEntity finds the service UUID for a game entity: cache first,
// then locale search disambiguated by the game ID. An empty return with
// nil error means the entity is unknown to the service and its entry
// should be skipped.
func (r *importRun) resolveEntity(ctx context.Context, kind hensei.SearchKind, name, granblueID string) (string, error) {
	if id, ok := r.cachedResolution(ctx, string(kind), granblueID); ok {
		return id, nil
	}

	hits, err := r.client.Search(ctx, kind, &hensei.SearchQuery{Query: name, Locale: r.doc.Lang})
	if err != nil {
		return "", err
	}

	id, exact := seekID(hits,
		func(h hensei.SearchHit) string { return h.ID },
		func(h hensei.SearchHit) bool { return h.GranblueID == granblueID })
	if id == "" {
		r.notifier.Warnf("could not resolve %q, skipping", name)
		return "", nil
	}

	if exact {
		r.storeResolution(ctx, string(kind), granblueID, id)
	}
	return id, nil
}

// searchByName resolves an entity whose document record carries only a
// display name.
func (r *importRun) searchByName(ctx context.Context, kind hensei.SearchKind, name, jobID string) (string, error) {
	hits, err := r.client.Search(ctx, kind, &hensei.SearchQuery{
		Query:  name,
		Locale: r.doc.Lang,
		JobID:  jobID,
	})
	if err != nil {
		return "", err
	}

	id, _ := seekID(hits,
		func(h hensei.SearchHit) string { return h.ID },
		func(h hensei.SearchHit) bool { return h.Name.In(r.doc.Lang) == name })
	return id, nil
}

// resolveWeaponKey finds the service UUID for a weapon key by the skill
// ID the game reports, among the keys valid for the series and slot.
func (r *importRun) resolveWeaponKey(ctx context.Context, series, slot int, skillID string) (string, error) {
	cacheID := fmt.Sprintf("%d:%d:%s", series, slot, skillID)
	if id, ok := r.cachedResolution(ctx, "weapon_keys", cacheID); ok {
		return id, nil
	}

	skill, err := strconv.Atoi(skillID)
	if err != nil {
		return "", nil
	}

	options, err := r.client.ListWeaponKeys(ctx, series, slot)
	if err != nil {
		return "", err
	}

	id, exact := seekID(options,
		func(k hensei.WeaponKey) string { return k.ID },
		func(k hensei.WeaponKey) bool { return mappings.KeyMatchesSkill(k.GranblueID, skill) })
	if exact {
		r.storeResolution(ctx, "weapon_keys", cacheID, id)
	}
	return id, nil
}

func (r *importRun) cachedResolution(ctx context.Context, kind, granblueID string) (string, bool) {
	if r.resolutions == nil {
		return "", false
	}

	out, err := r.resolutions.Get(ctx, resolution.GetInput{Key: resolution.Key{
		Kind:       kind,
		GranblueID: granblueID,
		Locale:     string(r.doc.Lang),
	}})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.Debug("resolution cache read failed", "kind", kind, "error", err)
		}
		return "", false
	}
	return out.Entry.ServiceID, true
}

func (r *importRun) storeResolution(ctx context.Context, kind, granblueID, serviceID string) {
	if r.resolutions == nil {
		return
	}

	_, err := r.resolutions.Put(ctx, resolution.PutInput{
		Key: resolution.Key{
			Kind:       kind,
			GranblueID: granblueID,
			Locale:     string(r.doc.Lang),
		},
		ServiceID: serviceID,
	})
	if err != nil {
		slog.Debug("resolution cache write failed", "kind", kind, "error", err)
	}
}

// seekID returns the ID of the first element matching the predicate, or
// the first element's ID when nothing matches. The second return
// reports whether the predicate matched. Empty input returns "".
func seekID[T any](items []T, id func(T) string, pred func(T) bool) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	for _, item := range items {
		if pred(item) {
			return id(item), true
		}
	}
	return id(items[0]), false
}
