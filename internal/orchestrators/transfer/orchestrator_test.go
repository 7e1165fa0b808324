package transfer_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/granblue-tools/hensei-transfer/internal/clients/hensei"
	henseimock "github.com/granblue-tools/hensei-transfer/internal/clients/hensei/mock"
	"github.com/granblue-tools/hensei-transfer/internal/entities/party"
	"github.com/granblue-tools/hensei-transfer/internal/errors"
	"github.com/granblue-tools/hensei-transfer/internal/orchestrators/transfer"
	"github.com/granblue-tools/hensei-transfer/internal/repositories/resolution"
	resolutionmock "github.com/granblue-tools/hensei-transfer/internal/repositories/resolution/mock"
	"github.com/granblue-tools/hensei-transfer/internal/testutils"
)

// testPartyID stands in for the UUID the service mints on party creation.
var testPartyID = testutils.ServiceUUID()

const (
	testShortcode = "Ab3dEf"
	testJobID     = "job-viking"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *henseimock.MockClient
	svc        transfer.Service
	ctx        context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = henseimock.NewMockClient(s.ctrl)

	svc, err := transfer.NewOrchestrator(&transfer.Config{Client: s.mockClient})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) document() *party.Document {
	return &party.Document{
		Lang:  party.LocaleEN,
		Name:  "My team",
		Class: "Viking",
	}
}

func (s *OrchestratorTestSuite) staticData() *transfer.StaticData {
	return &transfer.StaticData{Jobs: []transfer.Job{
		{ID: "job-other", Name: hensei.LocalizedName{EN: "Kengo", JA: "剣豪"}},
		{ID: testJobID, Name: hensei.LocalizedName{EN: "Viking", JA: "ヴァイキング"}},
	}}
}

// expectBase wires the calls every successful import makes.
func (s *OrchestratorTestSuite) expectBase(doc *party.Document) {
	s.mockClient.EXPECT().Authenticated().Return(true)
	s.mockClient.EXPECT().CreateParty(gomock.Any()).
		Return(&hensei.Party{ID: testPartyID, Shortcode: testShortcode}, nil)
	s.mockClient.EXPECT().
		UpdatePartyDetails(gomock.Any(), testPartyID, doc.Name, doc.Extra).
		Return(nil)
	s.mockClient.EXPECT().SetPartyJob(gomock.Any(), testPartyID, testJobID).Return(nil)
}

func (s *OrchestratorTestSuite) TestImport_RequiresDocument() {
	_, err := s.svc.Import(s.ctx, nil)
	s.Require().Error(err)
	s.Equal(errors.CodeInvalidArgument, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestImport_RequiresStaticData() {
	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{Document: s.document()})
	s.Require().Error(err)
	s.Equal(errors.CodeFailedPrecondition, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestImport_RequiresAuthentication() {
	s.mockClient.EXPECT().Authenticated().Return(false)

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   s.document(),
		StaticData: s.staticData(),
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnauthenticated, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestImport_EmptyTeam() {
	doc := s.document()
	s.expectBase(doc)

	out, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   doc,
		StaticData: s.staticData(),
	})
	s.Require().NoError(err)
	s.Equal(testPartyID, out.PartyID)
	s.Equal("/p/"+testShortcode, out.Path)
}

func (s *OrchestratorTestSuite) TestImport_CharacterProgression() {
	doc := s.document()
	doc.Characters = []party.Character{
		{Name: "Anila", ID: "3040098000", Uncap: 6, Transcend: 3, Ringed: true},
	}
	s.expectBase(doc)

	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchCharacters,
			&hensei.SearchQuery{Query: "Anila", Locale: party.LocaleEN}).
		Return([]hensei.SearchHit{{ID: "char-1", GranblueID: "3040098000"}}, nil)
	s.mockClient.EXPECT().
		AddCharacter(gomock.Any(), &hensei.AddCharacterInput{
			PartyID:     testPartyID,
			CharacterID: "char-1",
			Position:    0,
			UncapLevel:  6,
		}).
		Return(&hensei.GridCharacter{ID: "gc-1"}, nil)

	var mu sync.Mutex
	var updates []*hensei.GridCharacterUpdate
	s.mockClient.EXPECT().
		UpdateGridCharacter(gomock.Any(), "gc-1", gomock.Any()).
		Times(2).
		DoAndReturn(func(_ context.Context, _ string, u *hensei.GridCharacterUpdate) error {
			mu.Lock()
			defer mu.Unlock()
			updates = append(updates, u)
			return nil
		})

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   doc,
		StaticData: s.staticData(),
	})
	s.Require().NoError(err)

	var sawPerpetuity, sawTranscend bool
	for _, u := range updates {
		if u.Perpetuity != nil && *u.Perpetuity {
			sawPerpetuity = true
		}
		if u.TranscendenceStep != nil {
			s.Equal(3, *u.TranscendenceStep)
			s.Require().NotNil(u.UncapLevel)
			s.Equal(6, *u.UncapLevel)
			sawTranscend = true
		}
	}
	s.True(sawPerpetuity)
	s.True(sawTranscend)
}

func (s *OrchestratorTestSuite) TestImport_UnknownEntitySkipped() {
	doc := s.document()
	doc.Characters = []party.Character{{Name: "Nobody", ID: "3049999999", Uncap: 4}}
	s.expectBase(doc)

	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchCharacters, gomock.Any()).
		Return(nil, nil)

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   doc,
		StaticData: s.staticData(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestImport_FirstResultFallback() {
	doc := s.document()
	doc.Characters = []party.Character{{Name: "Anila", ID: "3040098000", Uncap: 4}}
	s.expectBase(doc)

	// no hit carries the wanted game ID; the first result is taken
	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchCharacters, gomock.Any()).
		Return([]hensei.SearchHit{
			{ID: "char-a", GranblueID: "3040000001"},
			{ID: "char-b", GranblueID: "3040000002"},
		}, nil)
	s.mockClient.EXPECT().
		AddCharacter(gomock.Any(), &hensei.AddCharacterInput{
			PartyID:     testPartyID,
			CharacterID: "char-a",
			Position:    0,
			UncapLevel:  4,
		}).
		Return(&hensei.GridCharacter{ID: "gc-1"}, nil)

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   doc,
		StaticData: s.staticData(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestImport_JobSkillRetry() {
	doc := s.document()
	doc.Subskills = []string{"Rage of the Sea", "", "Gale Claw"}
	s.expectBase(doc)

	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchJobSkills,
			&hensei.SearchQuery{Query: "Rage of the Sea", Locale: party.LocaleEN, JobID: testJobID}).
		Return([]hensei.SearchHit{{ID: "sk-rage", Name: hensei.LocalizedName{EN: "Rage of the Sea"}}}, nil)
	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchJobSkills,
			&hensei.SearchQuery{Query: "Gale Claw", Locale: party.LocaleEN, JobID: testJobID}).
		Return([]hensei.SearchHit{{ID: "sk-gale", Name: hensei.LocalizedName{EN: "Gale Claw"}}}, nil)

	// slot 1 collides with an auto-assigned skill, then lands on retry
	s.mockClient.EXPECT().SetJobSkill(gomock.Any(), testPartyID, 1, "sk-rage").
		Return(errors.AlreadyExists("slot occupied"))
	s.mockClient.EXPECT().SetJobSkill(gomock.Any(), testPartyID, 2, "sk-gale").Return(nil)
	s.mockClient.EXPECT().SetJobSkill(gomock.Any(), testPartyID, 1, "sk-rage").Return(nil)

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   doc,
		StaticData: s.staticData(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestImport_Accessory() {
	doc := s.document()
	accessory := 4
	doc.Accessory = &accessory
	s.expectBase(doc)

	s.mockClient.EXPECT().ListJobAccessories(gomock.Any(), testJobID).
		Return([]hensei.Accessory{
			{ID: "acc-1", GranblueID: "1"},
			{ID: "acc-4", GranblueID: "4"},
		}, nil)
	s.mockClient.EXPECT().SetPartyAccessory(gomock.Any(), testPartyID, "acc-4").Return(nil)

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   doc,
		StaticData: s.staticData(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestImport_WeaponFacets() {
	doc := s.document()
	doc.Weapons = []party.Weapon{{
		Name:      "Ultima Blade",
		ID:        "1040011900",
		Attr:      3,
		Uncap:     6,
		Transcend: 3,
		Awakening: &party.Awakening{Type: "Attack", Level: 2},
		AX:        []party.AXSkill{{ID: "1588", Value: "+20%"}},
		Keys:      []string{"", "1241"},
	}}
	s.expectBase(doc)

	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchWeapons,
			&hensei.SearchQuery{Query: "Ultima Blade", Locale: party.LocaleEN}).
		Return([]hensei.SearchHit{{ID: "wp-1", GranblueID: "1040011900"}}, nil)

	placed := &hensei.GridWeapon{ID: "gw-1"}
	placed.Object.Series = 19
	placed.Object.Awakenings = []hensei.AwakeningOption{
		{ID: "awk-def", Name: hensei.LocalizedName{EN: "Defense"}},
		{ID: "awk-atk", Name: hensei.LocalizedName{EN: "Attack"}},
	}
	s.mockClient.EXPECT().
		AddWeapon(gomock.Any(), &hensei.AddWeaponInput{
			PartyID:    testPartyID,
			WeaponID:   "wp-1",
			Position:   -1,
			Mainhand:   true,
			UncapLevel: 6,
		}).
		Return(placed, nil)

	// some CCW report game series 19, their emblem keys are filed under 24
	s.mockClient.EXPECT().ListWeaponKeys(gomock.Any(), 24, 1).
		Return([]hensei.WeaponKey{
			{ID: "key-other", GranblueID: 13001},
			{ID: "key-skill", GranblueID: 13002},
		}, nil)

	s.mockClient.EXPECT().SetWeaponAwakening(gomock.Any(), "gw-1", "awk-atk", 2).Return(nil)

	var mu sync.Mutex
	var updates []*hensei.GridWeaponUpdate
	s.mockClient.EXPECT().
		UpdateGridWeapon(gomock.Any(), "gw-1", gomock.Any()).
		Times(4).
		DoAndReturn(func(_ context.Context, _ string, u *hensei.GridWeaponUpdate) error {
			mu.Lock()
			defer mu.Unlock()
			updates = append(updates, u)
			return nil
		})

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   doc,
		StaticData: s.staticData(),
	})
	s.Require().NoError(err)

	var sawElement, sawTranscend, sawKey, sawAX bool
	for _, u := range updates {
		if u.Element != nil {
			s.Equal(4, *u.Element, "game element 3 is service element 4")
			sawElement = true
		}
		if u.TranscendenceStep != nil {
			s.Equal(3, *u.TranscendenceStep)
			sawTranscend = true
		}
		if u.WeaponKey2ID != nil {
			s.Equal("key-skill", *u.WeaponKey2ID)
			s.Nil(u.WeaponKey1ID)
			sawKey = true
		}
		if u.AXModifier1 != nil {
			s.Equal(7, *u.AXModifier1)
			s.Require().NotNil(u.AXStrength1)
			s.Equal(20, *u.AXStrength1)
			sawAX = true
		}
	}
	s.True(sawElement)
	s.True(sawTranscend)
	s.True(sawKey)
	s.True(sawAX)
}

func (s *OrchestratorTestSuite) TestImport_WeaponPlacementFailureJoinsUpdates() {
	doc := s.document()
	doc.Weapons = []party.Weapon{
		{Name: "Abyss Spine", ID: "1040001000", Attr: 4},
		{Name: "Hollowsky Blade", ID: "1040911000"},
	}
	s.expectBase(doc)

	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchWeapons,
			&hensei.SearchQuery{Query: "Abyss Spine", Locale: party.LocaleEN}).
		Return([]hensei.SearchHit{{ID: "wp-1", GranblueID: "1040001000"}}, nil)
	s.mockClient.EXPECT().
		AddWeapon(gomock.Any(), &hensei.AddWeaponInput{
			PartyID:  testPartyID,
			WeaponID: "wp-1",
			Position: -1,
			Mainhand: true,
		}).
		Return(&hensei.GridWeapon{ID: "gw-1"}, nil)

	// The element update is held back until the second placement has
	// already failed, so a return without a join would leave it running.
	released := make(chan struct{})
	var mu sync.Mutex
	updated := false
	s.mockClient.EXPECT().
		UpdateGridWeapon(gomock.Any(), "gw-1", gomock.Any()).
		DoAndReturn(func(context.Context, string, *hensei.GridWeaponUpdate) error {
			<-released
			mu.Lock()
			updated = true
			mu.Unlock()
			return nil
		})

	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchWeapons,
			&hensei.SearchQuery{Query: "Hollowsky Blade", Locale: party.LocaleEN}).
		Return([]hensei.SearchHit{{ID: "wp-2", GranblueID: "1040911000"}}, nil)
	s.mockClient.EXPECT().
		AddWeapon(gomock.Any(), &hensei.AddWeaponInput{
			PartyID:  testPartyID,
			WeaponID: "wp-2",
			Position: 0,
		}).
		DoAndReturn(func(context.Context, *hensei.AddWeaponInput) (*hensei.GridWeapon, error) {
			close(released)
			return nil, errors.Unavailable("service unavailable")
		})

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   doc,
		StaticData: s.staticData(),
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))

	mu.Lock()
	defer mu.Unlock()
	s.True(updated, "in-flight grid update must finish before Import returns")
}

func (s *OrchestratorTestSuite) TestImport_SummonsAndFriend() {
	doc := s.document()
	doc.FriendSummon = "Bahamut"
	doc.Summons = []party.Summon{
		{Name: "Lucifer", ID: "2040056000", Uncap: 6, Transcend: 2, QuickSummon: true},
	}
	doc.SubSummons = []party.Summon{
		{Name: "Huanglong", ID: "2040157000", Uncap: 4},
	}
	s.expectBase(doc)

	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchSummons,
			&hensei.SearchQuery{Query: "Lucifer", Locale: party.LocaleEN}).
		Return([]hensei.SearchHit{{ID: "sm-luci", GranblueID: "2040056000"}}, nil)
	s.mockClient.EXPECT().
		AddSummon(gomock.Any(), &hensei.AddSummonInput{
			PartyID:    testPartyID,
			SummonID:   "sm-luci",
			Position:   -1,
			Main:       true,
			UncapLevel: 6,
		}).
		Return(&hensei.GridSummon{ID: "gs-main"}, nil)
	s.mockClient.EXPECT().UpdateSummonUncap(gomock.Any(), "gs-main", 6, 2).Return(nil)
	s.mockClient.EXPECT().SetQuickSummon(gomock.Any(), "gs-main").Return(nil)

	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchSummons,
			&hensei.SearchQuery{Query: "Huanglong", Locale: party.LocaleEN}).
		Return([]hensei.SearchHit{{ID: "sm-huang", GranblueID: "2040157000"}}, nil)
	s.mockClient.EXPECT().
		AddSummon(gomock.Any(), &hensei.AddSummonInput{
			PartyID:    testPartyID,
			SummonID:   "sm-huang",
			Position:   5,
			UncapLevel: 4,
		}).
		Return(&hensei.GridSummon{ID: "gs-sub"}, nil)

	friend := &hensei.GridSummon{ID: "gs-friend"}
	friend.Object.Uncap = hensei.UncapSupport{FLB: true, ULB: true, XLB: true}
	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchSummons,
			&hensei.SearchQuery{Query: "Bahamut", Locale: party.LocaleEN}).
		Return([]hensei.SearchHit{{ID: "sm-baha", Name: hensei.LocalizedName{EN: "Bahamut"}}}, nil)
	s.mockClient.EXPECT().
		AddSummon(gomock.Any(), &hensei.AddSummonInput{
			PartyID:  testPartyID,
			SummonID: "sm-baha",
			Position: 6,
			Friend:   true,
		}).
		Return(friend, nil)
	s.mockClient.EXPECT().UpdateSummonUncap(gomock.Any(), "gs-friend", 6, 5).Return(nil)

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   doc,
		StaticData: s.staticData(),
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestImport_CreateFailureStopsEverything() {
	s.mockClient.EXPECT().Authenticated().Return(true)
	s.mockClient.EXPECT().CreateParty(gomock.Any()).
		Return(nil, errors.Unavailable("service down"))

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document:   s.document(),
		StaticData: s.staticData(),
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

type CachedResolutionTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *henseimock.MockClient
	mockRepo   *resolutionmock.MockRepository
	svc        transfer.Service
	ctx        context.Context
}

func (s *CachedResolutionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = henseimock.NewMockClient(s.ctrl)
	s.mockRepo = resolutionmock.NewMockRepository(s.ctrl)

	svc, err := transfer.NewOrchestrator(&transfer.Config{
		Client:      s.mockClient,
		Resolutions: s.mockRepo,
	})
	s.Require().NoError(err)
	s.svc = svc

	s.ctx = context.Background()
}

func (s *CachedResolutionTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedResolutionTestSuite) run(doc *party.Document) error {
	s.mockClient.EXPECT().Authenticated().Return(true)
	s.mockClient.EXPECT().CreateParty(gomock.Any()).
		Return(&hensei.Party{ID: testPartyID, Shortcode: testShortcode}, nil)
	s.mockClient.EXPECT().
		UpdatePartyDetails(gomock.Any(), testPartyID, doc.Name, doc.Extra).Return(nil)
	s.mockClient.EXPECT().SetPartyJob(gomock.Any(), testPartyID, testJobID).Return(nil)

	_, err := s.svc.Import(s.ctx, &transfer.ImportInput{
		Document: doc,
		StaticData: &transfer.StaticData{Jobs: []transfer.Job{
			{ID: testJobID, Name: hensei.LocalizedName{EN: "Viking"}},
		}},
	})
	return err
}

func (s *CachedResolutionTestSuite) TestCacheHitSkipsSearch() {
	doc := &party.Document{Lang: party.LocaleEN, Name: "t", Class: "Viking"}
	doc.Characters = []party.Character{{Name: "Anila", ID: "3040098000", Uncap: 4}}

	s.mockRepo.EXPECT().
		Get(gomock.Any(), resolution.GetInput{Key: resolution.Key{
			Kind:       "characters",
			GranblueID: "3040098000",
			Locale:     "en",
		}}).
		Return(&resolution.GetOutput{Entry: &resolution.Entry{ServiceID: "char-cached"}}, nil)
	s.mockClient.EXPECT().
		AddCharacter(gomock.Any(), &hensei.AddCharacterInput{
			PartyID:     testPartyID,
			CharacterID: "char-cached",
			Position:    0,
			UncapLevel:  4,
		}).
		Return(&hensei.GridCharacter{ID: "gc-1"}, nil)

	s.Require().NoError(s.run(doc))
}

func (s *CachedResolutionTestSuite) TestExactMatchIsWrittenThrough() {
	doc := &party.Document{Lang: party.LocaleEN, Name: "t", Class: "Viking"}
	doc.Characters = []party.Character{{Name: "Anila", ID: "3040098000", Uncap: 4}}

	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("miss"))
	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchCharacters, gomock.Any()).
		Return([]hensei.SearchHit{{ID: "char-1", GranblueID: "3040098000"}}, nil)
	s.mockRepo.EXPECT().
		Put(gomock.Any(), resolution.PutInput{
			Key: resolution.Key{
				Kind:       "characters",
				GranblueID: "3040098000",
				Locale:     "en",
			},
			ServiceID: "char-1",
		}).
		Return(&resolution.PutOutput{Entry: &resolution.Entry{ServiceID: "char-1"}}, nil)
	s.mockClient.EXPECT().
		AddCharacter(gomock.Any(), gomock.Any()).
		Return(&hensei.GridCharacter{ID: "gc-1"}, nil)

	s.Require().NoError(s.run(doc))
}

func (s *CachedResolutionTestSuite) TestFallbackIsNotCached() {
	doc := &party.Document{Lang: party.LocaleEN, Name: "t", Class: "Viking"}
	doc.Characters = []party.Character{{Name: "Anila", ID: "3040098000", Uncap: 4}}

	s.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("miss"))
	s.mockClient.EXPECT().
		Search(gomock.Any(), hensei.SearchCharacters, gomock.Any()).
		Return([]hensei.SearchHit{{ID: "char-a", GranblueID: "3049999999"}}, nil)
	s.mockClient.EXPECT().
		AddCharacter(gomock.Any(), gomock.Any()).
		Return(&hensei.GridCharacter{ID: "gc-1"}, nil)

	s.Require().NoError(s.run(doc))
}

func TestCachedResolutionTestSuite(t *testing.T) {
	suite.Run(t, new(CachedResolutionTestSuite))
}
