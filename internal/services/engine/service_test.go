package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/actionlog"
	mockdice "github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice/mock"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/hazards"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/services/engine"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/uuid"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/uuid/mocks"
)

func weapon(t *testing.T, key string) *equipment.Weapon {
	t.Helper()
	w, err := equipment.Lookup(key)
	require.NoError(t, err)
	return w
}

type ServiceTestSuite struct {
	suite.Suite
	roller  *mockdice.ManualMockRoller
	ids     *uuid.SequentialGenerator
	service engine.Service
	fighter *participant.Participant
	wizard  *participant.Participant
	goblin  *participant.Participant
	ctx     context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = mockdice.NewManualMockRoller()
	s.ids = uuid.NewSequentialGenerator("act")

	svc, err := engine.NewService(&engine.ServiceConfig{Roller: s.roller, IDGenerator: s.ids})
	s.Require().NoError(err)
	s.service = svc

	s.fighter, err = participant.New(&participant.Config{
		ID:   "aria",
		Name: "Aria",
		Abilities: shared.AbilityScores{
			Strength: 16, Dexterity: 12, Constitution: 14, Intelligence: 10, Wisdom: 10, Charisma: 8,
		},
		Classes:  []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 5}},
		MainHand: weapon(s.T(), "longsword"),
	})
	s.Require().NoError(err)

	s.wizard, err = participant.New(&participant.Config{
		ID:   "mira",
		Name: "Mira",
		Abilities: shared.AbilityScores{
			Strength: 8, Dexterity: 14, Constitution: 14, Intelligence: 16, Wisdom: 12, Charisma: 10,
		},
		Classes:    []rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 3}},
		HP:         &shared.HitPoints{Current: 30, Max: 30},
		ArmorClass: 12,
	})
	s.Require().NoError(err)

	s.goblin, err = participant.New(&participant.Config{
		ID:             "goblin-1",
		Name:           "Goblin",
		Kind:           participant.KindMonster,
		Abilities:      participant.DefaultAbilityScores,
		ChallengeLevel: 1,
		HP:             &shared.HitPoints{Current: 30, Max: 30},
		ArmorClass:     15,
	})
	s.Require().NoError(err)
}

func (s *ServiceTestSuite) TestNewService_Validation() {
	_, err := engine.NewService(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = engine.NewService(&engine.ServiceConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestResolveAttack_ExtraAttackAndGeneratedID() {
	// first swing hits for 5+3, second misses
	s.roller.SetRolls([]int{11, 5, 3})

	out, err := s.service.Resolve(s.ctx, &action.Request{
		Type:     action.TypeAttack,
		ActorID:  "aria",
		TargetID: "goblin-1",
	}, s.fighter, s.goblin, nil)
	s.Require().NoError(err)

	s.Equal("act-1", out.ActionID)
	s.Equal("act-1", out.Request.ID)
	s.Len(out.Attacks, 2)
	s.Equal(8, out.DamageDealt)
	s.Equal(22, out.Target.HP.Current)
	s.True(out.Actor.Economy.ActionUsed)
	s.Equal("act-1", out.TargetDelta.ActionID)
	s.Equal("act-1", out.ActorDelta.ActionID)
	s.Len(out.Deltas(), 2)
	s.Require().Len(out.Entries, 2)
	s.Equal("Aria hits Goblin with Longsword for 8 slashing damage", out.Entries[0].Summary)
	s.Equal("Aria misses Goblin with Longsword", out.Entries[1].Summary)
	s.Zero(s.roller.Remaining())

	// inputs untouched
	s.Equal(30, s.goblin.HP.Current)
	s.False(s.fighter.Economy.ActionUsed)
}

func (s *ServiceTestSuite) TestResolve_ReplayedRequestRollsNothing() {
	s.roller.SetRolls([]int{11, 5, 3})
	req := &action.Request{ID: "turn-7", Type: action.TypeAttack, ActorID: "aria", TargetID: "goblin-1"}

	first, err := s.service.Resolve(s.ctx, req, s.fighter, s.goblin, nil)
	s.Require().NoError(err)

	s.roller.SetRolls([]int{20, 8, 8})
	again, err := s.service.Resolve(s.ctx, req, first.Actor, first.Target, nil)
	s.Require().NoError(err)

	s.True(again.Replayed)
	s.Empty(again.Attacks)
	s.Equal(first.Target.HP, again.Target.HP)
	s.Equal(3, s.roller.Remaining())
}

func (s *ServiceTestSuite) TestResolveAttack_SwapsToNamedWeapon() {
	s.roller.SetRolls([]int{15, 9, 1})

	out, err := s.service.Resolve(s.ctx, &action.Request{
		Type: action.TypeAttack, ActorID: "aria", TargetID: "goblin-1", WeaponKey: "greataxe",
	}, s.fighter, s.goblin, nil)
	s.Require().NoError(err)

	s.Equal("Greataxe", out.Attacks[0].Resolution.SourceName)
	s.Equal(12, out.Attacks[0].Damage.Raw, "1d12 (9) + 3")
}

func (s *ServiceTestSuite) TestResolve_InvalidRequests() {
	tests := []struct {
		name   string
		req    *action.Request
		actor  *participant.Participant
		target *participant.Participant
	}{
		{
			name:   "actor mismatch",
			req:    &action.Request{Type: action.TypeAttack, ActorID: "someone", TargetID: "goblin-1"},
			actor:  s.fighter,
			target: s.goblin,
		},
		{
			name:  "missing target",
			req:   &action.Request{Type: action.TypeAttack, ActorID: "aria", TargetID: "goblin-1"},
			actor: s.fighter,
		},
		{
			name:   "self target",
			req:    &action.Request{Type: action.TypeAttack, ActorID: "aria", TargetID: "aria"},
			actor:  s.fighter,
			target: s.fighter,
		},
		{
			name:   "unknown weapon",
			req:    &action.Request{Type: action.TypeAttack, ActorID: "aria", TargetID: "goblin-1", WeaponKey: "lightsaber"},
			actor:  s.fighter,
			target: s.goblin,
		},
		{
			name:  "unknown spell",
			req:   &action.Request{Type: action.TypeCastSpell, ActorID: "mira", SpellKey: "wish-lite"},
			actor: s.wizard,
		},
		{
			name:  "no actor",
			req:   &action.Request{Type: action.TypeSave, ActorID: "aria", Ability: shared.AttributeDexterity, DC: 10},
			actor: nil,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Resolve(s.ctx, tt.req, tt.actor, tt.target, nil)
			s.True(errors.IsInvalidAction(err), "got %v", err)
		})
	}
}

func (s *ServiceTestSuite) TestResolveCast_SpellAttack() {
	// +5 to hit: 14 -> 19; fire bolt 1d10 at level 3
	s.roller.SetRolls([]int{14, 7})

	out, err := s.service.Resolve(s.ctx, &action.Request{
		Type: action.TypeCastSpell, ActorID: "mira", TargetID: "goblin-1", SpellKey: "fire-bolt", Distance: 60,
	}, s.wizard, s.goblin, nil)
	s.Require().NoError(err)

	s.Equal(0, out.Cast.SlotLevel)
	s.Require().Len(out.Attacks, 1)
	s.True(out.Attacks[0].Resolution.Hit)
	s.Equal(7, out.DamageDealt)
	s.Equal(23, out.Target.HP.Current)
	s.True(out.Actor.Economy.ActionUsed)
	s.Equal(s.wizard.SpellSlots, out.Actor.SpellSlots, "cantrips are free")
	s.Len(out.Entries, 2)
}

func (s *ServiceTestSuite) TestResolveCast_SaveSpell() {
	// DC 13; goblin rolls 5 and takes 3d6 = 12
	s.roller.SetRolls([]int{5, 4, 4, 4})

	out, err := s.service.Resolve(s.ctx, &action.Request{
		Type: action.TypeCastSpell, ActorID: "mira", TargetID: "goblin-1", SpellKey: "burning-hands", SlotLevel: 1,
	}, s.wizard, s.goblin, nil)
	s.Require().NoError(err)

	s.Require().NotNil(out.SpellEffect)
	s.Equal(13, out.SpellEffect.DC)
	s.False(out.SpellEffect.Save.Success)
	s.Equal(12, out.DamageDealt)
	s.Equal(18, out.Target.HP.Current)
	s.Equal(s.wizard.SpellSlots.Get(1).Current-1, out.Actor.SpellSlots.Get(1).Current)
	s.Equal(actionlog.TypeSpellSave, out.Entries[1].Type)
}

func (s *ServiceTestSuite) TestResolveCast_AutomaticDamage() {
	s.roller.SetRolls([]int{1, 2, 3})

	out, err := s.service.Resolve(s.ctx, &action.Request{
		Type: action.TypeCastSpell, ActorID: "mira", TargetID: "goblin-1", SpellKey: "magic-missile", SlotLevel: 1,
	}, s.wizard, s.goblin, nil)
	s.Require().NoError(err)

	s.Nil(out.SpellEffect.Save)
	s.Equal(9, out.DamageDealt, "3d4 (6) + 3")
	s.Equal("Mira hits Goblin with Magic Missile for 9 force damage", out.Entries[1].Summary)
}

func (s *ServiceTestSuite) TestResolveCast_NoSlotLeft() {
	drained := s.wizard.Clone()
	for drained.SpellSlots.Available(1) {
		next, err := drained.SpellSlots.Consume(1)
		s.Require().NoError(err)
		drained.SpellSlots = next
	}

	_, err := s.service.Resolve(s.ctx, &action.Request{
		Type: action.TypeCastSpell, ActorID: "mira", SpellKey: "bless", SlotLevel: 1,
	}, drained, nil, nil)
	s.True(errors.IsInvalidAction(err))
}

func (s *ServiceTestSuite) TestConcentrationFollowsDamage() {
	tests := []struct {
		name      string
		saveFace  int
		maintains bool
	}{
		{name: "save kept", saveFace: 15, maintains: true},
		{name: "save lost", saveFace: 3, maintains: false},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			concentrating := s.wizard.Clone()
			concentrating.Concentration = "bless"
			// hit for 8, miss, then CON save +2 against DC 10
			s.roller.SetRolls([]int{11, 5, 3, tt.saveFace})

			out, err := s.service.Resolve(s.ctx, &action.Request{
				Type: action.TypeAttack, ActorID: "aria", TargetID: "mira",
			}, s.fighter, concentrating, nil)
			s.Require().NoError(err)

			s.Require().NotNil(out.Concentration)
			s.Equal(10, out.Concentration.DC)
			s.Equal(tt.maintains, out.Concentration.Maintained)
			s.Equal(!tt.maintains, out.TargetDelta.ConcentrationDropped)
			s.Equal(tt.maintains, out.Target.IsConcentrating())
			s.Equal(22, out.Target.HP.Current)
			s.True(out.Target.HasApplied(out.ActionID))
			s.Len(out.Entries, 3)
			s.Equal(actionlog.TypeConcentration, out.Entries[2].Type)
			s.Equal("mira", out.Entries[2].ActorID)
		})
	}
}

func (s *ServiceTestSuite) TestConcentrationDeltaAppliesOnce() {
	concentrating := s.wizard.Clone()
	concentrating.Concentration = "bless"
	s.roller.SetRolls([]int{11, 5, 3, 2})

	out, err := s.service.Resolve(s.ctx, &action.Request{
		Type: action.TypeAttack, ActorID: "aria", TargetID: "mira",
	}, s.fighter, concentrating, nil)
	s.Require().NoError(err)

	once, applied, err := action.Apply(concentrating, out.TargetDelta)
	s.Require().NoError(err)
	s.True(applied)
	twice, applied, err := action.Apply(once, out.TargetDelta)
	s.Require().NoError(err)
	s.False(applied)
	s.Equal(once.HP, twice.HP)
	s.False(twice.IsConcentrating())
}

func (s *ServiceTestSuite) TestResolveOffHand() {
	dual, err := participant.New(&participant.Config{
		ID:        "vex",
		Name:      "Vex",
		Abilities: participant.DefaultAbilityScores.With(shared.AttributeStrength, 16),
		Classes:   []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 1}},
		MainHand:  weapon(s.T(), "handaxe"),
		OffHand:   weapon(s.T(), "handaxe"),
	})
	s.Require().NoError(err)
	dual.Economy.ActionUsed = true
	s.roller.SetRolls([]int{15, 4})

	out, err := s.service.Resolve(s.ctx, &action.Request{
		Type: action.TypeOffHandAttack, ActorID: "vex", TargetID: "goblin-1",
	}, dual, s.goblin, nil)
	s.Require().NoError(err)

	s.Equal(4, out.DamageDealt, "no modifier in the off hand")
	s.True(out.Actor.Economy.BonusActionUsed)
}

func (s *ServiceTestSuite) TestResolveSaveAndSkillCheck() {
	s.roller.SetRolls([]int{10, 10})

	save, err := s.service.Resolve(s.ctx, &action.Request{
		Type: action.TypeSave, ActorID: "aria", Ability: shared.AttributeStrength, DC: 15,
	}, s.fighter, nil, nil)
	s.Require().NoError(err)
	s.True(save.Check.Success)
	s.Equal(16, save.Check.Total)
	s.Empty(save.Deltas())

	check, err := s.service.Resolve(s.ctx, &action.Request{
		Type: action.TypeSkillCheck, ActorID: "aria", Skill: shared.SkillAthletics, DC: 15,
	}, s.fighter, nil, nil)
	s.Require().NoError(err)
	s.False(check.Check.Success)
	s.Equal("Aria fails an Athletics check (13 vs DC 15)", check.Entries[0].Summary)
}

func (s *ServiceTestSuite) TestResolvePublishesEntries() {
	pub := actionlog.NewPublisher(nil)
	var got []*actionlog.Entry
	pub.Subscribe(10, func(_ context.Context, e *actionlog.Entry) error {
		got = append(got, e)
		return nil
	})

	svc, err := engine.NewService(&engine.ServiceConfig{Roller: s.roller, IDGenerator: s.ids, Publisher: pub})
	s.Require().NoError(err)
	s.roller.SetRolls([]int{11, 5, 3})

	out, err := svc.Resolve(s.ctx, &action.Request{Type: action.TypeAttack, ActorID: "aria", TargetID: "goblin-1"}, s.fighter, s.goblin, nil)
	s.Require().NoError(err)
	s.Equal(out.Entries, got)
}

func (s *ServiceTestSuite) TestDirectMethods() {
	slots := s.service.CalculateSpellSlots(s.wizard)
	s.Equal(4, slots.Get(1).Max)
	s.Equal(2, s.service.CalculateSpellSlots(s.wizard).Get(2).Max)

	held, after, err := s.service.CheckConcentration(s.wizard, 20)
	s.Require().NoError(err)
	s.True(held, "not concentrating")
	s.Equal(s.wizard.ID, after.ID)

	s.roller.SetRolls([]int{12, 3, 4, 5})
	pit, err := engine.DefaultCatalog()
	s.Require().NoError(err)
	def, err := pit.Hazard("spiked-pit")
	s.Require().NoError(err)
	interaction, err := s.service.InteractWithHazard(s.fighter, def)
	s.Require().NoError(err)
	s.NotEmpty(interaction.Delta.ActionID)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestCalculateSpellSlots_Multiclass(t *testing.T) {
	svc, err := engine.NewService(&engine.ServiceConfig{Roller: mockdice.NewManualMockRoller()})
	require.NoError(t, err)

	p, err := participant.New(&participant.Config{
		ID:        "multi",
		Name:      "Multi",
		Abilities: participant.DefaultAbilityScores,
		Classes: []rulebook.ClassLevel{
			{Class: rulebook.ClassWizard, Level: 3},
			{Class: rulebook.ClassCleric, Level: 2},
		},
	})
	require.NoError(t, err)

	slots := svc.CalculateSpellSlots(p)
	assert.Equal(t, 4, slots.Get(1).Max)
	assert.Equal(t, 3, slots.Get(2).Max)
	assert.Equal(t, 2, slots.Get(3).Max)
}

func TestInteractWithHazard_UsesGeneratedID(t *testing.T) {
	ctrl := gomock.NewController(t)
	ids := mocks.NewMockGenerator(ctrl)
	ids.EXPECT().New().Return("trap-7")

	// plain sight hazard without a save: 2d10 bludgeoning lands in full
	roller := mockdice.NewManualMockRoller(3, 4)
	svc, err := engine.NewService(&engine.ServiceConfig{Roller: roller, IDGenerator: ids})
	require.NoError(t, err)

	p, err := participant.NewDefault("scout", "Scout", participant.DefaultAbilityScores)
	require.NoError(t, err)

	def := &hazards.Definition{
		Key: "rockfall", Name: "Rockfall", Trigger: hazards.TriggerOnEnter,
		Damage: &damage.Damage{DiceCount: 2, DiceSize: 10, DamageType: damage.TypeBludgeoning},
	}
	interaction, err := svc.InteractWithHazard(p, def)
	require.NoError(t, err)

	assert.Equal(t, "trap-7", interaction.Delta.ActionID)
	assert.Equal(t, 7, interaction.DamageDealt)
	assert.Equal(t, 0, roller.Remaining())
}
