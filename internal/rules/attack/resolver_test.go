package attack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	mockdice "github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice/mock"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/attack"
)

func mustWeapon(t *testing.T, key string) *equipment.Weapon {
	t.Helper()
	w, err := equipment.Lookup(key)
	require.NoError(t, err)
	return w
}

func newFighter(t *testing.T, mutate func(cfg *participant.Config)) *participant.Participant {
	t.Helper()
	cfg := &participant.Config{
		ID:   "aria",
		Name: "Aria",
		Abilities: shared.AbilityScores{
			Strength: 16, Dexterity: 12, Constitution: 14, Intelligence: 10, Wisdom: 10, Charisma: 8,
		},
		Classes:  []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 5}},
		MainHand: mustWeapon(t, "longsword"),
	}
	if mutate != nil {
		mutate(cfg)
	}
	p, err := participant.New(cfg)
	require.NoError(t, err)
	return p
}

func newGoblin(t *testing.T, hp, ac int, conds ...conditions.Condition) *participant.Participant {
	t.Helper()
	p, err := participant.New(&participant.Config{
		ID:             "goblin-1",
		Name:           "Goblin",
		Kind:           participant.KindMonster,
		Abilities:      participant.DefaultAbilityScores,
		ChallengeLevel: 1,
		HP:             &shared.HitPoints{Current: hp, Max: hp},
		ArmorClass:     ac,
		Conditions:     conds,
	})
	require.NoError(t, err)
	return p
}

type ResolverTestSuite struct {
	suite.Suite
	roller   *mockdice.ManualMockRoller
	resolver *attack.Resolver
	fighter  *participant.Participant
	goblin   *participant.Participant
}

func (s *ResolverTestSuite) SetupTest() {
	s.roller = mockdice.NewManualMockRoller()
	resolver, err := attack.NewResolver(&attack.Config{Roller: s.roller})
	s.Require().NoError(err)
	s.resolver = resolver
	s.fighter = newFighter(s.T(), nil)
	s.goblin = newGoblin(s.T(), 30, 15)
}

func (s *ResolverTestSuite) TestLongswordHit() {
	s.roller.SetRolls([]int{11, 5})

	result, err := s.resolver.PerformAttack(s.fighter.MainHand, s.fighter, s.goblin, attack.Options{ActionID: "act-1"})
	s.Require().NoError(err)

	res := result.Resolution
	s.Equal(6, res.AttackBonus, "proficiency 3 + STR 3")
	s.Equal(17, res.Total)
	s.True(res.Hit)
	s.False(res.Critical)
	s.Equal(dice.ModeNormal, res.Mode)

	s.Require().NotNil(result.Damage)
	s.Equal(8, result.Damage.Raw, "1d8 (5) + 3")
	s.Equal(damage.TypeSlashing, result.Damage.Type)
	s.Equal(8, result.TotalDamageDealt)
	s.Equal(22, result.TargetReducedHP)
	s.Equal(22, result.TargetAfter.HP.Current)
	s.Equal("act-1", result.Delta.ActionID)
	s.True(result.TargetAfter.HasApplied("act-1"))

	// the input is untouched
	s.Equal(30, s.goblin.HP.Current)
}

func (s *ResolverTestSuite) TestNaturalTwentyDoublesDiceNotBonus() {
	s.roller.SetRolls([]int{20, 4, 6})

	result, err := s.resolver.PerformAttack(s.fighter.MainHand, s.fighter, s.goblin, attack.Options{})
	s.Require().NoError(err)

	s.True(result.Resolution.Critical)
	s.Equal(2, result.Damage.Dice.Count)
	s.Equal(13, result.Damage.Raw, "2d8 (4+6) + 3")
}

func (s *ResolverTestSuite) TestNaturalOneAlwaysMisses() {
	weak := newGoblin(s.T(), 30, 2)
	s.roller.SetRolls([]int{1})

	result, err := s.resolver.PerformAttack(s.fighter.MainHand, s.fighter, weak, attack.Options{})
	s.Require().NoError(err)

	s.True(result.Resolution.Fumble)
	s.False(result.Resolution.Hit)
	s.Nil(result.Damage)
	s.Zero(result.TotalDamageDealt)
	s.Equal(30, result.TargetReducedHP)
	s.True(result.Delta.IsEmpty())
}

func (s *ResolverTestSuite) TestNaturalTwentyAlwaysHits() {
	armored := newGoblin(s.T(), 30, 30)
	s.roller.SetRolls([]int{20, 1, 1})

	result, err := s.resolver.PerformAttack(s.fighter.MainHand, s.fighter, armored, attack.Options{})
	s.Require().NoError(err)

	s.True(result.Resolution.Hit)
	s.True(result.Resolution.Critical)
	s.Equal(5, result.Damage.Raw)
}

func (s *ResolverTestSuite) TestAdvantageAndDisadvantageCancel() {
	blinded := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.Conditions = []conditions.Condition{{Type: conditions.Blinded}}
	})
	prone := newGoblin(s.T(), 30, 15, conditions.Condition{Type: conditions.Prone})
	s.roller.SetRolls([]int{12, 3})

	result, err := s.resolver.PerformAttack(blinded.MainHand, blinded, prone, attack.Options{})
	s.Require().NoError(err)

	s.Equal(dice.ModeNormal, result.Resolution.Mode)
	s.Equal([]int{12}, result.Resolution.Roll.Rolls, "one die when sources cancel")
	s.Zero(s.roller.Remaining())
}

func (s *ResolverTestSuite) TestManySourcesStillCancel() {
	attacker := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.Conditions = []conditions.Condition{{Type: conditions.Poisoned}, {Type: conditions.Frightened}}
	})
	target := newGoblin(s.T(), 30, 15, conditions.Condition{Type: conditions.Restrained})
	s.roller.SetRolls([]int{9})

	res, err := s.resolver.ResolveAttack(attacker.MainHand, attacker, target, attack.Options{
		Override: dice.Override{Advantage: true},
	})
	s.Require().NoError(err)
	s.Equal(dice.ModeNormal, res.Mode)
}

func (s *ResolverTestSuite) TestAdvantageKeepsHigher() {
	prone := newGoblin(s.T(), 30, 15, conditions.Condition{Type: conditions.Prone})
	s.roller.SetRolls([]int{3, 14, 2})

	result, err := s.resolver.PerformAttack(s.fighter.MainHand, s.fighter, prone, attack.Options{})
	s.Require().NoError(err)

	s.Equal(dice.ModeAdvantage, result.Resolution.Mode)
	s.Equal(14, result.Resolution.Natural)
	s.Equal(20, result.Resolution.Total)
	s.True(result.Resolution.Hit)
}

func (s *ResolverTestSuite) TestUnconsciousTargetWithinFiveFeetIsAutoCrit() {
	target := newGoblin(s.T(), 30, 15, conditions.Condition{Type: conditions.Unconscious})
	// advantage: 4 and 10 keep 10, total 16 hits
	s.roller.SetRolls([]int{4, 10, 2, 3})

	result, err := s.resolver.PerformAttack(s.fighter.MainHand, s.fighter, target, attack.Options{})
	s.Require().NoError(err)

	s.True(result.Resolution.Critical)
	s.True(result.Resolution.AutoCritical)
	s.Equal(8, result.Damage.Raw, "2d8 (2+3) + 3")
}

func (s *ResolverTestSuite) TestUnconsciousTargetAtRangeIsNotAutoCrit() {
	archer := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.MainHand = mustWeapon(s.T(), "longbow")
	})
	target := newGoblin(s.T(), 30, 15, conditions.Condition{Type: conditions.Unconscious})
	s.roller.SetRolls([]int{4, 16, 5})

	result, err := s.resolver.PerformAttack(archer.MainHand, archer, target, attack.Options{Distance: 60})
	s.Require().NoError(err)

	s.True(result.Resolution.Hit)
	s.False(result.Resolution.Critical)
}

func (s *ResolverTestSuite) TestDuelingAddsTwo() {
	duelist := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.FightingStyles = []rulebook.FightingStyle{rulebook.StyleDueling}
	})
	s.roller.SetRolls([]int{15, 4})

	result, err := s.resolver.PerformAttack(duelist.MainHand, duelist, s.goblin, attack.Options{})
	s.Require().NoError(err)
	s.Equal(9, result.Damage.Raw, "1d8 (4) + 3 + 2")
}

func (s *ResolverTestSuite) TestDuelingNotWithTwoHands() {
	duelist := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.FightingStyles = []rulebook.FightingStyle{rulebook.StyleDueling}
	})
	s.roller.SetRolls([]int{15, 4})

	result, err := s.resolver.PerformAttack(duelist.MainHand, duelist, s.goblin, attack.Options{TwoHanded: true})
	s.Require().NoError(err)
	s.Equal(10, result.Damage.Dice.Sides, "versatile die")
	s.Equal(7, result.Damage.Raw)
}

func (s *ResolverTestSuite) TestGreatWeaponFightingRerollsOnce() {
	gwf := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.MainHand = mustWeapon(s.T(), "greatsword")
		cfg.FightingStyles = []rulebook.FightingStyle{rulebook.StyleGreatWeapon}
	})
	// hit, 2d6 = 1 and 5, the 1 rerolls into a 2 which is kept
	s.roller.SetRolls([]int{15, 1, 5, 2})

	result, err := s.resolver.PerformAttack(gwf.MainHand, gwf, s.goblin, attack.Options{})
	s.Require().NoError(err)

	s.Equal([]int{2}, result.Damage.Rerolls)
	s.Equal(10, result.Damage.Raw, "2 + 5 + 3")
	s.Zero(s.roller.Remaining())
}

func (s *ResolverTestSuite) TestArcheryAddsToRangedAttacks() {
	archer := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.Abilities = cfg.Abilities.With(shared.AttributeDexterity, 16)
		cfg.MainHand = mustWeapon(s.T(), "longbow")
		cfg.FightingStyles = []rulebook.FightingStyle{rulebook.StyleArchery}
	})

	longbow := archer.MainHand
	s.Equal(shared.AttributeDexterity, attack.WeaponAbility(longbow, archer))
	s.Equal(8, attack.WeaponAttackBonus(longbow, archer), "3 + 3 + 2")
	s.Equal(6, attack.WeaponAttackBonus(mustWeapon(s.T(), "longsword"), archer), "melee gets no archery bonus")
}

func (s *ResolverTestSuite) TestRangedAttackAdjacentHasDisadvantage() {
	archer := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.MainHand = mustWeapon(s.T(), "longbow")
	})
	s.roller.SetRolls([]int{18, 6})

	res, err := s.resolver.ResolveAttack(archer.MainHand, archer, s.goblin, attack.Options{Distance: 5})
	s.Require().NoError(err)

	s.Equal(dice.ModeDisadvantage, res.Mode)
	s.Equal(6, res.Natural)
	s.False(res.Hit)
}

func (s *ResolverTestSuite) TestRangedAttackWithoutDistanceIsNormal() {
	archer := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.MainHand = mustWeapon(s.T(), "longbow")
	})
	s.roller.SetRolls([]int{18})

	res, err := s.resolver.ResolveAttack(archer.MainHand, archer, s.goblin, attack.Options{})
	s.Require().NoError(err)

	s.Equal(dice.ModeNormal, res.Mode)
	s.Equal(18, res.Natural)
	s.True(res.Hit)
}

func (s *ResolverTestSuite) TestFinesseUsesBetterAbility() {
	rogue := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.Abilities = cfg.Abilities.With(shared.AttributeDexterity, 18)
		cfg.MainHand = mustWeapon(s.T(), "rapier")
	})
	s.Equal(shared.AttributeDexterity, attack.WeaponAbility(rogue.MainHand, rogue))
	s.Equal(shared.AttributeStrength, attack.WeaponAbility(mustWeapon(s.T(), "mace"), rogue))
}

func (s *ResolverTestSuite) TestReach() {
	s.roller.SetRolls([]int{15})
	_, err := s.resolver.ResolveAttack(s.fighter.MainHand, s.fighter, s.goblin, attack.Options{Distance: 10})
	s.True(errors.IsInvalidAction(err))

	glaive := mustWeapon(s.T(), "greataxe")
	glaive.Key, glaive.Name = "glaive", "Glaive"
	glaive.Properties = append(glaive.Properties, equipment.PropertyReach)

	res, err := s.resolver.ResolveAttack(glaive, s.fighter, s.goblin, attack.Options{Distance: 10})
	s.Require().NoError(err)
	s.True(res.Hit)
}

func (s *ResolverTestSuite) TestInvalidActions() {
	stunned := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.Conditions = []conditions.Condition{{Type: conditions.Stunned}}
	})
	dead := s.fighter.Clone()
	dead.Dead = true

	tests := []struct {
		name     string
		weapon   *equipment.Weapon
		attacker *participant.Participant
		target   *participant.Participant
		opts     attack.Options
	}{
		{name: "no weapon", attacker: s.fighter, target: s.goblin},
		{name: "shield is not a weapon", weapon: mustWeapon(s.T(), "shield"), attacker: s.fighter, target: s.goblin},
		{name: "attacking itself", weapon: s.fighter.MainHand, attacker: s.fighter, target: s.fighter},
		{name: "incapacitated attacker", weapon: stunned.MainHand, attacker: stunned, target: s.goblin},
		{name: "dead attacker", weapon: dead.MainHand, attacker: dead, target: s.goblin},
		{name: "missing target", weapon: s.fighter.MainHand, attacker: s.fighter},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.resolver.PerformAttack(tt.weapon, tt.attacker, tt.target, tt.opts)
			s.True(errors.IsInvalidAction(err), "got %v", err)
		})
	}
}

func (s *ResolverTestSuite) TestTwoHandedWithOffHandFull() {
	fighter := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.OffHand = mustWeapon(s.T(), "shield")
	})
	_, err := s.resolver.ResolveAttack(fighter.MainHand, fighter, s.goblin, attack.Options{TwoHanded: true})
	s.True(errors.IsInvalidAction(err))
}

func (s *ResolverTestSuite) TestKillingBlowOnMonster() {
	weak := newGoblin(s.T(), 5, 10)
	s.roller.SetRolls([]int{15, 8})

	result, err := s.resolver.PerformAttack(s.fighter.MainHand, s.fighter, weak, attack.Options{})
	s.Require().NoError(err)

	s.True(result.Damage.Outcome.Downed)
	s.Equal(5, result.TotalDamageDealt, "only the hit points it had")
	s.True(result.Delta.Died)
	s.True(result.TargetAfter.Dead)
}

func (s *ResolverTestSuite) TestDroppingCharacterAddsUnconscious() {
	victim := newFighter(s.T(), func(cfg *participant.Config) {
		cfg.ID, cfg.Name = "bram", "Bram"
		cfg.HP = &shared.HitPoints{Current: 4, Max: 44}
	})
	s.roller.SetRolls([]int{19, 8})

	result, err := s.resolver.PerformAttack(s.fighter.MainHand, s.fighter, victim, attack.Options{})
	s.Require().NoError(err)

	s.False(result.TargetAfter.Dead)
	s.True(result.TargetAfter.Conditions.Has(conditions.Unconscious))
	s.True(result.TargetAfter.Conditions.Has(conditions.Prone))
}

func (s *ResolverTestSuite) TestResistanceHalvesDamage() {
	skeleton := newGoblin(s.T(), 30, 10)
	skeleton.Defenses = damage.Defenses{Resistances: []damage.Type{damage.TypeSlashing}}
	s.roller.SetRolls([]int{15, 6})

	result, err := s.resolver.PerformAttack(s.fighter.MainHand, s.fighter, skeleton, attack.Options{})
	s.Require().NoError(err)

	s.Equal(9, result.Damage.Raw)
	s.Equal(4, result.Damage.Outcome.Final)
	s.Equal(26, result.TargetReducedHP)
}

func (s *ResolverTestSuite) TestSpellAttackAddsNoModifier() {
	wizard, err := participant.New(&participant.Config{
		ID:        "mira",
		Name:      "Mira",
		Abilities: participant.DefaultAbilityScores.With(shared.AttributeIntelligence, 16),
		Classes:   []rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 5}},
	})
	s.Require().NoError(err)
	fireBolt, err := spells.Lookup("fire-bolt")
	s.Require().NoError(err)

	s.roller.SetRolls([]int{10, 3, 4})

	result, err := s.resolver.PerformSpellAttack(fireBolt, 0, wizard, s.goblin, attack.Options{Distance: 60})
	s.Require().NoError(err)

	s.Equal(6, result.Resolution.AttackBonus, "proficiency 3 + INT 3")
	s.True(result.Resolution.Hit)
	s.Equal(2, result.Damage.Dice.Count, "cantrip scales at level 5")
	s.Equal(7, result.Damage.Raw)
	s.Equal(damage.TypeFire, result.Damage.Type)
}

func (s *ResolverTestSuite) TestSpellAttackRequiresCaster() {
	fireBolt, err := spells.Lookup("fire-bolt")
	s.Require().NoError(err)

	_, err = s.resolver.PerformSpellAttack(fireBolt, 0, s.fighter, s.goblin, attack.Options{})
	s.True(errors.IsInvalidAction(err))

	fireball, err := spells.Lookup("fireball")
	s.Require().NoError(err)
	_, err = s.resolver.ResolveSpellAttack(fireball, s.fighter, s.goblin, attack.Options{})
	s.True(errors.IsInvalidAction(err), "save spells are not attacks")
}

func (s *ResolverTestSuite) TestAttackActionMakesExtraAttack() {
	s.roller.SetRolls([]int{15, 4, 16, 6})

	result, err := s.resolver.PerformAttackAction(s.fighter, s.goblin, attack.Options{ActionID: "act-2"})
	s.Require().NoError(err)

	s.Len(result.Attacks, 2, "fighter 5 attacks twice")
	s.Equal(16, result.TotalDamageDealt)
	s.Equal(14, result.TargetAfter.HP.Current)
	s.Equal("act-2", result.TargetDelta.ActionID)
	s.Equal(30, result.TargetDelta.HPBefore.Current)
	s.Equal(14, result.TargetDelta.HPAfter.Current)
	s.True(result.TargetAfter.HasApplied("act-2"))
	s.True(result.AttackerDelta.ActionConsumed)
	s.Equal(s.fighter.ID, result.AttackerDelta.ParticipantID)
}

func (s *ResolverTestSuite) TestAttackActionStopsWhenTargetDrops() {
	weak := newGoblin(s.T(), 6, 10)
	s.roller.SetRolls([]int{15, 8})

	result, err := s.resolver.PerformAttackAction(s.fighter, weak, attack.Options{ActionID: "act-3"})
	s.Require().NoError(err)

	s.Len(result.Attacks, 1)
	s.True(result.TargetDelta.Died)
	s.True(result.TargetAfter.Dead)
}

func (s *ResolverTestSuite) TestAttackActionNeedsAction() {
	spent := s.fighter.Clone()
	spent.Economy.ActionUsed = true

	_, err := s.resolver.PerformAttackAction(spent, s.goblin, attack.Options{})
	s.True(errors.IsInvalidAction(err))
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func TestNewResolver_RequiresRoller(t *testing.T) {
	_, err := attack.NewResolver(nil)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = attack.NewResolver(&attack.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPerformAttack_UsesRollerContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	roller := mockdice.NewMockRoller(ctrl)

	gomock.InOrder(
		roller.EXPECT().Roll(1, 20, 6).Return(dice.NewResult(1, 20, 6, dice.ModeNormal, []int{11}), nil),
		roller.EXPECT().Roll(1, 8, 0).Return(dice.NewResult(1, 8, 0, dice.ModeNormal, []int{5}), nil),
	)

	resolver, err := attack.NewResolver(&attack.Config{Roller: roller})
	require.NoError(t, err)

	fighter := newFighter(t, nil)
	result, err := resolver.PerformAttack(fighter.MainHand, fighter, newGoblin(t, 30, 15), attack.Options{})
	require.NoError(t, err)
	assert.Equal(t, 8, result.Damage.Raw)
}

func TestWeaponDamage_OffHand(t *testing.T) {
	tests := []struct {
		name      string
		strength  int
		styles    []rulebook.FightingStyle
		wantBonus int
	}{
		{name: "positive modifier dropped", strength: 16},
		{name: "two weapon fighting adds it", strength: 16, styles: []rulebook.FightingStyle{rulebook.StyleTwoWeaponFighting}, wantBonus: 3},
		{name: "negative modifier dropped", strength: 8},
		{name: "two weapon fighting adds a negative one", strength: 8, styles: []rulebook.FightingStyle{rulebook.StyleTwoWeaponFighting}, wantBonus: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newFighter(t, func(cfg *participant.Config) {
				cfg.Abilities = cfg.Abilities.With(shared.AttributeStrength, tt.strength)
				cfg.Abilities = cfg.Abilities.With(shared.AttributeDexterity, 8)
				cfg.MainHand = mustWeapon(t, "handaxe")
				cfg.OffHand = mustWeapon(t, "handaxe")
				cfg.FightingStyles = tt.styles
			})
			spec := attack.WeaponDamage(p.OffHand, p, attack.OffHand, attack.Options{})
			assert.Equal(t, tt.wantBonus, spec.Bonus)
		})
	}
}

func TestWeaponDamage_MainHandDuelingNeedsFreeOffHand(t *testing.T) {
	p := newFighter(t, func(cfg *participant.Config) {
		cfg.MainHand = mustWeapon(t, "shortsword")
		cfg.OffHand = mustWeapon(t, "dagger")
		cfg.FightingStyles = []rulebook.FightingStyle{rulebook.StyleDueling}
	})
	spec := attack.WeaponDamage(p.MainHand, p, attack.MainHand, attack.Options{})
	assert.Equal(t, 3, spec.Bonus)

	withShield := newFighter(t, func(cfg *participant.Config) {
		cfg.OffHand = mustWeapon(t, "shield")
		cfg.FightingStyles = []rulebook.FightingStyle{rulebook.StyleDueling}
	})
	spec = attack.WeaponDamage(withShield.MainHand, withShield, attack.MainHand, attack.Options{})
	assert.Equal(t, 5, spec.Bonus, "a shield does not stop dueling")
}
