package engine

//go:generate mockgen -destination=mock/mock_service.go -package=mockengine -source=service.go

import (
	"context"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/actionlog"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/spells"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/attack"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/checks"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/hazards"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/multiclass"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/spellcasting"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/twoweapon"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/uuid"
)

// Service is the entry point the orchestrator calls once per action
type Service interface {
	// ResolveAttack rolls to hit without rolling damage
	ResolveAttack(w *equipment.Weapon, attacker, target *participant.Participant, opts attack.Options) (*attack.Resolution, error)

	// PerformAttack makes one weapon attack and applies its damage to a copy of the target
	PerformAttack(w *equipment.Weapon, attacker, target *participant.Participant, opts attack.Options) (*attack.FullAttackResult, error)

	// PerformAttackAction makes every attack the Attack action grants
	PerformAttackAction(attacker, target *participant.Participant, opts attack.Options) (*attack.ActionResult, error)

	// PerformTwoWeaponAttack makes the Attack action plus the off hand bonus attack
	PerformTwoWeaponAttack(attacker, target *participant.Participant, opts attack.Options) (*twoweapon.Result, error)

	// CastSpell spends the slot and turn economy a spell needs
	CastSpell(economy shared.ActionEconomy, p *participant.Participant, spell *spells.Spell, slotLevel int) (*spellcasting.CastResult, error)

	// CheckConcentration rolls to keep concentrating after damage
	CheckConcentration(p *participant.Participant, damageTaken int) (bool, *participant.Participant, error)

	// CalculateSpellSlots returns the participant's slot pool with
	// maximums from its class levels
	CalculateSpellSlots(p *participant.Participant) shared.SlotPool

	// DetectHazard searches for a hidden hazard with a skill
	DetectHazard(p *participant.Participant, hazard *hazards.Definition, skill shared.Skill) (*hazards.Detection, error)

	// InteractWithHazard springs a hazard on a participant
	InteractWithHazard(p *participant.Participant, hazard *hazards.Definition) (*hazards.Interaction, error)

	// Resolve dispatches one request on its type
	Resolve(ctx context.Context, req *action.Request, actor, target *participant.Participant, catalog Catalog) (*Outcome, error)
}

// ServiceConfig holds the dependencies of the service
type ServiceConfig struct {
	Roller dice.Roller
	// Publisher receives log entries from Resolve. Optional.
	Publisher *actionlog.Publisher
	// IDGenerator names requests that arrive without an id. Defaults to
	// random UUIDs.
	IDGenerator uuid.Generator
	// Catalog is used when Resolve is given none. Defaults to the
	// built-in catalog.
	Catalog Catalog
}

type service struct {
	roller       dice.Roller
	publisher    *actionlog.Publisher
	ids          uuid.Generator
	catalog      Catalog
	attacks      *attack.Resolver
	twoWeapon    *twoweapon.Sequencer
	spellcasting *spellcasting.Manager
	hazards      *hazards.Resolver
}

// NewService creates the engine service
func NewService(cfg *ServiceConfig) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("service config is required")
	}
	if cfg.Roller == nil {
		return nil, errors.InvalidArgument("dice roller is required")
	}

	attacks, err := attack.NewResolver(&attack.Config{Roller: cfg.Roller})
	if err != nil {
		return nil, err
	}
	twoWeapon, err := twoweapon.NewSequencer(&twoweapon.Config{Attacks: attacks})
	if err != nil {
		return nil, err
	}
	manager, err := spellcasting.NewManager(&spellcasting.Config{Roller: cfg.Roller})
	if err != nil {
		return nil, err
	}
	hazardResolver, err := hazards.NewResolver(&hazards.Config{Roller: cfg.Roller})
	if err != nil {
		return nil, err
	}

	svc := &service{
		roller:       cfg.Roller,
		publisher:    cfg.Publisher,
		ids:          cfg.IDGenerator,
		catalog:      cfg.Catalog,
		attacks:      attacks,
		twoWeapon:    twoWeapon,
		spellcasting: manager,
		hazards:      hazardResolver,
	}
	if svc.ids == nil {
		svc.ids = uuid.NewGoogleUUIDGenerator()
	}
	if svc.catalog == nil {
		catalog, err := DefaultCatalog()
		if err != nil {
			return nil, errors.Wrap(err, "failed to load built-in catalog")
		}
		svc.catalog = catalog
	}

	return svc, nil
}

func (s *service) ResolveAttack(w *equipment.Weapon, attacker, target *participant.Participant, opts attack.Options) (*attack.Resolution, error) {
	return s.attacks.ResolveAttack(w, attacker, target, opts)
}

func (s *service) PerformAttack(w *equipment.Weapon, attacker, target *participant.Participant, opts attack.Options) (*attack.FullAttackResult, error) {
	return s.attacks.PerformAttack(w, attacker, target, opts)
}

func (s *service) PerformAttackAction(attacker, target *participant.Participant, opts attack.Options) (*attack.ActionResult, error) {
	return s.attacks.PerformAttackAction(attacker, target, opts)
}

func (s *service) PerformTwoWeaponAttack(attacker, target *participant.Participant, opts attack.Options) (*twoweapon.Result, error) {
	return s.twoWeapon.Perform(attacker, target, opts)
}

func (s *service) CastSpell(economy shared.ActionEconomy, p *participant.Participant, spell *spells.Spell, slotLevel int) (*spellcasting.CastResult, error) {
	return s.spellcasting.CastSpell(economy, p, spell, slotLevel, spellcasting.CastOptions{ActionID: s.ids.New()})
}

func (s *service) CheckConcentration(p *participant.Participant, damageTaken int) (bool, *participant.Participant, error) {
	check, err := s.spellcasting.CheckConcentration(p, damageTaken, checks.Options{})
	if err != nil {
		return false, nil, err
	}
	return check.Maintained, check.Participant, nil
}

func (s *service) CalculateSpellSlots(p *participant.Participant) shared.SlotPool {
	if p == nil {
		return shared.SlotPool{}
	}
	return multiclass.CalculateSpellSlots(p.Classes, p.SpellSlots)
}

func (s *service) DetectHazard(p *participant.Participant, hazard *hazards.Definition, skill shared.Skill) (*hazards.Detection, error) {
	return s.hazards.Detect(p, hazard, skill, checks.Options{})
}

func (s *service) InteractWithHazard(p *participant.Participant, hazard *hazards.Definition) (*hazards.Interaction, error) {
	return s.hazards.Interact(p, hazard, hazards.InteractOptions{ActionID: s.ids.New()})
}
