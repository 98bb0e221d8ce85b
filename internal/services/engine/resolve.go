package engine

import (
	"context"
	"log"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/actionlog"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/action"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/attack"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/checks"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/spellcasting"
)

// Outcome is everything one resolved request produced. Actor and Target are
// the participants with the deltas applied; the orchestrator persists them
// or applies the deltas to its own copies.
type Outcome struct {
	Request       *action.Request                  `json:"request"`
	ActionID      string                           `json:"action_id"`
	Replayed      bool                             `json:"replayed,omitempty"`
	Attacks       []*attack.FullAttackResult       `json:"attacks,omitempty"`
	Cast          *spellcasting.CastResult         `json:"cast,omitempty"`
	SpellEffect   *spellcasting.SaveResult         `json:"spell_effect,omitempty"`
	Check         *checks.Result                   `json:"check,omitempty"`
	Concentration *spellcasting.ConcentrationCheck `json:"concentration,omitempty"`
	DamageDealt   int                              `json:"damage_dealt"`
	Actor         *participant.Participant         `json:"actor"`
	Target        *participant.Participant         `json:"target,omitempty"`
	ActorDelta    *action.Delta                    `json:"actor_delta,omitempty"`
	TargetDelta   *action.Delta                    `json:"target_delta,omitempty"`
	Entries       []*actionlog.Entry               `json:"entries,omitempty"`
}

// Deltas lists the non-nil deltas in commit order
func (o *Outcome) Deltas() []*action.Delta {
	var out []*action.Delta
	for _, d := range []*action.Delta{o.ActorDelta, o.TargetDelta} {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}

// Resolve validates the request, fills in a missing id and runs the action.
// A request whose id the actor has already applied is reported as replayed
// without rolling anything. Damage to a concentrating target is followed by
// its concentration save, folded into the target delta.
func (s *service) Resolve(ctx context.Context, req *action.Request, actor, target *participant.Participant, catalog Catalog) (*Outcome, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := checkParticipants(req, actor, target); err != nil {
		return nil, err
	}
	if catalog == nil {
		catalog = s.catalog
	}

	r := *req
	if r.ID == "" {
		r.ID = s.ids.New()
	}

	out := &Outcome{Request: &r, ActionID: r.ID, Actor: actor.Clone()}
	if target != nil {
		out.Target = target.Clone()
	}
	if actor.HasApplied(r.ID) {
		log.Printf("[ENGINE] Action %s already applied to %s, skipping", r.ID, actor.ID)
		out.Replayed = true
		return out, nil
	}

	var err error
	switch r.Type {
	case action.TypeAttack:
		err = s.resolveAttack(&r, actor, target, catalog, out)
	case action.TypeOffHandAttack:
		err = s.resolveOffHand(&r, actor, target, out)
	case action.TypeCastSpell:
		err = s.resolveCast(&r, actor, target, catalog, out)
	case action.TypeSave:
		err = s.resolveSave(&r, actor, out)
	case action.TypeSkillCheck:
		err = s.resolveSkillCheck(&r, actor, out)
	default:
		err = errors.InvalidActionf("unknown action type %q", r.Type)
	}
	if err != nil {
		return nil, err
	}

	if target != nil && out.TargetDelta != nil {
		if err := s.followConcentration(target, out); err != nil {
			return nil, err
		}
	}

	s.publish(ctx, out, actor, target)
	return out, nil
}

func checkParticipants(req *action.Request, actor, target *participant.Participant) error {
	if actor == nil {
		return errors.InvalidAction("actor is required")
	}
	if actor.ID != req.ActorID {
		return errors.InvalidActionf("request is for %s, not %s", req.ActorID, actor.ID).
			WithMeta("participant_id", actor.ID)
	}
	if req.TargetID == "" {
		return nil
	}
	if target == nil || target.ID != req.TargetID {
		return errors.InvalidActionf("target %s was not supplied", req.TargetID).
			WithMeta("participant_id", actor.ID)
	}
	if target.ID == actor.ID {
		return errors.InvalidActionf("%s cannot target themselves with %s", actor.Name, req.Type).
			WithMeta("participant_id", actor.ID)
	}
	return nil
}

func attackOptions(r *action.Request) attack.Options {
	return attack.Options{ActionID: r.ID, Override: r.Roll, Distance: r.Distance}
}

func (s *service) resolveAttack(r *action.Request, actor, target *participant.Participant, catalog Catalog, out *Outcome) error {
	wielder := actor
	if r.WeaponKey != "" && (actor.MainHand == nil || actor.MainHand.Key != r.WeaponKey) {
		w, err := catalog.Weapon(r.WeaponKey)
		if err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidAction, "unknown weapon")
		}
		wielder = actor.Clone()
		wielder.MainHand = w
	}

	result, err := s.attacks.PerformAttackAction(wielder, target, attackOptions(r))
	if err != nil {
		return err
	}

	out.Attacks = result.Attacks
	out.DamageDealt = result.TotalDamageDealt
	out.Target = result.TargetAfter
	out.TargetDelta = result.TargetDelta
	for _, a := range result.Attacks {
		out.Entries = append(out.Entries, actionlog.FromFullAttack(r.ID, actor, target, a))
	}
	return s.commitActor(actor, result.AttackerDelta, out)
}

func (s *service) resolveOffHand(r *action.Request, actor, target *participant.Participant, out *Outcome) error {
	result, err := s.twoWeapon.PerformOffHand(actor, target, attackOptions(r))
	if err != nil {
		return err
	}

	out.Attacks = result.Attacks()
	out.DamageDealt = result.TotalDamageDealt
	out.Target = result.TargetAfter
	out.TargetDelta = result.TargetDelta
	for _, a := range out.Attacks {
		out.Entries = append(out.Entries, actionlog.FromFullAttack(r.ID, actor, target, a))
	}
	return s.commitActor(actor, result.AttackerDelta, out)
}

func (s *service) resolveCast(r *action.Request, actor, target *participant.Participant, catalog Catalog, out *Outcome) error {
	spell, err := catalog.Spell(r.SpellKey)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidAction, "unknown spell")
	}

	cast, err := s.spellcasting.CastSpell(actor.Economy, actor, spell, r.SlotLevel,
		spellcasting.CastOptions{ActionID: r.ID, UsePact: r.UsePact})
	if err != nil {
		return err
	}
	out.Cast = cast
	out.Actor = cast.Participant
	out.ActorDelta = cast.Delta
	out.Entries = append(out.Entries, actionlog.FromCast(r.ID, actor, cast))

	if target == nil {
		return nil
	}

	switch {
	case spell.IsAttack():
		result, err := s.attacks.PerformSpellAttack(spell, cast.SlotLevel, actor, target, attackOptions(r))
		if err != nil {
			return err
		}
		out.Attacks = []*attack.FullAttackResult{result}
		out.DamageDealt = result.TotalDamageDealt
		out.Target = result.TargetAfter
		out.TargetDelta = result.Delta
		out.Entries = append(out.Entries, actionlog.FromFullAttack(r.ID, actor, target, result))

	case spell.Save != nil:
		result, err := s.spellcasting.ResolveSpellSave(spell, cast.SlotLevel, actor, target, r.ID, checks.Options{})
		if err != nil {
			return err
		}
		s.recordSpellEffect(r.ID, actor, target, spell.Name, result, out)

	case spell.Damage != nil:
		result, err := s.spellcasting.ResolveSpellDamage(spell, cast.SlotLevel, actor, target, r.ID)
		if err != nil {
			return err
		}
		s.recordSpellEffect(r.ID, actor, target, spell.Name, result, out)
	}
	return nil
}

func (s *service) recordSpellEffect(actionID string, caster, target *participant.Participant, spellName string, result *spellcasting.SaveResult, out *Outcome) {
	out.SpellEffect = result
	out.Target = result.TargetAfter
	out.TargetDelta = result.Delta
	if result.Damage != nil {
		out.DamageDealt = result.Damage.Dealt
	}
	if result.Save != nil {
		out.Entries = append(out.Entries, actionlog.FromSpellSave(actionID, caster, target, spellName, result))
		return
	}
	out.Entries = append(out.Entries, actionlog.FromSpellDamage(actionID, caster, target, spellName, result))
}

func (s *service) resolveSave(r *action.Request, actor *participant.Participant, out *Outcome) error {
	result, err := checks.Save(s.roller, actor, r.Ability, r.DC, checks.Options{Override: r.Roll})
	if err != nil {
		return err
	}
	out.Check = result
	out.Entries = append(out.Entries, actionlog.FromSave(r.ID, actor, result))
	return nil
}

func (s *service) resolveSkillCheck(r *action.Request, actor *participant.Participant, out *Outcome) error {
	result, err := checks.Skill(s.roller, actor, r.Skill, r.DC, checks.Options{Override: r.Roll})
	if err != nil {
		return err
	}
	out.Check = result
	out.Entries = append(out.Entries, actionlog.FromSkillCheck(r.ID, actor, result))
	return nil
}

func (s *service) commitActor(actor *participant.Participant, d *action.Delta, out *Outcome) error {
	after, _, err := action.Apply(actor, d)
	if err != nil {
		return err
	}
	out.Actor = after
	out.ActorDelta = d
	return nil
}

// damageInstances lists the damage the target took, one entry per hit
func damageInstances(out *Outcome) []int {
	var amounts []int
	for _, a := range out.Attacks {
		if a.TotalDamageDealt > 0 {
			amounts = append(amounts, a.TotalDamageDealt)
		}
	}
	if out.SpellEffect != nil && out.SpellEffect.Damage != nil && out.SpellEffect.Damage.Dealt > 0 {
		amounts = append(amounts, out.SpellEffect.Damage.Dealt)
	}
	return amounts
}

// followConcentration rolls a concentration save per damage instance while
// the target keeps concentrating and folds a drop into the target delta
func (s *service) followConcentration(target *participant.Participant, out *Outcome) error {
	if !target.IsConcentrating() || out.Target.Dead {
		return nil
	}

	current := out.Target
	for _, amount := range damageInstances(out) {
		check, err := s.spellcasting.CheckConcentration(current, amount, checks.Options{})
		if err != nil {
			return err
		}
		out.Concentration = check
		current = check.Participant
		out.Entries = append(out.Entries, actionlog.FromConcentration(out.ActionID, target, s.spellName(check.Spell), check))
		if !check.Maintained {
			break
		}
	}

	if out.Concentration == nil || out.Concentration.Maintained {
		return nil
	}

	d := *out.TargetDelta
	d.ConcentrationDropped = true
	after, _, err := action.Apply(target, &d)
	if err != nil {
		return err
	}
	out.Target = after
	out.TargetDelta = &d
	return nil
}

func (s *service) spellName(key string) string {
	if spell, err := s.catalog.Spell(key); err == nil {
		return spell.Name
	}
	return ""
}

func (s *service) publish(ctx context.Context, out *Outcome, actor, target *participant.Participant) {
	if s.publisher == nil {
		return
	}
	for _, entry := range out.Entries {
		if err := s.publisher.Publish(ctx, entry, entityFor(entry.ActorID, actor, target), entityFor(entry.TargetID, actor, target)); err != nil {
			log.Printf("[ENGINE] Failed to publish %s for action %s: %v", entry.Type, out.ActionID, err)
		}
	}
}

// entityFor returns the participant with the id as a core.Entity, or a nil
// interface when none matches
func entityFor(id string, candidates ...*participant.Participant) core.Entity {
	if id == "" {
		return nil
	}
	for _, p := range candidates {
		if p != nil && p.ID == id {
			return p
		}
	}
	return nil
}
