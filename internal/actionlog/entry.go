// Package actionlog turns resolved actions into readable combat log entries
// and optionally publishes them on an rpg-toolkit event bus.
package actionlog

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/dice"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/attack"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/checks"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/hazards"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/rules/spellcasting"
)

// Type says what kind of action an entry records
type Type string

const (
	TypeAttack        Type = "attack"
	TypeCastSpell     Type = "cast_spell"
	TypeSpellSave     Type = "spell_save"
	TypeSpellDamage   Type = "spell_damage"
	TypeConcentration Type = "concentration"
	TypeSave          Type = "save"
	TypeSkillCheck    Type = "skill_check"
	TypeHazard        Type = "hazard"
	TypeDetection     Type = "detection"
)

// Entry is one line of the combat log
type Entry struct {
	ActionID   string             `json:"action_id"`
	Type       Type               `json:"type"`
	ActorID    string             `json:"actor_id"`
	ActorName  string             `json:"actor_name"`
	TargetID   string             `json:"target_id,omitempty"`
	TargetName string             `json:"target_name,omitempty"`
	Summary    string             `json:"summary"`
	Details    map[string]any     `json:"details,omitempty"`
	Rolls      []*dice.RollResult `json:"rolls,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}

// Now is the clock used to stamp entries
var Now = func() time.Time {
	return time.Now().UTC()
}

var titler = cases.Title(language.English)

// DisplayName title-cases a key such as "spiked-pit" or "sleight_of_hand"
func DisplayName(key string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(key)
	return titler.String(strings.TrimSpace(words))
}

func newEntry(actionID string, t Type, actor, target *participant.Participant) *Entry {
	e := &Entry{
		ActionID:  actionID,
		Type:      t,
		Details:   map[string]any{},
		Timestamp: Now(),
	}
	if actor != nil {
		e.ActorID = actor.ID
		e.ActorName = actor.Name
	}
	if target != nil {
		e.TargetID = target.ID
		e.TargetName = target.Name
	}
	return e
}

func (e *Entry) addRoll(r *dice.RollResult) {
	if r != nil {
		e.Rolls = append(e.Rolls, r)
	}
}

// FromAttack logs the to-hit half of an attack
func FromAttack(actionID string, attacker, target *participant.Participant, res *attack.Resolution) *Entry {
	e := newEntry(actionID, TypeAttack, attacker, target)
	if res == nil {
		return e
	}
	e.addRoll(res.Roll)
	describeResolution(e, res)

	verb := "misses"
	if res.Hit {
		verb = "hits"
	}
	e.Summary = fmt.Sprintf("%s %s %s with %s (%d vs AC %d)", e.ActorName, verb, e.TargetName, res.SourceName, res.Total, res.TargetAC)
	return e
}

// FromFullAttack logs an attack with its damage, e.g.
// "Aria hits Goblin with Longsword for 7 slashing damage (critical hit!)"
func FromFullAttack(actionID string, attacker, target *participant.Participant, result *attack.FullAttackResult) *Entry {
	e := newEntry(actionID, TypeAttack, attacker, target)
	if result == nil || result.Resolution == nil {
		return e
	}
	res := result.Resolution
	e.addRoll(res.Roll)
	describeResolution(e, res)

	if !res.Hit || result.Damage == nil {
		e.Summary = fmt.Sprintf("%s misses %s with %s", e.ActorName, e.TargetName, res.SourceName)
		if res.Fumble {
			e.Summary += " (natural 1)"
		}
		return e
	}

	dmg := result.Damage
	e.addRoll(dmg.Dice)
	e.Details["damage"] = dmg.Outcome.Final
	e.Details["damage_dealt"] = result.TotalDamageDealt
	e.Details["damage_type"] = DisplayName(string(dmg.Type))
	if len(dmg.Rerolls) > 0 {
		e.Details["rerolls"] = dmg.Rerolls
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s hits %s with %s for %d %s damage", e.ActorName, e.TargetName, res.SourceName, dmg.Outcome.Final, dmg.Type)
	if res.Critical {
		b.WriteString(" (critical hit!)")
	}
	if result.TargetAfter != nil {
		switch {
		case result.TargetAfter.Dead:
			fmt.Fprintf(&b, ". %s is slain", e.TargetName)
		case dmg.Outcome.Downed:
			fmt.Fprintf(&b, ". %s falls %s", e.TargetName, DisplayName(string(conditions.Unconscious)))
		}
	}
	e.Summary = b.String()
	return e
}

func describeResolution(e *Entry, res *attack.Resolution) {
	e.Details["weapon"] = res.SourceName
	e.Details["attack_bonus"] = res.AttackBonus
	e.Details["total"] = res.Total
	e.Details["target_ac"] = res.TargetAC
	e.Details["hit"] = res.Hit
	if res.Mode != dice.ModeNormal {
		e.Details["mode"] = res.Mode.String()
	}
	if res.Critical {
		e.Details["critical"] = true
	}
}

// FromCast logs a spell being cast and the slot it used
func FromCast(actionID string, caster *participant.Participant, result *spellcasting.CastResult) *Entry {
	e := newEntry(actionID, TypeCastSpell, caster, nil)
	if result == nil || result.Spell == nil {
		return e
	}
	e.Details["spell"] = result.Spell.Key
	e.Details["slot_level"] = result.SlotLevel

	var b strings.Builder
	fmt.Fprintf(&b, "%s casts %s", e.ActorName, result.Spell.Name)
	if result.SlotLevel > 0 {
		kind := "slot"
		if result.Delta != nil && result.Delta.SlotConsumed != nil && result.Delta.SlotConsumed.Pact {
			kind = "pact slot"
			e.Details["pact"] = true
		}
		fmt.Fprintf(&b, " using a level %d %s", result.SlotLevel, kind)
	}
	if result.Spell.Concentration {
		e.Details["concentration"] = true
	}
	e.Summary = b.String()
	return e
}

// FromSpellSave logs one target's save against a spell
func FromSpellSave(actionID string, caster, target *participant.Participant, spellName string, result *spellcasting.SaveResult) *Entry {
	e := newEntry(actionID, TypeSpellSave, caster, target)
	if result == nil || result.Save == nil {
		return e
	}
	e.addRoll(result.Save.Roll)
	e.addRoll(result.DamageRoll)
	e.Details["spell"] = result.SpellKey
	e.Details["dc"] = result.DC
	e.Details["saved"] = result.Save.Success

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s saving throw against %s", e.TargetName, succeeds(result.Save.Success),
		withArticle(result.Save.Ability.Name()), spellName)
	if result.Damage != nil {
		e.Details["damage"] = result.Damage.Final
		fmt.Fprintf(&b, " and takes %d %s damage", result.Damage.Final, result.Damage.Type)
	}
	if names := conditionNames(result.Conditions); names != "" {
		fmt.Fprintf(&b, ", becoming %s", names)
	}
	e.Summary = b.String()
	return e
}

// FromSpellDamage logs damage from a spell that always hits
func FromSpellDamage(actionID string, caster, target *participant.Participant, spellName string, result *spellcasting.SaveResult) *Entry {
	e := newEntry(actionID, TypeSpellDamage, caster, target)
	if result == nil {
		return e
	}
	e.addRoll(result.DamageRoll)
	e.Details["spell"] = result.SpellKey

	dealt := 0
	kind := ""
	if result.Damage != nil {
		dealt = result.Damage.Final
		kind = string(result.Damage.Type) + " "
	}
	e.Details["damage"] = dealt
	e.Summary = fmt.Sprintf("%s hits %s with %s for %d %sdamage", e.ActorName, e.TargetName, spellName, dealt, kind)
	return e
}

// FromConcentration logs a concentration save or drop
func FromConcentration(actionID string, p *participant.Participant, spellName string, check *spellcasting.ConcentrationCheck) *Entry {
	e := newEntry(actionID, TypeConcentration, p, nil)
	if check == nil {
		return e
	}
	if spellName == "" {
		spellName = DisplayName(check.Spell)
	}
	e.Details["spell"] = check.Spell
	e.Details["maintained"] = check.Maintained
	if check.DC > 0 {
		e.Details["dc"] = check.DC
	}
	e.addRoll(check.Roll)

	verb := "loses"
	if check.Maintained {
		verb = "maintains"
	}
	e.Summary = fmt.Sprintf("%s %s concentration on %s", e.ActorName, verb, spellName)
	if check.Save != nil {
		e.Summary += fmt.Sprintf(" (%d vs DC %d)", check.Save.Total, check.DC)
	}
	return e
}

// FromSave logs a plain saving throw
func FromSave(actionID string, p *participant.Participant, result *checks.Result) *Entry {
	e := newEntry(actionID, TypeSave, p, nil)
	if result == nil {
		return e
	}
	describeCheck(e, result)
	e.Summary = fmt.Sprintf("%s %s %s saving throw", e.ActorName, succeeds(result.Success), withArticle(result.Ability.Name()))
	if result.AutoFailed {
		e.Summary += " automatically"
		return e
	}
	e.Summary += fmt.Sprintf(" (%d vs DC %d)", result.Total, result.DC)
	return e
}

// FromSkillCheck logs an ability check made with a skill
func FromSkillCheck(actionID string, p *participant.Participant, result *checks.Result) *Entry {
	e := newEntry(actionID, TypeSkillCheck, p, nil)
	if result == nil {
		return e
	}
	describeCheck(e, result)
	e.Details["skill"] = string(result.Skill)
	e.Summary = fmt.Sprintf("%s %s %s check (%d vs DC %d)", e.ActorName, succeeds(result.Success),
		withArticle(DisplayName(string(result.Skill))), result.Total, result.DC)
	return e
}

func describeCheck(e *Entry, result *checks.Result) {
	e.addRoll(result.Roll)
	e.Details["ability"] = result.Ability.Name()
	e.Details["dc"] = result.DC
	e.Details["total"] = result.Total
	e.Details["success"] = result.Success
}

// FromDetection logs a search for a hazard
func FromDetection(actionID string, p *participant.Participant, def *hazards.Definition, result *hazards.Detection) *Entry {
	e := newEntry(actionID, TypeDetection, p, nil)
	if def == nil || result == nil {
		return e
	}
	e.Details["hazard"] = def.Key
	e.Details["detected"] = result.Detected

	verb := "fails to spot"
	if result.Detected {
		verb = "spots"
	}
	e.Summary = fmt.Sprintf("%s %s %s", e.ActorName, verb, hazardName(def))
	if result.Check != nil {
		e.addRoll(result.Check.Roll)
		e.Summary += fmt.Sprintf(" (%s %d vs DC %d)", DisplayName(string(result.Check.Skill)), result.Check.Total, result.Check.DC)
	}
	return e
}

// FromHazard logs a sprung hazard, e.g. "Aria fails a Dexterity saving
// throw against Spiked Pit and takes 12 piercing damage, becoming Prone"
func FromHazard(actionID string, p *participant.Participant, def *hazards.Definition, result *hazards.Interaction) *Entry {
	e := newEntry(actionID, TypeHazard, p, nil)
	if def == nil || result == nil {
		return e
	}
	e.Details["hazard"] = def.Key
	e.Details["saved"] = result.Saved
	e.Details["damage_dealt"] = result.DamageDealt

	var b strings.Builder
	if result.SaveRoll != nil {
		e.addRoll(result.SaveRoll.Roll)
		fmt.Fprintf(&b, "%s %s %s saving throw against %s", e.ActorName, succeeds(result.Saved),
			withArticle(result.SaveRoll.Ability.Name()), hazardName(def))
	} else {
		fmt.Fprintf(&b, "%s is caught by %s", e.ActorName, hazardName(def))
	}
	e.addRoll(result.DamageRolled)

	if result.Damage != nil && result.Damage.Final > 0 {
		fmt.Fprintf(&b, " and takes %d %s damage", result.Damage.Final, result.Damage.Type)
	}
	if names := conditionNames(result.ConditionsApplied); names != "" {
		fmt.Fprintf(&b, ", becoming %s", names)
	}
	if result.Exhaustion > 0 {
		e.Details["exhaustion"] = result.Exhaustion
		fmt.Fprintf(&b, ", gaining %d level(s) of %s", result.Exhaustion, DisplayName(string(conditions.Exhaustion)))
	}
	if result.Fatal {
		e.Details["fatal"] = true
		fmt.Fprintf(&b, ". %s dies", e.ActorName)
	}
	e.Summary = b.String()
	return e
}

func hazardName(def *hazards.Definition) string {
	if def.Name != "" {
		return def.Name
	}
	return DisplayName(def.Key)
}

func succeeds(ok bool) string {
	if ok {
		return "succeeds on"
	}
	return "fails"
}

func conditionNames(conds []conditions.Condition) string {
	names := make([]string, 0, len(conds))
	for _, c := range conds {
		names = append(names, DisplayName(string(c.Type)))
	}
	return strings.Join(names, " and ")
}

func withArticle(word string) string {
	if word == "" {
		return word
	}
	if strings.ContainsRune("AEIOU", rune(word[0])) {
		return "an " + word
	}
	return "a " + word
}
