package action

import (
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/conditions"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/damage"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
)

// DamageOutcome is what one damage instance did to a participant
type DamageOutcome struct {
	damage.Result
	// Dealt counts temporary and real hit points lost
	Dealt  int  `json:"dealt"`
	Downed bool `json:"downed,omitempty"`
}

// ApplyDamage runs a raw amount through the target's defenses and folds it
// into the delta's HPAfter, so several hits in one action accumulate.
// Dropping a character to 0 adds unconscious and prone; a monster at 0 dies.
func (d *Delta) ApplyDamage(target *participant.Participant, amount int, t damage.Type) DamageOutcome {
	out := DamageOutcome{Result: damage.Calculate(amount, t, target.Defenses)}

	before := d.HPAfter
	after := before.TakeDamage(out.Final)
	d.HPAfter = after
	out.Dealt = (before.Current + before.Temporary) - (after.Current + after.Temporary)

	if before.Current > 0 && after.Current == 0 {
		out.Downed = true
		if target.IsMonster() {
			d.Died = true
		} else {
			d.addConditionOnce(conditions.Condition{Type: conditions.Unconscious})
			d.addConditionOnce(conditions.Condition{Type: conditions.Prone})
		}
	}

	return out
}

func (d *Delta) addConditionOnce(c conditions.Condition) {
	for _, existing := range d.ConditionsAdded {
		if existing.Type == c.Type {
			return
		}
	}
	d.ConditionsAdded = append(d.ConditionsAdded, c)
}
