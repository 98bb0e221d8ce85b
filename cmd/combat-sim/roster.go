package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/equipment"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/participant"
	rulebook "github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/rulebook/dnd5e"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/domain/shared"
	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

type rosterEntry struct {
	name  string
	build func(id, name string) (*participant.Participant, error)
}

// roster is keyed by the id prefix; "goblin-3" is a third goblin
var roster = map[string]rosterEntry{
	"fighter": {name: "Aria", build: fighter},
	"duelist": {name: "Vex", build: duelist},
	"wizard":  {name: "Mira", build: wizard},
	"cleric":  {name: "Bram", build: cleric},
	"warlock": {name: "Kael", build: warlock},
	"goblin":  {name: "Goblin", build: monster(goblinTemplate)},
	"ogre":    {name: "Ogre", build: monster(ogreTemplate)},
}

func rosterKeys() []string {
	keys := make([]string, 0, len(roster))
	for k := range roster {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// monsterKey strips a trailing instance number: "goblin-3" is "goblin"
func monsterKey(id string) string {
	key, _ := splitID(id)
	return key
}

func splitID(id string) (string, int) {
	i := strings.LastIndex(id, "-")
	if i <= 0 {
		return id, 0
	}
	n, err := strconv.Atoi(id[i+1:])
	if err != nil || n < 1 {
		return id, 0
	}
	return id[:i], n
}

// buildRoster creates the participant an id names
func buildRoster(id string) (*participant.Participant, error) {
	key, n := splitID(id)
	entry, ok := roster[key]
	if !ok {
		return nil, errors.NotFoundf("no roster entry for %q (known: %s)", id, strings.Join(rosterKeys(), ", ")).
			WithMeta("participant_id", id)
	}
	name := entry.name
	if n > 0 {
		name += " " + strconv.Itoa(n)
	}
	return entry.build(id, name)
}

func weapons(keys ...string) ([]*equipment.Weapon, error) {
	out := make([]*equipment.Weapon, len(keys))
	for i, k := range keys {
		w, err := equipment.Lookup(k)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func fighter(id, name string) (*participant.Participant, error) {
	w, err := weapons("longsword")
	if err != nil {
		return nil, err
	}
	return participant.New(&participant.Config{
		ID:   id,
		Name: name,
		Abilities: shared.AbilityScores{
			Strength: 16, Dexterity: 12, Constitution: 14, Intelligence: 10, Wisdom: 10, Charisma: 8,
		},
		Classes:        []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 5}},
		FightingStyles: []rulebook.FightingStyle{rulebook.StyleDueling},
		ArmorClass:     18,
		MainHand:       w[0],
	})
}

func duelist(id, name string) (*participant.Participant, error) {
	w, err := weapons("shortsword", "scimitar")
	if err != nil {
		return nil, err
	}
	return participant.New(&participant.Config{
		ID:   id,
		Name: name,
		Abilities: shared.AbilityScores{
			Strength: 10, Dexterity: 16, Constitution: 14, Intelligence: 12, Wisdom: 10, Charisma: 10,
		},
		Classes:        []rulebook.ClassLevel{{Class: rulebook.ClassFighter, Level: 3}},
		FightingStyles: []rulebook.FightingStyle{rulebook.StyleTwoWeaponFighting},
		ArmorClass:     15,
		MainHand:       w[0],
		OffHand:        w[1],
	})
}

func wizard(id, name string) (*participant.Participant, error) {
	return participant.New(&participant.Config{
		ID:   id,
		Name: name,
		Abilities: shared.AbilityScores{
			Strength: 8, Dexterity: 14, Constitution: 14, Intelligence: 16, Wisdom: 12, Charisma: 10,
		},
		Classes: []rulebook.ClassLevel{{Class: rulebook.ClassWizard, Level: 3}},
	})
}

func warlock(id, name string) (*participant.Participant, error) {
	w, err := weapons("dagger")
	if err != nil {
		return nil, err
	}
	return participant.New(&participant.Config{
		ID:   id,
		Name: name,
		Abilities: shared.AbilityScores{
			Strength: 8, Dexterity: 14, Constitution: 14, Intelligence: 10, Wisdom: 12, Charisma: 16,
		},
		Classes:  []rulebook.ClassLevel{{Class: rulebook.ClassWarlock, Level: 3}},
		MainHand: w[0],
	})
}

func cleric(id, name string) (*participant.Participant, error) {
	w, err := weapons("mace", "shield")
	if err != nil {
		return nil, err
	}
	return participant.New(&participant.Config{
		ID:   id,
		Name: name,
		Abilities: shared.AbilityScores{
			Strength: 14, Dexterity: 10, Constitution: 14, Intelligence: 10, Wisdom: 16, Charisma: 12,
		},
		Classes:    []rulebook.ClassLevel{{Class: rulebook.ClassCleric, Level: 3}},
		ArmorClass: 18,
		MainHand:   w[0],
		OffHand:    w[1],
	})
}

func goblinTemplate() (*participant.Template, error) {
	w, err := weapons("scimitar")
	if err != nil {
		return nil, err
	}
	return &participant.Template{
		Key:                "goblin",
		Name:               "Goblin",
		ArmorClass:         15,
		HitPoints:          7,
		Abilities:          map[shared.Attribute]int{shared.AttributeStrength: 8, shared.AttributeDexterity: 14},
		SkillProficiencies: []shared.Skill{shared.SkillStealth},
		Attacks:            w,
	}, nil
}

func ogreTemplate() (*participant.Template, error) {
	w, err := weapons("greataxe")
	if err != nil {
		return nil, err
	}
	return &participant.Template{
		Key:            "ogre",
		Name:           "Ogre",
		ChallengeLevel: 2,
		ArmorClass:     11,
		HitPoints:      59,
		Abilities: map[shared.Attribute]int{
			shared.AttributeStrength: 19, shared.AttributeDexterity: 8, shared.AttributeConstitution: 16,
			shared.AttributeIntelligence: 5, shared.AttributeWisdom: 7, shared.AttributeCharisma: 7,
		},
		Attacks: w,
	}, nil
}

func monster(template func() (*participant.Template, error)) func(id, name string) (*participant.Participant, error) {
	return func(id, name string) (*participant.Participant, error) {
		t, err := template()
		if err != nil {
			return nil, err
		}
		t.Name = name
		return participant.FromTemplate(t, id)
	}
}
