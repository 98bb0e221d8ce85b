package rulebook

import (
	"strings"

	"github.com/Garblesnarff/infinite-realms-production-sub010/internal/errors"
)

// Feat is a closed set of feats the combat rules know about
type Feat string

const (
	FeatAlert             Feat = "alert"
	FeatGreatWeaponMaster Feat = "great_weapon_master"
	FeatLucky             Feat = "lucky"
	FeatSharpshooter      Feat = "sharpshooter"
	FeatTough             Feat = "tough"
	// FeatWarCaster grants advantage on saves to maintain concentration
	FeatWarCaster Feat = "war_caster"
)

var featNames = map[Feat]string{
	FeatAlert:             "Alert",
	FeatGreatWeaponMaster: "Great Weapon Master",
	FeatLucky:             "Lucky",
	FeatSharpshooter:      "Sharpshooter",
	FeatTough:             "Tough",
	FeatWarCaster:         "War Caster",
}

func (f Feat) Valid() bool {
	_, ok := featNames[f]
	return ok
}

func (f Feat) Name() string {
	return featNames[f]
}

// ParseFeat converts a key to a feat
func ParseFeat(s string) (Feat, error) {
	f := Feat(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", errors.InvalidArgumentf("unknown feat %q", s)
	}
	return f, nil
}
