package aggregate

import (
	"fmt"
	"strings"
)

// Kind names one of the lookup caches.
type Kind string

const (
	KindTrainer Kind = "trainer"
	KindPokemon Kind = "pokemon"
	KindMove    Kind = "move"
	KindSkill   Kind = "skill"
)

// Kinds lists every cache kind in build order.
var Kinds = []Kind{KindTrainer, KindPokemon, KindMove, KindSkill}

// ParseKind accepts a cache kind name, case-insensitively. "passive" is an
// alias of skill.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trainer", "trainers":
		return KindTrainer, nil
	case "pokemon":
		return KindPokemon, nil
	case "move", "moves":
		return KindMove, nil
	case "skill", "skills", "passive", "passives":
		return KindSkill, nil
	default:
		return "", fmt.Errorf("unknown cache kind %q", s)
	}
}
