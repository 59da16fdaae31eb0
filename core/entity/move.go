package entity

import (
	"fmt"
	"math"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Move is one of a pokemon's regular moves.
type Move struct {
	Name     string
	Type     string
	Category string
	MinPower int
	Accuracy int
	Target   string
	// Cost is the gauge cost. Zero means the move has no gauge cost.
	Cost int
	// Uses is the number of uses per battle. Zero means unlimited.
	Uses   int
	Effect string
}

// MaxPower is the fully upgraded power, 1.2 times MinPower rounded half up.
func (m *Move) MaxPower() int {
	return maxPower(m.MinPower)
}

func maxPower(minPower int) int {
	return int(math.Floor(1.2*float64(minPower) + 0.5))
}

type powerJSON struct {
	Min int `json:"min_power"`
	Max int `json:"max_power"`
}

func parsePower(entity string, obj gjson.Result) (int, error) {
	r := obj.Get("power")
	if !present(r) {
		return 0, newParseError(entity, "power", "missing")
	}
	if !r.IsObject() {
		return 0, newParseError(entity, "power", fmt.Sprintf("expected object, got %s", typeName(r)))
	}
	minPower, err := lenientInt(entity, r, "min_power")
	if err != nil {
		return 0, within(err, "power")
	}
	return minPower, nil
}

// ParseMove builds a Move from its JSON value tree.
// A textual cost and a null uses both mean zero.
func ParseMove(r gjson.Result) (*Move, error) {
	const kind = "move"
	if err := objectOf(kind, r); err != nil {
		return nil, err
	}

	m := &Move{}
	var err error
	if m.Name, err = requiredString(kind, r, "name"); err != nil {
		return nil, err
	}
	if m.Type, err = optionalString(kind, r, "type"); err != nil {
		return nil, err
	}
	if m.Category, err = optionalString(kind, r, "category"); err != nil {
		return nil, err
	}
	if m.MinPower, err = parsePower(kind, r); err != nil {
		return nil, err
	}
	if m.Accuracy, err = lenientInt(kind, r, "accuracy"); err != nil {
		return nil, err
	}
	if m.Target, err = optionalString(kind, r, "target"); err != nil {
		return nil, err
	}
	if cost := r.Get("cost"); cost.Type == gjson.Number {
		m.Cost = int(cost.Int())
	}
	if uses := r.Get("uses"); uses.Type == gjson.Number {
		m.Uses = int(uses.Int())
	}
	if m.Effect, err = optionalString(kind, r, "effect"); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseMoveJSON parses a raw JSON move.
func ParseMoveJSON(data []byte) (*Move, error) {
	return parseBytes("move", data, ParseMove)
}

func (m *Move) MarshalJSON() ([]byte, error) {
	var cost any = ""
	if m.Cost != 0 {
		cost = m.Cost
	}
	var uses any
	if m.Uses != 0 {
		uses = m.Uses
	}
	return json.Marshal(struct {
		Name               string    `json:"name"`
		Type               string    `json:"type"`
		Category           string    `json:"category"`
		Power              powerJSON `json:"power"`
		Accuracy           int       `json:"accuracy"`
		Target             string    `json:"target"`
		Cost               any       `json:"cost"`
		Uses               any       `json:"uses"`
		Effect             string    `json:"effect"`
		UnlockRequirements []string  `json:"unlock_requirements"`
	}{
		Name:               m.Name,
		Type:               m.Type,
		Category:           m.Category,
		Power:              powerJSON{Min: m.MinPower, Max: m.MaxPower()},
		Accuracy:           m.Accuracy,
		Target:             m.Target,
		Cost:               cost,
		Uses:               uses,
		Effect:             m.Effect,
		UnlockRequirements: []string{},
	})
}
