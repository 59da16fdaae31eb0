package entity

import (
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// SyncMove is a pokemon's sync move.
type SyncMove struct {
	Name        string
	Type        string
	Category    string
	MinPower    int
	Target      string
	EffectTag   string
	Description string
}

// MaxPower is 1.2 times MinPower rounded half up.
func (s *SyncMove) MaxPower() int {
	return maxPower(s.MinPower)
}

// ParseSyncMove builds a SyncMove from its JSON value tree.
func ParseSyncMove(r gjson.Result) (*SyncMove, error) {
	const kind = "sync move"
	if err := objectOf(kind, r); err != nil {
		return nil, err
	}

	s := &SyncMove{}
	var err error
	if s.Name, err = requiredString(kind, r, "name"); err != nil {
		return nil, err
	}
	if s.Type, err = optionalString(kind, r, "type"); err != nil {
		return nil, err
	}
	if s.Category, err = optionalString(kind, r, "category"); err != nil {
		return nil, err
	}
	if s.MinPower, err = parsePower(kind, r); err != nil {
		return nil, err
	}
	if s.Target, err = optionalString(kind, r, "target"); err != nil {
		return nil, err
	}
	if s.EffectTag, err = optionalString(kind, r, "effect_tag"); err != nil {
		return nil, err
	}
	if s.Description, err = optionalString(kind, r, "description"); err != nil {
		return nil, err
	}
	return s, nil
}

// ParseSyncMoveJSON parses a raw JSON sync move.
func ParseSyncMoveJSON(data []byte) (*SyncMove, error) {
	return parseBytes("sync move", data, ParseSyncMove)
}

func (s *SyncMove) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string    `json:"name"`
		Type        string    `json:"type"`
		Category    string    `json:"category"`
		Power       powerJSON `json:"power"`
		Target      string    `json:"target"`
		EffectTag   string    `json:"effect_tag"`
		Description string    `json:"description"`
	}{
		Name:        s.Name,
		Type:        s.Type,
		Category:    s.Category,
		Power:       powerJSON{Min: s.MinPower, Max: s.MaxPower()},
		Target:      s.Target,
		EffectTag:   s.EffectTag,
		Description: s.Description,
	})
}
