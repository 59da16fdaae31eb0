package entity

import (
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Passive is a passive skill, either innate or unlocked on the sync grid.
type Passive struct {
	Name        string
	Description string
}

// ParsePassive builds a Passive from its JSON value tree.
func ParsePassive(r gjson.Result) (*Passive, error) {
	const kind = "passive"
	if err := objectOf(kind, r); err != nil {
		return nil, err
	}
	name, err := requiredString(kind, r, "name")
	if err != nil {
		return nil, err
	}
	desc, err := optionalString(kind, r, "description")
	if err != nil {
		return nil, err
	}
	return &Passive{Name: name, Description: desc}, nil
}

// ParsePassiveJSON parses a raw JSON passive.
func ParsePassiveJSON(data []byte) (*Passive, error) {
	return parseBytes("passive", data, ParsePassive)
}

func (p *Passive) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}{p.Name, p.Description})
}
