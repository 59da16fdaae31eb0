package entity

import (
	"strconv"

	"pokemasdb/core/frozen"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Pokemon is one pokemon as paired with a specific trainer.
type Pokemon struct {
	Name       string
	Trainer    string
	Typing     *frozen.Seq[string]
	Weakness   string
	Role       string
	Rarity     int
	Gender     string
	OtherForms *frozen.Seq[string]
	Moves      *frozen.Seq[*Move]
	SyncMove   *SyncMove
	Passives   *frozen.Seq[*Passive]
	Stats      StatRange
	Grid       *frozen.Seq[*GridNode]
}

// DisplayName returns "Trainer's Pokemon", the form shown in user lists.
func (p *Pokemon) DisplayName() string {
	return p.Trainer + "'s " + p.Name
}

// SameAs reports whether p and o are the same trainer and pokemon pairing.
func (p *Pokemon) SameAs(o *Pokemon) bool {
	return p.Trainer == o.Trainer && p.Name == o.Name
}

// ParsePokemon builds a Pokemon from its JSON value tree. Every list is
// frozen before it is returned.
func ParsePokemon(r gjson.Result) (*Pokemon, error) {
	const kind = "pokemon"
	if err := objectOf(kind, r); err != nil {
		return nil, err
	}

	p := &Pokemon{}
	var err error
	if p.Name, err = requiredString(kind, r, "name"); err != nil {
		return nil, err
	}
	if p.Trainer, err = requiredString(kind, r, "trainer"); err != nil {
		return nil, err
	}
	if p.Typing, err = stringList(kind, r, "typing"); err != nil {
		return nil, err
	}
	if p.Weakness, err = optionalString(kind, r, "weakness"); err != nil {
		return nil, err
	}
	if p.Role, err = optionalString(kind, r, "role"); err != nil {
		return nil, err
	}
	if p.Rarity, err = lenientInt(kind, r, "rarity"); err != nil {
		return nil, err
	}
	if p.Gender, err = optionalString(kind, r, "gender"); err != nil {
		return nil, err
	}
	if p.OtherForms, err = stringList(kind, r, "otherForms"); err != nil {
		return nil, err
	}
	if p.Moves, err = list(kind, r, "moves", ParseMove); err != nil {
		return nil, err
	}

	p.SyncMove = &SyncMove{}
	if sm := r.Get("syncMove"); present(sm) {
		if p.SyncMove, err = ParseSyncMove(sm); err != nil {
			return nil, within(err, "syncMove")
		}
	}

	if p.Passives, err = list(kind, r, "passives", ParsePassive); err != nil {
		return nil, err
	}
	if st := r.Get("stats"); present(st) {
		if p.Stats, err = ParseStatRange(st); err != nil {
			return nil, within(err, "stats")
		}
	}
	if p.Grid, err = list(kind, r, "grid", ParseGridNode); err != nil {
		return nil, err
	}
	return p, nil
}

// ParsePokemonJSON parses a raw JSON pokemon.
func ParsePokemonJSON(data []byte) (*Pokemon, error) {
	return parseBytes("pokemon", data, ParsePokemon)
}

func (p *Pokemon) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name       string                 `json:"name"`
		Trainer    string                 `json:"trainer"`
		Typing     *frozen.Seq[string]    `json:"typing"`
		Weakness   string                 `json:"weakness"`
		Role       string                 `json:"role"`
		Rarity     string                 `json:"rarity"`
		Gender     string                 `json:"gender"`
		OtherForms *frozen.Seq[string]    `json:"otherForms"`
		Moves      *frozen.Seq[*Move]     `json:"moves"`
		SyncMove   *SyncMove              `json:"syncMove"`
		Passives   *frozen.Seq[*Passive]  `json:"passives"`
		Stats      StatRange              `json:"stats"`
		Grid       *frozen.Seq[*GridNode] `json:"grid"`
	}{
		Name:       p.Name,
		Trainer:    p.Trainer,
		Typing:     orEmpty(p.Typing),
		Weakness:   p.Weakness,
		Role:       p.Role,
		Rarity:     strconv.Itoa(p.Rarity),
		Gender:     p.Gender,
		OtherForms: orEmpty(p.OtherForms),
		Moves:      orEmpty(p.Moves),
		SyncMove:   orZero(p.SyncMove),
		Passives:   orEmpty(p.Passives),
		Stats:      p.Stats,
		Grid:       orEmpty(p.Grid),
	})
}

func orEmpty[T any](s *frozen.Seq[T]) *frozen.Seq[T] {
	if s == nil {
		return frozen.New[T]()
	}
	return s
}

func orZero(s *SyncMove) *SyncMove {
	if s == nil {
		return &SyncMove{}
	}
	return s
}
