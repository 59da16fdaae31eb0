package entity

import (
	"strings"

	"pokemasdb/core/frozen"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// SiteURL is the origin the trainer image and data links point at.
const SiteURL = "https://pokemasdb.com"

// Trainer is the top-level record: a trainer and the pokemon they pair with.
type Trainer struct {
	Name   string
	Rarity int
	// Roster lists the names of the trainer's pokemon.
	Roster *frozen.Seq[string]
	// Pokemon holds the full pokemon records, frozen once parsed.
	Pokemon *frozen.Seq[*Pokemon]
}

// ResolveTrainerPath escapes a trainer name for use in a URL path.
func ResolveTrainerPath(name string) string {
	return strings.ReplaceAll(name, " ", "%20")
}

// ImageURL is the trainer's portrait URL.
func (t *Trainer) ImageURL() string {
	return SiteURL + "/trainer/image/" + ResolveTrainerPath(t.Name) + ".png"
}

// DataURL is the trainer's record URL.
func (t *Trainer) DataURL() string {
	return SiteURL + "/trainer/" + ResolveTrainerPath(t.Name)
}

// HasInRoster reports whether name appears in the roster, ignoring case.
func (t *Trainer) HasInRoster(name string) bool {
	return t.Roster.ContainsFunc(func(n string) bool {
		return strings.EqualFold(n, name)
	})
}

// ParseTrainer builds a Trainer from its JSON value tree.
func ParseTrainer(r gjson.Result) (*Trainer, error) {
	const kind = "trainer"
	if err := objectOf(kind, r); err != nil {
		return nil, err
	}

	t := &Trainer{}
	var err error
	if t.Name, err = requiredString(kind, r, "name"); err != nil {
		return nil, err
	}
	if t.Rarity, err = lenientInt(kind, r, "rarity"); err != nil {
		return nil, err
	}
	if t.Roster, err = stringList(kind, r, "pokemon"); err != nil {
		return nil, err
	}
	if t.Pokemon, err = list(kind, r, "pokemonData", ParsePokemon); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseTrainerJSON parses a raw JSON trainer record.
func ParseTrainerJSON(data []byte) (*Trainer, error) {
	return parseBytes("trainer", data, ParseTrainer)
}

func (t *Trainer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name        string                `json:"name"`
		Rarity      int                   `json:"rarity"`
		Pokemon     *frozen.Seq[string]   `json:"pokemon"`
		Image       string                `json:"image"`
		Data        string                `json:"data"`
		PokemonData *frozen.Seq[*Pokemon] `json:"pokemonData"`
	}{
		Name:        t.Name,
		Rarity:      t.Rarity,
		Pokemon:     orEmpty(t.Roster),
		Image:       t.ImageURL(),
		Data:        t.DataURL(),
		PokemonData: orEmpty(t.Pokemon),
	})
}
