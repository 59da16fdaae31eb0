package entity

import (
	"fmt"
	"strconv"

	"pokemasdb/core/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Stats is one row of a pokemon's stat spread.
type Stats struct {
	HP        int
	Attack    int
	Defense   int
	SpAttack  int
	SpDefense int
	Speed     int
	// Bulk is only present on some records. Zero means absent.
	Bulk int
}

var statLabels = [...]string{"HP", "ATK", "DEF", "Sp. ATK", "Sp. DEF", "Speed", "Bulk"}

func (s Stats) values() []int {
	return []int{s.HP, s.Attack, s.Defense, s.SpAttack, s.SpDefense, s.Speed, s.Bulk}
}

// ParseStats reads the ["label","value"] pair list form. The first six
// pairs are required, in order. A seventh pair is read as bulk.
func ParseStats(r gjson.Result) (Stats, error) {
	const kind = "stats"
	if !present(r) {
		return Stats{}, newParseError(kind, "", "missing record")
	}
	if !r.IsArray() {
		return Stats{}, newParseError(kind, "", fmt.Sprintf("expected array, got %s", typeName(r)))
	}
	rows := r.Array()
	if len(rows) < 6 {
		return Stats{}, newParseError(kind, "", fmt.Sprintf("expected at least 6 rows, got %d", len(rows)))
	}

	vals := make([]int, 7)
	for i, row := range rows {
		if i >= len(vals) {
			break
		}
		field := fmt.Sprintf("[%d]", i)
		if !row.IsArray() {
			return Stats{}, newParseError(kind, field, fmt.Sprintf("expected array, got %s", typeName(row)))
		}
		v := row.Get("1")
		if !present(v) {
			return Stats{}, newParseError(kind, field, "missing value")
		}
		if v.Type != gjson.String && v.Type != gjson.Number {
			return Stats{}, newParseError(kind, field, fmt.Sprintf("expected string or number, got %s", typeName(v)))
		}
		vals[i] = utils.ToInt(v.Value())
	}

	return Stats{
		HP:        vals[0],
		Attack:    vals[1],
		Defense:   vals[2],
		SpAttack:  vals[3],
		SpDefense: vals[4],
		Speed:     vals[5],
		Bulk:      vals[6],
	}, nil
}

func (s Stats) MarshalJSON() ([]byte, error) {
	vals := s.values()
	n := 6
	if s.Bulk != 0 {
		n = 7
	}
	rows := make([][2]string, n)
	for i := range rows {
		rows[i] = [2]string{statLabels[i], strconv.Itoa(vals[i])}
	}
	return json.Marshal(rows)
}

// StatRange holds the base and fully upgraded stats.
type StatRange struct {
	Base Stats
	Max  Stats
}

// ParseStatRange builds a StatRange from {"base": [...], "max": [...]}.
func ParseStatRange(r gjson.Result) (StatRange, error) {
	const kind = "stat range"
	if err := objectOf(kind, r); err != nil {
		return StatRange{}, err
	}
	base, err := ParseStats(r.Get("base"))
	if err != nil {
		return StatRange{}, within(err, "base")
	}
	maxStats, err := ParseStats(r.Get("max"))
	if err != nil {
		return StatRange{}, within(err, "max")
	}
	return StatRange{Base: base, Max: maxStats}, nil
}

// ParseStatRangeJSON parses a raw JSON stat range.
func ParseStatRangeJSON(data []byte) (StatRange, error) {
	return parseBytes("stat range", data, ParseStatRange)
}

func (s StatRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Base Stats `json:"base"`
		Max  Stats `json:"max"`
	}{s.Base, s.Max})
}
