package entity_test

import (
	"errors"
	"testing"

	"pokemasdb/core/entity"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCost  int
		wantUses  int
		wantField string
	}{
		{"NumericCost", `{"name":"Flamethrower","power":{"min_power":90},"cost":2,"uses":3}`, 2, 3, ""},
		{"TextCostIsZero", `{"name":"Potion","power":{"min_power":0},"cost":"","uses":2}`, 0, 2, ""},
		{"NullUsesIsZero", `{"name":"Ember","power":{"min_power":40},"cost":1,"uses":null}`, 1, 0, ""},
		{"MissingName", `{"power":{"min_power":40}}`, 0, 0, "name"},
		{"WrongNameType", `{"name":3,"power":{"min_power":40}}`, 0, 0, "name"},
		{"MissingPower", `{"name":"Ember"}`, 0, 0, "power"},
		{"PowerNotObject", `{"name":"Ember","power":40}`, 0, 0, "power"},
		{"WrongTargetType", `{"name":"Ember","power":{"min_power":40},"target":[]}`, 0, 0, "target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := entity.ParseMoveJSON([]byte(tt.input))
			if tt.wantField != "" {
				var pe *entity.ParseError
				require.ErrorAs(t, err, &pe)
				assert.ErrorIs(t, err, entity.ErrParse)
				assert.Equal(t, "move", pe.Entity)
				assert.Equal(t, tt.wantField, pe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCost, m.Cost)
			assert.Equal(t, tt.wantUses, m.Uses)
		})
	}
}

func TestMove_MarshalJSON(t *testing.T) {
	m := &entity.Move{
		Name:     "Blast Burn",
		Type:     "Fire",
		Category: "Special",
		MinPower: 150,
		Accuracy: 100,
		Target:   "An opponent",
		Effect:   "Must recharge.",
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name":"Blast Burn","type":"Fire","category":"Special",
		"power":{"min_power":150,"max_power":180},
		"accuracy":100,"target":"An opponent",
		"cost":"","uses":null,"effect":"Must recharge.",
		"unlock_requirements":[]
	}`, string(data))

	m.Cost, m.Uses = 3, 1
	data, err = json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, int64(3), gjson.GetBytes(data, "cost").Int())
	assert.Equal(t, int64(1), gjson.GetBytes(data, "uses").Int())
}

func TestMove_MaxPowerRoundsHalfUp(t *testing.T) {
	assert.Equal(t, 6, (&entity.Move{MinPower: 5}).MaxPower())
	assert.Equal(t, 114, (&entity.Move{MinPower: 95}).MaxPower())
	assert.Equal(t, 0, (&entity.Move{}).MaxPower())
}

func TestParseStats(t *testing.T) {
	t.Run("WithoutBulk", func(t *testing.T) {
		s, err := entity.ParseStats(gjson.Parse(`[["HP","420"],["ATK","110"],["DEF","90"],["Sp. ATK","330"],["Sp. DEF","90"],["Speed","210"]]`))
		require.NoError(t, err)
		assert.Equal(t, entity.Stats{HP: 420, Attack: 110, Defense: 90, SpAttack: 330, SpDefense: 90, Speed: 210}, s)

		data, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, 6, len(gjson.ParseBytes(data).Array()))
	})

	t.Run("WithBulk", func(t *testing.T) {
		s, err := entity.ParseStats(gjson.Parse(`[["HP","1"],["ATK","2"],["DEF","3"],["Sp. ATK","4"],["Sp. DEF","5"],["Speed","6"],["Bulk","7"]]`))
		require.NoError(t, err)
		assert.Equal(t, 7, s.Bulk)

		data, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `[["HP","1"],["ATK","2"],["DEF","3"],["Sp. ATK","4"],["Sp. DEF","5"],["Speed","6"],["Bulk","7"]]`, string(data))
	})

	t.Run("LenientValues", func(t *testing.T) {
		s, err := entity.ParseStats(gjson.Parse(`[["HP","12(Lv.5)"],["ATK","N/A"],["DEF",3],["Sp. ATK","-4"],["Sp. DEF",""],["Speed","6"]]`))
		require.NoError(t, err)
		assert.Equal(t, 125, s.HP)
		assert.Equal(t, 0, s.Attack)
		assert.Equal(t, 3, s.Defense)
		assert.Equal(t, -4, s.SpAttack)
		assert.Equal(t, 0, s.SpDefense)
	})

	t.Run("TooFewRows", func(t *testing.T) {
		_, err := entity.ParseStats(gjson.Parse(`[["HP","1"]]`))
		assert.ErrorIs(t, err, entity.ErrParse)
	})

	t.Run("RowNotArray", func(t *testing.T) {
		_, err := entity.ParseStats(gjson.Parse(`[1,2,3,4,5,6]`))
		var pe *entity.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "[0]", pe.Field)
	})
}

func TestGridNode(t *testing.T) {
	tests := []struct {
		name      string
		bonus     string
		pos       string
		wantTitle string
		wantDesc  string
		wantX     int
		wantY     int
		wantSkill bool
	}{
		{"StatBonus", "+10% HP", "(0,1)", "+10% HP", "+10% HP", 0, 1, false},
		{"Skill", "Sharp Blade 3- Raises critical rate.", "(2,-3)", "Sharp Blade 3", "Raises critical rate.", 2, -3, true},
		{"SplitsAtFirstSeparator", "A- B- C", "", "A", "B- C", 0, 0, true},
		{"EmptyPosition", "X- Y", "", "X", "Y", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := entity.NewGridNode(tt.bonus, tt.pos, 1, 2, 3)
			assert.Equal(t, tt.wantTitle, n.Title)
			assert.Equal(t, tt.wantDesc, n.Description)
			assert.Equal(t, tt.wantX, n.X)
			assert.Equal(t, tt.wantY, n.Y)
			assert.Equal(t, tt.wantSkill, n.IsSkill())
		})
	}
}

func TestParseGridNode(t *testing.T) {
	n, err := entity.ParseGridNodeJSON([]byte(`{"bonus":"+5 Speed","syncOrbCost":"3","energyCost":"12","reqSyncLevel":"Sync Lv. 2","gridPos":"(1,4)"}`))
	require.NoError(t, err)
	assert.Equal(t, 3, n.SyncOrbCost)
	assert.Equal(t, 12, n.EnergyCost)
	assert.Equal(t, 2, n.ReqSyncLevel)

	data, err := json.Marshal(n)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bonus":"+5 Speed","syncOrbCost":"3","energyCost":"12","reqSyncLevel":"2","gridPos":"(1,4)"}`, string(data))

	_, err = entity.ParseGridNodeJSON([]byte(`{"syncOrbCost":"3"}`))
	assert.ErrorIs(t, err, entity.ErrParse)
}

func TestParsePokemon(t *testing.T) {
	p, err := entity.ParsePokemonJSON([]byte(charizardJSON))
	require.NoError(t, err)

	assert.Equal(t, "Charizard", p.Name)
	assert.Equal(t, "Leon", p.Trainer)
	assert.Equal(t, "Leon's Charizard", p.DisplayName())
	assert.Equal(t, []string{"Fire", "Flying"}, p.Typing.Slice())
	assert.Equal(t, 5, p.Rarity)
	assert.Equal(t, 2, p.Moves.Len())
	assert.Equal(t, "Max Wildfire", p.SyncMove.Name)
	assert.Equal(t, 2, p.Passives.Len())
	assert.Equal(t, 610, p.Stats.Max.Bulk)
	assert.Equal(t, 0, p.Stats.Base.Bulk)
	assert.Equal(t, 2, p.Grid.Len())

	for _, frozenList := range []interface{ Frozen() bool }{p.Typing, p.OtherForms, p.Moves, p.Passives, p.Grid} {
		assert.True(t, frozenList.Frozen())
	}

	node, ok := p.Grid.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Blast Burn: Power ↑ 5", node.Title)
	assert.Equal(t, -1, node.X)
}

func TestParsePokemon_OptionalParts(t *testing.T) {
	p, err := entity.ParsePokemonJSON([]byte(`{"name":"Pikachu","trainer":"Red","moves":null,"typing":null}`))
	require.NoError(t, err)

	assert.Equal(t, 0, p.Moves.Len())
	assert.True(t, p.Moves.Frozen())
	assert.Equal(t, 0, p.Typing.Len())
	assert.NotNil(t, p.SyncMove)
	assert.Equal(t, entity.StatRange{}, p.Stats)
}

func TestParsePokemon_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{"MissingTrainer", `{"name":"Pikachu"}`, "trainer"},
		{"MovesNotArray", `{"name":"Pikachu","trainer":"Red","moves":{}}`, "moves"},
		{"NestedMove", `{"name":"Pikachu","trainer":"Red","moves":[{"name":"Thunderbolt"}]}`, "moves[0].power"},
		{"TypingEntry", `{"name":"Pikachu","trainer":"Red","typing":["Electric",1]}`, "typing[1]"},
		{"SyncMoveNotObject", `{"name":"Pikachu","trainer":"Red","syncMove":"Bolt"}`, "syncMove"},
		{"StatsMissingMax", `{"name":"Pikachu","trainer":"Red","stats":{"base":[["HP","1"],["ATK","2"],["DEF","3"],["Sp. ATK","4"],["Sp. DEF","5"],["Speed","6"]]}}`, "stats.max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := entity.ParsePokemonJSON([]byte(tt.input))
			var pe *entity.ParseError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.wantField, pe.Field)
		})
	}
}

func TestParseTrainer(t *testing.T) {
	tr, err := entity.ParseTrainerJSON([]byte(leonJSON))
	require.NoError(t, err)

	assert.Equal(t, "Leon", tr.Name)
	assert.Equal(t, 5, tr.Rarity)
	assert.True(t, tr.HasInRoster("charizard"))
	assert.False(t, tr.HasInRoster("Pikachu"))
	assert.True(t, tr.Pokemon.Frozen())
	assert.Equal(t, "https://pokemasdb.com/trainer/image/Leon.png", tr.ImageURL())
}

func TestTrainer_URLsEscapeSpaces(t *testing.T) {
	tr := &entity.Trainer{Name: "Sygna Suit Red"}
	assert.Equal(t, "https://pokemasdb.com/trainer/Sygna%20Suit%20Red", tr.DataURL())
	assert.Equal(t, "https://pokemasdb.com/trainer/image/Sygna%20Suit%20Red.png", tr.ImageURL())
}

func TestParseTrainer_ErrorPath(t *testing.T) {
	bad := `{"name":"Leon","rarity":5,"pokemon":[],"pokemonData":[{"name":"Charizard","trainer":"Leon","moves":[{"power":{"min_power":1}}]}]}`
	_, err := entity.ParseTrainerJSON([]byte(bad))

	var pe *entity.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "move", pe.Entity)
	assert.Equal(t, "pokemonData[0].moves[0].name", pe.Field)
	assert.Contains(t, err.Error(), "pokemonData[0].moves[0].name")
}

func TestParse_MalformedJSON(t *testing.T) {
	_, err := entity.ParseTrainerJSON([]byte(`{"name":`))
	assert.True(t, errors.Is(err, entity.ErrParse))

	_, err = entity.ParseTrainer(gjson.Parse(`[]`))
	assert.ErrorIs(t, err, entity.ErrParse)
}

func TestRoundTrip(t *testing.T) {
	t.Run("Trainer", func(t *testing.T) {
		first, err := entity.ParseTrainerJSON([]byte(leonJSON))
		require.NoError(t, err)

		data, err := json.Marshal(first)
		require.NoError(t, err)

		second, err := entity.ParseTrainerJSON(data)
		require.NoError(t, err)
		assert.Equal(t, first, second)

		again, err := json.Marshal(second)
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(again))
	})

	t.Run("PokemonWireShape", func(t *testing.T) {
		p, err := entity.ParsePokemonJSON([]byte(charizardJSON))
		require.NoError(t, err)

		data, err := json.Marshal(p)
		require.NoError(t, err)

		out := gjson.ParseBytes(data)
		assert.Equal(t, "5", out.Get("rarity").String())
		assert.Equal(t, gjson.String, out.Get("rarity").Type)
		assert.Equal(t, "", out.Get("moves.1.cost").String())
		assert.Equal(t, gjson.Null, out.Get("moves.0.uses").Type)
		assert.Equal(t, int64(180), out.Get("moves.0.power.max_power").Int())
		assert.Equal(t, "Bulk", out.Get("stats.max.6.0").String())
		assert.False(t, out.Get("stats.base.6").Exists())
	})

	t.Run("SyncMoveAndPassive", func(t *testing.T) {
		sm, err := entity.ParseSyncMoveJSON([]byte(`{"name":"Max Wildfire","type":"Fire","category":"Special","power":{"min_power":200},"target":"All","effect_tag":"Max","description":"Hot."}`))
		require.NoError(t, err)
		data, err := json.Marshal(sm)
		require.NoError(t, err)
		back, err := entity.ParseSyncMoveJSON(data)
		require.NoError(t, err)
		assert.Equal(t, sm, back)
		assert.Equal(t, int64(240), gjson.GetBytes(data, "power.max_power").Int())

		ps, err := entity.ParsePassiveJSON([]byte(`{"name":"Unwavering","description":"Cannot flinch."}`))
		require.NoError(t, err)
		data, err = json.Marshal(ps)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Unwavering","description":"Cannot flinch."}`, string(data))
	})

	t.Run("StatRange", func(t *testing.T) {
		sr, err := entity.ParseStatRangeJSON([]byte(`{"base":[["HP","1"],["ATK","2"],["DEF","3"],["Sp. ATK","4"],["Sp. DEF","5"],["Speed","6"]],"max":[["HP","7"],["ATK","8"],["DEF","9"],["Sp. ATK","10"],["Sp. DEF","11"],["Speed","12"],["Bulk","13"]]}`))
		require.NoError(t, err)
		data, err := json.Marshal(sr)
		require.NoError(t, err)
		back, err := entity.ParseStatRangeJSON(data)
		require.NoError(t, err)
		assert.Equal(t, sr, back)
	})
}
