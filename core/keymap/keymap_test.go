package keymap_test

import (
	"testing"

	"pokemasdb/core/frozen"
	"pokemasdb/core/keymap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mr. Mime", "mrmime"},
		{"mr mime", "mrmime"},
		{"MRMIME", "mrmime"},
		{"Sharp Blade 3", "sharpblade3"},
		{"Flabébé", "flabébé"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, keymap.Normalize(tt.in))
		})
	}
}

func TestMap_FuzzyLookup(t *testing.T) {
	m := keymap.New[int]()
	require.NoError(t, m.Put("Mr. Mime", 1))

	for _, k := range []string{"mr mime", "MRMIME", "Mr.Mime", "m-r m_i_m_e"} {
		v, ok := m.Get(k)
		assert.True(t, ok, k)
		assert.Equal(t, 1, v, k)
		assert.True(t, m.Contains(k), k)
	}

	_, ok := m.Get("Mime Jr.")
	assert.False(t, ok)
}

func TestMap_FuzzyEqualityIsSymmetric(t *testing.T) {
	a := keymap.New[int]()
	require.NoError(t, a.Put("Ho-Oh", 1))
	b := keymap.New[int]()
	require.NoError(t, b.Put("hooh", 1))

	assert.True(t, a.Contains("hooh"))
	assert.True(t, b.Contains("Ho-Oh"))
}

func TestMap_NonStringKeys(t *testing.T) {
	m := keymap.New[string]()
	require.NoError(t, m.Put("1", "one"))

	_, ok := m.Get(1)
	assert.False(t, ok)
	assert.False(t, m.Contains(nil))
	assert.False(t, m.Contains(1.0))
}

func TestMap_PutKeepsFirstSpelling(t *testing.T) {
	m := keymap.New[int]()
	require.NoError(t, m.Put("Mr. Mime", 1))
	require.NoError(t, m.Put("MR MIME", 2))

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"Mr. Mime"}, m.Keys())
	v, _ := m.Get("mrmime")
	assert.Equal(t, 2, v)

	key, ok := m.Key("mr-mime")
	assert.True(t, ok)
	assert.Equal(t, "Mr. Mime", key)
}

func TestMap_ExactKeys(t *testing.T) {
	m := keymap.New[int](keymap.WithExactKeys())
	require.NoError(t, m.Put("Mew", 1))
	require.NoError(t, m.Put("mew", 2))

	assert.False(t, m.Fuzzy())
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.Contains("MEW"))
}

func TestMap_InsertionOrder(t *testing.T) {
	m := keymap.New[int]()
	for i, k := range []string{"c", "a", "b"} {
		require.NoError(t, m.Put(k, i))
	}
	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())

	var seen []string
	m.ForEach(func(k string, _ int) bool {
		seen = append(seen, k)
		return k != "a"
	})
	assert.Equal(t, []string{"c", "a"}, seen)
}

func TestMap_GetOrCreate(t *testing.T) {
	m := keymap.New[*[]string]()
	calls := 0
	create := func() *[]string {
		calls++
		return &[]string{}
	}

	first, err := m.GetOrCreate("Sharp Blade", create)
	require.NoError(t, err)
	second, err := m.GetOrCreate("sharp-blade", create)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestMap_Freeze(t *testing.T) {
	m := keymap.New[int]()
	require.NoError(t, m.Put("a", 1))
	m.Freeze()
	m.Freeze()

	assert.True(t, m.Frozen())
	assert.ErrorIs(t, m.Put("b", 2), frozen.ErrAlreadyFrozen)
	assert.ErrorIs(t, m.Put("a", 3), frozen.ErrAlreadyFrozen)

	_, err := m.GetOrCreate("c", func() int { return 4 })
	assert.ErrorIs(t, err, frozen.ErrAlreadyFrozen)

	v, ok := m.Get("A")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestMap_NilIsEmpty(t *testing.T) {
	var m *keymap.Map[int]
	assert.Equal(t, 0, m.Len())
	assert.False(t, m.Contains("x"))
	assert.Empty(t, m.Keys())
}
