package aggregate

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"pokemasdb/core/entity"
	"pokemasdb/core/frozen"
	"pokemasdb/core/keymap"

	"go.uber.org/zap"
)

const (
	// PlayerTrainer is the trainer whose roster is never grouped as alternate forms.
	PlayerTrainer = "Player"
	// ungroupedName never joins another name's bucket even when it is a substring.
	ungroupedName = "Mew"
)

// Bucket is the list of pokemon answering to one name.
type Bucket = frozen.Seq[*entity.Pokemon]

// Caches is one generation of derived lookup tables. Every table, node and
// bucket in it is frozen.
type Caches struct {
	Trainers *keymap.Map[*entity.Trainer]
	Pokemon  *keymap.Map[*Bucket]
	Moves    *keymap.Map[*MoveNode]
	Skills   *keymap.Map[*SkillNode]
	// BuiltAt is when Build finished.
	BuiltAt time.Time
}

// Sizes reports the number of keys per cache.
func (c *Caches) Sizes() map[Kind]int {
	return map[Kind]int{
		KindTrainer: c.Trainers.Len(),
		KindPokemon: c.Pokemon.Len(),
		KindMove:    c.Moves.Len(),
		KindSkill:   c.Skills.Len(),
	}
}

// Keys lists the names in the cache of the given kind in insertion order.
func (c *Caches) Keys(kind Kind) []string {
	switch kind {
	case KindTrainer:
		return c.Trainers.Keys()
	case KindPokemon:
		return c.Pokemon.Keys()
	case KindMove:
		return c.Moves.Keys()
	case KindSkill:
		return c.Skills.Keys()
	default:
		return nil
	}
}

// Lookup finds name in the cache of the given kind.
func (c *Caches) Lookup(kind Kind, name string) (any, bool) {
	switch kind {
	case KindTrainer:
		return c.Trainers.Get(name)
	case KindPokemon:
		return c.Pokemon.Get(name)
	case KindMove:
		return c.Moves.Get(name)
	case KindSkill:
		return c.Skills.Get(name)
	default:
		return nil, false
	}
}

// Option configures Build.
type Option func(*builder)

// WithLogger sets the logger used for build diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(b *builder) {
		if l != nil {
			b.logger = l
		}
	}
}

type builder struct {
	logger *zap.Logger
	caches *Caches
}

// Build derives every lookup cache from the parsed trainers. It either
// returns a fully frozen set of caches or an error; nothing partial escapes.
func Build(trainers []*entity.Trainer, opts ...Option) (*Caches, error) {
	b := &builder{
		logger: zap.NewNop(),
		caches: &Caches{
			Trainers: keymap.New[*entity.Trainer](),
			Pokemon:  keymap.New[*Bucket](),
			Moves:    keymap.New[*MoveNode](),
			Skills:   keymap.New[*SkillNode](),
		},
	}
	for _, opt := range opts {
		opt(b)
	}

	start := time.Now()
	for i, t := range trainers {
		if t == nil {
			return nil, &entity.ParseError{Entity: "trainer", Field: fmt.Sprintf("[%d]", i), Reason: "nil record"}
		}
		if err := b.addTrainer(t); err != nil {
			return nil, fmt.Errorf("failed to aggregate trainer %q: %w", t.Name, err)
		}
	}
	if err := b.groupForms(); err != nil {
		return nil, fmt.Errorf("failed to group pokemon forms: %w", err)
	}
	b.freeze()

	c := b.caches
	c.BuiltAt = time.Now()
	b.logger.Debug("Caches built",
		zap.Int("trainers", c.Trainers.Len()),
		zap.Int("pokemon", c.Pokemon.Len()),
		zap.Int("moves", c.Moves.Len()),
		zap.Int("skills", c.Skills.Len()),
		zap.Duration("took", time.Since(start)),
	)
	return c, nil
}

func (b *builder) addTrainer(t *entity.Trainer) error {
	if err := b.caches.Trainers.Put(t.Name, t); err != nil {
		return err
	}
	for i, p := range t.Pokemon.All() {
		if p == nil {
			return &entity.ParseError{Entity: "pokemon", Field: fmt.Sprintf("pokemonData[%d]", i), Reason: "nil record"}
		}
		if err := b.addPokemon(p); err != nil {
			return fmt.Errorf("pokemon %q: %w", p.Name, err)
		}
	}
	return nil
}

func (b *builder) addPokemon(p *entity.Pokemon) error {
	bucket, err := b.caches.Pokemon.GetOrCreate(p.Name, frozen.New[*entity.Pokemon])
	if err != nil {
		return err
	}
	if err := bucket.Append(p); err != nil {
		return err
	}

	for m := range p.Moves.Values() {
		node, err := b.caches.Moves.GetOrCreate(m.Name, func() *MoveNode { return newMoveNode(m) })
		if err != nil {
			return err
		}
		if err := addUser(node.Users, p); err != nil {
			return err
		}
	}

	for s := range p.Passives.Values() {
		if err := b.addSkill(s, p, false); err != nil {
			return err
		}
	}

	for n := range p.Grid.Values() {
		if !n.IsSkill() {
			continue
		}
		if _, alt, ok := strings.Cut(n.Title, ":"); ok {
			if alt = strings.TrimSpace(alt); alt != "" {
				if err := b.addSkill(&entity.Passive{Name: alt, Description: n.Description}, p, true); err != nil {
					return err
				}
			}
		}
		full := &entity.Passive{Name: strings.ReplaceAll(n.Title, ":", ": "), Description: n.Description}
		if err := b.addSkill(full, p, true); err != nil {
			return err
		}
	}
	return nil
}

// addSkill attributes s to p and, for numbered skills such as "Sharp Blade 3",
// also to the group skill "Sharp Blade".
func (b *builder) addSkill(s *entity.Passive, p *entity.Pokemon, inGrid bool) error {
	if err := b.attribute(s, p, inGrid); err != nil {
		return err
	}
	group, ok := skillGroup(s.Name)
	if !ok {
		return nil
	}
	groupSkill := &entity.Passive{
		Name:        group,
		Description: "This is a group of passive skills " + group + " 1-9.",
	}
	return b.attribute(groupSkill, p, inGrid)
}

func (b *builder) attribute(s *entity.Passive, p *entity.Pokemon, inGrid bool) error {
	node, err := b.caches.Skills.GetOrCreate(s.Name, func() *SkillNode { return newSkillNode(s) })
	if err != nil {
		return err
	}
	return node.add(p, inGrid)
}

// skillGroup strips the trailing level digit and its separator from a
// numbered skill name.
func skillGroup(name string) (string, bool) {
	r := []rune(name)
	if len(r) < 2 || !unicode.IsDigit(r[len(r)-1]) {
		return "", false
	}
	group := string(r[:len(r)-2])
	if strings.TrimSpace(group) == "" {
		return "", false
	}
	return group, true
}

// groupForms merges the bucket of every name into the bucket of each longer
// name containing it, so "Charizard" and "Mega Charizard Y" share one list.
// Names on the Player trainer's roster never absorb others, and "Mew" never
// joins "Mewtwo".
func (b *builder) groupForms() error {
	var exclude func(string) bool
	if player, ok := b.caches.Trainers.Get(PlayerTrainer); ok {
		exclude = player.HasInRoster
	} else {
		exclude = func(string) bool { return false }
	}

	names := b.caches.Pokemon.Keys()
	for _, short := range names {
		if short == ungroupedName {
			continue
		}
		for _, long := range names {
			if long == short || !strings.Contains(long, short) || exclude(long) {
				continue
			}
			if err := b.merge(short, long); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *builder) merge(short, long string) error {
	src, _ := b.caches.Pokemon.Get(short)
	dst, _ := b.caches.Pokemon.Get(long)
	if src == dst {
		return nil
	}
	for p := range src.Values() {
		if dst.ContainsFunc(func(q *entity.Pokemon) bool { return q == p }) {
			continue
		}
		if err := dst.Append(p); err != nil {
			return err
		}
	}
	return b.caches.Pokemon.Put(short, dst)
}

func (b *builder) freeze() {
	c := b.caches
	c.Pokemon.ForEach(func(_ string, bucket *Bucket) bool {
		bucket.Freeze()
		return true
	})
	c.Moves.ForEach(func(_ string, n *MoveNode) bool {
		n.freeze()
		return true
	})
	c.Skills.ForEach(func(_ string, n *SkillNode) bool {
		n.freeze()
		return true
	})
	c.Trainers.Freeze()
	c.Pokemon.Freeze()
	c.Moves.Freeze()
	c.Skills.Freeze()
}
