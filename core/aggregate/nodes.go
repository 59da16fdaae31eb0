package aggregate

import (
	"pokemasdb/core/entity"
	"pokemasdb/core/frozen"

	"github.com/goccy/go-json"
)

// MoveNode is a move together with every pokemon that learns it.
type MoveNode struct {
	Move  *entity.Move
	Users *frozen.Seq[*entity.Pokemon]
}

func newMoveNode(m *entity.Move) *MoveNode {
	return &MoveNode{Move: m, Users: frozen.New[*entity.Pokemon]()}
}

// addUser records p unless the same trainer and pokemon pairing is already listed.
func addUser(users *frozen.Seq[*entity.Pokemon], p *entity.Pokemon) error {
	if users.ContainsFunc(p.SameAs) {
		return nil
	}
	return users.Append(p)
}

func (n *MoveNode) freeze() {
	n.Users.Freeze()
}

// UserNames lists the users as "Trainer's Pokemon".
func (n *MoveNode) UserNames() []string {
	return displayNames(n.Users)
}

func (n *MoveNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Move  *entity.Move `json:"move"`
		Users []string     `json:"users"`
	}{n.Move, n.UserNames()})
}

// SkillNode is a passive skill together with the pokemon that have it
// innately and the pokemon that can unlock it on their sync grid.
type SkillNode struct {
	Passive *entity.Passive
	Innate  *frozen.Seq[*entity.Pokemon]
	Grid    *frozen.Seq[*entity.Pokemon]
}

func newSkillNode(p *entity.Passive) *SkillNode {
	return &SkillNode{
		Passive: p,
		Innate:  frozen.New[*entity.Pokemon](),
		Grid:    frozen.New[*entity.Pokemon](),
	}
}

func (n *SkillNode) add(p *entity.Pokemon, inGrid bool) error {
	if inGrid {
		return addUser(n.Grid, p)
	}
	return addUser(n.Innate, p)
}

func (n *SkillNode) freeze() {
	n.Innate.Freeze()
	n.Grid.Freeze()
}

// InnateNames lists pokemon with the skill built in, as "Trainer's Pokemon".
func (n *SkillNode) InnateNames() []string {
	return displayNames(n.Innate)
}

// GridNames lists pokemon that unlock the skill on their sync grid.
func (n *SkillNode) GridNames() []string {
	return displayNames(n.Grid)
}

func (n *SkillNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Passive *entity.Passive `json:"passive"`
		Innate  []string        `json:"innate"`
		Grid    []string        `json:"grid"`
	}{n.Passive, n.InnateNames(), n.GridNames()})
}

func displayNames(s *frozen.Seq[*entity.Pokemon]) []string {
	out := make([]string, 0, s.Len())
	for p := range s.Values() {
		out = append(out, p.DisplayName())
	}
	return out
}
