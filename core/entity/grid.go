package entity

import (
	"strconv"
	"strings"

	"pokemasdb/core/utils"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// GridNode is one tile of a pokemon's sync grid.
type GridNode struct {
	// Bonus is the raw tile text, usually "Title- Description".
	Bonus        string
	Title        string
	Description  string
	SyncOrbCost  int
	EnergyCost   int
	ReqSyncLevel int
	// GridPos is the raw "(x,y)" position text.
	GridPos string
	X       int
	Y       int
}

// NewGridNode derives title, description and coordinates from the raw tile fields.
// The bonus is split at its first "- "; without one, title and description
// are both the whole bonus.
func NewGridNode(bonus, gridPos string, syncOrbCost, energyCost, reqSyncLevel int) *GridNode {
	n := &GridNode{
		Bonus:        bonus,
		Title:        bonus,
		Description:  bonus,
		SyncOrbCost:  syncOrbCost,
		EnergyCost:   energyCost,
		ReqSyncLevel: reqSyncLevel,
		GridPos:      gridPos,
	}
	if title, desc, ok := strings.Cut(bonus, "- "); ok {
		n.Title, n.Description = title, desc
	}
	n.X, n.Y = parseGridPos(gridPos)
	return n
}

func parseGridPos(pos string) (int, int) {
	pos = strings.TrimSpace(pos)
	if pos == "" {
		return 0, 0
	}
	pos = strings.TrimSuffix(strings.TrimPrefix(pos, "("), ")")
	x, y, _ := strings.Cut(pos, ",")
	return utils.DigitsToInt(strings.TrimSpace(x)), utils.DigitsToInt(strings.TrimSpace(y))
}

// IsSkill reports whether the tile unlocks a named passive skill rather than
// a bare stat bonus such as "+10% HP".
func (n *GridNode) IsSkill() bool {
	return n.Title != n.Description
}

// ParseGridNode builds a GridNode from its JSON value tree.
func ParseGridNode(r gjson.Result) (*GridNode, error) {
	const kind = "grid node"
	if err := objectOf(kind, r); err != nil {
		return nil, err
	}
	bonus, err := requiredString(kind, r, "bonus")
	if err != nil {
		return nil, err
	}
	orbs, err := lenientInt(kind, r, "syncOrbCost")
	if err != nil {
		return nil, err
	}
	energy, err := lenientInt(kind, r, "energyCost")
	if err != nil {
		return nil, err
	}
	level, err := lenientInt(kind, r, "reqSyncLevel")
	if err != nil {
		return nil, err
	}
	pos, err := optionalString(kind, r, "gridPos")
	if err != nil {
		return nil, err
	}
	return NewGridNode(bonus, pos, orbs, energy, level), nil
}

// ParseGridNodeJSON parses a raw JSON grid node.
func ParseGridNodeJSON(data []byte) (*GridNode, error) {
	return parseBytes("grid node", data, ParseGridNode)
}

func (n *GridNode) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Bonus        string `json:"bonus"`
		SyncOrbCost  string `json:"syncOrbCost"`
		EnergyCost   string `json:"energyCost"`
		ReqSyncLevel string `json:"reqSyncLevel"`
		GridPos      string `json:"gridPos"`
	}{
		Bonus:        n.Bonus,
		SyncOrbCost:  strconv.Itoa(n.SyncOrbCost),
		EnergyCost:   strconv.Itoa(n.EnergyCost),
		ReqSyncLevel: strconv.Itoa(n.ReqSyncLevel),
		GridPos:      n.GridPos,
	})
}
