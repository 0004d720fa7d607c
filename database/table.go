package database

import (
	"sort"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"

	"github.com/landlord-online/server/consts"
	"github.com/landlord-online/server/game"
	"github.com/landlord-online/server/poker"
)

// Table owns one referee and serializes access to it. Mutating calls take
// the write lock; observation and move queries share the read lock, so
// reads run concurrently with each other but never with a play in flight.
type Table struct {
	sync.RWMutex

	ID         string    `json:"id"`
	CreateTime time.Time `json:"createTime"`

	referee *game.Referee
}

func (t *Table) StartNewGame() {
	t.Lock()
	defer t.Unlock()
	t.referee.StartNewGame()
}

func (t *Table) PlayCards(playerID string, cards []poker.Card) (bool, string) {
	t.Lock()
	defer t.Unlock()
	return t.referee.PlayCards(playerID, cards)
}

func (t *Table) Observation(playerID string) game.Observation {
	t.RLock()
	defer t.RUnlock()
	return t.referee.GetObservation(playerID)
}

func (t *Table) ValidMoves(playerID string) [][]poker.Card {
	t.RLock()
	defer t.RUnlock()
	return t.referee.GetAllValidMoves(playerID)
}

func (t *Table) Concluded() bool {
	t.RLock()
	defer t.RUnlock()
	return t.referee.Concluded()
}

func (t *Table) CurrentTurn() string {
	t.RLock()
	defer t.RUnlock()
	return t.referee.CurrentTurn()
}

func (t *Table) Multiplier() int {
	t.RLock()
	defer t.RUnlock()
	return t.referee.Multiplier()
}

func (t *Table) WinnerSide() string {
	t.RLock()
	defer t.RUnlock()
	return t.referee.WinnerSide()
}

// Registry holds the active tables. One table per running match; no state
// is shared between tables.
type Registry struct {
	tables *hashmap.HashMap
}

func NewRegistry() *Registry {
	return &Registry{tables: hashmap.New()}
}

func (r *Registry) CreateTable(roles game.RoleProvider) *Table {
	table := &Table{
		ID:         uuid.NewString(),
		CreateTime: time.Now(),
		referee:    game.NewReferee(roles),
	}
	r.tables.Set(table.ID, table)
	return table
}

func (r *Registry) GetTable(id string) (*Table, error) {
	if v, ok := r.tables.Get(id); ok {
		return v.(*Table), nil
	}
	return nil, consts.ErrorsTableInvalid
}

func (r *Registry) DeleteTable(id string) {
	r.tables.Del(id)
}

func (r *Registry) Tables() []*Table {
	list := make([]*Table, 0)
	r.tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Table))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreateTime.Before(list[j].CreateTime)
	})
	return list
}
