package database

import (
	"errors"
	"fmt"
	"sync"

	"gamecatalog/backend/internal/models"
)

// ErrDuplicateID is returned when a record with the same id is already stored.
var ErrDuplicateID = errors.New("duplicate game id")

// MemoryDB is the in-memory game collection. Records are kept in display
// order (front = most recently created) with an id index for lookups.
type MemoryDB struct {
	mu    sync.RWMutex
	games []models.Game
	index map[int64]int
}

// NewMemoryDB constructs an empty MemoryDB.
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		index: make(map[int64]int),
	}
}

// List returns a copy of the collection in display order.
func (db *MemoryDB) List() []models.Game {
	db.mu.RLock()
	defer db.mu.RUnlock()

	result := make([]models.Game, 0, len(db.games))
	for _, g := range db.games {
		result = append(result, g.Clone())
	}
	return result
}

// Get retrieves a game by id.
func (db *MemoryDB) Get(id int64) (models.Game, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	i, ok := db.index[id]
	if !ok {
		return models.Game{}, false
	}
	return db.games[i].Clone(), true
}

// Len returns the number of stored games.
func (db *MemoryDB) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.games)
}

// Prepend stores game at the front of the collection.
func (db *MemoryDB) Prepend(game models.Game) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.index[game.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, game.ID)
	}
	db.games = append([]models.Game{game.Clone()}, db.games...)
	db.reindex()
	return nil
}

// Append stores game at the back of the collection.
func (db *MemoryDB) Append(game models.Game) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.index[game.ID]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateID, game.ID)
	}
	db.games = append(db.games, game.Clone())
	db.index[game.ID] = len(db.games) - 1
	return nil
}

// Update applies fn to a copy of the stored game and writes it back in place
// when fn succeeds. The id can't be changed through fn.
func (db *MemoryDB) Update(id int64, fn func(*models.Game) error) (models.Game, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	i, ok := db.index[id]
	if !ok {
		return models.Game{}, false, nil
	}

	working := db.games[i].Clone()
	if err := fn(&working); err != nil {
		return models.Game{}, true, err
	}
	working.ID = id
	db.games[i] = working
	return working.Clone(), true, nil
}

// Delete removes the game with the given id and reports whether it existed.
func (db *MemoryDB) Delete(id int64) bool {
	db.mu.Lock()
	defer db.mu.Unlock()

	i, ok := db.index[id]
	if !ok {
		return false
	}
	db.games = append(db.games[:i], db.games[i+1:]...)
	delete(db.index, id)
	db.reindex()
	return true
}

// reindex rebuilds the id index. Callers hold the write lock.
func (db *MemoryDB) reindex() {
	for i, g := range db.games {
		db.index[g.ID] = i
	}
}
