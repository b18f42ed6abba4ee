package inmemdb

import (
	"github.com/google/uuid"

	"github.com/geekplay/foro/core/item"
)

// newID returns a time-ordered id: a millisecond timestamp followed by random bits.
var newID = func() string {
	return uuid.Must(uuid.NewV7()).String()
}

type itemRepository struct {
	db *itemTable
}

func NewItemRepository(db *DB) item.Repository {
	return &itemRepository{db: db.item}
}

// index returns the position of the first row with id, or -1.
func (repo *itemRepository) index(id string) int {
	for i := range repo.db.rows {
		if repo.db.rows[i].ID == id {
			return i
		}
	}
	return -1
}

func (repo *itemRepository) QueryAllItems() []item.Item {
	repo.db.RLock()
	defer repo.db.RUnlock()

	items := make([]item.Item, len(repo.db.rows))
	copy(items, repo.db.rows)
	return items
}

func (repo *itemRepository) GetItemByID(id string) (item.Item, bool) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if i := repo.index(id); i >= 0 {
		return repo.db.rows[i], true
	}
	return item.Item{}, false
}

func (repo *itemRepository) CreateItem(ni item.NewItem) item.Item {
	it := item.Item{
		ID:          newID(),
		Title:       ni.Title,
		Description: ni.Description,
	}

	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.rows = append(repo.db.rows, it)
	return it
}

func (repo *itemRepository) UpdateItem(id string, patch item.Patch) (item.Item, bool) {
	repo.db.Lock()
	defer repo.db.Unlock()

	i := repo.index(id)
	if i < 0 {
		return item.Item{}, false
	}
	patch.Apply(&repo.db.rows[i])
	return repo.db.rows[i], true
}

func (repo *itemRepository) DeleteItem(id string) bool {
	repo.db.Lock()
	defer repo.db.Unlock()

	i := repo.index(id)
	if i < 0 {
		return false
	}
	repo.db.rows = append(repo.db.rows[:i], repo.db.rows[i+1:]...)
	return true
}
