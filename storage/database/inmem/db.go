package inmemdb

import (
	"sync"

	"github.com/geekplay/foro/core/item"
)

type (
	DB struct {
		item *itemTable
	}

	// itemTable keeps rows in insertion order.
	itemTable struct {
		sync.RWMutex
		rows []item.Item
	}
)

// Open returns an in-memory database holding a copy of the seed items.
func Open(seed ...item.Item) (*DB, error) {
	rows := make([]item.Item, len(seed))
	copy(rows, seed)
	db := &DB{
		item: &itemTable{rows: rows},
	}
	return db, nil
}
