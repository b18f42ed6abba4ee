package item

import (
	"fmt"

	"github.com/geekplay/foro/core"
	"github.com/geekplay/foro/core/form"
)

type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// NewItem contains information needed to create a new Item.
type NewItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func (ni *NewItem) Validate() error {
	ni.Title = core.CleanString(ni.Title)
	if res := form.Required(ni.Title); res.Failed() {
		return core.NewValidationError(nil, core.FieldError{Field: "title", Error: res.Message()})
	}
	return nil
}

// Patch holds the fields to change on an existing Item. Nil fields are left untouched.
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (p Patch) Apply(it *Item) {
	if p.Title != nil {
		it.Title = *p.Title
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
}

// DefaultItems returns the items a fresh mock store is seeded with.
func DefaultItems() []Item {
	items := make([]Item, 0, 3)
	for i := 1; i <= 3; i++ {
		items = append(items, Item{
			ID:          fmt.Sprint(i),
			Title:       fmt.Sprintf("Item %d", i),
			Description: fmt.Sprintf("Descripción del item %d", i),
		})
	}
	return items
}
