package item

import "errors"

var ErrNotFound = errors.New("item not found")

type (
	// Repository is the mock item store. Absence is reported with a false flag, never an error.
	Repository interface {
		QueryAllItems() []Item
		GetItemByID(id string) (Item, bool)
		CreateItem(ni NewItem) Item
		UpdateItem(id string, patch Patch) (Item, bool)
		DeleteItem(id string) bool
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() []Item {
	return svc.repo.QueryAllItems()
}

func (svc *Service) GetByID(id string) (Item, error) {
	it, ok := svc.repo.GetItemByID(id)
	if !ok {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (svc *Service) Create(ni NewItem) (Item, error) {
	if err := ni.Validate(); err != nil {
		return Item{}, err
	}
	return svc.repo.CreateItem(ni), nil
}

func (svc *Service) Update(id string, patch Patch) (Item, error) {
	it, ok := svc.repo.UpdateItem(id, patch)
	if !ok {
		return Item{}, ErrNotFound
	}
	return it, nil
}

func (svc *Service) Delete(id string) error {
	if !svc.repo.DeleteItem(id) {
		return ErrNotFound
	}
	return nil
}
