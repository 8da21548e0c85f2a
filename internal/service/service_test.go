package service

import (
	"context"
	"math"

	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/repository"
)

// In-memory repositories mirroring the store semantics, including the capped
// insert and the cascading delete.

type memAccountRepo struct {
	accounts []domain.Account
}

func (m *memAccountRepo) FindByUsername(_ context.Context, username string) (domain.Account, error) {
	for _, a := range m.accounts {
		if a.Username == username {
			return a, nil
		}
	}

	return domain.Account{}, repository.ErrAccountNotFound
}

func (m *memAccountRepo) FindAll(_ context.Context) ([]domain.Account, error) {
	return m.accounts, nil
}

type memStore struct {
	items        map[uint]domain.Item
	sponsorships []domain.Sponsorship
	nextItemID   uint
	nextSpID     uint
}

func newMemStore() *memStore {
	return &memStore{
		items:      make(map[uint]domain.Item),
		nextItemID: 1,
		nextSpID:   1,
	}
}

type memItemRepo struct {
	store *memStore
}

func (m *memItemRepo) Create(_ context.Context, item domain.Item) (domain.Item, error) {
	item.ID = m.store.nextItemID
	m.store.nextItemID++
	m.store.items[item.ID] = item

	return item, nil
}

func (m *memItemRepo) FindByID(_ context.Context, accountID, id uint) (domain.Item, error) {
	item, ok := m.store.items[id]
	if !ok || item.AccountID != accountID {
		return domain.Item{}, repository.ErrItemNotFound
	}

	return item, nil
}

func (m *memItemRepo) FindByAccountID(_ context.Context, accountID uint) ([]domain.Item, error) {
	var items []domain.Item
	for id := uint(1); id < m.store.nextItemID; id++ {
		if item, ok := m.store.items[id]; ok && item.AccountID == accountID {
			items = append(items, item)
		}
	}

	return items, nil
}

func (m *memItemRepo) Update(_ context.Context, item domain.Item) (domain.Item, error) {
	existing, ok := m.store.items[item.ID]
	if !ok || existing.AccountID != item.AccountID {
		return domain.Item{}, repository.ErrItemNotFound
	}

	existing.Name = item.Name
	existing.Price = item.Price
	existing.ImageRef = item.ImageRef
	m.store.items[item.ID] = existing

	return existing, nil
}

func (m *memItemRepo) DeleteCascade(_ context.Context, accountID, id uint) error {
	item, ok := m.store.items[id]
	if !ok || item.AccountID != accountID {
		return repository.ErrItemNotFound
	}

	delete(m.store.items, id)

	kept := m.store.sponsorships[:0]
	for _, s := range m.store.sponsorships {
		if s.ItemID != id {
			kept = append(kept, s)
		}
	}
	m.store.sponsorships = kept

	return nil
}

type memSponsorshipRepo struct {
	store *memStore
}

func (m *memSponsorshipRepo) CreateCapped(_ context.Context, accountID uint, sponsorship domain.Sponsorship) (domain.Sponsorship, error) {
	item, ok := m.store.items[sponsorship.ItemID]
	if !ok || item.AccountID != accountID {
		return domain.Sponsorship{}, repository.ErrItemNotFound
	}

	var total float64
	for _, s := range m.store.sponsorships {
		if s.ItemID == item.ID {
			total += s.Amount
		}
	}
	if sponsorship.Amount > math.Max(0, item.Price-total) {
		return domain.Sponsorship{}, repository.ErrSponsorshipExceedsRemaining
	}

	sponsorship.ID = m.store.nextSpID
	m.store.nextSpID++
	m.store.sponsorships = append(m.store.sponsorships, sponsorship)

	return sponsorship, nil
}

func (m *memSponsorshipRepo) FindByItemID(_ context.Context, itemID uint) ([]domain.Sponsorship, error) {
	var sponsorships []domain.Sponsorship
	for _, s := range m.store.sponsorships {
		if s.ItemID == itemID {
			sponsorships = append(sponsorships, s)
		}
	}

	return sponsorships, nil
}

func (m *memSponsorshipRepo) FindByAccountID(_ context.Context, accountID uint) ([]domain.Sponsorship, error) {
	var sponsorships []domain.Sponsorship
	for _, s := range m.store.sponsorships {
		if item, ok := m.store.items[s.ItemID]; ok && item.AccountID == accountID {
			sponsorships = append(sponsorships, s)
		}
	}

	return sponsorships, nil
}

func (m *memSponsorshipRepo) Update(_ context.Context, accountID uint, sponsorship domain.Sponsorship) (domain.Sponsorship, error) {
	for i, s := range m.store.sponsorships {
		item, ok := m.store.items[s.ItemID]
		if s.ID == sponsorship.ID && ok && item.AccountID == accountID {
			m.store.sponsorships[i].SponsorName = sponsorship.SponsorName
			m.store.sponsorships[i].Amount = sponsorship.Amount

			return m.store.sponsorships[i], nil
		}
	}

	return domain.Sponsorship{}, repository.ErrSponsorshipNotFound
}

func newTestServices() (*ItemService, *SponsorshipService, *memStore) {
	store := newMemStore()
	itemRepo := &memItemRepo{store: store}
	sponsorshipRepo := &memSponsorshipRepo{store: store}

	return NewItemService(itemRepo, sponsorshipRepo),
		NewSponsorshipService(sponsorshipRepo, itemRepo),
		store
}
