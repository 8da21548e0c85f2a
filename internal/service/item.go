package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/repository"
)

var (
	ErrItemNotFound     = repository.ErrItemNotFound
	ErrEmptyItemName    = errors.New("item name must not be empty")
	ErrNonPositivePrice = errors.New("item price must be greater than zero")
)

type ItemRepository interface {
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	FindByID(ctx context.Context, accountID, id uint) (domain.Item, error)
	FindByAccountID(ctx context.Context, accountID uint) ([]domain.Item, error)
	Update(ctx context.Context, item domain.Item) (domain.Item, error)
	DeleteCascade(ctx context.Context, accountID, id uint) error
}

type ItemSponsorshipRepository interface {
	FindByAccountID(ctx context.Context, accountID uint) ([]domain.Sponsorship, error)
}

// ItemService is the admin-owned item registry. Every operation is scoped to
// the acting account.
type ItemService struct {
	repo            ItemRepository
	sponsorshipRepo ItemSponsorshipRepository
}

func NewItemService(repo ItemRepository, sponsorshipRepo ItemSponsorshipRepository) *ItemService {
	return &ItemService{
		repo:            repo,
		sponsorshipRepo: sponsorshipRepo,
	}
}

func (s *ItemService) Create(ctx context.Context, accountID uint, name string, price float64, imageRef string) (domain.Item, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Item{}, ErrEmptyItemName
	}
	if price <= 0 {
		return domain.Item{}, ErrNonPositivePrice
	}

	created, err := s.repo.Create(ctx, domain.Item{
		AccountID: accountID,
		Name:      name,
		Price:     price,
		ImageRef:  imageRef,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Update replaces the mutable fields of an item. A miss surfaces as
// ErrItemNotFound rather than a silent no-op.
func (s *ItemService) Update(ctx context.Context, accountID, id uint, name string, price float64, imageRef string) (domain.Item, error) {
	if strings.TrimSpace(name) == "" {
		return domain.Item{}, ErrEmptyItemName
	}
	if price <= 0 {
		return domain.Item{}, ErrNonPositivePrice
	}

	updated, err := s.repo.Update(ctx, domain.Item{
		ID:        id,
		AccountID: accountID,
		Name:      name,
		Price:     price,
		ImageRef:  imageRef,
	})
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domain.Item{}, ErrItemNotFound
		}

		return domain.Item{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Delete removes an item and all its sponsorships as one unit.
func (s *ItemService) Delete(ctx context.Context, accountID, id uint) error {
	if err := s.repo.DeleteCascade(ctx, accountID, id); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return ErrItemNotFound
		}

		return fmt.Errorf("s.repo.DeleteCascade -> %w", err)
	}

	return nil
}

func (s *ItemService) Get(ctx context.Context, accountID, id uint) (domain.Item, error) {
	item, err := s.repo.FindByID(ctx, accountID, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domain.Item{}, ErrItemNotFound
		}

		return domain.Item{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return item, nil
}

// Dashboard joins the account's items with their pledges and computes the
// funding figures on read.
func (s *ItemService) Dashboard(ctx context.Context, accountID uint) ([]domain.ItemFunding, error) {
	items, err := s.repo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByAccountID -> %w", err)
	}

	sponsorships, err := s.sponsorshipRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("s.sponsorshipRepo.FindByAccountID -> %w", err)
	}

	fundings := make([]domain.ItemFunding, 0, len(items))
	for _, item := range items {
		fundings = append(fundings, domain.NewItemFunding(item, sponsorships))
	}

	return fundings, nil
}
