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
	ErrSponsorshipNotFound    = repository.ErrSponsorshipNotFound
	ErrEmptySponsorName       = errors.New("sponsor name must not be empty")
	ErrNonPositiveAmount      = errors.New("amount must be greater than zero")
	ErrAmountExceedsRemaining = repository.ErrSponsorshipExceedsRemaining
)

type SponsorshipRepository interface {
	CreateCapped(ctx context.Context, accountID uint, sponsorship domain.Sponsorship) (domain.Sponsorship, error)
	FindByItemID(ctx context.Context, itemID uint) ([]domain.Sponsorship, error)
	Update(ctx context.Context, accountID uint, sponsorship domain.Sponsorship) (domain.Sponsorship, error)
}

type SponsorshipItemRepository interface {
	FindByID(ctx context.Context, accountID, id uint) (domain.Item, error)
}

// SponsorshipService is the pledge ledger. Creation enforces the
// non-overfunding invariant; the cap itself is checked at the persistence
// boundary under a row lock, so concurrent sponsors cannot combine past an
// item's price.
type SponsorshipService struct {
	repo     SponsorshipRepository
	itemRepo SponsorshipItemRepository
}

func NewSponsorshipService(repo SponsorshipRepository, itemRepo SponsorshipItemRepository) *SponsorshipService {
	return &SponsorshipService{
		repo:     repo,
		itemRepo: itemRepo,
	}
}

func (s *SponsorshipService) Create(ctx context.Context, accountID, itemID uint, sponsorName string, amount float64) (domain.Sponsorship, error) {
	if strings.TrimSpace(sponsorName) == "" {
		return domain.Sponsorship{}, ErrEmptySponsorName
	}
	if amount <= 0 {
		return domain.Sponsorship{}, ErrNonPositiveAmount
	}

	created, err := s.repo.CreateCapped(ctx, accountID, domain.Sponsorship{
		ItemID:      itemID,
		SponsorName: sponsorName,
		Amount:      amount,
	})
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domain.Sponsorship{}, ErrItemNotFound
		}
		if errors.Is(err, repository.ErrSponsorshipExceedsRemaining) {
			return domain.Sponsorship{}, ErrAmountExceedsRemaining
		}

		return domain.Sponsorship{}, fmt.Errorf("s.repo.CreateCapped -> %w", err)
	}

	return created, nil
}

// Update corrects a pledge's sponsor name and amount. The funding cap is not
// re-validated: an admin fixing a miscapped entry may legitimately push the
// sum past the item's price.
func (s *SponsorshipService) Update(ctx context.Context, accountID, id uint, sponsorName string, amount float64) (domain.Sponsorship, error) {
	if strings.TrimSpace(sponsorName) == "" {
		return domain.Sponsorship{}, ErrEmptySponsorName
	}
	if amount <= 0 {
		return domain.Sponsorship{}, ErrNonPositiveAmount
	}

	updated, err := s.repo.Update(ctx, accountID, domain.Sponsorship{
		ID:          id,
		SponsorName: sponsorName,
		Amount:      amount,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSponsorshipNotFound) {
			return domain.Sponsorship{}, ErrSponsorshipNotFound
		}

		return domain.Sponsorship{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ListByItem returns the item's pledges in insertion order. The item lookup
// doubles as the scope check.
func (s *SponsorshipService) ListByItem(ctx context.Context, accountID, itemID uint) ([]domain.Sponsorship, error) {
	item, err := s.itemRepo.FindByID(ctx, accountID, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}

		return nil, fmt.Errorf("s.itemRepo.FindByID -> %w", err)
	}

	sponsorships, err := s.repo.FindByItemID(ctx, item.ID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByItemID -> %w", err)
	}

	return sponsorships, nil
}
