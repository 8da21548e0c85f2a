package repository

import (
	"context"
	"fmt"

	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/repository/dao"
)

var (
	ErrSponsorshipNotFound         = dao.ErrSponsorshipNotFound
	ErrSponsorshipExceedsRemaining = dao.ErrSponsorshipExceedsRemaining
)

type SponsorshipDAO interface {
	InsertCapped(ctx context.Context, accountID uint, sponsorship dao.Sponsorship) (dao.Sponsorship, error)
	FindByID(ctx context.Context, accountID, id uint) (dao.Sponsorship, error)
	FindByItemID(ctx context.Context, itemID uint) ([]dao.Sponsorship, error)
	FindByAccountID(ctx context.Context, accountID uint) ([]dao.Sponsorship, error)
	Update(ctx context.Context, accountID uint, sponsorship dao.Sponsorship) (dao.Sponsorship, error)
}

type SponsorshipRepository struct {
	dao SponsorshipDAO
}

func NewSponsorshipRepository(dao SponsorshipDAO) *SponsorshipRepository {
	return &SponsorshipRepository{
		dao: dao,
	}
}

// CreateCapped appends a pledge, enforcing the remaining-balance cap
// atomically at the store.
func (r *SponsorshipRepository) CreateCapped(ctx context.Context, accountID uint, sponsorship domain.Sponsorship) (domain.Sponsorship, error) {
	created, err := r.dao.InsertCapped(ctx, accountID, dao.Sponsorship{
		ItemID:      sponsorship.ItemID,
		SponsorName: sponsorship.SponsorName,
		Amount:      sponsorship.Amount,
	})
	if err != nil {
		return domain.Sponsorship{}, fmt.Errorf("r.dao.InsertCapped -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SponsorshipRepository) FindByID(ctx context.Context, accountID, id uint) (domain.Sponsorship, error) {
	found, err := r.dao.FindByID(ctx, accountID, id)
	if err != nil {
		return domain.Sponsorship{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SponsorshipRepository) FindByItemID(ctx context.Context, itemID uint) ([]domain.Sponsorship, error) {
	found, err := r.dao.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByItemID -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *SponsorshipRepository) FindByAccountID(ctx context.Context, accountID uint) ([]domain.Sponsorship, error) {
	found, err := r.dao.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByAccountID -> %w", err)
	}

	return r.daoToDomainSlice(found), nil
}

func (r *SponsorshipRepository) Update(ctx context.Context, accountID uint, sponsorship domain.Sponsorship) (domain.Sponsorship, error) {
	updated, err := r.dao.Update(ctx, accountID, dao.Sponsorship{
		ID:          sponsorship.ID,
		SponsorName: sponsorship.SponsorName,
		Amount:      sponsorship.Amount,
	})
	if err != nil {
		return domain.Sponsorship{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SponsorshipRepository) daoToDomain(s dao.Sponsorship) domain.Sponsorship {
	return domain.Sponsorship{
		ID:          s.ID,
		ItemID:      s.ItemID,
		SponsorName: s.SponsorName,
		Amount:      s.Amount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func (r *SponsorshipRepository) daoToDomainSlice(found []dao.Sponsorship) []domain.Sponsorship {
	sponsorships := make([]domain.Sponsorship, 0, len(found))
	for _, s := range found {
		sponsorships = append(sponsorships, r.daoToDomain(s))
	}

	return sponsorships
}
