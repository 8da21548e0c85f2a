package repository

import (
	"context"
	"fmt"

	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/repository/dao"
)

var ErrItemNotFound = dao.ErrItemNotFound

type ItemDAO interface {
	Insert(ctx context.Context, item dao.Item) (dao.Item, error)
	FindByID(ctx context.Context, accountID, id uint) (dao.Item, error)
	FindByAccountID(ctx context.Context, accountID uint) ([]dao.Item, error)
	Update(ctx context.Context, item dao.Item) (dao.Item, error)
	DeleteCascade(ctx context.Context, accountID, id uint) error
}

type ItemRepository struct {
	dao ItemDAO
}

func NewItemRepository(dao ItemDAO) *ItemRepository {
	return &ItemRepository{
		dao: dao,
	}
}

func (r *ItemRepository) Create(ctx context.Context, item domain.Item) (domain.Item, error) {
	created, err := r.dao.Insert(ctx, dao.Item{
		AccountID: item.AccountID,
		Name:      item.Name,
		Price:     item.Price,
		ImageRef:  item.ImageRef,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ItemRepository) FindByID(ctx context.Context, accountID, id uint) (domain.Item, error) {
	found, err := r.dao.FindByID(ctx, accountID, id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ItemRepository) FindByAccountID(ctx context.Context, accountID uint) ([]domain.Item, error) {
	found, err := r.dao.FindByAccountID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByAccountID -> %w", err)
	}

	items := make([]domain.Item, 0, len(found))
	for _, i := range found {
		items = append(items, r.daoToDomain(i))
	}

	return items, nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) (domain.Item, error) {
	updated, err := r.dao.Update(ctx, dao.Item{
		ID:        item.ID,
		AccountID: item.AccountID,
		Name:      item.Name,
		Price:     item.Price,
		ImageRef:  item.ImageRef,
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ItemRepository) DeleteCascade(ctx context.Context, accountID, id uint) error {
	if err := r.dao.DeleteCascade(ctx, accountID, id); err != nil {
		return fmt.Errorf("r.dao.DeleteCascade -> %w", err)
	}

	return nil
}

func (r *ItemRepository) daoToDomain(i dao.Item) domain.Item {
	return domain.Item{
		ID:        i.ID,
		AccountID: i.AccountID,
		Name:      i.Name,
		Price:     i.Price,
		ImageRef:  i.ImageRef,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}
