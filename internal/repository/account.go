package repository

import (
	"context"
	"fmt"

	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/repository/dao"
)

var (
	ErrAccountExists   = dao.ErrAccountExists
	ErrAccountNotFound = dao.ErrAccountNotFound
)

type AccountDAO interface {
	Insert(ctx context.Context, account dao.Account) (dao.Account, error)
	FindByID(ctx context.Context, id uint) (dao.Account, error)
	FindByUsername(ctx context.Context, username string) (dao.Account, error)
	FindAll(ctx context.Context) ([]dao.Account, error)
}

// Revealer turns stored credential tokens back into plain text. An invalid
// token reveals as "".
type Revealer interface {
	Reveal(token string) string
}

// AccountRepository maps stored accounts into the domain type, revealing the
// obscured credentials on the way out so callers only ever compare plain
// text.
type AccountRepository struct {
	dao      AccountDAO
	revealer Revealer
}

func NewAccountRepository(dao AccountDAO, revealer Revealer) *AccountRepository {
	return &AccountRepository{
		dao:      dao,
		revealer: revealer,
	}
}

func (r *AccountRepository) FindByID(ctx context.Context, id uint) (domain.Account, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (domain.Account, error) {
	found, err := r.dao.FindByUsername(ctx, username)
	if err != nil {
		return domain.Account{}, fmt.Errorf("r.dao.FindByUsername -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]domain.Account, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	accounts := make([]domain.Account, 0, len(found))
	for _, a := range found {
		accounts = append(accounts, r.daoToDomain(a))
	}

	return accounts, nil
}

func (r *AccountRepository) daoToDomain(a dao.Account) domain.Account {
	return domain.Account{
		ID:          a.ID,
		Username:    a.Username,
		Password:    r.revealer.Reveal(a.Password),
		Passcode:    r.revealer.Reveal(a.Passcode),
		DisplayName: a.DisplayName,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
