package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sponsorapp/sponsor-api/internal/domain"
	"github.com/sponsorapp/sponsor-api/internal/repository"
)

// ErrInvalidCredentials is deliberately generic: callers never learn whether
// the username was unknown or the secret was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthAccountRepository interface {
	FindByUsername(ctx context.Context, username string) (domain.Account, error)
	FindAll(ctx context.Context) ([]domain.Account, error)
}

// AuthService resolves submitted credentials to exactly one account and a
// role. No lockout, no attempt counting; the trust model is a shared secret
// among a small group.
type AuthService struct {
	repo AuthAccountRepository
}

func NewAuthService(repo AuthAccountRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// LoginVisitor succeeds iff exactly one account's revealed passcode equals
// the input. The scan is over revealed values; stored tokens are never
// compared directly.
func (s *AuthService) LoginVisitor(ctx context.Context, passcode string) (domain.Account, error) {
	if passcode == "" {
		return domain.Account{}, ErrInvalidCredentials
	}

	accounts, err := s.repo.FindAll(ctx)
	if err != nil {
		return domain.Account{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	var matched []domain.Account
	for _, account := range accounts {
		if account.Passcode != "" && account.Passcode == passcode {
			matched = append(matched, account)
		}
	}

	if len(matched) != 1 {
		return domain.Account{}, ErrInvalidCredentials
	}

	return matched[0], nil
}

// LoginAdmin succeeds iff an account with the username exists and its
// revealed password equals the input.
func (s *AuthService) LoginAdmin(ctx context.Context, username, password string) (domain.Account, error) {
	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domain.Account{}, ErrInvalidCredentials
		}

		return domain.Account{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if account.Password == "" || account.Password != password {
		return domain.Account{}, ErrInvalidCredentials
	}

	return account, nil
}
