package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sponsorapp/sponsor-api/internal/config"
	"github.com/sponsorapp/sponsor-api/internal/pkg/secrets"
	"github.com/sponsorapp/sponsor-api/internal/repository/dao"
)

// SeedAccounts inserts the configured admin accounts if they are not present
// yet. Password and passcode are obscured before they hit the store; accounts
// already in the store are left untouched.
func SeedAccounts(db *gorm.DB, box *secrets.Box, accounts []config.SeedAccount) error {
	ctx := context.Background()
	accountDAO := dao.NewAccountDAO(db)

	for _, a := range accounts {
		_, err := accountDAO.FindByUsername(ctx, a.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, dao.ErrAccountNotFound) {
			return fmt.Errorf("accountDAO.FindByUsername -> %w", err)
		}

		obscuredPassword, err := box.Obscure(a.Password)
		if err != nil {
			return fmt.Errorf("box.Obscure -> %w", err)
		}

		obscuredPasscode, err := box.Obscure(a.Passcode)
		if err != nil {
			return fmt.Errorf("box.Obscure -> %w", err)
		}

		_, err = accountDAO.Insert(ctx, dao.Account{
			Username:    a.Username,
			Password:    obscuredPassword,
			Passcode:    obscuredPasscode,
			DisplayName: a.DisplayName,
		})
		if err != nil {
			return fmt.Errorf("accountDAO.Insert -> %w", err)
		}
	}

	return nil
}
