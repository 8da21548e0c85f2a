package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrAccountExists   = errors.New("account already exists")
	ErrAccountNotFound = errors.New("account not found")
)

// Account stores Password and Passcode obscured; comparisons happen after
// reveal, never on the stored tokens.
type Account struct {
	ID uint `gorm:"primaryKey"`

	Username    string `gorm:"unique;not null"`
	Password    string `gorm:"not null"`
	Passcode    string `gorm:"not null"`
	DisplayName string `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AccountDAO struct {
	db *gorm.DB
}

func NewAccountDAO(db *gorm.DB) *AccountDAO {
	return &AccountDAO{
		db: db,
	}
}

func (d *AccountDAO) Insert(ctx context.Context, account Account) (Account, error) {
	result := d.db.WithContext(ctx).Create(&account)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Account{}, ErrAccountExists
		}

		return Account{}, result.Error
	}

	return account, nil
}

func (d *AccountDAO) FindByID(ctx context.Context, id uint) (Account, error) {
	var account Account

	result := d.db.WithContext(ctx).First(&account, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Account{}, ErrAccountNotFound
		}

		return Account{}, result.Error
	}

	return account, nil
}

func (d *AccountDAO) FindByUsername(ctx context.Context, username string) (Account, error) {
	var account Account

	result := d.db.WithContext(ctx).First(&account, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Account{}, ErrAccountNotFound
		}

		return Account{}, result.Error
	}

	return account, nil
}

// FindAll returns every account. Passcode lookup has to scan because the
// stored tokens are non-deterministic.
func (d *AccountDAO) FindAll(ctx context.Context) ([]Account, error) {
	var accounts []Account

	result := d.db.WithContext(ctx).Order("id").Find(&accounts)
	if result.Error != nil {
		return nil, result.Error
	}

	return accounts, nil
}
