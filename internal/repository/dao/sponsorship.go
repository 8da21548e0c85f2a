package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSponsorshipNotFound         = errors.New("sponsorship not found")
	ErrSponsorshipExceedsRemaining = errors.New("amount exceeds the item's remaining balance")
)

type Sponsorship struct {
	ID          uint    `gorm:"primaryKey"`
	ItemID      uint    `gorm:"not null;index"`
	SponsorName string  `gorm:"not null"`
	Amount      float64 `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type SponsorshipDAO struct {
	db *gorm.DB
}

func NewSponsorshipDAO(db *gorm.DB) *SponsorshipDAO {
	return &SponsorshipDAO{
		db: db,
	}
}

// InsertCapped appends a pledge only if the item's remaining balance covers
// it. The item row is locked for the duration of the transaction, so two
// concurrent sponsors cannot jointly overfund an item.
func (d *SponsorshipDAO) InsertCapped(ctx context.Context, accountID uint, sponsorship Sponsorship) (Sponsorship, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item Item
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("account_id = ?", accountID).
			First(&item, sponsorship.ItemID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}

			return err
		}

		var total float64
		err = tx.Model(&Sponsorship{}).
			Where("item_id = ?", item.ID).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error
		if err != nil {
			return err
		}

		remaining := item.Price - total
		if remaining < 0 {
			remaining = 0
		}
		if sponsorship.Amount > remaining {
			return ErrSponsorshipExceedsRemaining
		}

		return tx.Create(&sponsorship).Error
	})
	if err != nil {
		return Sponsorship{}, err
	}

	return sponsorship, nil
}

func (d *SponsorshipDAO) FindByID(ctx context.Context, accountID, id uint) (Sponsorship, error) {
	var sponsorship Sponsorship

	result := d.db.WithContext(ctx).
		Joins("JOIN items ON items.id = sponsorships.item_id").
		Where("items.account_id = ? AND sponsorships.id = ?", accountID, id).
		First(&sponsorship)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Sponsorship{}, ErrSponsorshipNotFound
		}

		return Sponsorship{}, result.Error
	}

	return sponsorship, nil
}

// FindByItemID lists pledges for one item in insertion order.
func (d *SponsorshipDAO) FindByItemID(ctx context.Context, itemID uint) ([]Sponsorship, error) {
	var sponsorships []Sponsorship

	result := d.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Order("id").
		Find(&sponsorships)
	if result.Error != nil {
		return nil, result.Error
	}

	return sponsorships, nil
}

// FindByAccountID lists every pledge against the account's items, for the
// dashboard join.
func (d *SponsorshipDAO) FindByAccountID(ctx context.Context, accountID uint) ([]Sponsorship, error) {
	var sponsorships []Sponsorship

	result := d.db.WithContext(ctx).
		Joins("JOIN items ON items.id = sponsorships.item_id").
		Where("items.account_id = ?", accountID).
		Order("sponsorships.id").
		Find(&sponsorships)
	if result.Error != nil {
		return nil, result.Error
	}

	return sponsorships, nil
}

// Update corrects sponsor name and amount. The funding cap is deliberately
// not re-checked here; an admin may need to raise an amount past the current
// remaining balance to fix an earlier mistake.
func (d *SponsorshipDAO) Update(ctx context.Context, accountID uint, sponsorship Sponsorship) (Sponsorship, error) {
	existing, err := d.FindByID(ctx, accountID, sponsorship.ID)
	if err != nil {
		return Sponsorship{}, err
	}

	result := d.db.WithContext(ctx).
		Model(&Sponsorship{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"sponsor_name": sponsorship.SponsorName,
			"amount":       sponsorship.Amount,
		})
	if result.Error != nil {
		return Sponsorship{}, result.Error
	}

	return d.FindByID(ctx, accountID, sponsorship.ID)
}

// CountByItemID reports how many pledges still reference an item.
func (d *SponsorshipDAO) CountByItemID(ctx context.Context, itemID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Sponsorship{}).
		Where("item_id = ?", itemID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
