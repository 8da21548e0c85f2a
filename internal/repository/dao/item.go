package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrItemNotFound = errors.New("item not found")

type Item struct {
	ID        uint    `gorm:"primaryKey"`
	AccountID uint    `gorm:"not null;index"`
	Name      string  `gorm:"not null"`
	Price     float64 `gorm:"not null"`
	ImageRef  string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ItemDAO struct {
	db *gorm.DB
}

func NewItemDAO(db *gorm.DB) *ItemDAO {
	return &ItemDAO{
		db: db,
	}
}

func (d *ItemDAO) Insert(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).Create(&item)
	if result.Error != nil {
		return Item{}, result.Error
	}

	return item, nil
}

// FindByID is account-scoped: an id owned by another account reads as not
// found.
func (d *ItemDAO) FindByID(ctx context.Context, accountID, id uint) (Item, error) {
	var item Item

	result := d.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&item, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Item{}, ErrItemNotFound
		}

		return Item{}, result.Error
	}

	return item, nil
}

func (d *ItemDAO) FindByAccountID(ctx context.Context, accountID uint) ([]Item, error) {
	var items []Item

	result := d.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}

	return items, nil
}

// Update replaces the mutable fields of an item in scope. The id and account
// scope never change.
func (d *ItemDAO) Update(ctx context.Context, item Item) (Item, error) {
	result := d.db.WithContext(ctx).
		Model(&Item{}).
		Where("id = ? AND account_id = ?", item.ID, item.AccountID).
		Updates(map[string]interface{}{
			"name":      item.Name,
			"price":     item.Price,
			"image_ref": item.ImageRef,
		})
	if result.Error != nil {
		return Item{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Item{}, ErrItemNotFound
	}

	return d.FindByID(ctx, item.AccountID, item.ID)
}

// DeleteCascade removes an item and every sponsorship referencing it inside
// one transaction, so a failed cascade leaves the item in place.
func (d *ItemDAO) DeleteCascade(ctx context.Context, accountID, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item Item
		if err := tx.Where("account_id = ?", accountID).First(&item, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}

			return err
		}

		if err := tx.Where("item_id = ?", item.ID).Delete(&Sponsorship{}).Error; err != nil {
			return err
		}

		return tx.Delete(&item).Error
	})
}
