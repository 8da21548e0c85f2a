package dao

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB starts a disposable Postgres container and returns a migrated
// connection. Skipped with -short.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping dockertest-backed tests in short mode")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=sponsorapp_test",
			"listen_addresses = '*'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	dsn := fmt.Sprintf("host=localhost port=%v user=postgres password=secret dbname=sponsorapp_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	var db *gorm.DB
	err = pool.Retry(func() error {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func mustInsertItem(t *testing.T, d *ItemDAO, accountID uint, name string, price float64) Item {
	t.Helper()

	item, err := d.Insert(context.Background(), Item{
		AccountID: accountID,
		Name:      name,
		Price:     price,
	})
	require.NoError(t, err)

	return item
}

func TestAccountDAO(t *testing.T) {
	db := openTestDB(t)
	d := NewAccountDAO(db)
	ctx := context.Background()

	created, err := d.Insert(ctx, Account{
		Username:    "alice",
		Password:    "obscured-password",
		Passcode:    "obscured-passcode",
		DisplayName: "Alice",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	t.Run("duplicate username maps to ErrAccountExists", func(t *testing.T) {
		_, err := d.Insert(ctx, Account{
			Username:    "alice",
			Password:    "x",
			Passcode:    "y",
			DisplayName: "Imposter",
		})
		assert.ErrorIs(t, err, ErrAccountExists)
	})

	t.Run("find by username", func(t *testing.T) {
		found, err := d.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)

		_, err = d.FindByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("find all", func(t *testing.T) {
		_, err := d.Insert(ctx, Account{Username: "bob", Password: "p", Passcode: "c", DisplayName: "Bob"})
		require.NoError(t, err)

		accounts, err := d.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, accounts, 2)
	})
}

func TestItemDAO_ScopingAndUpdate(t *testing.T) {
	db := openTestDB(t)
	d := NewItemDAO(db)
	ctx := context.Background()

	item := mustInsertItem(t, d, 1, "Grill", 100)

	t.Run("scoped find", func(t *testing.T) {
		found, err := d.FindByID(ctx, 1, item.ID)
		require.NoError(t, err)
		assert.Equal(t, "Grill", found.Name)

		_, err = d.FindByID(ctx, 2, item.ID)
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("update in scope", func(t *testing.T) {
		updated, err := d.Update(ctx, Item{ID: item.ID, AccountID: 1, Name: "Big Grill", Price: 150, ImageRef: "https://example.com/g.jpg"})
		require.NoError(t, err)
		assert.Equal(t, "Big Grill", updated.Name)
		assert.InDelta(t, 150, updated.Price, 0.001)
	})

	t.Run("update out of scope is not found", func(t *testing.T) {
		_, err := d.Update(ctx, Item{ID: item.ID, AccountID: 2, Name: "Hijack", Price: 1})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestItemDAO_DeleteCascade(t *testing.T) {
	db := openTestDB(t)
	itemDAO := NewItemDAO(db)
	sponsorshipDAO := NewSponsorshipDAO(db)
	ctx := context.Background()

	item := mustInsertItem(t, itemDAO, 1, "Grill", 100)
	for _, amount := range []float64{40, 35} {
		_, err := sponsorshipDAO.InsertCapped(ctx, 1, Sponsorship{ItemID: item.ID, SponsorName: "Dana", Amount: amount})
		require.NoError(t, err)
	}

	require.NoError(t, itemDAO.DeleteCascade(ctx, 1, item.ID))

	_, err := itemDAO.FindByID(ctx, 1, item.ID)
	assert.ErrorIs(t, err, ErrItemNotFound)

	count, err := sponsorshipDAO.CountByItemID(ctx, item.ID)
	require.NoError(t, err)
	assert.Zero(t, count, "no sponsorship may reference a deleted item")

	assert.ErrorIs(t, itemDAO.DeleteCascade(ctx, 1, item.ID), ErrItemNotFound)
}

func TestSponsorshipDAO_InsertCapped(t *testing.T) {
	db := openTestDB(t)
	itemDAO := NewItemDAO(db)
	d := NewSponsorshipDAO(db)
	ctx := context.Background()

	item := mustInsertItem(t, itemDAO, 1, "Grill", 100)

	_, err := d.InsertCapped(ctx, 1, Sponsorship{ItemID: item.ID, SponsorName: "Dana", Amount: 40})
	require.NoError(t, err)
	_, err = d.InsertCapped(ctx, 1, Sponsorship{ItemID: item.ID, SponsorName: "Eli", Amount: 35})
	require.NoError(t, err)

	t.Run("pledge above remaining is rejected", func(t *testing.T) {
		_, err := d.InsertCapped(ctx, 1, Sponsorship{ItemID: item.ID, SponsorName: "Fay", Amount: 30})
		assert.ErrorIs(t, err, ErrSponsorshipExceedsRemaining)

		count, err := d.CountByItemID(ctx, item.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})

	t.Run("exact remaining fully funds", func(t *testing.T) {
		created, err := d.InsertCapped(ctx, 1, Sponsorship{ItemID: item.ID, SponsorName: "Fay", Amount: 25})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)

		_, err = d.InsertCapped(ctx, 1, Sponsorship{ItemID: item.ID, SponsorName: "Gus", Amount: 0.01})
		assert.ErrorIs(t, err, ErrSponsorshipExceedsRemaining)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := d.InsertCapped(ctx, 1, Sponsorship{ItemID: 9999, SponsorName: "Dana", Amount: 1})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("item out of scope", func(t *testing.T) {
		_, err := d.InsertCapped(ctx, 2, Sponsorship{ItemID: item.ID, SponsorName: "Dana", Amount: 1})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

// Concurrent sponsors must never jointly overfund: the row lock serializes
// the remaining-balance check.
func TestSponsorshipDAO_InsertCapped_Concurrent(t *testing.T) {
	db := openTestDB(t)
	itemDAO := NewItemDAO(db)
	d := NewSponsorshipDAO(db)
	ctx := context.Background()

	item := mustInsertItem(t, itemDAO, 1, "Grill", 100)

	const sponsors = 8
	var wg sync.WaitGroup
	errs := make([]error, sponsors)

	for i := 0; i < sponsors; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = d.InsertCapped(ctx, 1, Sponsorship{
				ItemID:      item.ID,
				SponsorName: fmt.Sprintf("sponsor-%d", i),
				Amount:      60,
			})
		}(i)
	}
	wg.Wait()

	var accepted int
	for _, err := range errs {
		if err == nil {
			accepted++
		} else {
			assert.ErrorIs(t, err, ErrSponsorshipExceedsRemaining)
		}
	}
	assert.Equal(t, 1, accepted, "only one 60 pledge fits a 100 item")
}

func TestSponsorshipDAO_UpdateAndListing(t *testing.T) {
	db := openTestDB(t)
	itemDAO := NewItemDAO(db)
	d := NewSponsorshipDAO(db)
	ctx := context.Background()

	item := mustInsertItem(t, itemDAO, 1, "Grill", 100)
	created, err := d.InsertCapped(ctx, 1, Sponsorship{ItemID: item.ID, SponsorName: "Dana", Amount: 40})
	require.NoError(t, err)

	t.Run("update skips the funding cap", func(t *testing.T) {
		updated, err := d.Update(ctx, 1, Sponsorship{ID: created.ID, SponsorName: "Dana Smith", Amount: 500})
		require.NoError(t, err)
		assert.Equal(t, "Dana Smith", updated.SponsorName)
		assert.InDelta(t, 500, updated.Amount, 0.001)
	})

	t.Run("update out of scope", func(t *testing.T) {
		_, err := d.Update(ctx, 2, Sponsorship{ID: created.ID, SponsorName: "Hijack", Amount: 1})
		assert.ErrorIs(t, err, ErrSponsorshipNotFound)
	})

	t.Run("listing preserves insertion order", func(t *testing.T) {
		second := mustInsertItem(t, itemDAO, 1, "Tent", 50)
		names := []string{"Eli", "Fay", "Gus"}
		for _, name := range names {
			_, err := d.InsertCapped(ctx, 1, Sponsorship{ItemID: second.ID, SponsorName: name, Amount: 10})
			require.NoError(t, err)
		}

		listed, err := d.FindByItemID(ctx, second.ID)
		require.NoError(t, err)
		require.Len(t, listed, len(names))
		for i, s := range listed {
			assert.Equal(t, names[i], s.SponsorName)
		}
	})

	t.Run("account-wide listing joins through items", func(t *testing.T) {
		all, err := d.FindByAccountID(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, all, 4)

		other, err := d.FindByAccountID(ctx, 2)
		require.NoError(t, err)
		assert.Empty(t, other)
	})
}
