package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	bolt "go.etcd.io/bbolt"
)

func TestOrderBolt_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "store.db"))

	r := infraRepo.NewOrderBoltRepository(store)

	now := time.Now().Truncate(time.Second)
	want := []model.Order{
		{
			ID:           "ORD-ABC123-XYZ999",
			Items:        []model.CartItem{{Name: "Matcha Cupcake", Price: 150, Quantity: 2}},
			Subtotal:     300,
			Shipping:     20,
			DeliveryFee:  20,
			DeliveryType: "Express Delivery",
			Total:        320,
			Date:         now,
			Status:       model.OrderStatusPending,
			Timestamp:    now.UnixMilli(),
		},
	}

	assert.NoError(t, r.Save(ctx, want))

	got, err := r.Load(ctx)
	assert.NoError(t, err)
	if !assert.Equal(t, 1, len(got)) {
		return
	}

	assert.Equal(t, want[0].ID, got[0].ID)
	assert.Equal(t, want[0].Items, got[0].Items)
	assert.Equal(t, want[0].Total, got[0].Total)
	assert.Equal(t, want[0].Status, got[0].Status)
	assert.Equal(t, want[0].Timestamp, got[0].Timestamp)
	assert.True(t, want[0].Date.Equal(got[0].Date))
}

func TestOrderBolt_CorruptPayloadTreatedAsEmpty(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "store.db"))

	err := store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(db.StateBucket).Put([]byte("orders"), []byte("[broken"))
	})
	assert.NoError(t, err)

	orders, err := infraRepo.NewOrderBoltRepository(store).Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []model.Order{}, orders)
}
