package repository

import (
	"context"
	"encoding/json"

	"app/internal/domain/model"
	"app/internal/infra/db"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

// localStorageの "orders" キー相当
var ordersKey = []byte("orders")

type OrderBoltRepository struct {
	db *bolt.DB
}

// DI
func NewOrderBoltRepository(b *bolt.DB) *OrderBoltRepository {
	return &OrderBoltRepository{db: b}
}

// Load は注文履歴を読む。キー無し・破損は空で返す。
func (r *OrderBoltRepository) Load(ctx context.Context) ([]model.Order, error) {
	var raw []byte

	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(db.StateBucket).Get(ordersKey); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return []model.Order{}, nil
	}

	var orders []model.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		log.Warn().Err(err).Msg("repository: corrupt orders payload, treating as empty")
		return []model.Order{}, nil
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Save は履歴まるごと書き戻す。
func (r *OrderBoltRepository) Save(ctx context.Context, orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}

	raw, err := json.Marshal(orders)
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(db.StateBucket).Put(ordersKey, raw)
	})
}
