package repository

import (
	"context"
	"encoding/json"

	"app/internal/domain/model"
	"app/internal/infra/db"

	"github.com/rs/zerolog/log"
	bolt "go.etcd.io/bbolt"
)

// localStorageの "cart" キー相当
var cartKey = []byte("cart")

type CartBoltRepository struct {
	db *bolt.DB
}

// DI
func NewCartBoltRepository(b *bolt.DB) *CartBoltRepository {
	return &CartBoltRepository{db: b}
}

// Load はカート配列を読む。キー無しは空。
// 壊れたJSONも空で返す（初回訪問や破損でページを落とさない）。
func (r *CartBoltRepository) Load(ctx context.Context) ([]model.CartItem, error) {
	var raw []byte

	err := r.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(db.StateBucket).Get(cartKey); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return []model.CartItem{}, nil
	}

	var items []model.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Msg("repository: corrupt cart payload, treating as empty")
		return []model.CartItem{}, nil
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

// Save は配列まるごと書き戻す。部分更新はしない。
func (r *CartBoltRepository) Save(ctx context.Context, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(db.StateBucket).Put(cartKey, raw)
	})
}
