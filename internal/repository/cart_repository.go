package repository

import (
	"context"

	"app/internal/domain/model"
)

// カートはストアの "cart" キーに配列まるごと保存する
type CartRepository interface {
	Load(ctx context.Context) ([]model.CartItem, error)
	Save(ctx context.Context, items []model.CartItem) error
}
