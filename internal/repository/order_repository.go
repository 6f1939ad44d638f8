package repository

import (
	"context"

	"app/internal/domain/model"
)

// 注文履歴はストアの "orders" キーに配列まるごと保存する
type OrderRepository interface {
	Load(ctx context.Context) ([]model.Order, error)
	Save(ctx context.Context, orders []model.Order) error
}
