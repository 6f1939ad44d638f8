package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"app/internal/domain/model"
)

// OrderUsecase は注文履歴の読み出し系。
// 履歴の実体はCartUsecaseが持つ（カートと履歴の持ち主を分けない）。
type OrderUsecase struct {
	store *CartUsecase
}

// DI
func NewOrderUsecase(store *CartUsecase) *OrderUsecase {
	return &OrderUsecase{store: store}
}

type OrderListOutput struct {
	Orders []model.Order `json:"orders"`
	Total  int           `json:"total"`
}

// ダウンロードさせるエクスポート文書
type ExportOutput struct {
	Filename string
	Data     []byte
}

// List は履歴を登録順で返す。
func (u *OrderUsecase) List(ctx context.Context) OrderListOutput {
	orders := u.store.Orders(ctx)
	return OrderListOutput{Orders: orders, Total: len(orders)}
}

// Export は履歴をJSON文書にする。stateは変更しない。
func (u *OrderUsecase) Export(ctx context.Context) (ExportOutput, error) {
	orders := u.store.Orders(ctx)

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return ExportOutput{}, NewHTTPError(http.StatusInternalServerError, "export failed")
	}

	name := fmt.Sprintf("gourmandises-orders-%s.json", time.Now().Format("2006-01-02"))
	return ExportOutput{Filename: name, Data: data}, nil
}

// Clear は履歴の明示リセット（デバッグ用経路）。
func (u *OrderUsecase) Clear(ctx context.Context) {
	u.store.ClearOrders(ctx)
}
