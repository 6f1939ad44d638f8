package model

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// 注文（確定時点のスナップショット）。
// Itemsはカートのコピー。確定後のカート操作で変わってはいけない。
type Order struct {
	ID           string      `json:"id"`
	Items        []CartItem  `json:"items"`
	Subtotal     float64     `json:"subtotal"`
	Shipping     float64     `json:"shipping"`
	DeliveryFee  float64     `json:"deliveryFee"`
	DeliveryType string      `json:"deliveryType"`
	Total        float64     `json:"total"`
	Date         time.Time   `json:"date"`
	Status       OrderStatus `json:"status"`
	Timestamp    int64       `json:"timestamp"`
}
