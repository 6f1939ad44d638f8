package model

// カートの明細。
// nameが実質の主キー（同名の追加は数量加算、重複行は作らない）。
type CartItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description,omitempty"`
}

// 明細の小計（単価×数量）
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
