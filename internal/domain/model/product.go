package model

// カタログの商品。カテゴリはページ単位（cupcakes / cookies / donuts / icecreams）。
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
}
