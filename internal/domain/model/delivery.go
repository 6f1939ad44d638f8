package model

// 配送オプション（カートページのラジオボタン相当）
type DeliveryOption struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Fee   float64 `json:"fee"`
}

// 未選択時のデフォルト
const DeliveryStandard = "standard"

// 表示順のまま返す。先頭がデフォルト。
func DeliveryOptions() []DeliveryOption {
	return []DeliveryOption{
		{Code: "standard", Label: "Standard Delivery (Free)", Fee: 0},
		{Code: "express", Label: "Express Delivery", Fee: 20},
		{Code: "sameday", Label: "Same Day Delivery", Fee: 50},
	}
}

func FindDeliveryOption(code string) (DeliveryOption, bool) {
	for _, opt := range DeliveryOptions() {
		if opt.Code == code {
			return opt, true
		}
	}
	return DeliveryOption{}, false
}
