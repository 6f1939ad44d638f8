package validator

import (
	"errors"
	"math"
	"strings"

	"app/internal/usecase"
)

var (
	// nameが空
	ErrInvalidName = errors.New("invalid name")

	// priceが数値でない・0以下
	ErrInvalidPrice = errors.New("invalid price")
)

type itemValidator struct{}

// Usecaseには interface で注入
func NewItemValidator() usecase.ItemValidator {
	return &itemValidator{}
}

// 追加入力を検証。quantityは対象外（呼び出し側で1に補正する）。
func (v *itemValidator) ValidateAdd(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrInvalidName
	}

	// NaN/Infは JSONの数値としては来ないが、直呼びに備えて弾く
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrInvalidPrice
	}
	if price <= 0 {
		return ErrInvalidPrice
	}

	return nil
}
