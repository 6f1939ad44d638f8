package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int             `json:"total"`
}

// List はカタログを返す。categoryを渡すとそのページ分だけ。
// 未知のカテゴリは空リスト（404にはしない）。
func (u *ProductUsecase) List(ctx context.Context, category string) (ProductListOutput, error) {
	if len(category) > 50 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}

	var (
		items []model.Product
		err   error
	)
	if category == "" {
		items, err = u.productRepo.List(ctx)
	} else {
		items, err = u.productRepo.ListByCategory(ctx, category)
	}
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return ProductListOutput{Items: items, Total: len(items)}, nil
}

// Detail は商品名で1件引く。
func (u *ProductUsecase) Detail(ctx context.Context, name string) (model.Product, error) {
	if name == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid name")
	}

	p, err := u.productRepo.FindByName(ctx, name)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return p, nil
}
