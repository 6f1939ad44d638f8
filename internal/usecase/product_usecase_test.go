package usecase_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	args := m.Called(ctx, category)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByName(ctx context.Context, name string) (model.Product, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func TestProductUsecase_List_All(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	items := []model.Product{{Name: "Matcha Cupcake", Price: 150, Category: "cupcakes"}}
	pRepo.On("List", mock.Anything).Return(items, nil)

	out, err := uc.List(ctx, "")
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Total)

	pRepo.AssertExpectations(t)
}

func TestProductUsecase_List_ByCategory(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("ListByCategory", mock.Anything, "donuts").Return([]model.Product{
		{Name: "Glazed Donut", Price: 60, Category: "donuts"},
	}, nil)

	out, err := uc.List(ctx, "donuts")
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Equal(t, "Glazed Donut", out.Items[0].Name)
}

func TestProductUsecase_Detail_NotFound(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByName", mock.Anything, "Nope").Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Detail(ctx, "Nope")
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_Detail_Success(t *testing.T) {
	ctx := context.Background()

	pRepo := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(pRepo)

	pRepo.On("FindByName", mock.Anything, "Matcha Cupcake").
		Return(model.Product{Name: "Matcha Cupcake", Price: 150, Category: "cupcakes"}, nil)

	p, err := uc.Detail(ctx, "Matcha Cupcake")
	assert.NoError(t, err)
	assert.Equal(t, 150.0, p.Price)
}
