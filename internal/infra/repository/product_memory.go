package repository

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// カタログは静的ページ由来なので固定シードのインメモリ実装。
type ProductMemoryRepository struct {
	products []model.Product
}

func NewProductMemoryRepository() *ProductMemoryRepository {
	return &ProductMemoryRepository{products: seedProducts()}
}

func (r *ProductMemoryRepository) List(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductMemoryRepository) ListByCategory(ctx context.Context, category string) ([]model.Product, error) {
	out := make([]model.Product, 0)
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *ProductMemoryRepository) FindByName(ctx context.Context, name string) (model.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

// カテゴリページの商品カード相当
func seedProducts() []model.Product {
	return []model.Product{
		{Name: "Matcha Cupcake", Price: 150, Category: "cupcakes", Image: "/assets/cupcakes/matcha.png", Description: "Earthy matcha sponge with white chocolate frosting"},
		{Name: "Vanilla Cupcake", Price: 100, Category: "cupcakes", Image: "/assets/cupcakes/vanilla.png", Description: "Classic vanilla bean sponge"},
		{Name: "Chocolate Cupcake", Price: 120, Category: "cupcakes", Image: "/assets/cupcakes/chocolate.png", Description: "Dark cocoa with fudge swirl"},
		{Name: "Strawberry Cupcake", Price: 130, Category: "cupcakes", Image: "/assets/cupcakes/strawberry.png", Description: "Fresh strawberry compote center"},

		{Name: "Choco Chip Cookie", Price: 80, Category: "cookies", Image: "/assets/cookies/chocochip.png", Description: "Chewy with dark chocolate chunks"},
		{Name: "Oatmeal Raisin Cookie", Price: 70, Category: "cookies", Image: "/assets/cookies/oatmeal.png", Description: "Spiced oats and plump raisins"},
		{Name: "Double Chocolate Cookie", Price: 90, Category: "cookies", Image: "/assets/cookies/double.png", Description: "Cocoa dough, chocolate chips"},

		{Name: "Glazed Donut", Price: 60, Category: "donuts", Image: "/assets/donuts/glazed.png", Description: "Light glaze, classic ring"},
		{Name: "Sprinkle Donut", Price: 75, Category: "donuts", Image: "/assets/donuts/sprinkle.png", Description: "Rainbow sprinkles on vanilla icing"},
		{Name: "Caramel Donut", Price: 85, Category: "donuts", Image: "/assets/donuts/caramel.png", Description: "Salted caramel drizzle"},

		{Name: "Mango Scoop", Price: 95, Category: "icecreams", Image: "/assets/icecreams/mango.png", Description: "Alphonso mango, single scoop"},
		{Name: "Pistachio Kulfi", Price: 110, Category: "icecreams", Image: "/assets/icecreams/kulfi.png", Description: "Dense pistachio kulfi on a stick"},
		{Name: "Belgian Chocolate Scoop", Price: 125, Category: "icecreams", Image: "/assets/icecreams/belgian.png", Description: "70% Belgian chocolate"},
	}
}
