package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestOrderUsecase_List_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := newCartUsecase(t)
	uc := usecase.NewOrderUsecase(store)

	store.AddItem(ctx, usecase.AddItemInput{Name: "Glazed Donut", Price: 60})
	store.Checkout(ctx, usecase.CheckoutInput{Confirm: true})

	store.AddItem(ctx, usecase.AddItemInput{Name: "Mango Scoop", Price: 95})
	store.Checkout(ctx, usecase.CheckoutInput{Confirm: true})

	out := uc.List(ctx)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, "Glazed Donut", out.Orders[0].Items[0].Name)
	assert.Equal(t, "Mango Scoop", out.Orders[1].Items[0].Name)
}

func TestOrderUsecase_Export_ProducesJSONDocument(t *testing.T) {
	ctx := context.Background()
	store := newCartUsecase(t)
	uc := usecase.NewOrderUsecase(store)

	store.AddItem(ctx, usecase.AddItemInput{Name: "Matcha Cupcake", Price: 150, Quantity: 2})
	store.Checkout(ctx, usecase.CheckoutInput{DeliveryCode: "express", Confirm: true})

	out, err := uc.Export(ctx)
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.Filename, "gourmandises-orders-"))
	assert.True(t, strings.HasSuffix(out.Filename, ".json"))

	var orders []model.Order
	assert.NoError(t, json.Unmarshal(out.Data, &orders))
	assert.Equal(t, 1, len(orders))
	assert.Equal(t, 320.0, orders[0].Total)

	// エクスポートはstateを変えない
	assert.Equal(t, 1, uc.List(ctx).Total)
}

func TestOrderUsecase_Export_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewOrderUsecase(newCartUsecase(t))

	out, err := uc.Export(ctx)
	assert.NoError(t, err)

	var orders []model.Order
	assert.NoError(t, json.Unmarshal(out.Data, &orders))
	assert.Equal(t, 0, len(orders))
}

func TestOrderUsecase_Clear_EmptiesHistory(t *testing.T) {
	ctx := context.Background()
	store := newCartUsecase(t)
	uc := usecase.NewOrderUsecase(store)

	store.AddItem(ctx, usecase.AddItemInput{Name: "Glazed Donut", Price: 60})
	store.Checkout(ctx, usecase.CheckoutInput{Confirm: true})
	assert.Equal(t, 1, uc.List(ctx).Total)

	uc.Clear(ctx)
	assert.Equal(t, 0, uc.List(ctx).Total)
}
