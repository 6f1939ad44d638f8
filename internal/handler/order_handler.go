package handler

import (
	"fmt"
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /ordersのHTTP
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")

	g.GET("", h.list)
	g.GET("/export", h.export)
	g.DELETE("", h.clear)
}

func (h *OrderHandler) list(c echo.Context) error {
	out := h.uc.List(c.Request().Context())
	return c.JSON(http.StatusOK, out)
}

// JSON文書をダウンロードとして返す（元サイトのexportOrders相当）
func (h *OrderHandler) export(c echo.Context) error {
	out, err := h.uc.Export(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", out.Filename))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, out.Data)
}

func (h *OrderHandler) clear(c echo.Context) error {
	h.uc.Clear(c.Request().Context())
	return c.NoContent(http.StatusNoContent)
}
