package handler

import (
	"net/http"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddItemRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

type UpdateQuantityRequest struct {
	Delta int64 `json:"delta"`
}

type CheckoutRequest struct {
	Delivery string `json:"delivery"`
	Confirm  bool   `json:"confirm"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// /cart配下と配送オプションを登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.DELETE("", h.clearCart)
	g.GET("/count", h.count)
	g.GET("/totals", h.totals)
	g.POST("/items", h.addItem)
	g.PATCH("/items/:id", h.updateQuantity)
	g.DELETE("/items/:id", h.removeItem)
	g.POST("/checkout", h.checkout)

	e.GET("/delivery-options", h.deliveryOptions)
}

func (h *CartHandler) getCart(c echo.Context) error {
	out := h.uc.GetCart(c.Request().Context())
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddItem(c.Request().Context(), usecase.AddItemInput{
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       req.Image,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

// :id は位置インデックスでも商品名でもいい
func (h *CartHandler) updateQuantity(c echo.Context) error {
	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out := h.uc.UpdateQuantity(c.Request().Context(), c.Param("id"), req.Delta)
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) removeItem(c echo.Context) error {
	out := h.uc.RemoveItem(c.Request().Context(), c.Param("id"))
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) count(c echo.Context) error {
	n := h.uc.Count(c.Request().Context())
	return c.JSON(http.StatusOK, CountResponse{Count: n})
}

// ?delivery=<code> 選択中の配送オプションで合計を出す
func (h *CartHandler) totals(c echo.Context) error {
	code := c.QueryParam("delivery")
	if code == "" {
		code = model.DeliveryStandard
	}

	opt, ok := model.FindDeliveryOption(code)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid delivery option"})
	}

	return c.JSON(http.StatusOK, h.uc.Totals(opt.Fee))
}

func (h *CartHandler) checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		DeliveryCode: req.Delivery,
		Confirm:      req.Confirm,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) clearCart(c echo.Context) error {
	out := h.uc.Clear(c.Request().Context())
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) deliveryOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, model.DeliveryOptions())
}
