package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// 追加入力の検証（validatorパッケージが実装）
type ItemValidator interface {
	ValidateAdd(name string, price float64) error
}

// CartUsecase はカートと注文履歴の唯一の持ち主。
// インメモリの状態を持ち、変更のたびにストアへ全量書き戻す。
// 同じストアファイルを指す複数プロセスは最後の書き込みが勝つ（タブ間同期はしない）。
type CartUsecase struct {
	mu        sync.Mutex
	cart      []model.CartItem
	orders    []model.Order
	cartRepo  repo.CartRepository
	orderRepo repo.OrderRepository
	validator ItemValidator
}

// DI。生成時にストアから読み込む。読めなくても空で開始してエラーにはしない。
func NewCartUsecase(cartRepo repo.CartRepository, orderRepo repo.OrderRepository, v ItemValidator) *CartUsecase {
	u := &CartUsecase{
		cartRepo:  cartRepo,
		orderRepo: orderRepo,
		validator: v,
	}
	u.load()
	return u
}

func (u *CartUsecase) load() {
	ctx := context.Background()

	cart, err := u.cartRepo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("usecase: cart load failed, starting empty")
		cart = []model.CartItem{}
	}

	orders, err := u.orderRepo.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("usecase: orders load failed, starting empty")
		orders = []model.Order{}
	}

	u.cart = cart
	u.orders = orders
}

type AddItemInput struct {
	Name        string
	Price       float64
	Quantity    int64
	Image       string
	Category    string
	Description string
}

type CartResponse struct {
	Items    []model.CartItem `json:"items"`
	Subtotal float64          `json:"subtotal"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

type CheckoutInput struct {
	DeliveryCode string
	Confirm      bool
}

// 確認ダイアログに出す内容
type CheckoutPreview struct {
	ItemCount    int     `json:"item_count"`
	Subtotal     float64 `json:"subtotal"`
	Shipping     float64 `json:"shipping"`
	Total        float64 `json:"total"`
	DeliveryType string  `json:"delivery_type"`
}

type CheckoutOutput struct {
	Confirmed bool            `json:"confirmed"`
	Preview   CheckoutPreview `json:"preview"`
	Order     *model.Order    `json:"order,omitempty"`
}

// GetCart はカートの現在の中身と小計を返す。
func (u *CartUsecase) GetCart(ctx context.Context) CartResponse {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.cartResponse()
}

// AddItem はカートに追加（同名は数量加算）。
// name空・price不正は400で弾き、stateは触らない。quantity<1は1に補正。
func (u *CartUsecase) AddItem(ctx context.Context, in AddItemInput) (CartResponse, error) {
	if err := u.validator.ValidateAdd(in.Name, in.Price); err != nil {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	found := false
	for i := range u.cart {
		if u.cart[i].Name == in.Name {
			u.cart[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		u.cart = append(u.cart, model.CartItem{
			Name:        in.Name,
			Price:       in.Price,
			Quantity:    qty,
			Image:       in.Image,
			Category:    in.Category,
			Description: in.Description,
		})
	}

	u.saveCart(ctx)
	return u.cartResponse(), nil
}

// UpdateQuantity は数量を±deltaする。0以下になったら明細ごと削除。
// identifierは位置インデックスか商品名（呼び出し元によって両方ある）。
// 解決できなければ何もしない（エラーにもしない）。
func (u *CartUsecase) UpdateQuantity(ctx context.Context, identifier string, delta int64) CartResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.resolveIndex(identifier)
	if idx < 0 {
		return u.cartResponse()
	}

	u.cart[idx].Quantity += delta
	if u.cart[idx].Quantity <= 0 {
		u.cart = append(u.cart[:idx], u.cart[idx+1:]...)
	}

	u.saveCart(ctx)
	return u.cartResponse()
}

// RemoveItem は明細を削除。見つからなければ何もしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, identifier string) CartResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	idx := u.resolveIndex(identifier)
	if idx < 0 {
		return u.cartResponse()
	}

	u.cart = append(u.cart[:idx], u.cart[idx+1:]...)

	u.saveCart(ctx)
	return u.cartResponse()
}

// Totals は純計算。stateは変更しない。
func (u *CartUsecase) Totals(deliveryFee float64) Totals {
	u.mu.Lock()
	defer u.mu.Unlock()

	sub := subtotalOf(u.cart)
	return Totals{Subtotal: sub, Shipping: deliveryFee, Total: sub + deliveryFee}
}

// Count はバッジ表示用の合計数量（明細数ではない）。
func (u *CartUsecase) Count(ctx context.Context) int64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	var n int64
	for _, it := range u.cart {
		n += it.Quantity
	}
	return n
}

// Checkout はカートを注文に変換する。
// 空カートは400。confirm=falseなら確認用のプレビューだけ返してstateは触らない。
// confirm=trueでスナップショットを履歴に積み、カートを空にして両方永続化する。
func (u *CartUsecase) Checkout(ctx context.Context, in CheckoutInput) (CheckoutOutput, error) {
	code := in.DeliveryCode
	if code == "" {
		code = model.DeliveryStandard
	}
	opt, ok := model.FindDeliveryOption(code)
	if !ok {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "invalid delivery option")
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.cart) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	sub := subtotalOf(u.cart)
	preview := CheckoutPreview{
		ItemCount:    len(u.cart),
		Subtotal:     sub,
		Shipping:     opt.Fee,
		Total:        sub + opt.Fee,
		DeliveryType: opt.Label,
	}

	if !in.Confirm {
		return CheckoutOutput{Confirmed: false, Preview: preview}, nil
	}

	now := time.Now()
	order := model.Order{
		ID:           newOrderID(now),
		Items:        append([]model.CartItem(nil), u.cart...),
		Subtotal:     sub,
		Shipping:     opt.Fee,
		DeliveryFee:  opt.Fee,
		DeliveryType: opt.Label,
		Total:        sub + opt.Fee,
		Date:         now,
		Status:       model.OrderStatusPending,
		Timestamp:    now.UnixMilli(),
	}

	u.orders = append(u.orders, order)
	u.cart = []model.CartItem{}

	u.saveOrders(ctx)
	u.saveCart(ctx)

	return CheckoutOutput{Confirmed: true, Preview: preview, Order: &order}, nil
}

// Orders は履歴のコピーを返す（呼び出し側の変更が漏れないように）。
func (u *CartUsecase) Orders(ctx context.Context) []model.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]model.Order, len(u.orders))
	copy(out, u.orders)
	return out
}

// Clear はカートの明示リセット。
func (u *CartUsecase) Clear(ctx context.Context) CartResponse {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.cart = []model.CartItem{}
	u.saveCart(ctx)
	return u.cartResponse()
}

// ClearOrders は履歴の明示リセット。
func (u *CartUsecase) ClearOrders(ctx context.Context) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.orders = []model.Order{}
	u.saveOrders(ctx)
}

// ---- 内部（muを取った状態で呼ぶ） ----

// 書き込み失敗はログだけ残してインメモリ状態で継続する。
// 永続化が死んでいてもセッション中の操作は通す（リロードで消えるだけ）。
func (u *CartUsecase) saveCart(ctx context.Context) {
	if err := u.cartRepo.Save(ctx, u.cart); err != nil {
		log.Warn().Err(err).Msg("usecase: cart save failed, continuing in memory")
	}
}

func (u *CartUsecase) saveOrders(ctx context.Context) {
	if err := u.orderRepo.Save(ctx, u.orders); err != nil {
		log.Warn().Err(err).Msg("usecase: orders save failed, continuing in memory")
	}
}

func (u *CartUsecase) cartResponse() CartResponse {
	items := make([]model.CartItem, len(u.cart))
	copy(items, u.cart)
	return CartResponse{Items: items, Subtotal: subtotalOf(u.cart)}
}

// identifierを位置に解決する。数字ならインデックス、それ以外は商品名。
// 範囲外・未知の名前は-1。
func (u *CartUsecase) resolveIndex(identifier string) int {
	if n, err := strconv.Atoi(identifier); err == nil {
		if n < 0 || n >= len(u.cart) {
			return -1
		}
		return n
	}
	for i := range u.cart {
		if u.cart[i].Name == identifier {
			return i
		}
	}
	return -1
}

func subtotalOf(items []model.CartItem) float64 {
	var sub float64
	for _, it := range items {
		sub += it.LineTotal()
	}
	return sub
}

// ORD-<base36エポックms>-<ランダム6桁> を大文字で
func newOrderID(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return strings.ToUpper(fmt.Sprintf("ORD-%s-%s", ts, suffix))
}
