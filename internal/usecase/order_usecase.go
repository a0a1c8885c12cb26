package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"go.uber.org/zap"
)

// 注文確定イベント
type OrderPlacedEvent struct {
	OrderID        int64     `json:"order_id"`
	ProductID      int64     `json:"product_id"`
	ShopID         int64     `json:"shop_id"`
	CustomerUserID int64     `json:"customer"`
	Quantity       int64     `json:"quantity"`
	TotalPrice     int64     `json:"total_price"`
	Status         string    `json:"status"`
	PlacedAt       time.Time `json:"placed_at"`
}

// 注文イベントの発行を約束
type OrderEventPublisher interface {
	PublishOrderPlaced(ctx context.Context, ev OrderPlacedEvent) error
}

type OrderUsecase struct {
	tx           repo.TransactionManager
	orderRepo    repo.OrderRepository
	productRepo  repo.ProductRepository
	customerRepo repo.CustomerRepository
	sellerRepo   repo.SellerRepository
	shopRepo     repo.ShopRepository
	publisher    OrderEventPublisher
}

// DI
func NewOrderUsecase(
	tx repo.TransactionManager,
	orderRepo repo.OrderRepository,
	productRepo repo.ProductRepository,
	customerRepo repo.CustomerRepository,
	sellerRepo repo.SellerRepository,
	shopRepo repo.ShopRepository,
	publisher OrderEventPublisher,
) *OrderUsecase {
	return &OrderUsecase{
		tx:           tx,
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		sellerRepo:   sellerRepo,
		shopRepo:     shopRepo,
		publisher:    publisher,
	}
}

type PlaceOrderInput struct {
	ProductID int64
	Quantity  int64
}

// PlaceOrder は在庫減算と注文作成を1トランザクションで行う。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (model.Order, error) {
	if userID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "quantity must be > 0")
	}

	//カスタマー登録チェック
	_, err := u.customerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusForbidden, "You must be a customer to place an order.")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var order model.Order
	var shopID int64

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Product not found.")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		shopID = p.ShopID

		//在庫減算（足りないなら false）
		ok, err := r.Inventory().DecreaseAvailableIfEnough(ctx, in.ProductID, in.Quantity)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !ok {
			return NewHTTPError(http.StatusBadRequest, "out of stock")
		}

		order = model.Order{
			ProductID:      in.ProductID,
			CustomerUserID: userID,
			Quantity:       in.Quantity,
			Status:         model.OrderStatusPending,
			TotalPrice:     p.Price * in.Quantity,
		}
		if err := r.Orders().Create(ctx, &order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return model.Order{}, err
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//イベント発行はベストエフォート
	if u.publisher != nil {
		ev := OrderPlacedEvent{
			OrderID:        order.ID,
			ProductID:      order.ProductID,
			ShopID:         shopID,
			CustomerUserID: order.CustomerUserID,
			Quantity:       order.Quantity,
			TotalPrice:     order.TotalPrice,
			Status:         string(order.Status),
			PlacedAt:       time.Now(),
		}
		if err := u.publisher.PublishOrderPlaced(ctx, ev); err != nil {
			zap.L().Warn("publish order.placed failed", zap.Int64("order_id", order.ID), zap.Error(err))
		}
	}

	return order, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if userID <= 0 {
		return []model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orderRepo.ListByCustomerUserID(ctx, userID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// ListShopOrders はセラー本人のショップに入った注文を返す。
func (u *OrderUsecase) ListShopOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if userID <= 0 {
		return []model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	_, err := u.sellerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return []model.Order{}, NewHTTPError(http.StatusForbidden, "Seller not found")
	}
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	shop, err := u.shopRepo.FindByOwnerUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return []model.Order{}, NewHTTPError(http.StatusNotFound, "Shop does not exist")
	}
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.orderRepo.ListByShopID(ctx, shop.ID)
	if err != nil {
		return []model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return orders, nil
}

// UpdateOrderStatus はPendingからCompleted/Cancelledへの遷移だけ許す。
// キャンセル時は在庫を同一トランザクションで戻す。
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, userID int64, orderID int64, status model.OrderStatus) (model.Order, error) {
	if userID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order id")
	}
	if status != model.OrderStatusCompleted && status != model.OrderStatusCancelled {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	shop, err := u.shopRepo.FindByOwnerUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusForbidden, "You do not own a shop.")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var updated model.Order

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found.")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//自分のショップの注文かどうか
		p, err := r.Products().FindByID(ctx, order.ProductID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if p.ShopID != shop.ID {
			return NewHTTPError(http.StatusForbidden, "You can only manage orders from your own shop.")
		}

		if order.Status != model.OrderStatusPending {
			return NewHTTPError(http.StatusBadRequest, "order is not pending")
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, status); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//キャンセルは在庫を戻す
		if status == model.OrderStatusCancelled {
			if err := r.Inventory().IncreaseAvailable(ctx, order.ProductID, order.Quantity); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		order.Status = status
		updated = order
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return model.Order{}, err
		}
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return updated, nil
}
