package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByCustomerUserID(ctx context.Context, customerUserID int64) ([]model.Order, error)
	// ショップ配下の全注文（productを経由したjoin）
	ListByShopID(ctx context.Context, shopID int64) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
}
