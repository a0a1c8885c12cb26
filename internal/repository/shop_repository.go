package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

// 一覧検索（指定されなかったフィルタは絞り込まない）
type ShopListFilter struct {
	ShopID      *int64
	OwnerUserID *int64
}

type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) error
	FindByID(ctx context.Context, shopID int64) (model.Shop, error)
	// セラーが所有するショップ（1:1）
	FindByOwnerUserID(ctx context.Context, ownerUserID int64) (model.Shop, error)
	ExistsByOwnerUserID(ctx context.Context, ownerUserID int64) (bool, error)
	List(ctx context.Context, f ShopListFilter) ([]model.Shop, error)
}
