package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

// 一覧検索。全フィルタはANDで結合され、未指定は絞り込まない。
type ProductListQuery struct {
	Page       int
	Limit      int
	ProductID  *int64
	CategoryID *int64
	ShopID     *int64
	Name       string
	MinPrice   *int64
	MaxPrice   *int64
}

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	// ダッシュボード用：ショップの全商品
	ListByShopID(ctx context.Context, shopID int64) ([]model.Product, error)

	Create(ctx context.Context, p *model.Product) error
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, productID int64) error
}

// 在庫の増減を約束
type InventoryRepository interface {
	// 在庫が足りるときだけ減らす（足りなければfalse）
	DecreaseAvailableIfEnough(ctx context.Context, productID int64, qty int64) (bool, error)
	IncreaseAvailable(ctx context.Context, productID int64, qty int64) error
}
