package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByProductID(ctx context.Context, productID int64) ([]model.Review, error)
	// ショップ配下の全レビュー（productを経由したjoin）
	ListByShopID(ctx context.Context, shopID int64) ([]model.Review, error)
}
