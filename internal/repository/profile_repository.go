package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

// セラープロフィールの保存・取得を約束
type SellerRepository interface {
	Create(ctx context.Context, seller *model.Seller) error
	FindByUserID(ctx context.Context, userID int64) (model.Seller, error)
	List(ctx context.Context, f UserListFilter) ([]model.Seller, error)
}

// カスタマープロフィールの保存・取得を約束
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	FindByUserID(ctx context.Context, userID int64) (model.Customer, error)
	List(ctx context.Context, f UserListFilter) ([]model.Customer, error)
}
