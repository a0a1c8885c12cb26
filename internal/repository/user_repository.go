package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// ユーザーの保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// メール確認後にis_activeをtrueへ
	Activate(ctx context.Context, userID int64) error
	List(ctx context.Context, f UserListFilter) ([]model.User, error)
}

// user_idが指定されなければ絞り込まない
type UserListFilter struct {
	UserID *int64
}
