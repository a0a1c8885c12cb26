package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

// メール確認トークンの保存・消費を約束
type ActivationTokenRepository interface {
	Create(ctx context.Context, token *model.ActivationToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (model.ActivationToken, error)
	Delete(ctx context.Context, tokenID int64) error
}
