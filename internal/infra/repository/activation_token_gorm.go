package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"gorm.io/gorm"
)

type ActivationTokenGormRepository struct {
	db *gorm.DB
}

// DI
func NewActivationTokenGormRepository(db *gorm.DB) *ActivationTokenGormRepository {
	return &ActivationTokenGormRepository{db: db}
}

func (r *ActivationTokenGormRepository) Create(ctx context.Context, token *model.ActivationToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *ActivationTokenGormRepository) FindByTokenHash(ctx context.Context, tokenHash string) (model.ActivationToken, error) {
	var t model.ActivationToken
	err := r.db.WithContext(ctx).Where("token_hash = ?", tokenHash).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.ActivationToken{}, repo.ErrNotFound
	}
	if err != nil {
		return model.ActivationToken{}, err
	}
	return t, nil
}

func (r *ActivationTokenGormRepository) Delete(ctx context.Context, tokenID int64) error {
	return r.db.WithContext(ctx).Delete(&model.ActivationToken{}, tokenID).Error
}
