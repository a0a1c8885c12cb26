package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"gorm.io/gorm"
)

type ShopGormRepository struct {
	db *gorm.DB
}

// DI
func NewShopGormRepository(db *gorm.DB) *ShopGormRepository {
	return &ShopGormRepository{db: db}
}

func (r *ShopGormRepository) Create(ctx context.Context, shop *model.Shop) error {
	return r.db.WithContext(ctx).Create(shop).Error
}

func (r *ShopGormRepository) FindByID(ctx context.Context, shopID int64) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).First(&s, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

// セラーが所有するショップを1件取得
func (r *ShopGormRepository) FindByOwnerUserID(ctx context.Context, ownerUserID int64) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).Where("owner_user_id = ?", ownerUserID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

func (r *ShopGormRepository) ExistsByOwnerUserID(ctx context.Context, ownerUserID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Shop{}).
		Where("owner_user_id = ?", ownerUserID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ShopGormRepository) List(ctx context.Context, f repo.ShopListFilter) ([]model.Shop, error) {
	tx := r.db.WithContext(ctx).Model(&model.Shop{})

	if f.ShopID != nil {
		tx = tx.Where("id = ?", *f.ShopID)
	}
	if f.OwnerUserID != nil {
		tx = tx.Where("owner_user_id = ?", *f.OwnerUserID)
	}

	var shops []model.Shop
	if err := tx.Order("id asc").Find(&shops).Error; err != nil {
		return []model.Shop{}, err
	}
	return shops, nil
}
