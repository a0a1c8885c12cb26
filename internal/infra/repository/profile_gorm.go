package repository

import (
	"context"
	"errors"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"

	"gorm.io/gorm"
)

type SellerGormRepository struct {
	db *gorm.DB
}

// DI
func NewSellerGormRepository(db *gorm.DB) *SellerGormRepository {
	return &SellerGormRepository{db: db}
}

func (r *SellerGormRepository) Create(ctx context.Context, seller *model.Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

func (r *SellerGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Seller, error) {
	var s model.Seller
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Seller{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Seller{}, err
	}
	return s, nil
}

func (r *SellerGormRepository) List(ctx context.Context, f repo.UserListFilter) ([]model.Seller, error) {
	tx := r.db.WithContext(ctx).Model(&model.Seller{})
	if f.UserID != nil {
		tx = tx.Where("user_id = ?", *f.UserID)
	}

	var sellers []model.Seller
	if err := tx.Order("user_id asc").Find(&sellers).Error; err != nil {
		return []model.Seller{}, err
	}
	return sellers, nil
}

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

func (r *CustomerGormRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *CustomerGormRepository) FindByUserID(ctx context.Context, userID int64) (model.Customer, error) {
	var c model.Customer
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

func (r *CustomerGormRepository) List(ctx context.Context, f repo.UserListFilter) ([]model.Customer, error) {
	tx := r.db.WithContext(ctx).Model(&model.Customer{})
	if f.UserID != nil {
		tx = tx.Where("user_id = ?", *f.UserID)
	}

	var customers []model.Customer
	if err := tx.Order("user_id asc").Find(&customers).Error; err != nil {
		return []model.Customer{}, err
	}
	return customers, nil
}
