package usecase

import (
	"context"
	"net/http"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

type UserUsecase struct {
	userRepo     repo.UserRepository
	sellerRepo   repo.SellerRepository
	customerRepo repo.CustomerRepository
}

// DI
func NewUserUsecase(
	userRepo repo.UserRepository,
	sellerRepo repo.SellerRepository,
	customerRepo repo.CustomerRepository,
) *UserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		sellerRepo:   sellerRepo,
		customerRepo: customerRepo,
	}
}

// user_idフィルタ付きの読み取り専用一覧
func (u *UserUsecase) ListUsers(ctx context.Context, userID *int64) ([]model.User, error) {
	users, err := u.userRepo.List(ctx, repo.UserListFilter{UserID: userID})
	if err != nil {
		return []model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return users, nil
}

func (u *UserUsecase) ListSellers(ctx context.Context, userID *int64) ([]model.Seller, error) {
	sellers, err := u.sellerRepo.List(ctx, repo.UserListFilter{UserID: userID})
	if err != nil {
		return []model.Seller{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return sellers, nil
}

func (u *UserUsecase) ListCustomers(ctx context.Context, userID *int64) ([]model.Customer, error) {
	customers, err := u.customerRepo.List(ctx, repo.UserListFilter{UserID: userID})
	if err != nil {
		return []model.Customer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return customers, nil
}
