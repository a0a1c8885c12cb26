package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

type ShopUsecase struct {
	sellerRepo repo.SellerRepository
	shopRepo   repo.ShopRepository
}

// DI
func NewShopUsecase(sellerRepo repo.SellerRepository, shopRepo repo.ShopRepository) *ShopUsecase {
	return &ShopUsecase{sellerRepo: sellerRepo, shopRepo: shopRepo}
}

type CreateShopInput struct {
	Name        string
	Image       string
	Description string
	Location    string
	Hotline     *string
}

// CreateShop はセラー本人のショップを作成する（1セラー1ショップ）。
func (u *ShopUsecase) CreateShop(ctx context.Context, userID int64, in CreateShopInput) (model.Shop, error) {
	if userID <= 0 {
		return model.Shop{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "location required")
	}

	//セラー登録チェック
	_, err := u.sellerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusForbidden, "You must be a verified seller to create a shop.")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//既にショップを持っていないか
	exists, err := u.shopRepo.ExistsByOwnerUserID(ctx, userID)
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return model.Shop{}, NewHTTPError(http.StatusForbidden, "You already own a shop.")
	}

	shop := model.Shop{
		OwnerUserID: userID,
		Name:        strings.TrimSpace(in.Name),
		Image:       in.Image,
		Description: in.Description,
		Location:    strings.TrimSpace(in.Location),
		Hotline:     in.Hotline,
	}
	if err := u.shopRepo.Create(ctx, &shop); err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return shop, nil
}

type ListShopsInput struct {
	ShopID      *int64
	OwnerUserID *int64
}

func (u *ShopUsecase) ListShops(ctx context.Context, in ListShopsInput) ([]model.Shop, error) {
	shops, err := u.shopRepo.List(ctx, repo.ShopListFilter{
		ShopID:      in.ShopID,
		OwnerUserID: in.OwnerUserID,
	})
	if err != nil {
		return []model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return shops, nil
}

func (u *ShopUsecase) GetShop(ctx context.Context, shopID int64) (model.Shop, error) {
	if shopID <= 0 {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "invalid shop id")
	}

	s, err := u.shopRepo.FindByID(ctx, shopID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "Shop does not exist")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}
