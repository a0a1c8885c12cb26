package usecase

import (
	"context"
	"errors"
	"net/http"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// ショップの集計値。全フィールドは空集合で0になる（nullにはならない）。
type ShopMetrics struct {
	ProductCount int64 `json:"product_count"`
	ReviewCount  int64 `json:"reviews"`
	// order_countは注文行数、total_ordersは数量合計。別物。
	OrderCount      int64 `json:"order_count"`
	TotalOrders     int64 `json:"total_orders"`
	AvailableStock  int64 `json:"available_stock"`
	TotalSold       int64 `json:"total_sold"`
	TotalCancelled  int64 `json:"total_cancelled"`
	TotalPending    int64 `json:"total_pending"`
	TotalEarning    int64 `json:"total_earning"`
	EngagementScore int64 `json:"engagement_score"`
}

// ComputeShopMetrics は1ショップ分の商品・レビュー・注文から集計値を畳み込む。
// 純粋関数。永続化層には触らない。
func ComputeShopMetrics(products []model.Product, reviews []model.Review, orders []model.Order) ShopMetrics {
	m := ShopMetrics{
		ProductCount: int64(len(products)),
		ReviewCount:  int64(len(reviews)),
		OrderCount:   int64(len(orders)),
	}

	for _, p := range products {
		m.AvailableStock += p.Available
	}

	for _, o := range orders {
		m.TotalOrders += o.Quantity

		switch o.Status {
		case model.OrderStatusCompleted:
			m.TotalSold += o.Quantity
			m.TotalEarning += o.TotalPrice
		case model.OrderStatusCancelled:
			m.TotalCancelled += o.Quantity
		case model.OrderStatusPending:
			m.TotalPending += o.Quantity
		}
	}

	// 移行元の算式をそのまま維持する（単位は混在するが互換性優先）
	m.EngagementScore = (m.ReviewCount * 5) + (m.TotalOrders * 2) + (m.ProductCount * 3) + m.TotalEarning - m.TotalCancelled

	return m
}

type DashboardUsecase struct {
	sellerRepo  repo.SellerRepository
	shopRepo    repo.ShopRepository
	productRepo repo.ProductRepository
	reviewRepo  repo.ReviewRepository
	orderRepo   repo.OrderRepository
}

// DI
func NewDashboardUsecase(
	sellerRepo repo.SellerRepository,
	shopRepo repo.ShopRepository,
	productRepo repo.ProductRepository,
	reviewRepo repo.ReviewRepository,
	orderRepo repo.OrderRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		sellerRepo:  sellerRepo,
		shopRepo:    shopRepo,
		productRepo: productRepo,
		reviewRepo:  reviewRepo,
		orderRepo:   orderRepo,
	}
}

// resolveShop はユーザーIDからセラー→所有ショップを解決する。
func (u *DashboardUsecase) resolveShop(ctx context.Context, userID int64) (model.Shop, error) {
	if userID <= 0 {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "invalid user_id")
	}

	//セラー登録されているか
	_, err := u.sellerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusForbidden, "Seller not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//所有ショップ（1:1）
	shop, err := u.shopRepo.FindByOwnerUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "Shop does not exist")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return shop, nil
}

// MyDashboard はセラー本人のショップの集計値を返す。
func (u *DashboardUsecase) MyDashboard(ctx context.Context, userID int64) (ShopMetrics, error) {
	shop, err := u.resolveShop(ctx, userID)
	if err != nil {
		return ShopMetrics{}, err
	}

	products, err := u.productRepo.ListByShopID(ctx, shop.ID)
	if err != nil {
		return ShopMetrics{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	reviews, err := u.reviewRepo.ListByShopID(ctx, shop.ID)
	if err != nil {
		return ShopMetrics{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orders, err := u.orderRepo.ListByShopID(ctx, shop.ID)
	if err != nil {
		return ShopMetrics{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ComputeShopMetrics(products, reviews, orders), nil
}
