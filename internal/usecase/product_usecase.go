package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

// ページングの既定値と上限
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

type ProductUsecase struct {
	productRepo  repo.ProductRepository
	categoryRepo repo.CategoryRepository
	sellerRepo   repo.SellerRepository
	shopRepo     repo.ShopRepository
	auditRepo    repo.AuditLogRepository
}

// DI
func NewProductUsecase(
	productRepo repo.ProductRepository,
	categoryRepo repo.CategoryRepository,
	sellerRepo repo.SellerRepository,
	shopRepo repo.ShopRepository,
	auditRepo repo.AuditLogRepository,
) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		sellerRepo:   sellerRepo,
		shopRepo:     shopRepo,
		auditRepo:    auditRepo,
	}
}

// GET /productsの入力DTO
type ListProductsInput struct {
	Page       int
	Limit      int
	ProductID  *int64
	CategoryID *int64
	ShopID     *int64
	Name       string
	MinPrice   *int64
	MaxPrice   *int64
}

type ProductListOutput struct {
	Items []model.Product `json:"items"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

func (u *ProductUsecase) ListProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	if in.Page == 0 {
		in.Page = 1
	}
	if in.Page < 1 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}

	// limit未指定は10、上限は100
	if in.Limit == 0 {
		in.Limit = DefaultPageSize
	}
	if in.Limit < 1 || in.Limit > MaxPageSize {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}

	if len(in.Name) > 100 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "name too long")
	}
	if in.MinPrice != nil && *in.MinPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if in.MaxPrice != nil && *in.MaxPrice < 0 {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if in.MinPrice != nil && in.MaxPrice != nil && *in.MinPrice > *in.MaxPrice {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}

	items, total, err := u.productRepo.List(ctx, repo.ProductListQuery{
		Page:       in.Page,
		Limit:      in.Limit,
		ProductID:  in.ProductID,
		CategoryID: in.CategoryID,
		ShopID:     in.ShopID,
		Name:       strings.TrimSpace(in.Name),
		MinPrice:   in.MinPrice,
		MaxPrice:   in.MaxPrice,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items: items,
		Total: total,
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found.")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type AddProductInput struct {
	CategoryID  int64
	Name        string
	Description string
	Image       string
	Price       int64
	Available   int64
}

// ownShop はセラー資格と所有ショップを確認する。
func (u *ProductUsecase) ownShop(ctx context.Context, userID int64, action string) (model.Shop, error) {
	_, err := u.sellerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusForbidden, fmt.Sprintf("You must be a verified seller to %s a product.", action))
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	shop, err := u.shopRepo.FindByOwnerUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Shop{}, NewHTTPError(http.StatusForbidden, "You do not own a shop.")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return shop, nil
}

// AddProduct は自分のショップへ商品を追加する。
func (u *ProductUsecase) AddProduct(ctx context.Context, userID int64, in AddProductInput) (model.Product, error) {
	if userID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Available < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "available must be >= 0")
	}

	shop, err := u.ownShop(ctx, userID, "list")
	if err != nil {
		return model.Product{}, err
	}

	//カテゴリの存在チェック
	if _, err := u.categoryRepo.FindByID(ctx, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid category")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p := model.Product{
		ShopID:      shop.ID,
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Image:       in.Image,
		Price:       in.Price,
		Available:   in.Available,
	}
	if err := u.productRepo.Create(ctx, &p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, userID, "product.create", p.ID, p.Name)
	return p, nil
}

// EditProduct は自分のショップの商品だけ更新できる。
func (u *ProductUsecase) EditProduct(ctx context.Context, userID int64, productID int64, in AddProductInput) (model.Product, error) {
	if userID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if strings.TrimSpace(in.Name) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "name required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Available < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "available must be >= 0")
	}

	shop, err := u.ownShop(ctx, userID, "edit")
	if err != nil {
		return model.Product{}, err
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found.")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if p.ShopID != shop.ID {
		return model.Product{}, NewHTTPError(http.StatusForbidden, "You can only edit products from your own shop.")
	}

	p.CategoryID = in.CategoryID
	p.Name = strings.TrimSpace(in.Name)
	p.Description = in.Description
	p.Image = in.Image
	p.Price = in.Price
	p.Available = in.Available

	if err := u.productRepo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found.")
		}
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, userID, "product.update", p.ID, p.Name)
	return p, nil
}

// DeleteProduct は自分のショップの商品だけ削除できる。
func (u *ProductUsecase) DeleteProduct(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	shop, err := u.ownShop(ctx, userID, "delete")
	if err != nil {
		return err
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "Product not found.")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if p.ShopID != shop.ID {
		return NewHTTPError(http.StatusForbidden, "You can only delete products from your own shop.")
	}

	if err := u.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Product not found.")
		}
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	u.audit(ctx, userID, "product.delete", productID, p.Name)
	return nil
}

// 監査ログは失敗しても本処理を止めない
func (u *ProductUsecase) audit(ctx context.Context, actorID int64, action string, targetID int64, detail string) {
	if u.auditRepo == nil {
		return
	}
	_ = u.auditRepo.Create(ctx, model.AuditLog{
		ActorID:    actorID,
		Action:     action,
		TargetType: "product",
		TargetID:   targetID,
		Detail:     detail,
	})
}
