package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductUsecase() (*usecase.ProductUsecase, *ProductRepoMock, *CategoryRepoMock, *SellerRepoMock, *ShopRepoMock, *AuditRepoMock) {
	products := new(ProductRepoMock)
	categories := new(CategoryRepoMock)
	sellers := new(SellerRepoMock)
	shops := new(ShopRepoMock)
	audit := new(AuditRepoMock)
	uc := usecase.NewProductUsecase(products, categories, sellers, shops, audit)
	return uc, products, categories, sellers, shops, audit
}

func int64p(v int64) *int64 { return &v }

// =====================
// ListProducts
// =====================

func TestListProducts_DefaultPaging(t *testing.T) {
	uc, products, _, _, _, _ := newProductUsecase()

	//未指定はpage=1 / limit=10で問い合わせる
	products.On("List", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.Page == 1 && q.Limit == usecase.DefaultPageSize
	})).Return([]model.Product{}, int64(0), nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{})
	assert.NoError(t, err)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, usecase.DefaultPageSize, out.Limit)
	products.AssertExpectations(t)
}

func TestListProducts_LimitTooLarge(t *testing.T) {
	uc, _, _, _, _, _ := newProductUsecase()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Limit: usecase.MaxPageSize + 1})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid limit")
}

func TestListProducts_NegativePage(t *testing.T) {
	uc, _, _, _, _, _ := newProductUsecase()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: -1})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid page")
}

func TestListProducts_PriceRangeInverted(t *testing.T) {
	uc, _, _, _, _, _ := newProductUsecase()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		MinPrice: int64p(100),
		MaxPrice: int64p(50),
	})
	assertHTTPError(t, err, http.StatusBadRequest, "min_price must be <= max_price")
}

func TestListProducts_FiltersPassedThrough(t *testing.T) {
	uc, products, _, _, _, _ := newProductUsecase()

	products.On("List", mock.Anything, mock.MatchedBy(func(q repo.ProductListQuery) bool {
		return q.CategoryID != nil && *q.CategoryID == 2 &&
			q.ShopID != nil && *q.ShopID == 3 &&
			q.Name == "mug" &&
			q.MinPrice != nil && *q.MinPrice == 10 &&
			q.MaxPrice != nil && *q.MaxPrice == 500
	})).Return([]model.Product{{ID: 9}}, int64(1), nil)

	out, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{
		CategoryID: int64p(2),
		ShopID:     int64p(3),
		Name:       " mug ",
		MinPrice:   int64p(10),
		MaxPrice:   int64p(500),
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Len(t, out.Items, 1)
	products.AssertExpectations(t)
}

func TestGetProductDetail_NotFound(t *testing.T) {
	uc, products, _, _, _, _ := newProductUsecase()

	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(context.Background(), 99)
	assertHTTPError(t, err, http.StatusNotFound, "Product not found.")
}

// =====================
// AddProduct / EditProduct / DeleteProduct
// =====================

func TestAddProduct_NotSeller(t *testing.T) {
	uc, _, _, sellers, _, _ := newProductUsecase()

	sellers.On("FindByUserID", mock.Anything, int64(5)).Return(model.Seller{}, repo.ErrNotFound)

	_, err := uc.AddProduct(context.Background(), 5, usecase.AddProductInput{Name: "mug", CategoryID: 1})
	assertHTTPError(t, err, http.StatusForbidden, "You must be a verified seller to list a product.")
}

func TestAddProduct_NoShop(t *testing.T) {
	uc, _, _, sellers, shops, _ := newProductUsecase()

	sellers.On("FindByUserID", mock.Anything, int64(5)).Return(model.Seller{UserID: 5}, nil)
	shops.On("FindByOwnerUserID", mock.Anything, int64(5)).Return(model.Shop{}, repo.ErrNotFound)

	_, err := uc.AddProduct(context.Background(), 5, usecase.AddProductInput{Name: "mug", CategoryID: 1})
	assertHTTPError(t, err, http.StatusForbidden, "You do not own a shop.")
}

func TestAddProduct_InvalidCategory(t *testing.T) {
	uc, _, categories, sellers, shops, _ := newProductUsecase()

	sellers.On("FindByUserID", mock.Anything, int64(5)).Return(model.Seller{UserID: 5}, nil)
	shops.On("FindByOwnerUserID", mock.Anything, int64(5)).Return(model.Shop{ID: 3, OwnerUserID: 5}, nil)
	categories.On("FindByID", mock.Anything, int64(8)).Return(model.Category{}, repo.ErrNotFound)

	_, err := uc.AddProduct(context.Background(), 5, usecase.AddProductInput{Name: "mug", CategoryID: 8})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid category")
}

func TestAddProduct_OK(t *testing.T) {
	uc, products, categories, sellers, shops, audit := newProductUsecase()

	sellers.On("FindByUserID", mock.Anything, int64(5)).Return(model.Seller{UserID: 5}, nil)
	shops.On("FindByOwnerUserID", mock.Anything, int64(5)).Return(model.Shop{ID: 3, OwnerUserID: 5}, nil)
	categories.On("FindByID", mock.Anything, int64(2)).Return(model.Category{ID: 2}, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.ShopID == 3 && p.Name == "mug" && p.Price == 120
	})).Return(nil)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	p, err := uc.AddProduct(context.Background(), 5, usecase.AddProductInput{
		CategoryID: 2,
		Name:       " mug ",
		Price:      120,
		Available:  4,
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), p.ShopID)
	assert.Equal(t, "mug", p.Name)
	products.AssertExpectations(t)
}

func TestEditProduct_OtherShop(t *testing.T) {
	uc, products, _, sellers, shops, _ := newProductUsecase()

	sellers.On("FindByUserID", mock.Anything, int64(5)).Return(model.Seller{UserID: 5}, nil)
	shops.On("FindByOwnerUserID", mock.Anything, int64(5)).Return(model.Shop{ID: 3, OwnerUserID: 5}, nil)
	products.On("FindByID", mock.Anything, int64(77)).Return(model.Product{ID: 77, ShopID: 99}, nil)

	_, err := uc.EditProduct(context.Background(), 5, 77, usecase.AddProductInput{Name: "mug", CategoryID: 1})
	assertHTTPError(t, err, http.StatusForbidden, "You can only edit products from your own shop.")
}

func TestDeleteProduct_OtherShop(t *testing.T) {
	uc, products, _, sellers, shops, _ := newProductUsecase()

	sellers.On("FindByUserID", mock.Anything, int64(5)).Return(model.Seller{UserID: 5}, nil)
	shops.On("FindByOwnerUserID", mock.Anything, int64(5)).Return(model.Shop{ID: 3, OwnerUserID: 5}, nil)
	products.On("FindByID", mock.Anything, int64(77)).Return(model.Product{ID: 77, ShopID: 99}, nil)

	err := uc.DeleteProduct(context.Background(), 5, 77)
	assertHTTPError(t, err, http.StatusForbidden, "You can only delete products from your own shop.")
}

func TestDeleteProduct_OK(t *testing.T) {
	uc, products, _, sellers, shops, audit := newProductUsecase()

	sellers.On("FindByUserID", mock.Anything, int64(5)).Return(model.Seller{UserID: 5}, nil)
	shops.On("FindByOwnerUserID", mock.Anything, int64(5)).Return(model.Shop{ID: 3, OwnerUserID: 5}, nil)
	products.On("FindByID", mock.Anything, int64(77)).Return(model.Product{ID: 77, ShopID: 3, Name: "mug"}, nil)
	products.On("Delete", mock.Anything, int64(77)).Return(nil)
	audit.On("Create", mock.Anything, mock.Anything).Return(nil)

	err := uc.DeleteProduct(context.Background(), 5, 77)
	assert.NoError(t, err)
	products.AssertExpectations(t)
}
