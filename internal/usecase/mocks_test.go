package usecase_test

import (
	"context"
	"testing"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Repository mocks
// =====================

type SellerRepoMock struct{ mock.Mock }

func (m *SellerRepoMock) Create(ctx context.Context, seller *model.Seller) error {
	panic("not used")
}

func (m *SellerRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Seller, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(model.Seller)
	return s, args.Error(1)
}

func (m *SellerRepoMock) List(ctx context.Context, f repo.UserListFilter) ([]model.Seller, error) {
	args := m.Called(ctx, f)
	sellers, _ := args.Get(0).([]model.Seller)
	return sellers, args.Error(1)
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) Create(ctx context.Context, customer *model.Customer) error {
	panic("not used")
}

func (m *CustomerRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Customer, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) List(ctx context.Context, f repo.UserListFilter) ([]model.Customer, error) {
	args := m.Called(ctx, f)
	customers, _ := args.Get(0).([]model.Customer)
	return customers, args.Error(1)
}

type ShopRepoMock struct{ mock.Mock }

func (m *ShopRepoMock) Create(ctx context.Context, shop *model.Shop) error {
	args := m.Called(ctx, shop)
	if args.Error(0) == nil {
		shop.ID = 1
	}
	return args.Error(0)
}

func (m *ShopRepoMock) FindByID(ctx context.Context, shopID int64) (model.Shop, error) {
	args := m.Called(ctx, shopID)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) FindByOwnerUserID(ctx context.Context, ownerUserID int64) (model.Shop, error) {
	args := m.Called(ctx, ownerUserID)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) ExistsByOwnerUserID(ctx context.Context, ownerUserID int64) (bool, error) {
	args := m.Called(ctx, ownerUserID)
	return args.Bool(0), args.Error(1)
}

func (m *ShopRepoMock) List(ctx context.Context, f repo.ShopListFilter) ([]model.Shop, error) {
	args := m.Called(ctx, f)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	products, _ := args.Get(0).([]model.Product)
	total, _ := args.Get(1).(int64)
	return products, total, args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	args := m.Called(ctx, productID)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) ListByShopID(ctx context.Context, shopID int64) ([]model.Product, error) {
	args := m.Called(ctx, shopID)
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p *model.Product) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = 100
	}
	return args.Error(0)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) Delete(ctx context.Context, productID int64) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecreaseAvailableIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

func (m *InventoryRepoMock) IncreaseAvailable(ctx context.Context, productID int64, qty int64) error {
	args := m.Called(ctx, productID, qty)
	return args.Error(0)
}

type ReviewRepoMock struct{ mock.Mock }

func (m *ReviewRepoMock) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	if args.Error(0) == nil {
		review.ID = 1
	}
	return args.Error(0)
}

func (m *ReviewRepoMock) ListByProductID(ctx context.Context, productID int64) ([]model.Review, error) {
	args := m.Called(ctx, productID)
	reviews, _ := args.Get(0).([]model.Review)
	return reviews, args.Error(1)
}

func (m *ReviewRepoMock) ListByShopID(ctx context.Context, shopID int64) ([]model.Review, error) {
	args := m.Called(ctx, shopID)
	reviews, _ := args.Get(0).([]model.Review)
	return reviews, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil {
		order.ID = 10
	}
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByCustomerUserID(ctx context.Context, customerUserID int64) ([]model.Order, error) {
	args := m.Called(ctx, customerUserID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListByShopID(ctx context.Context, shopID int64) ([]model.Order, error) {
	args := m.Called(ctx, shopID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

type CategoryRepoMock struct{ mock.Mock }

func (m *CategoryRepoMock) FindByID(ctx context.Context, categoryID int64) (model.Category, error) {
	args := m.Called(ctx, categoryID)
	c, _ := args.Get(0).(model.Category)
	return c, args.Error(1)
}

func (m *CategoryRepoMock) List(ctx context.Context, f repo.CategoryListFilter) ([]model.Category, error) {
	args := m.Called(ctx, f)
	categories, _ := args.Get(0).([]model.Category)
	return categories, args.Error(1)
}

type AuditRepoMock struct{ mock.Mock }

func (m *AuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	orders    repo.OrderRepository
	products  repo.ProductRepository
	inventory repo.InventoryRepository
}

func (r *TxReposMock) Orders() repo.OrderRepository        { return r.orders }
func (r *TxReposMock) Products() repo.ProductRepository    { return r.products }
func (r *TxReposMock) Inventory() repo.InventoryRepository { return r.inventory }

// =====================
// Publisher mock
// =====================

type PublisherMock struct {
	mock.Mock
	Events []usecase.OrderPlacedEvent
}

func (m *PublisherMock) PublishOrderPlaced(ctx context.Context, ev usecase.OrderPlacedEvent) error {
	args := m.Called(ctx, ev)
	m.Events = append(m.Events, ev)
	return args.Error(0)
}

// =====================
// Helper: HTTPErrorの中身を検証
// =====================

func assertHTTPError(t *testing.T, err error, wantStatus int, wantMessage string) {
	t.Helper()
	if !assert.Error(t, err) {
		return
	}
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "err=%v is not HTTPError", err) {
		assert.Equal(t, wantStatus, he.Status)
		assert.Equal(t, wantMessage, he.Message)
	}
}
