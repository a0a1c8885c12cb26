package auth_test

import (
	"context"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
	auth "marketplace/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/mock"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Activate(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *UserRepoMock) List(ctx context.Context, f repo.UserListFilter) ([]model.User, error) {
	panic("not used")
}

type SellerRepoMock struct{ mock.Mock }

func (m *SellerRepoMock) Create(ctx context.Context, seller *model.Seller) error {
	args := m.Called(ctx, seller)
	return args.Error(0)
}

func (m *SellerRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Seller, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(model.Seller)
	return s, args.Error(1)
}

func (m *SellerRepoMock) List(ctx context.Context, f repo.UserListFilter) ([]model.Seller, error) {
	panic("not used")
}

type CustomerRepoMock struct{ mock.Mock }

func (m *CustomerRepoMock) Create(ctx context.Context, customer *model.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *CustomerRepoMock) FindByUserID(ctx context.Context, userID int64) (model.Customer, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(model.Customer)
	return c, args.Error(1)
}

func (m *CustomerRepoMock) List(ctx context.Context, f repo.UserListFilter) ([]model.Customer, error) {
	panic("not used")
}

type TokenRepoMock struct{ mock.Mock }

func (m *TokenRepoMock) Create(ctx context.Context, token *model.ActivationToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *TokenRepoMock) FindByTokenHash(ctx context.Context, tokenHash string) (model.ActivationToken, error) {
	args := m.Called(ctx, tokenHash)
	t, _ := args.Get(0).(model.ActivationToken)
	return t, args.Error(1)
}

func (m *TokenRepoMock) Delete(ctx context.Context, tokenID int64) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// MailerMock は送信内容を記録する
type MailerMock struct {
	mock.Mock
	Bodies []string
}

func (m *MailerMock) Send(ctx context.Context, to string, subject string, body string) error {
	args := m.Called(ctx, to, subject, body)
	m.Bodies = append(m.Bodies, body)
	return args.Error(0)
}

type RevokerMock struct{ mock.Mock }

func (m *RevokerMock) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *RevokerMock) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}

// =====================
// 決定的な部品（clock / hasher / issuer / idGen）
// =====================

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

// fakeHasher はbcryptの代わりに平文へ接頭辞を付けるだけ
type fakeHasher struct{}

func (h *fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

type fakeVerifier struct{}

func (v *fakeVerifier) Verify(password string, hash string) bool {
	return hash == "hashed:"+password
}

type fakeIssuer struct {
	lastRole auth.Role
	lastJTI  string
}

func (i *fakeIssuer) Issue(userID int64, role auth.Role, jti string, now time.Time) (string, time.Time, error) {
	i.lastRole = role
	i.lastJTI = jti
	return "token-for-" + jti, now.Add(time.Hour), nil
}

type fakeIDGen struct{ id string }

func (g *fakeIDGen) NewID() string { return g.id }
