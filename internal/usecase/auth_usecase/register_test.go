package auth_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
	auth "marketplace/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type registerFixture struct {
	uc        *auth.RegisterUsecase
	users     *UserRepoMock
	sellers   *SellerRepoMock
	customers *CustomerRepoMock
	tokens    *TokenRepoMock
	mailer    *MailerMock
	clock     *fixedClock
}

func newRegisterFixture() *registerFixture {
	f := &registerFixture{
		users:     new(UserRepoMock),
		sellers:   new(SellerRepoMock),
		customers: new(CustomerRepoMock),
		tokens:    new(TokenRepoMock),
		mailer:    new(MailerMock),
		clock:     &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	f.uc = auth.NewRegisterUsecase(
		f.users, f.sellers, f.customers, f.tokens,
		&fakeHasher{}, f.mailer, f.clock, "http://localhost:8080",
	)
	return f
}

func validInput() auth.RegisterInput {
	return auth.RegisterInput{
		Username:    "alice",
		Email:       "alice@example.com",
		Password:    "password123",
		FullAddress: "Dhaka",
		MobileNo:    "0123456789",
	}
}

func TestRegisterSeller_InvalidEmail(t *testing.T) {
	f := newRegisterFixture()

	in := validInput()
	in.Email = "not-an-email"

	_, err := f.uc.RegisterSeller(context.Background(), in)
	assert.ErrorIs(t, err, auth.ErrInvalidEmailFormat)
}

func TestRegisterSeller_PasswordTooShort(t *testing.T) {
	f := newRegisterFixture()

	in := validInput()
	in.Password = "short"

	_, err := f.uc.RegisterSeller(context.Background(), in)
	assert.ErrorIs(t, err, auth.ErrPasswordTooShort)
}

func TestRegisterSeller_UsernameTaken(t *testing.T) {
	f := newRegisterFixture()

	f.users.On("FindByUsername", mock.Anything, "alice").Return(model.User{ID: 9, Username: "alice"}, nil)

	_, err := f.uc.RegisterSeller(context.Background(), validInput())
	assert.ErrorIs(t, err, auth.ErrUsernameAlreadyExists)
}

func TestRegisterSeller_EmailTaken(t *testing.T) {
	f := newRegisterFixture()

	f.users.On("FindByUsername", mock.Anything, "alice").Return(model.User{}, repo.ErrNotFound)
	f.users.On("FindByEmail", mock.Anything, "alice@example.com").Return(model.User{ID: 9}, nil)

	_, err := f.uc.RegisterSeller(context.Background(), validInput())
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestRegisterSeller_OK(t *testing.T) {
	f := newRegisterFixture()

	f.users.On("FindByUsername", mock.Anything, "alice").Return(model.User{}, repo.ErrNotFound)
	f.users.On("FindByEmail", mock.Anything, "alice@example.com").Return(model.User{}, repo.ErrNotFound)
	f.users.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		//メール確認までis_active=false
		return u.Username == "alice" && !u.IsActive && u.PasswordHash == "hashed:password123"
	})).Return(nil)
	f.sellers.On("Create", mock.Anything, mock.MatchedBy(func(s *model.Seller) bool {
		return s.UserID == 1 && s.MobileNo == "0123456789"
	})).Return(nil)
	f.tokens.On("Create", mock.Anything, mock.MatchedBy(func(tok *model.ActivationToken) bool {
		//48時間有効
		return tok.UserID == 1 && tok.ExpiresAt.Equal(f.clock.now.Add(48*time.Hour))
	})).Return(nil)
	f.mailer.On("Send", mock.Anything, "alice@example.com", "Confirm Your Email", mock.Anything).Return(nil)

	out, err := f.uc.RegisterSeller(context.Background(), validInput())
	assert.NoError(t, err)

	//パスワードハッシュはレスポンスに載せない
	assert.Empty(t, out.User.PasswordHash)
	assert.False(t, out.User.IsActive)

	//確認リンクがメール本文に入っている
	if assert.Len(t, f.mailer.Bodies, 1) {
		assert.Contains(t, f.mailer.Bodies[0], "http://localhost:8080/auth/activate/1/")
	}
	f.sellers.AssertExpectations(t)
	f.tokens.AssertExpectations(t)
}

func TestRegisterCustomer_OK(t *testing.T) {
	f := newRegisterFixture()

	f.users.On("FindByUsername", mock.Anything, "alice").Return(model.User{}, repo.ErrNotFound)
	f.users.On("FindByEmail", mock.Anything, "alice@example.com").Return(model.User{}, repo.ErrNotFound)
	f.users.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.customers.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Customer) bool {
		return c.UserID == 1 && c.FullAddress == "Dhaka"
	})).Return(nil)
	f.tokens.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	out, err := f.uc.RegisterCustomer(context.Background(), validInput())
	assert.NoError(t, err)
	assert.Equal(t, "alice", out.User.Username)
	f.customers.AssertExpectations(t)
}

func TestRegisterCustomer_MailFailureDoesNotFailRegistration(t *testing.T) {
	f := newRegisterFixture()

	f.users.On("FindByUsername", mock.Anything, "alice").Return(model.User{}, repo.ErrNotFound)
	f.users.On("FindByEmail", mock.Anything, "alice@example.com").Return(model.User{}, repo.ErrNotFound)
	f.users.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.customers.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.tokens.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	//送信失敗しても登録は成立する
	_, err := f.uc.RegisterCustomer(context.Background(), validInput())
	assert.NoError(t, err)
}
