package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"marketplace/internal/domain/model"
	"marketplace/internal/mailer"
	"marketplace/internal/repository"

	"go.uber.org/zap"
)

var (
	// 入力が不正
	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrUsernameRequired   = errors.New("username required")
	ErrPasswordTooShort   = errors.New("password too short")

	// 競合
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

// 会員登録の入力（セラー/カスタマー共通部＋プロフィール）
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Image       string
	FullAddress string
	// セラーのみ
	MobileNo string
}

type RegisterOutput struct {
	User model.User `json:"user"`
}

// RegisterUsecaseはセラー/カスタマーの会員登録と確認メール送信。
type RegisterUsecase struct {
	userRepo     repository.UserRepository
	sellerRepo   repository.SellerRepository
	customerRepo repository.CustomerRepository
	tokenRepo    repository.ActivationTokenRepository
	hasher       PasswordHasher
	mailer       mailer.Mailer
	clock        Clock
	apiBaseURL   string
}

// DI
func NewRegisterUsecase(
	userRepo repository.UserRepository,
	sellerRepo repository.SellerRepository,
	customerRepo repository.CustomerRepository,
	tokenRepo repository.ActivationTokenRepository,
	hasher PasswordHasher,
	m mailer.Mailer,
	clock Clock,
	apiBaseURL string,
) *RegisterUsecase {
	return &RegisterUsecase{
		userRepo:     userRepo,
		sellerRepo:   sellerRepo,
		customerRepo: customerRepo,
		tokenRepo:    tokenRepo,
		hasher:       hasher,
		mailer:       m,
		clock:        clock,
		apiBaseURL:   apiBaseURL,
	}
}

// RegisterSeller はセラーとして登録する。
func (u *RegisterUsecase) RegisterSeller(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	user, err := u.createUser(ctx, in)
	if err != nil {
		return RegisterOutput{}, err
	}

	seller := &model.Seller{
		UserID:      user.ID,
		Image:       in.Image,
		MobileNo:    strings.TrimSpace(in.MobileNo),
		FullAddress: strings.TrimSpace(in.FullAddress),
	}
	if err := u.sellerRepo.Create(ctx, seller); err != nil {
		return RegisterOutput{}, err
	}

	u.sendConfirmationMail(ctx, user)
	return RegisterOutput{User: safeUser(user)}, nil
}

// RegisterCustomer はカスタマーとして登録する。
func (u *RegisterUsecase) RegisterCustomer(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	user, err := u.createUser(ctx, in)
	if err != nil {
		return RegisterOutput{}, err
	}

	customer := &model.Customer{
		UserID:      user.ID,
		Image:       in.Image,
		FullAddress: strings.TrimSpace(in.FullAddress),
	}
	if err := u.customerRepo.Create(ctx, customer); err != nil {
		return RegisterOutput{}, err
	}

	u.sendConfirmationMail(ctx, user)
	return RegisterOutput{User: safeUser(user)}, nil
}

// createUser は共通のユーザー作成（メール確認までis_active=false）。
func (u *RegisterUsecase) createUser(ctx context.Context, in RegisterInput) (*model.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if !isValidEmailFormat(in.Email) {
		return nil, ErrInvalidEmailFormat
	}
	if len(in.Password) < 8 {
		return nil, ErrPasswordTooShort
	}

	// username重複チェック
	if _, err := u.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	// email重複チェック
	if _, err := u.userRepo.FindByEmail(ctx, strings.TrimSpace(in.Email)); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hashed,
		IsActive:     false,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// 確認メール送信はベストエフォート（失敗しても登録は成立）
func (u *RegisterUsecase) sendConfirmationMail(ctx context.Context, user *model.User) {
	plain, err := generateToken(32)
	if err != nil {
		zap.L().Warn("activation token generation failed", zap.Int64("user_id", user.ID), zap.Error(err))
		return
	}

	token := &model.ActivationToken{
		UserID:    user.ID,
		TokenHash: hashToken(plain),
		ExpiresAt: u.clock.Now().Add(48 * time.Hour),
	}
	if err := u.tokenRepo.Create(ctx, token); err != nil {
		zap.L().Warn("activation token save failed", zap.Int64("user_id", user.ID), zap.Error(err))
		return
	}

	link := fmt.Sprintf("%s/auth/activate/%d/%s", u.apiBaseURL, user.ID, plain)
	body := fmt.Sprintf("Hello %s,\n\nPlease confirm your email:\n%s\n", user.Username, link)
	if err := u.mailer.Send(ctx, user.Email, "Confirm Your Email", body); err != nil {
		zap.L().Warn("confirmation mail failed", zap.Int64("user_id", user.ID), zap.Error(err))
	}
}

func safeUser(user *model.User) model.User {
	safe := *user
	safe.PasswordHash = ""
	return safe
}

// メールチェック
func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}

func generateToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
