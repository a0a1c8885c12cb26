package auth

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/domain/model"
	"marketplace/internal/repository"
)

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// メール未確認ユーザー
var ErrUserInactive = errors.New("user is inactive")

// 役割（JWTのroleクレーム）
type Role string

const (
	RoleSeller   Role = "SELLER"
	RoleCustomer Role = "CUSTOMER"
)

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(userID int64, role Role, jti string, now time.Time) (token string, expiresAt time.Time, err error)
}

// UUID 等のIDを作る約束
type IDGenerator interface {
	NewID() string
}

// handlerからusecaseに渡す入力
type LoginInput struct {
	Username string
	Password string
}

// token 形
type JwtAccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Role        string `json:"role"`
}

// handlerがJSONにして返す
type LoginOutput struct {
	User  model.User     `json:"user"`
	Token JwtAccessToken `json:"token"`
}

type LoginUsecase struct {
	userRepo   repository.UserRepository
	sellerRepo repository.SellerRepository
	verifier   PasswordVerifier
	issuer     AccessTokenIssuer
	idGen      IDGenerator
	clock      Clock
}

// DI
func NewLoginUsecase(
	userRepo repository.UserRepository,
	sellerRepo repository.SellerRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo:   userRepo,
		sellerRepo: sellerRepo,
		verifier:   verifier,
		issuer:     issuer,
		idGen:      idGen,
		clock:      clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	//usernameでユーザー取得
	user, err := u.userRepo.FindByUsername(ctx, in.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return out, ErrInvalidCredentials
	}
	if err != nil {
		return out, err
	}

	//パスワード照合
	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return out, ErrInvalidCredentials
	}

	//メール確認が済んでいるか
	if !user.IsActive {
		return out, ErrUserInactive
	}

	//役割を解決（セラー登録があればSELLER）
	role := RoleCustomer
	if _, err := u.sellerRepo.FindByUserID(ctx, user.ID); err == nil {
		role = RoleSeller
	} else if !errors.Is(err, repository.ErrNotFound) {
		return out, err
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user.ID, role, u.idGen.NewID(), now)
	if err != nil {
		return out, err
	}

	out.User = safeUser(&user)
	out.Token = JwtAccessToken{
		AccessToken: token,
		ExpiresIn:   int(expiresAt.Sub(now).Seconds()),
		Role:        string(role),
	}
	return out, nil
}
