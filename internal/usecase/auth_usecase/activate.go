package auth

import (
	"context"
	"errors"

	"marketplace/internal/repository"
)

// トークン不正・期限切れ・ユーザー不一致
var ErrInvalidActivation = errors.New("invalid activation")

// ActivateUsecaseはメール確認リンクの消費。
type ActivateUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.ActivationTokenRepository
	clock     Clock
}

// DI
func NewActivateUsecase(
	userRepo repository.UserRepository,
	tokenRepo repository.ActivationTokenRepository,
	clock Clock,
) *ActivateUsecase {
	return &ActivateUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		clock:     clock,
	}
}

// Execute はトークンを検証してユーザーを有効化する。トークンは使い捨て。
func (u *ActivateUsecase) Execute(ctx context.Context, userID int64, plainToken string) error {
	if userID <= 0 || plainToken == "" {
		return ErrInvalidActivation
	}

	token, err := u.tokenRepo.FindByTokenHash(ctx, hashToken(plainToken))
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidActivation
	}
	if err != nil {
		return err
	}

	if token.UserID != userID {
		return ErrInvalidActivation
	}
	if u.clock.Now().After(token.ExpiresAt) {
		//期限切れトークンは削除しておく
		_ = u.tokenRepo.Delete(ctx, token.ID)
		return ErrInvalidActivation
	}

	if err := u.userRepo.Activate(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidActivation
		}
		return err
	}

	return u.tokenRepo.Delete(ctx, token.ID)
}
