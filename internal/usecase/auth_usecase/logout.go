package auth

import (
	"context"
	"time"
)

// 失効済みトークンの記録を約束（redis実装）
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// LogoutUsecaseはアクセストークンを残り有効期限ぶん失効させる。
type LogoutUsecase struct {
	revoker TokenRevoker
	clock   Clock
}

// DI
func NewLogoutUsecase(revoker TokenRevoker, clock Clock) *LogoutUsecase {
	return &LogoutUsecase{revoker: revoker, clock: clock}
}

func (u *LogoutUsecase) Execute(ctx context.Context, jti string, expiresAt time.Time) error {
	if u.revoker == nil || jti == "" {
		return nil
	}

	ttl := expiresAt.Sub(u.clock.Now())
	if ttl <= 0 {
		// 既に失効している
		return nil
	}
	return u.revoker.Revoke(ctx, jti, ttl)
}
