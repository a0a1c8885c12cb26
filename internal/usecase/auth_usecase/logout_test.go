package auth_test

import (
	"context"
	"testing"
	"time"

	auth "marketplace/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLogout_RevokesWithRemainingTTL(t *testing.T) {
	revoker := new(RevokerMock)
	clock := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	uc := auth.NewLogoutUsecase(revoker, clock)

	revoker.On("Revoke", mock.Anything, "jti-1", 30*time.Minute).Return(nil)

	err := uc.Execute(context.Background(), "jti-1", clock.now.Add(30*time.Minute))
	assert.NoError(t, err)
	revoker.AssertExpectations(t)
}

func TestLogout_ExpiredTokenIsNoop(t *testing.T) {
	revoker := new(RevokerMock)
	clock := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	uc := auth.NewLogoutUsecase(revoker, clock)

	err := uc.Execute(context.Background(), "jti-1", clock.now.Add(-time.Minute))
	assert.NoError(t, err)
	revoker.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestLogout_EmptyJTIIsNoop(t *testing.T) {
	revoker := new(RevokerMock)
	clock := &fixedClock{now: time.Now()}
	uc := auth.NewLogoutUsecase(revoker, clock)

	err := uc.Execute(context.Background(), "", time.Now().Add(time.Hour))
	assert.NoError(t, err)
	revoker.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything, mock.Anything)
}
