package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

type ReviewUsecase struct {
	reviewRepo   repo.ReviewRepository
	productRepo  repo.ProductRepository
	customerRepo repo.CustomerRepository
}

// DI
func NewReviewUsecase(
	reviewRepo repo.ReviewRepository,
	productRepo repo.ProductRepository,
	customerRepo repo.CustomerRepository,
) *ReviewUsecase {
	return &ReviewUsecase{
		reviewRepo:   reviewRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

func (u *ReviewUsecase) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	if productID <= 0 {
		return []model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	reviews, err := u.reviewRepo.ListByProductID(ctx, productID)
	if err != nil {
		return []model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return reviews, nil
}

type AddReviewInput struct {
	Rating  int
	Comment string
}

// AddReview はカスタマーだけが投稿できる。
func (u *ReviewUsecase) AddReview(ctx context.Context, userID int64, productID int64, in AddReviewInput) (model.Review, error) {
	if userID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return model.Review{}, NewHTTPError(http.StatusBadRequest, "rating must be 1..5")
	}

	//カスタマー登録チェック
	_, err := u.customerRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Review{}, NewHTTPError(http.StatusForbidden, "You must be a customer to review a product.")
	}
	if err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//商品の存在チェック
	if _, err := u.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Review{}, NewHTTPError(http.StatusNotFound, "Product does not exist")
		}
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	review := model.Review{
		ProductID:      productID,
		CustomerUserID: userID,
		Rating:         in.Rating,
		Comment:        strings.TrimSpace(in.Comment),
	}
	if err := u.reviewRepo.Create(ctx, &review); err != nil {
		return model.Review{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return review, nil
}
