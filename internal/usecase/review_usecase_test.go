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

func newReviewUsecase() (*usecase.ReviewUsecase, *ReviewRepoMock, *ProductRepoMock, *CustomerRepoMock) {
	reviews := new(ReviewRepoMock)
	products := new(ProductRepoMock)
	customers := new(CustomerRepoMock)
	return usecase.NewReviewUsecase(reviews, products, customers), reviews, products, customers
}

func TestAddReview_InvalidRating(t *testing.T) {
	uc, _, _, _ := newReviewUsecase()

	_, err := uc.AddReview(context.Background(), 4, 1, usecase.AddReviewInput{Rating: 6})
	assertHTTPError(t, err, http.StatusBadRequest, "rating must be 1..5")

	_, err = uc.AddReview(context.Background(), 4, 1, usecase.AddReviewInput{Rating: 0})
	assertHTTPError(t, err, http.StatusBadRequest, "rating must be 1..5")
}

func TestAddReview_NotCustomer(t *testing.T) {
	uc, _, _, customers := newReviewUsecase()

	customers.On("FindByUserID", mock.Anything, int64(4)).Return(model.Customer{}, repo.ErrNotFound)

	_, err := uc.AddReview(context.Background(), 4, 1, usecase.AddReviewInput{Rating: 5})
	assertHTTPError(t, err, http.StatusForbidden, "You must be a customer to review a product.")
}

func TestAddReview_ProductMissing(t *testing.T) {
	uc, _, products, customers := newReviewUsecase()

	customers.On("FindByUserID", mock.Anything, int64(4)).Return(model.Customer{UserID: 4}, nil)
	products.On("FindByID", mock.Anything, int64(99)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.AddReview(context.Background(), 4, 99, usecase.AddReviewInput{Rating: 5})
	assertHTTPError(t, err, http.StatusNotFound, "Product does not exist")
}

func TestAddReview_OK(t *testing.T) {
	uc, reviews, products, customers := newReviewUsecase()

	customers.On("FindByUserID", mock.Anything, int64(4)).Return(model.Customer{UserID: 4}, nil)
	products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1}, nil)
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Review) bool {
		return r.ProductID == 1 && r.CustomerUserID == 4 && r.Rating == 5 && r.Comment == "great"
	})).Return(nil)

	review, err := uc.AddReview(context.Background(), 4, 1, usecase.AddReviewInput{Rating: 5, Comment: " great "})
	assert.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	reviews.AssertExpectations(t)
}

func TestListByProduct_InvalidID(t *testing.T) {
	uc, _, _, _ := newReviewUsecase()

	_, err := uc.ListByProduct(context.Background(), 0)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid product id")
}
