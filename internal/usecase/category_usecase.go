package usecase

import (
	"context"
	"net/http"

	"marketplace/internal/domain/model"
	repo "marketplace/internal/repository"
)

type CategoryUsecase struct {
	categoryRepo repo.CategoryRepository
}

// DI
func NewCategoryUsecase(categoryRepo repo.CategoryRepository) *CategoryUsecase {
	return &CategoryUsecase{categoryRepo: categoryRepo}
}

// category_idが指定されなければ全件
func (u *CategoryUsecase) ListCategories(ctx context.Context, categoryID *int64) ([]model.Category, error) {
	categories, err := u.categoryRepo.List(ctx, repo.CategoryListFilter{CategoryID: categoryID})
	if err != nil {
		return []model.Category{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return categories, nil
}
