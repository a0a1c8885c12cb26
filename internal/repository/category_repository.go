package repository

import (
	"context"

	"marketplace/internal/domain/model"
)

type CategoryListFilter struct {
	CategoryID *int64
}

type CategoryRepository interface {
	FindByID(ctx context.Context, categoryID int64) (model.Category, error)
	List(ctx context.Context, f CategoryListFilter) ([]model.Category, error)
}
