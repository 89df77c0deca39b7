package services

import (
	"context"
	"strings"

	"go-food-ordering/database"
	"go-food-ordering/models"
	"go-food-ordering/repository"
)

const AllCategories = "all"

type MenuService struct {
	foods      repository.FoodRepository
	categories repository.CategoryRepository
	feed       Subscriber
}

func NewMenuService(foods repository.FoodRepository, categories repository.CategoryRepository, feed Subscriber) *MenuService {
	return &MenuService{foods: foods, categories: categories, feed: feed}
}

// FilterMenu keeps available foods whose category equals category exactly.
// An empty category or "all" matches everything.
func FilterMenu(foods []models.Food, category string) []models.Food {
	category = strings.TrimSpace(category)
	out := make([]models.Food, 0, len(foods))
	for _, f := range foods {
		if !f.IsAvailable() {
			continue
		}
		if category != "" && category != AllCategories && f.Category != category {
			continue
		}
		if f.Image == nil || *f.Image == "" {
			img := f.ImageURL()
			f.Image = &img
		}
		out = append(out, f)
	}
	return out
}

func (s *MenuService) ListMenu(ctx context.Context, category string) ([]models.Food, error) {
	foods, err := s.foods.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterMenu(foods, category), nil
}

func (s *MenuService) WatchMenu(category string, push func([]models.Food, error)) func() {
	load := func(ctx context.Context) ([]models.Food, error) {
		return s.ListMenu(ctx, category)
	}
	return watch(s.feed, load, push, database.FoodCollection)
}

// CategoryNames feeds the category selectors.
func (s *MenuService) CategoryNames(ctx context.Context) ([]string, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}
